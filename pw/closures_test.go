package pw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignalContextInvoke(t *testing.T) {
	calls := 0
	ctx := newSignalContext(func() { calls++ }, nil)

	ctx.invoke()
	ctx.invoke()
	require.Equal(t, 2, calls)

	ctx.drop()
}

func TestSignalContextDrop(t *testing.T) {
	dropped := false
	ctx := newSignalContext(func() {}, func() { dropped = true })

	require.False(t, dropped)
	ctx.drop()
	require.True(t, dropped)
}

func TestPortListenerContextSlots(t *testing.T) {
	empty := newPortListenerContext(nil, nil)
	require.False(t, empty.hasInfo())
	require.False(t, empty.hasParam())
	empty.drop()

	paramOnly := newPortListenerContext(nil, func(int32, ParamType, uint32, uint32, *Pod) {})
	require.False(t, paramOnly.hasInfo())
	require.True(t, paramOnly.hasParam())
	paramOnly.drop()

	both := newPortListenerContext(func(*PortInfoRef) {}, func(int32, ParamType, uint32, uint32, *Pod) {})
	require.True(t, both.hasInfo())
	require.True(t, both.hasParam())
	both.drop()
}
