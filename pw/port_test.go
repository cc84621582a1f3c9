package pw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPortListenerBuilderOverwrites(t *testing.T) {
	p := &Port{}
	first := 0
	second := 0

	b := p.AddListenerLocal().
		Info(func(*PortInfoRef) { first++ }).
		Info(func(*PortInfoRef) { second++ })

	// Each setter replaces the previous closure for its kind.
	b.info(nil)
	require.Zero(t, first)
	require.Equal(t, 1, second)
	require.Nil(t, b.param)
}

func TestPortListenerCloseIdempotent(t *testing.T) {
	removes := 0
	ctx := newPortListenerContext(func(*PortInfoRef) {}, nil)

	l := &PortListener{
		ctx:    ctx,
		remove: func() { removes++ },
	}

	l.Close()
	l.Close()
	require.Equal(t, 1, removes, "hook removal must run exactly once")

	// The closures were released after removal: the stored handle is gone.
	require.Panics(t, func() { ctx.invokeInfo(nil) })
}

func TestPortFromProxyNil(t *testing.T) {
	require.Panics(t, func() { PortFromProxy(nil) })
}
