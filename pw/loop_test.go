package pw

import (
	"syscall"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestSignalSourceCloseOrdering(t *testing.T) {
	var order []string
	ctx := newSignalContext(func() {}, func() { order = append(order, "drop") })

	s := &SignalSource{
		ctx:     ctx,
		destroy: func() { order = append(order, "destroy") },
	}

	s.Close()
	require.Equal(t, []string{"destroy", "drop"}, order,
		"native source must be destroyed before the closure is released")
}

func TestSignalSourceCloseIdempotent(t *testing.T) {
	destroys := 0
	ctx := newSignalContext(func() {}, nil)

	s := &SignalSource{
		ctx:     ctx,
		destroy: func() { destroys++ },
	}

	s.Close()
	s.Close()
	s.Close()
	require.Equal(t, 1, destroys)
}

func TestSignalSourceNoCallbackAfterClose(t *testing.T) {
	calls := 0
	ctx := newSignalContext(func() { calls++ }, nil)

	s := &SignalSource{ctx: ctx, destroy: func() {}}

	for i := 0; i < 3; i++ {
		dispatchSignal(unsafe.Pointer(ctx), int(syscall.SIGUSR2))
	}
	require.Equal(t, 3, calls)

	// Closing destroys the native source first, so no further deliveries
	// can reach the trampoline; the counter must stay put.
	s.Close()
	require.Equal(t, 3, calls)
}
