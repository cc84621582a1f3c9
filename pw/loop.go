package pw

/*
#include <pipewire/pipewire.h>

extern void goSignalInvoke(void *data, int signalNumber);

static struct spa_source *pwgo_loop_add_signal(struct pw_loop *loop, int signum, void *data) {
	return pw_loop_add_signal(loop, signum, goSignalInvoke, data);
}

static void pwgo_loop_destroy_source(struct pw_loop *loop, struct spa_source *source) {
	pw_loop_destroy_source(loop, source);
}
*/
import "C"
import (
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"unsafe"
)

// SignalHandler is a callback invoked when a registered process signal
// fires inside the loop
type SignalHandler func()

// Loop is the single-threaded event dispatch context that signal sources
// and listeners are registered against. The loop's I/O and scheduling are
// implemented by the native side; this package only registers callbacks
// on it.
type Loop interface {
	// AsRawLoop returns the underlying *struct pw_loop.
	AsRawLoop() unsafe.Pointer
}

// SignalSource is an owned signal registration. Closing it destroys the
// native source before the closure is released; it must be closed before
// the loop it was registered against.
type SignalSource struct {
	destroy   func()
	ctx       *signalContext
	closeOnce sync.Once
}

// AddSignalLocal registers handler to run when the given process signal
// fires while the loop dispatches. Must be called on the loop thread.
// A nil handler or a null native source is a fatal precondition failure;
// on success the returned source is the sole owner of the registration.
func AddSignalLocal(l Loop, sig syscall.Signal, handler SignalHandler) *SignalSource {
	if handler == nil {
		panic("pw: AddSignalLocal requires a non-nil handler")
	}
	assertLoopThread("AddSignalLocal")

	// The context is dropped by Close, strictly after the source is destroyed.
	ctx := newSignalContext(handler, nil)

	raw := (*C.struct_pw_loop)(l.AsRawLoop())
	src := C.pwgo_loop_add_signal(raw, C.int(sig), unsafe.Pointer(ctx))
	if src == nil {
		panic(fmt.Sprintf("pw: loop returned a NULL source for signal %d", sig))
	}

	logger.Debug("pw_loop_add_signal", "signal", int(sig))

	s := &SignalSource{
		ctx: ctx,
		destroy: func() {
			C.pwgo_loop_destroy_source(raw, src)
		},
	}
	runtime.SetFinalizer(s, (*SignalSource).Close)

	return s
}

// Close destroys the native source, then releases the closure. Idempotent.
func (s *SignalSource) Close() {
	s.closeOnce.Do(func() {
		s.destroy()
		s.ctx.drop()
		runtime.SetFinalizer(s, nil)
	})
}
