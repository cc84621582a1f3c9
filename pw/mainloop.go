package pw

/*
#include <pipewire/pipewire.h>
*/
import "C"
import (
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"unsafe"
)

// MainLoop owns a pw_main_loop and implements Loop
type MainLoop struct {
	handle    *C.struct_pw_main_loop
	closeOnce sync.Once
}

// NewMainLoop creates a new main loop. Must be called after Init, on the
// loop thread.
func NewMainLoop() (*MainLoop, error) {
	assertLoopThread("NewMainLoop")

	handle := C.pw_main_loop_new(nil)
	if handle == nil {
		return nil, fmt.Errorf("%w: main loop", ErrBuildFailed)
	}

	m := &MainLoop{handle: handle}
	runtime.SetFinalizer(m, (*MainLoop).Close)

	return m, nil
}

// AsRawLoop returns the underlying *struct pw_loop
func (m *MainLoop) AsRawLoop() unsafe.Pointer {
	if m.handle == nil {
		panic("pw: main loop is closed")
	}
	return unsafe.Pointer(C.pw_main_loop_get_loop(m.handle))
}

// AddSignalLocal registers a signal handler on this loop
func (m *MainLoop) AddSignalLocal(sig syscall.Signal, handler SignalHandler) *SignalSource {
	return AddSignalLocal(m, sig, handler)
}

// Run runs the loop until Quit is called. Blocks on the loop thread.
func (m *MainLoop) Run() error {
	if m.handle == nil {
		return ErrClosed
	}
	assertLoopThread("Run")

	rc := C.pw_main_loop_run(m.handle)
	if rc != 0 {
		return NewPwError(ErrorCodeLoopFailed, fmt.Sprintf("main loop run failed (rc=%d)", int(rc)))
	}
	return nil
}

// Quit asks a running loop to return from Run
func (m *MainLoop) Quit() error {
	if m.handle == nil {
		return ErrClosed
	}
	rc := C.pw_main_loop_quit(m.handle)
	if rc != 0 {
		return NewPwError(ErrorCodeLoopFailed, fmt.Sprintf("main loop quit failed (rc=%d)", int(rc)))
	}
	return nil
}

// Close destroys the loop. All sources and listeners registered against
// it must be closed first. Idempotent.
func (m *MainLoop) Close() error {
	m.closeOnce.Do(func() {
		if m.handle == nil {
			return
		}
		C.pw_main_loop_destroy(m.handle)
		m.handle = nil
	})
	return nil
}
