package pw

/*
#cgo pkg-config: libpipewire-0.3
#include <pipewire/pipewire.h>
*/
import "C"

// Init initializes the PipeWire library and records the calling OS thread
// as the loop owner. Call it once, from the goroutine that will run the
// loop, with runtime.LockOSThread in effect; every registration operation
// asserts it runs on this thread.
func Init() {
	C.pw_init(nil, nil)
	markLoopThread()
	logger.Debug("pw_init", "tid", loopTID.Load())
}

// Deinit deinitializes the PipeWire library. All handles must be closed
// before calling it.
func Deinit() {
	C.pw_deinit()
}
