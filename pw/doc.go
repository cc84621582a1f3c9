// Package pw provides Go bindings for the PipeWire callback layer.
//
// The package wraps libpipewire-0.3's loop and proxy callback registration
// behind ordinary Go closures with deterministic teardown. Every
// registration returns an owned handle; the handle's Close method
// unregisters the native callback strictly before the closure is released
// and is idempotent.
//
// PipeWire loops are single threaded. Call Init from the goroutine that
// will own the loop, with runtime.LockOSThread in effect; registrations
// must happen on that thread and callbacks are delivered on it, directly
// from the loop's dispatch step. A handle must be closed before the loop
// or proxy it was registered against.
//
// Set GO_LOG=debug to trace registrations and native return codes.
package pw
