package pw

import (
	"runtime"
	"runtime/cgo"
)

// signalContext holds a pinned signal closure that can be safely passed to
// C callbacks. The context is pinned using runtime.Pinner to prevent GC
// relocation, and the callback is stored as a cgo.Handle for type-safe
// GC-integrated reference management. Its address round-trips through the
// native side as the opaque void *data argument and is only ever handed
// back to the trampolines in callbacks.go.
type signalContext struct {
	onInvoke cgo.Handle // SignalHandler
	onDrop   cgo.Handle // func() (optional)
	pinner   cgo.Handle // *runtime.Pinner
}

// invoke calls the stored signal handler.
// This is reached from C via the signal trampoline.
func (c *signalContext) invoke() {
	c.onInvoke.Value().(SignalHandler)()
}

// drop cleans up the context. Calls the optional drop function, deletes
// all cgo.Handles, and unpins the context. Must run only after the native
// registration has been removed.
func (c *signalContext) drop() {
	if c.onDrop != 0 {
		c.onDrop.Value().(func())()
		c.onDrop.Delete()
	}
	c.onInvoke.Delete()
	c.pinner.Value().(*runtime.Pinner).Unpin()
	c.pinner.Delete()
}

// newSignalContext creates a pinned context for a signal registration.
// The returned pointer is safe to pass to C and remains valid until drop().
func newSignalContext(handler SignalHandler, drop func()) *signalContext {
	ctx := signalContext{}
	ctx.onInvoke = cgo.NewHandle(handler)
	if drop != nil {
		ctx.onDrop = cgo.NewHandle(drop)
	}
	pinner := &runtime.Pinner{}
	pinner.Pin(&ctx)
	ctx.pinner = cgo.NewHandle(pinner)
	return &ctx
}

// portListenerContext bundles the configured callbacks of one port
// listener registration behind a single opaque context pointer. A zero
// handle means the corresponding event kind was not configured; the
// matching slot in the native event table is left unset so the native side
// never dispatches it.
type portListenerContext struct {
	onInfo  cgo.Handle // InfoChangedHandler, 0 when not configured
	onParam cgo.Handle // ParamChangedHandler, 0 when not configured
	pinner  cgo.Handle // *runtime.Pinner
}

func (c *portListenerContext) hasInfo() bool  { return c.onInfo != 0 }
func (c *portListenerContext) hasParam() bool { return c.onParam != 0 }

func (c *portListenerContext) invokeInfo(info *PortInfoRef) {
	c.onInfo.Value().(InfoChangedHandler)(info)
}

func (c *portListenerContext) invokeParam(seq int32, id ParamType, index, next uint32, pod *Pod) {
	c.onParam.Value().(ParamChangedHandler)(seq, id, index, next, pod)
}

// drop deletes the configured handles and unpins the context.
// Must run only after the hook has been removed from the native list.
func (c *portListenerContext) drop() {
	if c.onInfo != 0 {
		c.onInfo.Delete()
	}
	if c.onParam != 0 {
		c.onParam.Delete()
	}
	c.pinner.Value().(*runtime.Pinner).Unpin()
	c.pinner.Delete()
}

// newPortListenerContext creates a pinned context bundling the configured
// port callbacks. Either handler may be nil.
func newPortListenerContext(info InfoChangedHandler, param ParamChangedHandler) *portListenerContext {
	ctx := portListenerContext{}
	if info != nil {
		ctx.onInfo = cgo.NewHandle(info)
	}
	if param != nil {
		ctx.onParam = cgo.NewHandle(param)
	}
	pinner := &runtime.Pinner{}
	pinner.Pin(&ctx)
	ctx.pinner = cgo.NewHandle(pinner)
	return &ctx
}
