package pw

import "unsafe"

// The dispatch functions are the Go halves of the trampolines in
// callbacks.go: they reconstitute the closure context from the opaque data
// pointer, decode the native arguments into safe types and invoke the user
// closure under safeCall. A nil context can only mean a logic bug in this
// layer, so it is a fatal contract violation rather than an error.

func dispatchSignal(data unsafe.Pointer, signalNumber int) {
	if data == nil {
		panic("pw: signal trampoline invoked with nil context")
	}
	ctx := (*signalContext)(data)
	logger.Debug("signal event", "signal", signalNumber)
	_ = safeCall(func() error {
		ctx.invoke()
		return nil
	})
}

func dispatchPortInfo(data unsafe.Pointer, info *rawPortInfo) {
	if data == nil {
		panic("pw: port info trampoline invoked with nil context")
	}
	if info == nil {
		panic("pw: port info event carried a nil record")
	}
	ctx := (*portListenerContext)(data)
	// The native side skips unset event slots; mirror that here.
	if !ctx.hasInfo() {
		return
	}
	ref := &PortInfoRef{raw: info}
	logger.Debug("port info event", "id", ref.ID(), "change_mask", ref.ChangeMask().String())
	_ = safeCall(func() error {
		ctx.invokeInfo(ref)
		return nil
	})
}

func dispatchPortParam(data unsafe.Pointer, seq int32, id uint32, index, next uint32, pod *rawPod) {
	if data == nil {
		panic("pw: port param trampoline invoked with nil context")
	}
	ctx := (*portListenerContext)(data)
	if !ctx.hasParam() {
		return
	}
	// Never expose a raw null payload to user code.
	var payload *Pod
	if pod != nil {
		payload = &Pod{raw: pod}
	}
	logger.Debug("port param event", "seq", seq, "id", id, "index", index, "next", next)
	_ = safeCall(func() error {
		ctx.invokeParam(seq, ParamType(id), index, next, payload)
		return nil
	})
}
