package pw

/*
#include <pipewire/pipewire.h>
*/
import "C"
import "unsafe"

// The exported functions below are the fixed-signature free functions the
// native side invokes. They only translate C types and forward to the
// dispatch layer; other files in this package declare them extern in
// their preambles to take their addresses.

//export goSignalInvoke
func goSignalInvoke(data unsafe.Pointer, signalNumber C.int) {
	dispatchSignal(data, int(signalNumber))
}

//export goPortEventInfo
func goPortEventInfo(data unsafe.Pointer, info *C.struct_pw_port_info) {
	dispatchPortInfo(data, (*rawPortInfo)(unsafe.Pointer(info)))
}

//export goPortEventParam
func goPortEventParam(data unsafe.Pointer, seq C.int, id, index, next C.uint32_t, param *C.struct_spa_pod) {
	dispatchPortParam(data, int32(seq), uint32(id), uint32(index), uint32(next),
		(*rawPod)(unsafe.Pointer(param)))
}
