package pw

/*
#include <pipewire/pipewire.h>
*/
import "C"
import "unsafe"

// Compile-time layout checks: the hand-written mirrors in raw.go must
// match the C structs the native side hands us. A negative array length
// fails the build in either direction.
var (
	_ [unsafe.Sizeof(rawPortInfo{}) - C.sizeof_struct_pw_port_info]byte
	_ [C.sizeof_struct_pw_port_info - unsafe.Sizeof(rawPortInfo{})]byte
	_ [unsafe.Sizeof(ParamInfo{}) - C.sizeof_struct_spa_param_info]byte
	_ [C.sizeof_struct_spa_param_info - unsafe.Sizeof(ParamInfo{})]byte
	_ [unsafe.Sizeof(rawDict{}) - C.sizeof_struct_spa_dict]byte
	_ [C.sizeof_struct_spa_dict - unsafe.Sizeof(rawDict{})]byte
	_ [unsafe.Sizeof(rawDictItem{}) - C.sizeof_struct_spa_dict_item]byte
	_ [C.sizeof_struct_spa_dict_item - unsafe.Sizeof(rawDictItem{})]byte
	_ [unsafe.Sizeof(rawPod{}) - C.sizeof_struct_spa_pod]byte
	_ [C.sizeof_struct_spa_pod - unsafe.Sizeof(rawPod{})]byte
)
