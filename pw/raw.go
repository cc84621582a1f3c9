package pw

import "unsafe"

// Hand-written mirrors of the native records this package reads. Layouts
// must match the C structs byte for byte on LP64; abi.go carries
// compile-time size checks against the real headers. Keeping the mirrors
// free of cgo lets the view and dispatch layers be exercised with
// synthetic records.

// rawPortInfo mirrors struct pw_port_info.
type rawPortInfo struct {
	id         uint32
	direction  uint32
	changeMask uint64
	props      *rawDict
	params     *ParamInfo
	nParams    uint32
}

// rawDict mirrors struct spa_dict. items points to the first of nItems
// entries; spa_dict is not a variable-length container, the count is
// explicit.
type rawDict struct {
	flags  uint32
	nItems uint32
	items  *rawDictItem
}

// rawDictItem mirrors struct spa_dict_item.
type rawDictItem struct {
	key   *byte
	value *byte
}

// rawPod mirrors the struct spa_pod header.
type rawPod struct {
	size uint32
	typ  uint32
}

// goString reads a NUL-terminated C string without cgo.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice(p, n))
}
