package pw

import "unsafe"

// Pod is an opaque, externally parsed parameter payload. This package
// never interprets its contents; it only carries a read-only reference
// from the param trampoline to user code. A Pod handed to a
// ParamChangedHandler is borrowed and must not be retained beyond the
// callback.
type Pod struct {
	raw *rawPod
}

// Size returns the payload size in bytes, excluding the header
func (p *Pod) Size() uint32 {
	return p.raw.size
}

// Type returns the raw spa type code of the payload
func (p *Pod) Type() uint32 {
	return p.raw.typ
}

// AsRaw returns the underlying *struct spa_pod for external parsers
func (p *Pod) AsRaw() unsafe.Pointer {
	return unsafe.Pointer(p.raw)
}
