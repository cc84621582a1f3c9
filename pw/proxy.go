package pw

/*
#include <pipewire/pipewire.h>
*/
import "C"
import "unsafe"

// Well-known proxy interface types
const (
	TypeInterfacePort = "PipeWire:Interface:Port"
)

// Proxy is a local stand-in for a remote object. The remoting layer that
// produces proxies is outside this package; a raw proxy pointer obtained
// from it is wrapped here so typed facades like Port can register
// listeners against it. The proxy is borrowed, never owned: closing or
// destroying it remains the producer's job, and every listener registered
// through this package must be closed before the proxy goes away.
type Proxy struct {
	ptr unsafe.Pointer // *struct pw_proxy
}

// ProxyFromRaw wraps a non-null pw_proxy pointer the caller asserts is
// valid. Panics on nil.
func ProxyFromRaw(ptr unsafe.Pointer) *Proxy {
	if ptr == nil {
		panic("pw: proxy pointer is nil")
	}
	return &Proxy{ptr: ptr}
}

// AsRaw returns the underlying *struct pw_proxy
func (p *Proxy) AsRaw() unsafe.Pointer {
	return p.ptr
}

// ID returns the proxy's local id
func (p *Proxy) ID() uint32 {
	return uint32(C.pw_proxy_get_id((*C.struct_pw_proxy)(p.ptr)))
}

// Type returns the proxy's interface type and version
func (p *Proxy) Type() (string, uint32) {
	var version C.uint32_t
	t := C.pw_proxy_get_type((*C.struct_pw_proxy)(p.ptr), &version)
	return C.GoString(t), uint32(version)
}
