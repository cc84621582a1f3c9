package pw

/*
#include <pipewire/pipewire.h>
*/
import "C"
import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"
)

// PortInfoRef is a read-only, zero-copy view over a native port info
// record. It never owns the record and must not outlive it; views handed
// to an InfoChangedHandler are only valid for the duration of the
// callback.
type PortInfoRef struct {
	raw *rawPortInfo
}

// ID returns the port's object id
func (r *PortInfoRef) ID() uint32 {
	return r.raw.id
}

// Direction returns the port direction
func (r *PortInfoRef) Direction() Direction {
	return Direction(r.raw.direction)
}

// ChangeMask tells which fields changed since the previous notification
func (r *PortInfoRef) ChangeMask() PortChangeMask {
	return PortChangeMask(r.raw.changeMask)
}

// Props returns the port's property dictionary, or nil when the record
// carries none. The dictionary is borrowed from the record.
func (r *PortInfoRef) Props() *Dict {
	if r.raw.props == nil {
		return nil
	}
	return &Dict{raw: r.raw.props}
}

// Params returns the port's parameter descriptors as a zero-copy slice
// over the record's memory. Empty when the record carries none.
func (r *PortInfoRef) Params() []ParamInfo {
	if r.raw.params == nil || r.raw.nParams == 0 {
		return nil
	}
	return unsafe.Slice(r.raw.params, int(r.raw.nParams))
}

// AsRaw returns the underlying *struct pw_port_info
func (r *PortInfoRef) AsRaw() unsafe.Pointer {
	return unsafe.Pointer(r.raw)
}

func (r *PortInfoRef) String() string {
	return fmt.Sprintf("port #%d (%s) change=%s params=%d",
		r.ID(), r.Direction(), r.ChangeMask(), len(r.Params()))
}

// PortInfo is the owned variant of a port info record: it exclusively
// owns the backing native allocation and frees it exactly once, unless
// ownership is transferred out with IntoRaw.
type PortInfo struct {
	raw         *rawPortInfo
	releaseOnce sync.Once
}

// PortInfoFromRaw takes ownership of a pw_port_info pointer the caller
// asserts is valid. Panics on nil.
func PortInfoFromRaw(ptr unsafe.Pointer) *PortInfo {
	if ptr == nil {
		panic("pw: port info pointer is nil")
	}
	i := &PortInfo{raw: (*rawPortInfo)(ptr)}
	runtime.SetFinalizer(i, (*PortInfo).Free)
	return i
}

// Ref returns the borrowed view over the record. Panics after the record
// has been freed or transferred out.
func (i *PortInfo) Ref() *PortInfoRef {
	if i.raw == nil {
		panic("pw: port info already released")
	}
	return &PortInfoRef{raw: i.raw}
}

// IntoRaw transfers ownership of the record to the caller, suppressing
// the automatic free. Returns nil when the record was already released.
func (i *PortInfo) IntoRaw() unsafe.Pointer {
	var ptr unsafe.Pointer
	i.releaseOnce.Do(func() {
		ptr = unsafe.Pointer(i.raw)
		i.raw = nil
		runtime.SetFinalizer(i, nil)
	})
	return ptr
}

// Free releases the native record. Idempotent, and a no-op after IntoRaw.
func (i *PortInfo) Free() {
	i.releaseOnce.Do(func() {
		C.pw_port_info_free((*C.struct_pw_port_info)(unsafe.Pointer(i.raw)))
		i.raw = nil
		runtime.SetFinalizer(i, nil)
	})
}
