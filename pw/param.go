package pw

import (
	"fmt"
	"strings"
)

// Direction tells whether a port consumes or produces data
type Direction uint32

const (
	// DirectionInput is a port that consumes data
	DirectionInput Direction = 0
	// DirectionOutput is a port that produces data
	DirectionOutput Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirectionInput:
		return "input"
	case DirectionOutput:
		return "output"
	}
	return fmt.Sprintf("direction(%d)", uint32(d))
}

// ParamType identifies a kind of parameter (enum spa_param_type)
type ParamType uint32

const (
	ParamInvalid ParamType = iota
	ParamPropInfo
	ParamProps
	ParamEnumFormat
	ParamFormat
	ParamBuffers
	ParamMeta
	ParamIO
	ParamEnumProfile
	ParamProfile
	ParamEnumPortConfig
	ParamPortConfig
	ParamEnumRoute
	ParamRoute
	ParamControl
	ParamLatency
	ParamProcessLatency
	ParamTag
)

// IDAny is the reserved sentinel meaning "any parameter kind"
// (SPA_ID_INVALID on the wire).
const IDAny ParamType = 0xffffffff

// ParamInfoFlags qualify a parameter descriptor
type ParamInfoFlags uint32

const (
	// ParamInfoSerial indicates the param info changed since the last update
	ParamInfoSerial ParamInfoFlags = 1 << 0
	// ParamInfoRead indicates the parameter can be read
	ParamInfoRead ParamInfoFlags = 1 << 1
	// ParamInfoWrite indicates the parameter can be written
	ParamInfoWrite ParamInfoFlags = 1 << 2
	// ParamInfoReadWrite indicates the parameter can be read and written
	ParamInfoReadWrite = ParamInfoRead | ParamInfoWrite
)

// ParamInfo describes one parameter a port supports. It mirrors
// struct spa_param_info and is only ever borrowed from a native info
// record; see PortInfoRef.Params.
type ParamInfo struct {
	id    uint32
	flags uint32
	user  uint32
	_     [5]uint32
}

// ID returns the parameter kind this descriptor is about
func (p *ParamInfo) ID() ParamType {
	return ParamType(p.id)
}

// Flags returns the descriptor's flag bits
func (p *ParamInfo) Flags() ParamInfoFlags {
	return ParamInfoFlags(p.flags)
}

// Readable reports whether the parameter can be read
func (p *ParamInfo) Readable() bool {
	return p.Flags()&ParamInfoRead != 0
}

// Writable reports whether the parameter can be written
func (p *ParamInfo) Writable() bool {
	return p.Flags()&ParamInfoWrite != 0
}

// PortChangeMask tells which fields of a port info record changed since
// the previous notification. Bits are tested by membership, never by
// position.
type PortChangeMask uint64

const (
	// PortChangeMaskProps is set when the property dictionary changed
	PortChangeMaskProps PortChangeMask = 1 << 0
	// PortChangeMaskParams is set when the parameter descriptors changed
	PortChangeMaskParams PortChangeMask = 1 << 1

	// PortChangeMaskAll covers every known change bit
	PortChangeMaskAll = PortChangeMaskProps | PortChangeMaskParams
)

// Has reports whether every bit in bits is set in the mask
func (m PortChangeMask) Has(bits PortChangeMask) bool {
	return m&bits == bits
}

func (m PortChangeMask) String() string {
	var parts []string
	if m.Has(PortChangeMaskProps) {
		parts = append(parts, "props")
	}
	if m.Has(PortChangeMaskParams) {
		parts = append(parts, "params")
	}
	if rest := m &^ PortChangeMaskAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint64(rest)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
