package pw

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestPortInfoRefProjection(t *testing.T) {
	params := [3]ParamInfo{
		{id: uint32(ParamEnumFormat), flags: uint32(ParamInfoRead)},
		{id: uint32(ParamFormat), flags: uint32(ParamInfoReadWrite)},
		{id: uint32(ParamProps), flags: uint32(ParamInfoWrite)},
	}
	rec := rawPortInfo{
		id:         7,
		direction:  uint32(DirectionOutput),
		changeMask: uint64(PortChangeMaskProps | PortChangeMaskParams),
		props:      nil,
		params:     &params[0],
		nParams:    3,
	}
	ref := &PortInfoRef{raw: &rec}

	require.Equal(t, uint32(7), ref.ID())
	require.Equal(t, DirectionOutput, ref.Direction())
	require.Nil(t, ref.Props(), "a null props pointer is absence, not an error")

	ps := ref.Params()
	require.Len(t, ps, 3)
	// Zero copy: the slice aliases the record's memory.
	require.Same(t, &params[1], &ps[1])

	require.Equal(t, ParamFormat, ps[1].ID())
	require.True(t, ps[1].Readable())
	require.True(t, ps[1].Writable())
	require.True(t, ps[0].Readable())
	require.False(t, ps[0].Writable())
}

func TestPortInfoRefEmptyParams(t *testing.T) {
	rec := rawPortInfo{id: 1}
	ref := &PortInfoRef{raw: &rec}
	require.Empty(t, ref.Params())

	// A non-null pointer with a zero count is still empty.
	var p ParamInfo
	rec.params = &p
	require.Empty(t, ref.Params())
}

func TestPortInfoRefProps(t *testing.T) {
	key := []byte("media.class\x00")
	value := []byte("Audio/Sink\x00")
	items := [1]rawDictItem{{key: &key[0], value: &value[0]}}
	dict := rawDict{nItems: 1, items: &items[0]}
	rec := rawPortInfo{id: 2, props: &dict}

	ref := &PortInfoRef{raw: &rec}
	props := ref.Props()
	require.NotNil(t, props)
	require.Equal(t, 1, props.Len())

	v, ok := props.Get("media.class")
	require.True(t, ok)
	require.Equal(t, "Audio/Sink", v)

	_, ok = props.Get("node.name")
	require.False(t, ok)

	seen := map[string]string{}
	props.ForEach(func(k, v string) bool {
		seen[k] = v
		return true
	})
	require.Equal(t, map[string]string{"media.class": "Audio/Sink"}, seen)
}

func TestPortInfoRefString(t *testing.T) {
	rec := rawPortInfo{
		id:         4,
		direction:  uint32(DirectionInput),
		changeMask: uint64(PortChangeMaskParams),
	}
	ref := &PortInfoRef{raw: &rec}
	require.Equal(t, "port #4 (input) change=params params=0", ref.String())
}

func TestPortInfoFromRawNil(t *testing.T) {
	require.Panics(t, func() { PortInfoFromRaw(nil) })
}

func TestPortInfoIntoRawSuppressesFree(t *testing.T) {
	rec := rawPortInfo{id: 9}
	info := PortInfoFromRaw(unsafe.Pointer(&rec))

	require.Equal(t, uint32(9), info.Ref().ID())

	ptr := info.IntoRaw()
	require.Equal(t, unsafe.Pointer(&rec), ptr)

	// Ownership left this layer: Free must not touch the record, and a
	// second transfer yields nothing.
	require.NotPanics(t, info.Free)
	require.Nil(t, info.IntoRaw())
	require.Panics(t, func() { info.Ref() })
}
