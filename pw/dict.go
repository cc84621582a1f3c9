package pw

import "unsafe"

// Dict is a read-only view over a native spa_dict. It is borrowed from
// the record it came from and must not outlive it; keys and values are
// copied out on access.
type Dict struct {
	raw *rawDict
}

// Len returns the number of entries
func (d *Dict) Len() int {
	return int(d.raw.nItems)
}

func (d *Dict) items() []rawDictItem {
	if d.raw.items == nil || d.raw.nItems == 0 {
		return nil
	}
	return unsafe.Slice(d.raw.items, int(d.raw.nItems))
}

// Get looks up the value for key. The second return is false when the
// key is absent.
func (d *Dict) Get(key string) (string, bool) {
	for _, item := range d.items() {
		if goString(item.key) == key {
			return goString(item.value), true
		}
	}
	return "", false
}

// ForEach calls fn for every entry until fn returns false
func (d *Dict) ForEach(fn func(key, value string) bool) {
	for _, item := range d.items() {
		if !fn(goString(item.key), goString(item.value)) {
			return
		}
	}
}
