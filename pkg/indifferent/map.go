// Package indifferent provides an ordered mapping whose keys may be given
// either as strings or as [domain.Symbol] values, both addressing the same
// entry.
package indifferent

import (
	"iter"
	"maps"
	"slices"

	goreflect "github.com/goccy/go-reflect"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vinicius-lino-figueiredo/gomapper/domain"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/structure"
)

// Map is an insertion-ordered mapping with indifferent key access. The zero
// value is not usable; create instances with [New] or [From]. Map is not safe
// for concurrent writes.
type Map struct {
	om *orderedmap.OrderedMap[string, any]
}

// New returns an empty Map.
func New() *Map {
	return &Map{om: orderedmap.New[string, any]()}
}

// From returns a Map holding a deep copy of src. Nested mappings, including
// those found inside slices, are converted into Maps too. Entries of ordered
// sources keep their order; entries of Go maps are inserted in ascending key
// order. A nil src yields an empty Map. The error is a
// [structure.ErrorNonObject] if src is not a mapping.
func From(src any) (*Map, error) {
	m := New()
	if src == nil {
		return m, nil
	}
	seq, _, ok := structure.Map(src)
	if !ok {
		return nil, structure.ErrorNonObject{Type: goreflect.TypeOf(src)}
	}
	if _, ordered := src.(domain.Mapping); ordered {
		for k, v := range seq {
			m.om.Set(k, convert(v))
		}
		return m, nil
	}
	values := make(map[string]any)
	for k, v := range seq {
		values[k] = v
	}
	for _, k := range slices.Sorted(maps.Keys(values)) {
		m.om.Set(k, convert(values[k]))
	}
	return m, nil
}

func convert(v any) any {
	if _, _, ok := structure.Map(v); ok {
		if m, err := From(v); err == nil {
			return m
		}
	}
	if list, ok := v.([]any); ok {
		res := make([]any, len(list))
		for n, item := range list {
			res[n] = convert(item)
		}
		return res
	}
	return v
}

// Get returns the value under key, or nil if unset.
func (m *Map) Get(key any) any {
	v, _ := m.om.Get(structure.Key(key))
	return v
}

// Lookup returns the value under key and whether it is set.
func (m *Map) Lookup(key any) (any, bool) {
	return m.om.Get(structure.Key(key))
}

// Set sets the value under key. Existing keys keep their position.
func (m *Map) Set(key any, value any) {
	m.om.Set(structure.Key(key), value)
}

// Delete removes key from the Map.
func (m *Map) Delete(key any) {
	m.om.Delete(structure.Key(key))
}

// Has reports whether key is set.
func (m *Map) Has(key any) bool {
	_, ok := m.om.Get(structure.Key(key))
	return ok
}

// Len implements [domain.Mapping].
func (m *Map) Len() int {
	return m.om.Len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.om.Len())
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Iter implements [domain.Mapping]. Pairs are yielded in insertion order.
func (m *Map) Iter() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// ToMap returns a plain map copy of m. Nested Maps are converted too.
func (m *Map) ToMap() map[string]any {
	res := make(map[string]any, m.om.Len())
	for k, v := range m.Iter() {
		res[k] = unconvert(v)
	}
	return res
}

func unconvert(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.ToMap()
	case []any:
		res := make([]any, len(t))
		for n, item := range t {
			res[n] = unconvert(item)
		}
		return res
	default:
		return v
	}
}

// MarshalJSON implements [encoding/json.Marshaler], keeping key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	return m.om.MarshalJSON()
}
