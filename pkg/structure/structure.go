// Package structure contains type-related operations, such as iterating over a
// value of type any and converting numbers.
package structure

import (
	"fmt"
	"iter"
	"reflect"
	"time"

	goreflect "github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
)

// ErrorNonObject is returned when a value that is not a mapping is used where
// one is required.
type ErrorNonObject struct {
	Type goreflect.Type
}

func (e ErrorNonObject) Error() string {
	if e.Type == nil {
		return "expected object"
	}
	return "expected object, got " + e.Type.String()
}

// Key returns the canonical string form of a mapping key. Strings and
// [domain.Symbol] values keep their text, [fmt.Stringer] implementations use
// their String method and anything else is formatted with [fmt.Sprint].
func Key(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case domain.Symbol:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(k)
	}
}

// Map returns an iterator over obj if it is a mapping: any map kind or
// implementation of [domain.Mapping]. Structs are not mappings here, so
// values such as [time.Time] are reported as scalars.
func Map(obj any) (iter.Seq2[string, any], int, bool) {
	switch t := obj.(type) {
	case nil:
		return nil, 0, false
	case domain.Mapping:
		return t.Iter(), t.Len(), true
	case map[string]any:
		return iterMap(t), len(t), true
	case map[domain.Symbol]any:
		return iterSymbolMap(t), len(t), true
	case map[string]string:
		return iterMap(t), len(t), true
	case map[string]int:
		return iterMap(t), len(t), true
	case map[string]float64:
		return iterMap(t), len(t), true
	case map[string]bool:
		return iterMap(t), len(t), true
	}
	v := goreflect.ValueNoEscapeOf(obj)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, 0, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Map {
		return nil, 0, false
	}
	if v.IsNil() {
		return iterMap(map[string]any{}), 0, true
	}
	return iterReflectMap(v), v.Len(), true
}

func iterReflectMap(v goreflect.Value) iter.Seq2[string, any] {
	keys := v.MapKeys()
	return func(yield func(string, any) bool) {
		for _, k := range keys {
			if !yield(Key(k.Interface()), v.MapIndex(k).Interface()) {
				return
			}
		}
	}
}

func iterMap[T any](m map[string]T) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}

func iterSymbolMap(m map[domain.Symbol]any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for k, v := range m {
			if !yield(string(k), v) {
				return
			}
		}
	}
}

// List returns an iterator over obj if it is a slice or an array other than
// a byte slice.
func List(obj any) (iter.Seq[any], int, bool) {
	switch t := obj.(type) {
	case nil, []byte, string:
		return nil, 0, false
	case []any:
		return iterSlice(t), len(t), true
	case []string:
		return iterSlice(t), len(t), true
	case []int:
		return iterSlice(t), len(t), true
	case []int64:
		return iterSlice(t), len(t), true
	case []float64:
		return iterSlice(t), len(t), true
	case []bool:
		return iterSlice(t), len(t), true
	case []map[string]any:
		return iterSlice(t), len(t), true
	case []time.Time:
		return iterSlice(t), len(t), true
	}
	v := goreflect.ValueNoEscapeOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, 0, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return nil, 0, false
		}
		return iterReflectList(v), v.Len(), true
	default:
		return nil, 0, false
	}
}

func iterReflectList(v goreflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range v.Len() {
			if !yield(v.Index(i).Interface()) {
				return
			}
		}
	}
}

func iterSlice[T any](m []T) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range m {
			if !yield(v) {
				return
			}
		}
	}
}

// IsInteger reports whether v holds a value of any built-in integer type.
func IsInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
