// Package decoder contains the default [domain.Decoder] implementation.
package decoder

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-reflect"
	"github.com/mitchellh/mapstructure"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/indifferent"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/structure"
)

var (
	// ErrTargetNil is returned when a nil target is passed to
	// [Decoder.Decode].
	ErrTargetNil = errors.New("target interface is nil")
	// ErrNonPointer is returned when the target passed to [Decoder.Decode]
	// is not a pointer.
	ErrNonPointer = errors.New("target must be a pointer")
)

// ErrDecode wraps third party decoding errors.
type ErrDecode struct {
	Source any
	Target any
}

// Error implements [error].
func (e ErrDecode) Error() string {
	return fmt.Sprintf("cannot decode %T into %T", e.Source, e.Target)
}

// Decoder implements domain.Decoder. Attribute mappings are decoded into
// structs using the "mongo" struct tag. Input is weakly typed, so "3" can
// fill an int field, and strings in RFC 3339 format can fill time fields.
type Decoder struct{}

// NewDecoder returns a new implementation of domain.Decoder.
func NewDecoder() domain.Decoder {
	return &Decoder{}
}

// Decode implements domain.Decoder.
func (d *Decoder) Decode(source any, target any) error {
	if target == nil {
		return ErrTargetNil
	}

	value := reflect.ValueNoEscapeOf(target)
	if value.Kind() != reflect.Ptr {
		return ErrNonPointer
	}

	source = d.adjustDoc(source)

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mongo",
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(source); err != nil {
		errDec := ErrDecode{Source: source, Target: target}
		return fmt.Errorf("%w: %w", errDec, err)
	}
	return nil
}

// adjustDoc turns every mapping into a map[string]any, which is the only map
// type mapstructure reads keys from without reflection on the key type.
func (d *Decoder) adjustDoc(value any) any {
	switch t := value.(type) {
	case *indifferent.Map:
		return d.adjustDoc(t.ToMap())
	case []any:
		lst := make([]any, len(t))
		for n, v := range t {
			lst[n] = d.adjustDoc(v)
		}
		return lst
	}
	if seq, length, ok := structure.Map(value); ok {
		doc := make(map[string]any, length)
		for k, v := range seq {
			doc[k] = d.adjustDoc(v)
		}
		return doc
	}
	return value
}
