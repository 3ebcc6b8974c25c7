// Package key contains the field metadata used by document schemas.
package key

import (
	"github.com/vinicius-lino-figueiredo/gomapper/adapter/coercer"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
)

// Key describes one declared field of a document schema: its name, type and
// default. A Key is immutable once built and is meant to be shared by every
// document of its schema, concurrently if needed.
type Key struct {
	name    string
	typ     domain.Type
	dflt    any
	opts    domain.FieldOptions
	coercer domain.Coercer
}

// New returns a Key for the field name of type t. It fails with
// [domain.ErrNoKeyName] if name is empty.
func New(name string, t domain.Type, opts ...Option) (*Key, error) {
	if name == "" {
		return nil, domain.ErrNoKeyName
	}
	k := Key{name: name, typ: t}
	for _, opt := range opts {
		opt(&k)
	}
	if k.coercer == nil {
		k.coercer = coercer.NewCoercer()
	}
	return &k, nil
}

// Name returns the field name.
func (k *Key) Name() string { return k.name }

// Type returns the declared type.
func (k *Key) Type() domain.Type { return k.typ }

// Default returns the default value, or nil if none was set.
func (k *Key) Default() any { return k.dflt }

// Options returns the field options.
func (k *Key) Options() domain.FieldOptions { return k.opts }

// Equal reports whether k and other describe the same field. Defaults and
// options are not compared.
func (k *Key) Equal(other *Key) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.name == other.name && k.typ.Equal(other.typ)
}

// Native reports whether the key holds a primitive or untyped value.
func (k *Key) Native() bool {
	return k.typ.Kind() != domain.Embedded
}

// EmbeddedDocument reports whether the key holds an embedded document.
func (k *Key) EmbeddedDocument() bool {
	return k.typ.Kind() == domain.Embedded
}

// Set returns value converted to the key type, as it should be stored.
func (k *Key) Set(value any) any {
	return k.coercer.Coerce(k.typ, value, k.opts)
}

// Get returns the value that should be read for a stored value.
func (k *Key) Get(value any) any {
	return k.coercer.Read(k.typ, value, k.dflt)
}

// Serialize flattens the embedded documents of an Array key with an element
// schema into attribute mappings. Values of any other key are returned
// unchanged.
func (k *Key) Serialize(values any) any {
	if k.typ.Kind() != domain.Array || k.opts.Serialize == nil {
		return values
	}
	return k.coercer.Serialize(values)
}
