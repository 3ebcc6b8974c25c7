// Package domain contains domain-specific interfaces and value types for
// gomapper.
//
// This package defines the core interfaces that must be implemented by
// adapters, the closed set of field types understood by the coercion engine,
// and the shapes handed to a document store query call.
package domain

import (
	"iter"
	"time"
)

// Mapping is a read-only view over a set of string keyed values. It is the
// minimum a container has to offer to be treated as a condition tree or an
// attribute mapping.
type Mapping interface {
	// Iter returns a sequence of key-value pairs. Ordered containers yield
	// in insertion order.
	Iter() iter.Seq2[string, any]
	// Len returns the number of set keys.
	Len() int
}

// Document represents a mutable mapping of field names to values. It is used
// to carry canonicalized input and flattened attributes.
type Document interface {
	Mapping
	// Get returns the value under the given key, or nil if unset.
	Get(string) any
	// Set sets the value under the given key.
	Set(string, any)
	// Unset unsets the value under the given key.
	Unset(string)
	// Has reports whether a value is set under the given key.
	Has(string) bool
	// Keys returns an unordered sequence of keys in the document.
	Keys() iter.Seq[string]
}

// FieldSpecParser normalizes a projection specification.
type FieldSpecParser interface {
	// Parse returns the ordered list of field names described by spec,
	// or nil if every field should be returned.
	Parse(spec any) []string
}

// OptionsNormalizer extracts pagination, projection and sort settings from a
// loosely typed options mapping.
type OptionsNormalizer interface {
	// Normalize returns the fixed-shape options. Unknown keys are ignored.
	Normalize(options any) FindOptions
}

// CriteriaCompiler rewrites a condition tree into wire-level criteria.
type CriteriaCompiler interface {
	// Compile returns the criteria for the given conditions. It never
	// fails.
	Compile(conditions any) Criteria
}

// Coercer converts untyped values into declared field values and back.
type Coercer interface {
	// Coerce converts raw into a value of type t. It never fails: when
	// conversion is not possible, raw (or nil for unparsable integers and
	// dates) is returned.
	Coerce(t Type, raw any, field FieldOptions) any
	// TryCoerce converts raw into a value of type t, reporting failures as
	// [ErrCoerce].
	TryCoerce(t Type, raw any, field FieldOptions) (any, error)
	// Read returns the value that should be exposed for a stored value. If
	// stored is nil and dflt is not, dflt is returned as is.
	Read(t Type, stored any, dflt any) any
	// Serialize flattens every embedded document in values into its
	// attribute mapping.
	Serialize(values any) []any
}

// Embeddable is implemented by schemas whose instances can be stored inline
// in a parent document.
type Embeddable interface {
	// Embeddable reports whether instances can be embedded.
	Embeddable() bool
	// New builds an instance from an attribute mapping.
	New(attrs any) (EmbeddedDocument, error)
	// Is reports whether v is already an instance of this schema.
	Is(v any) bool
}

// EmbeddedDocument is an instance of an [Embeddable] schema.
type EmbeddedDocument interface {
	// Attributes returns the flattened attribute mapping of the instance.
	Attributes() map[string]any
}

// Decoder converts between different data representations.
type Decoder interface {
	// Decode converts from one data format to another.
	Decode(any, any) error
}

// TimeZone provides the active time zone used when coercing time values.
type TimeZone interface {
	// Location returns the active zone, or nil if none is configured.
	Location() *time.Location
}

// IDGenerator generates new document ids.
type IDGenerator interface {
	// GenerateID returns a new unique id.
	GenerateID() (string, error)
}
