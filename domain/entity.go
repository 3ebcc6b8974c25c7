package domain

import "fmt"

// Symbol is a symbolic key name. Canonicalization and indifferent mappings
// treat a Symbol and a string with the same text as the same key.
type Symbol string

// String implements [fmt.Stringer].
func (s Symbol) String() string { return string(s) }

// Criteria is a wire-level filter tree, as expected by a document store query
// call. Nested condition mappings compile to nested Criteria.
type Criteria map[string]any

// FinderQuerySpec is the full result of a finder query: the criteria and the
// options that should be passed unmodified to the store.
type FinderQuerySpec struct {
	Criteria Criteria
	FindOptions
}

// Kind identifies one of the field types understood by the coercion engine.
type Kind uint8

// Supported kinds.
const (
	Untyped Kind = iota
	String
	Float
	Integer
	Boolean
	Array
	Hash
	Time
	Date
	Embedded
)

var kindNames = [...]string{
	Untyped:  "Untyped",
	String:   "String",
	Float:    "Float",
	Integer:  "Integer",
	Boolean:  "Boolean",
	Array:    "Array",
	Hash:     "Hash",
	Time:     "Time",
	Date:     "Date",
	Embedded: "Embedded",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Type is the declared type of a field. It is either a primitive kind, an
// embedded schema or untyped, and is decided once when the field is
// declared. The zero value is untyped.
type Type struct {
	kind   Kind
	schema Embeddable
}

// Primitive returns the Type for a primitive kind. [Untyped], [Embedded] and
// unknown kinds yield an untyped Type.
func Primitive(k Kind) Type {
	if k == Embedded || k > Date {
		return Type{}
	}
	return Type{kind: k}
}

// EmbeddedType returns the Type for fields holding instances of schema. A nil
// schema, or one that cannot be embedded, yields an untyped Type. Schemas are
// compared by identity, so implementations should be pointers.
func EmbeddedType(schema Embeddable) Type {
	if schema == nil || !schema.Embeddable() {
		return Type{}
	}
	return Type{kind: Embedded, schema: schema}
}

// Kind returns the kind of t.
func (t Type) Kind() Kind { return t.kind }

// Schema returns the embedded schema of t, or nil for other kinds.
func (t Type) Schema() Embeddable { return t.schema }

// Equal reports whether t and o describe the same type.
func (t Type) Equal(o Type) bool {
	return t.kind == o.kind && t.schema == o.schema
}

// String implements [fmt.Stringer].
func (t Type) String() string {
	if t.kind == Embedded {
		return fmt.Sprintf("Embedded(%T)", t.schema)
	}
	return t.kind.String()
}

// FieldOptions holds per-field settings that change coercion behavior.
type FieldOptions struct {
	// Serialize is the element schema of an Array field. When set,
	// elements are built as embedded documents on write and flattened on
	// serialization.
	Serialize Embeddable
}
