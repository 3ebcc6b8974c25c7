// Package gomapper compiles loose query conditions into document store
// criteria and coerces untyped values into declared field types.
//
// Queries start with [NewFinderQuery], which takes a single options mapping
// and splits it into criteria and find options:
//
//	q, err := gomapper.NewFinderQuery(map[string]any{
//		"conditions": map[string]any{"tags": []string{"go", "db"}},
//		"fields":     "name, tags",
//		"limit":      "10",
//	})
//
// Field values are typed through a [Key], created with [NewKey] once per
// declared field and shared by every document of a schema.
package gomapper

import (
	"github.com/vinicius-lino-figueiredo/gomapper/adapter/coercer"
	"github.com/vinicius-lino-figueiredo/gomapper/adapter/finder"
	"github.com/vinicius-lino-figueiredo/gomapper/adapter/key"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
)

var (
	// ErrUnparsable is the cause of an [ErrCoerce] when a value has the
	// right shape but does not denote a value of the declared type.
	ErrUnparsable = domain.ErrUnparsable
	// ErrUnsupported is the cause of an [ErrCoerce] when a value cannot
	// be converted to the declared type at all.
	ErrUnsupported = domain.ErrUnsupported
	// ErrNoKeyName is returned by [NewKey] when the name is empty.
	ErrNoKeyName = domain.ErrNoKeyName
	// ErrNotEmbedded is returned when an embedded document is built from
	// something other than an attribute mapping.
	ErrNotEmbedded = domain.ErrNotEmbedded
)

// ErrInvalidArgument is returned by [NewFinderQuery] when its input is not a
// mapping.
type ErrInvalidArgument = domain.ErrInvalidArgument

// ErrCoerce is returned by [Coercer.TryCoerce] when a value cannot be
// converted to the declared type.
type ErrCoerce = domain.ErrCoerce

// Criteria is a wire-level filter tree.
type Criteria = domain.Criteria

// FindOptions holds the pagination, projection and sort options of a query.
type FindOptions = domain.FindOptions

// FinderQuerySpec holds both criteria and options of a query.
type FinderQuerySpec = domain.FinderQuerySpec

// Symbol is a symbolic key name, equivalent to a string with the same text.
type Symbol = domain.Symbol

// Type is the declared type of a field.
type Type = domain.Type

// Kind identifies a field type.
type Kind = domain.Kind

// Coercer converts values into declared field types and back.
type Coercer = domain.Coercer

// Embeddable is implemented by schemas of embedded documents.
type Embeddable = domain.Embeddable

// EmbeddedDocument is an instance of an [Embeddable] schema.
type EmbeddedDocument = domain.EmbeddedDocument

// FinderQuery holds the conditions and options of a query.
type FinderQuery = finder.FinderQuery

// Key describes one declared field of a document schema.
type Key = key.Key

// Field types.
var (
	Untyped = domain.Type{}
	String  = domain.Primitive(domain.String)
	Float   = domain.Primitive(domain.Float)
	Integer = domain.Primitive(domain.Integer)
	Boolean = domain.Primitive(domain.Boolean)
	Array   = domain.Primitive(domain.Array)
	Hash    = domain.Primitive(domain.Hash)
	Time    = domain.Primitive(domain.Time)
	Date    = domain.Primitive(domain.Date)
)

// EmbeddedType returns the type of fields holding instances of schema.
func EmbeddedType(schema Embeddable) Type {
	return domain.EmbeddedType(schema)
}

// NewFinderQuery returns a [FinderQuery] for input, which must be a mapping.
// The "conditions" entry becomes the criteria; fields (or select), skip, limit
// and sort become the options. Other entries are ignored. Options:
//
// - [finder.WithCompiler]: sets the criteria compiler.
//
// - [finder.WithNormalizer]: sets the options normalizer.
func NewFinderQuery(input any, options ...finder.Option) (*FinderQuery, error) {
	return finder.New(input, options...)
}

// NewKey returns a [Key] named name, of type t. Options:
//
// - [key.WithDefault]: sets the value read for unset fields.
//
// - [key.WithSerialize]: sets the element schema of an Array key.
//
// - [key.WithCoercer]: sets the coercion engine, for example one built with
// [coercer.WithTimeZone].
func NewKey(name string, t Type, options ...key.Option) (*Key, error) {
	return key.New(name, t, options...)
}

// NewCoercer returns the default [Coercer]. Options:
//
// - [coercer.WithTimeZone]: sets the zone times are converted to.
//
// - [coercer.WithLogger]: sets the logger that receives coercion fallbacks.
func NewCoercer(options ...coercer.Option) Coercer {
	return coercer.NewCoercer(options...)
}
