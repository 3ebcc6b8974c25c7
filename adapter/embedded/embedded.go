// Package embedded contains a generic [domain.Embeddable] implementation that
// stores any Go struct inline in a parent document.
package embedded

import (
	"fmt"

	"github.com/vinicius-lino-figueiredo/gomapper/adapter/data"
	"github.com/vinicius-lino-figueiredo/gomapper/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/structure"
)

// IDKey is the attribute holding the id of an embedded document.
const IDKey = "_id"

// Schema implements [domain.Embeddable] for values of type T. Schemas are
// compared by identity: a document built by one schema is not an instance of
// another, even for the same T.
type Schema[T any] struct {
	opts options
}

// NewSchema returns a new schema for T.
func NewSchema[T any](opts ...Option) *Schema[T] {
	s := Schema[T]{}
	for _, opt := range opts {
		opt(&s.opts)
	}
	if s.opts.dec == nil {
		s.opts.dec = decoder.NewDecoder()
	}
	return &s
}

// Embeddable implements [domain.Embeddable].
func (s *Schema[T]) Embeddable() bool { return true }

// New implements [domain.Embeddable]. A nil attrs builds a zero instance.
func (s *Schema[T]) New(attrs any) (domain.EmbeddedDocument, error) {
	doc := &Document[T]{schema: s}
	if attrs != nil {
		seq, _, ok := structure.Map(attrs)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", domain.ErrNotEmbedded, attrs)
		}
		for k, v := range seq {
			if k == IDKey && v != nil {
				doc.id = structure.Key(v)
			}
		}
		if err := s.opts.dec.Decode(attrs, &doc.Value); err != nil {
			return nil, err
		}
	}
	if doc.id == "" && s.opts.ids != nil {
		id, err := s.opts.ids.GenerateID()
		if err != nil {
			return nil, err
		}
		doc.id = id
	}
	return doc, nil
}

// Is implements [domain.Embeddable].
func (s *Schema[T]) Is(v any) bool {
	doc, ok := v.(*Document[T])
	return ok && doc != nil && doc.schema == s
}

// Document is an instance of a [Schema].
type Document[T any] struct {
	schema *Schema[T]
	id     string
	// Value holds the decoded attributes.
	Value T
}

// ID returns the id of the document, or an empty string if it has none.
func (d *Document[T]) ID() string { return d.id }

// Attributes implements [domain.EmbeddedDocument]. Struct fields are named
// after their "mongo" tag.
func (d *Document[T]) Attributes() map[string]any {
	attrs := make(map[string]any)
	if doc, err := data.NewDocument(d.Value); err == nil {
		for k, v := range doc.Iter() {
			attrs[k] = v
		}
	}
	if d.id != "" {
		attrs[IDKey] = d.id
	}
	return attrs
}
