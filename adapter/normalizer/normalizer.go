// Package normalizer contains the default [domain.OptionsNormalizer]
// implementation.
package normalizer

import (
	"github.com/vinicius-lino-figueiredo/gomapper/adapter/fieldspec"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/structure"
)

// Recognized option keys.
const (
	FieldsKey = "fields"
	SelectKey = "select"
	SkipKey   = "skip"
	LimitKey  = "limit"
	SortKey   = "sort"
)

// Normalizer implements [domain.OptionsNormalizer].
type Normalizer struct {
	fields domain.FieldSpecParser
}

// NewNormalizer returns a new implementation of [domain.OptionsNormalizer].
func NewNormalizer(opts ...Option) domain.OptionsNormalizer {
	n := Normalizer{}
	for _, opt := range opts {
		opt(&n)
	}
	if n.fields == nil {
		n.fields = fieldspec.NewParser()
	}
	return &n
}

// Normalize implements [domain.OptionsNormalizer]. Only fields (or its alias
// select), skip, limit and sort are read; anything else is ignored, as is an
// options value that is not a mapping.
func (n *Normalizer) Normalize(options any) domain.FindOptions {
	values := make(map[string]any)
	if seq, _, ok := structure.Map(options); ok {
		for k, v := range seq {
			values[k] = v
		}
	}

	fields := values[FieldsKey]
	if fields == nil {
		fields = values[SelectKey]
	}

	return domain.NewFindOptions(
		domain.WithFindFields(n.fields.Parse(fields)),
		domain.WithFindSkip(n.count(values[SkipKey])),
		domain.WithFindLimit(n.count(values[LimitKey])),
		domain.WithFindSort(values[SortKey]),
	)
}

// count reads a non-negative integer, defaulting to zero.
func (n *Normalizer) count(v any) int64 {
	c, ok := structure.AsInt64(v)
	if !ok {
		return 0
	}
	return max(c, 0)
}
