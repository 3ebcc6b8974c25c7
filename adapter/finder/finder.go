// Package finder composes criteria compilation and options normalization over
// a single input mapping.
package finder

import (
	"github.com/vinicius-lino-figueiredo/gomapper/adapter/compiler"
	"github.com/vinicius-lino-figueiredo/gomapper/adapter/data"
	"github.com/vinicius-lino-figueiredo/gomapper/adapter/normalizer"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/structure"
)

// ConditionsKey is the input key holding the condition tree.
const ConditionsKey = "conditions"

// FinderQuery holds the conditions and options of a query. Criteria and
// options are derived again on every call, so changes made to the stored
// conditions are picked up.
type FinderQuery struct {
	conditions any
	options    data.M
	compiler   domain.CriteriaCompiler
	normalizer domain.OptionsNormalizer
}

// New returns a FinderQuery for input, which must be a mapping: a map of any
// key type or a [domain.Mapping]. Keys are converted to their canonical string
// form. Any other input, structs included, fails with
// [domain.ErrInvalidArgument].
func New(input any, opts ...Option) (*FinderQuery, error) {
	seq, _, ok := structure.Map(input)
	if !ok {
		return nil, domain.ErrInvalidArgument{Value: input}
	}

	f := FinderQuery{options: make(data.M)}
	for k, v := range seq {
		f.options[k] = v
	}
	f.conditions = f.options.Get(ConditionsKey)
	f.options.Unset(ConditionsKey)
	if f.conditions == nil {
		f.conditions = make(data.M)
	}

	for _, opt := range opts {
		opt(&f)
	}
	if f.compiler == nil {
		f.compiler = compiler.NewCompiler()
	}
	if f.normalizer == nil {
		f.normalizer = normalizer.NewNormalizer()
	}
	return &f, nil
}

// Conditions returns the stored condition tree. It is not a copy.
func (f *FinderQuery) Conditions() any {
	return f.conditions
}

// RawOptions returns the stored option values, conditions excluded. It is not
// a copy.
func (f *FinderQuery) RawOptions() data.M {
	return f.options
}

// Criteria returns the criteria compiled from the stored conditions.
func (f *FinderQuery) Criteria() domain.Criteria {
	return f.compiler.Compile(f.conditions)
}

// Options returns the options normalized from the stored option values.
func (f *FinderQuery) Options() domain.FindOptions {
	return f.normalizer.Normalize(f.options)
}

// Query returns the criteria and the options together.
func (f *FinderQuery) Query() (domain.Criteria, domain.FindOptions) {
	return f.Criteria(), f.Options()
}

// Spec returns the criteria and the options as a single value.
func (f *FinderQuery) Spec() domain.FinderQuerySpec {
	return domain.FinderQuerySpec{
		Criteria:    f.Criteria(),
		FindOptions: f.Options(),
	}
}
