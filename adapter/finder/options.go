package finder

import "github.com/vinicius-lino-figueiredo/gomapper/domain"

// WithCompiler sets the compiler used to derive criteria from the stored
// conditions.
func WithCompiler(c domain.CriteriaCompiler) Option {
	return func(f *FinderQuery) {
		f.compiler = c
	}
}

// WithNormalizer sets the normalizer used to derive options from the stored
// option values.
func WithNormalizer(n domain.OptionsNormalizer) Option {
	return func(f *FinderQuery) {
		f.normalizer = n
	}
}

// Option configures finder behavior through the functional options pattern.
type Option func(*FinderQuery)
