package normalizer

import "github.com/vinicius-lino-figueiredo/gomapper/domain"

// WithFieldSpecParser sets the parser used for the fields option.
func WithFieldSpecParser(p domain.FieldSpecParser) Option {
	return func(n *Normalizer) {
		n.fields = p
	}
}

// Option configures normalizer behavior through the functional options
// pattern.
type Option func(*Normalizer)
