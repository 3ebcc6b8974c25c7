package embedded

import "github.com/vinicius-lino-figueiredo/gomapper/domain"

// WithDecoder sets the decoder used to build instances from attribute
// mappings.
func WithDecoder(d domain.Decoder) Option {
	return func(o *options) {
		o.dec = d
	}
}

// WithIDGenerator sets the generator used to give an "_id" to instances built
// from attributes that carry none. Without it, such instances have no id.
func WithIDGenerator(g domain.IDGenerator) Option {
	return func(o *options) {
		o.ids = g
	}
}

// Option configures schema behavior through the functional options pattern.
type Option func(*options)

type options struct {
	dec domain.Decoder
	ids domain.IDGenerator
}
