package key

import "github.com/vinicius-lino-figueiredo/gomapper/domain"

// WithDefault sets the value returned by [Key.Get] for unset fields. The value
// is shared by every read and must not be modified in place.
func WithDefault(v any) Option {
	return func(k *Key) {
		k.dflt = v
	}
}

// WithSerialize sets the element schema of an Array key. Elements are built as
// embedded documents on write and flattened by [Key.Serialize].
func WithSerialize(e domain.Embeddable) Option {
	return func(k *Key) {
		k.opts.Serialize = e
	}
}

// WithCoercer sets the coercion engine used by the key.
func WithCoercer(c domain.Coercer) Option {
	return func(k *Key) {
		k.coercer = c
	}
}

// Option configures key behavior through the functional options pattern.
type Option func(*Key)
