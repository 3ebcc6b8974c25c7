package coercer

import (
	"log/slog"

	"github.com/vinicius-lino-figueiredo/gomapper/domain"
)

// WithTimeZone sets the active time zone Time values are converted to. The
// zone is only read, never changed.
func WithTimeZone(tz domain.TimeZone) Option {
	return func(c *Coercer) {
		c.tz = tz
	}
}

// WithLogger sets the logger that receives a debug record every time a
// coercion falls back to its raw value.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coercer) {
		c.log = l
	}
}

// Option configures coercer behavior through the functional options pattern.
type Option func(*Coercer)
