// Package coercer contains the default [domain.Coercer] implementation.
package coercer

import (
	"errors"
	"log/slog"
	"time"

	"github.com/vinicius-lino-figueiredo/gomapper/adapter/timezone"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/indifferent"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/structure"
)

// Coercer implements [domain.Coercer]. It holds no mutable state and can be
// shared by any number of goroutines.
type Coercer struct {
	tz  domain.TimeZone
	log *slog.Logger
}

// NewCoercer returns a new implementation of [domain.Coercer].
func NewCoercer(opts ...Option) domain.Coercer {
	c := Coercer{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.tz == nil {
		c.tz = timezone.NewTimeZone()
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	return &c
}

// Coerce implements [domain.Coercer]. Failures reported by
// [Coercer.TryCoerce] never reach the caller: unparsable Integer and Date
// values become nil and anything else falls back to raw.
func (c *Coercer) Coerce(t domain.Type, raw any, field domain.FieldOptions) any {
	v, err := c.TryCoerce(t, raw, field)
	if err == nil {
		return v
	}
	var fallback any = raw
	switch t.Kind() {
	case domain.Integer, domain.Date:
		if errors.Is(err, domain.ErrUnparsable) {
			fallback = nil
		}
	}
	c.log.Debug("coercion fell back",
		slog.String("kind", t.String()),
		slog.Any("error", err),
		slog.Bool("nil", fallback == nil),
	)
	return fallback
}

// TryCoerce implements [domain.Coercer].
func (c *Coercer) TryCoerce(t domain.Type, raw any, field domain.FieldOptions) (any, error) {
	kind := t.Kind()
	if kind == domain.Untyped {
		return raw, nil
	}
	if raw == nil {
		switch kind {
		case domain.Array:
			return []any{}, nil
		case domain.Boolean:
			return false, nil
		default:
			return nil, nil
		}
	}
	if c.matches(t, raw) {
		return raw, nil
	}

	var v any
	var err error
	switch kind {
	case domain.Hash:
		v, err = c.toHash(raw)
	case domain.Time:
		v, err = c.toTime(raw)
	case domain.String:
		v, err = c.toString(raw)
	case domain.Float:
		v, err = c.toFloat(raw)
	case domain.Array:
		v, err = c.toArray(raw, field.Serialize)
	case domain.Date:
		v, err = c.toDate(raw)
	case domain.Boolean:
		v, err = c.toBoolean(raw)
	case domain.Integer:
		v, err = c.toInteger(raw)
	case domain.Embedded:
		v, err = newInstance(t.Schema(), raw)
	default:
		return raw, nil
	}
	if err != nil {
		return nil, domain.ErrCoerce{Kind: kind, Value: raw, Err: err}
	}
	return v, nil
}

// matches reports whether raw is already a value of type t. Arrays and times
// are never reported, as they always need processing.
func (c *Coercer) matches(t domain.Type, raw any) bool {
	switch t.Kind() {
	case domain.String:
		_, ok := raw.(string)
		return ok
	case domain.Float:
		switch raw.(type) {
		case float64, float32:
			return true
		}
		return false
	case domain.Integer:
		return structure.IsInteger(raw)
	case domain.Boolean:
		_, ok := raw.(bool)
		return ok
	case domain.Hash:
		_, ok := raw.(*indifferent.Map)
		return ok
	case domain.Embedded:
		return t.Schema().Is(raw)
	default:
		return false
	}
}

// Read implements [domain.Coercer].
func (c *Coercer) Read(t domain.Type, stored any, dflt any) any {
	if stored == nil && dflt != nil {
		return dflt
	}
	switch t.Kind() {
	case domain.Array:
		if stored == nil {
			return []any{}
		}
	case domain.Hash:
		if _, ok := stored.(*indifferent.Map); ok {
			return stored
		}
		if m, err := indifferent.From(stored); err == nil {
			return m
		}
	case domain.Date:
		switch v := stored.(type) {
		case time.Time:
			return midnight(v)
		case string:
			if d, err := parseDate(v); err == nil {
				return d
			}
		}
	}
	return stored
}

// Serialize implements [domain.Coercer]. Elements that are not embedded
// documents are kept as they are. A non-sequence yields nil.
func (c *Coercer) Serialize(values any) []any {
	seq, length, ok := structure.List(values)
	if !ok {
		return nil
	}
	res := make([]any, 0, length)
	for v := range seq {
		if doc, ok := v.(domain.EmbeddedDocument); ok {
			res = append(res, doc.Attributes())
			continue
		}
		res = append(res, v)
	}
	return res
}
