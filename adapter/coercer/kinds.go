package coercer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/indifferent"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/structure"
)

// zeroText matches text that genuinely denotes zero, so that it can be told
// apart from text whose leading integer is zero only because it has none.
var zeroText = regexp.MustCompile(`^(0x|0b)?0+`)

func (c *Coercer) toHash(raw any) (any, error) {
	m, err := indifferent.From(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnsupported, err)
	}
	return m, nil
}

func (c *Coercer) toTime(raw any) (any, error) {
	switch t := raw.(type) {
	case time.Time:
		if loc := c.tz.Location(); loc != nil {
			return t.In(loc), nil
		}
		return t.UTC(), nil
	case string, []byte:
		parsed, err := parseTime(cast.ToString(t))
		if err != nil {
			return nil, err
		}
		return parsed.UTC(), nil
	default:
		return nil, domain.ErrUnsupported
	}
}

func (c *Coercer) toString(raw any) (any, error) {
	if s, err := cast.ToStringE(raw); err == nil {
		return s, nil
	}
	return fmt.Sprint(raw), nil
}

func (c *Coercer) toFloat(raw any) (any, error) {
	switch t := raw.(type) {
	case bool, time.Time:
		return nil, domain.ErrUnsupported
	case string:
		raw = strings.TrimSpace(t)
	case []byte:
		raw = strings.TrimSpace(string(t))
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnparsable, err)
	}
	return f, nil
}

func (c *Coercer) toArray(raw any, elem domain.Embeddable) (any, error) {
	var res []any
	if seq, length, ok := structure.List(raw); ok {
		res = make([]any, 0, length)
		for v := range seq {
			res = append(res, v)
		}
	} else {
		res = []any{raw}
	}
	if elem == nil {
		return res, nil
	}
	for n, v := range res {
		if elem.Is(v) {
			continue
		}
		doc, err := newInstance(elem, v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", n, err)
		}
		res[n] = doc
	}
	return res, nil
}

func (c *Coercer) toDate(raw any) (any, error) {
	if t, ok := raw.(time.Time); ok {
		return midnight(t), nil
	}
	text, err := cast.ToStringE(raw)
	if err != nil {
		text = fmt.Sprint(raw)
	}
	return parseDate(text)
}

func (c *Coercer) toBoolean(raw any) (any, error) {
	switch raw.(type) {
	case float32, float64:
		return false, nil
	}
	if structure.IsInteger(raw) {
		n, _ := structure.AsInt64(raw)
		return n == 1, nil
	}
	text, err := cast.ToStringE(raw)
	if err != nil {
		return false, nil
	}
	switch strings.ToLower(text) {
	case "true", "t", "1":
		return true, nil
	default:
		return false, nil
	}
}

func (c *Coercer) toInteger(raw any) (any, error) {
	var text string
	switch t := raw.(type) {
	case string:
		text = t
	case float64:
		text = strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		text = strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		text = t.String()
	default:
		return nil, domain.ErrUnsupported
	}
	n, ok := structure.AsInt64(raw)
	if !ok {
		return nil, domain.ErrUnsupported
	}
	if n == 0 && !zeroText.MatchString(text) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnparsable, text)
	}
	return n, nil
}

// newInstance builds an instance of schema, turning a panic in the schema
// into an error.
func newInstance(schema domain.Embeddable, attrs any) (doc domain.EmbeddedDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("building %T: %v", schema, r)
		}
	}()
	return schema.New(attrs)
}

// parseTime reads text with the strict layouts of cast first and falls back to
// dateparse for looser forms such as "Jan 15, 2024" or "2024/01/15". Zoneless
// text is read as UTC.
func parseTime(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	t, err := cast.ToTimeInDefaultLocationE(text, time.UTC)
	if err == nil {
		return t, nil
	}
	t, err = dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", domain.ErrUnparsable, err)
	}
	return t, nil
}

func parseDate(text string) (time.Time, error) {
	t, err := parseTime(text)
	if err != nil {
		return time.Time{}, err
	}
	return midnight(t), nil
}

// midnight returns UTC midnight of the calendar date of t, as seen in the
// location of t.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
