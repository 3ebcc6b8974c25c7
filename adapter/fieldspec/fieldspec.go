// Package fieldspec contains the default [domain.FieldSpecParser]
// implementation.
package fieldspec

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/structure"
)

// Parser implements [domain.FieldSpecParser].
type Parser struct{}

// NewParser returns a new implementation of [domain.FieldSpecParser].
func NewParser() domain.FieldSpecParser {
	return &Parser{}
}

// Parse implements [domain.FieldSpecParser]. A string is split on commas and
// each name trimmed; a sequence is flattened one level and its nil entries
// dropped. Order is kept and duplicates are not removed.
func (p *Parser) Parse(spec any) []string {
	if spec == nil {
		return nil
	}
	if s, ok := spec.(string); ok {
		return p.parseString(s)
	}
	seq, _, ok := structure.List(spec)
	if !ok {
		return p.parseString(p.name(spec))
	}
	var res []string
	for v := range seq {
		if inner, _, ok := structure.List(v); ok {
			for w := range inner {
				if w != nil {
					res = append(res, p.name(w))
				}
			}
			continue
		}
		if v != nil {
			res = append(res, p.name(v))
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// parseString splits s on commas. Trailing parts are dropped only when they
// are empty before trimming, so "a, " keeps a blank second name while "a,,"
// does not. A list of nothing but blank names is no list.
func (p *Parser) parseString(s string) []string {
	parts := strings.Split(s, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	blank := true
	for n, part := range parts {
		parts[n] = strings.TrimSpace(part)
		blank = blank && parts[n] == ""
	}
	if blank {
		return nil
	}
	return parts
}

func (p *Parser) name(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return structure.Key(v)
}
