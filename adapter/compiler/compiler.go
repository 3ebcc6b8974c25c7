// Package compiler contains the default [domain.CriteriaCompiler]
// implementation.
package compiler

import (
	"strings"

	"github.com/vinicius-lino-figueiredo/gomapper/domain"
	"github.com/vinicius-lino-figueiredo/gomapper/pkg/structure"
)

// In is the operator sequences are wrapped in when given for a plain field.
const In = "$in"

// Compiler implements [domain.CriteriaCompiler].
type Compiler struct{}

// NewCompiler returns a new implementation of [domain.CriteriaCompiler].
func NewCompiler() domain.CriteriaCompiler {
	return &Compiler{}
}

// Compile implements [domain.CriteriaCompiler]. A sequence under a field name
// becomes an {"$in": sequence} clause, unless the name is an operator. Nested
// mappings are compiled the same way, each level looking only at its own
// keys. Everything else is kept as an exact match.
func (c *Compiler) Compile(conditions any) domain.Criteria {
	seq, length, ok := structure.Map(conditions)
	if !ok {
		return domain.Criteria{}
	}
	criteria := make(domain.Criteria, length)
	for field, value := range seq {
		criteria[field] = c.compileValue(field, value)
	}
	return criteria
}

func (c *Compiler) compileValue(field string, value any) any {
	if _, _, ok := structure.List(value); ok {
		if IsOperator(field) {
			return value
		}
		return domain.Criteria{In: value}
	}
	if _, _, ok := structure.Map(value); ok {
		return c.Compile(value)
	}
	return value
}

// IsOperator reports whether field names an operator rather than a document
// field.
func IsOperator(field string) bool {
	return strings.HasPrefix(field, "$")
}
