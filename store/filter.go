package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Op is a comparison operator usable in a filter predicate.
type Op string

// Supported predicate operators.
const (
	OpEq Op = "="
	OpLE Op = "<="
	OpGE Op = ">="
)

// Predicate is a single (field, operator, value) comparison.
type Predicate struct {
	Field string
	Op    Op
	Value any
}

// Filter is a compiled filter expression. The zero value matches everything.
type Filter struct {
	expr string
}

// BuildFilter compiles predicates into a single filter expression, joined
// with AND in the given order. String values are quoted with embedded single
// quotes doubled, so client-supplied strings can never break out of the
// literal; numeric values are rendered as bare numerals.
func BuildFilter(preds []Predicate) Filter {
	if len(preds) == 0 {
		return Filter{}
	}
	parts := make([]string, 0, len(preds))
	for _, p := range preds {
		parts = append(parts, fmt.Sprintf("%s %s %s", p.Field, p.Op, renderValue(p.Value)))
	}
	return Filter{expr: strings.Join(parts, " AND ")}
}

// Empty reports whether the filter has no predicates. Querying with an
// empty filter performs an unfiltered scan.
func (f Filter) Empty() bool { return f.expr == "" }

// Expr returns the compiled expression text.
func (f Filter) Expr() string { return f.expr }

// renderValue renders a predicate value as a PartiQL literal.
func renderValue(v any) string {
	switch val := v.(type) {
	case string:
		return quoteString(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		// Anything else is treated as an opaque string and escaped.
		return quoteString(fmt.Sprint(val))
	}
}

// quoteString single-quotes s, doubling any embedded single quote.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
