package pgsql

import (
	"strconv"
	"strings"
)

// predicates collects AND-ed SQL conditions with positional arguments. Values are always bound,
// never interpolated.
type predicates struct {
	clauses []string
	args    []any
}

// bind appends v to the argument list and returns its placeholder.
func (p *predicates) bind(v any) string {
	p.args = append(p.args, v)
	return "$" + strconv.Itoa(len(p.args))
}

// add appends a condition. Every "?" in cond is replaced by the placeholder of the matching value.
func (p *predicates) add(cond string, values ...any) {
	var b strings.Builder
	i := 0
	for _, r := range cond {
		if r == '?' && i < len(values) {
			b.WriteString(p.bind(values[i]))
			i++
			continue
		}
		b.WriteRune(r)
	}
	p.clauses = append(p.clauses, b.String())
}

// where renders " WHERE a AND b", or an empty string without conditions.
func (p *predicates) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}
