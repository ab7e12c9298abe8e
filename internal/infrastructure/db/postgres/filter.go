package postgres

import (
	"fmt"
	"strings"
)

// whereBuilder composes parameterized WHERE predicates from optional filter
// fields. Column and operator strings are compile-time constants at every
// call site; user-supplied values only ever travel as bind arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends "column op $N" with value bound at position N.
func (b *whereBuilder) add(column, op string, value any) {
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf("%s %s $%d", column, op, len(b.args)))
}

// clause renders the accumulated predicates as a WHERE clause, or an empty
// string when no filters were added.
func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// bind registers value as the next positional argument and returns its
// placeholder, for use outside the WHERE clause (LIMIT, OFFSET).
func (b *whereBuilder) bind(value any) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}
