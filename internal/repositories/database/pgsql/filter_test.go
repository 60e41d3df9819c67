package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	var p predicates
	assert.Equal(t, "", p.where())

	p.add("je.branch_id = ?", int64(3))
	p.add("(a.branch_id IS NULL OR a.branch_id = ?)", int64(3))
	p.add("je.debit > 0")
	p.add("je.journal_date BETWEEN ? AND ?", "2026-01-01", "2026-01-31")

	assert.Equal(t,
		" WHERE je.branch_id = $1 AND (a.branch_id IS NULL OR a.branch_id = $2) AND je.debit > 0 AND je.journal_date BETWEEN $3 AND $4",
		p.where())
	assert.Equal(t, []any{int64(3), int64(3), "2026-01-01", "2026-01-31"}, p.args)
	assert.Equal(t, "$5", p.bind("x"))
}
