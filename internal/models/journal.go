package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a row of the journal_entries table. Exactly one of Debit and Credit is
// positive; the table enforces it with a check constraint.
type JournalEntry struct {
	ID            int64           `db:"id"`
	JournalTypeID int64           `db:"journal_type_id"`
	ReferenceType string          `db:"reference_type"`
	ReferenceID   int64           `db:"reference_id"`
	JournalDate   time.Time       `db:"journal_date"`
	CurrencyID    int64           `db:"currency_id"`
	AccountID     int64           `db:"account_id"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	Notes         string          `db:"notes"`
	BranchID      int64           `db:"branch_id"`
	CostCenterID  *int64          `db:"cost_center_id"`
	AuditFields
}

// StatementRow is a journal row joined with its account for statements.
type StatementRow struct {
	JournalEntry
	AccountCode string `db:"account_code"`
	AccountName string `db:"account_name"`
}
