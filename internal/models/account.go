package models

// AccountLevel mirrors the accounts.level column.
type AccountLevel string

const (
	LevelRoot AccountLevel = "root"
	LevelLeaf AccountLevel = "leaf"
)

// Account represents a row of the accounts table. A NULL branch_id marks a global account.
type Account struct {
	ID                   int64        `db:"id"`
	Code                 string       `db:"code"`
	Name                 string       `db:"name"`
	ParentID             *int64       `db:"parent_id"`
	Level                AccountLevel `db:"level"`
	BranchID             *int64       `db:"branch_id"`
	FinancialStatementID *int64       `db:"financial_statement_id"`
	IsActive             bool         `db:"is_active"`
	AuditFields
}
