package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementFilter narrows the journal rows a statement reads.
type StatementFilter struct {
	// AccountID selects one account. When nil the implicit account scope applies.
	AccountID *int64
	// Scope restricts both journal rows and the implicit account scope to a branch.
	Scope    domain.BranchScope
	FromDate *time.Time
	ToDate   *time.Time
}

// StatementRepository reads the raw material of account statements.
type StatementRepository interface {
	// ListCurrencies returns the distinct currencies of the filtered rows dated up to ToDate,
	// ignoring FromDate.
	ListCurrencies(ctx context.Context, filter StatementFilter) ([]int64, error)

	// OpeningBalance returns Σ(debit - credit) of the filtered rows dated before FromDate.
	OpeningBalance(ctx context.Context, filter StatementFilter, currencyID int64) (decimal.Decimal, error)

	// ListRows returns the filtered rows of the period ordered by (journal_date, id).
	ListRows(ctx context.Context, filter StatementFilter, currencyID int64) ([]domain.StatementLine, error)
}

// CommissionRepository reads orders and contracts for commission reports.
type CommissionRepository interface {
	ListCommissionOrders(ctx context.Context, scope domain.BranchScope, query domain.CommissionQuery) ([]domain.CommissionOrder, error)
	ListContracts(ctx context.Context, scope domain.BranchScope) ([]domain.CommissionContract, error)
}
