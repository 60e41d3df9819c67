package repositories

import (
	"context"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID returns apperrors.ErrNotFound for an unknown id.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts lists every account visible within scope: global accounts plus the scoped
	// branch's accounts, or all accounts when unscoped.
	ListAccounts(ctx context.Context, scope domain.BranchScope) ([]domain.Account, error)
}

// AccountTxReader defines account lookups made inside a posting transaction
type AccountTxReader interface {
	// FindAccountsByIDsInTx returns the accounts found, keyed by id. Missing ids are simply absent.
	FindAccountsByIDsInTx(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// CreateAccount inserts the account and returns its id.
	CreateAccount(ctx context.Context, account domain.Account) (int64, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountTxReader
	AccountWriter
}
