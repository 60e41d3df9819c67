package services

import (
	"context"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/SscSPs/branch_ledger/internal/dto"
)

// AccountWriterSvc defines write operations for accounts
type AccountWriterSvc interface {
	// CreateAccount creates an account; non-root accounts inherit branch and financial
	// statement from their parent.
	CreateAccount(ctx context.Context, principal domain.Principal, req dto.CreateAccountRequest) (*domain.Account, error)
}

// AccountReaderSvc defines read operations for accounts
type AccountReaderSvc interface {
	// GetAccountTree builds the chart of accounts visible within scope.
	GetAccountTree(ctx context.Context, scope domain.BranchScope) ([]*domain.AccountNode, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountWriterSvc
	AccountReaderSvc
}
