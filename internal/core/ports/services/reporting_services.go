package services

import (
	"context"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
)

// StatementSvc computes account statements.
type StatementSvc interface {
	// GetStatement returns one block per currency. Unknown accounts or currencies yield no blocks.
	GetStatement(ctx context.Context, scope domain.BranchScope, query domain.StatementQuery) ([]domain.StatementBlock, error)
}

// CommissionSvc derives commission figures from orders and active contracts.
type CommissionSvc interface {
	Report(ctx context.Context, scope domain.BranchScope, query domain.CommissionQuery) (*domain.CommissionReport, error)
}
