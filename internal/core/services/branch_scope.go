package services

import (
	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
)

// ResolveReadScope derives the branch filter of a read. Principals outside the admin branch are
// always confined to their own branch; admin-branch principals see the override branch when one
// is given and every branch otherwise.
func ResolveReadScope(p domain.Principal, override *int64) domain.BranchScope {
	if !p.IsAdminBranch {
		return domain.ScopedTo(p.BranchID)
	}
	if override != nil && *override > 0 {
		return domain.ScopedTo(*override)
	}
	return domain.BranchScope{}
}

// ResolveWriteBranch derives the definite branch a write is recorded under.
func ResolveWriteBranch(p domain.Principal, override *int64) (int64, error) {
	branchID := p.BranchID
	if p.IsAdminBranch && override != nil && *override > 0 {
		branchID = *override
	}
	if branchID <= 0 {
		return 0, apperrors.NewValidationError("no branch could be resolved for this request")
	}
	return branchID, nil
}
