package mapping

import (
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/SscSPs/branch_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:                   d.ID,
		Code:                 d.Code,
		Name:                 d.Name,
		ParentID:             d.ParentID,
		Level:                models.AccountLevel(d.Level),
		BranchID:             d.BranchID,
		FinancialStatementID: d.FinancialStatementID,
		IsActive:             d.IsActive,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:                   m.ID,
		Code:                 m.Code,
		Name:                 m.Name,
		ParentID:             m.ParentID,
		Level:                domain.AccountLevel(m.Level),
		BranchID:             m.BranchID,
		FinancialStatementID: m.FinancialStatementID,
		IsActive:             m.IsActive,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
