package dto

import (
	"github.com/SscSPs/branch_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// BranchID and FinancialStatementID are only read for root accounts; children inherit them.
type CreateAccountRequest struct {
	Code                 string              `json:"code" binding:"required"`
	Name                 string              `json:"name" binding:"required"`
	ParentID             *int64              `json:"parent_id"`
	Level                domain.AccountLevel `json:"level" binding:"required,oneof=root leaf"`
	BranchID             *int64              `json:"branch_id"`
	FinancialStatementID *int64              `json:"financial_statement_id"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID                   int64               `json:"id"`
	Code                 string              `json:"code"`
	Name                 string              `json:"name"`
	ParentID             *int64              `json:"parent_id,omitempty"`
	Level                domain.AccountLevel `json:"level"`
	BranchID             *int64              `json:"branch_id,omitempty"`
	FinancialStatementID *int64              `json:"financial_statement_id,omitempty"`
	IsActive             bool                `json:"is_active"`
}

// AccountTreeNode is one node of the account tree response.
type AccountTreeNode struct {
	AccountResponse
	Children []AccountTreeNode `json:"children,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:                   acc.ID,
		Code:                 acc.Code,
		Name:                 acc.Name,
		ParentID:             acc.ParentID,
		Level:                acc.Level,
		BranchID:             acc.BranchID,
		FinancialStatementID: acc.FinancialStatementID,
		IsActive:             acc.IsActive,
	}
}

// ToAccountTree converts tree nodes recursively.
func ToAccountTree(nodes []*domain.AccountNode) []AccountTreeNode {
	out := make([]AccountTreeNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, AccountTreeNode{
			AccountResponse: ToAccountResponse(&n.Account),
			Children:        ToAccountTree(n.Children),
		})
	}
	return out
}
