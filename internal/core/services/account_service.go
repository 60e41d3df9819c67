package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates an account. Children take branch and financial statement from their
// parent; neither changes afterwards.
func (s *accountService) CreateAccount(ctx context.Context, principal domain.Principal, req dto.CreateAccountRequest) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, apperrors.NewValidationError("code and name are required")
	}
	if req.Level != domain.LevelRoot && req.Level != domain.LevelLeaf {
		return nil, apperrors.NewValidationError("level must be root or leaf")
	}

	account := domain.Account{
		Code:        code,
		Name:        name,
		Level:       req.Level,
		IsActive:    true,
		AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: principal.ID},
	}

	if req.ParentID != nil {
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("parent account %d does not exist", *req.ParentID)
			}
			return nil, s.storeError(ctx, err, "failed to load parent account", slog.Int64("parent_id", *req.ParentID))
		}
		if parent.IsLeaf() {
			return nil, apperrors.NewValidationError("parent account %s is a leaf account", parent.Code)
		}
		if !principal.IsAdminBranch && !parent.VisibleTo(principal.BranchID) {
			return nil, apperrors.NewValidationError("parent account %d does not exist", *req.ParentID)
		}
		account.ParentID = &parent.ID
		account.BranchID = parent.BranchID
		account.FinancialStatementID = parent.FinancialStatementID
	} else {
		if req.FinancialStatementID == nil {
			return nil, apperrors.NewValidationError("financial_statement_id is required for top-level accounts")
		}
		account.FinancialStatementID = req.FinancialStatementID
		if principal.IsAdminBranch {
			account.BranchID = req.BranchID
		} else {
			branchID := principal.BranchID
			account.BranchID = &branchID
		}
	}

	id, err := s.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(http.StatusConflict, "account code "+code+" already exists", err)
		}
		return nil, s.storeError(ctx, err, "failed to create account", slog.String("code", code))
	}
	account.ID = id

	s.LogInfo(ctx, "Account created", slog.Int64("account_id", id), slog.String("code", code))
	return &account, nil
}

// GetAccountTree builds the chart of accounts visible within scope.
func (s *accountService) GetAccountTree(ctx context.Context, scope domain.BranchScope) ([]*domain.AccountNode, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, scope)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to list accounts")
	}
	return domain.NewAccountTree(accounts).Roots(), nil
}
