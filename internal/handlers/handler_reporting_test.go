package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/SscSPs/branch_ledger/internal/dto"
	"github.com/SscSPs/branch_ledger/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetStatement_ParsesQueryAndScope() {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	block := domain.StatementBlock{
		CurrencyID:     1,
		CurrencyCode:   "LCL",
		OpeningBalance: decimal.NewFromInt(100),
		ClosingBalance: decimal.NewFromInt(150),
		Lines: []domain.StatementLine{{
			JournalEntry: domain.JournalEntry{
				ID:          7,
				JournalDate: from,
				AccountID:   42,
				CurrencyID:  1,
				Debit:       decimal.NewFromInt(50),
				Credit:      decimal.Zero,
				BranchID:    3,
			},
			AccountCode:    "1101",
			AccountName:    "Customer 9",
			RunningBalance: decimal.NewFromInt(150),
		}},
	}

	suite.statementSvc.On("GetStatement",
		mock.AnythingOfType("*context.valueCtx"),
		domain.ScopedTo(3),
		mock.MatchedBy(func(q domain.StatementQuery) bool {
			return q.AccountID != nil && *q.AccountID == 42 &&
				q.CurrencyID == nil &&
				q.FromDate != nil && q.FromDate.Equal(from) &&
				q.ToDate != nil && q.ToDate.Equal(to) &&
				q.Mode == domain.StatementDetailed
		}),
	).Return([]domain.StatementBlock{block}, nil).Once()

	// the override header is ignored for principals outside the admin branch
	w := suite.do(http.MethodGet, "/api/v1/statements?account_id=42&from_date=2026-01-01&to_date=2026-01-31", nil,
		suite.branchPrincipal, map[string]string{middleware.BranchHeader: "4"})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp []dto.StatementBlockResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("LCL", resp[0].CurrencyCode)
	suite.Require().Len(resp[0].Rows, 1)
	suite.Equal("2026-01-01", resp[0].Rows[0].JournalDate)
	suite.True(resp[0].Rows[0].RunningBalance.Equal(decimal.NewFromInt(150)))
	suite.statementSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetStatement_AdminOverride() {
	admin := domain.Principal{ID: 1, Role: "admin", BranchID: 1, IsAdminBranch: true}

	suite.Run("unscoped without header", func() {
		suite.SetupTest()
		suite.statementSvc.On("GetStatement", mock.Anything, domain.BranchScope{},
			mock.MatchedBy(func(q domain.StatementQuery) bool { return q.Mode == domain.StatementSummary }),
		).Return([]domain.StatementBlock{}, nil).Once()

		w := suite.do(http.MethodGet, "/api/v1/statements?mode=summary", nil, admin, nil)
		suite.Equal(http.StatusOK, w.Code, w.Body.String())
		suite.statementSvc.AssertExpectations(suite.T())
	})

	suite.Run("scoped by header", func() {
		suite.SetupTest()
		suite.statementSvc.On("GetStatement", mock.Anything, domain.ScopedTo(4), mock.Anything).
			Return([]domain.StatementBlock{}, nil).Once()

		w := suite.do(http.MethodGet, "/api/v1/statements", nil, admin, map[string]string{middleware.BranchHeader: "4"})
		suite.Equal(http.StatusOK, w.Code, w.Body.String())
		suite.statementSvc.AssertExpectations(suite.T())
	})
}

func (suite *HandlerTestSuite) TestGetStatement_InvalidQuery() {
	for _, url := range []string{
		"/api/v1/statements?from_date=01-01-2026",
		"/api/v1/statements?account_id=abc",
		"/api/v1/statements?currency_id=-1",
	} {
		w := suite.do(http.MethodGet, url, nil, suite.branchPrincipal, nil)
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
	suite.statementSvc.AssertNotCalled(suite.T(), "GetStatement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetStatement_ServiceErrors() {
	suite.Run("bad mode", func() {
		suite.SetupTest()
		suite.statementSvc.On("GetStatement", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("mode must be detailed or summary")).Once()

		w := suite.do(http.MethodGet, "/api/v1/statements?mode=weekly", nil, suite.branchPrincipal, nil)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Equal("mode must be detailed or summary", suite.decodePosting(w).Message)
	})

	suite.Run("store failure", func() {
		suite.SetupTest()
		suite.statementSvc.On("GetStatement", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.NewStoreError("failed to list statement rows", errors.New("timeout"))).Once()

		w := suite.do(http.MethodGet, "/api/v1/statements", nil, suite.branchPrincipal, nil)
		suite.Equal(http.StatusInternalServerError, w.Code)
		suite.Equal("Failed to compute statement", suite.decodePosting(w).Message)
	})
}

func (suite *HandlerTestSuite) TestGetCommissions() {
	restaurant := int64(11)
	captain := int64(21)
	report := &domain.CommissionReport{
		Orders: []domain.OrderCommission{{
			OrderID:              500,
			RestaurantID:         &restaurant,
			CaptainID:            &captain,
			RestaurantCommission: decimal.NewFromInt(20),
			CaptainCommission:    decimal.NewFromInt(8),
		}},
		Captains:        []domain.CaptainCommissionTotal{{CaptainID: 21, OrderCount: 1, Commission: decimal.NewFromInt(8)}},
		RestaurantTotal: decimal.NewFromInt(20),
		CaptainTotal:    decimal.NewFromInt(8),
	}

	suite.commissionSvc.On("Report", mock.Anything, domain.ScopedTo(3),
		mock.MatchedBy(func(q domain.CommissionQuery) bool {
			return q.RestaurantID != nil && *q.RestaurantID == 11 && q.CaptainID == nil && q.FromDate != nil && q.ToDate == nil
		}),
	).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/commissions?restaurant_id=11&from_date=2026-01-01", nil, suite.branchPrincipal, nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.CommissionReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Orders, 1)
	suite.True(resp.Orders[0].RestaurantCommission.Equal(decimal.NewFromInt(20)))
	suite.Require().Len(resp.Captains, 1)
	suite.Equal(int64(1), resp.Captains[0].OrderCount)
	suite.True(resp.CaptainTotal.Equal(decimal.NewFromInt(8)))
	suite.commissionSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetCommissions_InvalidQuery() {
	w := suite.do(http.MethodGet, "/api/v1/reports/commissions?captain_id=x", nil, suite.branchPrincipal, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.commissionSvc.AssertNotCalled(suite.T(), "Report", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateAccount() {
	parent := int64(100)
	branch := int64(3)

	suite.Run("created", func() {
		suite.SetupTest()
		suite.accountSvc.On("CreateAccount", mock.Anything, suite.branchPrincipal,
			mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
				return req.Code == "1101-9" && req.ParentID != nil && *req.ParentID == parent && req.Level == domain.LevelLeaf
			}),
		).Return(&domain.Account{ID: 45, Code: "1101-9", Name: "Customer 9", ParentID: &parent, Level: domain.LevelLeaf, BranchID: &branch, IsActive: true}, nil).Once()

		w := suite.do(http.MethodPost, "/api/v1/accounts",
			`{"code": "1101-9", "name": "Customer 9", "parent_id": 100, "level": "leaf"}`, suite.branchPrincipal, nil)

		suite.Equal(http.StatusCreated, w.Code, w.Body.String())
		var resp dto.AccountResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal(int64(45), resp.ID)
		suite.Require().NotNil(resp.BranchID)
		suite.Equal(branch, *resp.BranchID)
		suite.accountSvc.AssertExpectations(suite.T())
	})

	suite.Run("invalid level", func() {
		suite.SetupTest()
		w := suite.do(http.MethodPost, "/api/v1/accounts",
			`{"code": "1101-9", "name": "Customer 9", "level": "branch"}`, suite.branchPrincipal, nil)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.accountSvc.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("duplicate code", func() {
		suite.SetupTest()
		suite.accountSvc.On("CreateAccount", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.NewAppError(http.StatusConflict, "account code 1101-9 already exists", apperrors.ErrDuplicate)).Once()

		w := suite.do(http.MethodPost, "/api/v1/accounts",
			`{"code": "1101-9", "name": "Customer 9", "parent_id": 100, "level": "leaf"}`, suite.branchPrincipal, nil)
		suite.Equal(http.StatusConflict, w.Code)
		suite.Equal("account code 1101-9 already exists", suite.decodePosting(w).Message)
	})
}

func (suite *HandlerTestSuite) TestGetAccountTree() {
	root := &domain.AccountNode{Account: domain.Account{ID: 100, Code: "1", Name: "Assets", Level: domain.LevelRoot, IsActive: true}}
	root.Children = []*domain.AccountNode{
		{Account: domain.Account{ID: 42, Code: "1101", Name: "Customer 9", Level: domain.LevelLeaf, IsActive: true}},
	}
	suite.accountSvc.On("GetAccountTree", mock.Anything, domain.ScopedTo(3)).Return([]*domain.AccountNode{root}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/tree", nil, suite.branchPrincipal, nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp []dto.AccountTreeNode
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Require().Len(resp[0].Children, 1)
	suite.Equal("1101", resp[0].Children[0].Code)
}
