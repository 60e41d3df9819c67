package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/dto"
	"github.com/SscSPs/branch_ledger/internal/handlers"
	"github.com/SscSPs/branch_ledger/internal/middleware"
	"github.com/SscSPs/branch_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock services ---

type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) result(args mock.Arguments) (*domain.PostingResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPostingService) OpenCeiling(ctx context.Context, pr portssvc.PostingRequest, req dto.OpenCeilingRequest) (*domain.PostingResult, error) {
	return m.result(m.Called(ctx, pr, req))
}
func (m *MockPostingService) FundGuarantee(ctx context.Context, pr portssvc.PostingRequest, req dto.FundGuaranteeRequest) (*domain.PostingResult, error) {
	return m.result(m.Called(ctx, pr, req))
}
func (m *MockPostingService) ExchangeCurrency(ctx context.Context, pr portssvc.PostingRequest, req dto.ExchangeCurrencyRequest) (*domain.PostingResult, error) {
	return m.result(m.Called(ctx, pr, req))
}
func (m *MockPostingService) CreateVoucher(ctx context.Context, pr portssvc.PostingRequest, kind domain.VoucherKind, req dto.VoucherRequest) (*domain.PostingResult, error) {
	return m.result(m.Called(ctx, pr, kind, req))
}
func (m *MockPostingService) UpdateOrderStatus(ctx context.Context, pr portssvc.PostingRequest, orderID int64, status domain.OrderStatus) (*domain.PostingResult, error) {
	return m.result(m.Called(ctx, pr, orderID, status))
}
func (m *MockPostingService) ReverseReference(ctx context.Context, pr portssvc.PostingRequest, req dto.ReverseReferenceRequest) (*domain.PostingResult, error) {
	return m.result(m.Called(ctx, pr, req))
}
func (m *MockPostingService) DeleteReference(ctx context.Context, pr portssvc.PostingRequest, refType domain.ReferenceType, refID int64) (int64, error) {
	args := m.Called(ctx, pr, refType, refID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPostingService) GuaranteeBalance(ctx context.Context, principal domain.Principal, guaranteeID int64) (*domain.GuaranteeBalance, error) {
	args := m.Called(ctx, principal, guaranteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuaranteeBalance), args.Error(1)
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) GetStatement(ctx context.Context, scope domain.BranchScope, query domain.StatementQuery) ([]domain.StatementBlock, error) {
	args := m.Called(ctx, scope, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementBlock), args.Error(1)
}

type MockCommissionService struct {
	mock.Mock
}

func (m *MockCommissionService) Report(ctx context.Context, scope domain.BranchScope, query domain.CommissionQuery) (*domain.CommissionReport, error) {
	args := m.Called(ctx, scope, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, principal domain.Principal, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountTree(ctx context.Context, scope domain.BranchScope) ([]*domain.AccountNode, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AccountNode), args.Error(1)
}

var (
	_ portssvc.StatementSvc     = (*MockStatementService)(nil)
	_ portssvc.CommissionSvc    = (*MockCommissionService)(nil)
	_ portssvc.AccountSvcFacade = (*MockAccountService)(nil)
)

// --- Test Suite ---

// HandlerTestSuite drives the full router with mocked services.
type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	postingSvc      *MockPostingService
	statementSvc    *MockStatementService
	commissionSvc   *MockCommissionService
	accountSvc      *MockAccountService
	jwtSecret       string
	branchPrincipal domain.Principal
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.branchPrincipal = domain.Principal{ID: 41, Role: "accountant", BranchID: 3}

	suite.postingSvc = new(MockPostingService)
	suite.statementSvc = new(MockStatementService)
	suite.commissionSvc = new(MockCommissionService)
	suite.accountSvc = new(MockAccountService)

	suite.router = gin.New()
	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Posting:    suite.postingSvc,
		Statement:  suite.statementSvc,
		Commission: suite.commissionSvc,
		Account:    suite.accountSvc,
	}, nil)
}

// generateTestToken signs principal claims the way the external auth layer does.
func (suite *HandlerTestSuite) generateTestToken(p domain.Principal) string {
	claims := middleware.PrincipalClaims{
		Role:          p.Role,
		BranchID:      p.BranchID,
		IsAdminBranch: p.IsAdminBranch,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "branch-ledger-test",
			Subject:   strconv.FormatInt(p.ID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) do(method, url string, body any, p domain.Principal, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
		}
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(p))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decodePosting(w *httptest.ResponseRecorder) dto.PostingResponse {
	var resp dto.PostingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func matchRequest(principalID int64, override *int64) interface{} {
	return mock.MatchedBy(func(pr portssvc.PostingRequest) bool {
		if pr.Principal.ID != principalID {
			return false
		}
		if override == nil {
			return pr.BranchOverride == nil
		}
		return pr.BranchOverride != nil && *pr.BranchOverride == *override
	})
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/ledger/ceilings", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.postingSvc.AssertNotCalled(suite.T(), "OpenCeiling", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestOpenCeiling_Success() {
	suite.postingSvc.On("OpenCeiling",
		mock.AnythingOfType("*context.valueCtx"),
		matchRequest(41, nil),
		mock.MatchedBy(func(req dto.OpenCeilingRequest) bool {
			return req.AccountID == 42 && req.CeilingAmount.Equal(decimal.NewFromInt(500))
		}),
	).Return(&domain.PostingResult{ReferenceType: domain.RefCeiling, ReferenceID: 9}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/ceilings",
		`{"account_id": 42, "ceiling_amount": "500"}`, suite.branchPrincipal, nil)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := suite.decodePosting(w)
	suite.True(resp.Success)
	suite.Require().NotNil(resp.ID)
	suite.Equal(int64(9), *resp.ID)
	suite.Nil(resp.VoucherNo)
	suite.postingSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestOpenCeiling_RejectsNonPositiveAmount() {
	w := suite.do(http.MethodPost, "/api/v1/ledger/ceilings",
		`{"account_id": 42, "ceiling_amount": "-5"}`, suite.branchPrincipal, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.postingSvc.AssertNotCalled(suite.T(), "OpenCeiling", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestBranchOverrideHeaderIsForwarded() {
	admin := domain.Principal{ID: 1, Role: "admin", BranchID: 1, IsAdminBranch: true}
	override := int64(7)
	suite.postingSvc.On("ExchangeCurrency", mock.Anything, matchRequest(1, &override), mock.Anything).
		Return(&domain.PostingResult{ReferenceType: domain.RefExchange, ReferenceID: 3}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/exchanges", dto.ExchangeCurrencyRequest{
		FromAccountID:  70,
		ToAccountID:    71,
		FromCurrencyID: 2,
		ToCurrencyID:   1,
		FromAmount:     decimal.NewFromInt(10),
		ToAmount:       decimal.NewFromInt(150),
		Rate:           decimal.NewFromInt(15),
	}, admin, map[string]string{middleware.BranchHeader: "7"})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.postingSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestFundGuarantee_ErrorMapping() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "rate out of bounds",
			err:     apperrors.NewRateBoundsError("rate 21 is outside [10, 20]"),
			status:  http.StatusBadRequest,
			message: "rate 21 is outside [10, 20]",
		},
		{
			name:    "unresolvable cash box",
			err:     apperrors.NewResolutionError("cash box 2 has no ledger account"),
			status:  http.StatusUnprocessableEntity,
			message: "cash box 2 has no ledger account",
		},
		{
			name:    "missing guarantee",
			err:     apperrors.NewNotFoundError("guarantee not found"),
			status:  http.StatusNotFound,
			message: "guarantee not found",
		},
		{
			name:    "store failure keeps detail private",
			err:     apperrors.NewStoreError("failed to insert journal entries", errors.New("connection reset")),
			status:  http.StatusInternalServerError,
			message: "Failed to fund guarantee",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.postingSvc.On("FundGuarantee", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/ledger/guarantees/deposits",
				`{"guarantee_id": 5, "currency_id": 2, "amount": "10", "rate": "21", "cash_box_id": 1}`, suite.branchPrincipal, nil)

			suite.Equal(tt.status, w.Code)
			resp := suite.decodePosting(w)
			suite.False(resp.Success)
			suite.Equal(tt.message, resp.Message)
		})
	}
}

func (suite *HandlerTestSuite) TestCreateReceipt_ReturnsVoucherNumber() {
	voucherNo := int64(12)
	suite.postingSvc.On("CreateVoucher", mock.Anything, matchRequest(41, nil), domain.VoucherReceipt,
		mock.MatchedBy(func(req dto.VoucherRequest) bool {
			return req.CashBoxID != nil && *req.CashBoxID == 1 && req.CounterAccountID == 80
		}),
	).Return(&domain.PostingResult{ReferenceType: domain.RefReceipt, ReferenceID: 4, VoucherNo: &voucherNo}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/receipts",
		`{"cash_box_id": 1, "counter_account_id": 80, "currency_id": 1, "amount": "75.5"}`, suite.branchPrincipal, nil)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := suite.decodePosting(w)
	suite.Require().NotNil(resp.VoucherNo)
	suite.Equal(int64(12), *resp.VoucherNo)
	suite.postingSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreatePayment_UsesPaymentKind() {
	suite.postingSvc.On("CreateVoucher", mock.Anything, mock.Anything, domain.VoucherPayment, mock.Anything).
		Return(&domain.PostingResult{ReferenceType: domain.RefPayment, ReferenceID: 5}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/payments",
		`{"bank_id": 1, "counter_account_id": 80, "currency_id": 1, "amount": "20"}`, suite.branchPrincipal, nil)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.postingSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateOrderStatus() {
	suite.Run("status only", func() {
		suite.SetupTest()
		suite.postingSvc.On("UpdateOrderStatus", mock.Anything, mock.Anything, int64(500), domain.OrderPreparing).
			Return(nil, nil).Once()

		w := suite.do(http.MethodPut, "/api/v1/orders/500/status", `{"status": "preparing"}`, suite.branchPrincipal, nil)

		suite.Equal(http.StatusOK, w.Code, w.Body.String())
		resp := suite.decodePosting(w)
		suite.Equal("order status updated", resp.Message)
		suite.Require().NotNil(resp.ID)
		suite.Equal(int64(500), *resp.ID)
	})

	suite.Run("posted", func() {
		suite.SetupTest()
		suite.postingSvc.On("UpdateOrderStatus", mock.Anything, mock.Anything, int64(500), domain.OrderShipping).
			Return(&domain.PostingResult{ReferenceType: domain.RefOrder, ReferenceID: 500, Entries: make([]domain.JournalEntry, 3)}, nil).Once()

		w := suite.do(http.MethodPut, "/api/v1/orders/500/status", `{"status": "shipping"}`, suite.branchPrincipal, nil)

		suite.Equal(http.StatusOK, w.Code, w.Body.String())
		suite.Equal("order status updated and posted", suite.decodePosting(w).Message)
	})

	suite.Run("unknown status", func() {
		suite.SetupTest()
		w := suite.do(http.MethodPut, "/api/v1/orders/500/status", `{"status": "lost"}`, suite.branchPrincipal, nil)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.postingSvc.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("bad order id", func() {
		suite.SetupTest()
		w := suite.do(http.MethodPut, "/api/v1/orders/abc/status", `{"status": "shipping"}`, suite.branchPrincipal, nil)
		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func (suite *HandlerTestSuite) TestReverseReference() {
	suite.postingSvc.On("ReverseReference", mock.Anything, mock.Anything,
		mock.MatchedBy(func(req dto.ReverseReferenceRequest) bool {
			return req.ReferenceType == "receipt" && req.ReferenceID == 4
		}),
	).Return(&domain.PostingResult{ReferenceType: domain.RefReversal, ReferenceID: 31}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/references/reverse",
		`{"reference_type": "receipt", "reference_id": 4}`, suite.branchPrincipal, nil)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := suite.decodePosting(w)
	suite.Require().NotNil(resp.ID)
	suite.Equal(int64(31), *resp.ID)
}

func (suite *HandlerTestSuite) TestDeleteReference() {
	suite.Run("deleted", func() {
		suite.SetupTest()
		suite.postingSvc.On("DeleteReference", mock.Anything, matchRequest(41, nil), domain.RefExchange, int64(3)).
			Return(int64(4), nil).Once()

		w := suite.do(http.MethodDelete, "/api/v1/ledger/references/exchange/3", nil, suite.branchPrincipal, nil)

		suite.Equal(http.StatusOK, w.Code, w.Body.String())
		suite.True(suite.decodePosting(w).Success)
		suite.postingSvc.AssertExpectations(suite.T())
	})

	suite.Run("unknown reference type", func() {
		suite.SetupTest()
		w := suite.do(http.MethodDelete, "/api/v1/ledger/references/salary/3", nil, suite.branchPrincipal, nil)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.postingSvc.AssertNotCalled(suite.T(), "DeleteReference", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("nothing in scope", func() {
		suite.SetupTest()
		suite.postingSvc.On("DeleteReference", mock.Anything, mock.Anything, domain.RefExchange, int64(3)).
			Return(int64(0), apperrors.NewNotFoundError("no journal rows for this reference")).Once()

		w := suite.do(http.MethodDelete, "/api/v1/ledger/references/exchange/3", nil, suite.branchPrincipal, nil)
		suite.Equal(http.StatusNotFound, w.Code)
	})
}

func (suite *HandlerTestSuite) TestGuaranteeBalance() {
	suite.postingSvc.On("GuaranteeBalance", mock.Anything, suite.branchPrincipal, int64(5)).
		Return(&domain.GuaranteeBalance{GuaranteeID: 5, Type: domain.GuaranteeWallet, Balance: decimal.RequireFromString("150.26")}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/guarantees/5/balance", nil, suite.branchPrincipal, nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.GuaranteeBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.GuaranteeWallet, resp.Type)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("150.26")))
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
