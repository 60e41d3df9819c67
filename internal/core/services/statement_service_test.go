package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StatementRepository ---
type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) ListCurrencies(ctx context.Context, filter portsrepo.StatementFilter) ([]int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockStatementRepository) OpeningBalance(ctx context.Context, filter portsrepo.StatementFilter, currencyID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, filter, currencyID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStatementRepository) ListRows(ctx context.Context, filter portsrepo.StatementFilter, currencyID int64) ([]domain.StatementLine, error) {
	args := m.Called(ctx, filter, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementLine), args.Error(1)
}

// --- Mock CurrencyReader ---
type MockCurrencyReader struct {
	mock.Mock
}

func (m *MockCurrencyReader) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyReader) FindCurrenciesByIDs(ctx context.Context, currencyIDs []int64) (map[int64]domain.Currency, error) {
	args := m.Called(ctx, currencyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Currency), args.Error(1)
}

func statementLine(id, accountID int64, code, debit, credit string) domain.StatementLine {
	return domain.StatementLine{
		JournalEntry: domain.JournalEntry{
			ID:          id,
			AccountID:   accountID,
			Debit:       dec(debit),
			Credit:      dec(credit),
			JournalDate: time.Date(2026, 2, int(id%28)+1, 0, 0, 0, 0, time.UTC),
		},
		AccountCode: code,
		AccountName: "Account " + code,
	}
}

// --- Test Suite ---
type StatementServiceTestSuite struct {
	suite.Suite
	mockStatements *MockStatementRepository
	mockAccounts   *MockAccountRepository
	mockCurrencies *MockCurrencyReader
	service        portssvc.StatementSvc
	ctx            context.Context
	from           time.Time
	to             time.Time
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockStatements = new(MockStatementRepository)
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockCurrencies = new(MockCurrencyReader)
	suite.service = services.NewStatementService(suite.mockStatements, suite.mockAccounts, suite.mockCurrencies)
	suite.ctx = context.Background()
	suite.from = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (suite *StatementServiceTestSuite) TestDetailed_RunningBalanceStartsAtOpening() {
	scope := domain.ScopedTo(3)
	query := domain.StatementQuery{AccountID: ptr(int64(42)), CurrencyID: ptr(int64(1)), FromDate: &suite.from, ToDate: &suite.to}
	rows := []domain.StatementLine{
		statementLine(1, 42, "1.3.42", "50", "0"),
		statementLine(2, 42, "1.3.42", "0", "30"),
		statementLine(3, 42, "1.3.42", "20", "0"),
	}

	suite.mockAccounts.On("FindAccountByID", suite.ctx, int64(42)).Return(&domain.Account{ID: 42, BranchID: ptr(int64(3))}, nil).Once()
	suite.mockCurrencies.On("FindCurrencyByID", suite.ctx, int64(1)).Return(&domain.Currency{ID: 1, Code: "IQD"}, nil).Once()
	suite.mockStatements.On("OpeningBalance", suite.ctx, mock.Anything, int64(1)).Return(dec("100"), nil).Once()
	suite.mockStatements.On("ListRows", suite.ctx, mock.Anything, int64(1)).Return(rows, nil).Once()

	blocks, err := suite.service.GetStatement(suite.ctx, scope, query)

	suite.Require().NoError(err)
	suite.Require().Len(blocks, 1)
	block := blocks[0]
	suite.Equal("IQD", block.CurrencyCode)
	suite.Equal("100.00", block.OpeningBalance.StringFixed(2))
	suite.Require().Len(block.Lines, 3)
	suite.Equal("150", block.Lines[0].RunningBalance.String())
	suite.Equal("120", block.Lines[1].RunningBalance.String())
	suite.Equal("140", block.Lines[2].RunningBalance.String())
	suite.Equal("140", block.ClosingBalance.String())
	suite.Nil(block.Summary)

	suite.mockAccounts.AssertExpectations(suite.T())
	suite.mockCurrencies.AssertExpectations(suite.T())
	suite.mockStatements.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestDetailed_RoundsOnlyAtOutput() {
	query := domain.StatementQuery{CurrencyID: ptr(int64(1))}
	rows := []domain.StatementLine{
		statementLine(1, 42, "1.3.42", "0.004", "0"),
		statementLine(2, 42, "1.3.42", "0.004", "0"),
	}

	suite.mockCurrencies.On("FindCurrencyByID", suite.ctx, int64(1)).Return(&domain.Currency{ID: 1, Code: "IQD"}, nil).Once()
	suite.mockStatements.On("ListRows", suite.ctx, mock.Anything, int64(1)).Return(rows, nil).Once()

	blocks, err := suite.service.GetStatement(suite.ctx, domain.BranchScope{}, query)

	suite.Require().NoError(err)
	suite.Require().Len(blocks, 1)
	suite.Equal("0.00", blocks[0].Lines[0].RunningBalance.StringFixed(2))
	suite.Equal("0.01", blocks[0].Lines[1].RunningBalance.StringFixed(2))
	suite.Equal("0.01", blocks[0].ClosingBalance.StringFixed(2))
	suite.mockStatements.AssertNotCalled(suite.T(), "OpeningBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestSummary_AggregatesPerAccount() {
	query := domain.StatementQuery{CurrencyID: ptr(int64(1)), FromDate: &suite.from, Mode: domain.StatementSummary}
	rows := []domain.StatementLine{
		statementLine(1, 42, "1.3.42", "50", "0"),
		statementLine(2, 42, "1.3.42", "0", "30"),
		statementLine(3, 42, "1.3.42", "20", "0"),
		statementLine(4, 7, "1.1.7", "5", "0"),
	}

	suite.mockCurrencies.On("FindCurrencyByID", suite.ctx, int64(1)).Return(&domain.Currency{ID: 1, Code: "IQD"}, nil).Once()
	suite.mockStatements.On("OpeningBalance", suite.ctx, mock.Anything, int64(1)).Return(dec("100"), nil).Once()
	suite.mockStatements.On("ListRows", suite.ctx, mock.Anything, int64(1)).Return(rows, nil).Once()

	blocks, err := suite.service.GetStatement(suite.ctx, domain.BranchScope{}, query)

	suite.Require().NoError(err)
	suite.Require().Len(blocks, 1)
	summary := blocks[0].Summary
	suite.Require().Len(summary, 2)
	suite.Equal("1.1.7", summary[0].AccountCode)
	suite.Equal("1.3.42", summary[1].AccountCode)
	suite.Equal("70", summary[1].DebitSum.String())
	suite.Equal("30", summary[1].CreditSum.String())
	suite.Equal("40", summary[1].Balance.String())
	suite.Equal("145", blocks[0].ClosingBalance.String())
	suite.Nil(blocks[0].Lines)
}

func (suite *StatementServiceTestSuite) TestBranchScopeReachesRepository() {
	scope := domain.ScopedTo(3)
	query := domain.StatementQuery{CurrencyID: ptr(int64(1))}
	scoped := mock.MatchedBy(func(f portsrepo.StatementFilter) bool {
		return f.Scope.BranchID != nil && *f.Scope.BranchID == 3 && f.AccountID == nil
	})

	suite.mockCurrencies.On("FindCurrencyByID", suite.ctx, int64(1)).Return(&domain.Currency{ID: 1, Code: "IQD"}, nil).Once()
	suite.mockStatements.On("ListRows", suite.ctx, scoped, int64(1)).
		Return([]domain.StatementLine{statementLine(1, 42, "1.3.42", "10", "0")}, nil).Once()

	blocks, err := suite.service.GetStatement(suite.ctx, scope, query)

	suite.Require().NoError(err)
	suite.Len(blocks, 1)
	suite.mockStatements.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestCurrencyFanOut_OmitsEmptyCurrencies() {
	query := domain.StatementQuery{FromDate: &suite.from, ToDate: &suite.to}

	suite.mockStatements.On("ListCurrencies", suite.ctx, mock.Anything).Return([]int64{3, 2, 1}, nil).Once()
	suite.mockCurrencies.On("FindCurrenciesByIDs", suite.ctx, []int64{3, 2, 1}).Return(map[int64]domain.Currency{
		1: {ID: 1, Code: "IQD"},
		2: {ID: 2, Code: "USD"},
		3: {ID: 3, Code: "EUR"},
	}, nil).Once()

	// IQD has period rows, USD only an opening balance, EUR nothing at all
	suite.mockStatements.On("OpeningBalance", suite.ctx, mock.Anything, int64(1)).Return(decimal.Zero, nil).Once()
	suite.mockStatements.On("ListRows", suite.ctx, mock.Anything, int64(1)).
		Return([]domain.StatementLine{statementLine(1, 42, "1.3.42", "10", "0")}, nil).Once()
	suite.mockStatements.On("OpeningBalance", suite.ctx, mock.Anything, int64(2)).Return(dec("25"), nil).Once()
	suite.mockStatements.On("ListRows", suite.ctx, mock.Anything, int64(2)).Return([]domain.StatementLine{}, nil).Once()
	suite.mockStatements.On("OpeningBalance", suite.ctx, mock.Anything, int64(3)).Return(decimal.Zero, nil).Once()
	suite.mockStatements.On("ListRows", suite.ctx, mock.Anything, int64(3)).Return([]domain.StatementLine{}, nil).Once()

	blocks, err := suite.service.GetStatement(suite.ctx, domain.BranchScope{}, query)

	suite.Require().NoError(err)
	suite.Require().Len(blocks, 2)
	suite.Equal("IQD", blocks[0].CurrencyCode)
	suite.Equal("10", blocks[0].ClosingBalance.String())
	suite.Equal("USD", blocks[1].CurrencyCode)
	suite.Equal("25", blocks[1].ClosingBalance.String())
	suite.Empty(blocks[1].Lines)
	suite.mockStatements.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestUnknownAccountYieldsEmptyResult() {
	suite.mockAccounts.On("FindAccountByID", suite.ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	blocks, err := suite.service.GetStatement(suite.ctx, domain.BranchScope{}, domain.StatementQuery{AccountID: ptr(int64(404))})

	suite.Require().NoError(err)
	suite.NotNil(blocks)
	suite.Empty(blocks)
	suite.mockStatements.AssertNotCalled(suite.T(), "ListRows", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestForeignBranchAccountYieldsEmptyResult() {
	suite.mockAccounts.On("FindAccountByID", suite.ctx, int64(43)).Return(&domain.Account{ID: 43, BranchID: ptr(int64(4))}, nil).Once()

	blocks, err := suite.service.GetStatement(suite.ctx, domain.ScopedTo(3), domain.StatementQuery{AccountID: ptr(int64(43))})

	suite.Require().NoError(err)
	suite.Empty(blocks)
	suite.mockStatements.AssertNotCalled(suite.T(), "ListCurrencies", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestUnknownCurrencyYieldsEmptyResult() {
	suite.mockCurrencies.On("FindCurrencyByID", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	blocks, err := suite.service.GetStatement(suite.ctx, domain.BranchScope{}, domain.StatementQuery{CurrencyID: ptr(int64(99))})

	suite.Require().NoError(err)
	suite.Empty(blocks)
}

func (suite *StatementServiceTestSuite) TestInvalidQueries() {
	_, err := suite.service.GetStatement(suite.ctx, domain.BranchScope{}, domain.StatementQuery{Mode: "monthly"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetStatement(suite.ctx, domain.BranchScope{}, domain.StatementQuery{FromDate: &suite.to, ToDate: &suite.from})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StatementServiceTestSuite) TestRepositoryError() {
	suite.mockStatements.On("ListCurrencies", suite.ctx, mock.Anything).Return(nil, assert.AnError).Once()

	blocks, err := suite.service.GetStatement(suite.ctx, domain.BranchScope{}, domain.StatementQuery{})

	suite.Require().Error(err)
	suite.Nil(blocks)
	suite.ErrorIs(err, apperrors.ErrStore)
	suite.ErrorIs(err, assert.AnError)
}
