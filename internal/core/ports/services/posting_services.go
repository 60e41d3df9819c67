package services

import (
	"context"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/SscSPs/branch_ledger/internal/dto"
)

// PostingRequest carries who is posting and the optional branch override of the request.
type PostingRequest struct {
	Principal      domain.Principal
	BranchOverride *int64
}

// LedgerPostingSvc defines the business events that produce journal postings. Every operation
// runs in one transaction and either commits all rows or none.
type LedgerPostingSvc interface {
	// OpenCeiling grants a credit ceiling to a customer account.
	OpenCeiling(ctx context.Context, pr PostingRequest, req dto.OpenCeilingRequest) (*domain.PostingResult, error)

	// FundGuarantee records a cash or bank deposit into a customer guarantee.
	FundGuarantee(ctx context.Context, pr PostingRequest, req dto.FundGuaranteeRequest) (*domain.PostingResult, error)

	// ExchangeCurrency posts a two-currency exchange.
	ExchangeCurrency(ctx context.Context, pr PostingRequest, req dto.ExchangeCurrencyRequest) (*domain.PostingResult, error)

	// CreateVoucher posts a receipt or payment voucher and returns its voucher number.
	CreateVoucher(ctx context.Context, pr PostingRequest, kind domain.VoucherKind, req dto.VoucherRequest) (*domain.PostingResult, error)

	// UpdateOrderStatus transitions an order and posts it when a manual order first reaches
	// shipping. The result is nil when the transition posted nothing.
	UpdateOrderStatus(ctx context.Context, pr PostingRequest, orderID int64, status domain.OrderStatus) (*domain.PostingResult, error)
}

// LedgerCorrectionSvc defines the corrective operations on posted reference groups.
type LedgerCorrectionSvc interface {
	// ReverseReference posts the mirror rows of a reference group.
	ReverseReference(ctx context.Context, pr PostingRequest, req dto.ReverseReferenceRequest) (*domain.PostingResult, error)

	// DeleteReference removes a reference group wholesale and returns the number of rows removed.
	DeleteReference(ctx context.Context, pr PostingRequest, refType domain.ReferenceType, refID int64) (int64, error)
}

// GuaranteeReaderSvc derives guarantee balances.
type GuaranteeReaderSvc interface {
	GuaranteeBalance(ctx context.Context, principal domain.Principal, guaranteeID int64) (*domain.GuaranteeBalance, error)
}

// PostingSvcFacade combines all posting-related service interfaces
type PostingSvcFacade interface {
	LedgerPostingSvc
	LedgerCorrectionSvc
	GuaranteeReaderSvc
}

// PostingPublisher announces committed postings to other systems.
type PostingPublisher interface {
	PublishPosting(ctx context.Context, event domain.PostingEvent) error
	Close() error
}
