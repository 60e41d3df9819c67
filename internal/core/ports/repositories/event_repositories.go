package repositories

import (
	"context"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CeilingRepository persists credit ceilings.
type CeilingRepository interface {
	CreateCeilingInTx(ctx context.Context, tx pgx.Tx, ceiling domain.Ceiling) (int64, error)
}

// GuaranteeRepository persists guarantees and their moves.
type GuaranteeRepository interface {
	FindGuaranteeByID(ctx context.Context, guaranteeID int64) (*domain.CustomerGuarantee, error)
	FindGuaranteeInTx(ctx context.Context, tx pgx.Tx, guaranteeID int64) (*domain.CustomerGuarantee, error)

	// FindGuaranteeByCustomerInTx returns the customer's guarantee, apperrors.ErrNotFound when
	// the customer has none.
	FindGuaranteeByCustomerInTx(ctx context.Context, tx pgx.Tx, customerID int64) (*domain.CustomerGuarantee, error)

	CreateMoveInTx(ctx context.Context, tx pgx.Tx, move domain.CustomerGuaranteeMove) (int64, error)

	// SumMovesBase returns Σ amount_base over the guarantee's moves.
	SumMovesBase(ctx context.Context, guaranteeID int64) (decimal.Decimal, error)
}

// ExchangeRepository persists currency exchanges.
type ExchangeRepository interface {
	CreateExchangeInTx(ctx context.Context, tx pgx.Tx, exchange domain.CurrencyExchange) (int64, error)
}

// VoucherRepository persists receipt and payment vouchers.
type VoucherRepository interface {
	// NextVoucherNoInTx increments the shared voucher sequence within tx. The row lock taken by
	// the update serialises concurrent callers until tx ends.
	NextVoucherNoInTx(ctx context.Context, tx pgx.Tx) (int64, error)

	CreateVoucherInTx(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) (int64, error)
}

// OrderRepository reads and transitions orders.
type OrderRepository interface {
	// FindOrderForUpdateInTx reads the order with SELECT ... FOR UPDATE.
	FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, orderID int64) (*domain.Order, error)

	// UpdateOrderStatusInTx writes the new status and ledger_posted flag.
	UpdateOrderStatusInTx(ctx context.Context, tx pgx.Tx, orderID int64, status domain.OrderStatus, ledgerPosted bool) error

	// SetLedgerPostedInTx rewrites only the ledger_posted flag. A missing order is not an error.
	SetLedgerPostedInTx(ctx context.Context, tx pgx.Tx, orderID int64, ledgerPosted bool) error
}
