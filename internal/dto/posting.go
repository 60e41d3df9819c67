package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenCeilingRequest grants a credit ceiling to a customer account.
// The posting is always made in the local currency.
type OpenCeilingRequest struct {
	AccountID     int64           `json:"account_id" binding:"required,gt=0"`
	CurrencyID    *int64          `json:"currency_id"` // Optional, must be the local currency when given
	CeilingAmount decimal.Decimal `json:"ceiling_amount" binding:"required,gt=0" swaggertype:"string"`
	CeilingDate   *time.Time      `json:"ceiling_date"`
	Notes         string          `json:"notes"`
}

// FundGuaranteeRequest records a cash or bank deposit into a customer guarantee.
type FundGuaranteeRequest struct {
	GuaranteeID int64            `json:"guarantee_id" binding:"required,gt=0"`
	CurrencyID  int64            `json:"currency_id" binding:"required,gt=0"`
	Amount      decimal.Decimal  `json:"amount" binding:"required,gt=0" swaggertype:"string"`
	Rate        *decimal.Decimal `json:"rate" swaggertype:"string"` // Ignored for the local currency
	CashBoxID   *int64           `json:"cash_box_id"`
	BankID      *int64           `json:"bank_id"`
	MoveDate    *time.Time       `json:"move_date"`
	Notes       string           `json:"notes"`
}

// ExchangeCurrencyRequest moves value between two accounts in two currencies.
type ExchangeCurrencyRequest struct {
	FromAccountID  int64           `json:"from_account_id" binding:"required,gt=0"`
	ToAccountID    int64           `json:"to_account_id" binding:"required,gt=0"`
	FromCurrencyID int64           `json:"from_currency_id" binding:"required,gt=0"`
	ToCurrencyID   int64           `json:"to_currency_id" binding:"required,gt=0"`
	FromAmount     decimal.Decimal `json:"from_amount" binding:"required,gt=0" swaggertype:"string"`
	ToAmount       decimal.Decimal `json:"to_amount" binding:"required,gt=0" swaggertype:"string"`
	Rate           decimal.Decimal `json:"rate" binding:"required,gt=0" swaggertype:"string"`
	ExchangeDate   *time.Time      `json:"exchange_date"`
	Notes          string          `json:"notes"`
}

// VoucherRequest is the payload of both receipt and payment vouchers.
// Exactly one of CashBoxID and BankID is expected; the cash box wins when both are sent.
type VoucherRequest struct {
	CashBoxID        *int64          `json:"cash_box_id"`
	BankID           *int64          `json:"bank_id"`
	CounterAccountID int64           `json:"counter_account_id" binding:"required,gt=0"`
	CurrencyID       int64           `json:"currency_id" binding:"required,gt=0"`
	Amount           decimal.Decimal `json:"amount" binding:"required,gt=0" swaggertype:"string"`
	VoucherDate      *time.Time      `json:"voucher_date"`
	Notes            string          `json:"notes"`
	CostCenterID     *int64          `json:"cost_center_id"`
}

// UpdateOrderStatusRequest moves an order to a new status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing shipping delivered cancelled"`
}

// ReverseReferenceRequest asks for offsetting rows of a posted reference group.
type ReverseReferenceRequest struct {
	ReferenceType string     `json:"reference_type" binding:"required"`
	ReferenceID   int64      `json:"reference_id" binding:"required,gt=0"`
	ReversalDate  *time.Time `json:"reversal_date"`
	Notes         string     `json:"notes"`
}

// PostingResponse is the envelope every write operation answers with.
type PostingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	ID        *int64 `json:"id,omitempty"`
	VoucherNo *int64 `json:"voucher_no,omitempty"`
}

// ErrorResponse is returned on failed reads.
type ErrorResponse struct {
	Error string `json:"error"`
}
