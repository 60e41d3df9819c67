package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ceiling is a credit limit granted to a customer account.
type Ceiling struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"accountID"`
	CurrencyID  int64           `json:"currencyID"`
	Amount      decimal.Decimal `json:"amount"`
	CeilingDate time.Time       `json:"ceilingDate"`
	Notes       string          `json:"notes"`
	BranchID    int64           `json:"branchID"`
	AuditFields
}

// CurrencyExchange records a two-currency exchange between two accounts.
type CurrencyExchange struct {
	ID             int64           `json:"id"`
	FromAccountID  int64           `json:"fromAccountID"`
	ToAccountID    int64           `json:"toAccountID"`
	FromCurrencyID int64           `json:"fromCurrencyID"`
	ToCurrencyID   int64           `json:"toCurrencyID"`
	FromAmount     decimal.Decimal `json:"fromAmount"`
	ToAmount       decimal.Decimal `json:"toAmount"`
	Rate           decimal.Decimal `json:"rate"`
	ExchangeDate   time.Time       `json:"exchangeDate"`
	Notes          string          `json:"notes"`
	BranchID       int64           `json:"branchID"`
	AuditFields
}

// VoucherKind distinguishes receipts from payments.
type VoucherKind string

const (
	VoucherReceipt VoucherKind = "receipt"
	VoucherPayment VoucherKind = "payment"
)

// Voucher is a cash or bank receipt/payment against a counter-account.
type Voucher struct {
	ID               int64           `json:"id"`
	Kind             VoucherKind     `json:"kind"`
	VoucherNo        int64           `json:"voucherNo"`
	CashBoxID        *int64          `json:"cashBoxID,omitempty"`
	BankID           *int64          `json:"bankID,omitempty"`
	CounterAccountID int64           `json:"counterAccountID"`
	CurrencyID       int64           `json:"currencyID"`
	Amount           decimal.Decimal `json:"amount"`
	VoucherDate      time.Time       `json:"voucherDate"`
	Notes            string          `json:"notes"`
	BranchID         int64           `json:"branchID"`
	CostCenterID     *int64          `json:"costCenterID,omitempty"`
	AuditFields
}

// JournalType maps the voucher kind to its journal classification.
func (v Voucher) JournalType() JournalType {
	if v.Kind == VoucherPayment {
		return JournalPayment
	}
	return JournalReceipt
}

// ReferenceType maps the voucher kind to the reference type of its journal rows.
func (v Voucher) ReferenceType() ReferenceType {
	if v.Kind == VoucherPayment {
		return RefPayment
	}
	return RefReceipt
}
