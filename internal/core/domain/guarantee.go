package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuaranteeType selects how a guarantee balance is derived.
type GuaranteeType string

const (
	// GuaranteeWallet balances are the sum of amount_base over moves.
	GuaranteeWallet GuaranteeType = "wallet"
	// GuaranteeAccount balances are read from journal rows against the linked account.
	GuaranteeAccount GuaranteeType = "account"
)

// CustomerGuarantee is a customer's running balance container.
type CustomerGuarantee struct {
	ID         int64         `json:"id"`
	CustomerID int64         `json:"customerID"`
	Type       GuaranteeType `json:"type"`
	AccountID  *int64        `json:"accountID,omitempty"`
	BranchID   int64         `json:"branchID"`
	AuditFields
}

// CustomerGuaranteeMove is one funded amount of a guarantee.
type CustomerGuaranteeMove struct {
	ID          int64           `json:"id"`
	GuaranteeID int64           `json:"guaranteeID"`
	CurrencyID  int64           `json:"currencyID"`
	Amount      decimal.Decimal `json:"amount"`
	Rate        decimal.Decimal `json:"rate"`
	AmountBase  decimal.Decimal `json:"amountBase"` // Amount * Rate, in local currency
	CashBoxID   *int64          `json:"cashBoxID,omitempty"`
	BankID      *int64          `json:"bankID,omitempty"`
	MoveDate    time.Time       `json:"moveDate"`
	Notes       string          `json:"notes"`
	BranchID    int64           `json:"branchID"`
	AuditFields
}

// GuaranteeBalance is the derived balance of a guarantee in local currency.
type GuaranteeBalance struct {
	GuaranteeID int64           `json:"guaranteeID"`
	Type        GuaranteeType   `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
}

// Customer owns a ledger account and optional guarantees.
type Customer struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AccountID *int64 `json:"accountID,omitempty"`
	BranchID  int64  `json:"branchID"`
}
