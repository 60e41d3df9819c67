package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementMode selects the shape of a statement.
type StatementMode string

const (
	StatementDetailed StatementMode = "detailed"
	StatementSummary  StatementMode = "summary"
)

// StatementQuery holds the optional filters of a statement request.
type StatementQuery struct {
	AccountID  *int64
	CurrencyID *int64
	FromDate   *time.Time
	ToDate     *time.Time
	Mode       StatementMode
}

// StatementLine is a journal row annotated with its running balance.
type StatementLine struct {
	JournalEntry
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// StatementSummaryLine aggregates the period rows of one account.
type StatementSummaryLine struct {
	AccountID   int64           `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	DebitSum    decimal.Decimal `json:"debitSum"`
	CreditSum   decimal.Decimal `json:"creditSum"`
	Balance     decimal.Decimal `json:"balance"`
}

// StatementBlock is the statement of one currency.
type StatementBlock struct {
	CurrencyID     int64                  `json:"currencyID"`
	CurrencyCode   string                 `json:"currencyCode"`
	OpeningBalance decimal.Decimal        `json:"openingBalance"`
	ClosingBalance decimal.Decimal        `json:"closingBalance"`
	Lines          []StatementLine        `json:"lines,omitempty"`
	Summary        []StatementSummaryLine `json:"summary,omitempty"`
}
