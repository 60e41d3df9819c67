package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalType classifies journal rows by the business event that produced them.
type JournalType int64

const (
	JournalManual    JournalType = 1
	JournalCeiling   JournalType = 2
	JournalReceipt   JournalType = 3
	JournalPayment   JournalType = 4
	JournalExchange  JournalType = 5
	JournalGuarantee JournalType = 6
	JournalOrder     JournalType = 7
	JournalReversal  JournalType = 8
)

// ReferenceType names the domain table a journal row points back to.
type ReferenceType string

const (
	RefCeiling       ReferenceType = "ceiling"
	RefGuaranteeMove ReferenceType = "guarantee_move"
	RefExchange      ReferenceType = "exchange"
	RefReceipt       ReferenceType = "receipt"
	RefPayment       ReferenceType = "payment"
	RefOrder         ReferenceType = "order"
	RefReversal      ReferenceType = "reversal"
)

// JournalEntry is one leg of a posting. Rows are immutable once written and only removed as a
// whole reference group.
type JournalEntry struct {
	ID            int64           `json:"id"`
	JournalTypeID JournalType     `json:"journalTypeID"`
	ReferenceType ReferenceType   `json:"referenceType"`
	ReferenceID   int64           `json:"referenceID"`
	JournalDate   time.Time       `json:"journalDate"`
	CurrencyID    int64           `json:"currencyID"`
	AccountID     int64           `json:"accountID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Notes         string          `json:"notes"`
	BranchID      int64           `json:"branchID"`
	CostCenterID  *int64          `json:"costCenterID,omitempty"`
	AuditFields
}

// Signed returns debit minus credit.
func (e JournalEntry) Signed() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}

// PostingEvent is published once a posting has been committed.
type PostingEvent struct {
	EventID       string          `json:"eventID"`
	ReferenceType ReferenceType   `json:"referenceType"`
	ReferenceID   int64           `json:"referenceID"`
	JournalType   JournalType     `json:"journalType"`
	BranchID      int64           `json:"branchID"`
	CreatedBy     int64           `json:"createdBy"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
	LineCount     int             `json:"lineCount"`
	PostedAt      time.Time       `json:"postedAt"`
}

// PostingResult describes a committed posting.
type PostingResult struct {
	ReferenceType ReferenceType  `json:"referenceType"`
	ReferenceID   int64          `json:"referenceID"`
	VoucherNo     *int64         `json:"voucherNo,omitempty"`
	Entries       []JournalEntry `json:"entries"`
}
