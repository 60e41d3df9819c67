package dto

import (
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GuaranteeBalanceResponse is the derived balance of one guarantee.
type GuaranteeBalanceResponse struct {
	GuaranteeID int64                `json:"guarantee_id"`
	Type        domain.GuaranteeType `json:"type"`
	Balance     decimal.Decimal      `json:"balance" swaggertype:"string"`
}

// StatementLineResponse is one row of a detailed statement.
type StatementLineResponse struct {
	ID             int64                `json:"id"`
	JournalDate    string               `json:"journal_date"`
	JournalTypeID  domain.JournalType   `json:"journal_type_id"`
	ReferenceType  domain.ReferenceType `json:"reference_type"`
	ReferenceID    int64                `json:"reference_id"`
	AccountID      int64                `json:"account_id"`
	AccountCode    string               `json:"account_code"`
	AccountName    string               `json:"account_name"`
	Debit          decimal.Decimal      `json:"debit" swaggertype:"string"`
	Credit         decimal.Decimal      `json:"credit" swaggertype:"string"`
	RunningBalance decimal.Decimal      `json:"running_balance" swaggertype:"string"`
	Notes          string               `json:"notes"`
	BranchID       int64                `json:"branch_id"`
}

// StatementSummaryResponse is one per-account row of a summary statement.
type StatementSummaryResponse struct {
	AccountID   int64           `json:"account_id"`
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	DebitSum    decimal.Decimal `json:"debit_sum" swaggertype:"string"`
	CreditSum   decimal.Decimal `json:"credit_sum" swaggertype:"string"`
	Balance     decimal.Decimal `json:"balance" swaggertype:"string"`
}

// StatementBlockResponse is the statement of one currency.
type StatementBlockResponse struct {
	CurrencyID     int64                      `json:"currency_id"`
	CurrencyCode   string                     `json:"currency_code"`
	OpeningBalance decimal.Decimal            `json:"opening_balance" swaggertype:"string"`
	ClosingBalance decimal.Decimal            `json:"closing_balance" swaggertype:"string"`
	Rows           []StatementLineResponse    `json:"rows,omitempty"`
	Summary        []StatementSummaryResponse `json:"summary,omitempty"`
}

// ToStatementBlockResponse converts a computed block. Figures are already rounded by the service.
func ToStatementBlockResponse(b domain.StatementBlock) StatementBlockResponse {
	resp := StatementBlockResponse{
		CurrencyID:     b.CurrencyID,
		CurrencyCode:   b.CurrencyCode,
		OpeningBalance: b.OpeningBalance,
		ClosingBalance: b.ClosingBalance,
	}
	for _, l := range b.Lines {
		resp.Rows = append(resp.Rows, StatementLineResponse{
			ID:             l.ID,
			JournalDate:    l.JournalDate.Format("2006-01-02"),
			JournalTypeID:  l.JournalTypeID,
			ReferenceType:  l.ReferenceType,
			ReferenceID:    l.ReferenceID,
			AccountID:      l.AccountID,
			AccountCode:    l.AccountCode,
			AccountName:    l.AccountName,
			Debit:          l.Debit,
			Credit:         l.Credit,
			RunningBalance: l.RunningBalance,
			Notes:          l.Notes,
			BranchID:       l.BranchID,
		})
	}
	for _, s := range b.Summary {
		resp.Summary = append(resp.Summary, StatementSummaryResponse{
			AccountID:   s.AccountID,
			AccountCode: s.AccountCode,
			AccountName: s.AccountName,
			DebitSum:    s.DebitSum,
			CreditSum:   s.CreditSum,
			Balance:     s.Balance,
		})
	}
	return resp
}

// ToStatementBlockResponses converts every block.
func ToStatementBlockResponses(blocks []domain.StatementBlock) []StatementBlockResponse {
	out := make([]StatementBlockResponse, len(blocks))
	for i, b := range blocks {
		out[i] = ToStatementBlockResponse(b)
	}
	return out
}

// OrderCommissionResponse is the derived commission of one order.
type OrderCommissionResponse struct {
	OrderID              int64           `json:"order_id"`
	RestaurantID         *int64          `json:"restaurant_id,omitempty"`
	CaptainID            *int64          `json:"captain_id,omitempty"`
	RestaurantCommission decimal.Decimal `json:"restaurant_commission" swaggertype:"string"`
	CaptainCommission    decimal.Decimal `json:"captain_commission" swaggertype:"string"`
}

// CaptainCommissionResponse aggregates the captain side of one captain.
type CaptainCommissionResponse struct {
	CaptainID  int64           `json:"captain_id"`
	OrderCount int64           `json:"order_count"`
	Commission decimal.Decimal `json:"commission" swaggertype:"string"`
}

// CommissionReportResponse is the commission report of a period.
type CommissionReportResponse struct {
	Orders          []OrderCommissionResponse   `json:"orders"`
	Captains        []CaptainCommissionResponse `json:"captains"`
	RestaurantTotal decimal.Decimal             `json:"restaurant_total" swaggertype:"string"`
	CaptainTotal    decimal.Decimal             `json:"captain_total" swaggertype:"string"`
}

// ToCommissionReportResponse converts a computed report.
func ToCommissionReportResponse(r *domain.CommissionReport) CommissionReportResponse {
	resp := CommissionReportResponse{
		Orders:          make([]OrderCommissionResponse, 0, len(r.Orders)),
		Captains:        make([]CaptainCommissionResponse, 0, len(r.Captains)),
		RestaurantTotal: r.RestaurantTotal,
		CaptainTotal:    r.CaptainTotal,
	}
	for _, o := range r.Orders {
		resp.Orders = append(resp.Orders, OrderCommissionResponse{
			OrderID:              o.OrderID,
			RestaurantID:         o.RestaurantID,
			CaptainID:            o.CaptainID,
			RestaurantCommission: o.RestaurantCommission,
			CaptainCommission:    o.CaptainCommission,
		})
	}
	for _, c := range r.Captains {
		resp.Captains = append(resp.Captains, CaptainCommissionResponse{
			CaptainID:  c.CaptainID,
			OrderCount: c.OrderCount,
			Commission: c.Commission,
		})
	}
	return resp
}
