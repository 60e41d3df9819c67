package domain

// CashBox is a physical cash drawer mapped to one leaf account.
type CashBox struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AccountID *int64 `json:"accountID,omitempty"`
	BranchID  *int64 `json:"branchID,omitempty"`
	IsActive  bool   `json:"isActive"`
}

// Bank is a bank account mapped to one leaf account.
type Bank struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AccountID *int64 `json:"accountID,omitempty"`
	BranchID  *int64 `json:"branchID,omitempty"`
	IsActive  bool   `json:"isActive"`
}

// MoneySource identifies where cash physically enters or leaves: exactly one of a cash box or a
// bank is expected.
type MoneySource struct {
	CashBoxID *int64 `json:"cashBoxID,omitempty"`
	BankID    *int64 `json:"bankID,omitempty"`
}
