package domain

// Principal is the authenticated caller as resolved by the auth layer.
type Principal struct {
	ID            int64  `json:"id"`
	Role          string `json:"role"`
	BranchID      int64  `json:"branchID"`
	IsAdminBranch bool   `json:"isAdminBranch"`
	CustomerID    *int64 `json:"customerID,omitempty"`
}

// BranchScope is the effective branch filter of a read. A nil BranchID means unscoped.
type BranchScope struct {
	BranchID *int64
}

// Unscoped reports whether the scope sees every branch.
func (s BranchScope) Unscoped() bool {
	return s.BranchID == nil
}

// Allows reports whether a row of branchID is visible within the scope.
func (s BranchScope) Allows(branchID int64) bool {
	return s.BranchID == nil || *s.BranchID == branchID
}

// ScopedTo returns a scope restricted to branchID.
func ScopedTo(branchID int64) BranchScope {
	return BranchScope{BranchID: &branchID}
}
