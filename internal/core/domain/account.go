package domain

import "sort"

// AccountLevel distinguishes grouping accounts from postable ones.
type AccountLevel string

const (
	LevelRoot AccountLevel = "root"
	LevelLeaf AccountLevel = "leaf"
)

// Account represents a node of the chart of accounts.
// A nil BranchID means the account is globally visible.
type Account struct {
	ID                   int64        `json:"id"`
	Code                 string       `json:"code"`
	Name                 string       `json:"name"`
	ParentID             *int64       `json:"parentID,omitempty"`
	Level                AccountLevel `json:"level"`
	BranchID             *int64       `json:"branchID,omitempty"`
	FinancialStatementID *int64       `json:"financialStatementID,omitempty"`
	IsActive             bool         `json:"isActive"`
	AuditFields
}

// IsLeaf reports whether journal rows may be posted against the account.
func (a Account) IsLeaf() bool {
	return a.Level == LevelLeaf
}

// VisibleTo reports whether the account may be used by a posting in branchID.
func (a Account) VisibleTo(branchID int64) bool {
	return a.BranchID == nil || *a.BranchID == branchID
}

// AccountNode is one entry of an AccountTree.
type AccountNode struct {
	Account
	Children []*AccountNode `json:"children,omitempty"`
}

// AccountTree is an arena of accounts indexed by id. Children lists are assembled on demand by
// Roots; the tree is built per request and never shared.
type AccountTree struct {
	nodes map[int64]*AccountNode
	order []int64
}

// NewAccountTree indexes accounts by id.
func NewAccountTree(accounts []Account) *AccountTree {
	t := &AccountTree{nodes: make(map[int64]*AccountNode, len(accounts)), order: make([]int64, 0, len(accounts))}
	for _, acc := range accounts {
		t.nodes[acc.ID] = &AccountNode{Account: acc}
		t.order = append(t.order, acc.ID)
	}
	return t
}

// Node returns the node for id.
func (t *AccountTree) Node(id int64) (*AccountNode, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Roots links every node to its parent and returns the top-level nodes ordered by code.
// A node whose parent is not part of the arena is treated as a top-level node.
func (t *AccountTree) Roots() []*AccountNode {
	for _, n := range t.nodes {
		n.Children = nil
	}

	var roots []*AccountNode
	for _, id := range t.order {
		n := t.nodes[id]
		if n.ParentID != nil {
			if parent, ok := t.nodes[*n.ParentID]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}

	sortNodes(roots)
	for _, n := range t.nodes {
		sortNodes(n.Children)
	}
	return roots
}

func sortNodes(nodes []*AccountNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Code < nodes[j].Code
	})
}
