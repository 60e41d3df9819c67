package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the delivery lifecycle of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderShipping  OrderStatus = "shipping"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderShipping, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// PaymentMethod selects the customer-side leg of an order posting.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentWallet PaymentMethod = "wallet"
)

// Order is a delivery order. LedgerPosted is set in the same transaction that writes its journal
// rows and guards against a second posting.
type Order struct {
	ID            int64           `json:"id"`
	CustomerID    *int64          `json:"customerID,omitempty"`
	RestaurantID  *int64          `json:"restaurantID,omitempty"`
	CaptainID     *int64          `json:"captainID,omitempty"`
	CurrencyID    *int64          `json:"currencyID,omitempty"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        OrderStatus     `json:"status"`
	IsManual      bool            `json:"isManual"`
	ItemsSubtotal decimal.Decimal `json:"itemsSubtotal"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	Total         decimal.Decimal `json:"total"`
	LedgerPosted  bool            `json:"ledgerPosted"`
	OrderDate     time.Time       `json:"orderDate"`
	BranchID      int64           `json:"branchID"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderID"`
	ItemName  string          `json:"itemName"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Restaurant is a vendor whose account receives the items subtotal of an order.
type Restaurant struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AccountID *int64 `json:"accountID,omitempty"`
	BranchID  int64  `json:"branchID"`
}

// Captain is a courier.
type Captain struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	BranchID int64  `json:"branchID"`
}
