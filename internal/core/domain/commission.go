package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionParty is the side of an order a contract applies to.
type CommissionParty string

const (
	PartyRestaurant CommissionParty = "restaurant"
	PartyCaptain    CommissionParty = "captain"
)

// CommissionKind is how a contract value is applied.
type CommissionKind string

const (
	CommissionPercentage CommissionKind = "percentage"
	CommissionFlat       CommissionKind = "flat"
)

// CommissionContract is a restaurant-side or captain-side commission agreement.
type CommissionContract struct {
	ID            int64           `json:"id"`
	Party         CommissionParty `json:"party"`
	PartyID       int64           `json:"partyID"`
	Kind          CommissionKind  `json:"kind"`
	Value         decimal.Decimal `json:"value"`
	ContractStart time.Time       `json:"contractStart"`
	ContractEnd   time.Time       `json:"contractEnd"`
	IsActive      bool            `json:"isActive"`
	BranchID      int64           `json:"branchID"`
}

// ActiveOn reports whether the contract applies on the calendar day of now.
func (c CommissionContract) ActiveOn(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	day := truncateDay(now)
	return !day.Before(truncateDay(c.ContractStart)) && !day.After(truncateDay(c.ContractEnd))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CommissionQuery filters a commission report.
type CommissionQuery struct {
	FromDate     *time.Time
	ToDate       *time.Time
	RestaurantID *int64
	CaptainID    *int64
}

// CommissionOrder is an order with the figures the aggregator needs.
type CommissionOrder struct {
	OrderID       int64           `json:"orderID"`
	RestaurantID  *int64          `json:"restaurantID,omitempty"`
	CaptainID     *int64          `json:"captainID,omitempty"`
	ItemsSubtotal decimal.Decimal `json:"itemsSubtotal"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	LineItemCount int64           `json:"lineItemCount"`
	OrderDate     time.Time       `json:"orderDate"`
}

// OrderCommission is the derived commission of one order.
type OrderCommission struct {
	OrderID              int64           `json:"orderID"`
	RestaurantID         *int64          `json:"restaurantID,omitempty"`
	CaptainID            *int64          `json:"captainID,omitempty"`
	RestaurantCommission decimal.Decimal `json:"restaurantCommission"`
	CaptainCommission    decimal.Decimal `json:"captainCommission"`
}

// CaptainCommissionTotal aggregates the captain side per captain.
type CaptainCommissionTotal struct {
	CaptainID  int64           `json:"captainID"`
	OrderCount int64           `json:"orderCount"`
	Commission decimal.Decimal `json:"commission"`
}

// CommissionReport is the read-only result of the aggregator.
type CommissionReport struct {
	Orders          []OrderCommission        `json:"orders"`
	Captains        []CaptainCommissionTotal `json:"captains"`
	RestaurantTotal decimal.Decimal          `json:"restaurantTotal"`
	CaptainTotal    decimal.Decimal          `json:"captainTotal"`
}
