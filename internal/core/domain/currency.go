package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency. Exactly one currency is flagged IsLocal.
type Currency struct {
	ID           int64            `json:"id"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	ExchangeRate decimal.Decimal  `json:"exchangeRate"` // Reference rate against the local currency
	MinRate      *decimal.Decimal `json:"minRate,omitempty"`
	MaxRate      *decimal.Decimal `json:"maxRate,omitempty"`
	IsLocal      bool             `json:"isLocal"`
	IsActive     bool             `json:"isActive"`
}

// CheckRate reports whether rate satisfies min_rate <= rate <= max_rate for the bounds
// that are set. The local currency has no bounds.
func (c Currency) CheckRate(rate decimal.Decimal) bool {
	if c.IsLocal {
		return true
	}
	if c.MinRate != nil && rate.LessThan(*c.MinRate) {
		return false
	}
	if c.MaxRate != nil && rate.GreaterThan(*c.MaxRate) {
		return false
	}
	return true
}

// BoundsString renders the configured bounds for error messages.
func (c Currency) BoundsString() string {
	lo, hi := "-inf", "+inf"
	if c.MinRate != nil {
		lo = c.MinRate.String()
	}
	if c.MaxRate != nil {
		hi = c.MaxRate.String()
	}
	return "[" + lo + ", " + hi + "]"
}
