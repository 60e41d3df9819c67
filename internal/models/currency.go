package models

import "github.com/shopspring/decimal"

// Currency represents a row of the currencies table.
type Currency struct {
	ID           int64            `db:"id"`
	Code         string           `db:"code"`
	Name         string           `db:"name"`
	ExchangeRate decimal.Decimal  `db:"exchange_rate"`
	MinRate      *decimal.Decimal `db:"min_rate"`
	MaxRate      *decimal.Decimal `db:"max_rate"`
	IsLocal      bool             `db:"is_local"`
	IsActive     bool             `db:"is_active"`
}
