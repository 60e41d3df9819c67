package mapping

import (
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/SscSPs/branch_ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		ID:           m.ID,
		Code:         m.Code,
		Name:         m.Name,
		ExchangeRate: m.ExchangeRate,
		MinRate:      rateBound(m.MinRate),
		MaxRate:      rateBound(m.MaxRate),
		IsLocal:      m.IsLocal,
		IsActive:     m.IsActive,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

// rateBound treats a zero or negative stored bound as unset; rates are always positive.
func rateBound(b *decimal.Decimal) *decimal.Decimal {
	if b == nil || !b.IsPositive() {
		return nil
	}
	v := *b
	return &v
}
