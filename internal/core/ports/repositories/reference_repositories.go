package repositories

import (
	"context"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SettingsRepository reads the singleton settings row.
type SettingsRepository interface {
	// GetSettingsInTx reads the settings row within tx. A missing row yields empty settings.
	GetSettingsInTx(ctx context.Context, tx pgx.Tx) (domain.Settings, error)
}

// CurrencyReader defines read operations for currencies
type CurrencyReader interface {
	// FindCurrencyByID returns apperrors.ErrNotFound for an unknown id.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// FindCurrenciesByIDs returns the currencies found, keyed by id.
	FindCurrenciesByIDs(ctx context.Context, currencyIDs []int64) (map[int64]domain.Currency, error)
}

// CurrencyTxReader defines the currency lookups made inside a posting transaction
type CurrencyTxReader interface {
	FindCurrencyByIDInTx(ctx context.Context, tx pgx.Tx, currencyID int64) (*domain.Currency, error)

	// FindLocalCurrencyInTx returns apperrors.ErrNotFound when no currency is flagged local.
	FindLocalCurrencyInTx(ctx context.Context, tx pgx.Tx) (*domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyTxReader
}

// MoneySourceRepository resolves cash boxes and banks.
type MoneySourceRepository interface {
	FindCashBoxInTx(ctx context.Context, tx pgx.Tx, cashBoxID int64) (*domain.CashBox, error)
	FindBankInTx(ctx context.Context, tx pgx.Tx, bankID int64) (*domain.Bank, error)
}

// PartyRepository resolves customers and restaurants.
type PartyRepository interface {
	FindCustomerInTx(ctx context.Context, tx pgx.Tx, customerID int64) (*domain.Customer, error)
	FindRestaurantInTx(ctx context.Context, tx pgx.Tx, restaurantID int64) (*domain.Restaurant, error)
}
