package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetSettingsInTx reads the singleton settings row. A missing row yields empty settings so the
// posting recipes report which transit account is missing.
func (r *PgxSettingsRepository) GetSettingsInTx(ctx context.Context, tx pgx.Tx) (domain.Settings, error) {
	query := `
		SELECT customer_credit_account, customer_guarantee_account, courier_commission_account,
		       commission_income_account, transfer_guarantee_account, currency_exchange_account,
		       default_vendor_account
		FROM settings
		ORDER BY id
		LIMIT 1;
	`
	var s domain.Settings
	err := tx.QueryRow(ctx, query).Scan(
		&s.CustomerCreditAccount,
		&s.CustomerGuaranteeAccount,
		&s.CourierCommissionAccount,
		&s.CommissionIncomeAccount,
		&s.TransferGuaranteeAccount,
		&s.CurrencyExchangeAccount,
		&s.DefaultVendorAccount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Settings{}, nil
		}
		return domain.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return s, nil
}
