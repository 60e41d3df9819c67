package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/branch_ledger/internal/models"
	"github.com/SscSPs/branch_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `id, code, name, exchange_rate, min_rate, max_rate, is_local, is_active`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func (r *PgxCurrencyRepository) findOne(ctx context.Context, q querier, where string, args ...any) (*domain.Currency, error) {
	rows, err := q.Query(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE `+where+` LIMIT 1;`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan currency: %w", err)
	}
	cur := mapping.ToDomainCurrency(m)
	return &cur, nil
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	return r.findOne(ctx, r.Pool, "id = $1", currencyID)
}

// FindCurrenciesByIDs retrieves the given currencies keyed by id.
func (r *PgxCurrencyRepository) FindCurrenciesByIDs(ctx context.Context, currencyIDs []int64) (map[int64]domain.Currency, error) {
	if len(currencyIDs) == 0 {
		return map[int64]domain.Currency{}, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE id = ANY($1);`, currencyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	out := make(map[int64]domain.Currency, len(ms))
	for _, c := range mapping.ToDomainCurrencySlice(ms) {
		out[c.ID] = c
	}
	return out, nil
}

// FindCurrencyByIDInTx retrieves a currency inside tx.
func (r *PgxCurrencyRepository) FindCurrencyByIDInTx(ctx context.Context, tx pgx.Tx, currencyID int64) (*domain.Currency, error) {
	return r.findOne(ctx, tx, "id = $1", currencyID)
}

// FindLocalCurrencyInTx retrieves the currency flagged local.
func (r *PgxCurrencyRepository) FindLocalCurrencyInTx(ctx context.Context, tx pgx.Tx) (*domain.Currency, error) {
	return r.findOne(ctx, tx, "is_local = true ORDER BY id")
}
