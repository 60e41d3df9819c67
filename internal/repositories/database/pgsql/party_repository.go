package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepository {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

func (r *PgxPartyRepository) FindCustomerInTx(ctx context.Context, tx pgx.Tx, customerID int64) (*domain.Customer, error) {
	var c domain.Customer
	err := tx.QueryRow(ctx,
		`SELECT id, name, account_id, branch_id FROM customers WHERE id = $1;`, customerID,
	).Scan(&c.ID, &c.Name, &c.AccountID, &c.BranchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %d: %w", customerID, err)
	}
	return &c, nil
}

func (r *PgxPartyRepository) FindRestaurantInTx(ctx context.Context, tx pgx.Tx, restaurantID int64) (*domain.Restaurant, error) {
	var res domain.Restaurant
	err := tx.QueryRow(ctx,
		`SELECT id, name, account_id, branch_id FROM restaurants WHERE id = $1;`, restaurantID,
	).Scan(&res.ID, &res.Name, &res.AccountID, &res.BranchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find restaurant %d: %w", restaurantID, err)
	}
	return &res, nil
}
