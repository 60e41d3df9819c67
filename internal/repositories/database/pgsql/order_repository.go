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

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepository {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepository = (*PgxOrderRepository)(nil)

// FindOrderForUpdateInTx locks the order row until tx ends. Concurrent status updates of the same
// order queue behind it, so ledger_posted is read and written under one lock.
func (r *PgxOrderRepository) FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, orderID int64) (*domain.Order, error) {
	query := `
		SELECT id, customer_id, restaurant_id, captain_id, currency_id, payment_method, status, is_manual,
		       items_subtotal, delivery_fee, total, ledger_posted, order_date, branch_id
		FROM orders
		WHERE id = $1
		FOR UPDATE;
	`
	var o domain.Order
	err := tx.QueryRow(ctx, query, orderID).Scan(
		&o.ID,
		&o.CustomerID,
		&o.RestaurantID,
		&o.CaptainID,
		&o.CurrencyID,
		&o.PaymentMethod,
		&o.Status,
		&o.IsManual,
		&o.ItemsSubtotal,
		&o.DeliveryFee,
		&o.Total,
		&o.LedgerPosted,
		&o.OrderDate,
		&o.BranchID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock order %d: %w", orderID, err)
	}
	return &o, nil
}

// UpdateOrderStatusInTx writes the status and the ledger_posted flag.
func (r *PgxOrderRepository) UpdateOrderStatusInTx(ctx context.Context, tx pgx.Tx, orderID int64, status domain.OrderStatus, ledgerPosted bool) error {
	tag, err := tx.Exec(ctx,
		`UPDATE orders SET status = $2, ledger_posted = $3 WHERE id = $1;`,
		orderID, string(status), ledgerPosted,
	)
	if err != nil {
		return fmt.Errorf("failed to update order %d: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetLedgerPostedInTx clears or sets ledger_posted after the order's journal rows were reversed
// or deleted.
func (r *PgxOrderRepository) SetLedgerPostedInTx(ctx context.Context, tx pgx.Tx, orderID int64, ledgerPosted bool) error {
	if _, err := tx.Exec(ctx, `UPDATE orders SET ledger_posted = $2 WHERE id = $1;`, orderID, ledgerPosted); err != nil {
		return fmt.Errorf("failed to update ledger_posted of order %d: %w", orderID, err)
	}
	return nil
}
