package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCommissionRepository struct {
	BaseRepository
}

func newPgxCommissionRepository(pool *pgxpool.Pool) portsrepo.CommissionRepository {
	return &PgxCommissionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CommissionRepository = (*PgxCommissionRepository)(nil)

// ListCommissionOrders lists non-cancelled orders with their line item counts.
func (r *PgxCommissionRepository) ListCommissionOrders(ctx context.Context, scope domain.BranchScope, query domain.CommissionQuery) ([]domain.CommissionOrder, error) {
	var p predicates
	p.add("o.status <> ?", string(domain.OrderCancelled))
	if scope.BranchID != nil {
		p.add("o.branch_id = ?", *scope.BranchID)
	}
	if query.FromDate != nil {
		p.add("o.order_date >= ?", *query.FromDate)
	}
	if query.ToDate != nil {
		p.add("o.order_date <= ?", *query.ToDate)
	}
	if query.RestaurantID != nil {
		p.add("o.restaurant_id = ?", *query.RestaurantID)
	}
	if query.CaptainID != nil {
		p.add("o.captain_id = ?", *query.CaptainID)
	}

	sql := `
		SELECT o.id, o.restaurant_id, o.captain_id, o.items_subtotal, o.delivery_fee,
		       COALESCE((SELECT SUM(oi.quantity) FROM order_items oi WHERE oi.order_id = o.id), 0)::bigint,
		       o.order_date
		FROM orders o` + p.where() + `
		ORDER BY o.order_date, o.id;`

	rows, err := r.Pool.Query(ctx, sql, p.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission orders: %w", err)
	}
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CommissionOrder, error) {
		var o domain.CommissionOrder
		err := row.Scan(&o.OrderID, &o.RestaurantID, &o.CaptainID, &o.ItemsSubtotal, &o.DeliveryFee, &o.LineItemCount, &o.OrderDate)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan commission orders: %w", err)
	}
	return orders, nil
}

// ListContracts lists every contract of the scope; activity on a given day is decided by the caller.
func (r *PgxCommissionRepository) ListContracts(ctx context.Context, scope domain.BranchScope) ([]domain.CommissionContract, error) {
	var p predicates
	if scope.BranchID != nil {
		p.add("branch_id = ?", *scope.BranchID)
	}
	sql := `
		SELECT id, party, party_id, kind, value, contract_start, contract_end, is_active, branch_id
		FROM commission_contracts` + p.where() + `
		ORDER BY id;`

	rows, err := r.Pool.Query(ctx, sql, p.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission contracts: %w", err)
	}
	contracts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CommissionContract, error) {
		var c domain.CommissionContract
		err := row.Scan(&c.ID, &c.Party, &c.PartyID, &c.Kind, &c.Value, &c.ContractStart, &c.ContractEnd, &c.IsActive, &c.BranchID)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan commission contracts: %w", err)
	}
	return contracts, nil
}
