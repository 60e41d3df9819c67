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
	"github.com/shopspring/decimal"
)

// PgxEventRepository persists the domain rows journal postings point back to.
type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(pool *pgxpool.Pool) *PgxEventRepository {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.CeilingRepository   = (*PgxEventRepository)(nil)
	_ portsrepo.GuaranteeRepository = (*PgxEventRepository)(nil)
	_ portsrepo.ExchangeRepository  = (*PgxEventRepository)(nil)
	_ portsrepo.VoucherRepository   = (*PgxEventRepository)(nil)
)

// --- Ceilings ---

func (r *PgxEventRepository) CreateCeilingInTx(ctx context.Context, tx pgx.Tx, c domain.Ceiling) (int64, error) {
	query := `
		INSERT INTO ceilings (account_id, currency_id, amount, ceiling_date, notes, branch_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	var id int64
	if err := tx.QueryRow(ctx, query,
		c.AccountID, c.CurrencyID, c.Amount, c.CeilingDate, c.Notes, c.BranchID, c.CreatedAt, c.CreatedBy,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert ceiling: %w", err)
	}
	return id, nil
}

// --- Guarantees ---

const guaranteeColumns = `id, customer_id, type, account_id, branch_id, created_at, created_by`

func scanGuarantee(row pgx.Row) (*domain.CustomerGuarantee, error) {
	var g domain.CustomerGuarantee
	err := row.Scan(&g.ID, &g.CustomerID, &g.Type, &g.AccountID, &g.BranchID, &g.CreatedAt, &g.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan guarantee: %w", err)
	}
	return &g, nil
}

func (r *PgxEventRepository) FindGuaranteeByID(ctx context.Context, guaranteeID int64) (*domain.CustomerGuarantee, error) {
	return scanGuarantee(r.Pool.QueryRow(ctx, `SELECT `+guaranteeColumns+` FROM customer_guarantees WHERE id = $1;`, guaranteeID))
}

func (r *PgxEventRepository) FindGuaranteeInTx(ctx context.Context, tx pgx.Tx, guaranteeID int64) (*domain.CustomerGuarantee, error) {
	return scanGuarantee(tx.QueryRow(ctx, `SELECT `+guaranteeColumns+` FROM customer_guarantees WHERE id = $1;`, guaranteeID))
}

func (r *PgxEventRepository) FindGuaranteeByCustomerInTx(ctx context.Context, tx pgx.Tx, customerID int64) (*domain.CustomerGuarantee, error) {
	return scanGuarantee(tx.QueryRow(ctx,
		`SELECT `+guaranteeColumns+` FROM customer_guarantees WHERE customer_id = $1 ORDER BY id LIMIT 1;`, customerID))
}

func (r *PgxEventRepository) CreateMoveInTx(ctx context.Context, tx pgx.Tx, m domain.CustomerGuaranteeMove) (int64, error) {
	query := `
		INSERT INTO customer_guarantee_moves (guarantee_id, currency_id, amount, rate, amount_base, cash_box_id, bank_id,
		                                      move_date, notes, branch_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`
	var id int64
	if err := tx.QueryRow(ctx, query,
		m.GuaranteeID, m.CurrencyID, m.Amount, m.Rate, m.AmountBase, m.CashBoxID, m.BankID,
		m.MoveDate, m.Notes, m.BranchID, m.CreatedAt, m.CreatedBy,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert guarantee move: %w", err)
	}
	return id, nil
}

func (r *PgxEventRepository) SumMovesBase(ctx context.Context, guaranteeID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_base), 0) FROM customer_guarantee_moves WHERE guarantee_id = $1;`, guaranteeID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum guarantee %d moves: %w", guaranteeID, err)
	}
	return sum, nil
}

// --- Exchanges ---

func (r *PgxEventRepository) CreateExchangeInTx(ctx context.Context, tx pgx.Tx, e domain.CurrencyExchange) (int64, error) {
	query := `
		INSERT INTO currency_exchanges (from_account_id, to_account_id, from_currency_id, to_currency_id, from_amount, to_amount,
		                                rate, exchange_date, notes, branch_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`
	var id int64
	if err := tx.QueryRow(ctx, query,
		e.FromAccountID, e.ToAccountID, e.FromCurrencyID, e.ToCurrencyID, e.FromAmount, e.ToAmount,
		e.Rate, e.ExchangeDate, e.Notes, e.BranchID, e.CreatedAt, e.CreatedBy,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert currency exchange: %w", err)
	}
	return id, nil
}

// --- Vouchers ---

const voucherSequence = "voucher"

// NextVoucherNoInTx increments the shared sequence row. The row stays locked until tx ends, so
// voucher numbers are gap-free across committed transactions.
func (r *PgxEventRepository) NextVoucherNoInTx(ctx context.Context, tx pgx.Tx) (int64, error) {
	query := `
		INSERT INTO voucher_sequences (name, last_value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET last_value = voucher_sequences.last_value + 1
		RETURNING last_value;
	`
	var next int64
	if err := tx.QueryRow(ctx, query, voucherSequence).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to draw voucher number: %w", err)
	}
	return next, nil
}

func (r *PgxEventRepository) CreateVoucherInTx(ctx context.Context, tx pgx.Tx, v domain.Voucher) (int64, error) {
	query := `
		INSERT INTO vouchers (kind, voucher_no, cash_box_id, bank_id, counter_account_id, currency_id, amount,
		                      voucher_date, notes, branch_id, cost_center_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`
	var id int64
	if err := tx.QueryRow(ctx, query,
		v.Kind, v.VoucherNo, v.CashBoxID, v.BankID, v.CounterAccountID, v.CurrencyID, v.Amount,
		v.VoucherDate, v.Notes, v.BranchID, v.CostCenterID, v.CreatedAt, v.CreatedBy,
	).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: voucher number %d is taken", apperrors.ErrDuplicate, v.VoucherNo)
		}
		return 0, fmt.Errorf("failed to insert voucher: %w", err)
	}
	return id, nil
}
