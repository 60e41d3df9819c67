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

type PgxMoneySourceRepository struct {
	BaseRepository
}

func newPgxMoneySourceRepository(pool *pgxpool.Pool) portsrepo.MoneySourceRepository {
	return &PgxMoneySourceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MoneySourceRepository = (*PgxMoneySourceRepository)(nil)

// FindCashBoxInTx retrieves a cash box and its account mapping.
func (r *PgxMoneySourceRepository) FindCashBoxInTx(ctx context.Context, tx pgx.Tx, cashBoxID int64) (*domain.CashBox, error) {
	var b domain.CashBox
	err := tx.QueryRow(ctx,
		`SELECT id, name, account_id, branch_id, is_active FROM cash_boxes WHERE id = $1;`, cashBoxID,
	).Scan(&b.ID, &b.Name, &b.AccountID, &b.BranchID, &b.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash box %d: %w", cashBoxID, err)
	}
	return &b, nil
}

// FindBankInTx retrieves a bank and its account mapping.
func (r *PgxMoneySourceRepository) FindBankInTx(ctx context.Context, tx pgx.Tx, bankID int64) (*domain.Bank, error) {
	var b domain.Bank
	err := tx.QueryRow(ctx,
		`SELECT id, name, account_id, branch_id, is_active FROM banks WHERE id = $1;`, bankID,
	).Scan(&b.ID, &b.Name, &b.AccountID, &b.BranchID, &b.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank %d: %w", bankID, err)
	}
	return &b, nil
}
