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

const accountColumns = `id, code, name, parent_id, level, branch_id, financial_statement_id, is_active, created_at, created_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// CreateAccount inserts a new account and returns its id.
func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (int64, error) {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (code, name, parent_id, level, branch_id, financial_statement_id, is_active, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.Code,
		m.Name,
		m.ParentID,
		m.Level,
		m.BranchID,
		m.FinancialStatementID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return 0, fmt.Errorf("failed to save account %s: %w", m.Code, err)
	}
	return id, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1;`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account by ID %d: %w", accountID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account %d: %w", accountID, err)
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts lists global accounts plus the accounts of the scoped branch, ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, scope domain.BranchScope) ([]domain.Account, error) {
	var p predicates
	if scope.BranchID != nil {
		p.add("(branch_id IS NULL OR branch_id = ?)", *scope.BranchID)
	}
	query := `SELECT ` + accountColumns + ` FROM accounts` + p.where() + ` ORDER BY code, id;`

	rows, err := r.Pool.Query(ctx, query, p.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// FindAccountsByIDsInTx retrieves the given accounts inside tx. Missing ids are absent from the map.
func (r *PgxAccountRepository) FindAccountsByIDsInTx(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ANY($1);`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts by IDs: %w", err)
	}

	accounts := make(map[int64]domain.Account, len(ms))
	for _, m := range ms {
		accounts[m.ID] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}
