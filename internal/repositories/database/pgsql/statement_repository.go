package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/branch_ledger/internal/models"
	"github.com/SscSPs/branch_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// statementWindow selects which date bounds of a filter apply to a query.
type statementWindow int

const (
	// windowUpToEnd covers every row dated up to ToDate.
	windowUpToEnd statementWindow = iota
	// windowBeforeStart covers rows dated before FromDate.
	windowBeforeStart
	// windowPeriod covers rows dated within [FromDate, ToDate].
	windowPeriod
)

type PgxStatementRepository struct {
	BaseRepository
}

func newPgxStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepository {
	return &PgxStatementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StatementRepository = (*PgxStatementRepository)(nil)

// statementPredicates builds the shared row filter. Without an explicit account the statement
// covers the global accounts plus, for a scoped branch, that branch's own accounts.
func statementPredicates(filter portsrepo.StatementFilter, currencyID *int64, window statementWindow) *predicates {
	p := &predicates{}
	if filter.AccountID != nil {
		p.add("je.account_id = ?", *filter.AccountID)
	} else if filter.Scope.BranchID != nil {
		p.add("(a.branch_id IS NULL OR a.branch_id = ?)", *filter.Scope.BranchID)
	} else {
		p.add("a.branch_id IS NULL")
	}
	if filter.Scope.BranchID != nil {
		p.add("je.branch_id = ?", *filter.Scope.BranchID)
	}
	if currencyID != nil {
		p.add("je.currency_id = ?", *currencyID)
	}

	switch window {
	case windowBeforeStart:
		if filter.FromDate != nil {
			p.add("je.journal_date < ?", *filter.FromDate)
		}
	case windowPeriod:
		if filter.FromDate != nil {
			p.add("je.journal_date >= ?", *filter.FromDate)
		}
		fallthrough
	case windowUpToEnd:
		if filter.ToDate != nil {
			p.add("je.journal_date <= ?", *filter.ToDate)
		}
	}
	return p
}

const statementFrom = ` FROM journal_entries je JOIN accounts a ON a.id = je.account_id`

// ListCurrencies returns the distinct currencies of the filtered rows dated up to ToDate.
func (r *PgxStatementRepository) ListCurrencies(ctx context.Context, filter portsrepo.StatementFilter) ([]int64, error) {
	p := statementPredicates(filter, nil, windowUpToEnd)
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT je.currency_id`+statementFrom+p.where()+` ORDER BY je.currency_id;`, p.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list statement currencies: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan statement currencies: %w", err)
	}
	return ids, nil
}

// OpeningBalance returns Σ(debit - credit) of the filtered rows dated before FromDate.
func (r *PgxStatementRepository) OpeningBalance(ctx context.Context, filter portsrepo.StatementFilter, currencyID int64) (decimal.Decimal, error) {
	if filter.FromDate == nil {
		return decimal.Zero, nil
	}
	p := statementPredicates(filter, &currencyID, windowBeforeStart)

	var opening decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(je.debit - je.credit), 0)`+statementFrom+p.where()+`;`, p.args...).Scan(&opening)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute opening balance: %w", err)
	}
	return opening, nil
}

// ListRows returns the period rows ordered by (journal_date, id).
func (r *PgxStatementRepository) ListRows(ctx context.Context, filter portsrepo.StatementFilter, currencyID int64) ([]domain.StatementLine, error) {
	p := statementPredicates(filter, &currencyID, windowPeriod)
	query := `
		SELECT je.id, je.journal_type_id, je.reference_type, je.reference_id, je.journal_date, je.currency_id, je.account_id,
		       je.debit, je.credit, COALESCE(je.notes, '') AS notes, je.branch_id, je.cost_center_id, je.created_at, je.created_by,
		       a.code AS account_code, a.name AS account_name` +
		statementFrom + p.where() + `
		ORDER BY je.journal_date, je.id;`

	rows, err := r.Pool.Query(ctx, query, p.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list statement rows: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StatementRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan statement rows: %w", err)
	}

	lines := make([]domain.StatementLine, len(ms))
	for i, m := range ms {
		lines[i] = mapping.ToDomainStatementLine(m)
	}
	return lines, nil
}
