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

const journalColumns = `id, journal_type_id, reference_type, reference_id, journal_date, currency_id, account_id,
	debit, credit, COALESCE(notes, '') AS notes, branch_id, cost_center_id, created_at, created_by`

// PgxJournalRepository implements the journal repository interface using pgx.
type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal rows.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// InsertEntriesInTx inserts every leg in one batch and returns the legs with their ids.
func (r *PgxJournalRepository) InsertEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) ([]domain.JournalEntry, error) {
	query := `
		INSERT INTO journal_entries (journal_type_id, reference_type, reference_id, journal_date, currency_id, account_id,
		                             debit, credit, notes, branch_id, cost_center_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelJournalEntry(e)
		batch.Queue(query,
			m.JournalTypeID,
			m.ReferenceType,
			m.ReferenceID,
			m.JournalDate,
			m.CurrencyID,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.Notes,
			m.BranchID,
			m.CostCenterID,
			m.CreatedAt,
			m.CreatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	out := make([]domain.JournalEntry, len(entries))
	for i, e := range entries {
		if err := br.QueryRow().Scan(&e.ID); err != nil {
			_ = br.Close()
			return nil, fmt.Errorf("failed to insert journal leg %d of %s %d: %w", i+1, e.ReferenceType, e.ReferenceID, err)
		}
		out[i] = e
	}
	// Close the batch results to surface errors of any remaining command
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to execute journal batch: %w", err)
	}
	return out, nil
}

// DeleteByReferenceInTx removes a whole reference group, optionally restricted to one branch.
func (r *PgxJournalRepository) DeleteByReferenceInTx(ctx context.Context, tx pgx.Tx, refType domain.ReferenceType, refID int64, branchID *int64) (int64, error) {
	var p predicates
	p.add("reference_type = ?", string(refType))
	p.add("reference_id = ?", refID)
	if branchID != nil {
		p.add("branch_id = ?", *branchID)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries`+p.where()+`;`, p.args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s %d: %w", refType, refID, err)
	}
	return tag.RowsAffected(), nil
}

// FindByReferenceInTx lists the rows of a reference group ordered by id.
func (r *PgxJournalRepository) FindByReferenceInTx(ctx context.Context, tx pgx.Tx, refType domain.ReferenceType, refID int64, branchID *int64) ([]domain.JournalEntry, error) {
	var p predicates
	p.add("reference_type = ?", string(refType))
	p.add("reference_id = ?", refID)
	if branchID != nil {
		p.add("branch_id = ?", *branchID)
	}

	rows, err := tx.Query(ctx, `SELECT `+journalColumns+` FROM journal_entries`+p.where()+` ORDER BY id;`, p.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s %d: %w", refType, refID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s %d: %w", refType, refID, err)
	}
	return mapping.ToDomainJournalEntrySlice(ms), nil
}

// SumSignedByAccount returns Σ(debit - credit) over every row of the account.
func (r *PgxJournalRepository) SumSignedByAccount(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(debit - credit), 0) FROM journal_entries WHERE account_id = $1;`, accountID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum account %d: %w", accountID, err)
	}
	return sum, nil
}
