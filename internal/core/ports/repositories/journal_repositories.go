package repositories

import (
	"context"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// JournalWriter defines write operations for journal rows. Rows are never updated in place.
type JournalWriter interface {
	// InsertEntriesInTx inserts every leg within tx and returns them with their ids set.
	InsertEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) ([]domain.JournalEntry, error)

	// DeleteByReferenceInTx deletes a whole reference group. A non-nil branchID restricts the
	// delete to that branch. It returns the number of rows removed.
	DeleteByReferenceInTx(ctx context.Context, tx pgx.Tx, refType domain.ReferenceType, refID int64, branchID *int64) (int64, error)
}

// JournalReader defines read operations for journal rows
type JournalReader interface {
	// FindByReferenceInTx lists the rows of a reference group ordered by id.
	FindByReferenceInTx(ctx context.Context, tx pgx.Tx, refType domain.ReferenceType, refID int64, branchID *int64) ([]domain.JournalEntry, error)

	// SumSignedByAccount returns Σ(debit - credit) over every row of accountID.
	SumSignedByAccount(ctx context.Context, accountID int64) (decimal.Decimal, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
