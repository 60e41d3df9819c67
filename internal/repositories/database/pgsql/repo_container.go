package pgsql

import (
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	journalRepo := newPgxJournalRepository(dbPool)
	eventRepo := newPgxEventRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:      &BaseRepository{Pool: dbPool},
		SettingsRepo:   newPgxSettingsRepository(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
		CurrencyRepo:   newPgxCurrencyRepository(dbPool),
		SourceRepo:     newPgxMoneySourceRepository(dbPool),
		PartyRepo:      newPgxPartyRepository(dbPool),
		JournalRepo:    journalRepo,
		CeilingRepo:    eventRepo,
		GuaranteeRepo:  eventRepo,
		ExchangeRepo:   eventRepo,
		VoucherRepo:    eventRepo,
		OrderRepo:      newPgxOrderRepository(dbPool),
		StatementRepo:  newPgxStatementRepository(dbPool),
		CommissionRepo: newPgxCommissionRepository(dbPool),
	}
}
