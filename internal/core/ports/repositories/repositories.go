package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager      TransactionManager
	SettingsRepo   SettingsRepository
	AccountRepo    AccountRepositoryFacade
	CurrencyRepo   CurrencyRepositoryFacade
	SourceRepo     MoneySourceRepository
	PartyRepo      PartyRepository
	JournalRepo    JournalRepositoryWithTx
	CeilingRepo    CeilingRepository
	GuaranteeRepo  GuaranteeRepository
	ExchangeRepo   ExchangeRepository
	VoucherRepo    VoucherRepository
	OrderRepo      OrderRepository
	StatementRepo  StatementRepository
	CommissionRepo CommissionRepository
}
