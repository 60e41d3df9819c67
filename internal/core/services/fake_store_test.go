package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// fakeTx stages writes until Commit. Calling any pgx.Tx method on it panics, which keeps the
// services honest about going through the repository ports.
type fakeTx struct {
	pgx.Tx
	pending []func(*memStore)
	done    bool
}

// memStore is an in-memory stand-in for every repository port the posting engine uses.
type memStore struct {
	mu     sync.Mutex
	nextID int64

	settings    domain.Settings
	accounts    map[int64]domain.Account
	currencies  map[int64]domain.Currency
	cashBoxes   map[int64]domain.CashBox
	banks       map[int64]domain.Bank
	customers   map[int64]domain.Customer
	restaurants map[int64]domain.Restaurant
	guarantees  map[int64]domain.CustomerGuarantee
	orders      map[int64]domain.Order

	moves      []domain.CustomerGuaranteeMove
	ceilings   []domain.Ceiling
	exchanges  []domain.CurrencyExchange
	vouchers   []domain.Voucher
	voucherSeq int64
	journal    []domain.JournalEntry

	// failOnLeg makes InsertEntriesInTx fail when it reaches that 1-based leg.
	failOnLeg int

	begins, commits, rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		nextID:      1000,
		accounts:    map[int64]domain.Account{},
		currencies:  map[int64]domain.Currency{},
		cashBoxes:   map[int64]domain.CashBox{},
		banks:       map[int64]domain.Bank{},
		customers:   map[int64]domain.Customer{},
		restaurants: map[int64]domain.Restaurant{},
		guarantees:  map[int64]domain.CustomerGuarantee{},
		orders:      map[int64]domain.Order{},
	}
}

func (s *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:     s,
		SettingsRepo:  s,
		AccountRepo:   s,
		CurrencyRepo:  s,
		SourceRepo:    s,
		PartyRepo:     s,
		JournalRepo:   s,
		CeilingRepo:   s,
		GuaranteeRepo: s,
		ExchangeRepo:  s,
		VoucherRepo:   s,
		OrderRepo:     s,
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func asFake(tx pgx.Tx) *fakeTx {
	return tx.(*fakeTx)
}

// --- TransactionManager ---

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.begins++
	return &fakeTx{}, nil
}

func (s *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ft := asFake(tx)
	for _, apply := range ft.pending {
		apply(s)
	}
	ft.pending = nil
	ft.done = true
	s.commits++
	return nil
}

func (s *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	ft := asFake(tx)
	if ft.done {
		return nil
	}
	ft.pending = nil
	ft.done = true
	s.rollbacks++
	return nil
}

// --- Reference data ---

func (s *memStore) GetSettingsInTx(ctx context.Context, tx pgx.Tx) (domain.Settings, error) {
	return s.settings, nil
}

func (s *memStore) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (s *memStore) ListAccounts(ctx context.Context, scope domain.BranchScope) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if a.BranchID == nil || scope.Allows(*a.BranchID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *memStore) FindAccountsByIDsInTx(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	out := make(map[int64]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if a, ok := s.accounts[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (s *memStore) CreateAccount(ctx context.Context, account domain.Account) (int64, error) {
	account.ID = s.id()
	s.accounts[account.ID] = account
	return account.ID, nil
}

func (s *memStore) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	c, ok := s.currencies[currencyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (s *memStore) FindCurrenciesByIDs(ctx context.Context, currencyIDs []int64) (map[int64]domain.Currency, error) {
	out := map[int64]domain.Currency{}
	for _, id := range currencyIDs {
		if c, ok := s.currencies[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (s *memStore) FindCurrencyByIDInTx(ctx context.Context, tx pgx.Tx, currencyID int64) (*domain.Currency, error) {
	return s.FindCurrencyByID(ctx, currencyID)
}

func (s *memStore) FindLocalCurrencyInTx(ctx context.Context, tx pgx.Tx) (*domain.Currency, error) {
	for _, c := range s.currencies {
		if c.IsLocal {
			c := c
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) FindCashBoxInTx(ctx context.Context, tx pgx.Tx, cashBoxID int64) (*domain.CashBox, error) {
	b, ok := s.cashBoxes[cashBoxID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &b, nil
}

func (s *memStore) FindBankInTx(ctx context.Context, tx pgx.Tx, bankID int64) (*domain.Bank, error) {
	b, ok := s.banks[bankID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &b, nil
}

func (s *memStore) FindCustomerInTx(ctx context.Context, tx pgx.Tx, customerID int64) (*domain.Customer, error) {
	c, ok := s.customers[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (s *memStore) FindRestaurantInTx(ctx context.Context, tx pgx.Tx, restaurantID int64) (*domain.Restaurant, error) {
	r, ok := s.restaurants[restaurantID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

// --- Journal ---

func (s *memStore) InsertEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) ([]domain.JournalEntry, error) {
	ft := asFake(tx)
	out := make([]domain.JournalEntry, 0, len(entries))
	for i, e := range entries {
		if s.failOnLeg == i+1 {
			return nil, errors.New("insert journal_entries: connection reset")
		}
		e.ID = s.id()
		row := e
		ft.pending = append(ft.pending, func(s *memStore) { s.journal = append(s.journal, row) })
		out = append(out, e)
	}
	return out, nil
}

func (s *memStore) DeleteByReferenceInTx(ctx context.Context, tx pgx.Tx, refType domain.ReferenceType, refID int64, branchID *int64) (int64, error) {
	var n int64
	for _, e := range s.journal {
		if matchesRef(e, refType, refID, branchID) {
			n++
		}
	}
	asFake(tx).pending = append(asFake(tx).pending, func(s *memStore) {
		kept := s.journal[:0]
		for _, e := range s.journal {
			if !matchesRef(e, refType, refID, branchID) {
				kept = append(kept, e)
			}
		}
		s.journal = kept
	})
	return n, nil
}

func (s *memStore) FindByReferenceInTx(ctx context.Context, tx pgx.Tx, refType domain.ReferenceType, refID int64, branchID *int64) ([]domain.JournalEntry, error) {
	return s.byReference(refType, refID, branchID), nil
}

func (s *memStore) SumSignedByAccount(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range s.journal {
		if e.AccountID == accountID {
			sum = sum.Add(e.Signed())
		}
	}
	return sum, nil
}

func matchesRef(e domain.JournalEntry, refType domain.ReferenceType, refID int64, branchID *int64) bool {
	if e.ReferenceType != refType || e.ReferenceID != refID {
		return false
	}
	return branchID == nil || e.BranchID == *branchID
}

func (s *memStore) byReference(refType domain.ReferenceType, refID int64, branchID *int64) []domain.JournalEntry {
	var out []domain.JournalEntry
	for _, e := range s.journal {
		if matchesRef(e, refType, refID, branchID) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- Event rows ---

func (s *memStore) CreateCeilingInTx(ctx context.Context, tx pgx.Tx, ceiling domain.Ceiling) (int64, error) {
	ceiling.ID = s.id()
	asFake(tx).pending = append(asFake(tx).pending, func(s *memStore) { s.ceilings = append(s.ceilings, ceiling) })
	return ceiling.ID, nil
}

func (s *memStore) FindGuaranteeByID(ctx context.Context, guaranteeID int64) (*domain.CustomerGuarantee, error) {
	g, ok := s.guarantees[guaranteeID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &g, nil
}

func (s *memStore) FindGuaranteeInTx(ctx context.Context, tx pgx.Tx, guaranteeID int64) (*domain.CustomerGuarantee, error) {
	return s.FindGuaranteeByID(ctx, guaranteeID)
}

func (s *memStore) FindGuaranteeByCustomerInTx(ctx context.Context, tx pgx.Tx, customerID int64) (*domain.CustomerGuarantee, error) {
	for _, g := range s.guarantees {
		if g.CustomerID == customerID {
			g := g
			return &g, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) CreateMoveInTx(ctx context.Context, tx pgx.Tx, move domain.CustomerGuaranteeMove) (int64, error) {
	move.ID = s.id()
	asFake(tx).pending = append(asFake(tx).pending, func(s *memStore) { s.moves = append(s.moves, move) })
	return move.ID, nil
}

func (s *memStore) SumMovesBase(ctx context.Context, guaranteeID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range s.moves {
		if m.GuaranteeID == guaranteeID {
			sum = sum.Add(m.AmountBase)
		}
	}
	return sum, nil
}

func (s *memStore) CreateExchangeInTx(ctx context.Context, tx pgx.Tx, exchange domain.CurrencyExchange) (int64, error) {
	exchange.ID = s.id()
	asFake(tx).pending = append(asFake(tx).pending, func(s *memStore) { s.exchanges = append(s.exchanges, exchange) })
	return exchange.ID, nil
}

func (s *memStore) NextVoucherNoInTx(ctx context.Context, tx pgx.Tx) (int64, error) {
	next := s.voucherSeq + 1
	asFake(tx).pending = append(asFake(tx).pending, func(s *memStore) { s.voucherSeq = next })
	return next, nil
}

func (s *memStore) CreateVoucherInTx(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) (int64, error) {
	voucher.ID = s.id()
	asFake(tx).pending = append(asFake(tx).pending, func(s *memStore) { s.vouchers = append(s.vouchers, voucher) })
	return voucher.ID, nil
}

func (s *memStore) FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, orderID int64) (*domain.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &o, nil
}

func (s *memStore) UpdateOrderStatusInTx(ctx context.Context, tx pgx.Tx, orderID int64, status domain.OrderStatus, ledgerPosted bool) error {
	asFake(tx).pending = append(asFake(tx).pending, func(s *memStore) {
		o := s.orders[orderID]
		o.Status = status
		o.LedgerPosted = ledgerPosted
		s.orders[orderID] = o
	})
	return nil
}

func (s *memStore) SetLedgerPostedInTx(ctx context.Context, tx pgx.Tx, orderID int64, ledgerPosted bool) error {
	asFake(tx).pending = append(asFake(tx).pending, func(s *memStore) {
		if o, ok := s.orders[orderID]; ok {
			o.LedgerPosted = ledgerPosted
			s.orders[orderID] = o
		}
	})
	return nil
}

// --- Publisher ---

type capturePublisher struct {
	events []domain.PostingEvent
	err    error
}

func (p *capturePublisher) PublishPosting(ctx context.Context, event domain.PostingEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func (p *capturePublisher) Close() error { return nil }
