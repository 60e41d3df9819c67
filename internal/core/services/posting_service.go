package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// postingService turns business events into balanced journal postings.
type postingService struct {
	BaseService
	txm           portsrepo.TransactionManager
	settingsRepo  portsrepo.SettingsRepository
	accountRepo   portsrepo.AccountRepositoryFacade
	currencyRepo  portsrepo.CurrencyRepositoryFacade
	sourceRepo    portsrepo.MoneySourceRepository
	partyRepo     portsrepo.PartyRepository
	journalRepo   portsrepo.JournalRepositoryFacade
	ceilingRepo   portsrepo.CeilingRepository
	guaranteeRepo portsrepo.GuaranteeRepository
	exchangeRepo  portsrepo.ExchangeRepository
	voucherRepo   portsrepo.VoucherRepository
	orderRepo     portsrepo.OrderRepository
	publisher     portssvc.PostingPublisher
	now           func() time.Time
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithPostingPublisher announces committed postings through p.
func WithPostingPublisher(p portssvc.PostingPublisher) PostingServiceOption {
	return func(s *postingService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithPostingClock replaces the clock used for default posting dates.
func WithPostingClock(now func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.now = now
	}
}

// NewPostingService creates the ledger posting engine.
func NewPostingService(repos portsrepo.RepositoryProvider, options ...PostingServiceOption) portssvc.PostingSvcFacade {
	svc := &postingService{
		txm:           repos.TxManager,
		settingsRepo:  repos.SettingsRepo,
		accountRepo:   repos.AccountRepo,
		currencyRepo:  repos.CurrencyRepo,
		sourceRepo:    repos.SourceRepo,
		partyRepo:     repos.PartyRepo,
		journalRepo:   repos.JournalRepo,
		ceilingRepo:   repos.CeilingRepo,
		guaranteeRepo: repos.GuaranteeRepo,
		exchangeRepo:  repos.ExchangeRepo,
		voucherRepo:   repos.VoucherRepo,
		orderRepo:     repos.OrderRepo,
		publisher:     NopPublisher{},
		now:           time.Now,
	}
	if svc.txm == nil && repos.JournalRepo != nil {
		svc.txm = repos.JournalRepo
	}

	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure postingService implements the portssvc.PostingSvcFacade interface
var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// NopPublisher discards posting events.
type NopPublisher struct{}

func (NopPublisher) PublishPosting(context.Context, domain.PostingEvent) error { return nil }
func (NopPublisher) Close() error                                              { return nil }

// postingTx is the state a recipe works with inside the transaction.
type postingTx struct {
	tx       pgx.Tx
	settings domain.Settings
	branchID int64
	actor    domain.Principal
	override *int64
	now      time.Time
}

// leg is one side of a posting before it becomes a journal row.
type leg struct {
	accountID  int64
	currencyID int64
	debit      decimal.Decimal
	credit     decimal.Decimal
	// branchID overrides the effective branch; reversals keep the branch of the original row.
	branchID int64
}

func debitLeg(accountID, currencyID int64, amount decimal.Decimal) leg {
	return leg{accountID: accountID, currencyID: currencyID, debit: amount, credit: decimal.Zero}
}

func creditLeg(accountID, currencyID int64, amount decimal.Decimal) leg {
	return leg{accountID: accountID, currencyID: currencyID, debit: decimal.Zero, credit: amount}
}

// posting is what a recipe resolves. record writes the domain row and returns the reference id;
// it runs only after every leg has been resolved and validated.
type posting struct {
	journalType   domain.JournalType
	referenceType domain.ReferenceType
	date          time.Time
	notes         string
	costCenterID  *int64
	legs          []leg
	// crossCurrency skips the ΣDr = ΣCr check for postings whose legs are valued independently.
	crossCurrency bool
	record        func(ctx context.Context, tx pgx.Tx) (int64, error)
	voucherNo     *int64
}

type recipe func(ctx context.Context, pt *postingTx) (*posting, error)

// withPosting is the transactional envelope shared by every posting operation. Nothing is visible
// to other transactions unless every step succeeds.
func (s *postingService) withPosting(ctx context.Context, pr portssvc.PostingRequest, op string, build recipe) (*domain.PostingResult, error) {
	branchID, err := ResolveWriteBranch(pr.Principal, pr.BranchOverride)
	if err != nil {
		return nil, err
	}

	tx, err := s.txm.Begin(ctx)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to begin transaction", slog.String("operation", op))
	}
	defer s.txm.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	settings, err := s.settingsRepo.GetSettingsInTx(ctx, tx)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to read settings", slog.String("operation", op))
	}

	pt := &postingTx{
		tx:       tx,
		settings: settings,
		branchID: branchID,
		actor:    pr.Principal,
		override: pr.BranchOverride,
		now:      s.now(),
	}

	p, err := build(ctx, pt)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	var entries []domain.JournalEntry
	if len(p.legs) > 0 {
		entries, err = s.buildEntries(ctx, pt, p)
		if err != nil {
			return nil, s.fail(ctx, op, err)
		}
	}

	refID, err := p.record(ctx, tx)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	if len(entries) == 0 {
		if err := s.txm.Commit(ctx, tx); err != nil {
			return nil, s.storeError(ctx, err, "failed to commit transaction", slog.String("operation", op))
		}
		return nil, nil
	}

	for i := range entries {
		entries[i].ReferenceID = refID
	}
	inserted, err := s.journalRepo.InsertEntriesInTx(ctx, tx, entries)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to insert journal entries",
			slog.String("operation", op), slog.Int64("reference_id", refID))
	}

	if err := s.txm.Commit(ctx, tx); err != nil {
		return nil, s.storeError(ctx, err, "failed to commit transaction", slog.String("operation", op))
	}

	result := &domain.PostingResult{
		ReferenceType: p.referenceType,
		ReferenceID:   refID,
		VoucherNo:     p.voucherNo,
		Entries:       inserted,
	}
	s.LogInfo(ctx, "Posting committed",
		slog.String("operation", op),
		slog.String("reference_type", string(p.referenceType)),
		slog.Int64("reference_id", refID),
		slog.Int("legs", len(inserted)))

	s.publish(ctx, p.journalType, result, pt)
	return result, nil
}

// buildEntries resolves every leg account and turns legs into journal rows. Unknown, non-leaf,
// inactive or foreign-branch accounts abort the posting before anything is written.
func (s *postingService) buildEntries(ctx context.Context, pt *postingTx, p *posting) ([]domain.JournalEntry, error) {
	ids := make([]int64, 0, len(p.legs))
	seen := make(map[int64]bool, len(p.legs))
	for _, l := range p.legs {
		if l.accountID <= 0 {
			return nil, apperrors.NewResolutionError("a posting leg has no account")
		}
		if !seen[l.accountID] {
			seen[l.accountID] = true
			ids = append(ids, l.accountID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	accounts, err := s.accountRepo.FindAccountsByIDsInTx(ctx, pt.tx, ids)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to load leg accounts")
	}

	entries := make([]domain.JournalEntry, 0, len(p.legs))
	for _, l := range p.legs {
		branchID := pt.branchID
		if l.branchID > 0 {
			branchID = l.branchID
		}

		acc, ok := accounts[l.accountID]
		switch {
		case !ok:
			return nil, apperrors.NewResolutionError("account %d does not exist", l.accountID)
		case !acc.IsLeaf():
			return nil, apperrors.NewResolutionError("account %s (%d) is not a leaf account", acc.Code, acc.ID)
		case !acc.IsActive:
			return nil, apperrors.NewResolutionError("account %s (%d) is inactive", acc.Code, acc.ID)
		case !acc.VisibleTo(branchID):
			return nil, apperrors.NewResolutionError("account %s (%d) belongs to another branch", acc.Code, acc.ID)
		}

		entries = append(entries, domain.JournalEntry{
			JournalTypeID: p.journalType,
			ReferenceType: p.referenceType,
			JournalDate:   p.date,
			CurrencyID:    l.currencyID,
			AccountID:     l.accountID,
			Debit:         l.debit,
			Credit:        l.credit,
			Notes:         p.notes,
			BranchID:      branchID,
			CostCenterID:  p.costCenterID,
			AuditFields: domain.AuditFields{
				CreatedAt: pt.now,
				CreatedBy: pt.actor.ID,
			},
		})
	}

	if p.crossCurrency {
		if err := accounting.ValidateLegs(entries); err != nil {
			return nil, apperrors.NewValidationError("%s", err.Error())
		}
		return entries, nil
	}
	if err := accounting.ValidateBalance(entries); err != nil {
		return nil, apperrors.NewValidationError("%s", err.Error())
	}
	return entries, nil
}

// fail logs domain rejections at info level and wraps untyped errors as store errors.
func (s *postingService) fail(ctx context.Context, op string, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && !errors.Is(err, apperrors.ErrStore) {
		s.LogInfo(ctx, "Posting rejected", slog.String("operation", op), slog.String("reason", appErr.Message))
		return err
	}
	return s.storeError(ctx, err, "posting failed", slog.String("operation", op))
}

func (s *postingService) publish(ctx context.Context, jt domain.JournalType, result *domain.PostingResult, pt *postingTx) {
	debit, credit := accounting.Totals(result.Entries)
	event := domain.PostingEvent{
		EventID:       uuid.NewString(),
		ReferenceType: result.ReferenceType,
		ReferenceID:   result.ReferenceID,
		JournalType:   jt,
		BranchID:      pt.branchID,
		CreatedBy:     pt.actor.ID,
		TotalDebit:    debit,
		TotalCredit:   credit,
		LineCount:     len(result.Entries),
		PostedAt:      pt.now,
	}
	if err := s.publisher.PublishPosting(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish posting event",
			slog.String("reference_type", string(result.ReferenceType)),
			slog.Int64("reference_id", result.ReferenceID))
	}
}

// --- Resolvers shared by the recipes ---

func (s *postingService) requireCurrency(ctx context.Context, tx pgx.Tx, currencyID int64) (*domain.Currency, error) {
	cur, err := s.currencyRepo.FindCurrencyByIDInTx(ctx, tx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewResolutionError("currency %d does not exist", currencyID)
		}
		return nil, s.storeError(ctx, err, "failed to load currency", slog.Int64("currency_id", currencyID))
	}
	if !cur.IsActive {
		return nil, apperrors.NewValidationError("currency %s is not active", cur.Code)
	}
	return cur, nil
}

func (s *postingService) localCurrency(ctx context.Context, tx pgx.Tx) (*domain.Currency, error) {
	cur, err := s.currencyRepo.FindLocalCurrencyInTx(ctx, tx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewResolutionError("no local currency is defined")
		}
		return nil, s.storeError(ctx, err, "failed to load local currency")
	}
	if !cur.IsActive {
		return nil, apperrors.NewValidationError("local currency %s is not active", cur.Code)
	}
	return cur, nil
}

// checkRate enforces the bounds of a non-local currency.
func checkRate(cur *domain.Currency, rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return apperrors.NewValidationError("rate must be greater than zero")
	}
	if !cur.CheckRate(rate) {
		return apperrors.NewRateBoundsError("rate %s for %s is outside %s", rate.String(), cur.Code, cur.BoundsString())
	}
	return nil
}

// resolveSource maps a cash box or bank to its ledger account. The cash box wins when both are set.
func (s *postingService) resolveSource(ctx context.Context, tx pgx.Tx, src domain.MoneySource) (int64, error) {
	switch {
	case src.CashBoxID != nil && *src.CashBoxID > 0:
		box, err := s.sourceRepo.FindCashBoxInTx(ctx, tx, *src.CashBoxID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return 0, apperrors.NewResolutionError("cash box %d does not exist", *src.CashBoxID)
			}
			return 0, s.storeError(ctx, err, "failed to load cash box")
		}
		if box.AccountID == nil || *box.AccountID <= 0 {
			return 0, apperrors.NewResolutionError("cash box %s is not mapped to an account", box.Name)
		}
		return *box.AccountID, nil
	case src.BankID != nil && *src.BankID > 0:
		bank, err := s.sourceRepo.FindBankInTx(ctx, tx, *src.BankID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return 0, apperrors.NewResolutionError("bank %d does not exist", *src.BankID)
			}
			return 0, s.storeError(ctx, err, "failed to load bank")
		}
		if bank.AccountID == nil || *bank.AccountID <= 0 {
			return 0, apperrors.NewResolutionError("bank %s is not mapped to an account", bank.Name)
		}
		return *bank.AccountID, nil
	}
	return 0, apperrors.NewResolutionError("neither a cash box nor a bank resolves to an account")
}

func hasSource(src domain.MoneySource) bool {
	return (src.CashBoxID != nil && *src.CashBoxID > 0) || (src.BankID != nil && *src.BankID > 0)
}

func dateOr(d *time.Time, fallback time.Time) time.Time {
	if d != nil && !d.IsZero() {
		return *d
	}
	return fallback
}
