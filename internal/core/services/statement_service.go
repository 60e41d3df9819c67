package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// statementService computes opening and running balances over journal rows.
type statementService struct {
	BaseService
	statementRepo portsrepo.StatementRepository
	accountRepo   portsrepo.AccountReader
	currencyRepo  portsrepo.CurrencyReader
}

// NewStatementService creates a new StatementService.
func NewStatementService(statementRepo portsrepo.StatementRepository, accountRepo portsrepo.AccountReader, currencyRepo portsrepo.CurrencyReader) portssvc.StatementSvc {
	return &statementService{
		statementRepo: statementRepo,
		accountRepo:   accountRepo,
		currencyRepo:  currencyRepo,
	}
}

var _ portssvc.StatementSvc = (*statementService)(nil)

// GetStatement returns one block per currency. Without a currency filter every currency present
// in the rows up to ToDate gets a block, except those with a zero opening and no period rows.
// Figures are rounded only here, after the running sums are complete.
func (s *statementService) GetStatement(ctx context.Context, scope domain.BranchScope, query domain.StatementQuery) ([]domain.StatementBlock, error) {
	mode := query.Mode
	if mode == "" {
		mode = domain.StatementDetailed
	}
	if mode != domain.StatementDetailed && mode != domain.StatementSummary {
		return nil, apperrors.NewValidationError("mode must be detailed or summary")
	}
	if query.FromDate != nil && query.ToDate != nil && query.FromDate.After(*query.ToDate) {
		return nil, apperrors.NewValidationError("from_date must not be after to_date")
	}

	filter := portsrepo.StatementFilter{
		AccountID: query.AccountID,
		Scope:     scope,
		FromDate:  query.FromDate,
		ToDate:    query.ToDate,
	}

	if query.AccountID != nil {
		acc, err := s.accountRepo.FindAccountByID(ctx, *query.AccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return []domain.StatementBlock{}, nil
			}
			return nil, s.storeError(ctx, err, "failed to load statement account", slog.Int64("account_id", *query.AccountID))
		}
		if scope.BranchID != nil && acc.BranchID != nil && *acc.BranchID != *scope.BranchID {
			return []domain.StatementBlock{}, nil
		}
	}

	currencies, err := s.currenciesFor(ctx, filter, query.CurrencyID)
	if err != nil {
		return nil, err
	}

	blocks := make([]domain.StatementBlock, 0, len(currencies))
	for _, cur := range currencies {
		opening := decimal.Zero
		if query.FromDate != nil {
			opening, err = s.statementRepo.OpeningBalance(ctx, filter, cur.ID)
			if err != nil {
				return nil, s.storeError(ctx, err, "failed to compute opening balance", slog.Int64("currency_id", cur.ID))
			}
		}

		rows, err := s.statementRepo.ListRows(ctx, filter, cur.ID)
		if err != nil {
			return nil, s.storeError(ctx, err, "failed to list statement rows", slog.Int64("currency_id", cur.ID))
		}

		if query.CurrencyID == nil && opening.IsZero() && len(rows) == 0 {
			continue
		}

		block := domain.StatementBlock{CurrencyID: cur.ID, CurrencyCode: cur.Code}
		if mode == domain.StatementSummary {
			block.Summary, block.ClosingBalance = summarize(opening, rows)
		} else {
			block.Lines, block.ClosingBalance = runningBalances(opening, rows)
		}
		block.OpeningBalance = accounting.Round2(opening)
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (s *statementService) currenciesFor(ctx context.Context, filter portsrepo.StatementFilter, currencyID *int64) ([]domain.Currency, error) {
	if currencyID != nil {
		cur, err := s.currencyRepo.FindCurrencyByID(ctx, *currencyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil
			}
			return nil, s.storeError(ctx, err, "failed to load statement currency", slog.Int64("currency_id", *currencyID))
		}
		return []domain.Currency{*cur}, nil
	}

	ids, err := s.statementRepo.ListCurrencies(ctx, filter)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to list statement currencies")
	}
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.currencyRepo.FindCurrenciesByIDs(ctx, ids)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to load statement currencies")
	}

	out := make([]domain.Currency, 0, len(ids))
	for _, id := range ids {
		if cur, ok := found[id]; ok {
			out = append(out, cur)
		} else {
			out = append(out, domain.Currency{ID: id})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// runningBalances annotates rows, already ordered by (journal_date, id), with opening plus the
// cumulative signed sum up to and including each row.
func runningBalances(opening decimal.Decimal, rows []domain.StatementLine) ([]domain.StatementLine, decimal.Decimal) {
	running := opening
	lines := make([]domain.StatementLine, len(rows))
	for i, r := range rows {
		running = running.Add(r.Signed())
		r.RunningBalance = accounting.Round2(running)
		r.Debit = accounting.Round2(r.Debit)
		r.Credit = accounting.Round2(r.Credit)
		lines[i] = r
	}
	return lines, accounting.Round2(running)
}

// summarize aggregates the period rows per account. The opening balance only affects the closing
// figure, never the per-account balances.
func summarize(opening decimal.Decimal, rows []domain.StatementLine) ([]domain.StatementSummaryLine, decimal.Decimal) {
	byAccount := make(map[int64]*domain.StatementSummaryLine)
	order := make([]int64, 0)
	net := decimal.Zero
	for _, r := range rows {
		line, ok := byAccount[r.AccountID]
		if !ok {
			line = &domain.StatementSummaryLine{
				AccountID:   r.AccountID,
				AccountCode: r.AccountCode,
				AccountName: r.AccountName,
				DebitSum:    decimal.Zero,
				CreditSum:   decimal.Zero,
			}
			byAccount[r.AccountID] = line
			order = append(order, r.AccountID)
		}
		line.DebitSum = line.DebitSum.Add(r.Debit)
		line.CreditSum = line.CreditSum.Add(r.Credit)
		net = net.Add(r.Signed())
	}

	out := make([]domain.StatementSummaryLine, 0, len(order))
	for _, id := range order {
		l := byAccount[id]
		out = append(out, domain.StatementSummaryLine{
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			DebitSum:    accounting.Round2(l.DebitSum),
			CreditSum:   accounting.Round2(l.CreditSum),
			Balance:     accounting.Round2(l.DebitSum.Sub(l.CreditSum)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AccountCode != out[j].AccountCode {
			return out[i].AccountCode < out[j].AccountCode
		}
		return out[i].AccountID < out[j].AccountID
	})
	return out, accounting.Round2(opening.Add(net))
}
