package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/dto"
	"github.com/SscSPs/branch_ledger/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
)

// ParseReferenceType validates a reference type received from a caller.
func ParseReferenceType(raw string) (domain.ReferenceType, error) {
	rt := domain.ReferenceType(raw)
	switch rt {
	case domain.RefCeiling, domain.RefGuaranteeMove, domain.RefExchange, domain.RefReceipt,
		domain.RefPayment, domain.RefOrder, domain.RefReversal:
		return rt, nil
	}
	return "", apperrors.NewValidationError("unknown reference type %q", raw)
}

// ReverseReference posts the mirror rows of a reference group under reference type reversal. The
// reversal group is keyed by the lowest row id of the original group, so a group can be reversed
// only once. Mirror rows keep the branch and currency of the rows they offset.
func (s *postingService) ReverseReference(ctx context.Context, pr portssvc.PostingRequest, req dto.ReverseReferenceRequest) (*domain.PostingResult, error) {
	refType, err := ParseReferenceType(req.ReferenceType)
	if err != nil {
		return nil, err
	}
	if refType == domain.RefReversal {
		return nil, apperrors.NewValidationError("a reversal cannot be reversed; post the original event again instead")
	}
	if req.ReferenceID <= 0 {
		return nil, apperrors.NewValidationError("reference_id is required")
	}

	scope := ResolveReadScope(pr.Principal, pr.BranchOverride)

	return s.withPosting(ctx, pr, "reverse_reference", func(ctx context.Context, pt *postingTx) (*posting, error) {
		rows, err := s.journalRepo.FindByReferenceInTx(ctx, pt.tx, refType, req.ReferenceID, scope.BranchID)
		if err != nil {
			return nil, s.storeError(ctx, err, "failed to load reference group")
		}
		if len(rows) == 0 {
			return nil, apperrors.NewNotFoundError("no journal rows for this reference")
		}

		groupKey := rows[0].ID
		for _, r := range rows {
			if r.ID < groupKey {
				groupKey = r.ID
			}
		}
		existing, err := s.journalRepo.FindByReferenceInTx(ctx, pt.tx, domain.RefReversal, groupKey, nil)
		if err != nil {
			return nil, s.storeError(ctx, err, "failed to check for an earlier reversal")
		}
		if len(existing) > 0 {
			return nil, apperrors.NewValidationError("%s %d has already been reversed", refType, req.ReferenceID)
		}

		mirrored := accounting.Mirror(rows)
		legs := make([]leg, 0, len(mirrored))
		currencies := make(map[int64]bool)
		for _, m := range mirrored {
			legs = append(legs, leg{
				accountID:  m.AccountID,
				currencyID: m.CurrencyID,
				debit:      m.Debit,
				credit:     m.Credit,
				branchID:   m.BranchID,
			})
			currencies[m.CurrencyID] = true
		}

		notes := req.Notes
		if notes == "" {
			notes = "reversal of " + string(refType)
		}
		return &posting{
			journalType:   domain.JournalReversal,
			referenceType: domain.RefReversal,
			date:          dateOr(req.ReversalDate, pt.now),
			notes:         notes,
			legs:          legs,
			crossCurrency: len(currencies) > 1,
			record: func(ctx context.Context, tx pgx.Tx) (int64, error) {
				if refType == domain.RefOrder {
					// a reversed order can be posted again on its next shipping transition
					if err := s.orderRepo.SetLedgerPostedInTx(ctx, tx, req.ReferenceID, false); err != nil {
						return 0, err
					}
				}
				return groupKey, nil
			},
		}, nil
	})
}

// DeleteReference removes a reference group wholesale within the caller's branch scope.
func (s *postingService) DeleteReference(ctx context.Context, pr portssvc.PostingRequest, refType domain.ReferenceType, refID int64) (int64, error) {
	if _, err := ParseReferenceType(string(refType)); err != nil {
		return 0, err
	}
	if refID <= 0 {
		return 0, apperrors.NewValidationError("reference id is required")
	}
	scope := ResolveReadScope(pr.Principal, pr.BranchOverride)

	tx, err := s.txm.Begin(ctx)
	if err != nil {
		return 0, s.storeError(ctx, err, "failed to begin transaction")
	}
	defer s.txm.Rollback(ctx, tx)

	removed, err := s.journalRepo.DeleteByReferenceInTx(ctx, tx, refType, refID, scope.BranchID)
	if err != nil {
		return 0, s.storeError(ctx, err, "failed to delete reference group",
			slog.String("reference_type", string(refType)), slog.Int64("reference_id", refID))
	}
	if removed == 0 {
		return 0, apperrors.NewNotFoundError("no journal rows for this reference")
	}
	if refType == domain.RefOrder {
		if err := s.orderRepo.SetLedgerPostedInTx(ctx, tx, refID, false); err != nil {
			return 0, s.storeError(ctx, err, "failed to clear order posting flag", slog.Int64("order_id", refID))
		}
	}

	if err := s.txm.Commit(ctx, tx); err != nil {
		return 0, s.storeError(ctx, err, "failed to commit transaction")
	}

	s.LogInfo(ctx, "Reference group deleted",
		slog.String("reference_type", string(refType)),
		slog.Int64("reference_id", refID),
		slog.Int64("rows", removed),
		slog.Int64("principal_id", pr.Principal.ID))
	return removed, nil
}

// GuaranteeBalance derives a guarantee balance in local currency: the sum of move amount_base for
// wallet guarantees, the credit balance of the linked account for account guarantees.
func (s *postingService) GuaranteeBalance(ctx context.Context, principal domain.Principal, guaranteeID int64) (*domain.GuaranteeBalance, error) {
	if guaranteeID <= 0 {
		return nil, apperrors.NewValidationError("guarantee id is required")
	}

	g, err := s.guaranteeRepo.FindGuaranteeByID(ctx, guaranteeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("guarantee not found")
		}
		return nil, s.storeError(ctx, err, "failed to load guarantee", slog.Int64("guarantee_id", guaranteeID))
	}
	if !principal.IsAdminBranch && g.BranchID != principal.BranchID {
		return nil, apperrors.NewNotFoundError("guarantee not found")
	}
	if principal.CustomerID != nil && *principal.CustomerID != g.CustomerID {
		return nil, apperrors.NewNotFoundError("guarantee not found")
	}

	balance := &domain.GuaranteeBalance{GuaranteeID: g.ID, Type: g.Type}
	switch g.Type {
	case domain.GuaranteeAccount:
		if g.AccountID == nil {
			return nil, apperrors.NewResolutionError("guarantee %d is not linked to an account", g.ID)
		}
		signed, err := s.journalRepo.SumSignedByAccount(ctx, *g.AccountID)
		if err != nil {
			return nil, s.storeError(ctx, err, "failed to sum guarantee account", slog.Int64("guarantee_id", g.ID))
		}
		balance.Balance = accounting.Round2(signed.Neg())
	default:
		sum, err := s.guaranteeRepo.SumMovesBase(ctx, g.ID)
		if err != nil {
			return nil, s.storeError(ctx, err, "failed to sum guarantee moves", slog.Int64("guarantee_id", g.ID))
		}
		balance.Balance = accounting.Round2(sum)
	}
	return balance, nil
}
