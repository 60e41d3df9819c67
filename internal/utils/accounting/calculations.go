package accounting

import (
	"fmt"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OutputPlaces is the number of decimal places monetary figures are rounded to when rendered.
const OutputPlaces = 2

// Round2 rounds a monetary aggregate for output. Intermediate sums are never rounded.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(OutputPlaces)
}

// Totals returns the debit and credit sums of entries.
func Totals(entries []domain.JournalEntry) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	return debit, credit
}

// ValidateLegs checks the shape of each journal row: non-negative amounts, exactly one side set.
func ValidateLegs(entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("posting must have at least two legs, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return fmt.Errorf("leg %d on account %d has a negative amount", i, e.AccountID)
		}
		if e.Debit.IsPositive() == e.Credit.IsPositive() {
			return fmt.Errorf("leg %d on account %d must carry exactly one of debit or credit", i, e.AccountID)
		}
	}
	return nil
}

// ValidateBalance checks ΣDr = ΣCr for a single-currency posting.
func ValidateBalance(entries []domain.JournalEntry) error {
	if err := ValidateLegs(entries); err != nil {
		return err
	}
	debit, credit := Totals(entries)
	if !debit.Equal(credit) {
		return fmt.Errorf("posting is unbalanced: debits %s, credits %s", debit.String(), credit.String())
	}
	return nil
}

// Mirror returns the offsetting rows of entries with debit and credit swapped.
func Mirror(entries []domain.JournalEntry) []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(entries))
	for i, e := range entries {
		m := e
		m.ID = 0
		m.Debit, m.Credit = e.Credit, e.Debit
		out[i] = m
	}
	return out
}
