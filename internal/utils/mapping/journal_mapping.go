package mapping

import (
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	"github.com/SscSPs/branch_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		ID:            d.ID,
		JournalTypeID: int64(d.JournalTypeID),
		ReferenceType: string(d.ReferenceType),
		ReferenceID:   d.ReferenceID,
		JournalDate:   d.JournalDate,
		CurrencyID:    d.CurrencyID,
		AccountID:     d.AccountID,
		Debit:         d.Debit,
		Credit:        d.Credit,
		Notes:         d.Notes,
		BranchID:      d.BranchID,
		CostCenterID:  d.CostCenterID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:            m.ID,
		JournalTypeID: domain.JournalType(m.JournalTypeID),
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		JournalDate:   m.JournalDate,
		CurrencyID:    m.CurrencyID,
		AccountID:     m.AccountID,
		Debit:         m.Debit,
		Credit:        m.Credit,
		Notes:         m.Notes,
		BranchID:      m.BranchID,
		CostCenterID:  m.CostCenterID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntrySlice converts a slice of model JournalEntries to domain JournalEntries
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}

// ToDomainStatementLine converts a joined statement row to a domain StatementLine
func ToDomainStatementLine(m models.StatementRow) domain.StatementLine {
	return domain.StatementLine{
		JournalEntry: ToDomainJournalEntry(m.JournalEntry),
		AccountCode:  m.AccountCode,
		AccountName:  m.AccountName,
	}
}
