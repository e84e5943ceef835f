package mapping

import (
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	"github.com/vinayak20130/dino-ventures-assignment/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to its model form.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:       d.EntryID,
		TransactionID: d.TransactionID,
		WalletID:      d.WalletID,
		EntryType:     models.EntryType(d.EntryType),
		Amount:        d.Amount,
		BalanceAfter:  d.BalanceAfter,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to its domain form.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:       m.EntryID,
		TransactionID: m.TransactionID,
		WalletID:      m.WalletID,
		EntryType:     domain.EntryType(m.EntryType),
		Amount:        m.Amount,
		BalanceAfter:  m.BalanceAfter,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model ledger entries.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
