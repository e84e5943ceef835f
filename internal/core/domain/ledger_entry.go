package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger entry is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// LedgerEntry is an immutable record of a single debit or credit on one
// wallet. BalanceAfter snapshots the wallet balance at the moment the entry
// was applied, for audit reconstruction.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`       // Primary Key (UUID)
	TransactionID string          `json:"transactionID"` // FK -> transactions.transaction_id
	WalletID      string          `json:"walletID"`      // FK -> wallets.wallet_id
	EntryType     EntryType       `json:"entryType"`     // DEBIT or CREDIT
	Amount        decimal.Decimal `json:"amount"`        // Strictly positive, equals the transaction amount
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ValidateEntryPair checks the double-entry invariant for a batch about to be
// written: exactly one DEBIT and one CREDIT, equal strictly positive amounts,
// same transaction, different wallets.
func ValidateEntryPair(entries []LedgerEntry) error {
	if len(entries) != 2 {
		return fmt.Errorf("a monetary transaction requires exactly two ledger entries, got %d", len(entries))
	}
	var debit, credit *LedgerEntry
	for i := range entries {
		switch entries[i].EntryType {
		case Debit:
			debit = &entries[i]
		case Credit:
			credit = &entries[i]
		default:
			return fmt.Errorf("unknown entry type %q", entries[i].EntryType)
		}
	}
	if debit == nil || credit == nil {
		return fmt.Errorf("ledger entries must contain one DEBIT and one CREDIT")
	}
	if debit.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("ledger entry amount must be strictly positive, got %s", debit.Amount.String())
	}
	if !debit.Amount.Equal(credit.Amount) {
		return fmt.Errorf("debit amount %s does not equal credit amount %s", debit.Amount.String(), credit.Amount.String())
	}
	if debit.TransactionID != credit.TransactionID {
		return fmt.Errorf("ledger entries must belong to the same transaction")
	}
	if debit.WalletID == credit.WalletID {
		return fmt.Errorf("debit and credit must target different wallets")
	}
	return nil
}

// ValidateGenesisEntry checks the bootstrap-only exception: a single CREDIT
// entry minting initial treasury supply.
func ValidateGenesisEntry(entry LedgerEntry) error {
	if entry.EntryType != Credit {
		return fmt.Errorf("genesis entry must be a CREDIT, got %s", entry.EntryType)
	}
	if entry.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("genesis entry amount must be strictly positive, got %s", entry.Amount.String())
	}
	return nil
}
