package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType mirrors domain.EntryType at the storage layer.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// LedgerEntry is the database representation of a ledger row.
// Rows are append-only; an UPDATE-rejecting trigger backs the application
// level guarantee.
type LedgerEntry struct {
	EntryID       string          `json:"entryID" db:"entry_id"`
	TransactionID string          `json:"transactionID" db:"transaction_id"`
	WalletID      string          `json:"walletID" db:"wallet_id"`
	EntryType     EntryType       `json:"entryType" db:"entry_type"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter" db:"balance_after"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}
