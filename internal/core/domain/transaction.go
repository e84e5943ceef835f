package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType discriminates the three value movements.
type TransactionType string

const (
	TopUp    TransactionType = "TOP_UP"
	Bonus    TransactionType = "BONUS"
	Purchase TransactionType = "PURCHASE"
)

// TransactionStatus is the lifecycle state of a monetary transaction.
// PENDING -> COMPLETED on success; FAILED is terminal. Terminal states are
// never mutated.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// MetadataReasonGenesisMint marks the bootstrap-only self-mint transaction
// that is allowed to carry a single ledger entry.
const MetadataReasonGenesisMint = "genesis_mint"

// MonetaryTransaction is a single atomic value movement between two wallets,
// composed of exactly two ledger entries (one debit, one credit).
type MonetaryTransaction struct {
	TransactionID       string            `json:"transactionID"`  // Primary Key (UUID)
	IdempotencyKey      string            `json:"idempotencyKey"` // Unique across the whole table
	Type                TransactionType   `json:"type"`
	Status              TransactionStatus `json:"status"`
	SourceWalletID      string            `json:"sourceWalletID"`
	DestinationWalletID string            `json:"destinationWalletID"`
	Amount              decimal.Decimal   `json:"amount"`                // Strictly positive
	ReferenceID         *string           `json:"referenceID,omitempty"` // Opaque client correlation token
	Metadata            map[string]string `json:"metadata,omitempty"`
	ErrorMessage        *string           `json:"errorMessage,omitempty"`
	AuditFields

	// Loaded on demand by the read path; the write path never needs them.
	Entries           []LedgerEntry `json:"entries,omitempty"`
	SourceWallet      *Wallet       `json:"sourceWallet,omitempty"`
	DestinationWallet *Wallet       `json:"destinationWallet,omitempty"`
}

// IsTerminal reports whether the transaction has reached a terminal state.
func (t TransactionStatus) IsTerminal() bool {
	return t == StatusCompleted || t == StatusFailed
}

// CanTransitionTo validates a status transition. Terminal states are frozen.
func (t TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if t.IsTerminal() {
		return false
	}
	return t == StatusPending && (next == StatusCompleted || next == StatusFailed)
}

// IsGenesisMint reports whether the transaction is the bootstrap self-mint.
func (t *MonetaryTransaction) IsGenesisMint() bool {
	return t.Metadata["reason"] == MetadataReasonGenesisMint &&
		t.SourceWalletID == t.DestinationWalletID
}

// Validate checks the structural invariants of a movement before execution.
func (t *MonetaryTransaction) Validate() error {
	if t.IdempotencyKey == "" {
		return fmt.Errorf("idempotency key is required")
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be strictly positive, got %s", t.Amount.String())
	}
	if t.SourceWalletID == "" || t.DestinationWalletID == "" {
		return fmt.Errorf("source and destination wallets are required")
	}
	if t.SourceWalletID == t.DestinationWalletID && !t.IsGenesisMint() {
		return fmt.Errorf("source and destination wallets must differ")
	}
	switch t.Type {
	case TopUp, Bonus, Purchase:
	default:
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	return nil
}
