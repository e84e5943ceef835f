package models

import "github.com/shopspring/decimal"

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	TopUp    TransactionType = "TOP_UP"
	Bonus    TransactionType = "BONUS"
	Purchase TransactionType = "PURCHASE"
)

// TransactionStatus mirrors domain.TransactionStatus at the storage layer.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// MonetaryTransaction is the database representation of a value movement.
// idempotency_key carries a table-wide unique constraint; metadata is JSONB.
type MonetaryTransaction struct {
	TransactionID       string            `json:"transactionID" db:"transaction_id"`
	IdempotencyKey      string            `json:"idempotencyKey" db:"idempotency_key"`
	Type                TransactionType   `json:"type" db:"type"`
	Status              TransactionStatus `json:"status" db:"status"`
	SourceWalletID      string            `json:"sourceWalletID" db:"source_wallet_id"`
	DestinationWalletID string            `json:"destinationWalletID" db:"destination_wallet_id"`
	Amount              decimal.Decimal   `json:"amount" db:"amount"`
	ReferenceID         *string           `json:"referenceID,omitempty" db:"reference_id"`
	Metadata            map[string]string `json:"metadata,omitempty" db:"metadata"`
	ErrorMessage        *string           `json:"errorMessage,omitempty" db:"error_message"`
	AuditFields
}
