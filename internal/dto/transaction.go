package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
)

// LedgerEntryResponse defines the data returned for a single ledger entry.
type LedgerEntryResponse struct {
	EntryID      string          `json:"entryID"`
	WalletID     string          `json:"walletID"`
	EntryType    string          `json:"entryType"` // DEBIT or CREDIT
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// TransactionResponse defines the data returned for a monetary transaction.
type TransactionResponse struct {
	TransactionID       string                `json:"transactionID"`
	IdempotencyKey      string                `json:"idempotencyKey"`
	Type                string                `json:"type"`
	Status              string                `json:"status"`
	SourceWalletID      string                `json:"sourceWalletID"`
	DestinationWalletID string                `json:"destinationWalletID"`
	Amount              decimal.Decimal       `json:"amount"`
	ReferenceID         *string               `json:"referenceID,omitempty"`
	Metadata            map[string]string     `json:"metadata,omitempty"`
	ErrorMessage        *string               `json:"errorMessage,omitempty"`
	CreatedAt           time.Time             `json:"createdAt"`
	Entries             []LedgerEntryResponse `json:"entries,omitempty"`
}

// ListTransactionsParams holds the optional filters and pagination inputs for
// the transaction listing endpoint.
type ListTransactionsParams struct {
	UserID    *string `form:"userID"`
	Type      *string `form:"type"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is a page of transactions plus the cursor for the
// next page, if any.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:      e.EntryID,
		WalletID:     e.WalletID,
		EntryType:    string(e.EntryType),
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
		CreatedAt:    e.CreatedAt,
	}
}

// ToTransactionResponse converts a domain MonetaryTransaction to its response DTO.
func ToTransactionResponse(t *domain.MonetaryTransaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:       t.TransactionID,
		IdempotencyKey:      t.IdempotencyKey,
		Type:                string(t.Type),
		Status:              string(t.Status),
		SourceWalletID:      t.SourceWalletID,
		DestinationWalletID: t.DestinationWalletID,
		Amount:              t.Amount,
		ReferenceID:         t.ReferenceID,
		Metadata:            t.Metadata,
		ErrorMessage:        t.ErrorMessage,
		CreatedAt:           t.CreatedAt,
	}
	if len(t.Entries) > 0 {
		resp.Entries = make([]LedgerEntryResponse, len(t.Entries))
		for i := range t.Entries {
			resp.Entries[i] = ToLedgerEntryResponse(&t.Entries[i])
		}
	}
	return resp
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(ts []domain.MonetaryTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(ts))
	for i := range ts {
		responses[i] = ToTransactionResponse(&ts[i])
	}
	return responses
}
