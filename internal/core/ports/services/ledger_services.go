package services

import (
	"context"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
)

// LedgerMovementSvc exposes the three value movements. Each call is
// idempotent under its request key: resubmitting with the same key never
// double-applies.
type LedgerMovementSvc interface {
	// TopUp moves value from the asset's treasury wallet into the user's wallet.
	TopUp(ctx context.Context, req dto.MovementRequest) (*domain.MonetaryTransaction, error)

	// Bonus is structurally a top-up, discriminated by type and typically
	// carrying a metadata reason.
	Bonus(ctx context.Context, req dto.MovementRequest) (*domain.MonetaryTransaction, error)

	// Purchase moves value from the user's wallet back to the treasury; the
	// source balance is validated under lock.
	Purchase(ctx context.Context, req dto.MovementRequest) (*domain.MonetaryTransaction, error)
}

// LedgerReaderSvc exposes the read-only transaction surface.
type LedgerReaderSvc interface {
	// GetTransactionByID retrieves a transaction with its ledger entries.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.MonetaryTransaction, error)

	// GetTransactionByKey retrieves a transaction by idempotency key.
	GetTransactionByKey(ctx context.Context, idempotencyKey string) (*domain.MonetaryTransaction, error)

	// ListTransactions retrieves a filtered, token-paginated transaction page.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// LedgerSvcFacade combines the movement and read surfaces.
type LedgerSvcFacade interface {
	LedgerMovementSvc
	LedgerReaderSvc
}
