package repositories

import (
	"context"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
)

// TransactionReader defines read operations for monetary transactions.
// Single-transaction reads materialize the transaction together with its
// ledger entries; ListTransactions returns the transaction rows only.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its ledger entries.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.MonetaryTransaction, error)

	// FindTransactionByIdempotencyKey retrieves a transaction by its idempotency
	// key with its ledger entries, for gate classification and replay.
	FindTransactionByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.MonetaryTransaction, error)

	// ListTransactions retrieves a token-paginated page of transactions with
	// optional filtering by the owning user of either wallet and/or by type.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.MonetaryTransaction, *string, error)
}

// TransactionExecutor runs the atomic value-movement protocol.
type TransactionExecutor interface {
	// ExecuteTransfer performs the whole movement inside one storage transaction
	// at READ COMMITTED: insert PENDING (unique idempotency key), lock wallets in
	// canonical order, optionally validate the source balance, persist both
	// balances, append the debit/credit pair, mark COMPLETED, commit, and
	// re-read the materialized result.
	//
	// A lost idempotency-key race surfaces as apperrors.ErrDuplicate; an
	// insufficient source balance as *apperrors.InsufficientBalanceError. Both
	// leave no trace of this attempt in storage.
	ExecuteTransfer(ctx context.Context, txn domain.MonetaryTransaction, validateSourceBalance bool) (*domain.MonetaryTransaction, error)

	// ExecuteGenesisMint performs the bootstrap-only self-mint: a COMPLETED
	// transaction with source == destination and a single CREDIT entry. Only
	// transactions whose metadata reason is genesis_mint are accepted.
	ExecuteGenesisMint(ctx context.Context, txn domain.MonetaryTransaction) (*domain.MonetaryTransaction, error)
}

// TransactionRepositoryFacade combines transaction reads with the executor.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionExecutor
}
