package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries.
type LedgerReader interface {
	// FindEntriesByTransactionID retrieves all entries of a transaction.
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error)

	// FindLatestEntryForWallet retrieves the most recent entry on a wallet, or
	// ErrNotFound when the wallet has no history.
	FindLatestEntryForWallet(ctx context.Context, walletID string) (*domain.LedgerEntry, error)

	// ListEntriesByWallet retrieves a wallet's entries, newest first.
	ListEntriesByWallet(ctx context.Context, walletID string, limit int) ([]domain.LedgerEntry, error)
}

// LedgerWriter appends ledger entries. The ledger is append-only: there is no
// update operation that reaches storage.
type LedgerWriter interface {
	// AppendEntriesInTx validates and batch-inserts the debit/credit pair of one
	// transaction with their balance-after snapshots.
	AppendEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error

	// AppendGenesisEntryInTx inserts the single CREDIT entry of a bootstrap
	// genesis mint. Rejected unless the owning transaction's metadata reason is
	// genesis_mint.
	AppendGenesisEntryInTx(ctx context.Context, tx pgx.Tx, txn domain.MonetaryTransaction, entry domain.LedgerEntry) error

	// UpdateEntry always fails with ErrLedgerImmutable without touching storage.
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines ledger reads and writes.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
