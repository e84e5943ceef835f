package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	"github.com/vinayak20130/dino-ventures-assignment/internal/models"
	"github.com/vinayak20130/dino-ventures-assignment/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entry data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerEntryColumns = `entry_id, transaction_id, wallet_id, entry_type, amount, balance_after, created_at`

const insertEntryQuery = `
	INSERT INTO ledger_entries (entry_id, transaction_id, wallet_id, entry_type, amount, balance_after, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// AppendEntriesInTx validates and batch-inserts the debit/credit pair of one
// transaction. The balance_after snapshots are the values the executor
// computed under lock, not re-read from the wallet rows.
func (r *PgxLedgerRepository) AppendEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	if err := domain.ValidateEntryPair(entries); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelLedgerEntry(entry)
		batch.Queue(insertEntryQuery,
			m.EntryID,
			m.TransactionID,
			m.WalletID,
			m.EntryType,
			m.Amount,
			m.BalanceAfter,
			m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to append ledger entries for transaction "+entries[0].TransactionID, err)
	}
	return nil
}

// AppendGenesisEntryInTx inserts the single CREDIT entry of a bootstrap
// genesis mint. Ordinary transactions must use AppendEntriesInTx; the
// single-entry shape is accepted only for the genesis_mint metadata reason.
func (r *PgxLedgerRepository) AppendGenesisEntryInTx(ctx context.Context, tx pgx.Tx, txn domain.MonetaryTransaction, entry domain.LedgerEntry) error {
	if !txn.IsGenesisMint() {
		return fmt.Errorf("%w: single-entry writes are reserved for genesis mints", apperrors.ErrValidation)
	}
	if err := domain.ValidateGenesisEntry(entry); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	m := mapping.ToModelLedgerEntry(entry)
	_, err := tx.Exec(ctx, insertEntryQuery,
		m.EntryID,
		m.TransactionID,
		m.WalletID,
		m.EntryType,
		m.Amount,
		m.BalanceAfter,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append genesis ledger entry for transaction "+entry.TransactionID, err)
	}
	return nil
}

// UpdateEntry rejects every attempt to mutate a persisted ledger entry. The
// audit trail depends on entries staying exactly as written; no SQL is issued.
func (r *PgxLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return fmt.Errorf("%w: entry %s", apperrors.ErrLedgerImmutable, entry.EntryID)
}

// FindEntriesByTransactionID retrieves all entries of a transaction.
func (r *PgxLedgerRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE transaction_id = $1
		ORDER BY entry_type; -- CREDIT before DEBIT is fine; order is deterministic
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries for transaction "+transactionID, err)
	}
	defer rows.Close()

	return scanLedgerEntries(rows, "transaction "+transactionID)
}

// FindLatestEntryForWallet retrieves the most recent entry on a wallet.
func (r *PgxLedgerRepository) FindLatestEntryForWallet(ctx context.Context, walletID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE wallet_id = $1
		ORDER BY created_at DESC, entry_id DESC
		LIMIT 1;
	`
	var m models.LedgerEntry
	err := r.Pool.QueryRow(ctx, query, walletID).Scan(
		&m.EntryID,
		&m.TransactionID,
		&m.WalletID,
		&m.EntryType,
		&m.Amount,
		&m.BalanceAfter,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find latest ledger entry for wallet "+walletID, err)
	}

	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListEntriesByWallet retrieves a wallet's entries, newest first.
func (r *PgxLedgerRepository) ListEntriesByWallet(ctx context.Context, walletID string, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE wallet_id = $1
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, walletID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries for wallet "+walletID, err)
	}
	defer rows.Close()

	return scanLedgerEntries(rows, "wallet "+walletID)
}

func scanLedgerEntries(rows pgx.Rows, scope string) ([]domain.LedgerEntry, error) {
	entries := []models.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		err := rows.Scan(
			&m.EntryID,
			&m.TransactionID,
			&m.WalletID,
			&m.EntryType,
			&m.Amount,
			&m.BalanceAfter,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row for "+scope, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows for "+scope, err)
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}
