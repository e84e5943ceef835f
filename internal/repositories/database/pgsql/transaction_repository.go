package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
	"github.com/vinayak20130/dino-ventures-assignment/internal/models"
	"github.com/vinayak20130/dino-ventures-assignment/internal/utils/mapping"
	"github.com/vinayak20130/dino-ventures-assignment/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
	walletRepo portsrepo.WalletRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// newPgxTransactionRepository creates the repository that runs the value
// movement protocol and serves transaction reads.
func newPgxTransactionRepository(pool *pgxpool.Pool, walletRepo portsrepo.WalletRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		walletRepo:     walletRepo,
		ledgerRepo:     ledgerRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, idempotency_key, type, status, source_wallet_id, destination_wallet_id, amount, reference_id, metadata, error_message, created_at, updated_at`

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

// ExecuteTransfer runs the whole movement inside one storage transaction at
// READ COMMITTED isolation:
//
//  1. insert the PENDING transaction row (idempotency_key is unique)
//  2. lock both wallets in canonical order
//  3. validate the source balance when requested
//  4. persist both new balances against the locked rows
//  5. append the debit/credit pair with balance-after snapshots
//  6. mark the transaction COMPLETED and commit
//
// Any failure rolls the whole transaction back: no ledger entries, no balance
// changes and no PENDING row survive. A unique violation on the idempotency
// key surfaces as ErrDuplicate so the caller can replay the winner.
func (r *PgxTransactionRepository) ExecuteTransfer(ctx context.Context, txn domain.MonetaryTransaction, validateSourceBalance bool) (*domain.MonetaryTransaction, error) {
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Rollback must run even when ctx is already cancelled; a no-op after commit.
	defer r.Rollback(context.WithoutCancel(ctx), tx)

	now := time.Now().UTC()
	txn.Status = domain.StatusPending
	txn.CreatedAt = now
	txn.UpdatedAt = now

	if err := r.insertTransactionInTx(ctx, tx, txn); err != nil {
		return nil, err
	}

	source, dest, err := r.walletRepo.FindWalletsForUpdate(ctx, tx, txn.SourceWalletID, txn.DestinationWalletID)
	if err != nil {
		return nil, err
	}

	if validateSourceBalance && source.Balance.LessThan(txn.Amount) {
		return nil, &apperrors.InsufficientBalanceError{
			WalletID:  source.WalletID,
			Available: source.Balance,
			Required:  txn.Amount,
		}
	}

	newSourceBalance := source.Balance.Sub(txn.Amount)
	newDestBalance := dest.Balance.Add(txn.Amount)

	err = r.walletRepo.UpdateWalletBalancesInTx(ctx, tx, map[string]decimal.Decimal{
		txn.SourceWalletID:      newSourceBalance,
		txn.DestinationWalletID: newDestBalance,
	}, now)
	if err != nil {
		return nil, err
	}

	entries := []domain.LedgerEntry{
		{
			EntryID:       uuid.NewString(),
			TransactionID: txn.TransactionID,
			WalletID:      txn.SourceWalletID,
			EntryType:     domain.Debit,
			Amount:        txn.Amount,
			BalanceAfter:  newSourceBalance,
			CreatedAt:     now,
		},
		{
			EntryID:       uuid.NewString(),
			TransactionID: txn.TransactionID,
			WalletID:      txn.DestinationWalletID,
			EntryType:     domain.Credit,
			Amount:        txn.Amount,
			BalanceAfter:  newDestBalance,
			CreatedAt:     now,
		},
	}
	if err := r.ledgerRepo.AppendEntriesInTx(ctx, tx, entries); err != nil {
		return nil, err
	}

	if err := r.completeTransactionInTx(ctx, tx, txn.TransactionID, now); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return r.FindTransactionByID(ctx, txn.TransactionID)
}

// ExecuteGenesisMint performs the bootstrap-only self-mint: a transaction with
// source == destination and a single CREDIT entry, accepted only when the
// metadata reason is genesis_mint. Runs outside the two-entry protocol but
// under the same locking and idempotency rules.
func (r *PgxTransactionRepository) ExecuteGenesisMint(ctx context.Context, txn domain.MonetaryTransaction) (*domain.MonetaryTransaction, error) {
	if !txn.IsGenesisMint() {
		return nil, fmt.Errorf("%w: transaction is not a genesis mint", apperrors.ErrValidation)
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(context.WithoutCancel(ctx), tx)

	now := time.Now().UTC()
	txn.Status = domain.StatusPending
	txn.CreatedAt = now
	txn.UpdatedAt = now

	if err := r.insertTransactionInTx(ctx, tx, txn); err != nil {
		return nil, err
	}

	treasury, _, err := r.walletRepo.FindWalletsForUpdate(ctx, tx, txn.SourceWalletID, txn.DestinationWalletID)
	if err != nil {
		return nil, err
	}

	newBalance := treasury.Balance.Add(txn.Amount)
	err = r.walletRepo.UpdateWalletBalancesInTx(ctx, tx, map[string]decimal.Decimal{
		treasury.WalletID: newBalance,
	}, now)
	if err != nil {
		return nil, err
	}

	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		TransactionID: txn.TransactionID,
		WalletID:      treasury.WalletID,
		EntryType:     domain.Credit,
		Amount:        txn.Amount,
		BalanceAfter:  newBalance,
		CreatedAt:     now,
	}
	if err := r.ledgerRepo.AppendGenesisEntryInTx(ctx, tx, txn, entry); err != nil {
		return nil, err
	}

	if err := r.completeTransactionInTx(ctx, tx, txn.TransactionID, now); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return r.FindTransactionByID(ctx, txn.TransactionID)
}

func (r *PgxTransactionRepository) insertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.MonetaryTransaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := tx.Exec(ctx, insertTransactionQuery,
		m.TransactionID,
		m.IdempotencyKey,
		m.Type,
		m.Status,
		m.SourceWalletID,
		m.DestinationWalletID,
		m.Amount,
		m.ReferenceID,
		m.Metadata,
		m.ErrorMessage,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: idempotency key %s", apperrors.ErrDuplicate, txn.IdempotencyKey)
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) completeTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2, updated_at = $3
		WHERE transaction_id = $1 AND status = $4;
	`
	ct, err := tx.Exec(ctx, query, transactionID, models.StatusCompleted, now, models.StatusPending)
	if err != nil {
		return apperrors.NewAppError(500, "failed to complete transaction "+transactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NewAppError(500, "transaction "+transactionID+" was not PENDING at completion", nil)
	}
	return nil
}

// FindTransactionByID retrieves a transaction with its ledger entries and the
// two wallets it touched.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.MonetaryTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	return r.findOne(ctx, query, transactionID)
}

// FindTransactionByIdempotencyKey retrieves a transaction by its idempotency
// key, materialized for gate classification and replay responses.
func (r *PgxTransactionRepository) FindTransactionByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.MonetaryTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE idempotency_key = $1;`
	return r.findOne(ctx, query, idempotencyKey)
}

func (r *PgxTransactionRepository) findOne(ctx context.Context, query string, arg any) (*domain.MonetaryTransaction, error) {
	var m models.MonetaryTransaction
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.TransactionID,
		&m.IdempotencyKey,
		&m.Type,
		&m.Status,
		&m.SourceWalletID,
		&m.DestinationWalletID,
		&m.Amount,
		&m.ReferenceID,
		&m.Metadata,
		&m.ErrorMessage,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction", err)
	}

	txn := mapping.ToDomainTransaction(m)

	entries, err := r.ledgerRepo.FindEntriesByTransactionID(ctx, txn.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries for transaction %s: %w", txn.TransactionID, err)
	}
	txn.Entries = entries

	source, err := r.walletRepo.FindWalletByID(ctx, txn.SourceWalletID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load source wallet for transaction %s: %w", txn.TransactionID, err)
	}
	txn.SourceWallet = source

	if txn.DestinationWalletID == txn.SourceWalletID {
		txn.DestinationWallet = source
	} else {
		dest, err := r.walletRepo.FindWalletByID(ctx, txn.DestinationWalletID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load destination wallet for transaction %s: %w", txn.TransactionID, err)
		}
		txn.DestinationWallet = dest
	}

	return &txn, nil
}

// ListTransactions retrieves a token-paginated page of transactions with
// optional filtering by the owning user of either wallet and/or by type.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.MonetaryTransaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT t.transaction_id, t.idempotency_key, t.type, t.status, t.source_wallet_id, t.destination_wallet_id,
		       t.amount, t.reference_id, t.metadata, t.error_message, t.created_at, t.updated_at
		FROM transactions t
	`
	filterClause := `WHERE 1=1`
	args := []interface{}{}

	if params.UserID != nil && *params.UserID != "" {
		baseQuery += `
		JOIN wallets sw ON sw.wallet_id = t.source_wallet_id
		JOIN wallets dw ON dw.wallet_id = t.destination_wallet_id
		`
		args = append(args, *params.UserID)
		n := strconv.Itoa(len(args))
		filterClause += ` AND (sw.user_id = $` + n + ` OR dw.user_id = $` + n + `)`
	}
	if params.Type != nil && *params.Type != "" {
		args = append(args, *params.Type)
		filterClause += ` AND t.type = $` + strconv.Itoa(len(args))
	}

	// Ordering must be stable for cursor pagination.
	orderByClause := `ORDER BY t.created_at DESC, t.transaction_id DESC`

	if params.NextToken != nil && *params.NextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*params.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt, lastID)
		filterClause += ` AND (t.created_at, t.transaction_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns := make([]models.MonetaryTransaction, 0, fetchLimit)
	for rows.Next() {
		var m models.MonetaryTransaction
		scanErr := rows.Scan(
			&m.TransactionID,
			&m.IdempotencyKey,
			&m.Type,
			&m.Status,
			&m.SourceWalletID,
			&m.DestinationWalletID,
			&m.Amount,
			&m.ReferenceID,
			&m.Metadata,
			&m.ErrorMessage,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", scanErr)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextTokenVal *string
	results := modelTxns
	if len(modelTxns) > limit {
		lastTxn := modelTxns[limit-1]
		token := pagination.EncodeToken(lastTxn.CreatedAt, lastTxn.TransactionID)
		nextTokenVal = &token
		results = modelTxns[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}
