package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	"github.com/vinayak20130/dino-ventures-assignment/internal/models"
	"github.com/vinayak20130/dino-ventures-assignment/internal/utils/mapping"
)

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxWalletRepository implements portsrepo.WalletRepositoryFacade
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

const walletColumns = `wallet_id, user_id, asset_type_id, balance, created_at, updated_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var m models.Wallet
	err := row.Scan(
		&m.WalletID,
		&m.UserID,
		&m.AssetTypeID,
		&m.Balance,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	w := mapping.ToDomainWallet(m)
	return &w, nil
}

// SaveWallet inserts a new wallet row with its initial balance.
func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	modelWallet := mapping.ToModelWallet(wallet)

	query := `
		INSERT INTO wallets (wallet_id, user_id, asset_type_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelWallet.WalletID,
		modelWallet.UserID,
		modelWallet.AssetTypeID,
		modelWallet.Balance,
		modelWallet.CreatedAt,
		modelWallet.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: wallet for user %s and asset type %s already exists", apperrors.ErrDuplicate, wallet.UserID, wallet.AssetTypeID)
		}
		return fmt.Errorf("failed to save wallet %s: %w", modelWallet.WalletID, err)
	}
	return nil
}

// FindWalletByID retrieves a wallet by its ID.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1;`

	wallet, err := scanWallet(r.Pool.QueryRow(ctx, query, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet by ID %s: %w", walletID, err)
	}
	return wallet, nil
}

// FindWalletForUser retrieves the wallet of (userID, assetTypeCode).
func (r *PgxWalletRepository) FindWalletForUser(ctx context.Context, userID string, assetTypeCode string) (*domain.Wallet, error) {
	query := `
		SELECT w.wallet_id, w.user_id, w.asset_type_id, w.balance, w.created_at, w.updated_at
		FROM wallets w
		JOIN asset_types at ON at.asset_type_id = w.asset_type_id
		WHERE w.user_id = $1 AND at.code = $2;
	`
	wallet, err := scanWallet(r.Pool.QueryRow(ctx, query, userID, assetTypeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: wallet for user %s and asset %s", apperrors.ErrNotFound, userID, assetTypeCode)
		}
		return nil, fmt.Errorf("failed to find wallet for user %s and asset %s: %w", userID, assetTypeCode, err)
	}
	return wallet, nil
}

// FindTreasuryWallet retrieves the unique SYSTEM-owned wallet for an asset type.
func (r *PgxWalletRepository) FindTreasuryWallet(ctx context.Context, assetTypeCode string) (*domain.Wallet, error) {
	query := `
		SELECT w.wallet_id, w.user_id, w.asset_type_id, w.balance, w.created_at, w.updated_at
		FROM wallets w
		JOIN users u ON u.user_id = w.user_id
		JOIN asset_types at ON at.asset_type_id = w.asset_type_id
		WHERE u.role = 'SYSTEM' AND at.code = $1;
	`
	wallet, err := scanWallet(r.Pool.QueryRow(ctx, query, assetTypeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: treasury wallet for asset %s", apperrors.ErrNotFound, assetTypeCode)
		}
		return nil, fmt.Errorf("failed to find treasury wallet for asset %s: %w", assetTypeCode, err)
	}
	return wallet, nil
}

// ListWalletsByUser retrieves all wallets owned by a user.
func (r *PgxWalletRepository) ListWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets for user %s: %w", userID, err)
	}
	defer rows.Close()

	wallets := []models.Wallet{}
	for rows.Next() {
		var m models.Wallet
		if err := rows.Scan(&m.WalletID, &m.UserID, &m.AssetTypeID, &m.Balance, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wallet row for user %s: %w", userID, err)
		}
		wallets = append(wallets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallet rows for user %s: %w", userID, err)
	}

	return mapping.ToDomainWalletSlice(wallets), nil
}

// lockOrder returns the distinct wallet ids in the canonical locking order:
// the smaller id as a byte string first. Every executor acquiring locks in
// this order makes cyclic waits impossible.
func lockOrder(a, b string) []string {
	if a == b {
		return []string{a}
	}
	if a < b {
		return []string{a, b}
	}
	return []string{b, a}
}

// FindWalletsForUpdate locks both wallets with SELECT ... FOR UPDATE, one row
// at a time in canonical order, and returns them in the caller's
// (source, destination) order. Must be called within a transaction.
func (r *PgxWalletRepository) FindWalletsForUpdate(ctx context.Context, tx pgx.Tx, sourceWalletID, destinationWalletID string) (*domain.Wallet, *domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1 FOR UPDATE;`

	locked := make(map[string]*domain.Wallet, 2)
	for _, walletID := range lockOrder(sourceWalletID, destinationWalletID) {
		wallet, err := scanWallet(tx.QueryRow(ctx, query, walletID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil, fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, walletID)
			}
			if isDeadlock(err) {
				return nil, nil, apperrors.NewAppError(500, "deadlock reported while locking wallet "+walletID, err)
			}
			return nil, nil, fmt.Errorf("failed to lock wallet %s: %w", walletID, err)
		}
		locked[walletID] = wallet
	}

	return locked[sourceWalletID], locked[destinationWalletID], nil
}

// UpdateWalletBalancesInTx persists absolute balances computed under lock.
// Must be called within the transaction holding the row locks.
func (r *PgxWalletRepository) UpdateWalletBalancesInTx(ctx context.Context, tx pgx.Tx, balances map[string]decimal.Decimal, now time.Time) error {
	if len(balances) == 0 {
		return nil
	}

	query := `
		UPDATE wallets
		SET balance = $2, updated_at = $3
		WHERE wallet_id = $1;
	`

	batch := &pgx.Batch{}
	walletIDs := make([]string, 0, len(balances))
	for walletID, balance := range balances {
		batch.Queue(query, walletID, balance, now)
		walletIDs = append(walletIDs, walletID)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for wallet %s: %w", walletIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: wallet %s not found during balance update", apperrors.ErrNotFound, walletIDs[i])
			}
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}

	return batchErr
}
