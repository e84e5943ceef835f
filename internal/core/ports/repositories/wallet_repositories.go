package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
)

// WalletReader defines read operations for wallet data.
type WalletReader interface {
	// FindWalletByID retrieves a wallet by its unique identifier.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// FindWalletForUser retrieves the wallet of (userID, assetTypeCode).
	FindWalletForUser(ctx context.Context, userID string, assetTypeCode string) (*domain.Wallet, error)

	// FindTreasuryWallet retrieves the unique SYSTEM-owned wallet for an asset type.
	FindTreasuryWallet(ctx context.Context, assetTypeCode string) (*domain.Wallet, error)

	// ListWalletsByUser retrieves all wallets owned by a user.
	ListWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error)
}

// WalletWriter defines write operations for wallet rows outside the executor
// protocol (creation only; balances are executor-owned).
type WalletWriter interface {
	// SaveWallet inserts a new wallet. A (user, asset type) collision returns ErrDuplicate.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error
}

// WalletLocker acquires exclusive row locks on wallets inside an open storage
// transaction, in a deadlock-free canonical order.
type WalletLocker interface {
	// FindWalletsForUpdate locks both wallets and returns them in the caller's
	// (source, destination) order. When the ids are equal a single lock is taken
	// and the same wallet is returned twice.
	FindWalletsForUpdate(ctx context.Context, tx pgx.Tx, sourceWalletID, destinationWalletID string) (*domain.Wallet, *domain.Wallet, error)

	// UpdateWalletBalancesInTx persists absolute balances for locked wallets.
	UpdateWalletBalancesInTx(ctx context.Context, tx pgx.Tx, balances map[string]decimal.Decimal, now time.Time) error
}

// WalletRepositoryFacade combines all wallet repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
	WalletLocker
}
