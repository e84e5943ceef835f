package services

import (
	"context"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
)

// WalletSvcFacade exposes wallet lookup and creation.
type WalletSvcFacade interface {
	// GetWalletByID retrieves a wallet by id.
	GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// GetUserWallet retrieves the wallet of (userID, assetTypeCode).
	GetUserWallet(ctx context.Context, userID string, assetTypeCode string) (*domain.Wallet, error)

	// GetTreasuryWallet retrieves the SYSTEM wallet for an asset type.
	GetTreasuryWallet(ctx context.Context, assetTypeCode string) (*domain.Wallet, error)

	// ListUserWallets retrieves all wallets owned by a user.
	ListUserWallets(ctx context.Context, userID string) ([]domain.Wallet, error)

	// CreateWallet creates a zero-balance wallet for (userID, assetTypeCode).
	CreateWallet(ctx context.Context, userID string, assetTypeCode string) (*domain.Wallet, error)
}
