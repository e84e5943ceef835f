package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	portssvc "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/services"
	"github.com/vinayak20130/dino-ventures-assignment/internal/middleware"
)

// walletService provides wallet lookup and creation on top of the wallet
// repository. Balance mutation stays with the transaction executor.
type walletService struct {
	walletRepo    portsrepo.WalletRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
	assetTypeRepo portsrepo.AssetTypeRepositoryFacade
}

// NewWalletService creates a new WalletService.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, assetTypeRepo portsrepo.AssetTypeRepositoryFacade) portssvc.WalletSvcFacade {
	return &walletService{
		walletRepo:    walletRepo,
		userRepo:      userRepo,
		assetTypeRepo: assetTypeRepo,
	}
}

// Ensure walletService implements the portssvc.WalletSvcFacade interface
var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// GetWalletByID retrieves a wallet by id.
func (s *walletService) GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	return s.walletRepo.FindWalletByID(ctx, walletID)
}

// GetUserWallet retrieves the wallet of (userID, assetTypeCode).
func (s *walletService) GetUserWallet(ctx context.Context, userID string, assetTypeCode string) (*domain.Wallet, error) {
	return s.walletRepo.FindWalletForUser(ctx, userID, assetTypeCode)
}

// GetTreasuryWallet retrieves the SYSTEM wallet for an asset type.
func (s *walletService) GetTreasuryWallet(ctx context.Context, assetTypeCode string) (*domain.Wallet, error) {
	return s.walletRepo.FindTreasuryWallet(ctx, assetTypeCode)
}

// ListUserWallets retrieves all wallets owned by a user.
func (s *walletService) ListUserWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.walletRepo.ListWalletsByUser(ctx, userID)
}

// CreateWallet creates a zero-balance wallet for (userID, assetTypeCode).
func (s *walletService) CreateWallet(ctx context.Context, userID string, assetTypeCode string) (*domain.Wallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		return nil, err
	}

	assetType, err := s.assetTypeRepo.FindAssetTypeByCode(ctx, assetTypeCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: asset type %s", apperrors.ErrNotFound, assetTypeCode)
		}
		return nil, err
	}

	now := time.Now().UTC()
	wallet := domain.Wallet{
		WalletID:    uuid.NewString(),
		UserID:      userID,
		AssetTypeID: assetType.AssetTypeID,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		logger.Warn("Failed to create wallet", slog.String("user_id", userID), slog.String("asset", assetTypeCode), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Wallet created", slog.String("wallet_id", wallet.WalletID), slog.String("user_id", userID), slog.String("asset", assetTypeCode))
	return &wallet, nil
}
