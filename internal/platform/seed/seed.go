package seed

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
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
)

// treasuryUsername is the reserved username of the single SYSTEM user.
const treasuryUsername = "treasury"

type assetSeed struct {
	code           string
	name           string
	genesisSupply  decimal.Decimal
	initialBalance decimal.Decimal
}

var defaultAssets = []assetSeed{
	{code: "GOLD_COINS", name: "Gold Coins", genesisSupply: decimal.NewFromInt(1_000_000), initialBalance: decimal.NewFromInt(1000)},
	{code: "DIAMONDS", name: "Diamonds", genesisSupply: decimal.NewFromInt(100_000), initialBalance: decimal.NewFromInt(50)},
	{code: "LOYALTY_POINTS", name: "Loyalty Points", genesisSupply: decimal.NewFromInt(10_000_000), initialBalance: decimal.NewFromInt(0)},
}

var defaultUsernames = []string{"alice", "bob"}

// Seeder provisions reference data and initial balances. Every step leaves
// existing entities alone, so the seed can run on every startup.
type Seeder struct {
	repos     portsrepo.RepositoryProvider
	ledgerSvc portssvc.LedgerSvcFacade
	logger    *slog.Logger
}

// New creates a Seeder.
func New(repos portsrepo.RepositoryProvider, ledgerSvc portssvc.LedgerSvcFacade, logger *slog.Logger) *Seeder {
	return &Seeder{repos: repos, ledgerSvc: ledgerSvc, logger: logger}
}

// Run seeds asset types, the SYSTEM user, treasury wallets, genesis supply
// and initial user balances.
func (s *Seeder) Run(ctx context.Context) error {
	systemUser, err := s.ensureSystemUser(ctx)
	if err != nil {
		return fmt.Errorf("seed: system user: %w", err)
	}

	for _, asset := range defaultAssets {
		assetType, err := s.ensureAssetType(ctx, asset.code, asset.name)
		if err != nil {
			return fmt.Errorf("seed: asset type %s: %w", asset.code, err)
		}

		treasuryWallet, err := s.ensureWallet(ctx, systemUser.UserID, assetType.AssetTypeID, asset.code)
		if err != nil {
			return fmt.Errorf("seed: treasury wallet %s: %w", asset.code, err)
		}

		if err := s.ensureGenesisMint(ctx, treasuryWallet, asset); err != nil {
			return fmt.Errorf("seed: genesis mint %s: %w", asset.code, err)
		}
	}

	for _, username := range defaultUsernames {
		user, err := s.ensureUser(ctx, username)
		if err != nil {
			return fmt.Errorf("seed: user %s: %w", username, err)
		}

		for _, asset := range defaultAssets {
			assetType, err := s.repos.AssetTypeRepo.FindAssetTypeByCode(ctx, asset.code)
			if err != nil {
				return fmt.Errorf("seed: asset type %s: %w", asset.code, err)
			}
			if _, err := s.ensureWallet(ctx, user.UserID, assetType.AssetTypeID, asset.code); err != nil {
				return fmt.Errorf("seed: wallet %s/%s: %w", username, asset.code, err)
			}

			if asset.initialBalance.IsPositive() {
				if err := s.ensureInitialTopUp(ctx, user, asset); err != nil {
					return fmt.Errorf("seed: initial top-up %s/%s: %w", username, asset.code, err)
				}
			}
		}
	}

	s.logger.Info("Seed completed")
	return nil
}

func (s *Seeder) ensureSystemUser(ctx context.Context) (*domain.User, error) {
	existing, err := s.repos.UserRepo.FindSystemUser(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:      uuid.NewString(),
		Username:    treasuryUsername,
		Role:        domain.RoleSystem,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.repos.UserRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a concurrent seed race; read back the winner.
			return s.repos.UserRepo.FindSystemUser(ctx)
		}
		return nil, err
	}

	s.logger.Info("Seeded system user", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *Seeder) ensureUser(ctx context.Context, username string) (*domain.User, error) {
	existing, err := s.repos.UserRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:      uuid.NewString(),
		Username:    username,
		Role:        domain.RoleUser,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.repos.UserRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.repos.UserRepo.FindUserByUsername(ctx, username)
		}
		return nil, err
	}

	s.logger.Info("Seeded user", slog.String("username", username))
	return &user, nil
}

func (s *Seeder) ensureAssetType(ctx context.Context, code, name string) (*domain.AssetType, error) {
	existing, err := s.repos.AssetTypeRepo.FindAssetTypeByCode(ctx, code)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	assetType := domain.AssetType{
		AssetTypeID: uuid.NewString(),
		Code:        code,
		Name:        name,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.repos.AssetTypeRepo.SaveAssetType(ctx, assetType); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.repos.AssetTypeRepo.FindAssetTypeByCode(ctx, code)
		}
		return nil, err
	}

	s.logger.Info("Seeded asset type", slog.String("code", code))
	return &assetType, nil
}

func (s *Seeder) ensureWallet(ctx context.Context, userID, assetTypeID, assetTypeCode string) (*domain.Wallet, error) {
	existing, err := s.repos.WalletRepo.FindWalletForUser(ctx, userID, assetTypeCode)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	wallet := domain.Wallet{
		WalletID:    uuid.NewString(),
		UserID:      userID,
		AssetTypeID: assetTypeID,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.repos.WalletRepo.SaveWallet(ctx, wallet); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.repos.WalletRepo.FindWalletForUser(ctx, userID, assetTypeCode)
		}
		return nil, err
	}

	return &wallet, nil
}

// ensureGenesisMint funds a treasury wallet via the self-referencing genesis
// transaction, keyed deterministically so reruns are no-ops.
func (s *Seeder) ensureGenesisMint(ctx context.Context, treasuryWallet *domain.Wallet, asset assetSeed) error {
	key := "genesis-treasury-" + asset.code

	_, err := s.repos.TransactionRepo.FindTransactionByIdempotencyKey(ctx, key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	txn := domain.MonetaryTransaction{
		TransactionID:       uuid.NewString(),
		IdempotencyKey:      key,
		Type:                domain.TopUp,
		SourceWalletID:      treasuryWallet.WalletID,
		DestinationWalletID: treasuryWallet.WalletID,
		Amount:              asset.genesisSupply,
		Metadata:            map[string]string{"reason": domain.MetadataReasonGenesisMint},
	}

	if _, err := s.repos.TransactionRepo.ExecuteGenesisMint(ctx, txn); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return err
	}

	s.logger.Info("Seeded genesis supply", slog.String("asset", asset.code), slog.String("amount", asset.genesisSupply.String()))
	return nil
}

// ensureInitialTopUp funds a user wallet through the ordinary movement path;
// the idempotency gate makes reruns return the original transaction.
func (s *Seeder) ensureInitialTopUp(ctx context.Context, user *domain.User, asset assetSeed) error {
	req := dto.MovementRequest{
		UserID:         user.UserID,
		AssetTypeCode:  asset.code,
		Amount:         asset.initialBalance,
		Metadata:       map[string]string{"reason": "initial_seed"},
		IdempotencyKey: "seed-" + user.Username + "-" + asset.code,
	}

	if _, err := s.ledgerSvc.TopUp(ctx, req); err != nil {
		return err
	}
	return nil
}
