package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/services"
)

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

var _ portsrepo.WalletRepositoryFacade = (*MockWalletRepository)(nil)

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindWalletForUser(ctx context.Context, userID string, assetTypeCode string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, assetTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindTreasuryWallet(ctx context.Context, assetTypeCode string) (*domain.Wallet, error) {
	args := m.Called(ctx, assetTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) FindWalletsForUpdate(ctx context.Context, tx pgx.Tx, sourceWalletID, destinationWalletID string) (*domain.Wallet, *domain.Wallet, error) {
	args := m.Called(ctx, tx, sourceWalletID, destinationWalletID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Wallet), args.Get(1).(*domain.Wallet), args.Error(2)
}

func (m *MockWalletRepository) UpdateWalletBalancesInTx(ctx context.Context, tx pgx.Tx, balances map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, balances, now)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindSystemUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock AssetTypeRepository ---
type MockAssetTypeRepository struct {
	mock.Mock
}

var _ portsrepo.AssetTypeRepositoryFacade = (*MockAssetTypeRepository)(nil)

func (m *MockAssetTypeRepository) FindAssetTypeByCode(ctx context.Context, code string) (*domain.AssetType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetType), args.Error(1)
}

func (m *MockAssetTypeRepository) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetType), args.Error(1)
}

func (m *MockAssetTypeRepository) SaveAssetType(ctx context.Context, assetType domain.AssetType) error {
	args := m.Called(ctx, assetType)
	return args.Error(0)
}

func TestCreateWallet_Success(t *testing.T) {
	walletRepo := new(MockWalletRepository)
	userRepo := new(MockUserRepository)
	assetTypeRepo := new(MockAssetTypeRepository)
	svc := services.NewWalletService(walletRepo, userRepo, assetTypeRepo)

	userRepo.On("FindUserByID", mock.Anything, "user-alice").Return(&domain.User{UserID: "user-alice", Role: domain.RoleUser}, nil).Once()
	assetTypeRepo.On("FindAssetTypeByCode", mock.Anything, "GOLD_COINS").Return(&domain.AssetType{AssetTypeID: "asset-gold", Code: "GOLD_COINS"}, nil).Once()
	walletRepo.On("SaveWallet", mock.Anything, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.UserID == "user-alice" && w.AssetTypeID == "asset-gold" && w.Balance.IsZero()
	})).Return(nil).Once()

	wallet, err := svc.CreateWallet(context.Background(), "user-alice", "GOLD_COINS")

	require.NoError(t, err)
	assert.NotEmpty(t, wallet.WalletID)
	assert.True(t, wallet.Balance.IsZero())
	walletRepo.AssertExpectations(t)
}

func TestCreateWallet_UserNotFound(t *testing.T) {
	walletRepo := new(MockWalletRepository)
	userRepo := new(MockUserRepository)
	assetTypeRepo := new(MockAssetTypeRepository)
	svc := services.NewWalletService(walletRepo, userRepo, assetTypeRepo)

	userRepo.On("FindUserByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.CreateWallet(context.Background(), "missing", "GOLD_COINS")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	walletRepo.AssertNotCalled(t, "SaveWallet", mock.Anything, mock.Anything)
}

func TestCreateWallet_DuplicatePropagates(t *testing.T) {
	walletRepo := new(MockWalletRepository)
	userRepo := new(MockUserRepository)
	assetTypeRepo := new(MockAssetTypeRepository)
	svc := services.NewWalletService(walletRepo, userRepo, assetTypeRepo)

	userRepo.On("FindUserByID", mock.Anything, "user-alice").Return(&domain.User{UserID: "user-alice"}, nil).Once()
	assetTypeRepo.On("FindAssetTypeByCode", mock.Anything, "GOLD_COINS").Return(&domain.AssetType{AssetTypeID: "asset-gold"}, nil).Once()
	walletRepo.On("SaveWallet", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := svc.CreateWallet(context.Background(), "user-alice", "GOLD_COINS")

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestGetTreasuryWallet_PassThrough(t *testing.T) {
	walletRepo := new(MockWalletRepository)
	userRepo := new(MockUserRepository)
	assetTypeRepo := new(MockAssetTypeRepository)
	svc := services.NewWalletService(walletRepo, userRepo, assetTypeRepo)

	treasury := &domain.Wallet{WalletID: "wallet-treasury", Balance: decimal.NewFromInt(-100)}
	walletRepo.On("FindTreasuryWallet", mock.Anything, "GOLD_COINS").Return(treasury, nil).Once()

	wallet, err := svc.GetTreasuryWallet(context.Background(), "GOLD_COINS")

	require.NoError(t, err)
	// Treasury wallets may legitimately be negative
	assert.True(t, wallet.Balance.IsNegative())
}

func TestListUserWallets_ChecksUserExists(t *testing.T) {
	walletRepo := new(MockWalletRepository)
	userRepo := new(MockUserRepository)
	assetTypeRepo := new(MockAssetTypeRepository)
	svc := services.NewWalletService(walletRepo, userRepo, assetTypeRepo)

	userRepo.On("FindUserByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.ListUserWallets(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	walletRepo.AssertNotCalled(t, "ListWalletsByUser", mock.Anything, mock.Anything)
}
