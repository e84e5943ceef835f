package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	portssvc "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/services"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/services"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

// Ensure MockTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.MonetaryTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonetaryTransaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.MonetaryTransaction, error) {
	args := m.Called(ctx, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonetaryTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.MonetaryTransaction, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		nextToken = &tokenVal
	}
	return args.Get(0).([]domain.MonetaryTransaction), nextToken, args.Error(2)
}

func (m *MockTransactionRepository) ExecuteTransfer(ctx context.Context, txn domain.MonetaryTransaction, validateSourceBalance bool) (*domain.MonetaryTransaction, error) {
	args := m.Called(ctx, txn, validateSourceBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonetaryTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ExecuteGenesisMint(ctx context.Context, txn domain.MonetaryTransaction) (*domain.MonetaryTransaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonetaryTransaction), args.Error(1)
}

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

func (m *MockWalletService) GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) GetUserWallet(ctx context.Context, userID string, assetTypeCode string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, assetTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) GetTreasuryWallet(ctx context.Context, assetTypeCode string) (*domain.Wallet, error) {
	args := m.Called(ctx, assetTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) ListUserWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletService) CreateWallet(ctx context.Context, userID string, assetTypeCode string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, assetTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

// --- Test fixtures ---

const (
	testUserID           = "user-alice"
	testAsset            = "GOLD_COINS"
	testTreasuryWalletID = "wallet-treasury-gold"
	testUserWalletID     = "wallet-alice-gold"
)

func newFixture(t *testing.T) (*MockTransactionRepository, *MockWalletService, portssvc.LedgerSvcFacade) {
	t.Helper()
	txnRepo := new(MockTransactionRepository)
	walletSvc := new(MockWalletService)
	return txnRepo, walletSvc, services.NewLedgerService(txnRepo, walletSvc)
}

func movementRequest(key string, amount int64) dto.MovementRequest {
	return dto.MovementRequest{
		UserID:         testUserID,
		AssetTypeCode:  testAsset,
		Amount:         decimal.NewFromInt(amount),
		IdempotencyKey: key,
	}
}

func treasuryWallet() *domain.Wallet {
	return &domain.Wallet{WalletID: testTreasuryWalletID, UserID: "user-system", AssetTypeID: "asset-gold", Balance: decimal.NewFromInt(1000000)}
}

func userWallet(balance int64) *domain.Wallet {
	return &domain.Wallet{WalletID: testUserWalletID, UserID: testUserID, AssetTypeID: "asset-gold", Balance: decimal.NewFromInt(balance)}
}

func expectWallets(walletSvc *MockWalletService, userBalance int64) {
	walletSvc.On("GetTreasuryWallet", mock.Anything, testAsset).Return(treasuryWallet(), nil)
	walletSvc.On("GetUserWallet", mock.Anything, testUserID, testAsset).Return(userWallet(userBalance), nil)
}

// --- Idempotency gate classification ---

func TestTopUp_GateReplaysCompletedTransaction(t *testing.T) {
	txnRepo, walletSvc, svc := newFixture(t)

	stored := &domain.MonetaryTransaction{
		TransactionID:  "txn-original",
		IdempotencyKey: "k1",
		Type:           domain.TopUp,
		Status:         domain.StatusCompleted,
		Amount:         decimal.NewFromInt(500),
	}
	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(stored, nil).Once()

	result, err := svc.TopUp(context.Background(), movementRequest("k1", 500))

	require.NoError(t, err)
	assert.Equal(t, "txn-original", result.TransactionID)
	// The executor must not run on a replay
	txnRepo.AssertNotCalled(t, "ExecuteTransfer", mock.Anything, mock.Anything, mock.Anything)
	walletSvc.AssertNotCalled(t, "GetTreasuryWallet", mock.Anything, mock.Anything)
}

func TestTopUp_GateRejectsPendingKey(t *testing.T) {
	txnRepo, _, svc := newFixture(t)

	pending := &domain.MonetaryTransaction{
		TransactionID:  "txn-inflight",
		IdempotencyKey: "k1",
		Status:         domain.StatusPending,
	}
	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(pending, nil).Once()

	_, err := svc.TopUp(context.Background(), movementRequest("k1", 500))

	assert.ErrorIs(t, err, apperrors.ErrConflictInFlight)
	txnRepo.AssertNotCalled(t, "ExecuteTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestTopUp_GateRejectsFailedKeyWithRecordedMessage(t *testing.T) {
	txnRepo, _, svc := newFixture(t)

	msg := "insufficient balance on wallet wallet-alice-gold"
	failed := &domain.MonetaryTransaction{
		TransactionID:  "txn-failed",
		IdempotencyKey: "k1",
		Status:         domain.StatusFailed,
		ErrorMessage:   &msg,
	}
	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(failed, nil).Once()

	_, err := svc.TopUp(context.Background(), movementRequest("k1", 500))

	var terminalErr *apperrors.TerminallyFailedError
	require.ErrorAs(t, err, &terminalErr)
	assert.Equal(t, msg, terminalErr.Message)
	assert.Equal(t, "k1", terminalErr.IdempotencyKey)
}

// --- Movement type semantics ---

func TestTopUp_MovesTreasuryToUserWithoutBalanceCheck(t *testing.T) {
	txnRepo, walletSvc, svc := newFixture(t)

	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(nil, apperrors.ErrNotFound).Once()
	expectWallets(walletSvc, 1000)

	completed := &domain.MonetaryTransaction{TransactionID: "txn-new", Status: domain.StatusCompleted}
	txnRepo.On("ExecuteTransfer", mock.Anything, mock.MatchedBy(func(txn domain.MonetaryTransaction) bool {
		return txn.Type == domain.TopUp &&
			txn.SourceWalletID == testTreasuryWalletID &&
			txn.DestinationWalletID == testUserWalletID &&
			txn.IdempotencyKey == "k1"
	}), false).Return(completed, nil).Once()

	result, err := svc.TopUp(context.Background(), movementRequest("k1", 500))

	require.NoError(t, err)
	assert.Equal(t, "txn-new", result.TransactionID)
	txnRepo.AssertExpectations(t)
}

func TestBonus_SharesTopUpStructure(t *testing.T) {
	txnRepo, walletSvc, svc := newFixture(t)

	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k-bonus").Return(nil, apperrors.ErrNotFound).Once()
	expectWallets(walletSvc, 1000)

	completed := &domain.MonetaryTransaction{TransactionID: "txn-bonus", Status: domain.StatusCompleted}
	txnRepo.On("ExecuteTransfer", mock.Anything, mock.MatchedBy(func(txn domain.MonetaryTransaction) bool {
		return txn.Type == domain.Bonus &&
			txn.SourceWalletID == testTreasuryWalletID &&
			txn.DestinationWalletID == testUserWalletID &&
			txn.Metadata["reason"] == "weekly_reward"
	}), false).Return(completed, nil).Once()

	req := movementRequest("k-bonus", 50)
	req.Metadata = map[string]string{"reason": "weekly_reward"}

	_, err := svc.Bonus(context.Background(), req)

	require.NoError(t, err)
	txnRepo.AssertExpectations(t)
}

func TestPurchase_MovesUserToTreasuryWithBalanceCheck(t *testing.T) {
	txnRepo, walletSvc, svc := newFixture(t)

	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k2").Return(nil, apperrors.ErrNotFound).Once()
	expectWallets(walletSvc, 1000)

	completed := &domain.MonetaryTransaction{TransactionID: "txn-purchase", Status: domain.StatusCompleted}
	txnRepo.On("ExecuteTransfer", mock.Anything, mock.MatchedBy(func(txn domain.MonetaryTransaction) bool {
		return txn.Type == domain.Purchase &&
			txn.SourceWalletID == testUserWalletID &&
			txn.DestinationWalletID == testTreasuryWalletID
	}), true).Return(completed, nil).Once()

	_, err := svc.Purchase(context.Background(), movementRequest("k2", 300))

	require.NoError(t, err)
	txnRepo.AssertExpectations(t)
}

// --- Failure paths ---

func TestPurchase_InsufficientBalancePropagatesAndKeepsKeyFree(t *testing.T) {
	txnRepo, walletSvc, svc := newFixture(t)

	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k2").Return(nil, apperrors.ErrNotFound).Once()
	expectWallets(walletSvc, 50)

	balanceErr := &apperrors.InsufficientBalanceError{
		WalletID:  testUserWalletID,
		Available: decimal.NewFromInt(50),
		Required:  decimal.NewFromInt(999),
	}
	txnRepo.On("ExecuteTransfer", mock.Anything, mock.Anything, true).Return(nil, balanceErr).Once()

	_, err := svc.Purchase(context.Background(), movementRequest("k2", 999))

	var insufficientErr *apperrors.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficientErr)
	assert.True(t, insufficientErr.Available.Equal(decimal.NewFromInt(50)))
	assert.True(t, insufficientErr.Required.Equal(decimal.NewFromInt(999)))
}

func TestTopUp_DuplicateKeyRaceCollapsesToWinner(t *testing.T) {
	txnRepo, walletSvc, svc := newFixture(t)

	// Gate sees nothing: both racers passed before either inserted.
	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(nil, apperrors.ErrNotFound).Once()
	expectWallets(walletSvc, 1000)

	// This racer loses the insert and re-reads the winner.
	txnRepo.On("ExecuteTransfer", mock.Anything, mock.Anything, false).
		Return(nil, apperrors.ErrDuplicate).Once()

	winner := &domain.MonetaryTransaction{
		TransactionID:  "txn-winner",
		IdempotencyKey: "k1",
		Status:         domain.StatusCompleted,
	}
	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(winner, nil).Once()

	result, err := svc.TopUp(context.Background(), movementRequest("k1", 500))

	require.NoError(t, err)
	assert.Equal(t, "txn-winner", result.TransactionID)
	txnRepo.AssertExpectations(t)
}

func TestTopUp_DuplicateKeyRaceAgainstPendingWinner(t *testing.T) {
	txnRepo, walletSvc, svc := newFixture(t)

	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(nil, apperrors.ErrNotFound).Once()
	expectWallets(walletSvc, 1000)

	txnRepo.On("ExecuteTransfer", mock.Anything, mock.Anything, false).
		Return(nil, apperrors.ErrDuplicate).Once()

	// Winner is still executing when the loser re-reads.
	pending := &domain.MonetaryTransaction{TransactionID: "txn-winner", Status: domain.StatusPending}
	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(pending, nil).Once()

	_, err := svc.TopUp(context.Background(), movementRequest("k1", 500))

	assert.ErrorIs(t, err, apperrors.ErrConflictInFlight)
}

func TestTopUp_WalletNotFound(t *testing.T) {
	txnRepo, walletSvc, svc := newFixture(t)

	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(nil, apperrors.ErrNotFound).Once()
	walletSvc.On("GetTreasuryWallet", mock.Anything, testAsset).Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.TopUp(context.Background(), movementRequest("k1", 500))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	txnRepo.AssertNotCalled(t, "ExecuteTransfer", mock.Anything, mock.Anything, mock.Anything)
}

// --- Request validation ---

func TestMovement_RequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.MovementRequest)
		wantErr string
	}{
		{
			name:    "missing idempotency key",
			mutate:  func(r *dto.MovementRequest) { r.IdempotencyKey = "" },
			wantErr: "idempotency key is required",
		},
		{
			name:    "oversized idempotency key",
			mutate:  func(r *dto.MovementRequest) { r.IdempotencyKey = string(make([]byte, 256)) },
			wantErr: "at most 255 characters",
		},
		{
			name:    "zero amount",
			mutate:  func(r *dto.MovementRequest) { r.Amount = decimal.Zero },
			wantErr: "strictly positive",
		},
		{
			name:    "negative amount",
			mutate:  func(r *dto.MovementRequest) { r.Amount = decimal.NewFromInt(-10) },
			wantErr: "strictly positive",
		},
		{
			name:    "too many fractional digits",
			mutate:  func(r *dto.MovementRequest) { r.Amount = decimal.RequireFromString("1.00001") },
			wantErr: "at most 4 fractional digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txnRepo, _, svc := newFixture(t)

			req := movementRequest("k1", 100)
			tt.mutate(&req)

			_, err := svc.TopUp(context.Background(), req)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.ErrorContains(t, err, tt.wantErr)
			txnRepo.AssertNotCalled(t, "FindTransactionByIdempotencyKey", mock.Anything, mock.Anything)
		})
	}
}

// --- Reads ---

func TestListTransactions_ReturnsPageWithToken(t *testing.T) {
	txnRepo, _, svc := newFixture(t)

	params := dto.ListTransactionsParams{Limit: 2}
	page := []domain.MonetaryTransaction{
		{TransactionID: "txn-2", Status: domain.StatusCompleted},
		{TransactionID: "txn-1", Status: domain.StatusCompleted},
	}
	txnRepo.On("ListTransactions", mock.Anything, params).Return(page, "next-token", nil).Once()

	resp, err := svc.ListTransactions(context.Background(), params)

	require.NoError(t, err)
	assert.Len(t, resp.Transactions, 2)
	require.NotNil(t, resp.NextToken)
	assert.Equal(t, "next-token", *resp.NextToken)
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	txnRepo, _, svc := newFixture(t)

	txnRepo.On("FindTransactionByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.GetTransactionByID(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetTransactionByKey_ReturnsStoredTransaction(t *testing.T) {
	txnRepo, _, svc := newFixture(t)

	stored := &domain.MonetaryTransaction{TransactionID: "txn-1", IdempotencyKey: "k1"}
	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(stored, nil).Once()

	result, err := svc.GetTransactionByKey(context.Background(), "k1")

	require.NoError(t, err)
	assert.Equal(t, "txn-1", result.TransactionID)
}

func TestTopUp_StorageErrorSurfaces(t *testing.T) {
	txnRepo, walletSvc, svc := newFixture(t)

	txnRepo.On("FindTransactionByIdempotencyKey", mock.Anything, "k1").Return(nil, apperrors.ErrNotFound).Once()
	expectWallets(walletSvc, 1000)

	storageErr := apperrors.NewAppError(500, "failed to commit transaction", errors.New("connection reset"))
	txnRepo.On("ExecuteTransfer", mock.Anything, mock.Anything, false).Return(nil, storageErr).Once()

	_, err := svc.TopUp(context.Background(), movementRequest("k1", 500))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
}
