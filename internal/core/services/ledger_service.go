package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	portssvc "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/services"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
	"github.com/vinayak20130/dino-ventures-assignment/internal/middleware"
)

// ledgerService orchestrates value movements: it runs the idempotency gate,
// resolves the wallet pair for the movement type, and hands the protocol to
// the transaction executor.
type ledgerService struct {
	txnRepo   portsrepo.TransactionRepositoryFacade
	walletSvc portssvc.WalletSvcFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, walletSvc portssvc.WalletSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txnRepo:   txnRepo,
		walletSvc: walletSvc,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// TopUp moves value from the asset's treasury wallet into the user's wallet.
// The treasury may go negative, so the source balance is not validated.
func (s *ledgerService) TopUp(ctx context.Context, req dto.MovementRequest) (*domain.MonetaryTransaction, error) {
	return s.executeMovement(ctx, domain.TopUp, req)
}

// Bonus issues value from the treasury, structurally identical to a top-up
// and discriminated by type; callers typically set metadata {reason}.
func (s *ledgerService) Bonus(ctx context.Context, req dto.MovementRequest) (*domain.MonetaryTransaction, error) {
	return s.executeMovement(ctx, domain.Bonus, req)
}

// Purchase moves value from the user's wallet back to the treasury. The
// source balance is validated under lock; user wallets never go negative.
func (s *ledgerService) Purchase(ctx context.Context, req dto.MovementRequest) (*domain.MonetaryTransaction, error) {
	return s.executeMovement(ctx, domain.Purchase, req)
}

func (s *ledgerService) executeMovement(ctx context.Context, movementType domain.TransactionType, req dto.MovementRequest) (*domain.MonetaryTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("idempotency_key", req.IdempotencyKey),
		slog.String("type", string(movementType)),
	)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// --- Idempotency gate ---
	// The cheap pre-check: replay COMPLETED work, refuse to race PENDING work,
	// refuse FAILED keys. The integrity guarantee itself is the unique
	// constraint inside the executor.
	existing, err := s.classifyExistingKey(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Info("Idempotent replay of completed transaction", slog.String("transaction_id", existing.TransactionID))
		return existing, nil
	}

	treasuryWallet, err := s.walletSvc.GetTreasuryWallet(ctx, req.AssetTypeCode)
	if err != nil {
		logger.Warn("Failed to resolve treasury wallet", slog.String("asset", req.AssetTypeCode), slog.String("error", err.Error()))
		return nil, err
	}
	userWallet, err := s.walletSvc.GetUserWallet(ctx, req.UserID, req.AssetTypeCode)
	if err != nil {
		logger.Warn("Failed to resolve user wallet", slog.String("user_id", req.UserID), slog.String("asset", req.AssetTypeCode), slog.String("error", err.Error()))
		return nil, err
	}

	var sourceWalletID, destWalletID string
	var validateSourceBalance bool
	switch movementType {
	case domain.TopUp, domain.Bonus:
		sourceWalletID = treasuryWallet.WalletID
		destWalletID = userWallet.WalletID
		validateSourceBalance = false
	case domain.Purchase:
		sourceWalletID = userWallet.WalletID
		destWalletID = treasuryWallet.WalletID
		validateSourceBalance = true
	default:
		return nil, fmt.Errorf("%w: unknown movement type %q", apperrors.ErrValidation, movementType)
	}

	txn := domain.MonetaryTransaction{
		TransactionID:       uuid.NewString(),
		IdempotencyKey:      req.IdempotencyKey,
		Type:                movementType,
		SourceWalletID:      sourceWalletID,
		DestinationWalletID: destWalletID,
		Amount:              req.Amount,
		ReferenceID:         req.ReferenceID,
		Metadata:            req.Metadata,
	}

	result, err := s.txnRepo.ExecuteTransfer(ctx, txn, validateSourceBalance)
	if err != nil {
		// Race collapse: two first-time requests with the same key both passed
		// the gate; only one INSERT won. The loser reads the winner.
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Info("Lost idempotency key race, replaying winner")
			return s.replayByKey(ctx, req.IdempotencyKey)
		}

		var insufficientErr *apperrors.InsufficientBalanceError
		if errors.As(err, &insufficientErr) {
			// Rolled back: the key is not consumed, a corrected retry may reuse it.
			logger.Warn("Insufficient balance",
				slog.String("wallet_id", insufficientErr.WalletID),
				slog.String("available", insufficientErr.Available.String()),
				slog.String("required", insufficientErr.Required.String()),
			)
			return nil, err
		}

		logger.Error("Movement execution failed", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Movement completed", slog.String("transaction_id", result.TransactionID))
	return result, nil
}

// classifyExistingKey implements the gate lookup: (nil, nil) means proceed,
// a non-nil transaction means replay, an error stops the request.
func (s *ledgerService) classifyExistingKey(ctx context.Context, idempotencyKey string) (*domain.MonetaryTransaction, error) {
	existing, err := s.txnRepo.FindTransactionByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("idempotency lookup failed for key %s: %w", idempotencyKey, err)
	}

	switch existing.Status {
	case domain.StatusCompleted:
		return existing, nil
	case domain.StatusPending:
		return nil, fmt.Errorf("%w: key %s", apperrors.ErrConflictInFlight, idempotencyKey)
	case domain.StatusFailed:
		message := "unknown failure"
		if existing.ErrorMessage != nil {
			message = *existing.ErrorMessage
		}
		return nil, &apperrors.TerminallyFailedError{IdempotencyKey: idempotencyKey, Message: message}
	default:
		return nil, fmt.Errorf("%w: transaction %s has unknown status %q", apperrors.ErrInternal, existing.TransactionID, existing.Status)
	}
}

// replayByKey resolves a lost insert race by reading the winning transaction.
// The winner may still be PENDING; that surfaces as ConflictInFlight and the
// caller retries later.
func (s *ledgerService) replayByKey(ctx context.Context, idempotencyKey string) (*domain.MonetaryTransaction, error) {
	winner, err := s.classifyExistingKey(ctx, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		// The winning row vanished between the violation and the re-read; the
		// winner must have rolled back. Let the caller retry cleanly.
		return nil, fmt.Errorf("%w: transaction for idempotency key %s no longer exists", apperrors.ErrNotFound, idempotencyKey)
	}
	return winner, nil
}

// GetTransactionByID retrieves a transaction with its ledger entries.
func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.MonetaryTransaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find transaction by ID", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return txn, nil
}

// GetTransactionByKey retrieves a transaction by idempotency key.
func (s *ledgerService) GetTransactionByKey(ctx context.Context, idempotencyKey string) (*domain.MonetaryTransaction, error) {
	txn, err := s.txnRepo.FindTransactionByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find transaction by idempotency key", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves a filtered, token-paginated transaction page.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	transactions, nextToken, err := s.txnRepo.ListTransactions(ctx, params)
	if err != nil {
		logger.Error("Failed to list transactions from repository", "error", err)
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	resp := &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}

	logger.Info("Transactions listed successfully", "count", len(transactions))
	return resp, nil
}
