package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portssvc "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/services"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
	"github.com/vinayak20130/dino-ventures-assignment/internal/middleware"
)

// transactionHandler handles HTTP requests for value movements and
// transaction reads.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ledgerService portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ledgerService}
}

// bindMovementRequest binds the JSON body and attaches the idempotency key
// validated by the middleware.
func (h *transactionHandler) bindMovementRequest(c *gin.Context) (*dto.MovementRequest, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.MovementRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind movement request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return nil, false
	}

	key, ok := middleware.GetIdempotencyKeyFromContext(c)
	if !ok {
		logger.Error("Idempotency key missing from context on write endpoint")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key header is required"})
		return nil, false
	}
	req.IdempotencyKey = key

	return &req, true
}

// respondMovementError maps the error taxonomy to transport codes. A failed
// execution is never converted to a success response.
func (h *transactionHandler) respondMovementError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var insufficientErr *apperrors.InsufficientBalanceError
	var terminalErr *apperrors.TerminallyFailedError

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &insufficientErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     "Insufficient balance",
			"available": insufficientErr.Available,
			"required":  insufficientErr.Required,
		})
	case errors.Is(err, apperrors.ErrConflictInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "A request with this idempotency key is still in progress; retry later"})
	case errors.As(err, &terminalErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":        "A request with this idempotency key failed terminally",
			"errorMessage": terminalErr.Message,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("Movement failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute movement"})
	}
}

// topUp godoc
// @Summary Top up a user wallet from the treasury
// @Description Moves value from the asset's treasury wallet into the user's wallet. Idempotent per Idempotency-Key header.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Caller-supplied idempotency key"
// @Param   movement body dto.MovementRequest true "Movement details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 409 {object} map[string]string "Request with this key still in progress"
// @Router /transactions/topup [post]
func (h *transactionHandler) topUp(c *gin.Context) {
	req, ok := h.bindMovementRequest(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.TopUp(c.Request.Context(), *req)
	if err != nil {
		h.respondMovementError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// bonus godoc
// @Summary Issue a bonus from the treasury
// @Description Issues value from the treasury into the user's wallet; typically carries a metadata reason. Idempotent per Idempotency-Key header.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Caller-supplied idempotency key"
// @Param   movement body dto.MovementRequest true "Movement details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 409 {object} map[string]string "Request with this key still in progress"
// @Router /transactions/bonus [post]
func (h *transactionHandler) bonus(c *gin.Context) {
	req, ok := h.bindMovementRequest(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.Bonus(c.Request.Context(), *req)
	if err != nil {
		h.respondMovementError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// purchase godoc
// @Summary Record a purchase from a user wallet
// @Description Moves value from the user's wallet back to the treasury; fails without overdraft when the balance is short. Idempotent per Idempotency-Key header.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Caller-supplied idempotency key"
// @Param   movement body dto.MovementRequest true "Movement details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 409 {object} map[string]string "Request with this key still in progress"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Router /transactions/purchase [post]
func (h *transactionHandler) purchase(c *gin.Context) {
	req, ok := h.bindMovementRequest(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.Purchase(c.Request.Context(), *req)
	if err != nil {
		h.respondMovementError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves a transaction with its ledger entries
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getTransactionByKey godoc
// @Summary Get a transaction by idempotency key
// @Description Retrieves a transaction by the idempotency key it was submitted with
// @Tags transactions
// @Produce  json
// @Param   idempotencyKey path string true "Idempotency key"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/key/{idempotencyKey} [get]
func (h *transactionHandler) getTransactionByKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	idempotencyKey := c.Param("idempotencyKey")

	txn, err := h.ledgerService.GetTransactionByKey(c.Request.Context(), idempotencyKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction by key", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves a token-paginated transaction page, optionally filtered by user and/or type
// @Tags transactions
// @Produce  json
// @Param   userID query string false "Filter by owning user of either wallet"
// @Param   type query string false "Filter by movement type (TOP_UP, BONUS, PURCHASE)"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid filters or token"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListTransactionsParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind list transactions query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	if params.Type != nil && *params.Type != "" {
		switch domain.TransactionType(*params.Type) {
		case domain.TopUp, domain.Bonus, domain.Purchase:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type filter"})
			return
		}
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == 400 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nextToken"})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
