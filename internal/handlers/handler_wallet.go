package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	portssvc "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/services"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
	"github.com/vinayak20130/dino-ventures-assignment/internal/middleware"
)

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(walletService portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: walletService}
}

// getWallet godoc
// @Summary Get a wallet by ID
// @Tags wallets
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Success 200 {object} dto.WalletResponse
// @Failure 404 {object} map[string]string "Wallet not found"
// @Router /wallets/{walletID} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("walletID")

	wallet, err := h.walletService.GetWalletByID(c.Request.Context(), walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
			return
		}
		logger.Error("Failed to get wallet", slog.String("wallet_id", walletID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wallet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// listUserWallets godoc
// @Summary List a user's wallets
// @Tags wallets
// @Produce  json
// @Param   userID path string true "User ID"
// @Success 200 {array} dto.WalletResponse
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{userID}/wallets [get]
func (h *walletHandler) listUserWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	wallets, err := h.walletService.ListUserWallets(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to list wallets", slog.String("user_id", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list wallets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponses(wallets))
}

// createWallet godoc
// @Summary Create a zero-balance wallet for a user and asset type
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   userID path string true "User ID"
// @Param   assetTypeCode path string true "Asset type code"
// @Success 201 {object} dto.WalletResponse
// @Failure 404 {object} map[string]string "User or asset type not found"
// @Failure 409 {object} map[string]string "Wallet already exists"
// @Router /users/{userID}/wallets/{assetTypeCode} [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")
	assetTypeCode := c.Param("assetTypeCode")

	wallet, err := h.walletService.CreateWallet(c.Request.Context(), userID, assetTypeCode)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Wallet already exists for this user and asset type"})
		default:
			logger.Error("Failed to create wallet", slog.String("user_id", userID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wallet"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWalletResponse(wallet))
}
