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

// assetTypeHandler handles HTTP requests related to asset types.
type assetTypeHandler struct {
	assetTypeService portssvc.AssetTypeSvcFacade
}

// newAssetTypeHandler creates a new assetTypeHandler.
func newAssetTypeHandler(assetTypeService portssvc.AssetTypeSvcFacade) *assetTypeHandler {
	return &assetTypeHandler{assetTypeService: assetTypeService}
}

// createAssetType godoc
// @Summary Create an asset type
// @Tags asset-types
// @Accept  json
// @Produce  json
// @Param   assetType body dto.CreateAssetTypeRequest true "Asset type details"
// @Success 201 {object} dto.AssetTypeResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Code taken"
// @Router /asset-types [post]
func (h *assetTypeHandler) createAssetType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateAssetTypeRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create asset type request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	assetType, err := h.assetTypeService.CreateAssetType(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Asset type code already exists"})
			return
		}
		logger.Error("Failed to create asset type", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset type"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetTypeResponse(assetType))
}

// listAssetTypes godoc
// @Summary List asset types
// @Tags asset-types
// @Produce  json
// @Success 200 {array} dto.AssetTypeResponse
// @Router /asset-types [get]
func (h *assetTypeHandler) listAssetTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetTypes, err := h.assetTypeService.ListAssetTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list asset types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list asset types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetTypeResponses(assetTypes))
}
