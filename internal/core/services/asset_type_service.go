package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	portssvc "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/services"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
	"github.com/vinayak20130/dino-ventures-assignment/internal/middleware"
)

// assetTypeService manages the asset type reference entity.
type assetTypeService struct {
	assetTypeRepo portsrepo.AssetTypeRepositoryFacade
}

// NewAssetTypeService creates a new AssetTypeService.
func NewAssetTypeService(assetTypeRepo portsrepo.AssetTypeRepositoryFacade) portssvc.AssetTypeSvcFacade {
	return &assetTypeService{assetTypeRepo: assetTypeRepo}
}

// Ensure assetTypeService implements the portssvc.AssetTypeSvcFacade interface
var _ portssvc.AssetTypeSvcFacade = (*assetTypeService)(nil)

// CreateAssetType creates a new virtual currency category.
func (s *assetTypeService) CreateAssetType(ctx context.Context, req dto.CreateAssetTypeRequest) (*domain.AssetType, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	assetType := domain.AssetType{
		AssetTypeID: uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.assetTypeRepo.SaveAssetType(ctx, assetType); err != nil {
		logger.Warn("Failed to create asset type", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Asset type created", slog.String("asset_type_id", assetType.AssetTypeID), slog.String("code", assetType.Code))
	return &assetType, nil
}

// GetAssetTypeByCode retrieves an asset type by its unique code.
func (s *assetTypeService) GetAssetTypeByCode(ctx context.Context, code string) (*domain.AssetType, error) {
	return s.assetTypeRepo.FindAssetTypeByCode(ctx, code)
}

// ListAssetTypes retrieves all asset types.
func (s *assetTypeService) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	return s.assetTypeRepo.ListAssetTypes(ctx)
}
