package services

import (
	"context"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
)

// AssetTypeSvcFacade exposes reference-entity operations for asset types.
type AssetTypeSvcFacade interface {
	// CreateAssetType creates a new virtual currency category.
	CreateAssetType(ctx context.Context, req dto.CreateAssetTypeRequest) (*domain.AssetType, error)

	// GetAssetTypeByCode retrieves an asset type by its unique code.
	GetAssetTypeByCode(ctx context.Context, code string) (*domain.AssetType, error)

	// ListAssetTypes retrieves all asset types.
	ListAssetTypes(ctx context.Context) ([]domain.AssetType, error)
}
