package repositories

import (
	"context"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
)

// AssetTypeReader defines read operations for asset type data.
type AssetTypeReader interface {
	// FindAssetTypeByCode retrieves an asset type by its unique code.
	FindAssetTypeByCode(ctx context.Context, code string) (*domain.AssetType, error)

	// ListAssetTypes retrieves all asset types ordered by code.
	ListAssetTypes(ctx context.Context) ([]domain.AssetType, error)
}

// AssetTypeWriter defines write operations for asset type data.
type AssetTypeWriter interface {
	// SaveAssetType inserts a new asset type. A code collision returns ErrDuplicate.
	SaveAssetType(ctx context.Context, assetType domain.AssetType) error
}

// AssetTypeRepositoryFacade combines all asset type repository interfaces.
type AssetTypeRepositoryFacade interface {
	AssetTypeReader
	AssetTypeWriter
}
