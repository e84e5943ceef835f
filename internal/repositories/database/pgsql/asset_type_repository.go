package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	"github.com/vinayak20130/dino-ventures-assignment/internal/models"
	"github.com/vinayak20130/dino-ventures-assignment/internal/utils/mapping"
)

type PgxAssetTypeRepository struct {
	BaseRepository
}

// newPgxAssetTypeRepository creates a new repository for asset type data.
func newPgxAssetTypeRepository(pool *pgxpool.Pool) portsrepo.AssetTypeRepositoryFacade {
	return &PgxAssetTypeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAssetTypeRepository implements portsrepo.AssetTypeRepositoryFacade
var _ portsrepo.AssetTypeRepositoryFacade = (*PgxAssetTypeRepository)(nil)

// SaveAssetType inserts a new asset type.
func (r *PgxAssetTypeRepository) SaveAssetType(ctx context.Context, assetType domain.AssetType) error {
	m := mapping.ToModelAssetType(assetType)

	query := `
		INSERT INTO asset_types (asset_type_id, code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.AssetTypeID, m.Code, m.Name, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: asset type with code %s already exists", apperrors.ErrDuplicate, assetType.Code)
		}
		return fmt.Errorf("failed to save asset type %s: %w", m.AssetTypeID, err)
	}
	return nil
}

// FindAssetTypeByCode retrieves an asset type by its unique code.
func (r *PgxAssetTypeRepository) FindAssetTypeByCode(ctx context.Context, code string) (*domain.AssetType, error) {
	query := `SELECT asset_type_id, code, name, created_at, updated_at FROM asset_types WHERE code = $1;`

	var m models.AssetType
	err := r.Pool.QueryRow(ctx, query, code).Scan(&m.AssetTypeID, &m.Code, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset type by code %s: %w", code, err)
	}

	assetType := mapping.ToDomainAssetType(m)
	return &assetType, nil
}

// ListAssetTypes retrieves all asset types ordered by code.
func (r *PgxAssetTypeRepository) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	query := `SELECT asset_type_id, code, name, created_at, updated_at FROM asset_types ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset types: %w", err)
	}
	defer rows.Close()

	assetTypes := []domain.AssetType{}
	for rows.Next() {
		var m models.AssetType
		if err := rows.Scan(&m.AssetTypeID, &m.Code, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan asset type row: %w", err)
		}
		assetTypes = append(assetTypes, mapping.ToDomainAssetType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset type rows: %w", err)
	}

	return assetTypes, nil
}
