package mapping

import (
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	"github.com/vinayak20130/dino-ventures-assignment/internal/models"
)

// ToModelAssetType converts a domain AssetType to its model form.
func ToModelAssetType(d domain.AssetType) models.AssetType {
	return models.AssetType{
		AssetTypeID: d.AssetTypeID,
		Code:        d.Code,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssetType converts a model AssetType to its domain form.
func ToDomainAssetType(m models.AssetType) domain.AssetType {
	return domain.AssetType{
		AssetTypeID: m.AssetTypeID,
		Code:        m.Code,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
