package models

// AssetType is the database representation of a virtual currency category.
type AssetType struct {
	AssetTypeID string `json:"assetTypeID" db:"asset_type_id"`
	Code        string `json:"code" db:"code"`
	Name        string `json:"name" db:"name"`
	AuditFields
}
