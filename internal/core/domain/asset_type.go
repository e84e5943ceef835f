package domain

// AssetType is a distinct category of virtual currency, identified by a stable
// string code (e.g. GOLD_COINS).
type AssetType struct {
	AssetTypeID string `json:"assetTypeID"` // Primary Key (UUID)
	Code        string `json:"code"`        // Unique short code, e.g. GOLD_COINS
	Name        string `json:"name"`        // Human readable name
	AuditFields
}
