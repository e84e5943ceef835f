package models

import "github.com/shopspring/decimal"

// Wallet is the database representation of a wallet.
// (user_id, asset_type_id) is unique; balance is NUMERIC(18,4) DEFAULT 0.
type Wallet struct {
	WalletID    string          `json:"walletID" db:"wallet_id"`
	UserID      string          `json:"userID" db:"user_id"`
	AssetTypeID string          `json:"assetTypeID" db:"asset_type_id"`
	Balance     decimal.Decimal `json:"balance" db:"balance"`
	AuditFields
}
