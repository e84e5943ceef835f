package domain

import "github.com/shopspring/decimal"

// Wallet holds the balance of one (user, asset type) pair.
//
// A user wallet's balance must be >= 0 after any committed transaction; the
// treasury wallet may go negative since it mints supply. Balance is mutated
// only by the transaction executor under an exclusive row lock.
type Wallet struct {
	WalletID    string          `json:"walletID"`    // Primary Key (UUID)
	UserID      string          `json:"userID"`      // FK -> users.user_id
	AssetTypeID string          `json:"assetTypeID"` // FK -> asset_types.asset_type_id
	Balance     decimal.Decimal `json:"balance"`     // NUMERIC(18,4), defaults to zero
	AuditFields
}
