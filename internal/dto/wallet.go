package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
)

// WalletResponse defines the data returned for a wallet.
type WalletResponse struct {
	WalletID    string          `json:"walletID"`
	UserID      string          `json:"userID"`
	AssetTypeID string          `json:"assetTypeID"`
	Balance     decimal.Decimal `json:"balance"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToWalletResponse converts a domain Wallet to its response DTO.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:    w.WalletID,
		UserID:      w.UserID,
		AssetTypeID: w.AssetTypeID,
		Balance:     w.Balance,
		UpdatedAt:   w.UpdatedAt,
	}
}

// ToWalletResponses converts a slice of domain wallets.
func ToWalletResponses(ws []domain.Wallet) []WalletResponse {
	responses := make([]WalletResponse, len(ws))
	for i := range ws {
		responses[i] = ToWalletResponse(&ws[i])
	}
	return responses
}
