package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
)

func TestTransactionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.TransactionStatus
		to   domain.TransactionStatus
		want bool
	}{
		{name: "pending to completed", from: domain.StatusPending, to: domain.StatusCompleted, want: true},
		{name: "pending to failed", from: domain.StatusPending, to: domain.StatusFailed, want: true},
		{name: "completed is frozen", from: domain.StatusCompleted, to: domain.StatusFailed, want: false},
		{name: "completed cannot go back to pending", from: domain.StatusCompleted, to: domain.StatusPending, want: false},
		{name: "failed is frozen", from: domain.StatusFailed, to: domain.StatusCompleted, want: false},
		{name: "pending to pending is not a transition", from: domain.StatusPending, to: domain.StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestMonetaryTransaction_Validate(t *testing.T) {
	valid := func() domain.MonetaryTransaction {
		return domain.MonetaryTransaction{
			TransactionID:       "txn-1",
			IdempotencyKey:      "key-1",
			Type:                domain.TopUp,
			SourceWalletID:      "wallet-a",
			DestinationWalletID: "wallet-b",
			Amount:              decimal.NewFromInt(100),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.MonetaryTransaction)
		wantErr string
	}{
		{name: "valid transaction", mutate: func(tx *domain.MonetaryTransaction) {}},
		{
			name:    "missing idempotency key",
			mutate:  func(tx *domain.MonetaryTransaction) { tx.IdempotencyKey = "" },
			wantErr: "idempotency key is required",
		},
		{
			name:    "zero amount",
			mutate:  func(tx *domain.MonetaryTransaction) { tx.Amount = decimal.Zero },
			wantErr: "strictly positive",
		},
		{
			name:    "negative amount",
			mutate:  func(tx *domain.MonetaryTransaction) { tx.Amount = decimal.NewFromInt(-5) },
			wantErr: "strictly positive",
		},
		{
			name:    "missing wallets",
			mutate:  func(tx *domain.MonetaryTransaction) { tx.SourceWalletID = "" },
			wantErr: "source and destination wallets are required",
		},
		{
			name:    "same wallet without genesis reason",
			mutate:  func(tx *domain.MonetaryTransaction) { tx.DestinationWalletID = tx.SourceWalletID },
			wantErr: "must differ",
		},
		{
			name: "same wallet with genesis reason is allowed",
			mutate: func(tx *domain.MonetaryTransaction) {
				tx.DestinationWalletID = tx.SourceWalletID
				tx.Metadata = map[string]string{"reason": domain.MetadataReasonGenesisMint}
			},
		},
		{
			name:    "unknown type",
			mutate:  func(tx *domain.MonetaryTransaction) { tx.Type = "TRANSFER" },
			wantErr: "unknown transaction type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestMonetaryTransaction_IsGenesisMint(t *testing.T) {
	tx := domain.MonetaryTransaction{
		SourceWalletID:      "wallet-t",
		DestinationWalletID: "wallet-t",
		Metadata:            map[string]string{"reason": domain.MetadataReasonGenesisMint},
	}
	assert.True(t, tx.IsGenesisMint())

	// Same reason but distinct wallets is an ordinary transfer shape
	tx.DestinationWalletID = "wallet-u"
	assert.False(t, tx.IsGenesisMint())

	// Self-transfer without the reason is not genesis
	tx.DestinationWalletID = "wallet-t"
	tx.Metadata = nil
	assert.False(t, tx.IsGenesisMint())
}
