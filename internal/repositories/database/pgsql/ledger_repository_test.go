package pgsql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vinayak20130/dino-ventures-assignment/internal/apperrors"
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
)

func newLedgerRepoForTest() *PgxLedgerRepository {
	// No pool: these paths must fail before any SQL is issued.
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: (*pgxpool.Pool)(nil)}}
}

func TestUpdateEntry_AlwaysImmutable(t *testing.T) {
	repo := newLedgerRepoForTest()

	err := repo.UpdateEntry(context.Background(), domain.LedgerEntry{EntryID: "entry-1"})

	assert.ErrorIs(t, err, apperrors.ErrLedgerImmutable)
	assert.ErrorContains(t, err, "entry-1")
}

func TestAppendEntriesInTx_RejectsInvalidPairBeforeStorage(t *testing.T) {
	repo := newLedgerRepoForTest()

	// A lone entry must be rejected by validation; the nil tx proves no SQL ran.
	err := repo.AppendEntriesInTx(context.Background(), nil, []domain.LedgerEntry{
		{
			EntryID:       "entry-1",
			TransactionID: "txn-1",
			WalletID:      "wallet-a",
			EntryType:     domain.Debit,
			Amount:        decimal.NewFromInt(100),
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAppendGenesisEntryInTx_RejectsNonGenesisTransaction(t *testing.T) {
	repo := newLedgerRepoForTest()

	txn := domain.MonetaryTransaction{
		TransactionID:       "txn-1",
		SourceWalletID:      "wallet-a",
		DestinationWalletID: "wallet-b",
	}
	entry := domain.LedgerEntry{
		EntryID:       "entry-1",
		TransactionID: "txn-1",
		WalletID:      "wallet-a",
		EntryType:     domain.Credit,
		Amount:        decimal.NewFromInt(100),
	}

	err := repo.AppendGenesisEntryInTx(context.Background(), nil, txn, entry)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.ErrorContains(t, err, "genesis")
}
