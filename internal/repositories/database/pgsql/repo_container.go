package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories against one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	assetTypeRepo := newPgxAssetTypeRepository(dbPool)
	walletRepo := newPgxWalletRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, walletRepo, ledgerRepo)

	return portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		AssetTypeRepo:   assetTypeRepo,
		WalletRepo:      walletRepo,
		LedgerRepo:      ledgerRepo,
		TransactionRepo: transactionRepo,
	}
}
