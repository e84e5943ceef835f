package services

import (
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	portssvc "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Wallet service first since the ledger service depends on it
	container.Wallet = NewWalletService(repos.WalletRepo, repos.UserRepo, repos.AssetTypeRepo)

	container.User = NewUserService(repos.UserRepo)
	container.AssetType = NewAssetTypeService(repos.AssetTypeRepo)
	container.Ledger = NewLedgerService(repos.TransactionRepo, container.Wallet)

	return container
}
