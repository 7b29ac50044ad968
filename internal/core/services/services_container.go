package services

import (
	"github.com/SscSPs/cylinder_holdings/internal/core/ports/billing"
	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, billingClient billing.Client) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Holdings first: the customer service reads balances through it
	container.Holdings = NewHoldingsService(
		repos.LedgerRepo,
		repos.CustomerRepo,
		WithExcludeVoid(cfg.HoldingsExcludeVoid),
		WithLedgerTrace(cfg.LedgerTrace),
	)
	container.Customer = NewCustomerService(repos.CustomerRepo, repos.DocumentRepo, container.Holdings)
	container.Document = NewDocumentService(
		repos.DocumentRepo,
		repos.CustomerRepo,
		WithNumberingAttempts(cfg.NumberingMaxAttempts),
	)
	container.Sync = NewSyncService(billingClient, repos.CustomerRepo, repos.DocumentRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}
