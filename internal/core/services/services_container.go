package services

import (
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_dashboard/internal/core/ports/services"
	"github.com/SscSPs/sales_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, seedSource portsrepo.SeedSource) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Reporting:   NewReportingService(repos.ReportingRepo, WithPriceBuckets(cfg.PriceBuckets)),
		Seed:        NewSeedService(seedSource, repos.TransactionRepo),
	}
}
