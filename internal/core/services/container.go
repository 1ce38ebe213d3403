package services

import (
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Organization = NewOrganizationService(repos.OrganizationRepo)
	container.Team = NewTeamService(repos.TeamRepo)
	container.User = NewUserService(repos.UserRepo, repos.TeamRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Deal = NewDealService(repos.DealRepo, repos.ClientRepo, repos.PaymentRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.DealRepo)
	container.Commission = NewCommissionService(repos.ReportingRepo, repos.ExchangeRateRepo)
	container.Sales = NewSalesService(repos.ReportingRepo)
	container.Catalog = NewCatalogService(repos.WorkTypeRepo, repos.OfferRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)

	auth := NewAuthService(repos.UserRepo, cfg)
	container.Auth = auth
	container.GoogleOAuth = NewGoogleOAuthService(auth.(portssvc.TokenIssuerSvc), repos.UserRepo, cfg)

	return container
}
