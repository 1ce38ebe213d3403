package pgsql

import (
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	organizationRepo := newPgxOrganizationRepository(dbPool)
	teamRepo := newPgxTeamRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	dealRepo := newPgxDealRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	workTypeRepo := newPgxWorkTypeRepository(dbPool)
	offerRepo := newPgxOfferRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		OrganizationRepo: organizationRepo,
		TeamRepo:         teamRepo,
		UserRepo:         userRepo,
		ClientRepo:       clientRepo,
		DealRepo:         dealRepo,
		PaymentRepo:      paymentRepo,
		WorkTypeRepo:     workTypeRepo,
		OfferRepo:        offerRepo,
		ExchangeRateRepo: exchangeRateRepo,
		ReportingRepo:    reportingRepo,
	}
}
