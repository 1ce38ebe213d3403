package repositories

// RepositoryProvider bundles every repository implementation for wiring.
type RepositoryProvider struct {
	OrganizationRepo OrganizationRepository
	TeamRepo         TeamRepository
	UserRepo         UserRepository
	ClientRepo       ClientRepository
	DealRepo         DealRepository
	PaymentRepo      PaymentRepository
	WorkTypeRepo     WorkTypeRepository
	OfferRepo        OfferRepository
	ExchangeRateRepo ExchangeRateRepository
	ReportingRepo    ReportingRepository
}
