package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Organization OrganizationSvcFacade
	Team         TeamSvcFacade
	User         UserSvcFacade
	Client       ClientSvcFacade
	Deal         DealSvcFacade
	Payment      PaymentSvcFacade
	Commission   CommissionSvcFacade
	Sales        SalesSvcFacade
	Catalog      CatalogSvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Auth         AuthSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
}
