package services

import (
	"context"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/SaPok5/prs-sub001/internal/dto"
)

// OrganizationSvcFacade registers and reads organizations.
type OrganizationSvcFacade interface {
	RegisterOrganization(ctx context.Context, req dto.RegisterOrganizationRequest) (*domain.Organization, *domain.User, error)
	GetOrganization(ctx context.Context, principal domain.Principal, organizationID string) (*domain.Organization, error)
}

// TeamSvcFacade manages teams.
type TeamSvcFacade interface {
	CreateTeam(ctx context.Context, principal domain.Principal, req dto.CreateTeamRequest) (*domain.Team, error)
	ListTeams(ctx context.Context, principal domain.Principal) ([]domain.Team, error)
}

// UserSvcFacade manages employees.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, principal domain.Principal, req dto.CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, principal domain.Principal, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, principal domain.Principal, params dto.ListUsersParams) ([]domain.User, error)
	UpdateUser(ctx context.Context, principal domain.Principal, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, principal domain.Principal, userID string) error
}

// ClientSvcFacade manages clients.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, principal domain.Principal, req dto.CreateClientRequest) (*domain.Client, error)
	GetClient(ctx context.Context, principal domain.Principal, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, principal domain.Principal, params dto.ListClientsParams) ([]domain.Client, *string, error)
	UpdateClient(ctx context.Context, principal domain.Principal, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, principal domain.Principal, clientID string) error
}

// DealSvcFacade manages deals.
type DealSvcFacade interface {
	CreateDeal(ctx context.Context, principal domain.Principal, req dto.CreateDealRequest) (*domain.Deal, error)
	GetDeal(ctx context.Context, principal domain.Principal, dealID string) (*domain.Deal, error) // payments loaded
	ListDeals(ctx context.Context, principal domain.Principal, params dto.ListDealsParams) ([]domain.Deal, *string, error)
	UpdateDeal(ctx context.Context, principal domain.Principal, dealID string, req dto.UpdateDealRequest) (*domain.Deal, error)
	DeleteDeal(ctx context.Context, principal domain.Principal, dealID string) error
}

// CatalogSvcFacade manages work types, source types and offers.
type CatalogSvcFacade interface {
	CreateWorkType(ctx context.Context, principal domain.Principal, req dto.CreateWorkTypeRequest) (*domain.WorkType, error)
	ListWorkTypes(ctx context.Context, principal domain.Principal) ([]domain.WorkType, error)
	CreateSourceType(ctx context.Context, principal domain.Principal, req dto.CreateSourceTypeRequest) (*domain.SourceType, error)
	ListSourceTypes(ctx context.Context, principal domain.Principal) ([]domain.SourceType, error)
	CreateOffer(ctx context.Context, principal domain.Principal, req dto.CreateOfferRequest) (*domain.Offer, error)
	ListOffers(ctx context.Context, principal domain.Principal) ([]domain.Offer, error)
	SetOfferActive(ctx context.Context, principal domain.Principal, offerID string, active bool) error
}

// ExchangeRateSvcFacade manages the provided conversion-rate table.
type ExchangeRateSvcFacade interface {
	CreateExchangeRate(ctx context.Context, principal domain.Principal, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}
