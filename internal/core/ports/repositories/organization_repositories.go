package repositories

import (
	"context"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// OrganizationRepository persists organizations.
type OrganizationRepository interface {
	// SaveOrganizationWithAdmin creates the organization and its first admin
	// user inside one transaction; either both land or neither does.
	SaveOrganizationWithAdmin(ctx context.Context, org domain.Organization, admin domain.User, adminPasswordHash string) error
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
	FindOrganizationByEmail(ctx context.Context, email string) (*domain.Organization, error)
}

// TeamRepository persists teams.
type TeamRepository interface {
	SaveTeam(ctx context.Context, team domain.Team) error
	FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error)
	ListTeams(ctx context.Context, organizationID string) ([]domain.Team, error)
}
