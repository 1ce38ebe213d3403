package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portsrepo "github.com/SaPok5/prs-sub001/internal/core/ports/repositories"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/google/uuid"
)

// teamService manages teams.
type teamService struct {
	BaseService
	teamRepo portsrepo.TeamRepository
}

// NewTeamService creates the team service.
func NewTeamService(teamRepo portsrepo.TeamRepository) portssvc.TeamSvcFacade {
	return &teamService{teamRepo: teamRepo}
}

var _ portssvc.TeamSvcFacade = (*teamService)(nil)

func (s *teamService) CreateTeam(ctx context.Context, principal domain.Principal, req dto.CreateTeamRequest) (*domain.Team, error) {
	if err := s.Authorize(ctx, principal, domain.CapManageTeams); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	team := domain.Team{
		TeamID:         uuid.NewString(),
		Name:           req.Name,
		OrganizationID: principal.OrganizationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.teamRepo.SaveTeam(ctx, team); err != nil {
		s.LogError(ctx, err, "failed to save team")
		return nil, fmt.Errorf("failed to create team in service: %w", err)
	}

	s.LogInfo(ctx, "team created", slog.String("team_id", team.TeamID))
	return &team, nil
}

func (s *teamService) ListTeams(ctx context.Context, principal domain.Principal) ([]domain.Team, error) {
	teams, err := s.teamRepo.ListTeams(ctx, principal.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams in service: %w", err)
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	return teams, nil
}
