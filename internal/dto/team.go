package dto

import "github.com/SaPok5/prs-sub001/internal/core/domain"

// CreateTeamRequest creates a team in the caller's organization.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// TeamResponse is the API shape of a team.
type TeamResponse struct {
	TeamID string `json:"teamID"`
	Name   string `json:"name"`
}

// ToTeamResponse converts a domain team.
func ToTeamResponse(t *domain.Team) TeamResponse {
	return TeamResponse{TeamID: t.TeamID, Name: t.Name}
}

// ListTeamsResponse wraps the list of teams.
type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// ToListTeamsResponse converts a slice of domain teams.
func ToListTeamsResponse(teams []domain.Team) ListTeamsResponse {
	out := make([]TeamResponse, len(teams))
	for i := range teams {
		out[i] = ToTeamResponse(&teams[i])
	}
	return ListTeamsResponse{Teams: out}
}
