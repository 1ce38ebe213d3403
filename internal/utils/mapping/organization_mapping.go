package mapping

import (
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/SaPok5/prs-sub001/internal/models"
)

// ToModelOrganization converts a domain Organization to a model Organization
func ToModelOrganization(d domain.Organization) models.Organization {
	return models.Organization{
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		Email:          d.Email,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrganization converts a model Organization to a domain Organization
func ToDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Email:          m.Email,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTeam converts a domain Team to a model Team
func ToModelTeam(d domain.Team) models.Team {
	return models.Team{
		TeamID:         d.TeamID,
		Name:           d.Name,
		OrganizationID: d.OrganizationID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTeam converts a model Team to a domain Team
func ToDomainTeam(m models.Team) domain.Team {
	return domain.Team{
		TeamID:         m.TeamID,
		Name:           m.Name,
		OrganizationID: m.OrganizationID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTeamSlice converts a slice of model Teams to domain Teams
func ToDomainTeamSlice(ms []models.Team) []domain.Team {
	ds := make([]domain.Team, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTeam(m)
	}
	return ds
}
