package models

// Organization mirrors the organizations table.
type Organization struct {
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	AuditFields
}

// Team mirrors the teams table.
type Team struct {
	TeamID         string `db:"team_id"`
	Name           string `db:"name"`
	OrganizationID string `db:"organization_id"`
	AuditFields
}
