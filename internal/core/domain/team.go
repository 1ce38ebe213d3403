package domain

// Team groups salespeople within an organization.
type Team struct {
	TeamID         string `json:"teamID"`
	Name           string `json:"name"`
	OrganizationID string `json:"organizationID"`
	AuditFields
}

// Assignment says which team, if any, a user works under.
// Verifiers are typically unscoped; salespeople are team-scoped.
// Modeled as a tagged variant so callers cannot confuse "no team"
// with an empty team ID.
type Assignment struct {
	teamID string
	scoped bool
}

// TeamScoped returns an assignment bound to the given team.
func TeamScoped(teamID string) Assignment {
	return Assignment{teamID: teamID, scoped: true}
}

// Unscoped returns an assignment with no team binding.
func Unscoped() Assignment {
	return Assignment{}
}

// Team returns the bound team ID and whether the assignment is team-scoped.
func (a Assignment) Team() (string, bool) {
	return a.teamID, a.scoped
}

// IsScoped reports whether the assignment is bound to a team.
func (a Assignment) IsScoped() bool {
	return a.scoped
}
