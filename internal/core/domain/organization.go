package domain

// Organization is the tenant boundary; every client, deal, payment and
// user belongs to exactly one organization.
type Organization struct {
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	AuditFields
}
