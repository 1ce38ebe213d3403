package domain

// Client is a customer of an organization. ClientNumber is the
// org-scoped serial (e.g. "CL-0007").
type Client struct {
	ClientID       string `json:"clientID"`
	ClientNumber   string `json:"clientNumber"`
	FullName       string `json:"fullName"`
	Email          string `json:"email,omitempty"`
	Contact        string `json:"contact,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
	OrganizationID string `json:"organizationID"`
	AuditFields
}
