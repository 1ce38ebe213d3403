package domain

// WorkType categorizes what a deal delivers (e.g. web build, SEO retainer).
type WorkType struct {
	WorkTypeID     string `json:"workTypeID"`
	Name           string `json:"name"`
	OrganizationID string `json:"organizationID"`
	AuditFields
}

// SourceType records how a deal was acquired (e.g. referral, inbound).
type SourceType struct {
	SourceTypeID   string `json:"sourceTypeID"`
	Name           string `json:"name"`
	OrganizationID string `json:"organizationID"`
	AuditFields
}
