package domain

// Principal is the authenticated caller, built once per request from the
// token claims and passed explicitly to every service. Nothing reads
// identity or roles from ambient state.
type Principal struct {
	UserID         string
	OrganizationID string
	Roles          []RoleName
}

// Can reports whether the principal's roles grant the capability.
func (p Principal) Can(cap Capability) bool {
	return HasCapability(p.Roles, cap)
}
