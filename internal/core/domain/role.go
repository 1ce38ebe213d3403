package domain

// RoleName identifies a role within an organization.
type RoleName string

const (
	RoleAdmin    RoleName = "ADMIN"
	RoleManager  RoleName = "MANAGER"
	RoleVerifier RoleName = "VERIFIER"
	RoleSales    RoleName = "SALES"
)

// Valid reports whether r is one of the known roles.
func (r RoleName) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleVerifier, RoleSales:
		return true
	}
	return false
}

// Capability is a discrete permission evaluated server-side, once per
// request. Handlers and presentation code never re-derive these from
// role strings.
type Capability string

const (
	CapManageOrganization Capability = "organization:manage"
	CapManageUsers        Capability = "users:manage"
	CapManageTeams        Capability = "teams:manage"
	CapManageClients      Capability = "clients:manage"
	CapManageDeals        Capability = "deals:manage"
	CapRecordPayments     Capability = "payments:record"
	CapVerifyPayments     Capability = "payments:verify"
	CapManageOffers       Capability = "offers:manage"
	CapManageRates        Capability = "rates:manage"
	CapViewCommissions    Capability = "commissions:view"
	CapViewSales          Capability = "sales:view"
)

// roleCapabilities is the single authorization table keyed by role.
var roleCapabilities = map[RoleName][]Capability{
	RoleAdmin: {
		CapManageOrganization, CapManageUsers, CapManageTeams,
		CapManageClients, CapManageDeals, CapRecordPayments,
		CapVerifyPayments, CapManageOffers, CapManageRates,
		CapViewCommissions, CapViewSales,
	},
	RoleManager: {
		CapManageClients, CapManageDeals, CapRecordPayments,
		CapManageOffers, CapViewCommissions, CapViewSales,
	},
	RoleVerifier: {
		CapVerifyPayments, CapViewSales,
	},
	RoleSales: {
		CapManageClients, CapManageDeals, CapRecordPayments, CapViewSales,
	},
}

// HasCapability reports whether any of the given roles grants cap.
func HasCapability(roles []RoleName, cap Capability) bool {
	for _, role := range roles {
		for _, c := range roleCapabilities[role] {
			if c == cap {
				return true
			}
		}
	}
	return false
}

// CapabilitiesFor returns the union of capabilities granted by roles,
// deduplicated, for handing to clients that render role-aware UI.
func CapabilitiesFor(roles []RoleName) []Capability {
	seen := make(map[Capability]struct{})
	var caps []Capability
	for _, role := range roles {
		for _, c := range roleCapabilities[role] {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			caps = append(caps, c)
		}
	}
	return caps
}
