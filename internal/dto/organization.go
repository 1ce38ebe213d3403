package dto

import "github.com/SaPok5/prs-sub001/internal/core/domain"

// RegisterOrganizationRequest creates an organization together with its
// first admin user, in one transaction.
type RegisterOrganizationRequest struct {
	OrganizationName string `json:"organizationName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	AdminFullName    string `json:"adminFullName" binding:"required"`
	AdminEmail       string `json:"adminEmail" binding:"required,email"`
	AdminPassword    string `json:"adminPassword" binding:"required,min=8"`
}

// OrganizationResponse is the API shape of an organization.
type OrganizationResponse struct {
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	Email          string `json:"email"`
}

// ToOrganizationResponse converts a domain organization.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: o.OrganizationID,
		Name:           o.Name,
		Email:          o.Email,
	}
}

// RegisterOrganizationResponse returns the new organization and its admin.
type RegisterOrganizationResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Admin        UserResponse         `json:"admin"`
}
