package dto

import (
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateUserRequest creates an employee. TeamID empty means the user is
// unscoped (typical for verifiers).
type CreateUserRequest struct {
	FullName          string          `json:"fullName" binding:"required"`
	Email             string          `json:"email" binding:"required,email"`
	Password          string          `json:"password" binding:"required,min=8"`
	TeamID            string          `json:"teamID"`
	Roles             []string        `json:"roles" binding:"required,min=1"`
	CurrencyCode      string          `json:"currencyCode" binding:"omitempty,currencycode"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"`
	Bonus             decimal.Decimal `json:"bonus"`
}

// UpdateUserRequest patches user fields.
type UpdateUserRequest struct {
	FullName          *string          `json:"fullName"`
	TeamID            *string          `json:"teamID"` // empty string clears the team scope
	Roles             []string         `json:"roles"`
	CurrencyCode      *string          `json:"currencyCode" binding:"omitempty"`
	CommissionPercent *decimal.Decimal `json:"commissionPercent"`
	Bonus             *decimal.Decimal `json:"bonus"`
}

// ListUsersParams pages through an organization's users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the API shape of a user.
type UserResponse struct {
	UserID            string          `json:"userID"`
	EmployeeNumber    string          `json:"employeeNumber"`
	FullName          string          `json:"fullName"`
	Email             string          `json:"email"`
	TeamID            string          `json:"teamID,omitempty"`
	Roles             []string        `json:"roles"`
	Capabilities      []string        `json:"capabilities"`
	CurrencyCode      string          `json:"currencyCode"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"`
	Bonus             decimal.Decimal `json:"bonus"`
}

// ToUserResponse converts a domain user to its API shape. The capability
// list is computed here once so clients never branch on role strings.
func ToUserResponse(u *domain.User) UserResponse {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r)
	}
	caps := domain.CapabilitiesFor(u.Roles)
	capStrings := make([]string, len(caps))
	for i, c := range caps {
		capStrings[i] = string(c)
	}
	resp := UserResponse{
		UserID:            u.UserID,
		EmployeeNumber:    u.EmployeeNumber,
		FullName:          u.FullName,
		Email:             u.Email,
		Roles:             roles,
		Capabilities:      capStrings,
		CurrencyCode:      u.CurrencyCode,
		CommissionPercent: u.CommissionPercent,
		Bonus:             u.Bonus,
	}
	if teamID, ok := u.Assignment.Team(); ok {
		resp.TeamID = teamID
	}
	return resp
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain users.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
