package dto

import (
	"github.com/SaPok5/prs-sub001/internal/core/domain"
)

// CreateClientRequest registers a client under the caller's organization.
type CreateClientRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Contact     string `json:"contact"`
	Nationality string `json:"nationality"`
}

// UpdateClientRequest patches client fields.
type UpdateClientRequest struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Contact     *string `json:"contact"`
	Nationality *string `json:"nationality"`
}

// ListClientsParams pages through an organization's clients.
type ListClientsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ClientResponse is the API shape of a client.
type ClientResponse struct {
	ClientID     string `json:"clientID"`
	ClientNumber string `json:"clientNumber"`
	FullName     string `json:"fullName"`
	Email        string `json:"email,omitempty"`
	Contact      string `json:"contact,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
}

// ToClientResponse converts a domain client to its API shape.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:     c.ClientID,
		ClientNumber: c.ClientNumber,
		FullName:     c.FullName,
		Email:        c.Email,
		Contact:      c.Contact,
		Nationality:  c.Nationality,
	}
}

// ToClientResponses converts a slice of domain clients.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out
}

// ListClientsResponse wraps a page of clients.
type ListClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	NextToken *string          `json:"nextToken,omitempty"`
}
