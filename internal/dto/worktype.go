package dto

import "github.com/SaPok5/prs-sub001/internal/core/domain"

// CreateWorkTypeRequest adds a work-type category.
type CreateWorkTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateSourceTypeRequest adds a deal-source category.
type CreateSourceTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// WorkTypeResponse is the API shape of a work type.
type WorkTypeResponse struct {
	WorkTypeID string `json:"workTypeID"`
	Name       string `json:"name"`
}

// SourceTypeResponse is the API shape of a source type.
type SourceTypeResponse struct {
	SourceTypeID string `json:"sourceTypeID"`
	Name         string `json:"name"`
}

// ToWorkTypeResponse converts a domain work type.
func ToWorkTypeResponse(w *domain.WorkType) WorkTypeResponse {
	return WorkTypeResponse{WorkTypeID: w.WorkTypeID, Name: w.Name}
}

// ToSourceTypeResponse converts a domain source type.
func ToSourceTypeResponse(s *domain.SourceType) SourceTypeResponse {
	return SourceTypeResponse{SourceTypeID: s.SourceTypeID, Name: s.Name}
}
