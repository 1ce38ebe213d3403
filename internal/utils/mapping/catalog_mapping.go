package mapping

import (
	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/SaPok5/prs-sub001/internal/models"
)

// ToModelWorkType converts a domain WorkType to a model WorkType
func ToModelWorkType(d domain.WorkType) models.WorkType {
	return models.WorkType{
		WorkTypeID:     d.WorkTypeID,
		Name:           d.Name,
		OrganizationID: d.OrganizationID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkType converts a model WorkType to a domain WorkType
func ToDomainWorkType(m models.WorkType) domain.WorkType {
	return domain.WorkType{
		WorkTypeID:     m.WorkTypeID,
		Name:           m.Name,
		OrganizationID: m.OrganizationID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkTypeSlice converts model WorkTypes to domain WorkTypes
func ToDomainWorkTypeSlice(ms []models.WorkType) []domain.WorkType {
	ds := make([]domain.WorkType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkType(m)
	}
	return ds
}

// ToModelSourceType converts a domain SourceType to a model SourceType
func ToModelSourceType(d domain.SourceType) models.SourceType {
	return models.SourceType{
		SourceTypeID:   d.SourceTypeID,
		Name:           d.Name,
		OrganizationID: d.OrganizationID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSourceType converts a model SourceType to a domain SourceType
func ToDomainSourceType(m models.SourceType) domain.SourceType {
	return domain.SourceType{
		SourceTypeID:   m.SourceTypeID,
		Name:           m.Name,
		OrganizationID: m.OrganizationID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSourceTypeSlice converts model SourceTypes to domain SourceTypes
func ToDomainSourceTypeSlice(ms []models.SourceType) []domain.SourceType {
	ds := make([]domain.SourceType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSourceType(m)
	}
	return ds
}

// ToModelOffer converts a domain Offer to a model Offer
func ToModelOffer(d domain.Offer) models.Offer {
	return models.Offer{
		OfferID:         d.OfferID,
		Name:            d.Name,
		DiscountPercent: d.DiscountPercent,
		IsActive:        d.IsActive,
		OrganizationID:  d.OrganizationID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOffer converts a model Offer to a domain Offer
func ToDomainOffer(m models.Offer) domain.Offer {
	return domain.Offer{
		OfferID:         m.OfferID,
		Name:            m.Name,
		DiscountPercent: m.DiscountPercent,
		IsActive:        m.IsActive,
		OrganizationID:  m.OrganizationID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOfferSlice converts model Offers to domain Offers
func ToDomainOfferSlice(ms []models.Offer) []domain.Offer {
	ds := make([]domain.Offer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOffer(m)
	}
	return ds
}
