package mapping

import (
	"database/sql"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/SaPok5/prs-sub001/internal/models"
	"github.com/SaPok5/prs-sub001/internal/utils"
)

// DealSerialPrefix prefixes the numeric serial in deal numbers.
const DealSerialPrefix = "DL"

// ToModelDeal converts a domain Deal to a model Deal.
// The numeric serial is parsed back out of the deal number.
func ToModelDeal(d domain.Deal) models.Deal {
	serial, _ := utils.ParseSerial(d.DealNumber)
	m := models.Deal{
		DealID:         d.DealID,
		DealSerial:     serial,
		DealName:       d.DealName,
		ClientID:       d.ClientID,
		WorkTypeID:     d.WorkTypeID,
		SourceTypeID:   d.SourceTypeID,
		DealValue:      d.DealValue,
		DealDate:       d.DealDate,
		DueDate:        d.DueDate,
		UserID:         d.UserID,
		OrganizationID: d.OrganizationID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.Remarks != "" {
		m.Remarks = sql.NullString{String: d.Remarks, Valid: true}
	}
	return m
}

// ToDomainDeal converts a model Deal to a domain Deal
func ToDomainDeal(m models.Deal) domain.Deal {
	return domain.Deal{
		DealID:         m.DealID,
		DealNumber:     utils.FormatSerial(DealSerialPrefix, m.DealSerial),
		DealName:       m.DealName,
		ClientID:       m.ClientID,
		WorkTypeID:     m.WorkTypeID,
		SourceTypeID:   m.SourceTypeID,
		DealValue:      m.DealValue,
		DealDate:       m.DealDate,
		DueDate:        m.DueDate,
		Remarks:        m.Remarks.String,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDealSlice converts a slice of model Deals to domain Deals
func ToDomainDealSlice(ms []models.Deal) []domain.Deal {
	ds := make([]domain.Deal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeal(m)
	}
	return ds
}
