package mapping

import (
	"database/sql"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/SaPok5/prs-sub001/internal/models"
	"github.com/SaPok5/prs-sub001/internal/utils"
)

// ClientSerialPrefix prefixes the numeric serial in client numbers.
const ClientSerialPrefix = "CL"

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	serial, _ := utils.ParseSerial(d.ClientNumber)
	m := models.Client{
		ClientID:       d.ClientID,
		ClientSerial:   serial,
		FullName:       d.FullName,
		OrganizationID: d.OrganizationID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.Email != "" {
		m.Email = sql.NullString{String: d.Email, Valid: true}
	}
	if d.Contact != "" {
		m.Contact = sql.NullString{String: d.Contact, Valid: true}
	}
	if d.Nationality != "" {
		m.Nationality = sql.NullString{String: d.Nationality, Valid: true}
	}
	return m
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:       m.ClientID,
		ClientNumber:   utils.FormatSerial(ClientSerialPrefix, m.ClientSerial),
		FullName:       m.FullName,
		Email:          m.Email.String,
		Contact:        m.Contact.String,
		Nationality:    m.Nationality.String,
		OrganizationID: m.OrganizationID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
