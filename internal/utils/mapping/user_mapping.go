package mapping

import (
	"database/sql"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	"github.com/SaPok5/prs-sub001/internal/models"
	"github.com/SaPok5/prs-sub001/internal/utils"
)

// EmployeeSerialPrefix prefixes the numeric serial in employee numbers.
const EmployeeSerialPrefix = "EMP"

// ToModelUser converts a domain User plus its password hash to a model User.
// The hash travels outside the domain type so it never leaks through the API.
func ToModelUser(d domain.User, passwordHash string) models.User {
	serial, _ := utils.ParseSerial(d.EmployeeNumber)
	m := models.User{
		UserID:            d.UserID,
		EmployeeSerial:    serial,
		FullName:          d.FullName,
		Email:             d.Email,
		PasswordHash:      passwordHash,
		Roles:             RolesToStrings(d.Roles),
		OrganizationID:    d.OrganizationID,
		CurrencyCode:      d.CurrencyCode,
		CommissionPercent: d.CommissionPercent,
		Bonus:             d.Bonus,
		AuditFields:       ToModelAuditFields(d.AuditFields),
		DeletedAt:         d.DeletedAt,
	}
	if teamID, ok := d.Assignment.Team(); ok {
		m.TeamID = sql.NullString{String: teamID, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	assignment := domain.Unscoped()
	if m.TeamID.Valid {
		assignment = domain.TeamScoped(m.TeamID.String)
	}
	return domain.User{
		UserID:            m.UserID,
		EmployeeNumber:    utils.FormatSerial(EmployeeSerialPrefix, m.EmployeeSerial),
		FullName:          m.FullName,
		Email:             m.Email,
		Assignment:        assignment,
		Roles:             StringsToRoles(m.Roles),
		OrganizationID:    m.OrganizationID,
		CurrencyCode:      m.CurrencyCode,
		CommissionPercent: m.CommissionPercent,
		Bonus:             m.Bonus,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
		DeletedAt:         m.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of model Users to domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

// RolesToStrings flattens role names for the text[] column.
func RolesToStrings(roles []domain.RoleName) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// StringsToRoles parses the text[] column back into role names.
func StringsToRoles(values []string) []domain.RoleName {
	out := make([]domain.RoleName, len(values))
	for i, v := range values {
		out[i] = domain.RoleName(v)
	}
	return out
}
