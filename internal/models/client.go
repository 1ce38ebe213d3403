package models

import "database/sql"

// Client mirrors the clients table. ClientSerial is the numeric part of
// the org-scoped client number.
type Client struct {
	ClientID       string         `db:"client_id"`
	ClientSerial   int            `db:"client_serial"`
	FullName       string         `db:"full_name"`
	Email          sql.NullString `db:"email"`
	Contact        sql.NullString `db:"contact"`
	Nationality    sql.NullString `db:"nationality"`
	OrganizationID string         `db:"organization_id"`
	AuditFields
}
