// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fineract-offline-sync/models"
)

const (
	clientPayloadsTable = "client_payloads"
	groupPayloadsTable  = "group_payloads"
)

var clientPayloadColumns = []string{
	"id",
	"first_name",
	"middle_name",
	"last_name",
	"office_id",
	"staff_id",
	"gender_id",
	"legal_form_id",
	"mobile_no",
	"external_id",
	"date_of_birth",
	"active",
	"activation_date",
	"submitted_on_date",
	"locale",
	"date_format",
	"error_message",
	"created_at",
}

var groupPayloadColumns = []string{
	"id",
	"name",
	"office_id",
	"staff_id",
	"center_id",
	"external_id",
	"active",
	"activation_date",
	"submitted_on_date",
	"locale",
	"date_format",
	"error_message",
	"created_at",
}

// stampCreatedAt returns t, or the current time when t is zero. Stored times
// are UTC with microsecond precision so that they compare equal after a
// round trip through either database.
func stampCreatedAt(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Truncate(time.Microsecond)
}

func buildSelectPayloadsQuery(b sq.StatementBuilderType, table string, columns []string) (string, []any, error) {
	return b.Select(columns...).
		From(table).
		OrderBy("id ASC").
		ToSql()
}

func buildSelectPayloadQuery(b sq.StatementBuilderType, table string, columns []string, id int64) (string, []any, error) {
	return b.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeletePayloadQuery(b sq.StatementBuilderType, table string, id int64, createdAt time.Time) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{"id": id, "created_at": createdAt.UTC()}).
		ToSql()
}

func buildInsertClientPayloadQuery(b sq.StatementBuilderType, p models.ClientPayload) (string, []any, error) {
	return b.Insert(clientPayloadsTable).
		Columns(clientPayloadColumns[1:]...).
		Values(
			p.FirstName,
			p.MiddleName,
			p.LastName,
			p.OfficeID,
			p.StaffID,
			p.GenderID,
			p.LegalFormID,
			p.MobileNo,
			p.ExternalID,
			p.DateOfBirth,
			p.Active,
			p.ActivationDate,
			p.SubmittedOn,
			p.Locale,
			p.DateFormat,
			p.ErrorMessage,
			p.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateClientPayloadQuery(b sq.StatementBuilderType, p models.ClientPayload) (string, []any, error) {
	return b.Update(clientPayloadsTable).
		SetMap(map[string]any{
			"first_name":        p.FirstName,
			"middle_name":       p.MiddleName,
			"last_name":         p.LastName,
			"office_id":         p.OfficeID,
			"staff_id":          p.StaffID,
			"gender_id":         p.GenderID,
			"legal_form_id":     p.LegalFormID,
			"mobile_no":         p.MobileNo,
			"external_id":       p.ExternalID,
			"date_of_birth":     p.DateOfBirth,
			"active":            p.Active,
			"activation_date":   p.ActivationDate,
			"submitted_on_date": p.SubmittedOn,
			"locale":            p.Locale,
			"date_format":       p.DateFormat,
			"error_message":     p.ErrorMessage,
		}).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
}

func buildInsertGroupPayloadQuery(b sq.StatementBuilderType, p models.GroupPayload) (string, []any, error) {
	return b.Insert(groupPayloadsTable).
		Columns(groupPayloadColumns[1:]...).
		Values(
			p.Name,
			p.OfficeID,
			p.StaffID,
			p.CenterID,
			p.ExternalID,
			p.Active,
			p.ActivationDate,
			p.SubmittedOn,
			p.Locale,
			p.DateFormat,
			p.ErrorMessage,
			p.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateGroupPayloadQuery(b sq.StatementBuilderType, p models.GroupPayload) (string, []any, error) {
	return b.Update(groupPayloadsTable).
		SetMap(map[string]any{
			"name":              p.Name,
			"office_id":         p.OfficeID,
			"staff_id":          p.StaffID,
			"center_id":         p.CenterID,
			"external_id":       p.ExternalID,
			"active":            p.Active,
			"activation_date":   p.ActivationDate,
			"submitted_on_date": p.SubmittedOn,
			"locale":            p.Locale,
			"date_format":       p.DateFormat,
			"error_message":     p.ErrorMessage,
		}).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClientPayload(row rowScanner) (models.ClientPayload, error) {
	var (
		p            models.ClientPayload
		staffID      sql.NullInt64
		genderID     sql.NullInt64
		errorMessage sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.MiddleName,
		&p.LastName,
		&p.OfficeID,
		&staffID,
		&genderID,
		&p.LegalFormID,
		&p.MobileNo,
		&p.ExternalID,
		&p.DateOfBirth,
		&p.Active,
		&p.ActivationDate,
		&p.SubmittedOn,
		&p.Locale,
		&p.DateFormat,
		&errorMessage,
		&p.CreatedAt,
	)
	if err != nil {
		return models.ClientPayload{}, err
	}

	p.StaffID = nullInt64Ptr(staffID)
	p.GenderID = nullInt64Ptr(genderID)
	p.ErrorMessage = nullStringPtr(errorMessage)
	p.CreatedAt = p.CreatedAt.UTC()

	return p, nil
}

func scanGroupPayload(row rowScanner) (models.GroupPayload, error) {
	var (
		p            models.GroupPayload
		staffID      sql.NullInt64
		centerID     sql.NullInt64
		errorMessage sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.OfficeID,
		&staffID,
		&centerID,
		&p.ExternalID,
		&p.Active,
		&p.ActivationDate,
		&p.SubmittedOn,
		&p.Locale,
		&p.DateFormat,
		&errorMessage,
		&p.CreatedAt,
	)
	if err != nil {
		return models.GroupPayload{}, err
	}

	p.StaffID = nullInt64Ptr(staffID)
	p.CenterID = nullInt64Ptr(centerID)
	p.ErrorMessage = nullStringPtr(errorMessage)
	p.CreatedAt = p.CreatedAt.UTC()

	return p, nil
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
