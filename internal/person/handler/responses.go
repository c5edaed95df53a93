package handler

import (
	"errors"

	"personlink/internal/person/models"
	"personlink/internal/person/service"
	dErrors "personlink/pkg/domain-errors"
	"personlink/pkg/platform/httputil"
)

// BirthdayResponse is the reply for a birthday lookup.
// Birthday is null when the resolved entity has no recorded birthdate.
type BirthdayResponse struct {
	Person   string  `json:"person"`
	QID      string  `json:"qid"`
	Birthday *string `json:"birthday"`
}

// StudentsResponse is the reply for a students lookup.
type StudentsResponse struct {
	Person   string                  `json:"person"`
	QID      string                  `json:"qid"`
	Students []models.RelationRecord `json:"students"`
}

// PoliticalPartyResponse is the reply for a party lookup.
type PoliticalPartyResponse struct {
	Person         string                  `json:"person"`
	QID            string                  `json:"qid"`
	PoliticalParty []models.RelationRecord `json:"political_party"`
}

// SupervisorsResponse is the reply for a supervisors lookup.
type SupervisorsResponse struct {
	Person      string                  `json:"person"`
	QID         string                  `json:"qid"`
	Supervisors []models.RelationRecord `json:"supervisors"`
}

// AllResponse is the reply for the aggregate lookup. Fields whose read
// failed are zero-valued and named in Errors with their error code.
type AllResponse struct {
	Person         string                  `json:"person"`
	QID            string                  `json:"qid"`
	Birthday       *string                 `json:"birthday"`
	Students       []models.RelationRecord `json:"students"`
	PoliticalParty []models.RelationRecord `json:"political_party"`
	Supervisors    []models.RelationRecord `json:"supervisors"`
	Errors         map[string]string       `json:"errors,omitempty"`
}

// nullableDate maps an empty date to JSON null.
func nullableDate(date string) *string {
	if date == "" {
		return nil
	}
	return &date
}

// nonNilRecords keeps relation arrays rendering as [] instead of null.
func nonNilRecords(records []models.RelationRecord) []models.RelationRecord {
	if records == nil {
		return []models.RelationRecord{}
	}
	return records
}

// errorCodes flattens per-field errors into their wire error codes.
func errorCodes(errs map[string]error) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for field, err := range errs {
		code := dErrors.CodeInternal
		var domainErr *dErrors.Error
		if errors.As(err, &domainErr) {
			code = domainErr.Code
		}
		out[field] = httputil.DomainCodeToHTTPCode(code)
	}
	return out
}

// newAllResponse assembles the aggregate reply from the concurrent read.
func newAllResponse(entity models.ResolvedEntity, all service.AllProperties) *AllResponse {
	return &AllResponse{
		Person:         entity.Label,
		QID:            string(entity.ID),
		Birthday:       nullableDate(all.Birthday),
		Students:       nonNilRecords(all.Students),
		PoliticalParty: nonNilRecords(all.PoliticalParty),
		Supervisors:    nonNilRecords(all.Supervisors),
		Errors:         errorCodes(all.Errors),
	}
}
