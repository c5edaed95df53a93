package models

import (
	s "personlink/pkg/string"
	"personlink/pkg/validation"
)

// PersonRequest is the client-facing request shape shared by every lookup
// endpoint: a free-text person name plus optional disambiguation context.
//
// Context is accepted for future use but does not influence resolution today.
type PersonRequest struct {
	Person  string `json:"person" validate:"required,notblank,max=256"`
	Context string `json:"context,omitempty" validate:"max=1024"`
}

// Sanitize trims surrounding whitespace from all fields.
func (r *PersonRequest) Sanitize() {
	s.TrimStrings(&r.Person, &r.Context)
}

// Validate checks structural constraints on the request.
func (r *PersonRequest) Validate() error {
	return validation.Validate(r)
}
