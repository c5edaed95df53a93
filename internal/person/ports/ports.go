// Package ports defines the two injected upstream capabilities the person
// domain depends on. Implementations live in internal/wikidata; tests use
// generated mocks.
package ports

import (
	"context"

	"personlink/internal/person/models"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks EntitySearcher,QueryRunner

// Value is one bound value inside a structured-query result row.
type Value struct {
	Type  string
	Value string
}

// Row maps a query variable name to its bound value.
// Absent (OPTIONAL) variables are simply missing from the map.
type Row map[string]Value

// EntitySearcher performs textual entity search with a language hint.
// An empty result list is valid and is not an error.
type EntitySearcher interface {
	SearchEntities(ctx context.Context, query, language string, limit int) ([]models.Candidate, error)
}

// QueryRunner executes a structured (SPARQL-style) SELECT query and returns
// its binding rows. The backend must support boolean existence-check
// projections, OPTIONAL-style absent-field tolerance, and UNION/alternative
// relation paths; the exact query language is an implementation detail.
type QueryRunner interface {
	RunStructuredQuery(ctx context.Context, query string) ([]Row, error)
}
