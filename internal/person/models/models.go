// Package models holds the request-scoped domain types for person resolution.
// Nothing here is persisted or cached between calls.
package models

// EntityID is an opaque knowledge-base item identifier (QID-style).
// The provider defines the format; we only compare and pass it through.
type EntityID string

func (id EntityID) String() string { return string(id) }

// Candidate is a raw, unscored entity-search hit for a name.
// Search may return the same id more than once across calls, so callers
// deduplicate by id while preserving first-seen order.
type Candidate struct {
	ID    EntityID
	Label string
}

// EnrichedCandidate is a Candidate annotated with the disambiguation
// features pulled by the batched enrichment query.
//
// Invariant: HasBirthdate is true iff Birthdate is non-empty.
type EnrichedCandidate struct {
	ID    EntityID
	Label string

	IsHuman        bool
	HasBirthdate   bool
	LocaleAffinity bool
	// Popularity is a non-negative prominence proxy (sitelink count).
	Popularity int
	// Birthdate is an ISO YYYY-MM-DD date, or empty when unknown.
	// When an entity carries several birthdate values the batch query
	// surfaces an arbitrary one; that nondeterminism is accepted.
	Birthdate string
}

// ResolvedEntity is the single winner of a resolution.
// Label is in the canonical output language regardless of input language.
type ResolvedEntity struct {
	ID    EntityID
	Label string
}

// RelationRecord is one row of a relation (student, party, supervisor).
type RelationRecord struct {
	ID    EntityID `json:"qid"`
	Label string   `json:"label"`
}
