package service

import (
	"context"
	"strings"
	"time"

	"personlink/internal/person/models"
	"personlink/internal/person/tracer"
	dErrors "personlink/pkg/domain-errors"
	pstrings "personlink/pkg/platform/strings"
)

// Resolution outcome labels for metrics.
const (
	outcomeResolved = "resolved"
	outcomeNotFound = "not_found"
	outcomeFallback = "fallback"
	outcomeError    = "error"
)

// Resolve maps a free-text person name to exactly one knowledge-base entity,
// or fails with not_found when no language hint yields candidates.
//
// hint is client-supplied disambiguation context. It is accepted for future
// use and deliberately does not influence filtering or scoring today; this
// is a documented limitation, not an omission to fix quietly here.
func (s *Service) Resolve(ctx context.Context, person, hint string) (models.ResolvedEntity, error) {
	_ = hint

	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveResolveLatency(time.Since(start))
		}
	}()

	ctx, span := s.tracer.Start(ctx, tracer.SpanResolve,
		tracer.String(tracer.AttrPerson, person),
	)

	candidates, err := s.searchCandidates(ctx, person)
	if err != nil {
		s.incrementResolution(outcomeError)
		span.End(err)
		return models.ResolvedEntity{}, err
	}
	if len(candidates) == 0 {
		s.incrementResolution(outcomeNotFound)
		notFound := dErrors.New(dErrors.CodeNotFound, "no matching entity found")
		span.End(notFound)
		return models.ResolvedEntity{}, notFound
	}

	ids := s.candidateIDs(candidates)

	enriched := s.enrichCandidates(ctx, ids)
	if len(enriched) == 0 {
		// Enrichment produced nothing despite raw candidates existing. A
		// degraded, unscored resolution beats a hard failure when only the
		// scoring signal is missing.
		top := candidates[0]
		label := top.Label
		if label == "" {
			label = person
		}
		if s.metrics != nil {
			s.metrics.IncrementEnrichmentFallback()
		}
		s.incrementResolution(outcomeFallback)
		if s.logger != nil {
			s.logger.WarnContext(ctx, "resolved from raw search candidate without scoring",
				"person", person,
				"entity_id", top.ID,
			)
		}
		span.AddEvent(tracer.EventEnrichmentFallback)
		span.End(nil)
		return models.ResolvedEntity{ID: top.ID, Label: label}, nil
	}

	pool := filterPool(enriched)
	best := s.pickBest(pool, person)

	label := best.Label
	if label == "" {
		label = person
	}

	s.incrementResolution(outcomeResolved)
	span.SetAttributes(
		tracer.String(tracer.AttrEntityID, string(best.ID)),
		tracer.Int64(tracer.AttrEnriched, int64(len(enriched))),
	)
	span.End(nil)
	return models.ResolvedEntity{ID: best.ID, Label: label}, nil
}

// candidateIDs deduplicates candidate ids in encounter order and caps the
// result at CandidateCap for the enrichment batch.
func (s *Service) candidateIDs(candidates []models.Candidate) []models.EntityID {
	raw := make([]string, 0, len(candidates))
	for _, c := range candidates {
		raw = append(raw, string(c.ID))
	}

	deduped := pstrings.DedupeAndTrim(raw)
	if len(deduped) > s.cfg.CandidateCap {
		deduped = deduped[:s.cfg.CandidateCap]
	}

	ids := make([]models.EntityID, len(deduped))
	for i, id := range deduped {
		ids[i] = models.EntityID(id)
	}
	return ids
}

// filterPool narrows the enriched set to humans, then to those with a known
// birthdate, keeping the previous pool whenever a filter would empty it.
// A person-only filter must never zero out the pool through caller confusion.
func filterPool(enriched []models.EnrichedCandidate) []models.EnrichedCandidate {
	pool := enriched

	humans := make([]models.EnrichedCandidate, 0, len(pool))
	for _, c := range pool {
		if c.IsHuman {
			humans = append(humans, c)
		}
	}
	if len(humans) > 0 {
		pool = humans
	}

	withBirthdate := make([]models.EnrichedCandidate, 0, len(pool))
	for _, c := range pool {
		if c.HasBirthdate {
			withBirthdate = append(withBirthdate, c)
		}
	}
	if len(withBirthdate) > 0 {
		pool = withBirthdate
	}

	return pool
}

// pickBest returns the first maximal-scoring candidate in pool order.
// Ties keep the earlier candidate; which of two tied candidates wins is an
// accepted don't-care, not a guaranteed disambiguation.
func (s *Service) pickBest(pool []models.EnrichedCandidate, person string) models.EnrichedCandidate {
	token := strings.ToLower(strings.TrimSpace(person))
	short := isShortName(token)

	best := pool[0]
	bestScore := s.scoreCandidate(best, token, short)
	for _, c := range pool[1:] {
		if score := s.scoreCandidate(c, token, short); score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// scoreCandidate computes the fixed weighted sum for one candidate.
// Human and birthdate are the strong signals; the locale bonus only applies
// to short inputs, where a bare surname or initials give little else to go on.
func (s *Service) scoreCandidate(c models.EnrichedCandidate, token string, short bool) float64 {
	var score float64
	if c.IsHuman {
		score += s.scoring.Human
	}
	if c.HasBirthdate {
		score += s.scoring.Birthdate
	}
	if short && c.LocaleAffinity {
		score += s.scoring.Locale
	}
	if token != "" && strings.Contains(strings.ToLower(c.Label), token) {
		score += s.scoring.Substring
	}
	score += s.scoring.Popularity * float64(c.Popularity)
	return score
}

// isShortName reports whether the lowercased input is a single
// whitespace-delimited token or carries a period, the heuristic for
// honorific-abbreviated or mononym inputs like "Rasmussen" or "H.C.".
func isShortName(token string) bool {
	return len(strings.Fields(token)) == 1 || strings.Contains(token, ".")
}
