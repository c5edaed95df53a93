package service

import (
	"context"
	"time"

	"personlink/internal/person/models"
	"personlink/internal/person/ports"
	"personlink/internal/person/tracer"
)

// enrichCandidates annotates up to CandidateCap ids with disambiguation
// features using one batched query. The single round trip is load-bearing
// for latency; never replace it with per-id calls.
//
// A query failure or an empty result set both yield an empty list - the
// resolver falls back to the raw search candidate in that case, so
// enrichment never fails a resolution on its own.
func (s *Service) enrichCandidates(ctx context.Context, ids []models.EntityID) []models.EnrichedCandidate {
	if len(ids) == 0 {
		return nil
	}
	if len(ids) > s.cfg.CandidateCap {
		ids = ids[:s.cfg.CandidateCap]
	}

	ctx, span := s.tracer.Start(ctx, tracer.SpanEnrich,
		tracer.Int64(tracer.AttrCandidates, int64(len(ids))),
	)

	start := time.Now()
	rows, err := s.runner.RunStructuredQuery(ctx, enrichmentQuery(ids, s.cfg.LocaleQID))
	s.observeUpstream("query", time.Since(start))
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "candidate enrichment failed, resolver will fall back",
				"error", err,
				"candidates", len(ids),
			)
		}
		span.End(err)
		return nil
	}

	out := parseEnrichedRows(rows)
	span.SetAttributes(tracer.Int64(tracer.AttrEnriched, int64(len(out))))
	span.End(nil)
	return out
}

// parseEnrichedRows converts binding rows into enriched candidates,
// deduplicating by id in first-occurrence order. An entity with several
// birthdate values binds several rows; keeping the first one is the accepted
// "arbitrary which one" nondeterminism.
func parseEnrichedRows(rows []ports.Row) []models.EnrichedCandidate {
	seen := make(map[string]struct{}, len(rows))
	out := make([]models.EnrichedCandidate, 0, len(rows))

	for _, r := range rows {
		qid := qidFromURI(r["item"].Value)
		if qid == "" {
			continue
		}
		if _, ok := seen[qid]; ok {
			continue
		}
		seen[qid] = struct{}{}

		dob := normalizeDate(r["dob"].Value)
		out = append(out, models.EnrichedCandidate{
			ID:             models.EntityID(qid),
			Label:          r["itemLabel"].Value,
			IsHuman:        boolBinding(r, "isHuman"),
			HasBirthdate:   boolBinding(r, "hasDob") && dob != "",
			LocaleAffinity: boolBinding(r, "isLocal"),
			Popularity:     intBinding(r, "sitelinks"),
			Birthdate:      dob,
		})
	}

	return out
}
