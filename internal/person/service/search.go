package service

import (
	"context"
	"time"

	"personlink/internal/person/models"
	"personlink/internal/person/tracer"
)

// searchCandidates tries each configured language hint in order and returns
// the first non-empty result set (results are never merged across
// languages). An empty slice with a nil error means no language produced
// candidates; a transport failure from any call propagates immediately.
func (s *Service) searchCandidates(ctx context.Context, person string) ([]models.Candidate, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanSearch,
		tracer.String(tracer.AttrPerson, person),
	)

	for _, lang := range s.cfg.Languages {
		start := time.Now()
		candidates, err := s.searcher.SearchEntities(ctx, person, lang, s.cfg.SearchLimit)
		s.observeUpstream("search", time.Since(start))
		if err != nil {
			span.End(err)
			return nil, err
		}
		if len(candidates) > 0 {
			span.SetAttributes(
				tracer.String(tracer.AttrLanguage, lang),
				tracer.Int64(tracer.AttrCandidates, int64(len(candidates))),
			)
			span.End(nil)
			return candidates, nil
		}
	}

	span.End(nil)
	return nil, nil
}
