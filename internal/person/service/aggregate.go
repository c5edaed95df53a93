package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"personlink/internal/person/models"
	"personlink/internal/person/tracer"
)

// AllProperties carries the result of the concurrent aggregate read. Fields
// whose read failed are left zero-valued and reported in Errors keyed by
// property name; a failure in one field never suppresses the others.
type AllProperties struct {
	Birthday       string
	Students       []models.RelationRecord
	PoliticalParty []models.RelationRecord
	Supervisors    []models.RelationRecord
	Errors         map[string]error
}

// AllProperties reads every supported property of the entity concurrently.
// Each goroutine writes only its own slot, and the closures always return
// nil so one slow or failed read cannot cancel its siblings through the
// group context.
func (s *Service) AllProperties(ctx context.Context, id models.EntityID) AllProperties {
	ctx, span := s.tracer.Start(ctx, tracer.SpanAll,
		tracer.String(tracer.AttrEntityID, string(id)),
	)

	var (
		out  AllProperties
		errs [4]error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.Birthday, errs[0] = s.Birthdate(gctx, id)
		return nil
	})
	g.Go(func() error {
		out.Students, errs[1] = s.Students(gctx, id)
		return nil
	})
	g.Go(func() error {
		out.PoliticalParty, errs[2] = s.PoliticalParty(gctx, id)
		return nil
	})
	g.Go(func() error {
		out.Supervisors, errs[3] = s.Supervisors(gctx, id)
		return nil
	})
	_ = g.Wait()

	for i, name := range []string{propertyBirthday, propertyStudents, propertyParty, propertySupervisor} {
		if errs[i] != nil {
			if out.Errors == nil {
				out.Errors = make(map[string]error, 4)
			}
			out.Errors[name] = errs[i]
		}
	}

	span.SetAttributes(tracer.Int64(tracer.AttrResultCount, int64(4-len(out.Errors))))
	span.End(nil)
	return out
}
