package service

import (
	"context"
	"sort"
	"time"

	"personlink/internal/person/models"
	"personlink/internal/person/ports"
	"personlink/internal/person/tracer"
)

// Property names used for metrics labels and aggregate error keys.
const (
	propertyBirthday   = "birthday"
	propertyStudents   = "students"
	propertyParty      = "political_party"
	propertySupervisor = "supervisors"
)

// Birthdate returns the entity's birthdate as YYYY-MM-DD, or "" when the
// entity has none. When the source holds several birthdate values the
// lexicographically smallest normalized date wins, which keeps repeated
// reads deterministic.
func (s *Service) Birthdate(ctx context.Context, id models.EntityID) (string, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanBirthdate,
		tracer.String(tracer.AttrEntityID, string(id)),
	)

	rows, err := s.runProperty(ctx, propertyBirthday, birthdateQuery(id))
	if err != nil {
		span.End(err)
		return "", err
	}

	dates := make([]string, 0, len(rows))
	for _, r := range rows {
		if d := normalizeDate(r["dob"].Value); d != "" {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		span.End(nil)
		return "", nil
	}

	sort.Strings(dates)
	span.SetAttributes(tracer.Int64(tracer.AttrResultCount, int64(len(dates))))
	span.End(nil)
	return dates[0], nil
}

// Students returns everyone the entity taught, across all four relation
// paths, deduplicated by id in encounter order. An empty result is a valid
// answer, not an error.
func (s *Service) Students(ctx context.Context, id models.EntityID) ([]models.RelationRecord, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanStudents,
		tracer.String(tracer.AttrEntityID, string(id)),
	)

	rows, err := s.runProperty(ctx, propertyStudents, studentsQuery(id))
	if err != nil {
		span.End(err)
		return nil, err
	}

	out := relationRecords(rows, "student", "studentLabel")
	span.SetAttributes(tracer.Int64(tracer.AttrResultCount, int64(len(out))))
	span.End(nil)
	return out, nil
}

// PoliticalParty returns the entity's party memberships sorted by (label, id).
func (s *Service) PoliticalParty(ctx context.Context, id models.EntityID) ([]models.RelationRecord, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanParty,
		tracer.String(tracer.AttrEntityID, string(id)),
	)

	rows, err := s.runProperty(ctx, propertyParty, politicalPartyQuery(id))
	if err != nil {
		span.End(err)
		return nil, err
	}

	out := relationRecords(rows, "party", "partyLabel")
	sortRelations(out)
	span.SetAttributes(tracer.Int64(tracer.AttrResultCount, int64(len(out))))
	span.End(nil)
	return out, nil
}

// Supervisors returns the entity's advisors and teachers sorted by (label, id).
func (s *Service) Supervisors(ctx context.Context, id models.EntityID) ([]models.RelationRecord, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanSupervisor,
		tracer.String(tracer.AttrEntityID, string(id)),
	)

	rows, err := s.runProperty(ctx, propertySupervisor, supervisorsQuery(id))
	if err != nil {
		span.End(err)
		return nil, err
	}

	out := relationRecords(rows, "supervisor", "supervisorLabel")
	sortRelations(out)
	span.SetAttributes(tracer.Int64(tracer.AttrResultCount, int64(len(out))))
	span.End(nil)
	return out, nil
}

// runProperty executes one property query with latency and outcome metrics.
func (s *Service) runProperty(ctx context.Context, property, query string) ([]ports.Row, error) {
	start := time.Now()
	rows, err := s.runner.RunStructuredQuery(ctx, query)
	s.observeUpstream("query", time.Since(start))
	if err != nil {
		s.incrementPropertyRead(property, "error")
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "property read failed",
				"property", property,
				"error", err,
			)
		}
		return nil, err
	}
	s.incrementPropertyRead(property, "ok")
	return rows, nil
}

// relationRecords converts binding rows into relation records, dropping rows
// without an id and deduplicating by id in first-occurrence order. A label
// that is absent or merely echoes the bare id stays empty.
func relationRecords(rows []ports.Row, entityVar, labelVar string) []models.RelationRecord {
	seen := make(map[string]struct{}, len(rows))
	out := make([]models.RelationRecord, 0, len(rows))

	for _, r := range rows {
		qid := qidFromURI(r[entityVar].Value)
		if qid == "" {
			continue
		}
		if _, ok := seen[qid]; ok {
			continue
		}
		seen[qid] = struct{}{}

		label := r[labelVar].Value
		if label == qid {
			label = ""
		}
		out = append(out, models.RelationRecord{
			ID:    models.EntityID(qid),
			Label: label,
		})
	}

	return out
}

// sortRelations orders records by label, then id, for stable output.
func sortRelations(records []models.RelationRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Label != records[j].Label {
			return records[i].Label < records[j].Label
		}
		return records[i].ID < records[j].ID
	})
}
