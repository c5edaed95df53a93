// Package handler exposes the person lookup endpoints over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"personlink/internal/person/models"
	"personlink/internal/person/service"
	"personlink/internal/platform/middleware"
	"personlink/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/handler-mocks.go -package=mocks Service

// Service defines the person operations the handler depends on.
type Service interface {
	Resolve(ctx context.Context, person, hint string) (models.ResolvedEntity, error)
	Birthdate(ctx context.Context, id models.EntityID) (string, error)
	Students(ctx context.Context, id models.EntityID) ([]models.RelationRecord, error)
	PoliticalParty(ctx context.Context, id models.EntityID) ([]models.RelationRecord, error)
	Supervisors(ctx context.Context, id models.EntityID) ([]models.RelationRecord, error)
	AllProperties(ctx context.Context, id models.EntityID) service.AllProperties
}

// Handler handles person lookup endpoints.
type Handler struct {
	logger *slog.Logger
	person Service
}

// New creates a new person Handler.
func New(person Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		person: person,
	}
}

// Register registers the person lookup routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/birthday", h.handleBirthday)
	r.Post("/v1/students", h.handleStudents)
	r.Post("/v1/political-party", h.handlePoliticalParty)
	r.Post("/v1/supervisor", h.handleSupervisors)
	r.Post("/v1/all", h.handleAll)
}

// resolvePerson decodes the shared request shape and resolves the name.
// Returns ok=false after writing the error response.
func (h *Handler) resolvePerson(w http.ResponseWriter, r *http.Request) (models.ResolvedEntity, bool) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.PersonRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return models.ResolvedEntity{}, false
	}

	entity, err := h.person.Resolve(ctx, req.Person, req.Context)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to resolve person",
			"request_id", requestID,
			"person", req.Person,
			"error", err,
		)
		httputil.WriteError(w, err)
		return models.ResolvedEntity{}, false
	}

	return entity, true
}

func (h *Handler) handleBirthday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entity, ok := h.resolvePerson(w, r)
	if !ok {
		return
	}

	birthday, err := h.person.Birthdate(ctx, entity.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read birthdate",
			"request_id", middleware.GetRequestID(ctx),
			"qid", entity.ID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &BirthdayResponse{
		Person:   entity.Label,
		QID:      string(entity.ID),
		Birthday: nullableDate(birthday),
	})
}

func (h *Handler) handleStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entity, ok := h.resolvePerson(w, r)
	if !ok {
		return
	}

	students, err := h.person.Students(ctx, entity.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read students",
			"request_id", middleware.GetRequestID(ctx),
			"qid", entity.ID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &StudentsResponse{
		Person:   entity.Label,
		QID:      string(entity.ID),
		Students: nonNilRecords(students),
	})
}

func (h *Handler) handlePoliticalParty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entity, ok := h.resolvePerson(w, r)
	if !ok {
		return
	}

	parties, err := h.person.PoliticalParty(ctx, entity.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read political party",
			"request_id", middleware.GetRequestID(ctx),
			"qid", entity.ID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &PoliticalPartyResponse{
		Person:         entity.Label,
		QID:            string(entity.ID),
		PoliticalParty: nonNilRecords(parties),
	})
}

func (h *Handler) handleSupervisors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entity, ok := h.resolvePerson(w, r)
	if !ok {
		return
	}

	supervisors, err := h.person.Supervisors(ctx, entity.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read supervisors",
			"request_id", middleware.GetRequestID(ctx),
			"qid", entity.ID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &SupervisorsResponse{
		Person:      entity.Label,
		QID:         string(entity.ID),
		Supervisors: nonNilRecords(supervisors),
	})
}

// handleAll reads all properties concurrently. Per-field failures come back
// in the errors map with HTTP 200; only resolution itself can fail the call.
func (h *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entity, ok := h.resolvePerson(w, r)
	if !ok {
		return
	}

	all := h.person.AllProperties(ctx, entity.ID)
	if len(all.Errors) > 0 {
		h.logger.WarnContext(ctx, "aggregate lookup completed with field errors",
			"request_id", middleware.GetRequestID(ctx),
			"qid", entity.ID,
			"failed_fields", len(all.Errors),
		)
	}

	httputil.WriteJSON(w, http.StatusOK, newAllResponse(entity, all))
}
