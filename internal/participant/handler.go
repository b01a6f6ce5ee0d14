package participant

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/twogather/twogather/internal/event"
	"github.com/twogather/twogather/internal/i18n"
	"github.com/twogather/twogather/internal/lib/logger/sl"
	"github.com/twogather/twogather/pkg/middleware"
	"github.com/twogather/twogather/pkg/response"
)

// Handler handles HTTP requests for participation operations
type Handler struct {
	service *Service
	tr      *i18n.Translator
	log     *slog.Logger
}

// NewHandler creates a new participant handler with dependencies injected
func NewHandler(service *Service, tr *i18n.Translator, log *slog.Logger) *Handler {
	return &Handler{service: service, tr: tr, log: log}
}

// EventRoutes mounts the participation subroutes onto the event router
func (h *Handler) EventRoutes(r chi.Router) {
	r.Get("/{id}/participants", h.ListByEvent)
	r.Post("/{id}/join", h.Join)
	r.Post("/{id}/leave", h.Leave)
}

// MeRoutes returns the router for the caller's own participations
func (h *Handler) MeRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/participations", h.ListMine)
	return r
}

func (h *Handler) labeler(r *http.Request) func(string) string {
	locale := i18n.LocaleFromRequest(r, h.tr.DefaultLocale())
	return func(key string) string { return h.tr.T(locale, key, nil) }
}

// ListByEvent handles GET /events/{id}/participants
// @Summary      List event participants
// @Description  Participants of an event with confirmed, attended and paid counts
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Success      200 {object} response.APIResponse{data=EventParticipantsResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /events/{id}/participants [get]
func (h *Handler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if _, err := h.service.events.GetByID(eventID); err != nil {
		h.fail(w, r, "participant.Handler.ListByEvent", err)
		return
	}

	response.JSON(w, r, http.StatusOK, &EventParticipantsResponse{
		EventID:      eventID,
		Confirmed:    h.service.CountConfirmed(eventID),
		Attended:     h.service.CountAttended(eventID),
		Paid:         h.service.CountPaid(eventID),
		Participants: toResponses(h.service.ListByEvent(eventID), h.labeler(r)),
	})
}

// ListMine handles GET /me/participations
// @Summary      List my participations
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=MyParticipationsResponse}
// @Failure      401 {object} response.APIResponse
// @Router       /me/participations [get]
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, r, "Authentication required")
		return
	}

	response.JSON(w, r, http.StatusOK, &MyParticipationsResponse{
		EventIDs:       h.service.ParticipatedEventIDs(userID),
		Participations: toResponses(h.service.ListByUser(userID), h.labeler(r)),
	})
}

// Join handles POST /events/{id}/join
// @Summary      Request to join an event
// @Description  The request is checked and logged; the ledger is not modified.
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Success      202 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /events/{id}/join [post]
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	const op = "participant.Handler.Join"
	log := h.log.With(slog.String("op", op))

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, r, "Authentication required")
		return
	}

	e, err := h.service.CheckJoin(chi.URLParam(r, "id"), userID)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	log.Info("join requested", slog.String("event_id", e.ID), slog.String("user_id", userID))

	response.Accepted(w, r, "Join request recorded")
}

// Leave handles POST /events/{id}/leave
// @Summary      Request to leave an event
// @Description  The request is checked and logged; the ledger is not modified.
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Success      202 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /events/{id}/leave [post]
func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
	const op = "participant.Handler.Leave"
	log := h.log.With(slog.String("op", op))

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, r, "Authentication required")
		return
	}

	p, err := h.service.CheckLeave(chi.URLParam(r, "id"), userID)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	log.Info("leave requested", slog.String("event_id", p.EventID), slog.String("participant_id", p.ID))

	response.Accepted(w, r, "Leave request recorded")
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, event.ErrEventNotFound), errors.Is(err, ErrParticipantNotFound):
		response.NotFound(w, r, err.Error())
	case errors.Is(err, ErrHostCannotJoin):
		response.Forbidden(w, r, err.Error())
	case errors.Is(err, ErrAlreadyJoined), errors.Is(err, ErrEventClosed), errors.Is(err, ErrEventFull):
		response.Error(w, r, http.StatusConflict, "CONFLICT", err.Error())
	default:
		h.log.Error("request failed", slog.String("op", op), sl.Err(err))
		response.InternalError(w, r, "Failed to process participation request")
	}
}
