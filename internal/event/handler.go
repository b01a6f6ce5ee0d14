package event

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/twogather/twogather/internal/i18n"
	"github.com/twogather/twogather/internal/lib/logger/sl"
	"github.com/twogather/twogather/pkg/middleware"
	"github.com/twogather/twogather/pkg/response"
)

// Handler handles HTTP requests for event operations
type Handler struct {
	service  *Service
	tr       *i18n.Translator
	validate *validator.Validate
	log      *slog.Logger
}

// NewHandler creates a new event handler with dependencies injected
func NewHandler(service *Service, tr *i18n.Translator, log *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		tr:       tr,
		validate: validator.New(),
		log:      log,
	}
}

// Routes returns the router for event endpoints. ext lets sibling features
// mount their own /{id}/... subroutes on the same router.
func (h *Handler) Routes(ext ...func(chi.Router)) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/upcoming", h.ListUpcoming)
	r.Get("/completed", h.ListCompleted)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Put("/{id}/status", h.UpdateStatus)
	r.Delete("/{id}", h.Delete)

	for _, mount := range ext {
		mount(r)
	}

	return r
}

// ShareRoutes returns the public router for share-link lookups
func (h *Handler) ShareRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{token}", h.GetByShareToken)
	return r
}

func (h *Handler) toResponses(r *http.Request, events []Event) []*EventResponse {
	label := h.labeler(r)
	out := make([]*EventResponse, len(events))
	for i := range events {
		out[i] = events[i].ToResponse(h.service.HostName(&events[i]), label)
	}
	return out
}

func (h *Handler) labeler(r *http.Request) func(string) string {
	locale := i18n.LocaleFromRequest(r, h.tr.DefaultLocale())
	return func(key string) string { return h.tr.T(locale, key, nil) }
}

// List handles GET /events
// @Summary      List events
// @Description  Get a paginated list of events filtered by category, status or host
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        category query string false "Category" Enums(swimming, fitness, social, sports, study, dining)
// @Param        status query string false "Status" Enums(upcoming, ongoing, completed, cancelled)
// @Param        host query string false "Host user ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]EventResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /events [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f Filter

	if raw := q.Get("category"); raw != "" {
		c, err := ParseCategory(raw)
		if err != nil {
			response.BadRequest(w, r, err.Error())
			return
		}
		f.Category = c
	}
	if raw := q.Get("status"); raw != "" {
		st, err := ParseStatus(raw)
		if err != nil {
			response.BadRequest(w, r, err.Error())
			return
		}
		f.Status = st
	}
	f.HostID = q.Get("host")

	page, perPage := response.PageParams(r)
	events := h.service.List(f)

	response.JSONWithMeta(w, r, http.StatusOK,
		h.toResponses(r, response.Paginate(events, page, perPage)),
		response.NewMeta(page, perPage, len(events)))
}

// ListUpcoming handles GET /events/upcoming
// @Summary      List upcoming events
// @Description  Get events that are upcoming or ongoing
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]EventResponse}
// @Router       /events/upcoming [get]
func (h *Handler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.toResponses(r, h.service.ListUpcoming()))
}

// ListCompleted handles GET /events/completed
// @Summary      List completed events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]EventResponse}
// @Router       /events/completed [get]
func (h *Handler) ListCompleted(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.toResponses(r, h.service.ListCompleted()))
}

// GetByID handles GET /events/{id}
// @Summary      Get event by ID
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Success      200 {object} response.APIResponse{data=EventResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /events/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "event.Handler.GetByID", err)
		return
	}

	response.JSON(w, r, http.StatusOK, e.ToResponse(h.service.HostName(e), h.labeler(r)))
}

// GetByShareToken handles GET /share/{token}
// @Summary      Resolve a share link
// @Description  Public lookup of an event by its share link token
// @Tags         events
// @Produce      json
// @Param        token path string true "Share link token"
// @Success      200 {object} response.APIResponse{data=EventResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /share/{token} [get]
func (h *Handler) GetByShareToken(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.GetByShareToken(chi.URLParam(r, "token"))
	if err != nil {
		h.fail(w, r, "event.Handler.GetByShareToken", err)
		return
	}

	response.JSON(w, r, http.StatusOK, e.ToResponse(h.service.HostName(e), h.labeler(r)))
}

// Create handles POST /events
// @Summary      Request a new event
// @Description  Any signed-in user may host. The request is validated and logged; the catalog is not modified.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateEventRequest true "Event details"
// @Success      202 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Router       /events [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "event.Handler.Create"
	log := h.log.With(slog.String("op", op))

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, r, "Authentication required")
		return
	}

	var req CreateEventRequest
	if !h.decode(w, r, log, &req) {
		return
	}
	if !endsAfterStart(req.StartTime, req.EndTime) {
		response.BadRequest(w, r, "end_time must be after start_time")
		return
	}

	log.Info("event creation requested",
		slog.String("host_id", userID),
		slog.String("title", req.Title),
		slog.String("category", req.Category),
		slog.String("date", req.Date),
		slog.Int("max_participants", req.MaxParticipants),
		slog.Int64("cost_per_person", req.CostPerPerson),
	)

	response.Accepted(w, r, "Event creation recorded")
}

// Update handles PUT /events/{id}
// @Summary      Request an event edit
// @Description  Host-only. The request is validated and logged; the catalog is not modified.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Param        request body UpdateEventRequest true "Changed fields"
// @Success      202 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /events/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "event.Handler.Update"
	log := h.log.With(slog.String("op", op))

	var req UpdateEventRequest
	if !h.decode(w, r, log, &req) {
		return
	}

	e, ok := h.authorizeHost(w, r, op)
	if !ok {
		return
	}

	start, end := e.StartTime, e.EndTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}
	if !endsAfterStart(start, end) {
		response.BadRequest(w, r, "end_time must be after start_time")
		return
	}

	maxParticipants := e.MaxParticipants
	if req.MaxParticipants != nil {
		maxParticipants = *req.MaxParticipants
	}
	if maxParticipants < e.CurrentParticipants {
		response.BadRequest(w, r, "max_participants is below the current participant count")
		return
	}

	log.Info("event edit requested", slog.String("event_id", e.ID), slog.Any("fields", req.Fields()))

	response.Accepted(w, r, "Event edit recorded")
}

// UpdateStatus handles PUT /events/{id}/status
// @Summary      Request a status change
// @Description  Host-only. The request is validated and logged; the catalog is not modified.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      202 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /events/{id}/status [put]
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "event.Handler.UpdateStatus"
	log := h.log.With(slog.String("op", op))

	var req UpdateStatusRequest
	if !h.decode(w, r, log, &req) {
		return
	}

	e, ok := h.authorizeHost(w, r, op)
	if !ok {
		return
	}

	log.Info("status change requested",
		slog.String("event_id", e.ID),
		slog.String("from", string(e.Status)),
		slog.String("to", req.Status),
	)

	response.Accepted(w, r, "Status change recorded")
}

// Delete handles DELETE /events/{id}
// @Summary      Request event deletion
// @Description  Host-only. The request is logged; the catalog is not modified.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Success      202 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /events/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "event.Handler.Delete"

	e, ok := h.authorizeHost(w, r, op)
	if !ok {
		return
	}

	h.log.Info("deletion requested", slog.String("op", op), slog.String("event_id", e.ID))

	response.Accepted(w, r, "Deletion recorded")
}

// endsAfterStart reports whether the HH:MM end falls after start on the same day.
func endsAfterStart(start, end string) bool {
	s, err := time.Parse(clockLayout, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(clockLayout, end)
	if err != nil {
		return false
	}
	return e.After(s)
}

// decode reads a JSON body into dst and validates it, writing the error response on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.BadRequest(w, r, "Invalid request body")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			response.ValidationError(w, r, validateErr)
			return false
		}
		response.BadRequest(w, r, err.Error())
		return false
	}
	return true
}

func (h *Handler) authorizeHost(w http.ResponseWriter, r *http.Request, op string) (*Event, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, r, "Authentication required")
		return nil, false
	}

	e, err := h.service.AuthorizeHost(chi.URLParam(r, "id"), userID)
	if err != nil {
		h.fail(w, r, op, err)
		return nil, false
	}
	return e, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		response.NotFound(w, r, err.Error())
	case errors.Is(err, ErrNotHost):
		response.Forbidden(w, r, err.Error())
	default:
		h.log.Error("request failed", slog.String("op", op), sl.Err(err))
		response.InternalError(w, r, "Failed to process event request")
	}
}
