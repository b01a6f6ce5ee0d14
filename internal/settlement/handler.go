package settlement

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

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service       *Service
	defaultLocale string
	log           *slog.Logger
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service, defaultLocale string, log *slog.Logger) *Handler {
	return &Handler{service: service, defaultLocale: defaultLocale, log: log}
}

// EventRoutes mounts the settlement subroute onto the event router
func (h *Handler) EventRoutes(r chi.Router) {
	r.Get("/{id}/settlement", h.Get)
}

// Get handles GET /events/{id}/settlement
// @Summary      Get event settlement
// @Description  Host-only accounting of paid and unpaid confirmed participants
// @Tags         settlements
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Event ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      401 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /events/{id}/settlement [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "settlement.Handler.Get"

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, r, "Authentication required")
		return
	}

	st, err := h.service.GetForHost(chi.URLParam(r, "id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrEventNotFound):
			response.NotFound(w, r, err.Error())
		case errors.Is(err, ErrNotHost):
			response.Forbidden(w, r, err.Error())
		default:
			h.log.Error("failed to compute settlement", slog.String("op", op), sl.Err(err))
			response.InternalError(w, r, "Failed to get settlement")
		}
		return
	}

	locale := i18n.LocaleFromRequest(r, h.defaultLocale)
	response.JSON(w, r, http.StatusOK, h.service.Describe(st, locale))
}
