package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/twogather/twogather/internal/lib/logger/sl"
	"github.com/twogather/twogather/pkg/middleware"
	"github.com/twogather/twogather/pkg/response"
)

// Handler handles HTTP requests for user operations
type Handler struct {
	service *Service
	log     *slog.Logger
}

// NewHandler creates a new user handler with service dependency injected
func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Routes returns the router for user endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(middleware.RequireRole(middleware.RoleAdmin)).Get("/", h.List)
	r.Get("/{id}", h.GetByID)

	return r
}

// GetByID handles GET /users/{id}
// @Summary      Get user by ID
// @Description  Get a single user by their ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} response.APIResponse{data=UserResponse}
// @Failure      401 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /users/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "user.Handler.GetByID"
	log := h.log.With(slog.String("op", op))

	id := chi.URLParam(r, "id")

	user, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(w, r, err.Error())
			return
		}
		log.Error("failed to get user", sl.Err(err))
		response.InternalError(w, r, "Failed to get user")
		return
	}

	response.JSON(w, r, http.StatusOK, user.ToResponse())
}

// List handles GET /users
// @Summary      List users
// @Description  Get a paginated list of users, optionally filtered by role (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role query string false "Role filter" Enums(user, admin)
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]UserResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := response.PageParams(r)

	var users []User
	if raw := r.URL.Query().Get("role"); raw != "" {
		role, err := ParseRole(raw)
		if err != nil {
			response.BadRequest(w, r, err.Error())
			return
		}
		users = h.service.ListByRole(role)
	} else {
		users = h.service.List()
	}

	pageItems := response.Paginate(users, page, perPage)

	// Convert to response DTOs
	userResponses := make([]*UserResponse, len(pageItems))
	for i := range pageItems {
		userResponses[i] = pageItems[i].ToResponse()
	}

	response.JSONWithMeta(w, r, http.StatusOK, userResponses, response.NewMeta(page, perPage, len(users)))
}
