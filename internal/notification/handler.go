package notification

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/twogather/twogather/internal/lib/logger/sl"
	"github.com/twogather/twogather/pkg/middleware"
	"github.com/twogather/twogather/pkg/response"
)

// Handler handles HTTP requests for notification operations
type Handler struct {
	service *Service
	log     *slog.Logger
}

// NewHandler creates a new notification handler
func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Routes returns the router for notification endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/unread-count", h.GetUnreadCount)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/read", h.MarkAsRead)
	r.Post("/read-all", h.MarkAllAsRead)

	return r
}

// NotificationResponse represents the response for a notification
type NotificationResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	Type       Type   `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Read       bool   `json:"read"`
	CreatedAt  string `json:"created_at"`
}

// toResponse converts a Notification to a NotificationResponse
func toResponse(n *Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:         n.ID,
		EventID:    n.EventID,
		EventTitle: n.EventTitle,
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, r, "Authentication required")
	}
	return userID, ok
}

// List handles GET /notifications
// @Summary      List my notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "Notification type" Enums(invitation, event_update, payment_request, cancellation)
// @Param        unread_only query bool false "Only unread notifications"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]NotificationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Router       /notifications [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	var notifications []Notification
	switch {
	case q.Get("type") != "":
		t, err := ParseType(q.Get("type"))
		if err != nil {
			response.BadRequest(w, r, err.Error())
			return
		}
		notifications = h.service.ListByType(userID, t)
		if q.Get("unread_only") == "true" {
			unread := notifications[:0:0]
			for _, n := range notifications {
				if !n.Read {
					unread = append(unread, n)
				}
			}
			notifications = unread
		}
	case q.Get("unread_only") == "true":
		notifications = h.service.ListUnread(userID)
	default:
		notifications = h.service.ListByUser(userID)
	}

	page, perPage := response.PageParams(r)
	pageItems := response.Paginate(notifications, page, perPage)

	notificationResponses := make([]*NotificationResponse, len(pageItems))
	for i := range pageItems {
		notificationResponses[i] = toResponse(&pageItems[i])
	}

	response.JSONWithMeta(w, r, http.StatusOK, notificationResponses, response.NewMeta(page, perPage, len(notifications)))
}

// GetUnreadCount handles GET /notifications/unread-count
// @Summary      Count my unread notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Router       /notifications/unread-count [get]
func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	response.JSON(w, r, http.StatusOK, map[string]int{"unread_count": h.service.CountUnread(userID)})
}

// GetByID handles GET /notifications/{id}
// @Summary      Get notification by ID
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      200 {object} response.APIResponse{data=NotificationResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /notifications/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	n, err := h.service.GetForRecipient(chi.URLParam(r, "id"), userID)
	if err != nil {
		h.fail(w, r, "notification.Handler.GetByID", err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(n))
}

// MarkAsRead handles POST /notifications/{id}/read. The feed is read-only,
// so the request is checked and logged only.
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      202 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /notifications/{id}/read [post]
func (h *Handler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	const op = "notification.Handler.MarkAsRead"

	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	n, err := h.service.GetForRecipient(chi.URLParam(r, "id"), userID)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	h.log.Info("mark as read requested", slog.String("op", op), slog.String("notification_id", n.ID))

	response.Accepted(w, r, "Notification marked as read")
}

// MarkAllAsRead handles POST /notifications/read-all
// @Summary      Mark all my notifications as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      202 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Router       /notifications/read-all [post]
func (h *Handler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	const op = "notification.Handler.MarkAllAsRead"

	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	h.log.Info("mark all as read requested",
		slog.String("op", op),
		slog.String("user_id", userID),
		slog.Int("unread", h.service.CountUnread(userID)),
	)

	response.Accepted(w, r, "All notifications marked as read")
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ErrNotificationNotFound):
		response.NotFound(w, r, err.Error())
	case errors.Is(err, ErrNotRecipient):
		response.Forbidden(w, r, err.Error())
	default:
		h.log.Error("request failed", slog.String("op", op), sl.Err(err))
		response.InternalError(w, r, "Failed to process notification request")
	}
}
