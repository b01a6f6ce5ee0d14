package analytics

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/twogather/twogather/internal/i18n"
	"github.com/twogather/twogather/pkg/response"
)

// Handler serves admin analytics
type Handler struct {
	agg           *Aggregator
	defaultLocale string
	log           *slog.Logger
}

// NewHandler creates a new analytics handler
func NewHandler(agg *Aggregator, defaultLocale string, log *slog.Logger) *Handler {
	return &Handler{agg: agg, defaultLocale: defaultLocale, log: log}
}

// Routes returns the router for analytics endpoints. Callers gate it to admins.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/dashboard", h.Dashboard)
	r.Get("/categories", h.Categories)
	r.Get("/monthly-trend", h.MonthlyTrend)
	r.Get("/daily-active-users", h.DailyActiveUsers)
	r.Get("/average-cost", h.AverageCost)
	r.Get("/statuses", h.Statuses)
	r.Get("/participation-rate", h.ParticipationRate)
	r.Get("/payment-rate", h.PaymentRate)
	r.Get("/attendance-rate", h.AttendanceRate)
	r.Get("/top-events", h.TopEvents)

	return r
}

func (h *Handler) locale(r *http.Request) string {
	return i18n.LocaleFromRequest(r, h.defaultLocale)
}

// Dashboard handles GET /admin/analytics/dashboard
// @Summary      Dashboard metrics
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=DashboardMetrics}
// @Failure      403 {object} response.APIResponse
// @Router       /admin/analytics/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("dashboard requested", slog.String("op", "analytics.Handler.Dashboard"))
	response.JSON(w, r, http.StatusOK, h.agg.DashboardMetrics())
}

// Categories handles GET /admin/analytics/categories
// @Summary      Category distribution
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]CategoryShare}
// @Router       /admin/analytics/categories [get]
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.agg.CategoryDistribution(h.locale(r)))
}

// MonthlyTrend handles GET /admin/analytics/monthly-trend
// @Summary      Monthly event trend (placeholder series)
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]MonthlyPoint}
// @Router       /admin/analytics/monthly-trend [get]
func (h *Handler) MonthlyTrend(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.agg.MonthlyTrend(h.locale(r)))
}

// DailyActiveUsers handles GET /admin/analytics/daily-active-users
// @Summary      Daily active users (placeholder series)
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]DailyPoint}
// @Router       /admin/analytics/daily-active-users [get]
func (h *Handler) DailyActiveUsers(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.agg.DailyActiveUsers())
}

// AverageCost handles GET /admin/analytics/average-cost
// @Summary      Average cost per category
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]CategoryCost}
// @Router       /admin/analytics/average-cost [get]
func (h *Handler) AverageCost(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.agg.AverageCostByCategory(h.locale(r)))
}

// Statuses handles GET /admin/analytics/statuses
// @Summary      Event status distribution
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]StatusCount}
// @Router       /admin/analytics/statuses [get]
func (h *Handler) Statuses(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.agg.StatusDistribution(h.locale(r)))
}

// ParticipationRate handles GET /admin/analytics/participation-rate
// @Summary      Participation rate
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=ParticipationRate}
// @Router       /admin/analytics/participation-rate [get]
func (h *Handler) ParticipationRate(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.agg.ParticipationRate())
}

// PaymentRate handles GET /admin/analytics/payment-rate
// @Summary      Payment completion rate
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse
// @Router       /admin/analytics/payment-rate [get]
func (h *Handler) PaymentRate(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, map[string]int{"rate": h.agg.PaymentCompletionRate()})
}

// AttendanceRate handles GET /admin/analytics/attendance-rate
// @Summary      Attendance rate of completed events
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse
// @Router       /admin/analytics/attendance-rate [get]
func (h *Handler) AttendanceRate(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, map[string]int{"rate": h.agg.AttendanceRate()})
}

// TopEvents handles GET /admin/analytics/top-events
// @Summary      Top five events by participants
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]TopEvent}
// @Router       /admin/analytics/top-events [get]
func (h *Handler) TopEvents(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, h.agg.TopEvents(h.locale(r)))
}
