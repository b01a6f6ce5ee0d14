package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/twogather/twogather/docs"
	"github.com/twogather/twogather/internal/analytics"
	"github.com/twogather/twogather/internal/dataset"
	"github.com/twogather/twogather/internal/event"
	"github.com/twogather/twogather/internal/http-server/middleware/mwlogger"
	"github.com/twogather/twogather/internal/i18n"
	"github.com/twogather/twogather/internal/notification"
	"github.com/twogather/twogather/internal/participant"
	"github.com/twogather/twogather/internal/settlement"
	"github.com/twogather/twogather/internal/user"
	mw "github.com/twogather/twogather/pkg/middleware"
	"github.com/twogather/twogather/pkg/response"
)

// application holds the feature handlers built over one snapshot.
type application struct {
	log *slog.Logger

	users         *user.Handler
	events        *event.Handler
	participants  *participant.Handler
	settlements   *settlement.Handler
	notifications *notification.Handler
	analytics     *analytics.Handler

	stats dataset.Stats
	seed  int64
}

func newApplication(snap *dataset.Snapshot, tr *i18n.Translator, log *slog.Logger) *application {
	locale := tr.DefaultLocale()

	// User feature
	userService := user.NewService(user.NewRepository(snap.Users))

	// Event feature
	eventService := event.NewService(event.NewRepository(snap.Events), userService)

	// Participant feature
	participantService := participant.NewService(participant.NewRepository(snap.Participants), eventService)

	// Settlement feature
	settlementService := settlement.NewService(eventService, participantService, tr)

	// Notification feature
	notificationService := notification.NewService(notification.NewRepository(snap.Notifications))

	// Analytics
	agg := analytics.New(analytics.Source{
		Events:       snap.Events,
		Participants: snap.Participants,
		UserCount:    userService.Count(),
	}, snap.Seed, tr, time.Now)

	return &application{
		log:           log,
		users:         user.NewHandler(userService, log),
		events:        event.NewHandler(eventService, tr, log),
		participants:  participant.NewHandler(participantService, tr, log),
		settlements:   settlement.NewHandler(settlementService, locale, log),
		notifications: notification.NewHandler(notificationService, log),
		analytics:     analytics.NewHandler(agg, locale, log),
		stats:         snap.Stats(),
		seed:          snap.Seed,
	}
}

func (a *application) routes(authenticate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mwlogger.New(a.log))
	r.Use(middleware.Recoverer)
	r.Use(authenticate)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]any{
			"status": "ok",
			"seed":   a.seed,
			"stats":  a.stats,
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/share", a.events.ShareRoutes())

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAuth)

			r.Mount("/users", a.users.Routes())
			r.Mount("/events", a.events.Routes(a.participants.EventRoutes, a.settlements.EventRoutes))
			r.Mount("/me", a.participants.MeRoutes())
			r.Mount("/notifications", a.notifications.Routes())
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.RequireRole(mw.RoleAdmin))
			r.Mount("/analytics", a.analytics.Routes())
		})
	})

	return r
}
