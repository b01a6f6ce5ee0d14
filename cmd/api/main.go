package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/twogather/twogather/internal/config"
	"github.com/twogather/twogather/internal/dataset"
	"github.com/twogather/twogather/internal/i18n"
	"github.com/twogather/twogather/internal/lib/logger/handlers/slogpretty"
	"github.com/twogather/twogather/internal/lib/logger/sl"
	mw "github.com/twogather/twogather/pkg/middleware"
)

// @title           Two Gather API
// @version         1.0
// @description     Read-only meetup data and analytics service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting two gather", slog.String("env", cfg.Env), slog.String("locale", cfg.Locale))
	log.Debug("debug messages are enabled")

	tr := i18n.NewTranslator(cfg.Locale, log)

	snap, err := dataset.Build(dataset.Options{
		Seed:       cfg.Dataset.Seed,
		Locale:     cfg.Locale,
		Translator: tr,
		Log:        log,
	})
	if err != nil {
		log.Error("failed to build dataset", sl.Err(err))
		os.Exit(1)
	}

	authCfg, err := mw.LoadAuthConfigFromEnv(cfg.Auth.DevHeaders)
	if err != nil {
		log.Error("failed to load auth config", sl.Err(err))
		os.Exit(1)
	}
	if cfg.Auth.DevHeaders {
		log.Warn("development auth headers are enabled")
	}

	app := newApplication(snap, tr, log)
	router := app.routes(mw.NewAuthenticator(authCfg, log).Authenticate)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Info("starting server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
