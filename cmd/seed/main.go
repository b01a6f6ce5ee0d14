// Package main exports a generated dataset snapshot into a SQL database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/twogather/twogather/internal/dataset"
	"github.com/twogather/twogather/internal/i18n"
	"github.com/twogather/twogather/internal/lib/logger/handlers/slogpretty"
	"github.com/twogather/twogather/internal/lib/logger/sl"
	"github.com/twogather/twogather/internal/storage/export"
)

type options struct {
	driver  string
	dsn     string
	seed    int64
	locale  string
	verbose bool
}

func main() {
	var opts options

	flag.StringVar(&opts.driver, "driver", string(export.DriverSQLite), "database driver (sqlite, postgres)")
	flag.StringVar(&opts.dsn, "dsn", "twogather.db", "database connection string")
	flag.Int64Var(&opts.seed, "seed", 20250101, "random seed for reproducibility (0 = random)")
	flag.StringVar(&opts.locale, "locale", "ko", "locale used for notification text")
	flag.BoolVar(&opts.verbose, "v", false, "verbose output")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, newLogger(opts.verbose)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, log *slog.Logger) error {
	driver, err := export.ParseDriver(opts.driver)
	if err != nil {
		return err
	}

	snap, err := dataset.Build(dataset.Options{
		Seed:       opts.seed,
		Locale:     opts.locale,
		Translator: i18n.NewTranslator(opts.locale, log),
		Log:        log,
	})
	if err != nil {
		return fmt.Errorf("build dataset: %w", err)
	}

	store, err := export.Open(driver, opts.dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close database", sl.Err(err))
		}
	}()

	version, err := store.Migrate()
	if err != nil {
		return err
	}
	log.Debug("schema migrated", slog.Uint64("version", uint64(version)))

	if err := store.Write(ctx, snap); err != nil {
		return err
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		return err
	}

	log.Info("dataset exported",
		slog.String("driver", string(driver)),
		slog.Int64("seed", snap.Seed),
		slog.Int("users", counts.Users),
		slog.Int("events", counts.Events),
		slog.Int("participants", counts.Participants),
		slog.Int("notifications", counts.Notifications),
	)
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: level},
	}
	return slog.New(opts.NewPrettyHandler(os.Stderr))
}
