// Package dataset assembles the immutable snapshot served by the API:
// fixture rosters, the generated participation ledger and the rendered
// notification feed.
package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/twogather/twogather/internal/event"
	"github.com/twogather/twogather/internal/i18n"
	"github.com/twogather/twogather/internal/lib/logger/handlers/slogdiscard"
	"github.com/twogather/twogather/internal/lib/logger/sl"
	"github.com/twogather/twogather/internal/lib/random"
	"github.com/twogather/twogather/internal/notification"
	"github.com/twogather/twogather/internal/participant"
	"github.com/twogather/twogather/internal/user"
	"github.com/twogather/twogather/pkg/tz"
)

var (
	ErrDuplicateID    = errors.New("duplicate id")
	ErrDuplicateToken = errors.New("duplicate share link token")
	ErrUnknownEvent   = errors.New("unknown event")
)

// Options control snapshot construction.
type Options struct {
	// Now anchors every relative fixture date. Zero means time.Now().
	Now time.Time
	// Seed feeds the ledger generator and analytics placeholders.
	// Zero asks for a random seed, which is logged.
	Seed int64
	// Locale renders notification text. Defaults to the translator's locale.
	Locale     string
	Translator *i18n.Translator
	Log        *slog.Logger
}

// Fixture is the raw input of a snapshot.
type Fixture struct {
	Users  []user.User
	Events []event.Event
	Drafts []notification.Draft
}

// DefaultFixture returns the bundled 10-user, 20-event, 20-notification fixture.
func DefaultFixture(now time.Time) (Fixture, error) {
	users, err := Users()
	if err != nil {
		return Fixture{}, fmt.Errorf("parse users: %w", err)
	}
	return Fixture{
		Users:  users,
		Events: Events(now),
		Drafts: NotificationDrafts(now),
	}, nil
}

// Snapshot is the read-only dataset shared by every request.
type Snapshot struct {
	Users         []user.User
	Events        []event.Event
	Participants  []participant.Participant
	Notifications []notification.Notification
	Seed          int64
	Locale        string
	BuiltAt       time.Time
}

// Stats reports roster sizes.
type Stats struct {
	Users         int `json:"users"`
	Events        int `json:"events"`
	Participants  int `json:"participants"`
	Notifications int `json:"notifications"`
}

// Stats returns the snapshot's roster sizes.
func (s *Snapshot) Stats() Stats {
	return Stats{
		Users:         len(s.Users),
		Events:        len(s.Events),
		Participants:  len(s.Participants),
		Notifications: len(s.Notifications),
	}
}

// Build assembles a snapshot from the bundled fixture.
func Build(opts Options) (*Snapshot, error) {
	const op = "dataset.Build"

	opts = opts.withDefaults()

	fix, err := DefaultFixture(opts.Now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return Assemble(fix, opts)
}

// MustBuild is like Build but panics on error.
func MustBuild(opts Options) *Snapshot {
	s, err := Build(opts)
	if err != nil {
		panic(err)
	}
	return s
}

func (o Options) withDefaults() Options {
	if o.Log == nil {
		o.Log = slogdiscard.NewDiscardLogger()
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	o.Now = o.Now.In(tz.Seoul)
	if o.Translator == nil {
		locale := o.Locale
		if locale == "" {
			locale = "ko"
		}
		o.Translator = i18n.NewTranslator(locale, o.Log)
	}
	if o.Locale == "" {
		o.Locale = o.Translator.DefaultLocale()
	}
	return o
}

// Assemble validates fix, generates the ledger and renders the feed.
func Assemble(fix Fixture, opts Options) (*Snapshot, error) {
	const op = "dataset.Assemble"

	opts = opts.withDefaults()
	log := opts.Log.With(slog.String("op", op))

	if opts.Seed == 0 {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		opts.Seed = seed
		log.Info("generated dataset seed", slog.Int64("seed", seed))
	}

	v := newValidator()
	if err := validateFixture(v, fix); err != nil {
		log.Error("invalid fixture", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events := make(map[string]*event.Event, len(fix.Events))
	for i := range fix.Events {
		events[fix.Events[i].ID] = &fix.Events[i]
	}
	names := make(map[string]string, len(fix.Users))
	for _, u := range fix.Users {
		names[u.ID] = u.Name
	}

	notifications := make([]notification.Notification, 0, len(fix.Drafts))
	for _, d := range fix.Drafts {
		e, ok := events[d.EventID]
		if !ok {
			return nil, fmt.Errorf("%s: notification %s: %w %q", op, d.ID, ErrUnknownEvent, d.EventID)
		}
		n := notification.Compose(d, e, names[e.HostID], opts.Translator, opts.Locale)
		if err := v.Struct(&n); err != nil {
			return nil, fmt.Errorf("%s: notification %s: %w", op, d.ID, err)
		}
		notifications = append(notifications, n)
	}

	snap := &Snapshot{
		Users:         append([]user.User(nil), fix.Users...),
		Events:        append([]event.Event(nil), fix.Events...),
		Participants:  participant.Generate(fix.Events, fix.Users, opts.Seed),
		Notifications: notifications,
		Seed:          opts.Seed,
		Locale:        opts.Locale,
		BuiltAt:       opts.Now,
	}

	stats := snap.Stats()
	log.Debug("dataset assembled",
		slog.Int("users", stats.Users),
		slog.Int("events", stats.Events),
		slog.Int("participants", stats.Participants),
		slog.Int("notifications", stats.Notifications),
	)

	return snap, nil
}

type enumerated interface {
	Valid() bool
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumerated)
		return ok && e.Valid()
	})
	return v
}

func validateFixture(v *validator.Validate, fix Fixture) error {
	userIDs := make(map[string]bool, len(fix.Users))
	for i := range fix.Users {
		u := &fix.Users[i]
		if err := v.Struct(u); err != nil {
			return fmt.Errorf("user %s: %w", u.ID, err)
		}
		if userIDs[u.ID] {
			return fmt.Errorf("user %s: %w", u.ID, ErrDuplicateID)
		}
		userIDs[u.ID] = true
	}

	eventIDs := make(map[string]bool, len(fix.Events))
	tokens := make(map[string]bool, len(fix.Events))
	for i := range fix.Events {
		e := &fix.Events[i]
		if err := v.Struct(e); err != nil {
			return fmt.Errorf("event %s: %w", e.ID, err)
		}
		if eventIDs[e.ID] {
			return fmt.Errorf("event %s: %w", e.ID, ErrDuplicateID)
		}
		if tokens[e.ShareLinkToken] {
			return fmt.Errorf("event %s: %w", e.ID, ErrDuplicateToken)
		}
		eventIDs[e.ID] = true
		tokens[e.ShareLinkToken] = true
	}

	draftIDs := make(map[string]bool, len(fix.Drafts))
	for _, d := range fix.Drafts {
		if !d.Type.Valid() {
			return fmt.Errorf("notification %s: %w", d.ID, notification.ErrInvalidType)
		}
		if draftIDs[d.ID] {
			return fmt.Errorf("notification %s: %w", d.ID, ErrDuplicateID)
		}
		draftIDs[d.ID] = true
	}

	return nil
}
