// Package export writes a dataset snapshot into a SQL database.
// The API never reads it back; it exists for inspection and BI tooling.
package export

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/twogather/twogather/internal/dataset"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Driver names a supported database.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

var ErrUnsupportedDriver = errors.New("unsupported driver")

// ParseDriver converts a raw string into a Driver.
func ParseDriver(s string) (Driver, error) {
	switch d := Driver(strings.ToLower(s)); d {
	case DriverSQLite, DriverPostgres:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, s)
}

// Store is an export target
type Store struct {
	db     *sql.DB
	driver Driver
}

// Open connects to dsn with driver and verifies the connection.
func Open(driver Driver, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("dsn is required")
	}
	if _, err := ParseDriver(string(driver)); err != nil {
		return nil, err
	}

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	return &Store{db: db, driver: driver}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate applies the embedded schema migrations.
func (s *Store) Migrate() (uint, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, fmt.Errorf("migration source: %w", err)
	}

	var drv database.Driver
	switch s.driver {
	case DriverSQLite:
		drv, err = migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	case DriverPostgres:
		drv, err = postgres.WithInstance(s.db, &postgres.Config{})
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDriver, s.driver)
	}
	if err != nil {
		return 0, fmt.Errorf("migration driver: %w", err)
	}

	// m is not closed: closing it closes the shared *sql.DB.
	m, err := migrate.NewWithInstance("iofs", src, string(s.driver), drv)
	if err != nil {
		return 0, fmt.Errorf("migration init: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("migration version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("migration version %d is dirty", version)
	}
	return version, nil
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Write replaces the exported tables with the contents of snap in one transaction.
func (s *Store) Write(ctx context.Context, snap *dataset.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"notifications", "participants", "events", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := s.writeUsers(ctx, tx, snap); err != nil {
		return err
	}
	if err := s.writeEvents(ctx, tx, snap); err != nil {
		return err
	}
	if err := s.writeParticipants(ctx, tx, snap); err != nil {
		return err
	}
	if err := s.writeNotifications(ctx, tx, snap); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

func (s *Store) writeUsers(ctx context.Context, tx *sql.Tx, snap *dataset.Snapshot) error {
	query := s.rebind(`
		INSERT INTO users (id, email, name, avatar_url, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	for _, u := range snap.Users {
		_, err := tx.ExecContext(ctx, query, u.ID, u.Email, u.Name, u.AvatarURL, string(u.Role), u.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
		}
	}
	return nil
}

func (s *Store) writeEvents(ctx context.Context, tx *sql.Tx, snap *dataset.Snapshot) error {
	query := s.rebind(`
		INSERT INTO events (
			id, title, description, category, status, host_id, event_date, start_time, end_time,
			location, max_participants, current_participants, cost_per_person, share_link_token,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	for _, e := range snap.Events {
		_, err := tx.ExecContext(ctx, query,
			e.ID, e.Title, e.Description, string(e.Category), string(e.Status), e.HostID,
			e.Date.Format("2006-01-02"), e.StartTime, e.EndTime, e.Location,
			e.MaxParticipants, e.CurrentParticipants, e.CostPerPerson, e.ShareLinkToken,
			e.CreatedAt.UTC(), e.UpdatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert event %s: %w", e.ID, err)
		}
	}
	return nil
}

func (s *Store) writeParticipants(ctx context.Context, tx *sql.Tx, snap *dataset.Snapshot) error {
	query := s.rebind(`
		INSERT INTO participants (id, event_id, user_id, user_name, user_avatar, status, attended, payment_confirmed, joined_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	for _, p := range snap.Participants {
		_, err := tx.ExecContext(ctx, query,
			p.ID, p.EventID, p.UserID, p.UserName, p.UserAvatar, string(p.Status),
			p.Attended, p.PaymentConfirmed, p.JoinedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant %s: %w", p.ID, err)
		}
	}
	return nil
}

func (s *Store) writeNotifications(ctx context.Context, tx *sql.Tx, snap *dataset.Snapshot) error {
	query := s.rebind(`
		INSERT INTO notifications (id, user_id, event_id, event_title, type, title, message, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	for _, n := range snap.Notifications {
		_, err := tx.ExecContext(ctx, query,
			n.ID, n.UserID, n.EventID, n.EventTitle, string(n.Type), n.Title, n.Message, n.Read, n.CreatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert notification %s: %w", n.ID, err)
		}
	}
	return nil
}

// Counts returns the number of rows in each exported table.
func (s *Store) Counts(ctx context.Context) (dataset.Stats, error) {
	var st dataset.Stats
	targets := []struct {
		table string
		dst   *int
	}{
		{"users", &st.Users},
		{"events", &st.Events},
		{"participants", &st.Participants},
		{"notifications", &st.Notifications},
	}
	for _, t := range targets {
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.table).Scan(t.dst); err != nil {
			return dataset.Stats{}, fmt.Errorf("failed to count %s: %w", t.table, err)
		}
	}
	return st, nil
}
