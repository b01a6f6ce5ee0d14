package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twogather/twogather/internal/lib/logger/handlers/slogdiscard"
	"github.com/twogather/twogather/internal/storage/export"
)

func TestRun(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "seed.db")
	opts := options{driver: "sqlite", dsn: dsn, seed: 42, locale: "en"}

	require.NoError(t, run(context.Background(), opts, slogdiscard.NewDiscardLogger()))

	store, err := export.Open(export.DriverSQLite, dsn)
	require.NoError(t, err)
	defer store.Close()

	counts, err := store.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, counts.Users)
	assert.Equal(t, 20, counts.Events)
	assert.Equal(t, 20, counts.Notifications)
	assert.Positive(t, counts.Participants)
}

func TestRun_UnknownDriver(t *testing.T) {
	err := run(context.Background(), options{driver: "oracle", dsn: "x"}, slogdiscard.NewDiscardLogger())
	assert.ErrorIs(t, err, export.ErrUnsupportedDriver)
}
