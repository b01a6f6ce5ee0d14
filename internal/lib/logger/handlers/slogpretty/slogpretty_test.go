package slogpretty

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	color.NoColor = true
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	return slog.New(opts.NewPrettyHandler(buf))
}

// fields extracts the JSON attribute block printed after the message.
func fields(t *testing.T, out string) map[string]any {
	t.Helper()

	i := strings.Index(out, "{")
	require.GreaterOrEqual(t, i, 0, out)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out[i:]), &got))
	return got
}

func TestPrettyHandler_RecordAttrsWin(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf).With(slog.String("op", "outer"), slog.String("component", "api"))

	log.Info("request completed", slog.String("op", "inner"))

	got := fields(t, buf.String())
	assert.Equal(t, "inner", got["op"])
	assert.Equal(t, "api", got["component"])
	assert.Contains(t, buf.String(), "request completed")
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf).With(slog.String("env", "local")).WithGroup("http").With(slog.String("method", "GET"))

	log.Info("served", slog.Int("status", 200))

	got := fields(t, buf.String())
	assert.Equal(t, "local", got["env"])
	assert.Equal(t, "GET", got["http.method"])
	assert.EqualValues(t, 200, got["http.status"])
}
