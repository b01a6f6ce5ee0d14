package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twogather/twogather/internal/lib/logger/handlers/slogdiscard"
)

func TestHandler_Routes(t *testing.T) {
	t.Parallel()

	agg, _ := newFixtureAggregator(t)
	router := NewHandler(agg, "ko", slogdiscard.NewDiscardLogger()).Routes()

	paths := []string{
		"/dashboard", "/categories", "/monthly-trend", "/daily-active-users", "/average-cost",
		"/statuses", "/participation-rate", "/payment-rate", "/attendance-rate", "/top-events",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var env struct {
				Success bool            `json:"success"`
				Data    json.RawMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.True(t, env.Success)
			assert.NotEmpty(t, env.Data)
		})
	}
}

func TestHandler_Localized(t *testing.T) {
	t.Parallel()

	agg, _ := newFixtureAggregator(t)
	router := NewHandler(agg, "ko", slogdiscard.NewDiscardLogger()).Routes()

	req := httptest.NewRequest(http.MethodGet, "/statuses", nil)
	req.Header.Set("Accept-Language", "en")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data []StatusCount `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data, 4)
	assert.Equal(t, "Upcoming", env.Data[0].Label)
}
