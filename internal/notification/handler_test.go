package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twogather/twogather/internal/lib/logger/handlers/slogdiscard"
	"github.com/twogather/twogather/pkg/middleware"
)

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
	Meta    map[string]int    `json:"meta"`
}

func request(t *testing.T, method, target, userID string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	h := NewHandler(NewService(NewRepository(testFeed())), slogdiscard.NewDiscardLogger())

	req := httptest.NewRequest(method, target, nil)
	if userID != "" {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), middleware.Principal{UserID: userID, Role: middleware.RoleUser}))
	}
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    string
		wantIDs   []string
		wantTotal int
	}{
		{"all", "/", []string{"notification-001", "notification-005", "notification-009", "notification-017"}, 4},
		{"unread only", "/?unread_only=true", []string{"notification-001", "notification-005"}, 2},
		{"by type", "/?type=payment_request", []string{"notification-005", "notification-017"}, 2},
		{"by type unread", "/?type=payment_request&unread_only=true", []string{"notification-005"}, 1},
		{"paginated", "/?per_page=1&page=2", []string{"notification-005"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := request(t, http.MethodGet, tt.target, "user-003")
			require.Equal(t, http.StatusOK, rec.Code)

			var got []NotificationResponse
			require.NoError(t, json.Unmarshal(env.Data, &got))
			ids := make([]string, len(got))
			for i, n := range got {
				ids[i] = n.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantTotal, env.Meta["total"])
		})
	}
}

func TestHandler_Errors(t *testing.T) {
	t.Parallel()

	rec, _ := request(t, http.MethodGet, "/?type=reminder", "user-003")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = request(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = request(t, http.MethodGet, "/notification-002", "user-003")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = request(t, http.MethodGet, "/notification-404", "user-003")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_UnreadCountAndActions(t *testing.T) {
	t.Parallel()

	rec, env := request(t, http.MethodGet, "/unread-count", "user-003")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"unread_count":2}`, string(env.Data))

	rec, _ = request(t, http.MethodPost, "/notification-001/read", "user-003")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = request(t, http.MethodPost, "/notification-001/read", "user-004")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = request(t, http.MethodPost, "/read-all", "user-003")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, env = request(t, http.MethodGet, "/unread-count", "user-003")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"unread_count":2}`, string(env.Data))
}
