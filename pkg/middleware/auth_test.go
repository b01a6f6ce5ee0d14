package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twogather/twogather/internal/lib/logger/handlers/slogdiscard"
)

var (
	testSecret = []byte("test-secret")
	testNow    = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
)

func testConfig() AuthConfig {
	return AuthConfig{
		Secret:   testSecret,
		Issuer:   "https://auth.example.test",
		Audience: "authenticated",
		Now:      func() time.Time { return testNow },
	}
}

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func validClaims(sub, role string) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":   sub,
		"iss":   "https://auth.example.test",
		"aud":   "authenticated",
		"exp":   testNow.Add(time.Hour).Unix(),
		"email": sub + "@example.com",
	}
	if role != "" {
		claims["user_metadata"] = map[string]any{"role": role}
	}
	return claims
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()

	auth := NewAuthenticator(testConfig(), slogdiscard.NewDiscardLogger())

	expired := validClaims("user-003", "")
	expired["exp"] = testNow.Add(-time.Minute).Unix()

	wrongIssuer := validClaims("user-003", "")
	wrongIssuer["iss"] = "https://evil.example.test"

	noExp := validClaims("user-003", "")
	delete(noExp, "exp")

	noSub := validClaims("", "")

	// the top-level role claim is the database role, not the app role
	topLevelRole := validClaims("user-004", "")
	topLevelRole["role"] = "admin"

	testCases := []struct {
		name     string
		token    string
		wantErr  bool
		wantUser string
		wantRole string
	}{
		{name: "regular user", token: signToken(t, testSecret, validClaims("user-003", "")), wantUser: "user-003", wantRole: RoleUser},
		{name: "admin", token: signToken(t, testSecret, validClaims("user-001", "admin")), wantUser: "user-001", wantRole: RoleAdmin},
		{name: "top-level role ignored", token: signToken(t, testSecret, topLevelRole), wantUser: "user-004", wantRole: RoleUser},
		{name: "expired", token: signToken(t, testSecret, expired), wantErr: true},
		{name: "missing exp", token: signToken(t, testSecret, noExp), wantErr: true},
		{name: "wrong issuer", token: signToken(t, testSecret, wrongIssuer), wantErr: true},
		{name: "wrong secret", token: signToken(t, []byte("other"), validClaims("user-003", "")), wantErr: true},
		{name: "missing subject", token: signToken(t, testSecret, noSub), wantErr: true},
		{name: "garbage", token: "not-a-jwt", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p, err := auth.VerifyToken(tc.token)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantUser, p.UserID)
			assert.Equal(t, tc.wantRole, p.Role)
		})
	}
}

func TestAuthenticateAndRequire(t *testing.T) {
	t.Parallel()

	auth := NewAuthenticator(testConfig(), slogdiscard.NewDiscardLogger())

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())
		w.Header().Set("X-User", userID)
		w.WriteHeader(http.StatusOK)
	})

	userToken := signToken(t, testSecret, validClaims("user-003", ""))
	adminToken := signToken(t, testSecret, validClaims("user-001", "admin"))

	testCases := []struct {
		name         string
		handler      http.Handler
		header       string
		wantStatus   int
		wantUser     string
		wantLocation string
	}{
		{name: "auth without token", handler: RequireAuth(ok), wantStatus: http.StatusUnauthorized, wantLocation: LoginPath},
		{name: "auth with bad scheme", handler: RequireAuth(ok), header: "Basic abc", wantStatus: http.StatusUnauthorized, wantLocation: LoginPath},
		{name: "auth with token", handler: RequireAuth(ok), header: "Bearer " + userToken, wantStatus: http.StatusOK, wantUser: "user-003"},
		{name: "admin route as user", handler: RequireRole(RoleAdmin)(ok), header: "Bearer " + userToken, wantStatus: http.StatusForbidden},
		{name: "admin route as admin", handler: RequireRole(RoleAdmin)(ok), header: "Bearer " + adminToken, wantStatus: http.StatusOK, wantUser: "user-001"},
		{name: "admin route anonymous", handler: RequireRole(RoleAdmin)(ok), wantStatus: http.StatusUnauthorized, wantLocation: LoginPath},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			auth.Authenticate(tc.handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantUser, rr.Header().Get("X-User"))
			assert.Equal(t, tc.wantLocation, rr.Header().Get("Location"))
		})
	}
}

func TestDevHeaders(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.DevHeaders = true
	auth := NewAuthenticator(cfg, slogdiscard.NewDiscardLogger())

	var got Principal
	handler := auth.Authenticate(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = PrincipalFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Test-User-ID", "user-002")
	req.Header.Set("X-Test-Role", "admin")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-002", got.UserID)
	assert.True(t, got.IsAdmin())

	// Dev headers are ignored when the feature is off.
	strict := NewAuthenticator(testConfig(), slogdiscard.NewDiscardLogger())
	rr = httptest.NewRecorder()
	strict.Authenticate(RequireAuth(http.NotFoundHandler())).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoadAuthConfigFromEnv(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	_, err := LoadAuthConfigFromEnv(false)
	assert.Error(t, err)

	cfg, err := LoadAuthConfigFromEnv(true)
	require.NoError(t, err)
	assert.True(t, cfg.DevHeaders)

	t.Setenv("AUTH_JWT_SECRET", " s3cret ")
	t.Setenv("AUTH_JWT_ISSUER", "https://auth.example.test")
	cfg, err = LoadAuthConfigFromEnv(false)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), cfg.Secret)
	assert.Equal(t, "https://auth.example.test", cfg.Issuer)
	assert.Equal(t, "authenticated", cfg.Audience)
}
