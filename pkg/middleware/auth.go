package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	"github.com/twogather/twogather/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// PrincipalKey is the context key for the authenticated principal
	PrincipalKey ContextKey = "principal"

	// LoginPath is where unauthenticated clients are sent.
	LoginPath = "/auth/login"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Principal is the identity asserted by the identity provider's token.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the principal carries the admin role claim.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// authEnv holds raw env values before post-parse validation.
type authEnv struct {
	Secret   string `env:"AUTH_JWT_SECRET"`
	Issuer   string `env:"AUTH_JWT_ISSUER"`
	Audience string `env:"AUTH_JWT_AUDIENCE" envDefault:"authenticated"`
}

// AuthConfig defines how access tokens are verified.
type AuthConfig struct {
	Secret   []byte
	Issuer   string
	Audience string
	Now      func() time.Time

	// DevHeaders accepts X-Test-User-ID / X-Test-Role when no bearer token is sent.
	DevHeaders bool
}

// LoadAuthConfigFromEnv reads token verification configuration.
func LoadAuthConfigFromEnv(devHeaders bool) (AuthConfig, error) {
	var raw authEnv
	if err := env.Parse(&raw); err != nil {
		return AuthConfig{}, fmt.Errorf("parse auth env: %w", err)
	}
	secret := strings.TrimSpace(raw.Secret)
	if secret == "" && !devHeaders {
		return AuthConfig{}, errors.New("AUTH_JWT_SECRET is required")
	}
	return AuthConfig{
		Secret:     []byte(secret),
		Issuer:     strings.TrimSpace(raw.Issuer),
		Audience:   strings.TrimSpace(raw.Audience),
		Now:        time.Now,
		DevHeaders: devHeaders,
	}, nil
}

// accessClaims mirrors the claims the identity provider puts in access tokens.
type accessClaims struct {
	jwt.RegisteredClaims
	Email        string       `json:"email"`
	UserMetadata userMetadata `json:"user_metadata"`
}

type userMetadata struct {
	Role string `json:"role"`
}

var (
	ErrMissingToken = errors.New("authorization header required")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Authenticator resolves the request principal from a bearer token.
type Authenticator struct {
	cfg AuthConfig
	log *slog.Logger
}

// NewAuthenticator creates an Authenticator for cfg.
func NewAuthenticator(cfg AuthConfig, log *slog.Logger) *Authenticator {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Authenticator{cfg: cfg, log: log.With(slog.String("component", "middleware/auth"))}
}

// Authenticate attaches the principal to the context when the request
// carries valid credentials. It never rejects; see RequireAuth.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := a.principalFromRequest(r)
		if err != nil {
			if !errors.Is(err, ErrMissingToken) {
				a.log.Debug("rejected credentials", slog.String("error", err.Error()))
			}
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

func (a *Authenticator) principalFromRequest(r *http.Request) (Principal, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if a.cfg.DevHeaders {
			if userID := strings.TrimSpace(r.Header.Get("X-Test-User-ID")); userID != "" {
				role := strings.TrimSpace(r.Header.Get("X-Test-Role"))
				if role == "" {
					role = RoleUser
				}
				return Principal{UserID: userID, Role: role}, nil
			}
		}
		return Principal{}, ErrMissingToken
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Principal{}, ErrInvalidToken
	}

	return a.VerifyToken(parts[1])
}

// VerifyToken validates an access token and returns its principal.
func (a *Authenticator) VerifyToken(token string) (Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Principal{}, ErrMissingToken
	}
	if len(a.cfg.Secret) == 0 {
		return Principal{}, fmt.Errorf("%w: verifier is not configured", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.cfg.Now),
		jwt.WithExpirationRequired(),
	}
	if a.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.cfg.Issuer))
	}
	if a.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(a.cfg.Audience))
	}

	var claims accessClaims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.cfg.Secret, nil
	}, opts...); err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return Principal{}, fmt.Errorf("%w: subject is required", ErrInvalidToken)
	}

	role := claims.UserMetadata.Role
	if role == "" {
		role = RoleUser
	}

	return Principal{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   role,
	}, nil
}

// RequireAuth rejects requests without a principal. The Location header
// points clients at the login route.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFromContext(r.Context()); !ok {
			w.Header().Set("Location", LoginPath)
			response.Unauthorized(w, r, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects principals whose role claim differs from role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				w.Header().Set("Location", LoginPath)
				response.Unauthorized(w, r, "Authentication required")
				return
			}
			if principal.Role != role {
				response.Forbidden(w, r, "Insufficient privileges")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithPrincipal stores a principal in context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// PrincipalFromContext returns the principal stored in context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(Principal)
	return p, ok
}

// GetUserID extracts the user ID from the request context
func GetUserID(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok || p.UserID == "" {
		return "", false
	}
	return p.UserID, true
}
