package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	authdomain "flowspace-go/internal/domain/auth"
	"flowspace-go/pkg/logger"
)

type contextKey int

const sessionKey contextKey = iota

type TokenVerifier interface {
	VerifyToken(token string) (*authdomain.Session, error)
}

type SessionAuth struct {
	verifier   TokenVerifier
	cookieName string
	log        logger.Logger
}

func NewSessionAuth(verifier TokenVerifier, cookieName string, log logger.Logger) *SessionAuth {
	return &SessionAuth{verifier: verifier, cookieName: cookieName, log: log}
}

// Middleware authenticates the request from the session cookie, falling
// back to a bearer token for non-browser clients.
func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := a.sessionToken(r)
		if !ok {
			unauthorized(w)
			return
		}

		session, err := a.verifier.VerifyToken(token)
		if err != nil {
			a.log.BusinessError("auth: token rejected", err, "path", r.URL.Path)
			unauthorized(w)
			return
		}

		ctx := WithSession(r.Context(), *session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards employee administration routes. It must run after
// Middleware.
func (a *SessionAuth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			unauthorized(w)
			return
		}
		if !session.Role.Admin() {
			writeError(w, http.StatusForbidden, "forbidden", "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *SessionAuth) sessionToken(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(a.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return bearerToken(r.Header.Get("Authorization"))
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func WithSession(ctx context.Context, session authdomain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

func SessionFromContext(ctx context.Context) (authdomain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(authdomain.Session)
	if !ok || session.UserID == "" {
		return authdomain.Session{}, false
	}
	return session, true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
