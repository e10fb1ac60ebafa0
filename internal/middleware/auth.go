package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"

	"github.com/stockpredictor/backend/pkg/logger"
)

type Middleware struct {
	AuthClient *auth.Client
	// DevMode skips token verification and injects a fixed local identity.
	// Set once from config at startup; never toggled at runtime.
	DevMode bool
}

func NewMiddleware(client *auth.Client, devMode bool) *Middleware {
	return &Middleware{AuthClient: client, DevMode: devMode}
}

// context keys
type contextKey string

const (
	UIDKey   contextKey = "uid"
	EmailKey contextKey = "email"
)

const devUID = "dev-user"

// FirebaseAuth verifies the bearer token and stores uid/email in context.
func (m *Middleware) FirebaseAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.DevMode {
			ctx := context.WithValue(r.Context(), UIDKey, devUID)
			ctx = context.WithValue(ctx, EmailKey, "dev@localhost")
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "missing Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
			return
		}

		token, err := m.AuthClient.VerifyIDToken(r.Context(), parts[1])
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UIDKey, token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			ctx = context.WithValue(ctx, EmailKey, email)
		}
		_, ctx = logger.With(ctx, "uid", token.UID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UID extracts the authenticated user id from context.
func UID(ctx context.Context) string {
	uid, _ := ctx.Value(UIDKey).(string)
	return uid
}

// Email extracts the authenticated email from context.
func Email(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}
