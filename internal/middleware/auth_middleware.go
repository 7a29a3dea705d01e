package middleware

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const SessionContextKey contextKey = "sessionContext"

// TokenVerifier resolves a bearer token into the caller's session.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, accessToken string) (*model.Session, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// SessionFromContext returns the per-request session snapshot, if any.
func SessionFromContext(ctx context.Context) (*model.Session, bool) {
	sess, ok := ctx.Value(SessionContextKey).(*model.Session)
	return sess, ok && sess != nil
}

func BearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func (m *AuthMiddleware) VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := BearerToken(r)
		if tokenString == "" {
			locale := helper.LocaleFromContext(r.Context())
			helper.WriteError(w, helper.NewUnauthorizedError(helper.Message(locale, constant.MsgLoginRequired)))
			return
		}

		sess, err := m.verifier.VerifyToken(r.Context(), tokenString)
		if err != nil {
			helper.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional attaches the session when a valid token is present and otherwise
// lets the request through anonymously.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := BearerToken(r)
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := m.verifier.VerifyToken(r.Context(), tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifyWSToken reads the token from the query string, since browsers cannot
// set headers on a websocket handshake. A missing token is allowed: the socket
// then carries only public events until the client signs in.
func (m *AuthMiddleware) VerifyWSToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := m.verifier.VerifyToken(r.Context(), tokenString)
		if err != nil {
			helper.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
