package middleware

import (
	"BalaghAPI/internal/adapter"
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/repository"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticVerifier map[string]*model.Session

func (v staticVerifier) VerifyToken(ctx context.Context, token string) (*model.Session, error) {
	if sess, ok := v[token]; ok {
		return sess, nil
	}
	return nil, helper.NewUnauthorizedError("")
}

func sessionEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			w.Write([]byte("anonymous"))
			return
		}
		w.Write([]byte(sess.User.ID))
	})
}

func TestAuthMiddleware(t *testing.T) {
	m := NewAuthMiddleware(staticVerifier{"good": {User: model.UserDTO{ID: "u1"}}})

	t.Run("Required Rejects Missing Token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.VerifyToken(sessionEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Required Accepts Bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		m.VerifyToken(sessionEcho()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u1", rec.Body.String())
	})

	t.Run("Optional Falls Back To Anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired")
		rec := httptest.NewRecorder()
		m.Optional(sessionEcho()).ServeHTTP(rec, req)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("Websocket Token From Query", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.VerifyWSToken(sessionEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?token=good", nil))
		assert.Equal(t, "u1", rec.Body.String())

		rec = httptest.NewRecorder()
		m.VerifyWSToken(sessionEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?token=bad", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := repository.NewRateLimitRepository(adapter.NewRedisAdapterFromClient(client))
	m := NewRateLimitMiddleware(repo, &config.AppConfig{})
	handler := m.Limit("signin", 2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", nil)
		req.RemoteAddr = "198.51.100.20:4000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusNoContent, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusNoContent, send().Code)
}

func TestRecover(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	})

	t.Run("Production Hides Detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Recover(false)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unexpected", body["kind"])
		assert.Equal(t, []any{"retry", "reload"}, body["actions"])
		assert.NotContains(t, body, "detail")
		assert.NotContains(t, body, "stack")
	})

	t.Run("Development Shows Detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Recover(true)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "nil map write", body["detail"])
		assert.NotEmpty(t, body["stack"])
	})
}
