package config

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	slogchi "github.com/samber/slog-chi"
)

func NewChi(cfg *AppConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(slogchi.New(slog.Default()))
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AppCorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := helper.NegotiateLocale(r.Header.Get("Accept-Language"), cfg.AppDefaultLocale)
			next.ServeHTTP(w, r.WithContext(helper.WithLocale(r.Context(), locale)))
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		locale := helper.LocaleFromContext(r.Context())
		helper.WriteError(w, helper.NewNotFoundError(helper.Message(locale, constant.MsgPageNotFound)))
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		helper.WriteError(w, helper.NewMethodNotAllowedError(""))
	})

	return r
}

// RequestTimeout is applied to plain HTTP routes only; the websocket route stays open.
func RequestTimeout() func(http.Handler) http.Handler {
	return middleware.Timeout(60 * time.Second)
}
