package middleware

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

type fallbackBody struct {
	Error     string           `json:"error"`
	Kind      helper.ErrorKind `json:"kind"`
	Title     string           `json:"title"`
	Retryable bool             `json:"retryable"`
	Actions   []string         `json:"actions"`
	Detail    string           `json:"detail,omitempty"`
	Stack     string           `json:"stack,omitempty"`
}

// Recover is the top-level error boundary. The panic value and stack reach the
// client only in development.
func Recover(development bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := string(debug.Stack())
				slog.Error("Recovered from panic", "panic", rec, "path", r.URL.Path, "stack", stack)

				locale := helper.LocaleFromContext(r.Context())
				body := fallbackBody{
					Error:     helper.Message(locale, constant.MsgUnexpected),
					Kind:      helper.KindUnexpected,
					Title:     helper.Message(locale, constant.MsgUnexpectedTitle),
					Retryable: true,
					Actions:   []string{"retry", "reload"},
				}
				if development {
					body.Detail = fmt.Sprint(rec)
					body.Stack = stack
				}
				helper.WriteJSON(w, http.StatusInternalServerError, body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
