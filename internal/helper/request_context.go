package helper

import (
	"context"
)

type requestContextKey string

const (
	localeContextKey requestContextKey = "locale"
)

func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey, normalizeLocale(locale))
}

func LocaleFromContext(ctx context.Context) string {
	if ctx == nil {
		return DefaultLocale
	}

	value, ok := ctx.Value(localeContextKey).(string)
	if !ok || value == "" {
		return DefaultLocale
	}
	return value
}
