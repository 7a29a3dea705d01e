package helper

import (
	"BalaghAPI/internal/constant"
	"fmt"

	"golang.org/x/text/language"
)

const DefaultLocale = "ar"

var (
	localeCodes   = []string{"ar", "en"}
	localeMatcher = language.NewMatcher([]language.Tag{language.Arabic, language.English})
)

func NegotiateLocale(acceptLanguage, fallback string) string {
	fallback = normalizeLocale(fallback)
	if acceptLanguage == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return localeCodes[index]
}

func normalizeLocale(locale string) string {
	if _, ok := constant.Messages[locale]; ok {
		return locale
	}
	return DefaultLocale
}

// Message looks up a catalog entry, falling back to the default locale.
func Message(locale string, key constant.MessageKey, args ...any) string {
	text, ok := constant.Messages[normalizeLocale(locale)][key]
	if !ok {
		text, ok = constant.Messages[DefaultLocale][key]
		if !ok {
			return string(key)
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}
