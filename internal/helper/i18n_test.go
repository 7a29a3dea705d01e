package helper

import (
	"BalaghAPI/internal/constant"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiateLocale(t *testing.T) {
	assert.Equal(t, "ar", NegotiateLocale("", "ar"))
	assert.Equal(t, "en", NegotiateLocale("en-US,en;q=0.9", "ar"))
	assert.Equal(t, "ar", NegotiateLocale("ar-DZ", "en"))
	assert.Equal(t, "en", NegotiateLocale("fr-FR;q=0.9,en;q=0.5", "ar"))
	assert.Equal(t, "ar", NegotiateLocale("", "de"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "You can upload up to 5 files", Message("en", constant.MsgMaxFilesReached, 5))
	assert.Equal(t, constant.Messages["ar"][constant.MsgLiked], Message("xx", constant.MsgLiked))
	assert.Equal(t, "missing.key", Message("en", constant.MessageKey("missing.key")))
}

func TestLocaleContext(t *testing.T) {
	assert.Equal(t, DefaultLocale, LocaleFromContext(context.Background()))
	assert.Equal(t, "en", LocaleFromContext(WithLocale(context.Background(), "en")))
	assert.Equal(t, DefaultLocale, LocaleFromContext(WithLocale(context.Background(), "zz")))
}
