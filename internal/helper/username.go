package helper

import (
	"regexp"
	"strings"
)

var nonAlphanumericUnderscoreRegex = regexp.MustCompile(`[^a-z0-9_]`)

func NormalizeUsername(username string) string {
	username = strings.ToLower(strings.TrimSpace(username))

	return nonAlphanumericUnderscoreRegex.ReplaceAllString(username, "")
}

// DefaultUsername derives a username from the e-mail local part when none was given.
func DefaultUsername(email string) string {
	username := NormalizeUsername(EmailLocalPart(email))
	if len(username) > UsernameMaxLength {
		username = username[:UsernameMaxLength]
	}
	for len(username) < UsernameMinLength {
		username += "_"
	}
	return username
}
