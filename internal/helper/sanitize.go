package helper

import (
	"regexp"
	"strings"
)

var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	markupTagPattern   = regexp.MustCompile(`<[^>]*>`)
	htmlTagPattern     = regexp.MustCompile(`(?s)<(/?)([a-zA-Z][a-zA-Z0-9]*)\b[^>]*>`)
)

var displayAllowedTags = map[string]bool{
	"p":      true,
	"br":     true,
	"strong": true,
	"em":     true,
	"ul":     true,
	"ol":     true,
	"li":     true,
}

// Sanitize removes script blocks and every remaining markup tag, then trims.
// It runs on every free-text field right before it is persisted.
func Sanitize(input string) string {
	cleaned := scriptBlockPattern.ReplaceAllString(input, "")
	cleaned = markupTagPattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// SanitizeHTML keeps only inline formatting tags, stripped of their attributes.
func SanitizeHTML(input string) string {
	cleaned := scriptBlockPattern.ReplaceAllString(input, "")
	return htmlTagPattern.ReplaceAllStringFunc(cleaned, func(tag string) string {
		parts := htmlTagPattern.FindStringSubmatch(tag)
		name := strings.ToLower(parts[2])
		if !displayAllowedTags[name] {
			return ""
		}
		if parts[1] == "/" {
			return "</" + name + ">"
		}
		return "<" + name + ">"
	})
}
