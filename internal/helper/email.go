package helper

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
)

func GenerateEmailBody(templateFS embed.FS, templateName string, data any) (string, error) {
	t, err := template.ParseFS(templateFS, templateName)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", err
	}

	return body.String(), nil
}

// NormalizeEmail lowercases and trims. Aliases stay distinct accounts.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func EmailLocalPart(email string) string {
	email = NormalizeEmail(email)
	if at := strings.LastIndex(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
