package adapter

import (
	"BalaghAPI/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageAdapterKeyFromURL(t *testing.T) {
	s := NewStorageAdapter(&config.AppConfig{S3PublicDomain: "https://cdn.example.com/"}, nil)

	tests := []struct {
		name string
		url  string
		key  string
		ok   bool
	}{
		{"Own Object", "https://cdn.example.com/report-media/u1/a.jpg", "report-media/u1/a.jpg", true},
		{"Other Host", "https://evil.example.net/report-media/u1/a.jpg", "", false},
		{"Bare Domain", "https://cdn.example.com/", "", false},
		{"Parent Traversal", "https://cdn.example.com/report-media/../secret.txt", "", false},
		{"Query String", "https://cdn.example.com/report-media/a.jpg?x=1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := s.KeyFromURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}

	t.Run("Round Trips Public URL", func(t *testing.T) {
		key, ok := s.KeyFromURL(s.PublicURL("report-media/u2/b.png"))
		assert.True(t, ok)
		assert.Equal(t, "report-media/u2/b.png", key)
	})
}
