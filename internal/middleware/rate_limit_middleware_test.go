package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	m := &RateLimitMiddleware{trustedProxies: parsePrefixes([]string{"10.0.0.0/8", "not-a-cidr"})}

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		realIP     string
		want       string
	}{
		{name: "Untrusted Peer Ignores Headers", remoteAddr: "198.51.100.20:1234", forwarded: "203.0.113.1", want: "198.51.100.20"},
		{name: "Right Most Untrusted Hop", remoteAddr: "10.0.0.1:1234", forwarded: "1.1.1.1, 2.2.2.2, 198.51.100.10", want: "198.51.100.10"},
		{name: "Skips Trusted Chain", remoteAddr: "10.0.0.1:1234", forwarded: "203.0.113.10, 10.1.1.1", want: "203.0.113.10"},
		{name: "All Hops Trusted", remoteAddr: "10.0.0.1:1234", forwarded: "10.2.2.2, 10.1.1.1", want: "10.2.2.2"},
		{name: "Falls Back To X-Real-IP", remoteAddr: "10.0.0.1:1234", realIP: "198.51.100.11", want: "198.51.100.11"},
		{name: "Garbage Header Uses Peer", remoteAddr: "10.0.0.1:1234", forwarded: "unknown", want: "10.0.0.1"},
		{name: "IPv6 Peer", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			assert.Equal(t, tt.want, m.ClientIP(req))
		})
	}

	assert.Len(t, m.trustedProxies, 1)
}
