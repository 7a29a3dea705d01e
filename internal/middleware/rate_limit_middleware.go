package middleware

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/repository"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"
)

// RateLimitMiddleware counts requests per signed-in user, or per client address for anonymous callers.
type RateLimitMiddleware struct {
	repo           *repository.RateLimitRepository
	trustedProxies []netip.Prefix
}

func NewRateLimitMiddleware(repo *repository.RateLimitRepository, cfg *config.AppConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		repo:           repo,
		trustedProxies: parsePrefixes(cfg.TrustedProxyCIDRs),
	}
}

func (m *RateLimitMiddleware) Limit(keyName string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject := repository.RateSubject{ClientIP: m.ClientIP(r)}
			if sess, ok := SessionFromContext(r.Context()); ok {
				subject = repository.RateSubject{UserID: sess.User.ID}
			}

			decision, err := m.repo.Hit(r.Context(), keyName, subject, limit, window)
			if err != nil {
				slog.Error("Rate limit check failed", "error", err, "action", keyName)
				helper.WriteError(w, helper.NewServiceUnavailableError("Rate limiting service unavailable"))
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(decision.Reset.Seconds())))

			if !decision.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(decision.Reset.Seconds()))))

				locale := helper.LocaleFromContext(r.Context())
				helper.WriteError(w, helper.NewTooManyRequestsError(helper.Message(locale, constant.MsgTooManyRequests)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP walks X-Forwarded-For from the right, past trusted proxies, and falls back to
// X-Real-IP. Forwarding headers count only when the direct peer is trusted.
func (m *RateLimitMiddleware) ClientIP(r *http.Request) string {
	peer, ok := parseAddr(r.RemoteAddr)
	if !ok {
		return r.RemoteAddr
	}
	if !m.trusted(peer) {
		return peer.String()
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	var leftmost netip.Addr
	for i := len(hops) - 1; i >= 0; i-- {
		hop, ok := parseAddr(hops[i])
		if !ok {
			continue
		}
		if !m.trusted(hop) {
			return hop.String()
		}
		leftmost = hop
	}
	if leftmost.IsValid() {
		return leftmost.String()
	}

	if realIP, ok := parseAddr(r.Header.Get("X-Real-IP")); ok && !m.trusted(realIP) {
		return realIP.String()
	}
	return peer.String()
}

func (m *RateLimitMiddleware) trusted(addr netip.Addr) bool {
	for _, prefix := range m.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func parsePrefixes(cidrs []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, cidr := range cidrs {
		prefix, err := netip.ParsePrefix(strings.TrimSpace(cidr))
		if err != nil {
			slog.Warn("Ignoring invalid trusted proxy CIDR", "cidr", cidr, "error", err)
			continue
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	return prefixes
}

// parseAddr accepts a bare address or host:port, bracketed IPv6 included.
func parseAddr(value string) (netip.Addr, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return netip.Addr{}, false
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	addr, err := netip.ParseAddr(strings.Trim(value, "[]"))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
