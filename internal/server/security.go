package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/QuestTown_Go/internal/logger"
)

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires the shared API key on every non-public path
func AuthMiddleware(apiKey string, trustedProxies []string, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ActivityLimits tunes the ActivityDetector
type ActivityLimits struct {
	FailedAuthAlert int           // failed logins per window before alerting
	RequestLimit    int           // requests per window before blocking
	Window          time.Duration // counters reset after this long
}

// DefaultActivityLimits returns the production limits
func DefaultActivityLimits() ActivityLimits {
	return ActivityLimits{
		FailedAuthAlert: DefaultFailedAuthAlert,
		RequestLimit:    DefaultRequestLimit,
		Window:          DefaultActivityWindow,
	}
}

// ActivityDetector counts requests and failed logins per client IP in
// fixed windows
type ActivityDetector struct {
	limits ActivityLimits
	now    func() time.Time

	mu          sync.Mutex
	failedAuth  map[string]int
	requests    map[string]int
	windowStart time.Time
}

// NewActivityDetector creates a detector with the given limits
func NewActivityDetector(limits ActivityLimits) *ActivityDetector {
	return newActivityDetector(limits, time.Now)
}

func newActivityDetector(limits ActivityLimits, now func() time.Time) *ActivityDetector {
	return &ActivityDetector{
		limits:      limits,
		now:         now,
		failedAuth:  make(map[string]int),
		requests:    make(map[string]int),
		windowStart: now(),
	}
}

// RecordFailedAuth counts a failed login and alerts past the threshold
func (d *ActivityDetector) RecordFailedAuth(ip string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rollWindow()
	d.failedAuth[ip]++

	if d.failedAuth[ip] >= d.limits.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", d.failedAuth[ip])
	}
}

// RecordRequest counts a request and reports false once the IP is over
// its limit for the current window
func (d *ActivityDetector) RecordRequest(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rollWindow()
	d.requests[ip]++

	count := d.requests[ip]
	if count <= d.limits.RequestLimit {
		return true
	}
	if count%highRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// requestCount is the current window's count for ip
func (d *ActivityDetector) requestCount(ip string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.requests[ip]
}

// rollWindow must be called with d.mu held
func (d *ActivityDetector) rollWindow() {
	now := d.now()
	if now.Sub(d.windowStart) <= d.limits.Window {
		return
	}
	d.requests = make(map[string]int)
	d.failedAuth = make(map[string]int)
	d.windowStart = now
}

// RateLimitMiddleware rejects clients over the detector's request limit
func RateLimitMiddleware(trustedProxies []string, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honored only
// when the direct peer is a trusted proxy, and then its last hop is used.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
