package server

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"resumatch/internal/config"
	"resumatch/internal/errors"
	"resumatch/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

const defaultIdleWindow = 10 * time.Minute

// client is one caller's token bucket
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out a token bucket per caller key (API key or client IP)
// and forgets callers that stay idle longer than the configured window.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client

	limit rate.Limit
	burst int
	idle  time.Duration

	allowed  atomic.Int64
	rejected atomic.Int64

	done     chan struct{}
	stopOnce sync.Once
	logger   *errors.Logger
}

// NewRateLimiter starts a limiter allowing cfg.RequestsPerMin per caller with
// a bucket of cfg.BurstCapacity. Close stops its sweep goroutine.
func NewRateLimiter(cfg config.RateLimitConfig, logger *errors.Logger) *RateLimiter {
	if logger == nil {
		logger = errors.NewNopLogger()
	}
	idle := cfg.Window
	if idle <= 0 {
		idle = defaultIdleWindow
	}

	rl := &RateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(float64(cfg.RequestsPerMin) / 60),
		burst:   cfg.BurstCapacity,
		idle:    idle,
		done:    make(chan struct{}),
		logger:  logger,
	}
	go rl.sweepLoop()
	return rl
}

// Allow takes a token from key's bucket without blocking.
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	allowed := c.limiter.AllowN(now, 1)
	rl.mu.Unlock()

	if allowed {
		rl.allowed.Add(1)
	} else {
		rl.rejected.Add(1)
	}
	return allowed
}

// GetStats reports the limiter settings and decision counters.
func (rl *RateLimiter) GetStats() map[string]any {
	rl.mu.Lock()
	tracked := len(rl.clients)
	rl.mu.Unlock()

	return map[string]any{
		"tracked_clients": tracked,
		"rate_per_minute": float64(rl.limit) * 60,
		"burst_capacity":  rl.burst,
		"idle_window":     rl.idle.String(),
		"allowed_total":   rl.allowed.Load(),
		"rejected_total":  rl.rejected.Load(),
	}
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(rl.idle)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep(rl.idle)
		case <-rl.done:
			return
		}
	}
}

// sweep drops callers not seen within maxIdle
func (rl *RateLimiter) sweep(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)

	rl.mu.Lock()
	removed := 0
	for key, c := range rl.clients {
		if !c.lastSeen.After(cutoff) {
			delete(rl.clients, key)
			removed++
		}
	}
	remaining := len(rl.clients)
	rl.mu.Unlock()

	rl.logger.Debug("Rate limiter sweep completed",
		"removed", removed,
		"remaining", remaining)
}

// Close stops the sweep goroutine. It is safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

// createRateLimitMiddleware limits requests per caller and counts every
// rejection as a rate limit hit.
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	return s.rateLimitMiddleware(func(r *http.Request) {
		om.GetMetrics().RecordBusinessMetric(r.Context(), observability.MetricRateLimitHit, false, om,
			attribute.String("endpoint", r.URL.Path),
			attribute.String("method", r.Method))
	})
}

// rateLimitMiddleware answers 429 once a caller's bucket is empty. onLimited
// runs before the response is written.
func (s *Server) rateLimitMiddleware(onLimited func(*http.Request)) func(http.HandlerFunc) http.HandlerFunc {
	if s.RateLimiter == nil || s.RateLimit == nil {
		return func(next http.HandlerFunc) http.HandlerFunc { return next }
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			key := getRateLimitKey(r, s.RateLimit.ByAPIKey, s.RateLimit.ByIP)
			if key == "" || s.RateLimiter.Allow(key) {
				next(w, r)
				return
			}

			s.Logger.Info("Rate limit exceeded",
				"key", maskRateLimitKey(key),
				"endpoint", r.URL.Path)
			if onLimited != nil {
				onLimited(r)
			}
			w.Header().Set("Retry-After", "60")
			writeErrorResponse(w, "Rate limit exceeded", "Too many requests", http.StatusTooManyRequests)
		}
	}
}

// getRateLimitKey prefers the caller's API key and falls back to its IP.
// An empty key means the request is not limited.
func getRateLimitKey(r *http.Request, byAPIKey, byIP bool) string {
	if byAPIKey {
		if apiKey := requestAPIKey(r); apiKey != "" {
			return "api:" + apiKey
		}
	}
	if byIP {
		return "ip:" + getClientIP(r)
	}
	return ""
}

func maskRateLimitKey(key string) string {
	if apiKey, ok := strings.CutPrefix(key, "api:"); ok {
		return "api:" + maskAPIKey(apiKey)
	}
	return key
}

// getClientIP returns the first valid address from X-Forwarded-For, then
// X-Real-IP, then the connection's remote address.
func getClientIP(r *http.Request) string {
	for candidate := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
		if addr, err := netip.ParseAddr(strings.TrimSpace(candidate)); err == nil {
			return addr.String()
		}
	}

	if addr, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return addr.String()
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
