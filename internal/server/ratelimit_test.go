package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resumatch/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "203.0.113.5:5555", "203.0.113.5"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "garbage, 198.51.100.1, 10.0.0.1"}, "10.0.0.2:1", "198.51.100.1"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.9"}, "10.0.0.2:1", "198.51.100.9"},
		{"invalid real ip", map[string]string{"X-Real-IP": "nope"}, "10.0.0.2:1", "10.0.0.2"},
		{"remote without port", nil, "10.0.0.3", "10.0.0.3"},
		{"ipv6 forwarded", map[string]string{"X-Forwarded-For": " 2001:db8::1 "}, "10.0.0.2:1", "2001:db8::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(r))
		})
	}
}

func TestGetRateLimitKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.5:80"
	assert.Equal(t, "ip:203.0.113.5", getRateLimitKey(r, true, true), "falls back to IP without a key")
	assert.Equal(t, "", getRateLimitKey(r, true, false))

	r.Header.Set("X-API-Key", "k1")
	assert.Equal(t, "api:k1", getRateLimitKey(r, true, true))
	assert.Equal(t, "ip:203.0.113.5", getRateLimitKey(r, false, true))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerMin: 60, BurstCapacity: 2}, nil)
	defer rl.Close()

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))

	stats := rl.GetStats()
	assert.Equal(t, 2, stats["tracked_clients"])
	assert.Equal(t, 2, stats["burst_capacity"])
	assert.Equal(t, "10m0s", stats["idle_window"])
	assert.InDelta(t, 60.0, stats["rate_per_minute"], 0.001)
	assert.Equal(t, int64(3), stats["allowed_total"])
	assert.Equal(t, int64(1), stats["rejected_total"])

	rl.sweep(0)
	assert.Equal(t, 0, rl.GetStats()["tracked_clients"])

	rl.Close() // idempotent
}

func TestMaskRateLimitKey(t *testing.T) {
	assert.Equal(t, "api:abcdefgh****", maskRateLimitKey("api:abcdefghijkl"))
	assert.Equal(t, "ip:203.0.113.5", maskRateLimitKey("ip:203.0.113.5"))
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "abcdefgh****", maskAPIKey("abcdefghijkl"))
}
