//go:build unit

package middleware

import (
	"net/http"
	"testing"
	"time"

	"restaurant-reservations/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(60, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "burst exhausted")
	assert.True(t, l.Allow("10.0.0.2"), "buckets are per IP")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "one token refills per second at 60/min")
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestIPRateLimiter_EvictsIdleVisitors(t *testing.T) {
	now := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	now = now.Add(limiterIdleTTL + time.Minute)
	l.Allow("10.0.0.2")

	assert.NotContains(t, l.visitors, "10.0.0.1")
	assert.Contains(t, l.visitors, "10.0.0.2")
}

func TestIPRateLimiter_SweepsAtMostOncePerInterval(t *testing.T) {
	now := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	l.visitors["10.0.0.9"] = &visitor{lastSeen: now.Add(-2 * limiterIdleTTL)}

	now = now.Add(limiterSweepInterval / 2)
	l.Allow("10.0.0.2")
	assert.Contains(t, l.visitors, "10.0.0.9", "no sweep before the interval elapses")

	now = now.Add(limiterSweepInterval)
	l.Allow("10.0.0.2")
	assert.NotContains(t, l.visitors, "10.0.0.9")
	assert.Contains(t, l.visitors, "10.0.0.1")
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := NewIPRateLimiter(1, 1)
	router := gin.New()
	router.POST("/auth/login", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.PerformRequest(t, router, http.MethodPost, "/auth/login", nil, "")
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.PerformRequest(t, router, http.MethodPost, "/auth/login", nil, "")
	httptest.AssertErrorKind(t, second, http.StatusTooManyRequests, "RATE_LIMITED")
	httptest.AssertHeaders(t, second, map[string]string{"Retry-After": "60"})
}
