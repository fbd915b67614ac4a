package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func resetRateLimiter(rps, burst int) {
	mu.Lock()
	visitors = make(map[string]*visitor)
	requestsPerSecond = rps
	burstSize = burst
	mu.Unlock()
}

func rateLimitedRequest(e *echo.Echo, handler echo.HandlerFunc, ip string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.RemoteAddr = ip
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, handler(c)
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	resetRateLimiter(5, 10)

	e := echo.New()
	handler := RateLimiter()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for i := 0; i < 5; i++ {
		rec, err := rateLimitedRequest(e, handler, "10.0.0.7:43210")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiterWithConfigRejectsBeyondBurst(t *testing.T) {
	resetRateLimiter(5, 10)

	e := echo.New()
	handler := RateLimiterWithConfig(2, 4)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for i := 0; i < 4; i++ {
		rec, err := rateLimitedRequest(e, handler, "10.0.0.8:43210")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// SendError writes the response itself and returns nil
	rec, err := rateLimitedRequest(e, handler, "10.0.0.8:43210")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiterTracksIPsIndependently(t *testing.T) {
	resetRateLimiter(5, 10)

	e := echo.New()
	handler := RateLimiter()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, ip := range []string{"10.0.1.1:1234", "10.0.1.2:1234", "10.0.1.3:1234"} {
		for i := 0; i < 5; i++ {
			rec, err := rateLimitedRequest(e, handler, ip)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code, "request %d for %s", i, ip)
		}
	}
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For header",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.10"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.10",
		},
		{
			name:       "X-Real-IP header",
			headers:    map[string]string{"X-Real-IP": "203.0.113.11"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.11",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.10",
				"X-Real-IP":       "203.0.113.11",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.10",
		},
		{
			name:       "falls back to remote address",
			headers:    map[string]string{},
			remoteAddr: "203.0.113.12:12345",
			expected:   "203.0.113.12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}

func TestStaleVisitorsExpire(t *testing.T) {
	mu.Lock()
	visitors = map[string]*visitor{
		"stale_ip":  {limiter: nil, lastSeen: time.Now().Add(-5 * time.Minute)},
		"active_ip": {limiter: nil, lastSeen: time.Now()},
	}
	mu.Unlock()

	// Same sweep cleanupVisitors performs once a minute
	mu.Lock()
	for ip, v := range visitors {
		if time.Since(v.lastSeen) > 3*time.Minute {
			delete(visitors, ip)
		}
	}
	mu.Unlock()

	mu.RLock()
	_, staleExists := visitors["stale_ip"]
	_, activeExists := visitors["active_ip"]
	mu.RUnlock()

	assert.False(t, staleExists)
	assert.True(t, activeExists)
}

func TestRateLimiterConcurrentAccess(t *testing.T) {
	resetRateLimiter(5, 10)

	e := echo.New()
	handler := RateLimiter()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	var wg sync.WaitGroup
	var countsMu sync.Mutex
	successCount := 0
	limitedCount := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rec, err := rateLimitedRequest(e, handler, "10.0.2.1:12345")
			if err != nil {
				return
			}

			countsMu.Lock()
			switch rec.Code {
			case http.StatusOK:
				successCount++
			case http.StatusTooManyRequests:
				limitedCount++
			}
			countsMu.Unlock()
		}()
	}

	wg.Wait()

	assert.Greater(t, successCount, 0)
	assert.Greater(t, limitedCount, 0)
	assert.Equal(t, 20, successCount+limitedCount)
}
