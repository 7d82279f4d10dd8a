package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ok", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", nil)
	})
	return r
}

func do(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	t.Run("generates an id", func(t *testing.T) {
		w := do(r, http.MethodGet, "/ok", nil)
		id := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, decode(t, w).RequestID)
	})

	t.Run("reuses a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		w := do(r, http.MethodGet, "/ok", map[string]string{"X-Request-ID": incoming})
		assert.Equal(t, incoming, w.Header().Get("X-Request-ID"))
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		w := do(r, http.MethodGet, "/ok", map[string]string{"X-Request-ID": "<script>"})
		assert.NotEqual(t, "<script>", w.Header().Get("X-Request-ID"))
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperror.BadGateway("Failed to load job listings", errors.New("status 500 from upstream")))
	})
	r.GET("/internal", func(c *gin.Context) {
		_ = c.Error(errors.New("db password is hunter2"))
	})

	w := do(r, http.MethodGet, "/app", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := decode(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Failed to load job listings", body.Message)
	assert.NotContains(t, w.Body.String(), "upstream")

	w = do(r, http.MethodGet, "/internal", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(CORSMiddleware([]string{"http://localhost:3000"}))

	w := do(r, http.MethodGet, "/ok", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodGet, "/ok", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodOptions, "/ok", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodOptions, "/ok", map[string]string{"Origin": "https://evil.example.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(newEngine(CORSMiddleware([]string{"*"})), http.MethodGet, "/ok", map[string]string{"Origin": "https://any.example.com"})
	assert.Equal(t, "https://any.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	w := do(newEngine(SecurityHeadersMiddleware()), http.MethodGet, "/ok", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
}

func TestRateLimitMiddlewareInMemory(t *testing.T) {
	r := newEngine(RateLimitMiddleware(DefaultRateLimitConfig(2, time.Minute)))

	for i := 0; i < 2; i++ {
		w := do(r, http.MethodGet, "/ok", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, "2", do(newEngine(RateLimitMiddleware(DefaultRateLimitConfig(2, time.Minute))), http.MethodGet, "/ok", nil).Header().Get("X-RateLimit-Limit"))

	w := do(r, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestMemoryStoreWindowReset(t *testing.T) {
	store := &memoryStore{}
	cfg := DefaultRateLimitConfig(1, time.Second)
	now := time.Now()

	count, _ := store.check("k", cfg, now)
	assert.Equal(t, 1, count)
	count, _ = store.check("k", cfg, now.Add(500*time.Millisecond))
	assert.Equal(t, 2, count)
	count, _ = store.check("k", cfg, now.Add(2*time.Second))
	assert.Equal(t, 1, count)
}

func newRedisClient(t *testing.T, mr *miniredis.Miniredis) *goredis.Client {
	t.Helper()
	client := goredis.NewClient(&goredis.Options{
		Addr:        mr.Addr(),
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRateLimitMiddlewareRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := DefaultRateLimitConfig(2, time.Minute)
	cfg.Client = newRedisClient(t, mr)
	r := newEngine(RateLimitMiddleware(cfg))

	key := "rl:jobs:192.0.2.1"

	w := do(r, http.MethodGet, "/ok", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	got, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Equal(t, time.Minute, mr.TTL(key))

	w = do(r, http.MethodGet, "/ok", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = do(r, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	got, err = mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	t.Run("window expiry resets the counter", func(t *testing.T) {
		mr.FastForward(time.Minute + time.Second)
		w := do(r, http.MethodGet, "/ok", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	})
}

func TestRateLimitMiddlewareRedisDownFallsBackToMemory(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := DefaultRateLimitConfig(2, time.Minute)
	cfg.Client = newRedisClient(t, mr)
	r := newEngine(RateLimitMiddleware(cfg))

	mr.Close()

	// the in-memory store takes over and keeps counting
	w := do(r, http.MethodGet, "/ok", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = do(r, http.MethodGet, "/ok", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestCheckRateLimitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := newRedisClient(t, mr)
	cfg := DefaultRateLimitConfig(5, 30*time.Second)

	for want := 1; want <= 3; want++ {
		count, resetAt, err := checkRateLimitRedis(context.Background(), client, "rl:test", cfg)
		require.NoError(t, err)
		assert.Equal(t, want, count)
		assert.WithinDuration(t, time.Now().Add(30*time.Second), resetAt, 2*time.Second)
	}
}
