package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/park285/symptom-checker-go/internal/config"
)

func rateLimitConfig(rpm int) *config.Config {
	return &config.Config{HTTPRateLimit: config.HTTPRateLimitConfig{
		RequestsPerMinute: rpm,
		CacheSize:         10,
		CacheTTLSeconds:   int(time.Minute.Seconds()),
	}}
}

func serve(router *gin.Engine, path string, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = remoteAddr
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Unix(1_700_000_080, 0)

	router := gin.New()
	router.Use(rateLimit(rateLimitConfig(1), func() time.Time { return now }))
	router.POST("/check_symptoms", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/other", func(c *gin.Context) { c.Status(http.StatusOK) })

	if resp := serve(router, "/check_symptoms", "1.2.3.4:1234"); resp.Code != http.StatusOK {
		t.Fatalf("expected ok, got %d", resp.Code)
	}

	resp := serve(router, "/check_symptoms", "1.2.3.4:1234")
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected rate limit, got %d", resp.Code)
	}
	if resp.Body.String() != `{"error":"Too many requests. Please try again later."}` {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
	if resp.Header().Get("Retry-After") != "20" {
		t.Fatalf("unexpected Retry-After: %s", resp.Header().Get("Retry-After"))
	}

	if resp := serve(router, "/check_symptoms", "5.6.7.8:1234"); resp.Code != http.StatusOK {
		t.Fatalf("other client must not be limited, got %d", resp.Code)
	}
	if resp := serve(router, "/other", "1.2.3.4:1234"); resp.Code != http.StatusOK {
		t.Fatalf("unprotected path must not be limited, got %d", resp.Code)
	}

	now = now.Add(time.Minute)
	if resp := serve(router, "/check_symptoms", "1.2.3.4:1234"); resp.Code != http.StatusOK {
		t.Fatalf("expected new window to reset, got %d", resp.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(rateLimitConfig(0)))
	router.POST("/check_symptoms", func(c *gin.Context) { c.Status(http.StatusOK) })

	for range 5 {
		if resp := serve(router, "/check_symptoms", "1.2.3.4:1234"); resp.Code != http.StatusOK {
			t.Fatalf("expected ok, got %d", resp.Code)
		}
	}
}

func TestRateLimitIdentityPrefersAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/check_symptoms", nil)
	c.Request.Header.Set("X-API-Key", "secret")
	c.Request.Header.Set("X-Forwarded-For", "9.9.9.9")

	identity := rateLimitIdentity(c, true)
	if identity != "key:"+hashKey("secret") {
		t.Fatalf("unexpected identity: %s", identity)
	}
	if len(hashKey("secret")) != 16 {
		t.Fatalf("expected 16 char hash")
	}
}

func TestRateLimitIdentityIgnoresUncheckedKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/check_symptoms", nil)
	c.Request.RemoteAddr = "1.2.3.4:1234"
	c.Request.Header.Set("X-API-Key", "secret")

	if identity := rateLimitIdentity(c, false); identity != "ip:1.2.3.4" {
		t.Fatalf("unexpected identity: %s", identity)
	}
}

func TestRateLimitRotatingKeysWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Unix(1_700_000_000, 0)

	router := gin.New()
	router.Use(rateLimit(rateLimitConfig(2), func() time.Time { return now }))
	router.POST("/check_symptoms", func(c *gin.Context) { c.Status(http.StatusOK) })

	accepted := 0
	for i := range 10 {
		req := httptest.NewRequest(http.MethodPost, "/check_symptoms", nil)
		req.RemoteAddr = "1.2.3.4:1234"
		req.Header.Set("X-API-Key", "k"+string(rune('a'+i)))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code == http.StatusOK {
			accepted++
		}
	}
	if accepted != 2 {
		t.Fatalf("expected 2 accepted, got %d", accepted)
	}
}

func TestRateLimitCountsPerKeyWithAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Unix(1_700_000_000, 0)
	cfg := rateLimitConfig(1)
	cfg.HTTPAuth.APIKey = "secret"

	router := gin.New()
	router.Use(rateLimit(cfg, func() time.Time { return now }))
	router.POST("/check_symptoms", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, addr := range []string{"1.2.3.4:1234", "5.6.7.8:1234"} {
		req := httptest.NewRequest(http.MethodPost, "/check_symptoms", nil)
		req.RemoteAddr = addr
		req.Header.Set("X-API-Key", "secret")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if addr == "1.2.3.4:1234" && resp.Code != http.StatusOK {
			t.Fatalf("expected ok, got %d", resp.Code)
		}
		if addr == "5.6.7.8:1234" && resp.Code != http.StatusTooManyRequests {
			t.Fatalf("same key from another address must share the window, got %d", resp.Code)
		}
	}
}
