package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/park285/symptom-checker-go/internal/cache"
	"github.com/park285/symptom-checker-go/internal/config"
	"github.com/park285/symptom-checker-go/internal/httperror"
)

const rateLimitWindow = time.Minute

// fixedWindow 는 식별자별 분 단위 고정 윈도우 카운터다.
// 카운트는 TTL 캐시에 두므로 지난 윈도우 키는 자연히 만료된다.
type fixedWindow struct {
	limit  int
	counts *cache.TTLCache[string, int]
	now    func() time.Time
}

// take 는 요청 하나를 센다. 한도를 넘으면 다음 윈도우까지 남은 시간을 함께 반환한다.
func (w *fixedWindow) take(identity string) (bool, time.Duration) {
	now := w.now()
	start := now.Truncate(rateLimitWindow)
	key := identity + "@" + strconv.FormatInt(start.Unix(), 10)

	count := w.counts.Modify(key, func(current int, _ bool) int { return current + 1 })
	if count <= w.limit {
		return true, 0
	}
	return false, start.Add(rateLimitWindow).Sub(now)
}

// RateLimit 는 클라이언트별 분당 요청 제한 미들웨어다.
// RequestsPerMinute 가 0 이면 제한하지 않는다.
func RateLimit(cfg *config.Config) gin.HandlerFunc {
	return rateLimit(cfg, time.Now)
}

func rateLimit(cfg *config.Config, now func() time.Time) gin.HandlerFunc {
	if cfg == nil || cfg.HTTPRateLimit.RequestsPerMinute <= 0 {
		return passThrough
	}

	window := &fixedWindow{
		limit: cfg.HTTPRateLimit.RequestsPerMinute,
		counts: cache.NewTTLCache[string, int](
			cfg.HTTPRateLimit.CacheSize,
			time.Duration(cfg.HTTPRateLimit.CacheTTLSeconds)*time.Second,
		),
		now: now,
	}
	keyed := cfg.HTTPAuth.APIKey != ""

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || !isProtected(c.Request.URL.Path) {
			c.Next()
			return
		}

		allowed, retryAfter := window.take(rateLimitIdentity(c, keyed))
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int((retryAfter+time.Second-1)/time.Second)))
			abortWithError(c, httperror.NewRateLimitExceeded("Too many requests. Please try again later."))
			return
		}
		c.Next()
	}
}

// keyed 이면 APIKeyAuth 가 이미 검증한 키 단위로, 아니면 gin 의 ClientIP 단위로 센다.
// 검증되지 않은 키는 식별자로 쓰지 않는다.
func rateLimitIdentity(c *gin.Context, keyed bool) string {
	if key := apiKeyFrom(c.Request.Header); keyed && key != "" {
		return "key:" + hashKey(key)
	}
	if ip := c.ClientIP(); ip != "" {
		return "ip:" + ip
	}
	return "ip:unknown"
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:8])
}
