package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/park285/symptom-checker-go/internal/config"
)

// promhttp 는 자체적으로 압축하고, 헬스체크 응답은 작아서 제외한다.
var gzipExcludedPaths = []string{"/metrics", "/health", "/health/ready"}

// Gzip 은 응답 압축 미들웨어다. HTTP_GZIP_ENABLED=false 면 통과시킨다.
func Gzip(cfg *config.Config) gin.HandlerFunc {
	if cfg == nil || !cfg.HTTP.GzipEnabled {
		return func(c *gin.Context) { c.Next() }
	}
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(gzipExcludedPaths))
}
