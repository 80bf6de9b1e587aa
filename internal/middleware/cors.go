package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/park285/symptom-checker-go/internal/config"
)

// CORS 는 CORS_ALLOW_ORIGINS 가 설정된 경우에만 교차 출처 요청을 허용한다.
// 설정이 없으면 동일 출처 전용으로 동작한다.
func CORS(cfg *config.Config) gin.HandlerFunc {
	if cfg == nil || len(cfg.HTTP.CORSAllowOrigins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return cors.New(newCORSConfig(cfg.HTTP.CORSAllowOrigins))
}

func newCORSConfig(origins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-API-Key", RequestIDHeader}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	return corsConfig
}
