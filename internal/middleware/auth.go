package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/park285/symptom-checker-go/internal/config"
	"github.com/park285/symptom-checker-go/internal/httperror"
)

const (
	apiKeyHeader    = "X-API-Key"
	bearerScheme    = "bearer "
	wwwAuthenticate = `Bearer realm="symptom-checker"`
)

// protectedRoutes 는 인증과 요청 제한이 적용되는 경로다.
// '/' 로 끝나는 항목은 접두사, 나머지는 정확히 일치해야 한다.
// 랜딩 페이지, 정적 파일, 헬스체크는 열어 둔다.
var protectedRoutes = []string{"/check_symptoms", "/api/"}

// APIKeyAuth 는 API 키 인증 미들웨어다.
// HTTP_API_KEY 가 비어 있으면 모든 요청을 통과시킨다.
func APIKeyAuth(cfg *config.Config) gin.HandlerFunc {
	var expected []byte
	if cfg != nil {
		expected = []byte(strings.TrimSpace(cfg.HTTPAuth.APIKey))
	}
	if len(expected) == 0 {
		return passThrough
	}

	return func(c *gin.Context) {
		if !isProtected(c.Request.URL.Path) {
			c.Next()
			return
		}
		if !keyMatches(apiKeyFrom(c.Request.Header), expected) {
			c.Header("WWW-Authenticate", wwwAuthenticate)
			abortWithError(c, httperror.NewUnauthorized("Unauthorized"))
			return
		}
		c.Next()
	}
}

func passThrough(c *gin.Context) { c.Next() }

func abortWithError(c *gin.Context, err *httperror.Error) {
	status, payload := httperror.Response(err)
	c.AbortWithStatusJSON(status, payload)
}

func keyMatches(provided string, expected []byte) bool {
	return provided != "" && subtle.ConstantTimeCompare([]byte(provided), expected) == 1
}

// X-API-Key 를 우선하고, 없으면 Authorization: Bearer 값을 쓴다.
func apiKeyFrom(header http.Header) string {
	if value := strings.TrimSpace(header.Get(apiKeyHeader)); value != "" {
		return value
	}
	auth := strings.TrimSpace(header.Get("Authorization"))
	if len(auth) > len(bearerScheme) && strings.EqualFold(auth[:len(bearerScheme)], bearerScheme) {
		return strings.TrimSpace(auth[len(bearerScheme):])
	}
	return ""
}

func isProtected(path string) bool {
	for _, route := range protectedRoutes {
		if strings.HasSuffix(route, "/") {
			if strings.HasPrefix(path, route) {
				return true
			}
			continue
		}
		if path == route {
			return true
		}
	}
	return false
}
