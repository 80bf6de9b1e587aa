package shared

import (
	"github.com/gin-gonic/gin"

	"github.com/park285/symptom-checker-go/internal/httperror"
)

// WriteError 는 err 를 {"error": message} 응답으로 쓰고 처리를 중단한다.
// 원인은 c.Errors 에도 남겨 접근 로그의 errors 속성으로 기록되게 한다.
func WriteError(c *gin.Context, err error) {
	if c == nil || err == nil {
		return
	}
	_ = c.Error(err)
	status, payload := httperror.Response(err)
	c.AbortWithStatusJSON(status, payload)
}
