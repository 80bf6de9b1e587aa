package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/park285/symptom-checker-go/internal/config"
	"github.com/park285/symptom-checker-go/internal/gemini"
	"github.com/park285/symptom-checker-go/internal/health"
)

// ModelInfo 는 모델 상태 조회 인터페이스다.
type ModelInfo interface {
	health.ModelStatus
	Safety() gemini.SafetyPolicy
}

// ModelConfigResponse: 모델 설정 응답입니다.
type ModelConfigResponse struct {
	Model         string              `json:"model"`
	Configured    bool                `json:"configured"`
	Safety        gemini.SafetyPolicy `json:"safety_settings"`
	HTTP2Enabled  bool                `json:"http2_enabled"`
	TransportMode string              `json:"transport_mode"`
}

// RegisterHealthRoutes: 상태 확인 라우트를 등록합니다.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config, model ModelInfo) {
	// Liveness: 모델 설정 여부와 무관하게 항상 200
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, health.Collect(cfg, model))
	})

	router.GET("/health/ready", func(c *gin.Context) {
		payload := health.Collect(cfg, model)
		status := http.StatusOK
		if payload.Status != health.StatusOK {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, payload)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health/models", func(c *gin.Context) {
		transportMode := "h1"
		if cfg.HTTP.HTTP2Enabled {
			transportMode = "h2c"
		}
		c.JSON(http.StatusOK, ModelConfigResponse{
			Model:         model.Model(),
			Configured:    model.Configured(),
			Safety:        model.Safety(),
			HTTP2Enabled:  cfg.HTTP.HTTP2Enabled,
			TransportMode: transportMode,
		})
	})
}
