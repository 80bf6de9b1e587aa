package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/park285/symptom-checker-go/internal/config"
	"github.com/park285/symptom-checker-go/internal/llm"
	"github.com/park285/symptom-checker-go/internal/metrics"
)

// UsageResponse 는 프로세스 기동 이후 누적된 토큰 사용량이다.
type UsageResponse struct {
	llm.Usage
	Model string `json:"model"`
}

// LLMHandler 는 /api/llm 아래의 사용량 조회 라우트를 담당한다.
type LLMHandler struct {
	model   string
	metrics *metrics.Store
}

// NewLLMHandler 는 사용량 조회 핸들러를 생성한다.
func NewLLMHandler(cfg *config.Config, metricsStore *metrics.Store) *LLMHandler {
	return &LLMHandler{model: cfg.Gemini.Model, metrics: metricsStore}
}

// RegisterRoutes 는 사용량 라우트를 등록한다.
func (h *LLMHandler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/api/llm")
	group.GET("/usage", func(c *gin.Context) {
		c.JSON(http.StatusOK, UsageResponse{Usage: h.metrics.UsageTotals(), Model: h.model})
	})
	group.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, h.metrics.Snapshot())
	})
}
