package handler

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/park285/symptom-checker-go/internal/config"
	"github.com/park285/symptom-checker-go/internal/gemini"
	"github.com/park285/symptom-checker-go/internal/handler/shared"
	"github.com/park285/symptom-checker-go/internal/httperror"
	"github.com/park285/symptom-checker-go/internal/middleware"
	"github.com/park285/symptom-checker-go/internal/static"
)

// NewRouter 는 HTTP 라우터를 구성한다.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	client *gemini.Client,
	symptomHandler *SymptomHandler,
	llmHandler *LLMHandler,
) *gin.Engine {
	setGinMode(cfg.Logging.Level)
	return newRouter(cfg, logger, client, symptomHandler, llmHandler)
}

func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	model ModelInfo,
	symptomHandler *SymptomHandler,
	llmHandler *LLMHandler,
) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID())
	if cfg.Telemetry.Enabled {
		router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	router.Use(
		middleware.RequestLogger(logger),
		gin.Recovery(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg),
		middleware.Gzip(cfg),
		middleware.APIKeyAuth(cfg),
		middleware.RateLimit(cfg),
	)

	router.NoRoute(func(c *gin.Context) {
		shared.WriteError(c, httperror.NewNotFound("Not found"))
	})
	router.NoMethod(func(c *gin.Context) {
		shared.WriteError(c, httperror.NewMethodNotAllowed("Method not allowed"))
	})

	RegisterHomeRoutes(router, static.FS())
	RegisterHealthRoutes(router, cfg, model)
	symptomHandler.RegisterRoutes(router)
	llmHandler.RegisterRoutes(router)

	return router
}

func setGinMode(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
