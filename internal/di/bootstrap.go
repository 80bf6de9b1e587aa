package di

import (
	"context"
	"fmt"

	"github.com/park285/symptom-checker-go/internal/config"
	symptomdomain "github.com/park285/symptom-checker-go/internal/domain/symptom"
	"github.com/park285/symptom-checker-go/internal/gemini"
	"github.com/park285/symptom-checker-go/internal/handler"
	"github.com/park285/symptom-checker-go/internal/metrics"
	"github.com/park285/symptom-checker-go/internal/server"
	symptomusecase "github.com/park285/symptom-checker-go/internal/usecase/symptom"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
// Gemini 미설정은 오류가 아니며 서버는 안내 문구를 돌려주는 상태로 기동된다.
func InitializeApp(ctx context.Context) (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	telemetryProvider, err := ProvideTelemetry(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	metricsStore := metrics.NewStore()

	geminiClient, err := gemini.NewClient(ctx, cfg, metricsStore, logger)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	prompts, err := symptomdomain.NewPrompts()
	if err != nil {
		return nil, fmt.Errorf("symptom prompts: %w", err)
	}

	symptomService := symptomusecase.New(geminiClient, prompts, metricsStore, logger)
	symptomHandler := handler.NewSymptomHandler(symptomService, logger)
	llmHandler := handler.NewLLMHandler(cfg, metricsStore)

	router := handler.NewRouter(cfg, logger, geminiClient, symptomHandler, llmHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, telemetryProvider), nil
}
