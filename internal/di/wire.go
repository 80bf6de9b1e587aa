//go:build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"github.com/park285/symptom-checker-go/internal/config"
	symptomdomain "github.com/park285/symptom-checker-go/internal/domain/symptom"
	"github.com/park285/symptom-checker-go/internal/gemini"
	"github.com/park285/symptom-checker-go/internal/handler"
	"github.com/park285/symptom-checker-go/internal/metrics"
	"github.com/park285/symptom-checker-go/internal/server"
	symptomusecase "github.com/park285/symptom-checker-go/internal/usecase/symptom"
)

func InitializeApp(ctx context.Context) (*App, error) {
	wire.Build(
		config.ProvideConfig,
		ProvideLogger,
		ProvideTelemetry,
		metrics.NewStore,
		gemini.NewClient,
		wire.Bind(new(gemini.Generator), new(*gemini.Client)),
		symptomdomain.NewPrompts,
		symptomusecase.New,
		handler.NewSymptomHandler,
		handler.NewLLMHandler,
		handler.NewRouter,
		server.NewHTTPServer,
		NewApp,
	)
	return nil, nil
}
