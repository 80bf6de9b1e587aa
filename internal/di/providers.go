package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/park285/symptom-checker-go/internal/config"
	"github.com/park285/symptom-checker-go/internal/logging"
	"github.com/park285/symptom-checker-go/internal/telemetry"
)

// ProvideLogger: 로거를 구성해 반환합니다.
// OTel이 활성화된 경우 로그에 trace_id/span_id가 자동으로 추가됩니다.
func ProvideLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewLoggerWithOTel(cfg.Logging, cfg.Telemetry.Enabled)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// ProvideTelemetry 는 트레이서 프로바이더를 초기화한다.
// 비활성 설정이면 no-op 프로바이더가 반환된다.
func ProvideTelemetry(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*telemetry.Provider, error) {
	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}
	if provider.IsEnabled() {
		logger.Info("telemetry_enabled",
			"endpoint", cfg.Telemetry.OTLPEndpoint,
			"sample_rate", cfg.Telemetry.SampleRate,
		)
	}
	return provider, nil
}
