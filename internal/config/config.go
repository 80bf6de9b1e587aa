package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	defaultModel = "gemini-2.5-flash"
	defaultHost  = "0.0.0.0"
	defaultPort  = 5000
)

var (
	configOnce  sync.Once
	configValue *Config

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Load 는 .env 와 환경 변수 기반 설정을 로드한다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig 는 설정을 로드하고 검증한다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 는 설정 유효성을 검사한다.
// API 키 누락은 오류가 아니다. 이 경우 서버는 미설정 상태로 기동한다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LogEnvStatus 는 환경 설정 상태를 로그로 남긴다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	logger.Debug(
		"env_status",
		"env_file", fileExists(".env"),
		"api_key", maskSecret(cfg.Gemini.APIKey),
		"model", cfg.Gemini.Model,
		"http_host", cfg.HTTP.Host,
		"http_port", cfg.HTTP.Port,
		"http_auth", cfg.HTTPAuth.APIKey != "",
		"rate_limit_rpm", cfg.HTTPRateLimit.RequestsPerMinute,
		"otel", cfg.Telemetry.Enabled,
	)

	if !cfg.Gemini.Configured() {
		logger.Error("env_missing_gemini_api_key")
	}
}

func buildConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKey: parseAPIKey(),
			Model:  getEnvString("GEMINI_MODEL", defaultModel),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:             getEnvString("HTTP_HOST", defaultHost),
			Port:             getEnvInt("HTTP_PORT", defaultPort),
			HTTP2Enabled:     getEnvBool("HTTP2_ENABLED", false),
			GzipEnabled:      getEnvBool("HTTP_GZIP_ENABLED", true),
			CORSAllowOrigins: getEnvList("CORS_ALLOW_ORIGINS"),
		},
		HTTPAuth: HTTPAuthConfig{
			APIKey: getEnvString("HTTP_API_KEY", ""),
		},
		HTTPRateLimit: HTTPRateLimitConfig{
			RequestsPerMinute: getEnvNonNegativeInt("HTTP_RATE_LIMIT_RPM", 0),
			CacheSize:         max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_SIZE", 10000)),
			CacheTTLSeconds:   max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_TTL_SECONDS", 120)),
		},
		Telemetry: TelemetryConfig{
			Enabled:        getEnvBool("OTEL_ENABLED", false),
			ServiceName:    getEnvString("OTEL_SERVICE_NAME", "symptom-checker"),
			ServiceVersion: getEnvString("OTEL_SERVICE_VERSION", "dev"),
			Environment:    getEnvString("OTEL_ENVIRONMENT", "development"),
			OTLPEndpoint:   getEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			OTLPInsecure:   getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			SampleRate:     getEnvFloat("OTEL_SAMPLE_RATE", 1.0),
		},
	}
}
