package config

// GeminiConfig 는 Gemini 모델 설정이다.
type GeminiConfig struct {
	APIKey string
	Model  string `validate:"required"`
}

// Configured 는 API 키가 설정되었는지 반환한다.
func (g GeminiConfig) Configured() bool {
	return g.APIKey != ""
}

// LoggingConfig 는 로깅 설정이다.
type LoggingConfig struct {
	Level      string `validate:"omitempty,oneof=debug info warn warning error"`
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig 는 HTTP 서버 설정이다.
type HTTPConfig struct {
	Host             string `validate:"required"`
	Port             int    `validate:"min=1,max=65535"`
	HTTP2Enabled     bool
	GzipEnabled      bool
	CORSAllowOrigins []string
}

// HTTPAuthConfig 는 API 키 인증 설정이다.
type HTTPAuthConfig struct {
	APIKey string
}

// HTTPRateLimitConfig 는 요청 제한 설정이다.
type HTTPRateLimitConfig struct {
	RequestsPerMinute int `validate:"gte=0"`
	CacheSize         int `validate:"gte=1"`
	CacheTTLSeconds   int `validate:"gte=1"`
}

// TelemetryConfig 는 OpenTelemetry 트레이싱 설정이다.
type TelemetryConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string `validate:"required_if=Enabled true"`
	OTLPInsecure   bool
	SampleRate     float64 `validate:"gte=0,lte=1"`
}

// Config 는 애플리케이션 전체 설정이다.
type Config struct {
	Gemini        GeminiConfig
	Logging       LoggingConfig
	HTTP          HTTPConfig
	HTTPAuth      HTTPAuthConfig
	HTTPRateLimit HTTPRateLimitConfig
	Telemetry     TelemetryConfig
}
