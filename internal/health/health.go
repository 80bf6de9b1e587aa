package health

import (
	"time"

	"github.com/park285/symptom-checker-go/internal/config"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

var startTime = time.Now()

// ModelStatus 는 Gemini 클라이언트 상태 조회 인터페이스다.
type ModelStatus interface {
	Configured() bool
	Model() string
}

// Component 는 상태 구성 요소다.
type Component struct {
	Status string         `json:"status"`
	Detail map[string]any `json:"detail"`
}

// Response 는 상태 응답 본문이다.
type Response struct {
	Status     string               `json:"status"`
	Components map[string]Component `json:"components"`
}

// Collect 는 헬스 상태를 수집한다.
// Gemini 클라이언트가 미설정이면 전체 상태는 degraded 다.
func Collect(cfg *config.Config, model ModelStatus) Response {
	components := map[string]Component{
		"app":    buildAppStatus(cfg),
		"gemini": buildGeminiStatus(cfg, model),
	}

	overall := StatusOK
	for _, component := range components {
		if component.Status != StatusOK {
			overall = StatusDegraded
			break
		}
	}

	return Response{Status: overall, Components: components}
}

func buildAppStatus(cfg *config.Config) Component {
	detail := map[string]any{
		"uptime_seconds": int(time.Since(startTime).Seconds()),
	}
	if cfg != nil {
		detail["service"] = cfg.Telemetry.ServiceName
		detail["version"] = cfg.Telemetry.ServiceVersion
	}
	return Component{Status: StatusOK, Detail: detail}
}

func buildGeminiStatus(cfg *config.Config, model ModelStatus) Component {
	apiKeyPresent := cfg != nil && cfg.Gemini.Configured()
	configured := model != nil && model.Configured()

	modelName := ""
	if model != nil {
		modelName = model.Model()
	} else if cfg != nil {
		modelName = cfg.Gemini.Model
	}

	status := StatusOK
	if !configured {
		status = StatusDegraded
	}

	return Component{
		Status: status,
		Detail: map[string]any{
			"api_key_present":   apiKeyPresent,
			"client_configured": configured,
			"model":             modelName,
		},
	}
}
