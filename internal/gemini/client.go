package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"github.com/park285/symptom-checker-go/internal/config"
	"github.com/park285/symptom-checker-go/internal/llm"
	"github.com/park285/symptom-checker-go/internal/metrics"
	"github.com/park285/symptom-checker-go/internal/telemetry"
)

// Client 는 Gemini 호출을 담당한다.
// 생성 이후에는 읽기 전용이라 요청 간에 공유해도 안전하다.
type Client struct {
	model   string
	safety  SafetyPolicy
	models  contentGenerator
	metrics *metrics.Store
	initErr error
}

// NewClient 는 Gemini 클라이언트를 생성한다.
// API 키가 없거나 genai 클라이언트 생성에 실패해도 오류를 반환하지 않고
// 미설정 상태의 Client 를 돌려준다. 이 경우 Generate 는 ErrNotConfigured 를 반환한다.
func NewClient(ctx context.Context, cfg *config.Config, metricsStore *metrics.Store, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if metricsStore == nil {
		return nil, errors.New("metrics store is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := &Client{
		model:   cfg.Gemini.Model,
		safety:  DefaultSafetyPolicy(),
		metrics: metricsStore,
	}

	if !cfg.Gemini.Configured() {
		client.initErr = errors.New("GEMINI_API_KEY not found in environment variables")
		logger.Error("gemini_not_configured", "err", client.initErr)
		return client, nil
	}

	genaiClient, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		client.initErr = fmt.Errorf("create genai client: %w", err)
		logger.Error("gemini_not_configured", "err", client.initErr)
		return client, nil
	}

	client.models = genaiClient.Models
	logger.Info("gemini_client_ready", "model", client.model, "safety_rules", len(client.safety))
	return client, nil
}

// Configured 는 호출 가능한 상태인지 반환한다.
func (c *Client) Configured() bool {
	return c != nil && c.models != nil
}

// InitError 는 미설정 상태의 원인을 반환한다.
func (c *Client) InitError() error {
	if c == nil {
		return ErrNotConfigured
	}
	return c.initErr
}

// Model 은 설정된 모델 이름을 반환한다.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// Safety 는 요청에 적용되는 안전 설정을 반환한다.
func (c *Client) Safety() SafetyPolicy {
	if c == nil {
		return nil
	}
	return c.safety
}

// Generate 는 프롬프트 하나를 단일 user 턴으로 전송하고 생성 텍스트를 반환한다.
// 재시도와 타임아웃 재정의는 하지 않는다.
func (c *Client) Generate(ctx context.Context, prompt string) (llm.Generation, error) {
	if !c.Configured() {
		return llm.Generation{}, ErrNotConfigured
	}

	ctx, span := telemetry.Tracer().Start(ctx, "gemini.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("gemini.model", c.model),
		attribute.Int("gemini.prompt_bytes", len(prompt)),
	)

	start := time.Now()
	result, err := c.generate(ctx, prompt)
	if err != nil {
		c.metrics.RecordError(time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		return llm.Generation{}, err
	}

	c.metrics.RecordSuccess(time.Since(start), result.Usage)
	span.SetAttributes(
		attribute.String("gemini.model_version", result.ModelVersion),
		attribute.String("gemini.finish_reason", result.FinishReason),
		attribute.Int("gemini.input_tokens", result.Usage.InputTokens),
		attribute.Int("gemini.output_tokens", result.Usage.OutputTokens),
	)
	return result, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (llm.Generation, error) {
	response, err := c.models.GenerateContent(ctx, c.model, buildContents(prompt), c.buildGenerateConfig())
	if err != nil {
		return llm.Generation{}, newCallError(ReasonRequestFailed, fmt.Errorf("generate content: %w", err))
	}
	return interpretResponse(response)
}

func (c *Client) buildGenerateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SafetySettings: c.safety.Settings(),
	}
}

func buildContents(prompt string) []*genai.Content {
	return []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
}

// 프롬프트 차단, 후보 없음, 안전 사유 중단, 빈 텍스트는 모두 실패로 분류한다.
func interpretResponse(response *genai.GenerateContentResponse) (llm.Generation, error) {
	if response == nil {
		return llm.Generation{}, newCallError(ReasonEmptyResponse, errors.New("nil response"))
	}
	if feedback := response.PromptFeedback; feedback != nil && isBlocked(feedback.BlockReason) {
		return llm.Generation{}, newCallError(
			ReasonPromptBlocked,
			fmt.Errorf("block reason %s", feedback.BlockReason),
		)
	}
	if len(response.Candidates) == 0 || response.Candidates[0] == nil {
		return llm.Generation{}, newCallError(ReasonEmptyResponse, errors.New("no candidates"))
	}

	candidate := response.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return llm.Generation{}, newCallError(
			ReasonResponseBlocked,
			fmt.Errorf("finish reason %s", candidate.FinishReason),
		)
	}

	texts := extractTexts(candidate)
	if len(texts) == 0 {
		return llm.Generation{}, newCallError(
			ReasonEmptyResponse,
			fmt.Errorf("no text parts (finish reason %q)", candidate.FinishReason),
		)
	}

	return llm.Generation{
		Text:         strings.Join(texts, ""),
		ModelVersion: response.ModelVersion,
		FinishReason: string(candidate.FinishReason),
		Usage:        extractUsage(response),
	}, nil
}

func isBlocked(reason genai.BlockedReason) bool {
	return reason != "" && reason != genai.BlockedReasonUnspecified
}

// thought 파트는 응답 텍스트에서 제외한다.
func extractTexts(candidate *genai.Candidate) []string {
	if candidate == nil || candidate.Content == nil {
		return nil
	}
	texts := make([]string, 0, len(candidate.Content.Parts))
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Text == "" || part.Thought {
			continue
		}
		texts = append(texts, part.Text)
	}
	return texts
}

func extractUsage(response *genai.GenerateContentResponse) llm.Usage {
	if response == nil || response.UsageMetadata == nil {
		return llm.Usage{}
	}
	usage := response.UsageMetadata
	return llm.Usage{
		InputTokens:     int(usage.PromptTokenCount),
		OutputTokens:    int(usage.CandidatesTokenCount) + int(usage.ThoughtsTokenCount),
		TotalTokens:     int(usage.TotalTokenCount),
		ReasoningTokens: int(usage.ThoughtsTokenCount),
	}.WithTotal()
}
