package symptom

import (
	"context"
	"errors"
	"log/slog"

	symptomdomain "github.com/park285/symptom-checker-go/internal/domain/symptom"
	"github.com/park285/symptom-checker-go/internal/gemini"
	"github.com/park285/symptom-checker-go/internal/metrics"
)

// Result: 한 번의 증상 확인 결과입니다. Text 는 항상 채워집니다.
type Result struct {
	Text    string
	Outcome symptomdomain.Outcome
	Err     error
}

// Service: 증상을 프롬프트에 담아 모델을 호출하는 비즈니스 로직입니다.
// Check 는 실패하지 않으며 실패 원인은 Result.Err 와 로그로만 남깁니다.
type Service struct {
	generator gemini.Generator
	prompts   *symptomdomain.Prompts
	metrics   *metrics.Store
	logger    *slog.Logger
}

// New: Service 인스턴스를 생성합니다.
func New(
	generator gemini.Generator,
	prompts *symptomdomain.Prompts,
	metricsStore *metrics.Store,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		generator: generator,
		prompts:   prompts,
		metrics:   metricsStore,
		logger:    logger,
	}
}

// Check: symptoms 원문을 그대로 프롬프트에 넣어 생성 결과를 반환합니다.
func (s *Service) Check(ctx context.Context, symptoms string) Result {
	result := s.check(ctx, symptoms)
	if s.metrics != nil {
		s.metrics.RecordOutcome(string(result.Outcome))
	}
	return result
}

func (s *Service) check(ctx context.Context, symptoms string) Result {
	if s.generator == nil || !s.generator.Configured() {
		s.logger.WarnContext(ctx, "symptom_generator_not_configured")
		return Result{
			Text:    symptomdomain.NotConfiguredMessage,
			Outcome: symptomdomain.OutcomeNotConfigured,
			Err:     gemini.ErrNotConfigured,
		}
	}

	promptText, err := s.prompts.CheckUser(symptoms)
	if err != nil {
		return s.failed(ctx, err)
	}

	generated, err := s.generator.Generate(ctx, promptText)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return Result{
				Text:    symptomdomain.NotConfiguredMessage,
				Outcome: symptomdomain.OutcomeNotConfigured,
				Err:     err,
			}
		}
		return s.failed(ctx, err)
	}

	s.logger.DebugContext(ctx, "symptom_generated",
		"input_tokens", generated.Usage.InputTokens,
		"output_tokens", generated.Usage.OutputTokens,
		"finish_reason", generated.FinishReason,
		"model_version", generated.ModelVersion,
	)
	return Result{
		Text:    generated.Text,
		Outcome: symptomdomain.OutcomeGenerated,
	}
}

func (s *Service) failed(ctx context.Context, err error) Result {
	attrs := []any{"err", err}
	var callErr *gemini.CallError
	if errors.As(err, &callErr) {
		attrs = append(attrs, "reason", string(callErr.Reason))
	}
	s.logger.WarnContext(ctx, "symptom_generate_failed", attrs...)
	return Result{
		Text:    symptomdomain.FallbackMessage,
		Outcome: symptomdomain.OutcomeFailed,
		Err:     err,
	}
}
