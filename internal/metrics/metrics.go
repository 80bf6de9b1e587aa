package metrics

import (
	"sync/atomic"
	"time"

	"github.com/park285/symptom-checker-go/internal/llm"
)

// Store 는 Gemini 호출 통계를 저장한다.
// 같은 값을 프로세스 내 누적 카운터와 Prometheus 컬렉터에 함께 반영한다.
type Store struct {
	calls           atomic.Int64
	errors          atomic.Int64
	durationMs      atomic.Int64
	inputTokens     atomic.Int64
	outputTokens    atomic.Int64
	reasoningTokens atomic.Int64
}

// Snapshot 은 /api/llm/metrics 응답 본문이다.
type Snapshot struct {
	TotalCalls           int64   `json:"total_calls"`
	TotalErrors          int64   `json:"total_errors"`
	TotalInputTokens     int64   `json:"total_input_tokens"`
	TotalOutputTokens    int64   `json:"total_output_tokens"`
	TotalReasoningTokens int64   `json:"total_reasoning_tokens"`
	TotalTokens          int64   `json:"total_tokens"`
	TotalDurationMs      int64   `json:"total_duration_ms"`
	AvgDurationMs        float64 `json:"avg_duration_ms"`
}

// NewStore 는 통계 저장소를 생성한다.
func NewStore() *Store {
	return &Store{}
}

// RecordSuccess 는 성공 호출의 소요 시간과 토큰 사용량을 기록한다.
func (s *Store) RecordSuccess(duration time.Duration, usage llm.Usage) {
	s.observeCall(resultSuccess, duration)

	s.inputTokens.Add(int64(usage.InputTokens))
	s.outputTokens.Add(int64(usage.OutputTokens))
	s.reasoningTokens.Add(int64(usage.ReasoningTokens))

	geminiTokens.WithLabelValues("input").Add(float64(usage.InputTokens))
	geminiTokens.WithLabelValues("output").Add(float64(usage.OutputTokens))
	geminiTokens.WithLabelValues("reasoning").Add(float64(usage.ReasoningTokens))
}

// RecordError 는 실패 호출을 기록한다.
func (s *Store) RecordError(duration time.Duration) {
	s.observeCall(resultError, duration)
	s.errors.Add(1)
}

func (s *Store) observeCall(result string, duration time.Duration) {
	s.calls.Add(1)
	s.durationMs.Add(duration.Milliseconds())

	geminiCalls.WithLabelValues(result).Inc()
	geminiDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordOutcome 는 증상 확인 요청의 최종 결과(generated, not_configured, failed)를 센다.
func (s *Store) RecordOutcome(outcome string) {
	symptomChecks.WithLabelValues(outcome).Inc()
}

// UsageTotals 는 누적 사용량을 반환한다.
func (s *Store) UsageTotals() llm.Usage {
	return llm.Usage{
		InputTokens:     int(s.inputTokens.Load()),
		OutputTokens:    int(s.outputTokens.Load()),
		ReasoningTokens: int(s.reasoningTokens.Load()),
	}.WithTotal()
}

// Snapshot 는 누적 통계를 반환한다.
func (s *Store) Snapshot() Snapshot {
	snapshot := Snapshot{
		TotalCalls:           s.calls.Load(),
		TotalErrors:          s.errors.Load(),
		TotalInputTokens:     s.inputTokens.Load(),
		TotalOutputTokens:    s.outputTokens.Load(),
		TotalReasoningTokens: s.reasoningTokens.Load(),
		TotalDurationMs:      s.durationMs.Load(),
	}
	snapshot.TotalTokens = snapshot.TotalInputTokens + snapshot.TotalOutputTokens
	if snapshot.TotalCalls > 0 {
		snapshot.AvgDurationMs = float64(snapshot.TotalDurationMs) / float64(snapshot.TotalCalls)
	}
	return snapshot
}
