package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "symptom_checker"

	resultSuccess = "success"
	resultError   = "error"
)

// 전역 레지스트리에 한 번만 등록되도록 패키지 변수로 둔다.
var (
	geminiCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gemini",
		Name:      "calls_total",
		Help:      "Gemini generate calls by result.",
	}, []string{"result"})

	geminiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gemini",
		Name:      "call_duration_seconds",
		Help:      "Gemini generate call latency.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"result"})

	geminiTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gemini",
		Name:      "tokens_total",
		Help:      "Gemini tokens by kind.",
	}, []string{"kind"})

	symptomChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checks_total",
		Help:      "Symptom check requests by outcome.",
	}, []string{"outcome"})
)
