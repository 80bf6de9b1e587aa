package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/park285/symptom-checker-go/internal/config"
	symptomdomain "github.com/park285/symptom-checker-go/internal/domain/symptom"
	"github.com/park285/symptom-checker-go/internal/gemini"
	"github.com/park285/symptom-checker-go/internal/llm"
	"github.com/park285/symptom-checker-go/internal/metrics"
	symptomusecase "github.com/park285/symptom-checker-go/internal/usecase/symptom"
)

type fakeGenerator struct {
	configured bool
	text       string
	err        error
	usage      llm.Usage

	calls   int
	prompts []string
}

func (f *fakeGenerator) Configured() bool { return f.configured }

func (f *fakeGenerator) Model() string { return "gemini-2.5-flash" }

func (f *fakeGenerator) Safety() gemini.SafetyPolicy { return gemini.DefaultSafetyPolicy() }

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (llm.Generation, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return llm.Generation{}, f.err
	}
	return llm.Generation{Text: f.text, Usage: f.usage}, nil
}

type testServer struct {
	router    *gin.Engine
	generator *fakeGenerator
	metrics   *metrics.Store
}

func testConfig() *config.Config {
	return &config.Config{
		Gemini:        config.GeminiConfig{Model: "gemini-2.5-flash"},
		HTTP:          config.HTTPConfig{Host: "127.0.0.1", Port: 5000},
		HTTPRateLimit: config.HTTPRateLimitConfig{CacheSize: 1, CacheTTLSeconds: 1},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, generator *fakeGenerator) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prompts, err := symptomdomain.NewPrompts()
	if err != nil {
		t.Fatalf("load prompts: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := metrics.NewStore()
	service := symptomusecase.New(generator, prompts, store, logger)

	router := newRouter(
		cfg,
		logger,
		generator,
		NewSymptomHandler(service, logger),
		NewLLMHandler(cfg, store),
	)
	return &testServer{router: router, generator: generator, metrics: store}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	s.router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body %q: %v", resp.Body.String(), err)
	}
	return payload
}

func assertStatus(t *testing.T, resp *httptest.ResponseRecorder, want int) {
	t.Helper()
	if resp.Code != want {
		t.Fatalf("expected status %d, got %d (body=%s)", want, resp.Code, resp.Body.String())
	}
}
