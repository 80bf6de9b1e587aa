package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

type logEntry struct {
	level slog.Level
	msg   string
	attrs map[string]any
}

type recordingHandler struct {
	mu      sync.Mutex
	entries []logEntry
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	attrs := map[string]any{}
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})

	h.mu.Lock()
	h.entries = append(h.entries, logEntry{level: record.Level, msg: record.Message, attrs: attrs})
	h.mu.Unlock()
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) Entries() []logEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	entries := make([]logEntry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

func newLoggedRouter(handler *recordingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(slog.New(handler)))
	router.POST("/check_symptoms", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestRequestLoggerLogsInfoOnSuccess(t *testing.T) {
	handler := &recordingHandler{}
	router := newLoggedRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/check_symptoms", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := handler.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.level != slog.LevelInfo || entry.msg != "http_request" {
		t.Fatalf("unexpected entry: %s %q", entry.level, entry.msg)
	}
	if entry.attrs["request_id"] != "req-123" {
		t.Fatalf("expected request_id=req-123, got %v", entry.attrs["request_id"])
	}
	if entry.attrs["path"] != "/check_symptoms" || entry.attrs["method"] != "POST" {
		t.Fatalf("unexpected attrs: %v", entry.attrs)
	}
	if fmt.Sprint(entry.attrs["status"]) != "200" {
		t.Fatalf("expected status=200, got %v", entry.attrs["status"])
	}
}

func TestRequestLoggerLevels(t *testing.T) {
	handler := &recordingHandler{}
	router := newLoggedRouter(handler)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/bad", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := handler.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].level != slog.LevelWarn {
		t.Fatalf("expected warn for 4xx, got %s", entries[0].level)
	}
	if entries[1].level != slog.LevelError {
		t.Fatalf("expected error for 5xx, got %s", entries[1].level)
	}
}

func TestRequestLoggerSkipsHealth(t *testing.T) {
	handler := &recordingHandler{}
	router := newLoggedRouter(handler)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	if len(handler.Entries()) != 0 {
		t.Fatalf("expected health check to be skipped")
	}
}
