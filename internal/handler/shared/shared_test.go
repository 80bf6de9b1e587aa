package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/park285/symptom-checker-go/internal/httperror"
)

func TestDecodeObject(t *testing.T) {
	payload, err := DecodeObject([]byte(`{"symptoms": "cough", "n": 1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload["symptoms"] != "cough" {
		t.Fatalf("unexpected payload: %v", payload)
	}

	huge, err := DecodeObject([]byte(`{"symptoms": 1e999}`))
	if err != nil {
		t.Fatalf("out of range number must still parse: %v", err)
	}
	if _, ok := huge["symptoms"].(json.Number); !ok {
		t.Fatalf("expected json.Number, got %T", huge["symptoms"])
	}

	for _, body := range []string{``, `not json`, `[]`, `"text"`, `42`, `null`, `{"a":`, `{} {}`} {
		if _, err := DecodeObject([]byte(body)); !errors.Is(err, ErrNotObject) {
			t.Errorf("body %q: expected ErrNotObject, got %v", body, err)
		}
	}
}

func TestDecodeStrictTypes(t *testing.T) {
	type request struct {
		Symptoms string `json:"symptoms"`
	}

	var ok request
	if err := Decode(map[string]any{"symptoms": "fever", "extra": true}, &ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok.Symptoms != "fever" {
		t.Fatalf("unexpected value: %q", ok.Symptoms)
	}

	invalid := []any{float64(5), json.Number("5"), json.Number("1e999"), true, map[string]any{"a": "b"}, []any{"a"}}
	for _, value := range invalid {
		var got request
		if err := Decode(map[string]any{"symptoms": value}, &got); err == nil {
			t.Errorf("expected error for %T", value)
		}
	}

	var null request
	if err := Decode(map[string]any{"symptoms": nil}, &null); err != nil {
		t.Fatalf("null should decode to zero value: %v", err)
	}
	if null.Symptoms != "" {
		t.Fatalf("expected empty string for null, got %q", null.Symptoms)
	}
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)

	WriteError(c, httperror.NewInvalidInput("Symptoms must be a non-empty string."))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if resp.Body.String() != `{"error":"Symptoms must be a non-empty string."}` {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
	if !c.IsAborted() || len(c.Errors) != 1 {
		t.Fatalf("expected aborted context with recorded error")
	}
}

func TestWriteErrorHidesInternalCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)

	WriteError(c, errors.New("database password leaked"))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if resp.Body.String() != `{"error":"Internal server error"}` {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}
