package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/park285/symptom-checker-go/internal/gemini"
)

const (
	missingMessage = "No symptoms provided. Please send a JSON object with a 'symptoms' key."
	invalidMessage = "Symptoms must be a non-empty string."
	notConfigured  = "Error: The generative model is not configured. Please check the API key."
	fallbackText   = "Sorry, there was an error processing your request. Please try again later."
)

func TestCheckSymptomsValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty object", `{}`, missingMessage},
		{"other keys only", `{"symptom": "typo"}`, missingMessage},
		{"array body", `["headache"]`, missingMessage},
		{"string body", `"headache"`, missingMessage},
		{"number body", `42`, missingMessage},
		{"null body", `null`, missingMessage},
		{"malformed json", `{"symptoms": `, missingMessage},
		{"empty body", ``, missingMessage},
		{"number", `{"symptoms": 42}`, invalidMessage},
		{"out of range number", `{"symptoms": 1e999}`, invalidMessage},
		{"unit separator", `{"symptoms": "\u001c\u001f "}`, invalidMessage},
		{"object", `{"symptoms": {"a": "b"}}`, invalidMessage},
		{"array", `{"symptoms": ["headache"]}`, invalidMessage},
		{"null", `{"symptoms": null}`, invalidMessage},
		{"bool", `{"symptoms": true}`, invalidMessage},
		{"empty string", `{"symptoms": ""}`, invalidMessage},
		{"whitespace", `{"symptoms": "   "}`, invalidMessage},
		{"whitespace with newlines", `{"symptoms": "\n\t "}`, invalidMessage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			generator := &fakeGenerator{configured: true, text: "unused"}
			server := newTestServer(t, testConfig(), generator)

			resp := server.do(http.MethodPost, "/check_symptoms", tc.body)
			assertStatus(t, resp, http.StatusBadRequest)

			payload := decodeBody(t, resp)
			if len(payload) != 1 || payload["error"] != tc.message {
				t.Fatalf("unexpected body: %v", payload)
			}
			if generator.calls != 0 {
				t.Fatalf("validation failure must not call the model")
			}
		})
	}
}

func TestCheckSymptomsNotConfigured(t *testing.T) {
	generator := &fakeGenerator{configured: false, text: "unused"}
	server := newTestServer(t, testConfig(), generator)

	resp := server.do(http.MethodPost, "/check_symptoms", `{"symptoms": "headache"}`)
	assertStatus(t, resp, http.StatusOK)
	if payload := decodeBody(t, resp); payload["result"] != notConfigured {
		t.Fatalf("unexpected result: %v", payload)
	}
	if generator.calls != 0 {
		t.Fatalf("expected zero generator calls, got %d", generator.calls)
	}
}

func TestCheckSymptomsRemoteFailure(t *testing.T) {
	generator := &fakeGenerator{
		configured: true,
		err:        &gemini.CallError{Reason: gemini.ReasonRequestFailed, Err: errors.New("quota exceeded")},
	}
	server := newTestServer(t, testConfig(), generator)

	resp := server.do(http.MethodPost, "/check_symptoms", `{"symptoms": "headache"}`)
	assertStatus(t, resp, http.StatusOK)
	payload := decodeBody(t, resp)
	if payload["result"] != fallbackText {
		t.Fatalf("unexpected result: %v", payload)
	}
	if strings.Contains(resp.Body.String(), "quota") {
		t.Fatalf("failure cause leaked to client")
	}
}

func TestCheckSymptomsSuccess(t *testing.T) {
	generator := &fakeGenerator{configured: true, text: "MOCK_RESPONSE"}
	server := newTestServer(t, testConfig(), generator)

	resp := server.do(http.MethodPost, "/check_symptoms", `{"symptoms": "headache and fever"}`)
	assertStatus(t, resp, http.StatusOK)

	payload := decodeBody(t, resp)
	if len(payload) != 1 || payload["result"] != "MOCK_RESPONSE" {
		t.Fatalf("unexpected body: %v", payload)
	}
	if generator.calls != 1 {
		t.Fatalf("expected one call, got %d", generator.calls)
	}
	if !strings.Contains(generator.prompts[0], `"headache and fever"`) {
		t.Fatalf("prompt must embed symptoms")
	}
}

func TestCheckSymptomsPassesUntrimmedInput(t *testing.T) {
	generator := &fakeGenerator{configured: true, text: "ok"}
	server := newTestServer(t, testConfig(), generator)

	resp := server.do(http.MethodPost, "/check_symptoms", `{"symptoms": "  sore throat\n", "extra": 1}`)
	assertStatus(t, resp, http.StatusOK)
	if !strings.Contains(generator.prompts[0], "\"  sore throat\n\"") {
		t.Fatalf("expected raw untrimmed symptoms in prompt")
	}
}

func TestCheckSymptomsBodyTooLarge(t *testing.T) {
	generator := &fakeGenerator{configured: true, text: "unused"}
	server := newTestServer(t, testConfig(), generator)

	body := `{"symptoms": "` + strings.Repeat("a", maxRequestBodyBytes) + `"}`
	resp := server.do(http.MethodPost, "/check_symptoms", body)
	assertStatus(t, resp, http.StatusRequestEntityTooLarge)

	payload := decodeBody(t, resp)
	if payload["error"] != "Request body is too large." {
		t.Fatalf("unexpected body: %v", payload)
	}
	if generator.calls != 0 {
		t.Fatalf("oversized body must not call the model")
	}
}

func TestCheckSymptomsMethodNotAllowed(t *testing.T) {
	server := newTestServer(t, testConfig(), &fakeGenerator{})
	resp := server.do(http.MethodGet, "/check_symptoms", "")
	assertStatus(t, resp, http.StatusMethodNotAllowed)
}
