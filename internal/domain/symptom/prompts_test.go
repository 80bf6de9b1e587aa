package symptom

import (
	"strings"
	"testing"
)

func TestCheckUserEmbedsSymptomsVerbatim(t *testing.T) {
	prompts, err := NewPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw := "  headache {disclaimer} \"quoted\" <tag>  "
	got, err := prompts.CheckUser(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "\""+raw+"\"") {
		t.Fatalf("expected raw symptoms in prompt:\n%s", got)
	}
	if strings.Count(got, Disclaimer) != 1 {
		t.Fatalf("expected disclaimer exactly once")
	}
}

func TestCheckUserStructure(t *testing.T) {
	prompts, err := NewPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := prompts.CheckUser("fever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"educational purposes only",
		"NOT a medical professional",
		"**Possible Conditions:**",
		"**Recommended Next Steps:**",
		"Consult a Healthcare Professional",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(got), Disclaimer) {
		t.Fatalf("disclaimer must close the prompt")
	}
}
