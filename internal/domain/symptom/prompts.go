package symptom

import (
	"embed"
	"fmt"

	"github.com/park285/symptom-checker-go/internal/prompt"
)

//go:embed prompts/*.yml
var promptsFS embed.FS

const checkPrompt = "check"

// Prompts 는 증상 확인 프롬프트 모음이다.
type Prompts struct {
	bundle *prompt.Bundle
}

// NewPrompts 는 임베드된 프롬프트를 로드하고 check 템플릿을 미리 검증한다.
func NewPrompts() (*Prompts, error) {
	bundle, err := prompt.LoadBundle(promptsFS, "prompts", "symptom")
	if err != nil {
		return nil, err
	}
	p := &Prompts{bundle: bundle}
	if _, err := p.CheckUser(""); err != nil {
		return nil, fmt.Errorf("validate symptom prompts: %w", err)
	}
	return p, nil
}

// CheckUser 는 증상 원문을 그대로 삽입한 check 프롬프트를 반환한다.
func (p *Prompts) CheckUser(symptoms string) (string, error) {
	return p.bundle.Render(checkPrompt, "user", map[string]string{
		"symptoms":   symptoms,
		"disclaimer": Disclaimer,
	})
}
