package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/park285/symptom-checker-go/internal/llm"
)

// Generator 는 단일 프롬프트 생성 인터페이스다.
// 테스트에서 mock 구현을 주입할 수 있도록 한다.
type Generator interface {
	// Configured 는 호출 가능한 상태인지 반환한다.
	Configured() bool
	// Generate 는 프롬프트 하나로 텍스트를 생성한다.
	Generate(ctx context.Context, prompt string) (llm.Generation, error)
}

// contentGenerator 는 *genai.Models 의 호출 표면이다.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Client가 Generator 인터페이스를 구현하는지 컴파일 타임 확인
var (
	_ Generator        = (*Client)(nil)
	_ contentGenerator = (*genai.Models)(nil)
)
