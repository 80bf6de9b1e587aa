package llm

// Usage 는 생성 호출 한 번의 토큰 사용량이다.
// OutputTokens 에는 reasoning 토큰이 포함된다.
type Usage struct {
	InputTokens     int `json:"input_tokens"`
	OutputTokens    int `json:"output_tokens"`
	TotalTokens     int `json:"total_tokens"`
	ReasoningTokens int `json:"reasoning_tokens"`
}

// WithTotal: 응답에 총합이 빠져 있으면 입력과 출력의 합으로 채웁니다.
func (u Usage) WithTotal() Usage {
	if u.TotalTokens == 0 {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u
}

// Generation 은 모델이 돌려준 결과다. Text 는 가공하지 않은 원문이다.
type Generation struct {
	Text         string
	ModelVersion string
	FinishReason string
	Usage        Usage
}
