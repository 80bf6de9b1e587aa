package gemini

import "google.golang.org/genai"

// SafetyRule 은 유해 카테고리 하나에 대한 차단 기준이다.
type SafetyRule struct {
	Category  genai.HarmCategory       `json:"category"`
	Threshold genai.HarmBlockThreshold `json:"threshold"`
}

// SafetyPolicy 는 모든 요청에 적용되는 고정 안전 설정이다.
type SafetyPolicy []SafetyRule

// DefaultSafetyPolicy 는 괴롭힘, 혐오 발언, 성적 콘텐츠, 위험 콘텐츠를
// 중간 이상 확률에서 차단한다.
func DefaultSafetyPolicy() SafetyPolicy {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	policy := make(SafetyPolicy, 0, len(categories))
	for _, category := range categories {
		policy = append(policy, SafetyRule{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return policy
}

// Settings 는 요청 설정에 넣을 genai 안전 설정을 새로 만들어 반환한다.
func (p SafetyPolicy) Settings() []*genai.SafetySetting {
	settings := make([]*genai.SafetySetting, 0, len(p))
	for _, rule := range p {
		settings = append(settings, &genai.SafetySetting{
			Category:  rule.Category,
			Threshold: rule.Threshold,
		})
	}
	return settings
}
