package symptom

import (
	"strings"
	"unicode"
)

// Outcome 은 한 번의 증상 확인 결과 종류다. 클라이언트에는 노출되지 않는다.
type Outcome string

const (
	OutcomeGenerated     Outcome = "generated"
	OutcomeNotConfigured Outcome = "not_configured"
	OutcomeFailed        Outcome = "failed"
)

const (
	// Disclaimer 는 모델 응답 끝에 그대로 붙이도록 요구하는 고지문이다.
	Disclaimer = "**IMPORTANT DISCLAIMER:** This information is for educational purposes only and is not a substitute for professional medical advice, diagnosis, or treatment. Always seek the advice of your physician or other qualified health provider with any questions you may have regarding a medical condition. Never disregard professional medical advice or delay in seeking it because of something you have read here."

	NotConfiguredMessage = "Error: The generative model is not configured. Please check the API key."
	FallbackMessage      = "Sorry, there was an error processing your request. Please try again later."
)

// 요청 검증 메시지.
const (
	MissingSymptomsMessage = "No symptoms provided. Please send a JSON object with a 'symptoms' key."
	InvalidSymptomsMessage = "Symptoms must be a non-empty string."
	BodyTooLargeMessage    = "Request body is too large."
)

// IsBlank 는 증상 문자열이 공백 문자만으로 이루어졌는지 확인한다.
// unicode.IsSpace 외에 정보 구분 문자(U+001C~U+001F)도 공백으로 본다.
func IsBlank(symptoms string) bool {
	return strings.TrimFunc(symptoms, isSpace) == ""
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\u001c' && r <= '\u001f')
}
