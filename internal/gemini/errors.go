package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured 는 API 키가 없거나 클라이언트 생성에 실패해 호출할 수 없을 때 반환된다.
	ErrNotConfigured = errors.New("gemini client not configured")
	// ErrCallFailed 는 호출을 시도했으나 사용할 수 있는 텍스트를 얻지 못했을 때 매칭된다.
	ErrCallFailed = errors.New("gemini call failed")
)

// FailureReason 은 호출 실패 분류다.
type FailureReason string

const (
	ReasonRequestFailed   FailureReason = "request_failed"
	ReasonPromptBlocked   FailureReason = "prompt_blocked"
	ReasonResponseBlocked FailureReason = "response_blocked"
	ReasonEmptyResponse   FailureReason = "empty_response"
)

// CallError 는 호출 이후 발생한 실패다. errors.Is(err, ErrCallFailed) 가 성립한다.
type CallError struct {
	Reason FailureReason
	Err    error
}

func (e *CallError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("gemini call failed: %s", e.Reason)
	}
	return fmt.Sprintf("gemini call failed: %s: %v", e.Reason, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

func (e *CallError) Is(target error) bool {
	return target == ErrCallFailed
}

func newCallError(reason FailureReason, err error) *CallError {
	return &CallError{Reason: reason, Err: err}
}
