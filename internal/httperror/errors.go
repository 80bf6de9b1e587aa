// Package httperror 는 클라이언트에 돌려줄 오류를 {"error": message} 형태로 표준화한다.
package httperror

import (
	"errors"
	"net/http"
)

// Code 는 오류 분류다. 응답 본문에는 싣지 않고 로그와 상태 코드 결정에만 쓴다.
type Code string

const (
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeMissingField     Code = "MISSING_FIELD"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeUnauthorized     Code = "UNAUTHORIZED"
	CodeRateLimited      Code = "RATE_LIMITED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeMethodNotAllowed Code = "METHOD_NOT_ALLOWED"
	CodeBodyTooLarge     Code = "BODY_TOO_LARGE"
)

var statusByCode = map[Code]int{
	CodeInternal:         http.StatusInternalServerError,
	CodeMissingField:     http.StatusBadRequest,
	CodeInvalidInput:     http.StatusBadRequest,
	CodeUnauthorized:     http.StatusUnauthorized,
	CodeRateLimited:      http.StatusTooManyRequests,
	CodeNotFound:         http.StatusNotFound,
	CodeMethodNotAllowed: http.StatusMethodNotAllowed,
	CodeBodyTooLarge:     http.StatusRequestEntityTooLarge,
}

const internalMessage = "Internal server error"

// Body 는 오류 응답 본문이다. error 외의 필드는 두지 않는다.
type Body struct {
	Error string `json:"error"`
}

// Error 는 클라이언트에 그대로 노출해도 되는 오류다.
type Error struct {
	Code    Code
	Message string
}

// New 는 code 분류의 오류를 생성한다.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Status 는 분류에 해당하는 HTTP 상태 코드다. 모르는 분류는 500 이다.
func (e *Error) Status() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Response 는 err 를 상태 코드와 본문으로 바꾼다.
// *Error 가 아닌 오류는 원인을 숨기고 500 으로 응답한다.
func Response(err error) (int, Body) {
	var apiErr *Error
	if err == nil || !errors.As(err, &apiErr) {
		return http.StatusInternalServerError, Body{Error: internalMessage}
	}
	return apiErr.Status(), Body{Error: apiErr.Message}
}

func NewMissingField(message string) *Error { return New(CodeMissingField, message) }

func NewInvalidInput(message string) *Error { return New(CodeInvalidInput, message) }

func NewUnauthorized(message string) *Error { return New(CodeUnauthorized, message) }

func NewRateLimitExceeded(message string) *Error { return New(CodeRateLimited, message) }

func NewNotFound(message string) *Error { return New(CodeNotFound, message) }

func NewMethodNotAllowed(message string) *Error { return New(CodeMethodNotAllowed, message) }

func NewBodyTooLarge(message string) *Error { return New(CodeBodyTooLarge, message) }
