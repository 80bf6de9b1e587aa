package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	symptomdomain "github.com/park285/symptom-checker-go/internal/domain/symptom"
	"github.com/park285/symptom-checker-go/internal/handler/shared"
	"github.com/park285/symptom-checker-go/internal/httperror"
	"github.com/park285/symptom-checker-go/internal/middleware"
	symptomusecase "github.com/park285/symptom-checker-go/internal/usecase/symptom"
)

// maxRequestBodyBytes 를 넘는 본문은 413 으로 거절한다.
const maxRequestBodyBytes = 1 << 20

// SymptomRequest 는 증상 확인 요청 본문이다.
type SymptomRequest struct {
	Symptoms string `json:"symptoms"`
}

// SymptomResponse 는 증상 확인 응답 본문이다.
type SymptomResponse struct {
	Result string `json:"result"`
}

// SymptomChecker 는 증상 확인 비즈니스 로직 인터페이스다.
type SymptomChecker interface {
	Check(ctx context.Context, symptoms string) symptomusecase.Result
}

// SymptomHandler 는 증상 확인 API 핸들러다.
type SymptomHandler struct {
	service SymptomChecker
	logger  *slog.Logger
}

// NewSymptomHandler 는 증상 확인 핸들러를 생성한다.
func NewSymptomHandler(service *symptomusecase.Service, logger *slog.Logger) *SymptomHandler {
	return newSymptomHandler(service, logger)
}

func newSymptomHandler(service SymptomChecker, logger *slog.Logger) *SymptomHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SymptomHandler{service: service, logger: logger}
}

// RegisterRoutes 는 증상 확인 라우트를 등록한다.
func (h *SymptomHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/check_symptoms", h.handleCheck)
}

func (h *SymptomHandler) handleCheck(c *gin.Context) {
	symptoms, apiErr := parseSymptoms(c)
	if apiErr != nil {
		h.logger.DebugContext(c.Request.Context(), "symptom_request_invalid",
			"request_id", middleware.GetRequestID(c),
			"code", string(apiErr.Code),
		)
		shared.WriteError(c, apiErr)
		return
	}

	result := h.service.Check(c.Request.Context(), symptoms)
	c.JSON(http.StatusOK, SymptomResponse{Result: result.Text})
}

// parseSymptoms 는 본문을 검증하고 공백을 제거하지 않은 원문을 반환한다.
// 검사 순서: JSON 객체 여부, symptoms 키 존재, 문자열 타입, 공백 제거 후 비어 있지 않음.
func parseSymptoms(c *gin.Context) (string, *httperror.Error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", httperror.NewBodyTooLarge(symptomdomain.BodyTooLargeMessage)
		}
		return "", httperror.NewMissingField(symptomdomain.MissingSymptomsMessage)
	}

	payload, err := shared.DecodeObject(body)
	if err != nil {
		return "", httperror.NewMissingField(symptomdomain.MissingSymptomsMessage)
	}
	if _, ok := payload["symptoms"]; !ok {
		return "", httperror.NewMissingField(symptomdomain.MissingSymptomsMessage)
	}

	var req SymptomRequest
	if err := shared.Decode(payload, &req); err != nil {
		return "", httperror.NewInvalidInput(symptomdomain.InvalidSymptomsMessage)
	}
	if symptomdomain.IsBlank(req.Symptoms) {
		return "", httperror.NewInvalidInput(symptomdomain.InvalidSymptomsMessage)
	}
	return req.Symptoms, nil
}
