package shared

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// ErrNotObject 는 요청 본문이 JSON 객체가 아닐 때 반환된다.
var ErrNotObject = errors.New("request body is not a json object")

// DecodeObject: 본문을 JSON 객체로 파싱합니다.
// 빈 본문, 잘못된 JSON, 객체가 아닌 값(배열, 문자열, 숫자, null)은 ErrNotObject 를 감싸 반환합니다.
// 숫자는 json.Number 로 보존하므로 float64 범위를 넘는 값도 파싱에 실패하지 않습니다.
func DecodeObject(body []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotObject, err)
	}
	var trailing any
	if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after json value", ErrNotObject)
	}
	payload, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, raw)
	}
	return payload, nil
}

// DecoderConfig: mapstructure 디코더의 기본 설정입니다.
// 타입 변환을 허용하지 않으므로 숫자나 불리언이 문자열 필드로 들어오면 실패합니다.
func DecoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: false,
		DecodeHook:       rejectNumbers,
	}
}

var numberType = reflect.TypeOf(json.Number(""))

// json.Number 는 string 기반 타입이라 그대로 두면 문자열 필드에 들어간다.
func rejectNumbers(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from == numberType {
		return nil, fmt.Errorf("expected %s, got number %v", to, data)
	}
	return data, nil
}

// Decode: map[string]any를 Go struct로 디코딩합니다.
func Decode(input map[string]any, result any) error {
	decoder, err := mapstructure.NewDecoder(DecoderConfig(result))
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
