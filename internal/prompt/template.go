package prompt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errUnclosedBrace   = errors.New("invalid template: missing '}'")
	errUnexpectedBrace = errors.New("invalid template: unexpected '}'")
)

// segment 는 템플릿을 나눈 조각이다. key 가 비어 있으면 literal 을 그대로 쓴다.
type segment struct {
	literal string
	key     string
}

// parseTemplate 는 {key} 자리와 리터럴을 순서대로 분리한다.
// {{ 와 }} 는 중괄호 리터럴이다.
func parseTemplate(template string) ([]segment, error) {
	var segments []segment
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(template); i++ {
		ch := template[i]
		doubled := i+1 < len(template) && template[i+1] == ch
		switch {
		case (ch == '{' || ch == '}') && doubled:
			literal.WriteByte(ch)
			i++
		case ch == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, errUnclosedBrace
			}
			if end == 0 {
				return nil, errors.New("invalid template: empty placeholder")
			}
			flush()
			segments = append(segments, segment{key: template[i+1 : i+1+end]})
			i += end + 1
		case ch == '}':
			return nil, errUnexpectedBrace
		default:
			literal.WriteByte(ch)
		}
	}
	flush()
	return segments, nil
}

// FormatTemplate: 템플릿의 {key} 자리를 값으로 치환합니다.
// 값은 그대로 삽입되며 다시 해석되지 않습니다.
func FormatTemplate(template string, values map[string]string) (string, error) {
	segments, err := parseTemplate(template)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.Grow(len(template))
	for _, seg := range segments {
		if seg.key == "" {
			builder.WriteString(seg.literal)
			continue
		}
		value, ok := values[seg.key]
		if !ok {
			return "", fmt.Errorf("missing template value for %q", seg.key)
		}
		builder.WriteString(value)
	}
	return builder.String(), nil
}

// Placeholders: 템플릿이 참조하는 키 목록을 등장 순서대로 반환합니다.
func Placeholders(template string) ([]string, error) {
	segments, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, seg := range segments {
		if seg.key != "" {
			keys = append(keys, seg.key)
		}
	}
	return keys, nil
}

// ValidateSystemStatic 는 system 프롬프트가 치환 자리 없이 고정 문구인지 확인한다.
func ValidateSystemStatic(name string, system string) error {
	keys, err := Placeholders(system)
	if err != nil {
		return fmt.Errorf("%s: system prompt: %w", name, err)
	}
	if len(keys) > 0 {
		return fmt.Errorf("%s: system prompt must not contain template variables %q", name, keys[0])
	}
	return nil
}
