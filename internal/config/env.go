package config

import (
	"os"
	"strconv"
	"strings"
)

// apiKeyEnvKeys 는 조회 순서다. GEMINI_API_KEY 가 비어 있을 때만 GOOGLE_API_KEY 를 본다.
var apiKeyEnvKeys = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

func parseAPIKey() string {
	value, _ := firstEnv(apiKeyEnvKeys...)
	return value
}

// firstEnv 는 공백을 제거한 값이 비어 있지 않은 첫 번째 키의 값을 반환한다.
func firstEnv(keys ...string) (string, bool) {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value, true
		}
	}
	return "", false
}

// envOr 는 key 값을 parse 로 변환하고, 값이 없거나 변환에 실패하면 def 를 반환한다.
func envOr[T any](key string, def T, parse func(string) (T, error)) T {
	raw, ok := firstEnv(key)
	if !ok {
		return def
	}
	parsed, err := parse(raw)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvString(key string, def string) string {
	return envOr(key, def, func(raw string) (string, error) { return raw, nil })
}

func getEnvInt(key string, def int) int {
	return envOr(key, def, strconv.Atoi)
}

// 음수는 0(비활성)으로 본다.
func getEnvNonNegativeInt(key string, def int) int {
	return max(0, getEnvInt(key, def))
}

func getEnvFloat(key string, def float64) float64 {
	return envOr(key, def, func(raw string) (float64, error) {
		return strconv.ParseFloat(raw, 64)
	})
}

func getEnvBool(key string, def bool) bool {
	return envOr(key, def, parseBool)
}

// strconv.ParseBool 에 yes/no, on/off 를 더한다.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func getEnvList(key string) []string {
	raw, ok := firstEnv(key)
	if !ok {
		return nil
	}
	return splitList(raw)
}

// 쉼표와 공백 문자를 모두 구분자로 취급한다.
func splitList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func maskSecret(value string) string {
	runes := []rune(value)
	switch {
	case len(runes) == 0:
		return "<missing>"
	case len(runes) <= 4:
		return strings.Repeat("*", len(runes))
	default:
		return string(runes[:2]) + "***" + string(runes[len(runes)-2:])
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
