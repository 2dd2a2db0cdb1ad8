package forms

import (
	"strconv"
	"strings"
)

// Boolean entry vocabularies. Matching is case-insensitive.
var (
	trueTokens  = []string{"yes", "true", "1", "y", "t"}
	falseTokens = []string{"no", "false", "0", "n", "f"}
)

// parseValue converts one raw editor entry into a typed value. A blank entry
// means keep the current value, reported through keep. Entries that fail to
// parse also keep, so a stray keystroke never corrupts a parameter.
func parseValue(paramType, raw string) (value any, keep bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	switch normalizeType(paramType) {
	case TypeBool:
		return parseBool(raw)
	case TypeFloat:
		return parseFloat(raw)
	default:
		return raw, false
	}
}

func parseBool(raw string) (any, bool) {
	lowered := strings.ToLower(raw)
	for _, token := range trueTokens {
		if lowered == token {
			return true, false
		}
	}
	for _, token := range falseTokens {
		if lowered == token {
			return false, false
		}
	}
	return nil, true
}

// parseFloat reads the first whitespace-separated token so trailing units
// are tolerated, and accepts a decimal comma.
func parseFloat(raw string) (any, bool) {
	token := raw
	if fields := strings.Fields(raw); len(fields) > 0 {
		token = fields[0]
	}
	token = strings.ReplaceAll(token, ",", ".")
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, true
	}
	return f, false
}
