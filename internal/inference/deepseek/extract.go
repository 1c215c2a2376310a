package deepseek

import (
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when a completion contains no balanced
// top-level JSON object.
var ErrNoJSONObject = errors.New("no JSON object found in completion")

// ExtractFirstJSONObject returns the substring spanning the first top-level
// balanced {...} object in text. Model responses are not guaranteed to omit
// explanatory prose or markdown fences around the JSON payload, so a
// brace-depth scan is used to recover it.
//
// The scan counts braces only and is unaware of string-literal escaping: a
// brace inside a quoted value desynchronises it. This is an accepted
// limitation given prompt-controlled responses.
//
// No semantic validation is performed; decoding the result is the caller's
// responsibility.
func ExtractFirstJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoJSONObject
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSONObject
}
