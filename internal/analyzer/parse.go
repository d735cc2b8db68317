package analyzer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Generative models sometimes wrap JSON in markdown fences or leak
// chain-of-thought tags despite structured-output instructions. All
// response parsing funnels through ParseGenerated so the cleanup and
// fallback policy exist in exactly one place.

var (
	thinkingTagRe = regexp.MustCompile(`(?s)<thinking>.*?</thinking>`)
	codeFenceRe   = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
)

// ParseError reports that generated output could not be parsed as the
// expected JSON shape even after cleanup.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse generated output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseGenerated strips thinking tags and code fences from raw model
// output and unmarshals the remainder into T.
func ParseGenerated[T any](raw []byte) (T, error) {
	var out T

	cleaned := thinkingTagRe.ReplaceAllString(string(raw), "")
	if m := codeFenceRe.FindStringSubmatch(cleaned); m != nil {
		cleaned = m[1]
	}
	cleaned = strings.TrimSpace(cleaned)

	// Trim any leading prose before the first JSON delimiter.
	if i := strings.IndexAny(cleaned, "{["); i > 0 {
		cleaned = cleaned[i:]
	}

	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return out, &ParseError{Raw: string(raw), Err: err}
	}
	return out, nil
}
