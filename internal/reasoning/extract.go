package reasoning

import (
	"encoding/json"
	"regexp"
	"strings"
)

var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

// ExtractJSON pulls one JSON object out of raw and unmarshals it into v.
// The reasoning service is told to answer with a single JSON line but often
// wraps it in prose, so the parse gets progressively more lenient:
//
//  1. strict parse of the whole text
//  2. strict parse of the first-"{" .. last-"}" substring
//  3. the same substring with single quotes normalized to double quotes and
//     trailing commas stripped
//
// Returns false when none of that yields a well-formed object. Never panics
// and never returns an error: unparseable output is an expected outcome, not
// a failure.
func ExtractJSON(raw string, v any) bool {
	if raw == "" {
		return false
	}
	if json.Unmarshal([]byte(raw), v) == nil {
		return true
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return false
	}

	slice := raw[start : end+1]
	if json.Unmarshal([]byte(slice), v) == nil {
		return true
	}

	fixed := strings.ReplaceAll(slice, "'", `"`)
	fixed = trailingComma.ReplaceAllString(fixed, "$1")
	return json.Unmarshal([]byte(fixed), v) == nil
}
