// Package sanitize recovers a parseable JSON object from noisy model
// output. Completion models reliably violate "JSON only" instructions
// under real traffic: they wrap output in markdown fences, prepend
// commentary, or trail explanations. The strip-then-slice approach here
// recovers those common failure modes without attempting a full forgiving
// JSON parser, keeping the component small and auditable.
package sanitize

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonFencePattern = regexp.MustCompile("(?i)```json")
	bareFencePattern = regexp.MustCompile("```")
	objectPattern    = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON strips fence markers and surrounding prose from raw model
// output and returns the span from the first '{' to the last '}'. It does
// not balance nested braces beyond the outermost pair; a literal '}' inside
// a string value followed by trailing prose can defeat the slice. That gap
// matches observed model behavior and is accepted over the cost of an
// escape-aware scanner.
func ExtractJSON(raw string) (string, error) {
	cleaned := jsonFencePattern.ReplaceAllString(raw, "")
	cleaned = bareFencePattern.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	first := strings.Index(cleaned, "{")
	if first == -1 {
		if match := objectPattern.FindString(cleaned); match != "" {
			return match, nil
		}
		return "", &NoJSONFoundError{Raw: raw}
	}
	last := strings.LastIndex(cleaned, "}")
	if last < first {
		// An opening brace with no close is a truncated or broken object,
		// not an absent one. Hand it to the parser so the failure reads as
		// malformed JSON with the raw text attached.
		return cleaned[first:], nil
	}
	return cleaned[first : last+1], nil
}

// Object extracts and parses the JSON object into v. A parse failure is
// classified as MalformedJSONError and carries the offending raw text for
// operator diagnosis; it is never silently swallowed.
func Object(raw string, v any) error {
	slice, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(slice), v); err != nil {
		return &MalformedJSONError{Raw: raw, Cause: err}
	}
	return nil
}
