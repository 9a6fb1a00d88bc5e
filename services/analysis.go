package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

// emptyAnalysis replaces model output that is not valid JSON.
const emptyAnalysis = "{}"

var fenceRe = regexp.MustCompile("(?i)\\n?```(?:json)?\\n?")

// StripCodeFences removes markdown code block markers like ```json and ```
func StripCodeFences(response string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(strings.TrimSpace(response), ""))
}

// NormalizeAnalysis strips fences and validates the result as JSON. When the
// text is not valid JSON it returns "{}" and ok=false.
func NormalizeAnalysis(response string) (normalized string, ok bool) {
	cleaned := StripCodeFences(response)
	if !json.Valid([]byte(cleaned)) {
		return emptyAnalysis, false
	}
	return cleaned, true
}
