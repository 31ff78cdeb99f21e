package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJsonRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")

// ParseStructured extracts a JSON object from a model response. Models often
// wrap the object in a fenced code block, so that is tried first, then the
// raw text. Responses that contain no valid JSON are wrapped as-is under a
// "content" key so the caller always gets an object back.
func ParseStructured(raw string) json.RawMessage {
	if m := fencedJsonRe.FindStringSubmatch(raw); m != nil {
		candidate := strings.TrimSpace(m[1])
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate)
		}
	}

	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}

	fallback, _ := json.Marshal(map[string]string{"content": raw})
	return json.RawMessage(fallback)
}
