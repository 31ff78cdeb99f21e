package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Section is one heading/body pair of a rendered document. Sections keep the
// order the keys appear in the stored content.
type Section struct {
	Heading string
	Body    string
}

type member struct {
	key   string
	value json.RawMessage
}

// Flatten turns a generation content object into an ordered list of sections.
// Null members are skipped.
func Flatten(content json.RawMessage) ([]Section, error) {
	members, err := decodeOrderedObject(content)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten content: %w", err)
	}

	sections := make([]Section, 0, len(members))
	for _, m := range members {
		if isNull(m.value) {
			continue
		}
		sections = append(sections, Section{
			Heading: FormatKey(m.key),
			Body:    FormatValue(m.value),
		})
	}
	return sections, nil
}

// decodeOrderedObject walks a JSON object with a token decoder so member
// order survives, which map-based decoding would lose.
func decodeOrderedObject(raw json.RawMessage) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var members []member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		members = append(members, member{key: key, value: value})
	}
	return members, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// FormatKey renders a camelCase key as a human heading, e.g.
// "learningObjectives" becomes "Learning Objectives".
func FormatKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// FormatValue renders a JSON value as body text. String arrays become
// numbered lists, object arrays become one "key: value" line per element,
// nested objects become "key: value" lines with the keys left as-is.
func FormatValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}

	switch trimmed[0] {
	case '[':
		return formatArray(trimmed)
	case '{':
		return formatObject(trimmed)
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return string(trimmed)
		}
		return s
	default:
		return string(trimmed)
	}
}

func formatArray(raw json.RawMessage) string {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return string(raw)
	}

	lines := make([]string, 0, len(elements))
	for i, el := range elements {
		if isNull(el) {
			continue
		}
		trimmed := bytes.TrimSpace(el)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			lines = append(lines, formatInlineObject(trimmed))
		} else {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, FormatValue(el)))
		}
	}
	return strings.Join(lines, "\n")
}

func formatObject(raw json.RawMessage) string {
	members, err := decodeOrderedObject(raw)
	if err != nil {
		return string(raw)
	}

	lines := make([]string, 0, len(members))
	for _, m := range members {
		if isNull(m.value) {
			continue
		}
		// Nested keys stay raw, only top-level headings get reformatted.
		lines = append(lines, fmt.Sprintf("%s: %s", m.key, FormatValue(m.value)))
	}
	return strings.Join(lines, "\n")
}

func formatInlineObject(raw json.RawMessage) string {
	members, err := decodeOrderedObject(raw)
	if err != nil {
		return string(raw)
	}

	pairs := make([]string, 0, len(members))
	for _, m := range members {
		if isNull(m.value) {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s: %s", m.key, FormatValue(m.value)))
	}
	return strings.Join(pairs, ", ")
}
