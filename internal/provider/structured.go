package provider

import (
	"encoding/json"
	"strings"
)

// ParseList parses list-shaped provider output. A JSON array of strings is
// honored first; anything else is split into trimmed non-empty lines.
func ParseList(text string) []string {
	cleaned := cleanJSONBlock(text)

	var items []string
	if err := json.Unmarshal([]byte(cleaned), &items); err == nil {
		return items
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ParseKeyValue parses key-value shaped provider output. A JSON object is
// honored first; otherwise each "key: value" line contributes an entry.
func ParseKeyValue(text string) map[string]string {
	cleaned := cleanJSONBlock(text)

	var obj map[string]string
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		return obj
	}

	out := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
