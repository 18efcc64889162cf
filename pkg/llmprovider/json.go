package llmprovider

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when a reply carries no JSON object.
var ErrNoJSONObject = errors.New("no JSON object in model reply")

// ExtractJSON strips markdown code fences and any prose around the first
// top-level JSON object of a model reply.
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```JSON")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return "", ErrNoJSONObject
	}
	return text[start : end+1], nil
}

// DecodeJSON extracts the JSON object of a reply and unmarshals it into v.
func DecodeJSON(text string, v any) error {
	raw, err := ExtractJSON(text)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), v)
}
