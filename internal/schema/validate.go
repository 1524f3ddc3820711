package schema

import (
	"encoding/json"
	"strings"
)

// ErrNotObject is the message reported when schema text parses as valid
// JSON but is not an object.
const ErrNotObject = "schema must be a JSON object"

// Result reports the outcome of validating user-edited schema text.
// Error is set iff Valid is false; Parsed is set iff Valid is true.
type Result struct {
	Valid  bool           `json:"valid"`
	Error  string         `json:"error,omitempty"`
	Parsed map[string]any `json:"parsed,omitempty"`
}

// Validate checks that schema text is syntactically a JSON object. Empty or
// whitespace-only text counts as "no schema supplied yet" and is valid with
// an empty parse result. Parse failures surface the underlying JSON error
// message. Safe to call on every keystroke: no retained state, no panics.
func Validate(text string) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Valid: true, Parsed: map[string]any{}}
	}

	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return Result{Valid: false, Error: err.Error()}
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		// Arrays, primitives, and null all parse but are not schemas.
		return Result{Valid: false, Error: ErrNotObject}
	}

	return Result{Valid: true, Parsed: obj}
}
