package schema

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestFormatRoundTrip(t *testing.T) {
	original := Object(
		Field{Name: "text", Type: TypeString, Required: true, Description: "Content"},
		Field{
			Name: "confidence", Type: TypeNumber,
			Description: "Model confidence",
			Minimum:     Bound(0), Maximum: Bound(1),
		},
		Field{
			Name: "tags", Type: TypeArray,
			Items: &Schema{Type: TypeString},
		},
	)

	text := Format(original)

	var parsed Schema
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		t.Fatalf("formatted schema does not parse: %v", err)
	}

	if !reflect.DeepEqual(*original, parsed) {
		t.Errorf("round trip changed schema:\noriginal: %+v\nparsed:   %+v", *original, parsed)
	}
}

func TestFormatUsesTwoSpaceIndent(t *testing.T) {
	text := Format(map[string]any{"a": 1})

	if !strings.Contains(text, "\n  \"a\"") {
		t.Errorf("expected 2-space indentation, got:\n%s", text)
	}
}

func TestEditorText(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil value", input: nil, want: ""},
		{name: "nil schema", input: (*Schema)(nil), want: ""},
		{name: "empty schema", input: &Schema{}, want: ""},
		{name: "empty map", input: map[string]any{}, want: ""},
		{
			name:  "populated map formats",
			input: map[string]any{"a": float64(1)},
			want:  Format(map[string]any{"a": float64(1)}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EditorText(tt.input); got != tt.want {
				t.Errorf("EditorText(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	populated := Object(Field{Name: "a", Type: TypeString})
	if EditorText(populated) != Format(populated) {
		t.Error("populated schema should format identically through EditorText")
	}
}
