package schema

import "encoding/json"

// Format serializes a schema value as human-readable JSON with 2-space
// indentation. Field order is deterministic: struct declaration order for
// Schema values, sorted keys for maps. Never fails for values the wizard
// itself produces.
func Format(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}

	return string(data)
}

// EditorText renders a schema for display in an editor field. Absent or
// empty schemas become the empty string rather than literal braces, so an
// unset schema round-trips to an empty editor.
func EditorText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case *Schema:
		if s.IsEmpty() {
			return ""
		}
	case map[string]any:
		if len(s) == 0 {
			return ""
		}
	}

	return Format(v)
}
