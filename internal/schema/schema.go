// Package schema defines the JSON-Schema-like value objects exchanged with
// the training pipeline, plus the formatting and validation helpers the
// wizard applies to user-edited schema text.
package schema

// Field type names accepted in generated schemas.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// Schema is a JSON-Schema-like object describing one side of a model contract
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Minimum     *float64           `json:"minimum,omitempty"`
	Maximum     *float64           `json:"maximum,omitempty"`
}

// Set pairs the input and output contracts suggested for one problem
type Set struct {
	Input  *Schema `json:"input"`
	Output *Schema `json:"output"`
}

// Field describes one property for Object. Bounds apply only when set.
type Field struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Items       *Schema
	Minimum     *float64
	Maximum     *float64
}

// Object builds a fixed-shape object schema from a field-descriptor list.
// Every call returns a fresh value; required names are always a subset of
// the declared properties.
func Object(fields ...Field) *Schema {
	s := &Schema{
		Type:       TypeObject,
		Properties: make(map[string]*Schema, len(fields)),
	}

	for _, f := range fields {
		s.Properties[f.Name] = &Schema{
			Type:        f.Type,
			Description: f.Description,
			Items:       f.Items,
			Minimum:     f.Minimum,
			Maximum:     f.Maximum,
		}

		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}

	return s
}

// Bound returns a pointer for use as a Field minimum or maximum.
func Bound(v float64) *float64 {
	return &v
}

// IsEmpty reports whether the schema carries no information at all. A nil
// receiver counts as empty so unset schemas can flow through unchecked.
func (s *Schema) IsEmpty() bool {
	if s == nil {
		return true
	}

	return s.Type == "" &&
		s.Description == "" &&
		len(s.Properties) == 0 &&
		len(s.Required) == 0 &&
		s.Items == nil &&
		s.Minimum == nil &&
		s.Maximum == nil
}
