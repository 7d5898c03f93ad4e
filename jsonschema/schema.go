package jsonschema

// Schema is a minimal JSON Schema representation, just large enough to
// carry what the validator vocabulary can express. Fields are grouped
// by the value kind they constrain.
type Schema struct {
	// Core
	Type    string `json:"type,omitempty"`
	Default any    `json:"default,omitempty"`

	// Integer
	Minimum *int64 `json:"minimum,omitempty"`
	Maximum *int64 `json:"maximum,omitempty"`

	// String
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Const     *string  `json:"const,omitempty"`
	Enum      []string `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Composition
	AnyOf []*Schema `json:"anyOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`
}
