package sift

import (
	"sort"

	js "github.com/strainkit/sift/jsonschema"
)

// JSONSchema renders the schema as a JSON Schema object. The rendering
// is lossy where the vocabulary is richer than JSON Schema: defaults
// appear as annotations without being validated, Custom checks run
// only at runtime and export as the empty schema, and unknown input
// keys are marked accepted because processing strips rather than
// rejects them.
func (s Schema) JSONSchema() *js.Schema {
	props := make(map[string]*js.Schema, len(s))
	required := make([]string, 0, len(s))
	for _, p := range s {
		ps := validatorJSONSchema(p.validator)
		switch p.req.kind {
		case reqRequired:
			required = append(required, p.name)
		case reqDefault:
			ps.Default = p.req.def
		}
		props[p.name] = ps
	}
	return &js.Schema{
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: true,
	}
}

func validatorJSONSchema(v Validator) *js.Schema {
	switch t := v.(type) {
	case boolValidator:
		return &js.Schema{Type: "boolean"}
	case nullValidator:
		return &js.Schema{Type: "null"}
	case intValidator:
		return &js.Schema{Type: "integer"}
	case intRangeValidator:
		min, max := t.min, t.max
		return &js.Schema{Type: "integer", Minimum: &min, Maximum: &max}
	case stringValidator:
		return &js.Schema{Type: "string"}
	case stringRangeValidator:
		min, max := t.min, t.max
		return &js.Schema{Type: "string", MinLength: &min, MaxLength: &max}
	case patternValidator:
		if t.re == nil {
			return rejectAll()
		}
		return &js.Schema{Type: "string", Pattern: t.re.String()}
	case literalValidator:
		value := t.value
		return &js.Schema{Type: "string", Const: &value}
	case enumValidator:
		// Sorted for deterministic output; the set has no declaration order.
		values := make([]string, 0, len(t.set))
		for member := range t.set {
			values = append(values, member)
		}
		sort.Strings(values)
		return &js.Schema{Type: "string", Enum: values}
	case objectValidator:
		return t.schema.JSONSchema()
	case objectAnyValidator:
		return &js.Schema{Type: "object"}
	case arrayValidator:
		return &js.Schema{Type: "array", Items: validatorJSONSchema(t.elem)}
	case orValidator:
		if len(t.alts) == 0 {
			return rejectAll()
		}
		alts := make([]*js.Schema, len(t.alts))
		for i, alt := range t.alts {
			alts[i] = validatorJSONSchema(alt)
		}
		return &js.Schema{AnyOf: alts}
	case customValidator:
		return &js.Schema{}
	}
	// A nil validator accepts nothing at runtime.
	return rejectAll()
}

func rejectAll() *js.Schema {
	return &js.Schema{Not: &js.Schema{}}
}
