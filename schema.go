package sift

// Schema is an ordered list of property declarations. Order matters
// only for failure reporting: processing stops at the first property
// that fails, in declaration order.
type Schema []Property

// Property declares one allowed field: the key it is looked up under
// (and written back under), its presence policy, and the validator a
// present value must satisfy.
type Property struct {
	name      string
	req       Requirement
	validator Validator
}

// Prop declares a property. Construction never fails; invalid
// parameters surface as validation failures at processing time.
func Prop(name string, req Requirement, v Validator) Property {
	return Property{name: name, req: req, validator: v}
}

// Name returns the input/output key of the property.
func (p Property) Name() string { return p.name }

// Requirement returns the presence policy of the property.
func (p Property) Requirement() Requirement { return p.req }

// Validator returns the validator applied to present values.
func (p Property) Validator() Validator { return p.validator }

type reqKind uint8

const (
	reqRequired reqKind = iota
	reqDefault
	reqOptional
)

// Requirement is a property's presence policy. The zero value is the
// required policy.
type Requirement struct {
	kind reqKind
	def  any
}

// Required marks a property that must be present in the input.
func Required() Requirement { return Requirement{kind: reqRequired} }

// Optional marks a property that may be absent. An absent value is
// simply omitted from the output.
func Optional() Requirement { return Requirement{kind: reqOptional} }

// Default marks a property that may be absent. An absent value writes v
// to the output verbatim; v never passes through the validator, so the
// caller owns its well-formedness.
func Default(v any) Requirement { return Requirement{kind: reqDefault, def: v} }
