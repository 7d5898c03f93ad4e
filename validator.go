package sift

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
)

// Validator describes what a present value must look like. The set of
// implementations is closed and the engine dispatches over it
// exhaustively; Custom is the extension point for caller-defined
// checks.
//
// Validators are immutable once constructed and safe to share across
// schemas and goroutines.
type Validator interface {
	isValidator()
}

// Bool accepts true or false.
func Bool() Validator { return boolValidator{} }

// Null accepts only an explicit null (Go nil). Null and absent are
// distinct: a required property is still missing when the key is not
// present at all.
func Null() Validator { return nullValidator{} }

// Int accepts integer values: the Go int and uint families, a
// json.Number without a fractional part, and floats whose value is
// integral. Strings never pass, and values outside the signed 64-bit
// range are rejected. The accepted value is stored verbatim.
func Int() Validator { return intValidator{} }

// IntRange accepts integer values within [min, max], both ends
// inclusive. A range with min > max rejects everything.
func IntRange(min, max int64) Validator { return intRangeValidator{min: min, max: max} }

// String accepts text.
func String() Validator { return stringValidator{} }

// StringRange accepts text whose length in code points falls within
// [min, max], both ends inclusive.
func StringRange(min, max int) Validator { return stringRangeValidator{min: min, max: max} }

// Pattern accepts text the expression matches somewhere; anchor with
// ^ and $ for a full match. An expression that does not compile
// rejects everything, since declaring a Property never fails.
func Pattern(expr string) Validator {
	re, err := regexp.Compile(expr)
	if err != nil {
		return patternValidator{}
	}
	return patternValidator{re: re}
}

// Literal accepts exactly the given text.
func Literal(value string) Validator { return literalValidator{value: value} }

// Enum accepts any member of the given set of strings. The set is
// snapshotted at construction.
func Enum(values ...string) Validator {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return enumValidator{set: set}
}

// Object accepts a map and processes it against the sub-schema. The
// sanitized sub-output replaces the original map, so allow-listing
// applies recursively.
func Object(schema Schema) Validator { return objectValidator{schema: schema} }

// ObjectAny accepts any map and passes it through unchanged. This opts
// the subtree out of allow-listing; the caller owns whatever keys the
// input carried.
func ObjectAny() Validator { return objectAnyValidator{} }

// Array accepts a slice and checks every element against elem. Element
// failures report the element index on the path.
func Array(elem Validator) Validator { return arrayValidator{elem: elem} }

// Or accepts a value that any alternative accepts, trying them in
// order. The original value is kept even when the matching alternative
// would transform it, and the failures of rejecting alternatives are
// discarded. With no alternatives it rejects everything.
func Or(alts ...Validator) Validator { return orValidator{alts: alts} }

// Custom hooks fn into the validator set. See CustomFunc for the
// contract.
func Custom(fn CustomFunc) Validator { return customValidator{fn: fn} }

// ---- variants ----

type boolValidator struct{}

type nullValidator struct{}

type intValidator struct{}

type intRangeValidator struct{ min, max int64 }

type stringValidator struct{}

type stringRangeValidator struct{ min, max int }

// patternValidator holds a nil re when the expression failed to
// compile; a nil re matches nothing.
type patternValidator struct{ re *regexp.Regexp }

type literalValidator struct{ value string }

type enumValidator struct{ set map[string]struct{} }

type objectValidator struct{ schema Schema }

type objectAnyValidator struct{}

type arrayValidator struct{ elem Validator }

type orValidator struct{ alts []Validator }

type customValidator struct{ fn CustomFunc }

func (boolValidator) isValidator()        {}
func (nullValidator) isValidator()        {}
func (intValidator) isValidator()         {}
func (intRangeValidator) isValidator()    {}
func (stringValidator) isValidator()      {}
func (stringRangeValidator) isValidator() {}
func (patternValidator) isValidator()     {}
func (literalValidator) isValidator()     {}
func (enumValidator) isValidator()        {}
func (objectValidator) isValidator()      {}
func (objectAnyValidator) isValidator()   {}
func (arrayValidator) isValidator()       {}
func (orValidator) isValidator()          {}
func (customValidator) isValidator()      {}

// asInt64 reports whether v carries an integer value and returns it.
// json.Number prefers exact Int64 parsing and falls back to a float
// parse with a fractional-part check, so "3.0" counts as integer while
// "3.5" does not.
func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return intFromUint(uint64(t))
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		return intFromUint(t)
	case json.Number:
		if i64, err := t.Int64(); err == nil {
			return i64, true
		}
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, false
		}
		return intFromFloat(f)
	case float64:
		return intFromFloat(t)
	case float32:
		return intFromFloat(float64(t))
	}
	return 0, false
}

func intFromUint(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

func intFromFloat(f float64) (int64, bool) {
	if math.Trunc(f) != f || math.IsInf(f, 0) {
		return 0, false
	}
	// 2^63 is exactly representable; anything at or past it overflows.
	if f >= float64(1<<63) || f < -float64(1<<63) {
		return 0, false
	}
	return int64(f), true
}
