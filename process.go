package sift

import "unicode/utf8"

// Process validates input against schema and returns the sanitized
// output: a fresh map holding only the declared properties, under
// their declared names. Properties are visited in declaration order
// and the first failure aborts the whole call, so a non-nil error is
// always an *Error locating exactly one field.
//
// Process never mutates input. Accepted values are stored verbatim
// (aside from Object/Array sanitization and Custom replacements), so
// feeding a successful output back through the same schema reproduces
// it.
func Process(input map[string]any, schema Schema) (map[string]any, error) {
	out, verr := process(input, schema)
	if verr != nil {
		return nil, verr
	}
	return out, nil
}

func process(input map[string]any, schema Schema) (map[string]any, *Error) {
	out := make(map[string]any, len(schema))
	for _, p := range schema {
		v, present := input[p.name]
		if !present {
			switch p.req.kind {
			case reqRequired:
				return nil, &Error{Path: Path{Field(p.name)}, Code: CodeRequired}
			case reqDefault:
				out[p.name] = p.req.def
			}
			continue
		}
		got, verr := check(Field(p.name), v, p.validator)
		if verr != nil {
			return nil, verr
		}
		out[p.name] = got
	}
	return out, nil
}

// check validates v against val. On success it returns the value to
// store; on failure the returned error's path already starts with seg.
func check(seg Seg, v any, val Validator) (any, *Error) {
	switch t := val.(type) {
	case boolValidator:
		if _, ok := v.(bool); ok {
			return v, nil
		}
	case nullValidator:
		if v == nil {
			return v, nil
		}
	case intValidator:
		if _, ok := asInt64(v); ok {
			return v, nil
		}
	case intRangeValidator:
		if i64, ok := asInt64(v); ok && i64 >= t.min && i64 <= t.max {
			return v, nil
		}
	case stringValidator:
		if _, ok := v.(string); ok {
			return v, nil
		}
	case stringRangeValidator:
		if s, ok := v.(string); ok {
			if n := utf8.RuneCountInString(s); n >= t.min && n <= t.max {
				return v, nil
			}
		}
	case patternValidator:
		if s, ok := v.(string); ok && t.re != nil && t.re.MatchString(s) {
			return v, nil
		}
	case literalValidator:
		if s, ok := v.(string); ok && s == t.value {
			return v, nil
		}
	case enumValidator:
		if s, ok := v.(string); ok {
			if _, hit := t.set[s]; hit {
				return v, nil
			}
		}
	case objectValidator:
		m, ok := v.(map[string]any)
		if !ok {
			break
		}
		sub, verr := process(m, t.schema)
		if verr != nil {
			return nil, &Error{Path: prepend(seg, verr.Path), Code: verr.Code}
		}
		return sub, nil
	case objectAnyValidator:
		if m, ok := v.(map[string]any); ok {
			return m, nil
		}
	case arrayValidator:
		arr, ok := v.([]any)
		if !ok {
			break
		}
		san := make([]any, len(arr))
		for i, el := range arr {
			got, verr := check(Index(i), el, t.elem)
			if verr != nil {
				return nil, &Error{Path: prepend(seg, verr.Path), Code: verr.Code}
			}
			san[i] = got
		}
		return san, nil
	case orValidator:
		for _, alt := range t.alts {
			if _, verr := check(seg, v, alt); verr == nil {
				// Alternatives only gate acceptance; the original
				// value is what gets stored.
				return v, nil
			}
		}
	case customValidator:
		return applyCustom(seg, v, t.fn)
	}
	return nil, &Error{Path: Path{seg}, Code: CodeInvalid}
}

func applyCustom(seg Seg, v any, fn CustomFunc) (any, *Error) {
	res := fn(v)
	switch res.kind {
	case customKeep:
		return v, nil
	case customReplace:
		return res.value, nil
	case customFail:
		return nil, &Error{Path: Path{seg}, Code: res.code}
	case customFailAt:
		return nil, &Error{Path: prepend(seg, res.path), Code: res.code}
	}
	panic("sift.Process: malformed CustomResult; construct it with Keep, Replace, Fail, or FailAt")
}
