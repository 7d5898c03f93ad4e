package sift

// CustomFunc is a caller-defined validator hook. It receives the raw
// input value and reports a verdict built with one of the CustomResult
// constructors: Keep, Replace, Fail, or FailAt.
//
// Custom functions are assumed synchronous and free of side effects on
// the input; the engine calls them inline and never recovers panics
// they raise.
type CustomFunc func(value any) CustomResult

type customKind uint8

const (
	customMalformed customKind = iota
	customKeep
	customReplace
	customFail
	customFailAt
)

// CustomResult is the verdict of a CustomFunc. Only values built by
// Keep, Replace, Fail, or FailAt are meaningful; handing the engine a
// zero CustomResult is a programmer error and panics Process, so a
// broken validator cannot masquerade as a validation failure.
type CustomResult struct {
	kind  customKind
	value any
	path  Path
	code  string
}

// Keep accepts the value; the original goes to the output verbatim.
func Keep() CustomResult { return CustomResult{kind: customKeep} }

// Replace accepts the value and writes v to the output instead.
func Replace(v any) CustomResult { return CustomResult{kind: customReplace, value: v} }

// Fail rejects the value at the current field. An empty code reports
// CodeInvalid.
func Fail(code string) CustomResult {
	if code == "" {
		code = CodeInvalid
	}
	return CustomResult{kind: customFail, code: code}
}

// FailAt rejects the value at a location inside it; path is rebased
// under the current field the way Object sub-errors are. An empty code
// reports CodeInvalid.
func FailAt(path Path, code string) CustomResult {
	if code == "" {
		code = CodeInvalid
	}
	return CustomResult{kind: customFailAt, path: path, code: code}
}
