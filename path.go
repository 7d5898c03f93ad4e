package sift

import (
	"strconv"
	"strings"
)

// Seg is one step of a failure path: either a field name or an array
// index. Index is negative for field segments.
type Seg struct {
	Key   string
	Index int
}

// Field returns a field-name segment.
func Field(name string) Seg { return Seg{Key: name, Index: -1} }

// Index returns an array-index segment.
func Index(i int) Seg { return Seg{Index: i} }

// IsIndex reports whether the segment addresses an array element.
func (s Seg) IsIndex() bool { return s.Index >= 0 }

func (s Seg) String() string {
	if s.IsIndex() {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

// Path locates a failing value from the root of the processed input.
// It is never empty on an *Error produced by Process.
type Path []Seg

// String renders the path as a JSON Pointer (for example: /items/2/price).
// Field names escape '~' -> '~0' and '/' -> '~1' per RFC 6901.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.IsIndex() {
			b.WriteString(strconv.Itoa(s.Index))
			continue
		}
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.Key, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// prepend returns a fresh path with seg in front of rest.
func prepend(seg Seg, rest Path) Path {
	out := make(Path, 0, len(rest)+1)
	out = append(out, seg)
	return append(out, rest...)
}
