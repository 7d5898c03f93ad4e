package sift_test

import (
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	sift "github.com/strainkit/sift"
	js "github.com/strainkit/sift/jsonschema"
)

func int64ptr(v int64) *int64 { return &v }
func intptr(v int) *int       { return &v }
func strptr(v string) *string { return &v }

// TestJSONSchema_Vocabulary walks one schema through every validator
// kind and checks the rendered document node by node.
func TestJSONSchema_Vocabulary(t *testing.T) {
	schema := sift.Schema{
		sift.Prop("on", sift.Required(), sift.Bool()),
		sift.Prop("gone", sift.Optional(), sift.Null()),
		sift.Prop("count", sift.Default(10), sift.Int()),
		sift.Prop("age", sift.Optional(), sift.IntRange(0, 130)),
		sift.Prop("name", sift.Required(), sift.StringRange(1, 64)),
		sift.Prop("slug", sift.Optional(), sift.Pattern(`^[a-z-]+$`)),
		sift.Prop("kind", sift.Optional(), sift.Literal("user")),
		sift.Prop("tier", sift.Optional(), sift.Enum("free", "pro")),
		sift.Prop("meta", sift.Optional(), sift.ObjectAny()),
		sift.Prop("tags", sift.Optional(), sift.Array(sift.String())),
		sift.Prop("id", sift.Required(), sift.Or(sift.Int(), sift.String())),
		sift.Prop("extra", sift.Optional(), sift.Custom(func(v any) sift.CustomResult {
			return sift.Keep()
		})),
		sift.Prop("addr", sift.Optional(), sift.Object(sift.Schema{
			sift.Prop("city", sift.Required(), sift.String()),
		})),
	}

	want := &js.Schema{
		Type: "object",
		Properties: map[string]*js.Schema{
			"on":    {Type: "boolean"},
			"gone":  {Type: "null"},
			"count": {Type: "integer", Default: 10},
			"age":   {Type: "integer", Minimum: int64ptr(0), Maximum: int64ptr(130)},
			"name":  {Type: "string", MinLength: intptr(1), MaxLength: intptr(64)},
			"slug":  {Type: "string", Pattern: `^[a-z-]+$`},
			"kind":  {Type: "string", Const: strptr("user")},
			"tier":  {Type: "string", Enum: []string{"free", "pro"}},
			"meta":  {Type: "object"},
			"tags":  {Type: "array", Items: &js.Schema{Type: "string"}},
			"id":    {AnyOf: []*js.Schema{{Type: "integer"}, {Type: "string"}}},
			"extra": {},
			"addr": {
				Type:                 "object",
				Properties:           map[string]*js.Schema{"city": {Type: "string"}},
				Required:             []string{"city"},
				AdditionalProperties: true,
			},
		},
		Required:             []string{"on", "name", "id"},
		AdditionalProperties: true,
	}

	if diff := cmp.Diff(want, schema.JSONSchema()); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

// TestJSONSchema_RejectAll verifies constructs that accept nothing at
// runtime render as a schema matching nothing.
func TestJSONSchema_RejectAll(t *testing.T) {
	schema := sift.Schema{
		sift.Prop("a", sift.Required(), sift.Pattern("(")),
		sift.Prop("b", sift.Required(), sift.Or()),
		sift.Prop("c", sift.Required(), nil),
	}
	doc := schema.JSONSchema()
	for _, name := range []string{"a", "b", "c"} {
		got := doc.Properties[name]
		if diff := cmp.Diff(&js.Schema{Not: &js.Schema{}}, got); diff != "" {
			t.Fatalf("property %s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

// TestJSONSchema_Marshal checks the wire shape of a rendered document,
// including that false-valued annotations survive marshaling.
func TestJSONSchema_Marshal(t *testing.T) {
	schema := sift.Schema{
		sift.Prop("active", sift.Default(false), sift.Bool()),
	}
	buf, err := j.Marshal(schema.JSONSchema())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(buf)
	for _, want := range []string{
		`"type":"object"`,
		`"default":false`,
		`"additionalProperties":true`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output, got: %s", want, out)
		}
	}
	if strings.Contains(out, `"required"`) {
		t.Fatalf("expected no required list, got: %s", out)
	}
}
