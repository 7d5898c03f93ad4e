package bind_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	sift "github.com/strainkit/sift"
	"github.com/strainkit/sift/bind"
	"github.com/strainkit/sift/source"
)

type request struct {
	ID      string   `sift:"id"`
	Retries int      `sift:"retries"`
	Ratio   float64  `sift:"ratio"`
	Tags    []string `sift:"tags"`
	User    struct {
		Name string `sift:"name"`
	} `sift:"user"`
	Note *string `sift:"note"`
}

// TestStruct_FromSanitizedOutput runs the full decode -> Process ->
// bind chain, covering json.Number conversion into typed fields.
func TestStruct_FromSanitizedOutput(t *testing.T) {
	doc := []byte(`{"id":"r_1","retries":4,"ratio":0.5,"tags":["a","b"],"user":{"name":"n","junk":true},"drop":1}`)
	m, err := source.JSONBytes(doc)
	require.NoError(t, err)

	schema := sift.Schema{
		sift.Prop("id", sift.Required(), sift.String()),
		sift.Prop("retries", sift.Default(3), sift.Int()),
		sift.Prop("ratio", sift.Required(), sift.Custom(func(v any) sift.CustomResult {
			return sift.Keep()
		})),
		sift.Prop("tags", sift.Required(), sift.Array(sift.String())),
		sift.Prop("user", sift.Required(), sift.Object(sift.Schema{
			sift.Prop("name", sift.Required(), sift.String()),
		})),
		sift.Prop("note", sift.Optional(), sift.String()),
	}
	out, err := sift.Process(m, schema)
	require.NoError(t, err)

	var req request
	require.NoError(t, bind.Struct(out, &req))
	require.Equal(t, "r_1", req.ID)
	require.Equal(t, 4, req.Retries)
	require.Equal(t, 0.5, req.Ratio)
	require.Equal(t, []string{"a", "b"}, req.Tags)
	require.Equal(t, "n", req.User.Name)
	require.Nil(t, req.Note, "absent optional should leave the pointer nil")
}

// TestStruct_NumberConversions covers each destination kind the hook
// handles.
func TestStruct_NumberConversions(t *testing.T) {
	var dst struct {
		I  int         `sift:"i"`
		U  uint16      `sift:"u"`
		F  float32     `sift:"f"`
		S  string      `sift:"s"`
		In interface{} `sift:"in"`
	}
	src := map[string]any{
		"i":  json.Number("-12"),
		"u":  json.Number("400"),
		"f":  json.Number("2.25"),
		"s":  json.Number("7.0"),
		"in": json.Number("9"),
	}
	require.NoError(t, bind.Struct(src, &dst))
	require.Equal(t, -12, dst.I)
	require.Equal(t, uint16(400), dst.U)
	require.Equal(t, float32(2.25), dst.F)
	require.Equal(t, "7.0", dst.S)
	require.Equal(t, json.Number("9"), dst.In, "interface fields keep the raw number")
}

// TestStruct_Errors covers conversion failures and bad targets.
func TestStruct_Errors(t *testing.T) {
	var dst struct {
		N int `sift:"n"`
	}
	require.Error(t, bind.Struct(map[string]any{"n": "not a number"}, &dst))
	require.Error(t, bind.Struct(map[string]any{"n": json.Number("1.5")}, &dst), "fractional number must not fit an int field")

	var udst struct {
		N uint `sift:"n"`
	}
	require.Error(t, bind.Struct(map[string]any{"n": json.Number("-1")}, &udst), "negative number must not fit a uint field")

	var notStruct int
	require.Error(t, bind.Struct(map[string]any{"n": 1}, &notStruct))
}

// TestStruct_FieldNameFallback verifies untagged fields match by name.
func TestStruct_FieldNameFallback(t *testing.T) {
	var dst struct {
		Color string
	}
	require.NoError(t, bind.Struct(map[string]any{"color": "red"}, &dst))
	require.Equal(t, "red", dst.Color)
}
