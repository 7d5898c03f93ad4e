package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLReader decodes a single YAML mapping from r. A stream carrying
// more than one document is rejected.
func YAMLReader(r io.Reader) (map[string]any, error) {
	dec := yaml.NewDecoder(r)

	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("source: empty YAML document")
		}
		return nil, fmt.Errorf("source: invalid YAML: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("source: trailing YAML document")
	}
	m := anyToStringMap(node)
	if m == nil {
		return nil, errors.New("source: top-level YAML value must be a mapping")
	}
	return m, nil
}

// YAMLBytes decodes a single YAML mapping from b.
func YAMLBytes(b []byte) (map[string]any, error) {
	return YAMLReader(bytes.NewReader(b))
}

// anyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Entries
// under non-string keys are dropped. Non-map roots return nil.
func anyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return anyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
