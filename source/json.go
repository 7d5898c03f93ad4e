package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// JSONReader decodes a single JSON object from r. Numbers decode as
// json.Number. Content after the document is rejected.
func JSONReader(r io.Reader) (map[string]any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("source: empty JSON document")
		}
		return nil, fmt.Errorf("source: invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, errors.New("source: trailing data after JSON document")
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("source: top-level JSON value must be an object")
	}
	return m, nil
}

// JSONBytes decodes a single JSON object from b.
func JSONBytes(b []byte) (map[string]any, error) {
	return JSONReader(bytes.NewReader(b))
}
