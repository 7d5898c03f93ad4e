// Package bind decodes sanitized outputs onto caller structs.
//
// sift.Process returns generic maps; Struct is the bridge from that
// shape to typed domain values. Fields map by `sift` tag, falling back
// to a case-insensitive match on the field name.
package bind

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Struct decodes src onto target, which must be a pointer to a struct.
// json.Number values (the shape JSON sources deliver numbers in)
// convert to whatever numeric or string type the field declares.
func Struct(src map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: numberHook,
		Result:     target,
		TagName:    "sift",
	})
	if err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	if err := dec.Decode(src); err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	return nil
}

// numberHook converts json.Number into the kind of the destination
// field; other values pass through to mapstructure's own conversions.
func numberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	num, ok := data.(json.Number)
	if !ok {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return num.Int64()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseUint(num.String(), 10, 64)
	case reflect.Float32, reflect.Float64:
		return num.Float64()
	case reflect.String:
		return num.String(), nil
	}
	return data, nil
}
