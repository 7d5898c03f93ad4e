// Package schemadef loads declarative schema definitions from YAML and
// compiles them into sift.Schema values.
//
// A definition file mirrors the programmatic surface one to one:
//
//	properties:
//	  - name: id
//	    required: true
//	    validator: {type: string}
//	  - name: retries
//	    default: 3
//	    validator: {type: int_range, min: 0, max: 10}
//	  - name: tags
//	    validator: {type: array, items: {type: string}}
//
// Custom validators are code and cannot be expressed in a file.
package schemadef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	sift "github.com/strainkit/sift"
	"gopkg.in/yaml.v3"
)

type document struct {
	Properties []propertyDef `yaml:"properties"`
}

type propertyDef struct {
	Name     string    `yaml:"name"`
	Required bool      `yaml:"required"`
	Default  yaml.Node `yaml:"default"`
	// Validator is mandatory; a property without one is a definition
	// error rather than a property that rejects everything.
	Validator *validatorDef `yaml:"validator"`
}

type validatorDef struct {
	Type       string         `yaml:"type"`
	Min        *int64         `yaml:"min"`
	Max        *int64         `yaml:"max"`
	Pattern    string         `yaml:"pattern"`
	Value      string         `yaml:"value"`
	Values     []string       `yaml:"values"`
	Items      *validatorDef  `yaml:"items"`
	AnyOf      []validatorDef `yaml:"any_of"`
	Properties []propertyDef  `yaml:"properties"`
}

// Load reads one YAML schema definition from r and compiles it.
func Load(r io.Reader) (sift.Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("schemadef: empty definition")
		}
		return nil, fmt.Errorf("schemadef: invalid YAML: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("schemadef: definition must be a single document")
	}
	return compileSchema(doc.Properties)
}

// LoadBytes compiles a YAML schema definition held in b.
func LoadBytes(b []byte) (sift.Schema, error) {
	return Load(bytes.NewReader(b))
}

// LoadFile compiles the YAML schema definition at path.
func LoadFile(path string) (sift.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schemadef: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func compileSchema(props []propertyDef) (sift.Schema, error) {
	schema := make(sift.Schema, 0, len(props))
	for _, p := range props {
		prop, err := compileProperty(p)
		if err != nil {
			return nil, err
		}
		schema = append(schema, prop)
	}
	return schema, nil
}

func compileProperty(p propertyDef) (sift.Property, error) {
	if p.Name == "" {
		return sift.Property{}, errors.New("schemadef: property with empty name")
	}
	hasDefault := !p.Default.IsZero()
	if p.Required && hasDefault {
		return sift.Property{}, fmt.Errorf("schemadef: property %q: required and default are mutually exclusive", p.Name)
	}
	if p.Validator == nil {
		return sift.Property{}, fmt.Errorf("schemadef: property %q: missing validator", p.Name)
	}

	req := sift.Optional()
	switch {
	case p.Required:
		req = sift.Required()
	case hasDefault:
		var def any
		if err := p.Default.Decode(&def); err != nil {
			return sift.Property{}, fmt.Errorf("schemadef: property %q: bad default: %w", p.Name, err)
		}
		req = sift.Default(def)
	}

	v, err := compileValidator(p.Name, *p.Validator)
	if err != nil {
		return sift.Property{}, err
	}
	return sift.Prop(p.Name, req, v), nil
}

func compileValidator(name string, def validatorDef) (sift.Validator, error) {
	switch def.Type {
	case "bool":
		return sift.Bool(), nil
	case "null":
		// must be written quoted ("null"); unquoted it is the YAML
		// null literal and arrives here as an empty type
		return sift.Null(), nil
	case "int":
		return sift.Int(), nil
	case "int_range":
		if def.Min == nil || def.Max == nil {
			return nil, fmt.Errorf("schemadef: property %q: int_range needs min and max", name)
		}
		return sift.IntRange(*def.Min, *def.Max), nil
	case "string":
		return sift.String(), nil
	case "string_range":
		if def.Min == nil || def.Max == nil {
			return nil, fmt.Errorf("schemadef: property %q: string_range needs min and max", name)
		}
		return sift.StringRange(int(*def.Min), int(*def.Max)), nil
	case "pattern":
		if def.Pattern == "" {
			return nil, fmt.Errorf("schemadef: property %q: pattern needs an expression", name)
		}
		if _, err := regexp.Compile(def.Pattern); err != nil {
			return nil, fmt.Errorf("schemadef: property %q: bad pattern: %w", name, err)
		}
		return sift.Pattern(def.Pattern), nil
	case "literal":
		return sift.Literal(def.Value), nil
	case "enum":
		if len(def.Values) == 0 {
			return nil, fmt.Errorf("schemadef: property %q: enum needs values", name)
		}
		return sift.Enum(def.Values...), nil
	case "object":
		sub, err := compileSchema(def.Properties)
		if err != nil {
			return nil, err
		}
		return sift.Object(sub), nil
	case "object_any":
		return sift.ObjectAny(), nil
	case "array":
		if def.Items == nil {
			return nil, fmt.Errorf("schemadef: property %q: array needs items", name)
		}
		elem, err := compileValidator(name, *def.Items)
		if err != nil {
			return nil, err
		}
		return sift.Array(elem), nil
	case "or":
		if len(def.AnyOf) == 0 {
			return nil, fmt.Errorf("schemadef: property %q: or needs any_of alternatives", name)
		}
		alts := make([]sift.Validator, 0, len(def.AnyOf))
		for _, a := range def.AnyOf {
			alt, err := compileValidator(name, a)
			if err != nil {
				return nil, err
			}
			alts = append(alts, alt)
		}
		return sift.Or(alts...), nil
	case "":
		return nil, fmt.Errorf("schemadef: property %q: validator without a type", name)
	default:
		return nil, fmt.Errorf("schemadef: property %q: unknown validator type %q", name, def.Type)
	}
}
