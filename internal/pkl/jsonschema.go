// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package pkl

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// LoadJSONSchema converts a JSON Schema document into the reflected-schema
// model: the root object becomes the module, $defs and inline nested objects
// become classes, non-required properties become nullable.
func LoadJSONSchema(data []byte, moduleName string) (*Schema, error) {
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("invalid JSON Schema: %w", err)
	}
	return FromJSONSchema(&schema, moduleName)
}

// FromJSONSchema converts an already-parsed JSON Schema into a Schema named
// after moduleName.
func FromJSONSchema(schema *jsonschema.Schema, moduleName string) (*Schema, error) {
	if schema.Title != "" {
		moduleName = schema.Title
	}
	module := &Declaration{Kind: KindModule, Name: moduleName}
	conv := &jsonSchemaConverter{
		schema: &Schema{Module: module},
		module: module,
	}

	// Declare $defs up front so $ref targets resolve regardless of order.
	defNames := make([]string, 0, len(schema.Defs))
	for name := range schema.Defs {
		defNames = append(defNames, name)
	}
	sort.Strings(defNames)
	for _, name := range defNames {
		conv.declareClass(pascalCase(name), schema.Defs[name])
	}
	props, err := conv.properties(schema)
	if err != nil {
		return nil, err
	}
	module.Properties = props

	// Fill $def class bodies after all names exist.
	for len(conv.pending) > 0 {
		decl := conv.pending[0]
		conv.pending = conv.pending[1:]
		body, err := conv.properties(conv.bodies[decl])
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", decl.Name, err)
		}
		decl.Properties = body
	}

	return conv.schema, nil
}

type jsonSchemaConverter struct {
	schema  *Schema
	module  *Declaration
	pending []*Declaration
	bodies  map[*Declaration]*jsonschema.Schema
}

func (c *jsonSchemaConverter) declareClass(name string, body *jsonschema.Schema) *Declaration {
	decl := &Declaration{Kind: KindClass, Name: name, Owner: c.module}
	c.schema.Declarations = append(c.schema.Declarations, decl)
	if c.bodies == nil {
		c.bodies = make(map[*Declaration]*jsonschema.Schema)
	}
	c.bodies[decl] = body
	c.pending = append(c.pending, decl)
	return decl
}

func (c *jsonSchemaConverter) properties(schema *jsonschema.Schema) ([]Property, error) {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	// Properties is an unordered map; sort for deterministic output.
	sort.Strings(names)

	props := make([]Property, 0, len(names))
	for _, name := range names {
		t, err := c.convert(schema.Properties[name], name)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", name, err)
		}
		if !isRequired(schema, name) {
			t = Nullable(t)
		}
		props = append(props, Property{Name: name, Type: t})
	}
	return props, nil
}

func (c *jsonSchemaConverter) convert(schema *jsonschema.Schema, fieldName string) (Type, error) {
	if schema == nil {
		return &UnknownType{}, nil
	}

	if schema.Ref != "" {
		name := pascalCase(strings.TrimPrefix(schema.Ref, "#/$defs/"))
		if decl, ok := c.schema.Lookup(name); ok {
			return Declared(decl), nil
		}
		return nil, fmt.Errorf("unresolved $ref %q", schema.Ref)
	}

	// Closed sets of string constants become string-literal unions, which
	// the translator collapses back to String.
	if len(schema.Enum) > 0 {
		members := make([]Type, 0, len(schema.Enum))
		for _, v := range schema.Enum {
			s, ok := enumString(v)
			if !ok {
				return &UnknownType{}, nil
			}
			members = append(members, StringLiteral(s))
		}
		return Union(members...), nil
	}

	switch schema.Type {
	case "string":
		return Declared(StringDecl), nil
	case "integer":
		return Declared(IntDecl), nil
	case "number":
		return Declared(FloatDecl), nil
	case "boolean":
		return Declared(BooleanDecl), nil
	case "null":
		return Declared(NullDecl), nil
	case "array":
		if schema.Items == nil {
			return Declared(ListingDecl), nil
		}
		elem, err := c.convert(schema.Items, fieldName)
		if err != nil {
			return nil, err
		}
		return Declared(ListingDecl, elem), nil
	}

	// Objects: an explicit property set becomes an extracted class, a bare
	// additionalProperties schema becomes a Mapping.
	if schema.Type == "object" || schema.Type == "" {
		if len(schema.Properties) > 0 {
			decl := c.declareClass(pascalCase(fieldName), schema)
			return Declared(decl), nil
		}
		if schema.AdditionalProperties != nil {
			elem, err := c.convert(schema.AdditionalProperties, fieldName)
			if err != nil {
				return nil, err
			}
			return Declared(MappingDecl, Declared(StringDecl), elem), nil
		}
	}

	return &UnknownType{}, nil
}

func isRequired(schema *jsonschema.Schema, name string) bool {
	for _, req := range schema.Required {
		if req == name {
			return true
		}
	}
	return false
}

func enumString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.RawMessage:
		var out string
		if err := json.Unmarshal(s, &out); err != nil {
			return "", false
		}
		return out, true
	default:
		return "", false
	}
}

// pascalCase converts snake_case or kebab-case names to PascalCase type
// names.
func pascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}
