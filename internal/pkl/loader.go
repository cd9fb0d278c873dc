// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package pkl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// document mirrors one reflected-schema YAML file. Mapping sections are kept
// as raw nodes so declaration and property order survives decoding.
type document struct {
	Module     string    `yaml:"module"`
	Classes    yaml.Node `yaml:"classes"`
	Aliases    yaml.Node `yaml:"aliases"`
	Properties yaml.Node `yaml:"properties"`
}

// LoadFile reads one schema entrypoint. Files ending in .json are treated as
// JSON Schema documents and converted; everything else is a reflected-schema
// YAML document.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from project config
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSONSchema(data, name)
	}
	return Load(data)
}

// Load parses a reflected-schema YAML document into a Schema. Resolution is
// two-pass: all declarations are created first so type expressions may refer
// to classes and aliases declared later in the document. Document
// declarations shadow builtins.
func Load(data []byte) (*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid schema document: %w", err)
	}
	if doc.Module == "" {
		return nil, fmt.Errorf("invalid schema document: missing module name")
	}

	module := &Declaration{Kind: KindModule, Name: doc.Module}
	schema := &Schema{Module: module}

	classes, err := mappingEntries(&doc.Classes, "classes")
	if err != nil {
		return nil, err
	}
	aliases, err := mappingEntries(&doc.Aliases, "aliases")
	if err != nil {
		return nil, err
	}

	// First pass: declare every name.
	for _, entry := range classes {
		schema.Declarations = append(schema.Declarations, &Declaration{
			Kind:  KindClass,
			Name:  entry.key,
			Owner: module,
		})
	}
	for _, entry := range aliases {
		schema.Declarations = append(schema.Declarations, &Declaration{
			Kind:  KindTypeAlias,
			Name:  entry.key,
			Owner: module,
		})
	}

	resolve := func(name string) (*Declaration, bool) {
		if d, ok := schema.Lookup(name); ok {
			return d, true
		}
		return LookupBuiltin(name)
	}

	// Second pass: parse property and alias type expressions.
	for _, entry := range classes {
		decl, _ := schema.Lookup(entry.key)
		props, err := classProperties(entry.value, resolve)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", entry.key, err)
		}
		decl.Properties = props
	}
	for _, entry := range aliases {
		decl, _ := schema.Lookup(entry.key)
		if entry.value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("alias %s: expected a type expression", entry.key)
		}
		aliased, err := ParseType(entry.value.Value, resolve)
		if err != nil {
			return nil, fmt.Errorf("alias %s: %w", entry.key, err)
		}
		decl.Aliased = aliased
	}

	moduleProps, err := propertyEntries(&doc.Properties, resolve)
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", doc.Module, err)
	}
	module.Properties = moduleProps

	return schema, nil
}

type mappingEntry struct {
	key   string
	value *yaml.Node
}

// mappingEntries walks a YAML mapping node in document order.
func mappingEntries(node *yaml.Node, section string) ([]mappingEntry, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: expected a mapping", section)
	}
	entries := make([]mappingEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		entries = append(entries, mappingEntry{
			key:   node.Content[i].Value,
			value: node.Content[i+1],
		})
	}
	return entries, nil
}

func classProperties(node *yaml.Node, resolve Resolver) ([]Property, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	// Accept either a bare property mapping or a {properties: ...} wrapper.
	props := node
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "properties" {
				props = node.Content[i+1]
				break
			}
		}
	}
	return propertyEntries(props, resolve)
}

func propertyEntries(node *yaml.Node, resolve Resolver) ([]Property, error) {
	entries, err := mappingEntries(node, "properties")
	if err != nil {
		return nil, err
	}
	props := make([]Property, 0, len(entries))
	for _, entry := range entries {
		if entry.value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("property %s: expected a type expression", entry.key)
		}
		t, err := ParseType(entry.value.Value, resolve)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", entry.key, err)
		}
		props = append(props, Property{Name: entry.key, Type: t})
	}
	return props, nil
}
