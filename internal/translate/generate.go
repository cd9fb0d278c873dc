// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

// Package translate converts Pkl type expressions into Swift types. The
// translation is a pure recursive descent over the source type: all inputs
// are read-only, every call is deterministic, and independent expressions
// may be translated concurrently.
package translate

import (
	"errors"
	"fmt"

	"github.com/HT154/pkl-swift/internal/pkl"
	"github.com/HT154/pkl-swift/internal/swift"
)

// maxDepth caps recursion over the nesting depth of a type expression, so a
// hostile or malformed schema cannot overflow the stack.
const maxDepth = 64

// ErrTooDeep reports a type expression nested beyond maxDepth.
var ErrTooDeep = errors.New("type expression nested too deeply")

// UnsupportedTypeError reports a source type that matches no custom mapping,
// no builtin table and no alias unwrap. The caller decides whether to abort
// the run or skip the declaration; retrying without a new mapping reproduces
// the same failure.
type UnsupportedTypeError struct {
	Name string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cannot map %s to a Swift type; add a custom type mapping for it", e.Name)
}

// GenerateType translates a Pkl type expression into a Swift type.
// enclosing is the declaration whose property is being translated; it is
// only needed to resolve the module self-reference type. mappings is the
// caller's override list, consulted before any builtin table and passed
// unchanged into every nested call.
func GenerateType(t pkl.Type, enclosing *pkl.Declaration, mappings []Mapping) (swift.Type, error) {
	return generateType(t, enclosing, mappings, 0)
}

func generateType(t pkl.Type, enclosing *pkl.Declaration, mappings []Mapping, depth int) (swift.Type, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: %s", ErrTooDeep, t)
	}

	switch t := t.(type) {
	case *pkl.DeclaredType:
		return generateDeclaredType(t, enclosing, mappings, depth)
	case *pkl.ModuleType:
		// A module's own type resolves to the synthesized struct the
		// emitter names after the module, so self-references agree with
		// the generated name.
		var module *pkl.Declaration
		if enclosing != nil {
			module = enclosing.Module()
		}
		if module == nil {
			return nil, &UnsupportedTypeError{Name: t.String()}
		}
		return generateType(pkl.Declared(module), enclosing, mappings, depth+1)
	case *pkl.UnionType:
		return generateUnionType(t, mappings)
	case *pkl.NullableType:
		member, err := generateType(t.Member, enclosing, mappings, depth+1)
		if err != nil {
			return nil, err
		}
		return swift.Optional(member), nil
	case *pkl.UnknownType:
		return anyType(), nil
	case *pkl.NothingType:
		return swift.Named("Never"), nil
	case *pkl.StringLiteralType:
		// Literal types are approximated by their base type.
		return swift.Named("String"), nil
	default:
		return nil, &UnsupportedTypeError{Name: fmt.Sprintf("%v", t)}
	}
}

// generateDeclaredType resolves a declared type reference. Resolution order,
// first match wins: custom mappings, the scalar table, the generic table,
// then transparent alias unwrapping. Unwrapping comes last so a mapping that
// targets the alias itself still wins.
func generateDeclaredType(t *pkl.DeclaredType, enclosing *pkl.Declaration, mappings []Mapping, depth int) (swift.Type, error) {
	if target, ok := lookupDecl(mappings, t.Referent); ok {
		return target, nil
	}
	if target, ok := scalarTargets[t.Referent]; ok {
		return target, nil
	}
	if expand, ok := genericTargets[t.Referent]; ok {
		return expand(t.TypeArguments, enclosing, mappings, depth)
	}
	if t.Referent.Kind == pkl.KindTypeAlias && t.Referent.Aliased != nil {
		return generateType(t.Referent.Aliased, enclosing, mappings, depth+1)
	}
	return nil, &UnsupportedTypeError{Name: t.Referent.Name}
}

// generateUnionType resolves a union. An override must match the union
// value itself; absent that, unions of string literals collapse to String
// and everything else widens to the any type, trading precision for
// guaranteed generatability.
func generateUnionType(t *pkl.UnionType, mappings []Mapping) (swift.Type, error) {
	if target, ok := lookupUnion(mappings, t); ok {
		return target, nil
	}
	if isStringUnion(t) {
		return swift.Named("String"), nil
	}
	return anyType(), nil
}

func isStringUnion(t *pkl.UnionType) bool {
	for _, member := range t.Members {
		switch member := member.(type) {
		case *pkl.StringLiteralType:
		case *pkl.DeclaredType:
			if member.Referent != pkl.StringDecl {
				return false
			}
		default:
			return false
		}
	}
	return true
}
