// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

// Package pkl models a reflected Pkl schema: modules, classes, type aliases
// and the type expressions their properties carry. Values here are produced
// by the schema loader and consumed read-only by the translator.
package pkl

import (
	"fmt"
	"strings"
)

// DeclarationKind discriminates the kinds of named declarations in a schema.
type DeclarationKind int

const (
	// KindClass is a class declaration (including builtin scalar classes).
	KindClass DeclarationKind = iota
	// KindTypeAlias is a type alias with an underlying type.
	KindTypeAlias
	// KindModule is a module declaration; its synthesized Swift struct is
	// named after the module.
	KindModule
)

// String returns a human-readable name for the kind.
func (k DeclarationKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindTypeAlias:
		return "typealias"
	case KindModule:
		return "module"
	default:
		return fmt.Sprintf("DeclarationKind(%d)", int(k))
	}
}

// Declaration is an identity handle for a class, type alias or module.
// Two declarations denote the same schema entity iff they are the same
// pointer; names are never used for equality, so a user-defined "Duration"
// cannot collide with the builtin one.
type Declaration struct {
	Kind DeclarationKind
	Name string

	// Owner is the enclosing module declaration, nil for builtins and for
	// module declarations themselves.
	Owner *Declaration

	// Aliased is the underlying type of a type alias, nil otherwise.
	Aliased Type

	// Properties holds the ordered properties of a class or module.
	Properties []Property
}

// Module resolves the module a declaration belongs to. A module declaration
// is its own module.
func (d *Declaration) Module() *Declaration {
	for cur := d; cur != nil; cur = cur.Owner {
		if cur.Kind == KindModule {
			return cur
		}
	}
	return nil
}

// Property is a named, typed member of a class or module.
type Property struct {
	Name string
	Type Type
}

// Type is a closed variant describing a Pkl type expression. The enumerated
// implementations are DeclaredType, ModuleType, UnionType, NullableType,
// UnknownType, NothingType and StringLiteralType; no other implementations
// exist.
type Type interface {
	fmt.Stringer
	typeNode()
}

// DeclaredType references a class or type alias, possibly parameterized.
type DeclaredType struct {
	Referent      *Declaration
	TypeArguments []Type
}

// ModuleType is the enclosing module's own type ("module" in a type
// position).
type ModuleType struct{}

// UnionType is an ordered union of member types.
type UnionType struct {
	Members []Type
}

// NullableType marks its member as nullable.
type NullableType struct {
	Member Type
}

// UnknownType is the top type.
type UnknownType struct{}

// NothingType is the bottom type.
type NothingType struct{}

// StringLiteralType is a single-value string type.
type StringLiteralType struct {
	Value string
}

func (*DeclaredType) typeNode()      {}
func (*ModuleType) typeNode()        {}
func (*UnionType) typeNode()         {}
func (*NullableType) typeNode()      {}
func (*UnknownType) typeNode()       {}
func (*NothingType) typeNode()       {}
func (*StringLiteralType) typeNode() {}

// Declared returns a reference to a declaration with optional type
// arguments.
func Declared(referent *Declaration, args ...Type) *DeclaredType {
	return &DeclaredType{Referent: referent, TypeArguments: args}
}

// Union returns a union over the given members.
func Union(members ...Type) *UnionType {
	return &UnionType{Members: members}
}

// Nullable wraps a type as nullable.
func Nullable(member Type) *NullableType {
	return &NullableType{Member: member}
}

// StringLiteral returns the type inhabited only by the given string value.
func StringLiteral(value string) *StringLiteralType {
	return &StringLiteralType{Value: value}
}

func (t *DeclaredType) String() string {
	if len(t.TypeArguments) == 0 {
		return t.Referent.Name
	}
	args := make([]string, len(t.TypeArguments))
	for i, a := range t.TypeArguments {
		args[i] = a.String()
	}
	return t.Referent.Name + "<" + strings.Join(args, ", ") + ">"
}

func (*ModuleType) String() string { return "module" }

func (t *UnionType) String() string {
	members := make([]string, len(t.Members))
	for i, m := range t.Members {
		members[i] = m.String()
	}
	return strings.Join(members, "|")
}

func (t *NullableType) String() string {
	// Unions bind looser than "?", so parenthesize them.
	if _, ok := t.Member.(*UnionType); ok {
		return "(" + t.Member.String() + ")?"
	}
	return t.Member.String() + "?"
}

func (*UnknownType) String() string { return "unknown" }

func (*NothingType) String() string { return "nothing" }

func (t *StringLiteralType) String() string {
	return fmt.Sprintf("%q", t.Value)
}

// Schema is one loaded module: its module declaration plus the classes and
// type aliases it declares, in document order.
type Schema struct {
	Module       *Declaration
	Declarations []*Declaration
}

// Lookup finds a declaration of the schema by name. The module itself is
// addressable under its own name.
func (s *Schema) Lookup(name string) (*Declaration, bool) {
	if s.Module != nil && s.Module.Name == name {
		return s.Module, true
	}
	for _, d := range s.Declarations {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}
