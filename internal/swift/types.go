// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

// Package swift models the Swift types the generator emits and renders them
// to Swift source syntax.
package swift

import "strings"

// Type is a closed variant describing a Swift type. The enumerated
// implementations are Declared, Nullable, Array and Dictionary.
type Type interface {
	typeNode()
}

// Declared is a nameable Swift type, optionally namespaced and
// parameterized. IsNumeric marks integer and floating-point types so the
// emitter can make literal-formatting decisions.
type Declared struct {
	Namespace     string
	Name          string
	TypeArguments []Type
	IsNumeric     bool
}

// Nullable renders its element with Swift's "?" suffix. Element is never
// itself a Nullable; construct values through Optional to keep that
// invariant.
type Nullable struct {
	Element Type
}

// Array is the structural Swift array type "[Element]".
type Array struct {
	Element Type
}

// Dictionary is the structural Swift dictionary type "[Key: Element]".
type Dictionary struct {
	Key     Type
	Element Type
}

func (*Declared) typeNode()   {}
func (*Nullable) typeNode()   {}
func (*Array) typeNode()      {}
func (*Dictionary) typeNode() {}

// Named returns a declared type with optional type arguments.
func Named(name string, args ...Type) *Declared {
	return &Declared{Name: name, TypeArguments: args}
}

// Numeric returns a declared numeric type.
func Numeric(name string) *Declared {
	return &Declared{Name: name, IsNumeric: true}
}

// InModule returns a declared type qualified by a module namespace.
func InModule(namespace, name string, args ...Type) *Declared {
	return &Declared{Namespace: namespace, Name: name, TypeArguments: args}
}

// Optional wraps a type as nullable. Optionality is single-level: wrapping
// an already-nullable type returns it unchanged.
func Optional(t Type) Type {
	if _, ok := t.(*Nullable); ok {
		return t
	}
	return &Nullable{Element: t}
}

// Render produces the Swift source syntax for a type.
func Render(t Type) string {
	switch t := t.(type) {
	case *Declared:
		var sb strings.Builder
		if t.Namespace != "" {
			sb.WriteString(t.Namespace)
			sb.WriteString(".")
		}
		sb.WriteString(t.Name)
		if len(t.TypeArguments) > 0 {
			sb.WriteString("<")
			for i, arg := range t.TypeArguments {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(Render(arg))
			}
			sb.WriteString(">")
		}
		return sb.String()
	case *Nullable:
		return Render(t.Element) + "?"
	case *Array:
		return "[" + Render(t.Element) + "]"
	case *Dictionary:
		return "[" + Render(t.Key) + ": " + Render(t.Element) + "]"
	default:
		return ""
	}
}
