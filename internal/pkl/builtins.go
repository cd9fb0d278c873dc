// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package pkl

// Builtin declarations of Pkl's base module. These are the identities the
// translator's scalar and generic tables key on, so there is exactly one
// instance of each per process.
var (
	IntDecl    = builtin("Int")
	Int8Decl   = builtin("Int8")
	Int16Decl  = builtin("Int16")
	Int32Decl  = builtin("Int32")
	UIntDecl   = builtin("UInt")
	UInt8Decl  = builtin("UInt8")
	UInt16Decl = builtin("UInt16")
	UInt32Decl = builtin("UInt32")
	FloatDecl  = builtin("Float")
	NumberDecl = builtin("Number")

	StringDecl  = builtin("String")
	BooleanDecl = builtin("Boolean")
	CharDecl    = builtin("Char")
	NullDecl    = builtin("Null")
	AnyDecl     = builtin("Any")

	DurationDecl     = builtin("Duration")
	DurationUnitDecl = builtin("DurationUnit")
	DataSizeDecl     = builtin("DataSize")
	DataSizeUnitDecl = builtin("DataSizeUnit")
	DynamicDecl      = builtin("Dynamic")

	// List and Listing are two spellings of the same container, as are Map
	// and Mapping. They stay distinct identities; the translator aliases
	// them to the same expansion.
	ListDecl    = builtin("List")
	ListingDecl = builtin("Listing")
	MapDecl     = builtin("Map")
	MappingDecl = builtin("Mapping")
	SetDecl     = builtin("Set")
)

var builtinsByName = map[string]*Declaration{}

func builtin(name string) *Declaration {
	d := &Declaration{Kind: KindClass, Name: name}
	builtinsByName[name] = d
	return d
}

// LookupBuiltin resolves a base-module type name to its declaration.
func LookupBuiltin(name string) (*Declaration, bool) {
	d, ok := builtinsByName[name]
	return d, ok
}
