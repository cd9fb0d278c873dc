// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package translate

import (
	"sort"

	"github.com/HT154/pkl-swift/internal/pkl"
	"github.com/HT154/pkl-swift/internal/swift"
)

// RuntimeModule is the Swift module that carries Pkl's runtime value types
// (Duration, DataSize and friends).
const RuntimeModule = "PklSwift"

// anyType is the universal widening target: the widest representable Swift
// type in this model. Built fresh per call so produced trees share no nodes.
func anyType() swift.Type {
	return swift.Optional(swift.Named("AnyHashable"))
}

// scalarTargets maps non-parameterized builtin declarations to fixed Swift
// types. Keys are declaration identities, never names. Values are treated as
// immutable.
var scalarTargets = map[*pkl.Declaration]swift.Type{
	pkl.IntDecl:    swift.Numeric("Int"),
	pkl.Int8Decl:   swift.Numeric("Int8"),
	pkl.Int16Decl:  swift.Numeric("Int16"),
	pkl.Int32Decl:  swift.Numeric("Int32"),
	pkl.UIntDecl:   swift.Numeric("UInt"),
	pkl.UInt8Decl:  swift.Numeric("UInt8"),
	pkl.UInt16Decl: swift.Numeric("UInt16"),
	pkl.UInt32Decl: swift.Numeric("UInt32"),
	pkl.FloatDecl:  swift.Numeric("Float64"),
	pkl.NumberDecl: swift.Numeric("Float64"),

	pkl.StringDecl:  swift.Named("String"),
	pkl.BooleanDecl: swift.Named("Bool"),
	pkl.CharDecl:    swift.Named("Character"),

	// Null is the type inhabited only by the null value.
	pkl.NullDecl: swift.Optional(swift.Named("Never")),
	pkl.AnyDecl:  swift.Optional(swift.Named("AnyHashable")),

	pkl.DurationDecl:     swift.InModule(RuntimeModule, "Duration"),
	pkl.DurationUnitDecl: swift.InModule(RuntimeModule, "DurationUnit"),
	pkl.DataSizeDecl:     swift.InModule(RuntimeModule, "DataSize"),
	pkl.DataSizeUnitDecl: swift.InModule(RuntimeModule, "DataSizeUnit"),
	pkl.DynamicDecl:      swift.InModule(RuntimeModule, "Object"),
}

// expandFunc expands a parameterized builtin over its resolved type
// arguments. Missing arguments default to the any type.
type expandFunc func(args []pkl.Type, enclosing *pkl.Declaration, mappings []Mapping, depth int) (swift.Type, error)

// genericTargets maps parameterized builtin declarations to their
// expansions. List/Listing and Map/Mapping are two spellings of the same
// container and share an expansion, so output does not depend on which
// spelling the schema used.
var genericTargets map[*pkl.Declaration]expandFunc

// Populated in init to break the initialization cycle through generateType.
func init() {
	genericTargets = map[*pkl.Declaration]expandFunc{
		pkl.ListDecl:    expandArray,
		pkl.ListingDecl: expandArray,
		pkl.MapDecl:     expandDictionary,
		pkl.MappingDecl: expandDictionary,
		pkl.SetDecl:     expandSet,
	}
}

func expandArray(args []pkl.Type, enclosing *pkl.Declaration, mappings []Mapping, depth int) (swift.Type, error) {
	elem, err := argOrAny(args, 0, enclosing, mappings, depth)
	if err != nil {
		return nil, err
	}
	return &swift.Array{Element: elem}, nil
}

func expandDictionary(args []pkl.Type, enclosing *pkl.Declaration, mappings []Mapping, depth int) (swift.Type, error) {
	key, err := argOrAny(args, 0, enclosing, mappings, depth)
	if err != nil {
		return nil, err
	}
	elem, err := argOrAny(args, 1, enclosing, mappings, depth)
	if err != nil {
		return nil, err
	}
	return &swift.Dictionary{Key: key, Element: elem}, nil
}

// Swift models sets as a named generic type rather than a structural one.
func expandSet(args []pkl.Type, enclosing *pkl.Declaration, mappings []Mapping, depth int) (swift.Type, error) {
	elem, err := argOrAny(args, 0, enclosing, mappings, depth)
	if err != nil {
		return nil, err
	}
	return swift.Named("Set", elem), nil
}

func argOrAny(args []pkl.Type, i int, enclosing *pkl.Declaration, mappings []Mapping, depth int) (swift.Type, error) {
	if i >= len(args) {
		return anyType(), nil
	}
	return generateType(args[i], enclosing, mappings, depth+1)
}

// TableEntry is one builtin mapping row for display purposes.
type TableEntry struct {
	Source string
	Target string
}

// ScalarTable lists the builtin scalar mappings sorted by source name.
func ScalarTable() []TableEntry {
	entries := make([]TableEntry, 0, len(scalarTargets))
	for decl, target := range scalarTargets {
		entries = append(entries, TableEntry{Source: decl.Name, Target: swift.Render(target)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Source < entries[j].Source })
	return entries
}

// GenericTable lists the builtin container mappings. Kept literal and
// adjacent to genericTargets so the two stay in sync.
func GenericTable() []TableEntry {
	return []TableEntry{
		{Source: "List<Element>", Target: "[Element]"},
		{Source: "Listing<Element>", Target: "[Element]"},
		{Source: "Map<Key, Element>", Target: "[Key: Element]"},
		{Source: "Mapping<Key, Element>", Target: "[Key: Element]"},
		{Source: "Set<Element>", Target: "Set<Element>"},
	}
}
