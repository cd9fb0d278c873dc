// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package translate

import (
	"github.com/HT154/pkl-swift/internal/pkl"
	"github.com/HT154/pkl-swift/internal/swift"
)

// Mapping overrides the translation of one schema entity. The list is built
// once by the driver before the first call and threaded unchanged through
// every recursive call; it is never mutated during translation. The first
// matching entry wins.
type Mapping struct {
	// Decl matches DeclaredType referents by declaration identity.
	Decl *pkl.Declaration

	// Union matches one specific union value by identity. Two independently
	// constructed unions with identical members do not share an override.
	Union *pkl.UnionType

	// Target is returned verbatim for every occurrence of the source.
	Target swift.Type
}

// MapDecl returns a mapping from a declaration to a Swift type.
func MapDecl(decl *pkl.Declaration, target swift.Type) Mapping {
	return Mapping{Decl: decl, Target: target}
}

// MapUnion returns a mapping from a specific union value to a Swift type.
func MapUnion(union *pkl.UnionType, target swift.Type) Mapping {
	return Mapping{Union: union, Target: target}
}

func lookupDecl(mappings []Mapping, decl *pkl.Declaration) (swift.Type, bool) {
	for _, m := range mappings {
		if m.Decl != nil && m.Decl == decl {
			return m.Target, true
		}
	}
	return nil, false
}

func lookupUnion(mappings []Mapping, union *pkl.UnionType) (swift.Type, bool) {
	for _, m := range mappings {
		if m.Union != nil && m.Union == union {
			return m.Target, true
		}
	}
	return nil, false
}
