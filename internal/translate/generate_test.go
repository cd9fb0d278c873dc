// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HT154/pkl-swift/internal/pkl"
	"github.com/HT154/pkl-swift/internal/swift"
)

func TestGenerateType_Scalars(t *testing.T) {
	tests := []struct {
		name string
		decl *pkl.Declaration
		want string
	}{
		{"int", pkl.IntDecl, "Int"},
		{"int8", pkl.Int8Decl, "Int8"},
		{"int16", pkl.Int16Decl, "Int16"},
		{"int32", pkl.Int32Decl, "Int32"},
		{"uint", pkl.UIntDecl, "UInt"},
		{"uint8", pkl.UInt8Decl, "UInt8"},
		{"float", pkl.FloatDecl, "Float64"},
		{"number", pkl.NumberDecl, "Float64"},
		{"string", pkl.StringDecl, "String"},
		{"boolean", pkl.BooleanDecl, "Bool"},
		{"char", pkl.CharDecl, "Character"},
		{"null", pkl.NullDecl, "Never?"},
		{"any", pkl.AnyDecl, "AnyHashable?"},
		{"duration", pkl.DurationDecl, "PklSwift.Duration"},
		{"duration unit", pkl.DurationUnitDecl, "PklSwift.DurationUnit"},
		{"data size", pkl.DataSizeDecl, "PklSwift.DataSize"},
		{"data size unit", pkl.DataSizeUnitDecl, "PklSwift.DataSizeUnit"},
		{"dynamic", pkl.DynamicDecl, "PklSwift.Object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateType(pkl.Declared(tt.decl), nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, swift.Render(got))
		})
	}
}

func TestGenerateType_NumericFlag(t *testing.T) {
	got, err := GenerateType(pkl.Declared(pkl.IntDecl), nil, nil)
	require.NoError(t, err)
	require.IsType(t, &swift.Declared{}, got)
	assert.True(t, got.(*swift.Declared).IsNumeric)

	got, err = GenerateType(pkl.Declared(pkl.StringDecl), nil, nil)
	require.NoError(t, err)
	assert.False(t, got.(*swift.Declared).IsNumeric)
}

func TestGenerateType_StringLiteral(t *testing.T) {
	got, err := GenerateType(pkl.StringLiteral("north"), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "String", swift.Render(got))
}

func TestGenerateType_UnknownAndNothing(t *testing.T) {
	got, err := GenerateType(&pkl.UnknownType{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "AnyHashable?", swift.Render(got))

	got, err = GenerateType(&pkl.NothingType{}, nil, nil)
	require.NoError(t, err)
	// The bottom type is uninhabited, not nullable.
	assert.Equal(t, "Never", swift.Render(got))
}

func TestGenerateType_NullableFlattening(t *testing.T) {
	got, err := GenerateType(pkl.Nullable(pkl.Nullable(pkl.Declared(pkl.StringDecl))), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "String?", swift.Render(got))

	// Wrapping an already-nullable scalar result must not double up.
	got, err = GenerateType(pkl.Nullable(pkl.Declared(pkl.AnyDecl)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "AnyHashable?", swift.Render(got))
}

// assertSingleOptional walks a Swift type asserting Nullable never wraps
// another Nullable.
func assertSingleOptional(t *testing.T, typ swift.Type) {
	t.Helper()
	switch typ := typ.(type) {
	case *swift.Nullable:
		_, nested := typ.Element.(*swift.Nullable)
		assert.False(t, nested, "nullable wraps another nullable")
		assertSingleOptional(t, typ.Element)
	case *swift.Array:
		assertSingleOptional(t, typ.Element)
	case *swift.Dictionary:
		assertSingleOptional(t, typ.Key)
		assertSingleOptional(t, typ.Element)
	case *swift.Declared:
		for _, arg := range typ.TypeArguments {
			assertSingleOptional(t, arg)
		}
	}
}

func TestGenerateType_NoDoubleOptionalProperty(t *testing.T) {
	sources := []pkl.Type{
		pkl.Nullable(pkl.Nullable(pkl.Nullable(pkl.Declared(pkl.IntDecl)))),
		pkl.Nullable(&pkl.UnknownType{}),
		pkl.Nullable(pkl.Declared(pkl.NullDecl)),
		pkl.Declared(pkl.ListDecl, pkl.Nullable(pkl.Nullable(pkl.Declared(pkl.StringDecl)))),
		pkl.Declared(pkl.MappingDecl, pkl.Declared(pkl.StringDecl), pkl.Nullable(pkl.Declared(pkl.AnyDecl))),
	}
	for _, src := range sources {
		got, err := GenerateType(src, nil, nil)
		require.NoError(t, err, "source %s", src)
		assertSingleOptional(t, got)
	}
}

func TestGenerateType_StringLiteralUnionCollapses(t *testing.T) {
	union := pkl.Union(pkl.StringLiteral("a"), pkl.StringLiteral("b"))
	got, err := GenerateType(union, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "String", swift.Render(got))

	// Mixing in the builtin string type keeps the collapse.
	union = pkl.Union(pkl.StringLiteral("a"), pkl.Declared(pkl.StringDecl))
	got, err = GenerateType(union, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "String", swift.Render(got))
}

func TestGenerateType_OpenUnionWidens(t *testing.T) {
	union := pkl.Union(pkl.Declared(pkl.IntDecl), pkl.Declared(pkl.StringDecl))
	got, err := GenerateType(union, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "AnyHashable?", swift.Render(got))
}

func TestGenerateType_UnionMappingMatchesByIdentity(t *testing.T) {
	union := pkl.Union(pkl.StringLiteral("north"), pkl.StringLiteral("south"))
	mappings := []Mapping{MapUnion(union, swift.Named("Direction"))}

	got, err := GenerateType(union, nil, mappings)
	require.NoError(t, err)
	assert.Equal(t, "Direction", swift.Render(got))

	// A structurally identical union is a different value and does not
	// share the override.
	twin := pkl.Union(pkl.StringLiteral("north"), pkl.StringLiteral("south"))
	got, err = GenerateType(twin, nil, mappings)
	require.NoError(t, err)
	assert.Equal(t, "String", swift.Render(got))
}

func TestGenerateType_Containers(t *testing.T) {
	tests := []struct {
		name   string
		source pkl.Type
		want   string
	}{
		{"list of int", pkl.Declared(pkl.ListDecl, pkl.Declared(pkl.IntDecl)), "[Int]"},
		{"listing of int", pkl.Declared(pkl.ListingDecl, pkl.Declared(pkl.IntDecl)), "[Int]"},
		{"list without argument", pkl.Declared(pkl.ListDecl), "[AnyHashable?]"},
		{"map of string to int", pkl.Declared(pkl.MapDecl, pkl.Declared(pkl.StringDecl), pkl.Declared(pkl.IntDecl)), "[String: Int]"},
		{"mapping of string to int", pkl.Declared(pkl.MappingDecl, pkl.Declared(pkl.StringDecl), pkl.Declared(pkl.IntDecl)), "[String: Int]"},
		{"map without arguments", pkl.Declared(pkl.MapDecl), "[AnyHashable?: AnyHashable?]"},
		{"map with key only", pkl.Declared(pkl.MappingDecl, pkl.Declared(pkl.StringDecl)), "[String: AnyHashable?]"},
		{"set of string", pkl.Declared(pkl.SetDecl, pkl.Declared(pkl.StringDecl)), "Set<String>"},
		{"set without argument", pkl.Declared(pkl.SetDecl), "Set<AnyHashable?>"},
		{"nested containers", pkl.Declared(pkl.ListDecl, pkl.Declared(pkl.MapDecl, pkl.Declared(pkl.StringDecl), pkl.Declared(pkl.BooleanDecl))), "[[String: Bool]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateType(tt.source, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, swift.Render(got))
		})
	}
}

func TestGenerateType_AliasTransparency(t *testing.T) {
	alias := &pkl.Declaration{
		Kind:    pkl.KindTypeAlias,
		Name:    "Email",
		Aliased: pkl.Declared(pkl.StringDecl),
	}

	direct, err := GenerateType(pkl.Declared(pkl.StringDecl), nil, nil)
	require.NoError(t, err)
	viaAlias, err := GenerateType(pkl.Declared(alias), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, swift.Render(direct), swift.Render(viaAlias))

	// A mapping that targets the alias itself wins over unwrapping.
	mappings := []Mapping{MapDecl(alias, swift.Named("EmailAddress"))}
	got, err := GenerateType(pkl.Declared(alias), nil, mappings)
	require.NoError(t, err)
	assert.Equal(t, "EmailAddress", swift.Render(got))
}

func TestGenerateType_OverridePriority(t *testing.T) {
	// Over the scalar table.
	mappings := []Mapping{MapDecl(pkl.IntDecl, swift.Named("Int64"))}
	got, err := GenerateType(pkl.Declared(pkl.IntDecl), nil, mappings)
	require.NoError(t, err)
	assert.Equal(t, "Int64", swift.Render(got))

	// Over the generic table; type arguments are ignored once mapped.
	mappings = []Mapping{MapDecl(pkl.ListDecl, swift.Named("MyList"))}
	got, err = GenerateType(pkl.Declared(pkl.ListDecl, pkl.Declared(pkl.IntDecl)), nil, mappings)
	require.NoError(t, err)
	assert.Equal(t, "MyList", swift.Render(got))

	// First matching entry wins.
	mappings = []Mapping{
		MapDecl(pkl.IntDecl, swift.Named("First")),
		MapDecl(pkl.IntDecl, swift.Named("Second")),
	}
	got, err = GenerateType(pkl.Declared(pkl.IntDecl), nil, mappings)
	require.NoError(t, err)
	assert.Equal(t, "First", swift.Render(got))
}

func TestGenerateType_ModuleSelfReference(t *testing.T) {
	module := &pkl.Declaration{Kind: pkl.KindModule, Name: "com.example.AppConfig"}
	class := &pkl.Declaration{Kind: pkl.KindClass, Name: "Nested", Owner: module}
	mappings := []Mapping{MapDecl(module, swift.Named("AppConfig"))}

	// Resolves through the class's enclosing module.
	got, err := GenerateType(&pkl.ModuleType{}, class, mappings)
	require.NoError(t, err)
	assert.Equal(t, "AppConfig", swift.Render(got))

	// And directly from the module itself.
	got, err = GenerateType(&pkl.ModuleType{}, module, mappings)
	require.NoError(t, err)
	assert.Equal(t, "AppConfig", swift.Render(got))
}

func TestGenerateType_ModuleWithoutEnclosing(t *testing.T) {
	_, err := GenerateType(&pkl.ModuleType{}, nil, nil)
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
}

func TestGenerateType_Unsupported(t *testing.T) {
	decl := &pkl.Declaration{Kind: pkl.KindClass, Name: "Widget"}
	_, err := GenerateType(pkl.Declared(decl), nil, nil)

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "Widget", unsupported.Name)
	assert.Contains(t, err.Error(), "Widget")
}

func TestGenerateType_Deterministic(t *testing.T) {
	union := pkl.Union(pkl.Declared(pkl.IntDecl), pkl.Declared(pkl.BooleanDecl))
	src := pkl.Declared(pkl.MappingDecl, pkl.Declared(pkl.StringDecl), union)
	mappings := []Mapping{MapUnion(union, swift.Named("IntOrBool"))}

	first, err := GenerateType(src, nil, mappings)
	require.NoError(t, err)
	second, err := GenerateType(src, nil, mappings)
	require.NoError(t, err)
	assert.Equal(t, swift.Render(first), swift.Render(second))
	assert.Len(t, mappings, 1, "translation must not grow the mapping list")
}

func TestGenerateType_DepthLimit(t *testing.T) {
	var deep pkl.Type = pkl.Declared(pkl.IntDecl)
	for i := 0; i < 2*maxDepth; i++ {
		deep = pkl.Declared(pkl.ListDecl, deep)
	}

	_, err := GenerateType(deep, nil, nil)
	require.ErrorIs(t, err, ErrTooDeep)
}
