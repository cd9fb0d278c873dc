// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HT154/pkl-swift/internal/pkl"
	"github.com/HT154/pkl-swift/internal/prompts"
	"github.com/HT154/pkl-swift/internal/session"
	"github.com/HT154/pkl-swift/internal/swift"
	"github.com/HT154/pkl-swift/internal/translate"
)

type generateOptions struct {
	output string
	dryRun bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Swift sources for all configured entrypoints",
		Long: `Generate Swift sources for all configured entrypoints.

Each schema module becomes one Swift file containing a struct per class,
a typealias per type alias, and a struct for the module itself.`,
		Example: `  # Generate into the configured output directory
  pkl-gen-swift generate

  # Show what would be written without writing anything
  pkl-gen-swift generate --dry-run

  # Generate into a custom output directory
  pkl-gen-swift generate --output Sources/Generated`,
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print planned files without writing them")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	outDir := ctx.Config.ResolveOutputDir(ctx.ConfigDir)
	if opts.output != "" {
		outDir = opts.output
	}

	mappings, err := buildMappings(ctx)
	if err != nil {
		return err
	}

	var results []prompts.ResultField
	for _, schema := range ctx.Schemas {
		data, err := prepareFile(schema, mappings)
		if err != nil {
			return fmt.Errorf("module %s: %w", schema.Module.Name, err)
		}

		code, err := swift.EmitFile(data)
		if err != nil {
			return fmt.Errorf("module %s: %w", schema.Module.Name, err)
		}

		path := filepath.Join(outDir, data.TypeName+".pkl.swift")
		if opts.dryRun {
			cmd.Printf("--- %s\n%s", path, code)
			continue
		}

		if err := os.MkdirAll(outDir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(path, code, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		results = append(results, prompts.ResultField{Label: schema.Module.Name, Value: path})
	}

	if !opts.dryRun {
		prompts.PrintResult(results, fmt.Sprintf("Generated %d file(s)", len(results)))
	}
	return nil
}

// buildMappings seeds the translator's override list once for the whole run:
// config overrides first (so they win), then every module and class of every
// loaded schema under its default Swift name. Aliases stay unmapped so they
// unwrap transparently unless config says otherwise.
func buildMappings(ctx *session.Context) ([]translate.Mapping, error) {
	var mappings []translate.Mapping

	for _, m := range ctx.Config.Mappings {
		decl, ok := lookupAcrossSchemas(ctx.Schemas, m.Type)
		if !ok {
			return nil, fmt.Errorf("mapping for unknown type %q", m.Type)
		}
		mappings = append(mappings, translate.MapDecl(decl, parseSwiftName(m.Swift)))
	}

	for _, schema := range ctx.Schemas {
		mappings = append(mappings, translate.MapDecl(schema.Module, swift.Named(moduleTypeName(schema.Module.Name))))
		for _, decl := range schema.Declarations {
			if decl.Kind == pkl.KindClass {
				mappings = append(mappings, translate.MapDecl(decl, swift.Named(decl.Name)))
			}
		}
	}

	return mappings, nil
}

func lookupAcrossSchemas(schemas []*pkl.Schema, name string) (*pkl.Declaration, bool) {
	for _, schema := range schemas {
		if decl, ok := schema.Lookup(name); ok {
			return decl, true
		}
	}
	return pkl.LookupBuiltin(name)
}

// prepareFile translates every property type of a module and shapes the
// result for the emitter.
func prepareFile(schema *pkl.Schema, mappings []translate.Mapping) (*swift.FileData, error) {
	data := &swift.FileData{
		ModuleName: schema.Module.Name,
		TypeName:   typeNameFor(schema.Module, mappings),
	}

	moduleStruct, err := prepareStruct(schema.Module, data.TypeName, mappings)
	if err != nil {
		return nil, err
	}
	data.Structs = append(data.Structs, moduleStruct)

	for _, decl := range schema.Declarations {
		switch decl.Kind {
		case pkl.KindClass:
			s, err := prepareStruct(decl, typeNameFor(decl, mappings), mappings)
			if err != nil {
				return nil, err
			}
			data.Structs = append(data.Structs, s)
		case pkl.KindTypeAlias:
			target, err := translate.GenerateType(decl.Aliased, decl, mappings)
			if err != nil {
				return nil, fmt.Errorf("alias %s: %w", decl.Name, err)
			}
			data.Aliases = append(data.Aliases, swift.AliasDecl{
				Name: decl.Name,
				Type: swift.Render(target),
			})
		}
	}

	return data, nil
}

func prepareStruct(decl *pkl.Declaration, name string, mappings []translate.Mapping) (swift.StructDecl, error) {
	s := swift.StructDecl{Name: name}
	for _, prop := range decl.Properties {
		target, err := translate.GenerateType(prop.Type, decl, mappings)
		if err != nil {
			return s, fmt.Errorf("%s.%s: %w", decl.Name, prop.Name, err)
		}
		s.Properties = append(s.Properties, swift.PropertyDecl{
			Name: prop.Name,
			Type: swift.Render(target),
		})
	}
	return s, nil
}

// typeNameFor renders a declaration's mapped Swift name, falling back to the
// declaration name.
func typeNameFor(decl *pkl.Declaration, mappings []translate.Mapping) string {
	target, err := translate.GenerateType(pkl.Declared(decl), decl, mappings)
	if err != nil {
		return decl.Name
	}
	if named, ok := target.(*swift.Declared); ok && named.Namespace == "" {
		return named.Name
	}
	return decl.Name
}

// moduleTypeName derives the synthesized struct name from a dotted module
// name: "com.example.app_config" becomes "AppConfig".
func moduleTypeName(moduleName string) string {
	last := moduleName
	if i := strings.LastIndex(moduleName, "."); i >= 0 {
		last = moduleName[i+1:]
	}
	parts := strings.FieldsFunc(last, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var sb strings.Builder
	for _, part := range parts {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return sb.String()
}

// parseSwiftName splits an optionally namespace-qualified Swift name from
// config ("PklSwift.Object") into a declared type.
func parseSwiftName(name string) swift.Type {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return swift.InModule(name[:i], name[i+1:])
	}
	return swift.Named(name)
}
