// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package swift

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed file.swift.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "file.swift.tmpl"))

// FileData is the input to the Swift source template: one generated file per
// Pkl module.
type FileData struct {
	// ModuleName is the source module's full name, quoted in the generated
	// header.
	ModuleName string

	// TypeName is the name of the struct synthesized for the module itself.
	TypeName string

	// NeedsPklSwift is set during emission when any rendered type is
	// namespaced under the runtime module.
	NeedsPklSwift bool

	Structs []StructDecl
	Aliases []AliasDecl
}

// StructDecl is one generated Swift struct.
type StructDecl struct {
	Name       string
	Properties []PropertyDecl
}

// PropertyDecl is one stored property of a generated struct.
type PropertyDecl struct {
	Name string
	Type string
}

// AliasDecl is one generated Swift typealias.
type AliasDecl struct {
	Name string
	Type string
}

// EmitFile renders a module's declarations to Swift source.
func EmitFile(data *FileData) ([]byte, error) {
	data.NeedsPklSwift = false
	for _, s := range data.Structs {
		for _, p := range s.Properties {
			if strings.Contains(p.Type, "PklSwift.") {
				data.NeedsPklSwift = true
			}
		}
	}
	for _, a := range data.Aliases {
		if strings.Contains(a.Type, "PklSwift.") {
			data.NeedsPklSwift = true
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "file.swift.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
