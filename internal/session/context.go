// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HT154/pkl-swift/internal/config"
	"github.com/HT154/pkl-swift/internal/pkl"
)

var (
	// ErrNotInitialized indicates no pklgen.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a pkl-gen-swift project (pklgen.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates an entrypoint referenced by config doesn't exist.
	ErrSchemaNotFound = errors.New("schema entrypoint not found")

	// ErrInvalidSchema indicates an entrypoint exists but couldn't be parsed.
	ErrInvalidSchema = errors.New("invalid schema document")
)

// ConfigFileName is the name of the pkl-gen-swift configuration file.
const ConfigFileName = "pklgen.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and loaded schemas.
type Context struct {
	// Config is the parsed project configuration.
	Config *config.Config

	// ConfigDir is the directory pklgen.yaml was found in; relative config
	// paths resolve against it.
	ConfigDir string

	// Schemas holds one loaded schema per entrypoint, in config order.
	Schemas []*pkl.Schema
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the project Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	genCtx := &Context{Config: cfg, ConfigDir: cwd}
	for _, path := range cfg.ResolveEntrypoints(cwd) {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
		}
		schema, loadErr := pkl.LoadFile(path)
		if loadErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchema, path, loadErr)
		}
		genCtx.Schemas = append(genCtx.Schemas, schema)
	}

	return context.WithValue(ctx, contextKey{}, genCtx), nil
}

// PreRunLoad is a cobra PersistentPreRunE that loads the project context
// into the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := Load(cmd.Context())
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

// From extracts the project Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if genCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return genCtx
	}
	return nil
}

// RequireFromCommand returns the project Context stored in the command's
// context, or an error when the command runs outside a project.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	if genCtx := From(cmd.Context()); genCtx != nil {
		return genCtx, nil
	}
	return nil, ErrNotInitialized
}
