// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

// Package config handles pkl-gen-swift project configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the pklgen.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Entrypoints are the schema documents to generate from, relative to
	// the project directory.
	Entrypoints []string `yaml:"entrypoints"`

	// OutputDirectory receives the generated Swift sources. Defaults to
	// "Generated".
	OutputDirectory string `yaml:"outputDirectory,omitempty"`

	// ProjectDirectory is the base for relative paths. Defaults to the
	// directory containing the config file.
	ProjectDirectory string `yaml:"projectDirectory,omitempty"`

	// Mappings override the Swift name for individual schema types, in
	// order; the first entry matching a type wins.
	Mappings []TypeMapping `yaml:"mappings,omitempty"`
}

// TypeMapping renames one schema type in the generated Swift. Swift may be
// namespace-qualified ("PklSwift.Object").
type TypeMapping struct {
	Type  string `yaml:"type"`
	Swift string `yaml:"swift"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if len(c.Entrypoints) == 0 {
		return errors.New("at least one entrypoint is required")
	}
	for _, m := range c.Mappings {
		if m.Type == "" || m.Swift == "" {
			return errors.New("mappings require both type and swift")
		}
	}
	return nil
}

// ProjectDir resolves the project directory against the directory holding
// the config file.
func (c *Config) ProjectDir(configDir string) string {
	dir := c.ProjectDirectory
	if dir == "" {
		return configDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(configDir, dir)
	}
	return filepath.Clean(dir)
}

// ResolveEntrypoints returns the entrypoint paths made absolute against the
// project directory.
func (c *Config) ResolveEntrypoints(configDir string) []string {
	base := c.ProjectDir(configDir)
	paths := make([]string, len(c.Entrypoints))
	for i, ep := range c.Entrypoints {
		if filepath.IsAbs(ep) {
			paths[i] = filepath.Clean(ep)
			continue
		}
		paths[i] = filepath.Join(base, ep)
	}
	return paths
}

// ResolveOutputDir returns the output directory made absolute against the
// project directory.
func (c *Config) ResolveOutputDir(configDir string) string {
	out := c.OutputDirectory
	if out == "" {
		out = "Generated"
	}
	if filepath.IsAbs(out) {
		return filepath.Clean(out)
	}
	return filepath.Join(c.ProjectDir(configDir), out)
}
