// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HT154/pkl-swift/internal/config"
	"github.com/HT154/pkl-swift/internal/prompts"
	"github.com/HT154/pkl-swift/internal/session"
)

type initOptions struct {
	entrypoint     string
	output         string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new pkl-gen-swift project",
		Long: `Initialize a new pkl-gen-swift project with a pklgen.yaml
configuration file pointing at your schema entrypoints.`,
		Example: `  # Interactive mode
  pkl-gen-swift init

  # Non-interactive
  pkl-gen-swift init --entrypoint schema/AppConfig.yaml --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.entrypoint, "entrypoint", "e", "", "Schema entrypoint path")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "Generated", "Output directory for generated Swift")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --entrypoint)")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		return fmt.Errorf("%s already exists", session.ConfigFileName)
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.entrypoint, &opts.output); err != nil {
			return err
		}
	}
	if opts.entrypoint == "" {
		return fmt.Errorf("--entrypoint is required in non-interactive mode")
	}

	cfg := &config.Config{
		Version:         config.CurrentConfigVersion,
		Entrypoints:     []string{opts.entrypoint},
		OutputDirectory: opts.output,
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", session.ConfigFileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: configPath},
		{Label: "Entrypoint", Value: opts.entrypoint},
		{Label: "Output", Value: opts.output},
	}, "Project initialized. Run pkl-gen-swift generate to emit Swift sources.")
	return nil
}
