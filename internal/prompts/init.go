// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(entrypoint, outputDir *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema entrypoint").
				Description("Reflected schema document (.yaml) or JSON Schema (.json)").
				Placeholder("schema/AppConfig.yaml").
				Validate(func(s string) error {
					if s == "" {
						return errors.New("entrypoint is required")
					}
					return nil
				}).
				Value(entrypoint),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory for generated Swift").
				Placeholder("Generated").
				Value(outputDir),
		),
	).WithTheme(Theme()).Run()
}
