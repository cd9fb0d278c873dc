// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkl-gen-swift",
		Short: "Generate Swift type declarations from reflected Pkl schemas",
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newBuiltinsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
