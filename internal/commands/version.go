// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package commands

import (
	"github.com/spf13/cobra"

	"github.com/HT154/pkl-swift/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(version.Info())
			return nil
		},
	}
}
