// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/HT154/pkl-swift/internal/translate"
)

func newBuiltinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builtins",
		Short: "List the builtin Pkl to Swift type mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Pkl", "Swift"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

			for _, entry := range translate.ScalarTable() {
				table.Append([]string{entry.Source, entry.Target})
			}
			for _, entry := range translate.GenericTable() {
				table.Append([]string{entry.Source, entry.Target})
			}

			table.Render()
			return nil
		},
	}
}
