// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/jedib0t/go-pretty/table"
	"github.com/robgonnella/go-airscan/internal/util"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/spf13/cobra"
)

func newCheck(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Checks that every required program is installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			missing := privileged.MissingPrograms(cfg.lookPath, privileged.RequiredPrograms...)

			var checkTable = table.NewWriter()
			checkTable.SetOutputMirror(cmd.OutOrStdout())
			checkTable.AppendHeader(table.Row{"PROGRAM", "STATUS"})

			for _, program := range privileged.RequiredPrograms {
				status := "ok"

				if util.SliceIncludes(missing, program) {
					status = "missing"
				}

				checkTable.AppendRow(table.Row{program, status})
			}

			checkTable.Render()

			if len(missing) > 0 {
				return &privileged.MissingProgramsError{Programs: missing}
			}

			return nil
		},
	}
}
