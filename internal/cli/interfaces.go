// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/table"
	"github.com/robgonnella/go-airscan/pkg/network"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/spf13/cobra"
)

func newInterfaces(privRunner privileged.Runner) *cobra.Command {
	var printJson bool

	cmd := &cobra.Command{
		Use:   "interfaces",
		Short: "Lists wireless interfaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			interfaces, err := network.ListWirelessInterfaces(cmd.Context(), privRunner)

			if err != nil {
				return err
			}

			if printJson {
				data, err := json.Marshal(interfaces)

				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), string(data))

				return nil
			}

			var ifaceTable = table.NewWriter()
			ifaceTable.SetOutputMirror(cmd.OutOrStdout())
			ifaceTable.AppendHeader(table.Row{"NAME", "PHY", "MODE", "MAC", "SSID", "CHANNEL"})

			for _, iface := range interfaces {
				ifaceTable.AppendRow(table.Row{
					iface.Name,
					iface.Phy,
					iface.Type,
					iface.MAC,
					iface.SSID,
					iface.Channel,
				})
			}

			ifaceTable.Render()

			return nil
		},
	}

	cmd.Flags().BoolVar(&printJson, "json", false, "output json instead of table text")

	return cmd
}
