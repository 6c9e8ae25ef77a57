// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/robgonnella/go-airscan/internal/info"
	"github.com/robgonnella/go-airscan/internal/logger"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/spf13/cobra"
)

func newVersion() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Prints version",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.VERSION)
				return
			}

			logger.New().Info().
				Strs("requires", privileged.RequiredPrograms).
				Msgf("go-airscan: %s", info.VERSION)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version to stdout")

	return cmd
}
