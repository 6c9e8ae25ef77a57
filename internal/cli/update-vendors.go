// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/robgonnella/go-airscan/internal/logger"
	"github.com/spf13/cobra"
)

func newUpdateVendors(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "update-vendors",
		Short: "Updates static vendors database",
		Long: `Updates the static file used for vendor lookups. This file can
		be found at ~/.config/go-airscan/oui.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := cfg.vendorFactory()

			if err != nil {
				return err
			}

			logger.New().Info().Msg("updating vendor database")

			return repo.UpdateVendors()
		},
	}
}
