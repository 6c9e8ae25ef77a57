// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/robgonnella/go-airscan/internal/logger"
	"github.com/robgonnella/go-airscan/pkg/network"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/spf13/cobra"
)

func newMonitor(
	cfg *config,
	privRunner privileged.Runner,
	passwordStdin *bool,
) *cobra.Command {
	var ifaceName string

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Switches an interface between monitor and managed mode",
	}

	cmd.PersistentFlags().StringVarP(&ifaceName, "interface", "i", "", "wireless interface to switch (default: the wireless interface on the default route)")

	transition := func(target network.Mode) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			iface, err := resolveInterface(cmd, privRunner, ifaceName)

			if err != nil {
				return err
			}

			secret, err := resolveSecret(cfg, *passwordStdin, cmd.ErrOrStderr())

			if err != nil {
				return err
			}

			controller := network.NewIWModeController(
				privRunner,
				network.WithProgressNotifications(func(p *network.Progress) {
					switch p.Status {
					case network.StepFailed:
						log.Error().Msg(p.String())
					case network.StepStarted:
						log.Info().Msg(p.String())
					}
				}),
			)

			mode, err := controller.Transition(cmd.Context(), iface, target, secret)

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is now in %s mode\n", iface, mode)

			return nil
		}
	}

	annotations := map[string]string{requiresToolsAnnotation: "true"}

	cmd.AddCommand(&cobra.Command{
		Use:         "enable",
		Short:       "Puts the interface in monitor mode",
		Annotations: annotations,
		RunE:        transition(network.ModeMonitor),
	})

	cmd.AddCommand(&cobra.Command{
		Use:         "disable",
		Short:       "Restores the interface to managed mode",
		Annotations: annotations,
		RunE:        transition(network.ModeManaged),
	})

	return cmd
}
