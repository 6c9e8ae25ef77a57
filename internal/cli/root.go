// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/robgonnella/go-airscan/internal/core"
	"github.com/robgonnella/go-airscan/internal/logger"
	"github.com/robgonnella/go-airscan/pkg/network"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/robgonnella/go-airscan/pkg/scanner"
	"github.com/spf13/cobra"
)

// commands carrying this annotation run the dependency probe first
const requiresToolsAnnotation = "requires-tools"

var errInvalidTiming = errors.New("duration and poll interval must be greater than zero")

// Root builds the go-airscan command tree
func Root(
	runner core.Runner,
	privRunner privileged.Runner,
	options ...Option,
) (*cobra.Command, error) {
	cfg := defaultConfig()

	for _, o := range options {
		o(cfg)
	}

	var ifaceName string
	var durationSeconds int
	var pollIntervalSeconds int
	var toggleMonitor bool
	var vendorInfo bool
	var pcap bool
	var workDir string
	var printJson bool
	var outFile string
	var noProgress bool
	var passwordStdin bool
	var logLevel string
	var logFile string
	var logOutput *os.File

	cmd := &cobra.Command{
		Use:   "go-airscan",
		Short: "Find hidden wireless networks",
		Long: `Passively captures wireless traffic for a bounded window and lists
every access point heard, resolving the names of networks that hide them`,
		Annotations:  map[string]string{requiresToolsAnnotation: "true"},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.SetGlobalLevelFromString(logLevel); err != nil {
				return err
			}

			if logFile != "" {
				file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

				if err != nil {
					return err
				}

				logger.SetGlobalLogFile(file)
				logOutput = file
			}

			if cmd.Annotations[requiresToolsAnnotation] != "true" {
				return nil
			}

			return privileged.CheckDependencies(cfg.lookPath, privileged.RequiredPrograms...)
		},
		// skipped when a command fails, leaving the log file open so main
		// can record the failure before the process exits
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logOutput == nil {
				return nil
			}

			logger.SetConsoleOutput(cmd.ErrOrStderr())

			err := logOutput.Close()
			logOutput = nil

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if durationSeconds <= 0 || pollIntervalSeconds <= 0 {
				return errInvalidTiming
			}

			iface, err := resolveInterface(cmd, privRunner, ifaceName)

			if err != nil {
				return err
			}

			secret, err := resolveSecret(cfg, passwordStdin, cmd.ErrOrStderr())

			if err != nil {
				return err
			}

			capture := scanner.NewAirodumpCapture(
				privRunner,
				scanner.WithWorkDir(workDir),
				scanner.WithPcapCapture(pcap),
			)

			scanOptions := []scanner.Option{
				scanner.WithDuration(time.Second * time.Duration(durationSeconds)),
				scanner.WithPollInterval(time.Second * time.Duration(pollIntervalSeconds)),
			}

			if vendorInfo {
				repo, err := cfg.vendorFactory()

				if err != nil {
					return err
				}

				scanOptions = append(scanOptions, scanner.WithVendorInfo(repo))
			}

			hiddenScanner := scanner.NewHiddenNetworkScanner(
				iface,
				secret,
				capture,
				scanOptions...,
			)

			runner.Initialize(
				hiddenScanner,
				network.NewIWModeController(privRunner),
				iface,
				secret,
				toggleMonitor,
				noProgress,
				printJson,
				outFile,
			)

			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&ifaceName, "interface", "i", "", "wireless interface to capture on (default: the wireless interface on the default route)")
	cmd.Flags().IntVarP(&durationSeconds, "duration", "d", 15, "how many seconds to capture for")
	cmd.Flags().IntVar(&pollIntervalSeconds, "poll-interval", 1, "seconds between reads of the capture output")
	cmd.Flags().BoolVar(&toggleMonitor, "toggle-monitor", false, "put the interface in monitor mode for the scan and restore managed mode afterwards")
	cmd.Flags().BoolVar(&vendorInfo, "vendor", false, "include vendor info for each BSSID")
	cmd.Flags().BoolVar(&pcap, "pcap", false, "also record raw frames and resolve hidden names from beacons and probe responses")
	cmd.Flags().StringVar(&workDir, "work-dir", os.TempDir(), "directory for temporary capture files")
	cmd.Flags().BoolVar(&printJson, "json", false, "output json instead of table text")
	cmd.Flags().StringVar(&outFile, "out-file", "", "write the final report to this file")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable all output except for final results")
	cmd.PersistentFlags().BoolVar(&passwordStdin, "password-stdin", false, "read the sudo password from the first line of stdin")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")

	cmd.AddCommand(newMonitor(cfg, privRunner, &passwordStdin))
	cmd.AddCommand(newCheck(cfg))
	cmd.AddCommand(newInterfaces(privRunner))
	cmd.AddCommand(newVersion())
	cmd.AddCommand(newUpdateVendors(cfg))

	return cmd, nil
}

func resolveInterface(
	cmd *cobra.Command,
	privRunner privileged.Runner,
	name string,
) (string, error) {
	if name != "" {
		return name, nil
	}

	iface, err := network.DefaultWirelessInterface(cmd.Context(), privRunner)

	if err != nil {
		return "", fmt.Errorf("failed to pick a wireless interface, use --interface: %w", err)
	}

	logger.New().Info().Str("interface", iface).Msg("using default wireless interface")

	return iface, nil
}
