// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/progress"
	"github.com/jedib0t/go-pretty/table"
	"github.com/robgonnella/go-airscan/internal/logger"
	"github.com/robgonnella/go-airscan/internal/util"
	"github.com/robgonnella/go-airscan/pkg/network"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/robgonnella/go-airscan/pkg/scanner"
	"github.com/rs/zerolog"
)

// Results is the report of a single scan
type Results struct {
	AccessPoints []scanner.AccessPoint `json:"accessPoints"`
}

// MarshalJSON renders the report as a plain array of access points
func (r *Results) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.AccessPoints)
}

// Hidden returns the access points whose name was never revealed
func (r *Results) Hidden() []scanner.AccessPoint {
	return util.FilterSlice(r.AccessPoints, func(ap scanner.AccessPoint) bool {
		return ap.Hidden()
	})
}

// Core implements the Runner interface
type Core struct {
	iface          string
	secret         privileged.Secret
	toggleMonitor  bool
	printJson      bool
	noProgress     bool
	outFile        string
	results        *Results
	pw             progress.Writer
	pollTracker    *progress.Tracker
	scanner        scanner.Scanner
	modeController network.ModeController
	out            io.Writer
	log            logger.Logger
}

// New returns a new instance of Core
func New() *Core {
	return &Core{
		out: os.Stdout,
		log: logger.New(),
	}
}

// SetOutput sets where the rendered report is written
func (c *Core) SetOutput(w io.Writer) {
	c.out = w
}

// Initialize implements the Initialize method of the Runner interface
func (c *Core) Initialize(
	coreScanner scanner.Scanner,
	modeController network.ModeController,
	iface string,
	secret privileged.Secret,
	toggleMonitor bool,
	noProgress bool,
	printJson bool,
	outFile string,
) {
	pw := progressWriter(c.out)

	pollTracker := &progress.Tracker{Message: fmt.Sprintf("starting capture on %s", iface)}
	pollTracker.Total = int64(coreScanner.TotalPolls())

	if noProgress {
		logger.SetGlobalLevel(zerolog.Disabled)
	} else {
		coreScanner.SetPollNotifications(c.pollCallback)

		if modeController != nil {
			modeController.SetProgressNotifications(c.modeCallback)
		}
	}

	coreScanner.SetWarningNotifications(func(err error) {
		c.log.Warn().Err(err).Msg("capture cleanup incomplete")
	})

	c.scanner = coreScanner
	c.modeController = modeController
	c.iface = iface
	c.secret = secret
	c.toggleMonitor = toggleMonitor
	c.noProgress = noProgress
	c.printJson = printJson
	c.outFile = outFile
	c.results = &Results{AccessPoints: []scanner.AccessPoint{}}
	c.pw = pw
	c.pollTracker = pollTracker
}

// Run implements the Run method of the Runner interface. With monitor
// toggling enabled, managed mode is restored after the scan even when the
// scan fails.
func (c *Core) Run(ctx context.Context) (err error) {
	start := time.Now()

	if c.toggleMonitor {
		if _, err := c.modeController.Transition(
			ctx,
			c.iface,
			network.ModeMonitor,
			c.secret,
		); err != nil {
			return err
		}

		defer func() {
			// restore even if ctx was cancelled mid scan
			if _, restoreErr := c.modeController.Transition(
				context.WithoutCancel(ctx),
				c.iface,
				network.ModeManaged,
				c.secret,
			); restoreErr != nil {
				err = errors.Join(err, restoreErr)
			}
		}()
	}

	if !c.noProgress && c.pollTracker.Total > 0 {
		c.pw.AppendTracker(c.pollTracker)
		go c.pw.Render()
	}

	records, scanErr := c.scanner.Scan(ctx)

	c.stopProgress()

	if records != nil {
		c.results.AccessPoints = records
	}

	if scanErr != nil && len(c.results.AccessPoints) == 0 {
		return scanErr
	}

	if err := c.printResults(); err != nil {
		return errors.Join(scanErr, err)
	}

	c.log.Info().
		Str("duration", time.Since(start).String()).
		Int("accessPoints", len(c.results.AccessPoints)).
		Int("hidden", len(c.results.Hidden())).
		Msg("go-airscan complete")

	return scanErr
}

func (c *Core) pollCallback(p *scanner.Poll) {
	c.pollTracker.Increment(1)

	message := fmt.Sprintf(
		"poll %d/%d - %d networks, %d hidden",
		p.Number,
		p.Total,
		p.Records,
		p.Hidden,
	)

	if p.Revealed > 0 {
		message = fmt.Sprintf("%s, %d revealed", message, p.Revealed)
	}

	c.pollTracker.Message = message
}

func (c *Core) modeCallback(p *network.Progress) {
	if p.Status == network.StepFailed {
		c.log.Error().Msg(p.String())
		return
	}

	if p.Status == network.StepStarted {
		c.log.Info().Msg(p.String())
	}
}

func (c *Core) stopProgress() {
	if c.noProgress || c.pollTracker.Total == 0 {
		return
	}

	c.pollTracker.Message = "capture complete"
	c.pollTracker.MarkAsDone()

	// let the renderer draw the final state before results are printed
	deadline := time.Now().Add(time.Second)

	for c.pw.IsRenderInProgress() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond * 50)
	}
}

func (c *Core) printResults() error {
	if c.printJson {
		data, err := c.results.MarshalJSON()

		if err != nil {
			return err
		}

		fmt.Fprintln(c.out, string(data))

		return c.writeReport(data)
	}

	withVendor := util.FilterSlice(c.results.AccessPoints, func(ap scanner.AccessPoint) bool {
		return ap.Vendor != ""
	})

	header := table.Row{"BSSID", "ESSID", "CHANNEL"}

	if len(withVendor) > 0 {
		header = append(header, "VENDOR")
	}

	var apTable = table.NewWriter()
	apTable.SetOutputMirror(c.out)
	apTable.AppendHeader(header)

	for _, ap := range c.results.AccessPoints {
		row := table.Row{ap.BSSID, ap.ESSID, ap.Channel}

		if len(withVendor) > 0 {
			row = append(row, ap.Vendor)
		}

		apTable.AppendRow(row)
	}

	output := apTable.Render()

	return c.writeReport([]byte(output))
}

func (c *Core) writeReport(data []byte) error {
	if c.outFile == "" {
		return nil
	}

	if err := os.WriteFile(c.outFile, data, 0644); err != nil {
		c.log.Error().Err(err).Msg("failed to write output report")
		return err
	}

	return nil
}

// helpers
func progressWriter(out io.Writer) progress.Writer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetAutoStop(true)
	pw.SetTrackerLength(25)
	pw.SetMessageWidth(47)
	pw.SetNumTrackersExpected(1)
	pw.SetSortBy(progress.SortByPercentDsc)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Options.PercentFormat = "%4.3f%%"

	return pw
}
