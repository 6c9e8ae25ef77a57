// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/robgonnella/go-airscan/internal/logger"
	"github.com/robgonnella/go-airscan/pkg/privileged"
)

//go:generate mockgen -destination=../../mock/network/network.go -package=mock_network . ModeController

// Mode is the operating mode of a wireless interface
type Mode string

const (
	// ModeManaged is the normal client mode
	ModeManaged Mode = "managed"
	// ModeMonitor passively receives every frame on the current channel
	ModeMonitor Mode = "monitor"
	// ModeUnknown is reported after a failed or partial transition. The
	// caller must not assume which mode is active.
	ModeUnknown Mode = "unknown"
)

// ErrInvalidMode is returned when a transition targets anything other than
// managed or monitor
var ErrInvalidMode = errors.New("mode must be one of managed or monitor")

// ErrEmptyInterface is returned when no interface name is given
var ErrEmptyInterface = errors.New("interface name must not be empty")

// ParseMode converts s to a transition target
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeManaged, ModeMonitor:
		return m, nil
	default:
		return ModeUnknown, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Step identifies one of the three commands of a transition
type Step string

const (
	StepDown    Step = "bring-down"
	StepSetMode Step = "set-mode"
	StepUp      Step = "bring-up"
)

// StepStatus is the state of a step when a Progress event is emitted
type StepStatus string

const (
	StepStarted   StepStatus = "started"
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
)

// Progress is emitted before and after every step of a transition
type Progress struct {
	Interface  string
	Target     Mode
	Step       Step
	Status     StepStatus
	Diagnostic string
}

func (p *Progress) String() string {
	action := describeStep(p.Step, p.Interface, p.Target)

	switch p.Status {
	case StepStarted:
		return action
	case StepFailed:
		msg := "failed " + action
		if diag := strings.TrimSpace(p.Diagnostic); diag != "" {
			msg += ": " + diag
		}
		return msg
	default:
		return "done " + action
	}
}

// StepError reports the step a transition was aborted at. Steps after it
// were never attempted, so the interface may be left down.
type StepError struct {
	Interface  string
	Target     Mode
	Step       Step
	Diagnostic string
	Err        error
}

func (e *StepError) Error() string {
	return fmt.Sprintf(
		"failed to switch %s to %s mode at step %s: %s",
		e.Interface,
		e.Target,
		e.Step,
		e.Err,
	)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ModeController switches wireless interfaces between managed and monitor
// mode
type ModeController interface {
	Transition(
		ctx context.Context,
		iface string,
		target Mode,
		secret privileged.Secret,
	) (Mode, error)
	SetProgressNotifications(cb func(p *Progress))
}

// Option configures a ModeController
type Option = func(c ModeController)

// WithProgressNotifications registers a callback for step progress
func WithProgressNotifications(cb func(p *Progress)) Option {
	return func(c ModeController) {
		c.SetProgressNotifications(cb)
	}
}

// IWModeController implements ModeController with ip(8) and iw(8)
type IWModeController struct {
	runner   privileged.Runner
	progress func(p *Progress)
	debug    logger.DebugLogger
}

// NewIWModeController returns a new instance of IWModeController
func NewIWModeController(
	runner privileged.Runner,
	options ...Option,
) *IWModeController {
	controller := &IWModeController{
		runner: runner,
		debug:  logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(controller)
	}

	return controller
}

// Transition implements the Transition method of the ModeController
// interface. The first failing step aborts the transition and no rollback is
// attempted.
func (c *IWModeController) Transition(
	ctx context.Context,
	iface string,
	target Mode,
	secret privileged.Secret,
) (Mode, error) {
	if target != ModeManaged && target != ModeMonitor {
		return ModeUnknown, fmt.Errorf("%w: %q", ErrInvalidMode, target)
	}

	if iface == "" {
		return ModeUnknown, ErrEmptyInterface
	}

	steps := []struct {
		step Step
		argv []string
	}{
		{StepDown, []string{"ip", "link", "set", iface, "down"}},
		{StepSetMode, []string{"iw", "dev", iface, "set", "type", string(target)}},
		{StepUp, []string{"ip", "link", "set", iface, "up"}},
	}

	for _, s := range steps {
		progress := &Progress{
			Interface: iface,
			Target:    target,
			Step:      s.step,
			Status:    StepStarted,
		}

		c.notify(progress)

		diagnostic, err := c.runner.Run(ctx, s.argv, secret)

		if err != nil {
			c.notify(&Progress{
				Interface:  iface,
				Target:     target,
				Step:       s.step,
				Status:     StepFailed,
				Diagnostic: diagnostic,
			})

			return ModeUnknown, &StepError{
				Interface:  iface,
				Target:     target,
				Step:       s.step,
				Diagnostic: diagnostic,
				Err:        err,
			}
		}

		c.notify(&Progress{
			Interface: iface,
			Target:    target,
			Step:      s.step,
			Status:    StepSucceeded,
		})
	}

	c.debug.Info().Str("interface", iface).Str("mode", string(target)).Msg("mode changed")

	return target, nil
}

// SetProgressNotifications implements the SetProgressNotifications method
// of the ModeController interface
func (c *IWModeController) SetProgressNotifications(cb func(p *Progress)) {
	c.progress = cb
}

func (c *IWModeController) notify(p *Progress) {
	c.debug.Debug().
		Str("interface", p.Interface).
		Str("step", string(p.Step)).
		Str("status", string(p.Status)).
		Msg("mode transition")

	if c.progress != nil {
		c.progress(p)
	}
}

func describeStep(step Step, iface string, target Mode) string {
	switch step {
	case StepDown:
		return fmt.Sprintf("bringing %s down", iface)
	case StepSetMode:
		return fmt.Sprintf("setting %s to %s mode", iface, target)
	default:
		return fmt.Sprintf("bringing %s up", iface)
	}
}
