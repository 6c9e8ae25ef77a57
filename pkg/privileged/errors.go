// SPDX-License-Identifier: GPL-3.0-or-later

package privileged

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProgramNotFound is matched by errors returned when a program cannot be
// resolved on this host
var ErrProgramNotFound = errors.New("program not found")

// ProgramNotFoundError reports the program that could not be resolved
type ProgramNotFoundError struct {
	Program string
}

func (e *ProgramNotFoundError) Error() string {
	return fmt.Sprintf(
		"%s: %q is not installed or not in PATH",
		ErrProgramNotFound,
		e.Program,
	)
}

func (e *ProgramNotFoundError) Unwrap() error {
	return ErrProgramNotFound
}

// ExitError is returned when a command runs but exits with a non-zero status
type ExitError struct {
	Argv       []string
	Code       int
	Diagnostic string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%q exited with status %d", strings.Join(e.Argv, " "), e.Code)

	if diag := strings.TrimSpace(e.Diagnostic); diag != "" {
		msg += ": " + diag
	}

	return msg
}

// MissingProgramsError is returned by the dependency probe and lists every
// required program that could not be resolved
type MissingProgramsError struct {
	Programs []string
}

func (e *MissingProgramsError) Error() string {
	return fmt.Sprintf(
		"required programs not found: %s. Please install them and ensure they are in your PATH",
		strings.Join(e.Programs, ", "),
	)
}

func (e *MissingProgramsError) Unwrap() error {
	return ErrProgramNotFound
}
