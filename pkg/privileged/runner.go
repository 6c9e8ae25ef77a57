// SPDX-License-Identifier: GPL-3.0-or-later

package privileged

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/robgonnella/go-airscan/internal/logger"
)

var errEmptyCommand = errors.New("command must not be empty")

// how long Lines waits for output pipes to drain after the process is killed
const linesWaitDelay = time.Millisecond * 500

// LookPathFunc resolves a program name to an executable path
type LookPathFunc = func(file string) (string, error)

// Option configures an ExecRunner
type Option = func(r *ExecRunner)

// WithElevator sets the command prefix used to elevate privileges
func WithElevator(elevator ...string) Option {
	return func(r *ExecRunner) {
		r.elevator = elevator
	}
}

// WithoutElevation runs every command as the current user
func WithoutElevation() Option {
	return func(r *ExecRunner) {
		r.elevator = nil
	}
}

// WithLookPath overrides the function used to resolve programs
func WithLookPath(lookPath LookPathFunc) Option {
	return func(r *ExecRunner) {
		r.lookPath = lookPath
	}
}

// ExecRunner implements Runner with os/exec
type ExecRunner struct {
	elevator []string
	lookPath LookPathFunc
	debug    logger.DebugLogger
}

// NewExecRunner returns a new instance of ExecRunner. Commands are elevated
// with "sudo -S" unless the current process is already root.
func NewExecRunner(options ...Option) *ExecRunner {
	runner := &ExecRunner{
		elevator: defaultElevator(),
		lookPath: exec.LookPath,
		debug:    logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(runner)
	}

	return runner
}

// Run implements the Run method of the Runner interface
func (r *ExecRunner) Run(ctx context.Context, argv []string, secret Secret) (string, error) {
	full, err := r.elevated(argv)

	if err != nil {
		return err.Error(), err
	}

	stderr := &bytes.Buffer{}

	cmd := exec.CommandContext(ctx, full[0], full[1:]...)
	cmd.Stdin = stdinFor(secret)
	cmd.Stderr = stderr

	r.debug.Debug().Strs("argv", argv).Msg("running command")

	err = cmd.Run()
	diagnostic := stderr.String()

	if err == nil {
		return diagnostic, nil
	}

	var exitErr *exec.ExitError

	if errors.As(err, &exitErr) {
		return diagnostic, &ExitError{
			Argv:       argv,
			Code:       exitErr.ExitCode(),
			Diagnostic: diagnostic,
		}
	}

	if errors.Is(err, exec.ErrNotFound) {
		notFound := &ProgramNotFoundError{Program: full[0]}
		return notFound.Error(), notFound
	}

	return err.Error(), fmt.Errorf("failed to run %q: %w", argv[0], err)
}

// Start implements the Start method of the Runner interface
func (r *ExecRunner) Start(argv []string, secret Secret) (Process, error) {
	full, err := r.elevated(argv)

	if err != nil {
		return nil, err
	}

	cmd := exec.Command(full[0], full[1:]...)
	// own process group so terminal signals reach us, not the capture tool
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdin, err := cmd.StdinPipe()

	if err != nil {
		return nil, err
	}

	r.debug.Debug().Strs("argv", argv).Msg("starting process")

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, &ProgramNotFoundError{Program: full[0]}
		}

		return nil, fmt.Errorf("failed to start %q: %w", argv[0], err)
	}

	if !secret.IsEmpty() {
		if _, err := io.WriteString(stdin, secret.reveal()+"\n"); err != nil {
			r.debug.Warn().Err(err).Int("pid", cmd.Process.Pid).Msg("failed to write secret")
		}
	}

	return newExecProcess(cmd, stdin), nil
}

// Lines implements the Lines method of the Runner interface. Stdout and
// stderr are merged.
func (r *ExecRunner) Lines(ctx context.Context, argv []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if len(argv) == 0 {
			yield("", errEmptyCommand)
			return
		}

		if _, err := r.lookPath(argv[0]); err != nil {
			yield("", &ProgramNotFoundError{Program: argv[0]})
			return
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		pr, pw := io.Pipe()

		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Stdout = pw
		cmd.Stderr = pw
		cmd.WaitDelay = linesWaitDelay

		if err := cmd.Start(); err != nil {
			yield("", fmt.Errorf("failed to start %q: %w", argv[0], err))
			return
		}

		waitErr := make(chan error, 1)

		go func() {
			err := cmd.Wait()
			pw.Close()
			waitErr <- err
		}()

		abort := func() {
			cancel()
			pr.Close()
			<-waitErr
		}

		scanner := bufio.NewScanner(pr)

		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				abort()
				return
			}
		}

		if err := scanner.Err(); err != nil {
			abort()
			yield("", err)
			return
		}

		err := <-waitErr

		var exitErr *exec.ExitError

		if errors.As(err, &exitErr) {
			yield("", &ExitError{Argv: argv, Code: exitErr.ExitCode()})
			return
		}

		if err != nil {
			yield("", err)
		}
	}
}

func (r *ExecRunner) elevated(argv []string) ([]string, error) {
	if len(argv) == 0 {
		return nil, errEmptyCommand
	}

	programs := []string{argv[0]}

	if len(r.elevator) > 0 {
		programs = append(programs, r.elevator[0])
	}

	for _, program := range programs {
		if _, err := r.lookPath(program); err != nil {
			return nil, &ProgramNotFoundError{Program: program}
		}
	}

	full := make([]string, 0, len(r.elevator)+len(argv))
	full = append(full, r.elevator...)
	full = append(full, argv...)

	return full, nil
}

func stdinFor(secret Secret) io.Reader {
	if secret.IsEmpty() {
		return nil
	}

	return strings.NewReader(secret.reveal() + "\n")
}

func defaultElevator() []string {
	if os.Geteuid() == 0 {
		return nil
	}

	return []string{"sudo", "-S", "-p", ""}
}
