// SPDX-License-Identifier: GPL-3.0-or-later

package privileged

import (
	"context"
	"iter"
	"time"
)

//go:generate mockgen -destination=../../mock/privileged/privileged.go -package=mock_privileged . Runner,Process

// Runner executes external programs on behalf of the scanner and the
// interface mode controller. Commands passed to Run and Start are elevated
// unless the runner was built without elevation.
type Runner interface {
	// Run executes argv once, feeding secret on stdin, and blocks until the
	// process exits. The returned diagnostic is the captured stderr.
	Run(ctx context.Context, argv []string, secret Secret) (diagnostic string, err error)
	// Start launches argv without waiting for it to exit. Stdout is
	// discarded and secret is written once to stdin right after launch.
	Start(argv []string, secret Secret) (Process, error)
	// Lines runs argv unelevated and yields its output line by line while
	// the process is running. Each call to the returned sequence starts a
	// new process.
	Lines(ctx context.Context, argv []string) iter.Seq2[string, error]
}

// Process represents a long running process started by Runner.Start
type Process interface {
	Pid() int
	// Stop sends SIGTERM and waits up to grace for the process to exit
	// before killing it
	Stop(grace time.Duration) error
	// Done is closed once the process has exited
	Done() <-chan struct{}
}
