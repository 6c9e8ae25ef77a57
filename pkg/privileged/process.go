// SPDX-License-Identifier: GPL-3.0-or-later

package privileged

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"
)

type execProcess struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	done  chan struct{}
}

func newExecProcess(cmd *exec.Cmd, stdin io.WriteCloser) *execProcess {
	p := &execProcess{
		cmd:   cmd,
		stdin: stdin,
		done:  make(chan struct{}),
	}

	go func() {
		// exit status is irrelevant, the process is always stopped by signal
		_ = cmd.Wait()
		close(p.done)
	}()

	return p
}

// Pid returns the process id
func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

// Done returns a channel that is closed once the process exits
func (p *execProcess) Done() <-chan struct{} {
	return p.done
}

// Stop terminates the process, escalating to SIGKILL after grace
func (p *execProcess) Stop(grace time.Duration) error {
	defer p.stdin.Close()

	select {
	case <-p.done:
		return nil
	default:
	}

	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return p.kill()
	}

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-p.done:
		return nil
	case <-timer.C:
		return p.kill()
	}
}

func (p *execProcess) kill() error {
	// kill the whole group in case the elevator did not forward the signal
	_ = syscall.Kill(-p.cmd.Process.Pid, syscall.SIGKILL)

	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}

	<-p.done

	return nil
}
