// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/robgonnella/go-airscan/internal/logger"
	"github.com/robgonnella/go-airscan/pkg/privileged"
)

const (
	captureTool             = "airodump-ng"
	defaultCaptureStopGrace = time.Second * 5
	// airodump-ng appends an index to the base name of every output file
	captureFileIndex = "-01"
)

// every extension airodump-ng may produce for a --write base name
var artifactExtensions = []string{
	".csv",
	".cap",
	".kismet.csv",
	".kismet.netxml",
	".log.csv",
}

// CaptureSession is one in-flight capture process together with the
// artifact namespace it writes into
type CaptureSession struct {
	Interface string
	Namespace string
	Dir       string
	StartedAt time.Time
	pcap      bool
	secret    privileged.Secret
	process   privileged.Process
}

// Prefix returns the base path handed to the capture tool
func (s *CaptureSession) Prefix() string {
	return filepath.Join(s.Dir, s.Namespace)
}

// CSVPath returns the path of the structured output file
func (s *CaptureSession) CSVPath() string {
	return s.Prefix() + captureFileIndex + ".csv"
}

// PcapPath returns the path of the raw frame capture
func (s *CaptureSession) PcapPath() string {
	return s.Prefix() + captureFileIndex + ".cap"
}

// Running reports whether the session has a live capture process
func (s *CaptureSession) Running() bool {
	return s.process != nil
}

// Artifacts returns every file the capture tool may have created for this
// session, with and without the file index
func (s *CaptureSession) Artifacts() []string {
	artifacts := []string{}

	for _, ext := range artifactExtensions {
		artifacts = append(
			artifacts,
			s.Prefix()+captureFileIndex+ext,
			s.Prefix()+ext,
		)
	}

	return artifacts
}

// CaptureOption configures an AirodumpCapture
type CaptureOption = func(c *AirodumpCapture)

// WithWorkDir sets the directory capture artifacts are written to
func WithWorkDir(dir string) CaptureOption {
	return func(c *AirodumpCapture) {
		c.workDir = dir
	}
}

// WithPcapCapture additionally records raw frames so cloaked names can be
// recovered from probe responses
func WithPcapCapture(enabled bool) CaptureOption {
	return func(c *AirodumpCapture) {
		c.pcap = enabled
	}
}

// WithStopGrace sets how long Stop waits after SIGTERM before killing
func WithStopGrace(d time.Duration) CaptureOption {
	return func(c *AirodumpCapture) {
		c.stopGrace = d
	}
}

// WithClock overrides the time source used to name sessions
func WithClock(now func() time.Time) CaptureOption {
	return func(c *AirodumpCapture) {
		c.now = now
	}
}

// AirodumpCapture implements CaptureManager by running airodump-ng
type AirodumpCapture struct {
	runner    privileged.Runner
	workDir   string
	pcap      bool
	stopGrace time.Duration
	now       func() time.Time
	lastStamp int64
	stampMux  *sync.Mutex
	debug     logger.DebugLogger
}

// NewAirodumpCapture returns a new instance of AirodumpCapture
func NewAirodumpCapture(
	runner privileged.Runner,
	options ...CaptureOption,
) *AirodumpCapture {
	capture := &AirodumpCapture{
		runner:    runner,
		workDir:   ".",
		stopGrace: defaultCaptureStopGrace,
		now:       time.Now,
		stampMux:  &sync.Mutex{},
		debug:     logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(capture)
	}

	return capture
}

// Start implements the Start method of the CaptureManager interface
func (c *AirodumpCapture) Start(
	iface string,
	secret privileged.Secret,
) (*CaptureSession, error) {
	session := &CaptureSession{
		Interface: iface,
		Namespace: c.nextNamespace(),
		Dir:       c.workDir,
		StartedAt: c.now(),
		pcap:      c.pcap,
		secret:    secret,
	}

	if iface == "" {
		return session, ErrEmptyInterface
	}

	proc, err := c.runner.Start(c.command(session), secret)

	if err != nil {
		return session, fmt.Errorf("failed to start capture on %s: %w", iface, err)
	}

	session.process = proc

	c.debug.Info().
		Str("interface", iface).
		Str("namespace", session.Namespace).
		Int("pid", proc.Pid()).
		Msg("capture started")

	return session, nil
}

// CurrentRecords implements the CurrentRecords method of the
// CaptureManager interface
func (c *AirodumpCapture) CurrentRecords(session *CaptureSession) ([]AccessPoint, error) {
	file, err := os.Open(session.CSVPath())

	if errors.Is(err, os.ErrNotExist) {
		return []AccessPoint{}, nil
	}

	if err != nil {
		return nil, err
	}

	defer file.Close()

	records := ParseAccessPoints(file)

	if session.pcap {
		records = append(records, c.pcapRecords(session)...)
	}

	return records, nil
}

// Stop implements the Stop method of the CaptureManager interface
func (c *AirodumpCapture) Stop(session *CaptureSession) error {
	if session == nil {
		return nil
	}

	errs := []error{}

	if session.process != nil {
		pid := session.process.Pid()

		if err := session.process.Stop(c.stopGrace); err != nil {
			errs = append(
				errs,
				fmt.Errorf("failed to stop capture process %d: %w", pid, err),
			)
		}

		session.process = nil
	}

	for _, artifact := range session.Artifacts() {
		if err := c.removeArtifact(session, artifact); err != nil {
			errs = append(errs, err)
		}
	}

	c.debug.Info().Str("namespace", session.Namespace).Msg("capture stopped")

	return errors.Join(errs...)
}

func (c *AirodumpCapture) command(session *CaptureSession) []string {
	formats := []string{"csv"}

	if session.pcap {
		formats = append(formats, "pcap")
	}

	return []string{
		captureTool,
		"--write", session.Prefix(),
		"--output-format", strings.Join(formats, ","),
		session.Interface,
	}
}

func (c *AirodumpCapture) pcapRecords(session *CaptureSession) []AccessPoint {
	file, err := os.Open(session.PcapPath())

	if err != nil {
		return nil
	}

	defer file.Close()

	records, err := ParseBeaconCapture(file)

	if err != nil {
		c.debug.Warn().Err(err).Str("file", session.PcapPath()).Msg("partial pcap read")
	}

	return records
}

// artifacts are owned by the elevated capture process, so fall back to an
// elevated remove when we are not allowed to delete them ourselves
func (c *AirodumpCapture) removeArtifact(session *CaptureSession, path string) error {
	err := os.Remove(path)

	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if !errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	diag, runErr := c.runner.Run(
		context.Background(),
		[]string{"rm", "-f", path},
		session.secret,
	)

	if runErr != nil {
		return fmt.Errorf("failed to remove %s: %w: %s", path, runErr, diag)
	}

	return nil
}

// nextNamespace derives a unique base name from the current unix time,
// never reusing a stamp already issued or one with files left on disk
func (c *AirodumpCapture) nextNamespace() string {
	c.stampMux.Lock()
	defer c.stampMux.Unlock()

	stamp := c.now().Unix()

	if stamp <= c.lastStamp {
		stamp = c.lastStamp + 1
	}

	for c.namespaceInUse(namespaceFor(stamp)) {
		stamp++
	}

	c.lastStamp = stamp

	return namespaceFor(stamp)
}

func (c *AirodumpCapture) namespaceInUse(namespace string) bool {
	matches, err := filepath.Glob(filepath.Join(c.workDir, namespace) + "*")

	return err == nil && len(matches) > 0
}

func namespaceFor(stamp int64) string {
	return fmt.Sprintf("%s-output-%d", captureTool, stamp)
}
