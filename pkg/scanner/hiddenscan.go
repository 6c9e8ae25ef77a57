// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/robgonnella/go-airscan/internal/logger"
	"github.com/robgonnella/go-airscan/pkg/oui"
	"github.com/robgonnella/go-airscan/pkg/privileged"
)

// HiddenNetworkScanner implements the Scanner interface by polling the
// output of a capture process for a fixed window and folding every read
// into a running Table
type HiddenNetworkScanner struct {
	iface        string
	secret       privileged.Secret
	capture      CaptureManager
	duration     time.Duration
	pollInterval time.Duration
	pollNotifier func(p *Poll)
	warnNotifier func(err error)
	vendorRepo   oui.VendorRepo
	scanning     bool
	scanningMux  *sync.RWMutex
	debug        logger.DebugLogger
}

// NewHiddenNetworkScanner returns a new instance of HiddenNetworkScanner
func NewHiddenNetworkScanner(
	iface string,
	secret privileged.Secret,
	capture CaptureManager,
	options ...Option,
) *HiddenNetworkScanner {
	scanner := &HiddenNetworkScanner{
		iface:        iface,
		secret:       secret,
		capture:      capture,
		duration:     defaultScanDuration,
		pollInterval: defaultPollInterval,
		scanningMux:  &sync.RWMutex{},
		debug:        logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(scanner)
	}

	return scanner
}

// Scan implements the Scan method of the Scanner interface. The capture is
// always stopped and its artifacts removed before Scan returns. When ctx is
// cancelled or a read fails, the records gathered so far are returned along
// with the error.
func (s *HiddenNetworkScanner) Scan(ctx context.Context) ([]AccessPoint, error) {
	s.scanningMux.Lock()

	if s.scanning {
		s.scanningMux.Unlock()
		return nil, ErrScanInProgress
	}

	s.scanning = true
	s.scanningMux.Unlock()

	defer s.reset()

	s.debug.Info().
		Str("interface", s.iface).
		Dur("duration", s.duration).
		Dur("pollInterval", s.pollInterval).
		Msg("starting hidden network scan")

	session, err := s.capture.Start(s.iface, s.secret)

	defer s.stopCapture(session)

	if err != nil {
		return nil, err
	}

	table := NewTable()
	total := s.TotalPolls()
	start := time.Now()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for n := 1; n <= total; n++ {
		if ctx.Err() != nil {
			return s.withVendors(table.Records()), ctx.Err()
		}

		select {
		case <-ctx.Done():
			return s.withVendors(table.Records()), ctx.Err()
		case <-ticker.C:
		}

		observed, err := s.capture.CurrentRecords(session)

		if err != nil {
			return s.withVendors(table.Records()), err
		}

		stats := table.Merge(observed...)

		s.notifyPoll(&Poll{
			Number:   n,
			Total:    total,
			Observed: len(observed),
			Records:  table.Len(),
			Hidden:   table.HiddenCount(),
			Added:    stats.Added,
			Revealed: stats.Revealed,
			Elapsed:  time.Since(start),
		})
	}

	return s.withVendors(table.Records()), nil
}

// SetDuration implements the SetDuration method of the Scanner interface
func (s *HiddenNetworkScanner) SetDuration(d time.Duration) {
	s.duration = d
}

// SetPollInterval implements the SetPollInterval method of the Scanner
// interface. Non positive intervals are ignored.
func (s *HiddenNetworkScanner) SetPollInterval(d time.Duration) {
	if d <= 0 {
		return
	}

	s.pollInterval = d
}

// SetPollNotifications implements the SetPollNotifications method of the
// Scanner interface
func (s *HiddenNetworkScanner) SetPollNotifications(cb func(p *Poll)) {
	s.pollNotifier = cb
}

// SetWarningNotifications implements the SetWarningNotifications method of
// the Scanner interface
func (s *HiddenNetworkScanner) SetWarningNotifications(cb func(err error)) {
	s.warnNotifier = cb
}

// IncludeVendorInfo implements the IncludeVendorInfo method of the Scanner
// interface
func (s *HiddenNetworkScanner) IncludeVendorInfo(repo oui.VendorRepo) {
	s.vendorRepo = repo
}

// TotalPolls returns how many reads of the capture output one scan performs
func (s *HiddenNetworkScanner) TotalPolls() int {
	if s.duration <= 0 {
		return 0
	}

	total := int(s.duration / s.pollInterval)

	if s.duration%s.pollInterval != 0 {
		total++
	}

	return total
}

func (s *HiddenNetworkScanner) stopCapture(session *CaptureSession) {
	if err := s.capture.Stop(session); err != nil {
		s.debug.Warn().Err(err).Msg("capture cleanup incomplete")

		if s.warnNotifier != nil {
			s.warnNotifier(err)
		}
	}
}

func (s *HiddenNetworkScanner) notifyPoll(p *Poll) {
	s.debug.Debug().
		Int("poll", p.Number).
		Int("records", p.Records).
		Int("hidden", p.Hidden).
		Msg("capture polled")

	if s.pollNotifier != nil {
		s.pollNotifier(p)
	}
}

func (s *HiddenNetworkScanner) withVendors(records []AccessPoint) []AccessPoint {
	if s.vendorRepo == nil {
		return records
	}

	for i, record := range records {
		mac, err := net.ParseMAC(record.BSSID)

		if err != nil {
			continue
		}

		vendor, err := s.vendorRepo.Query(mac)

		if err != nil || vendor == nil {
			continue
		}

		records[i].Vendor = vendor.Name
	}

	return records
}

func (s *HiddenNetworkScanner) reset() {
	s.scanningMux.Lock()
	defer s.scanningMux.Unlock()
	s.scanning = false
}
