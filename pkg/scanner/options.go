// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"time"

	"github.com/robgonnella/go-airscan/pkg/oui"
)

const (
	defaultScanDuration = time.Second * 15
	defaultPollInterval = time.Second
)

// Option configures a Scanner
type Option = func(s Scanner)

// WithDuration sets how long the capture runs
func WithDuration(d time.Duration) Option {
	return func(s Scanner) {
		s.SetDuration(d)
	}
}

// WithPollInterval sets how often the capture output is read
func WithPollInterval(d time.Duration) Option {
	return func(s Scanner) {
		s.SetPollInterval(d)
	}
}

// WithPollNotifications registers a callback invoked after every poll
func WithPollNotifications(cb func(p *Poll)) Option {
	return func(s Scanner) {
		s.SetPollNotifications(cb)
	}
}

// WithWarningNotifications registers a callback for non fatal problems such
// as failed artifact cleanup
func WithWarningNotifications(cb func(err error)) Option {
	return func(s Scanner) {
		s.SetWarningNotifications(cb)
	}
}

// WithVendorInfo annotates results with the vendor registered for each BSSID
func WithVendorInfo(repo oui.VendorRepo) Option {
	return func(s Scanner) {
		s.IncludeVendorInfo(repo)
	}
}
