// SPDX-License-Identifier: GPL-3.0-or-later

package oui

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	kloui "github.com/klauspost/oui"
)

// DefaultSourceURL is where the IEEE publishes the MA-L registry
const DefaultSourceURL = "https://standards-oui.ieee.org/oui/oui.txt"

const (
	unknownVendor             = "unknown"
	locallyAdministeredVendor = "locally administered"
)

// ErrDatabaseNotLoaded is returned by Query before a database is available
var ErrDatabaseNotLoaded = errors.New("vendor database not loaded")

// RepoOption configures an OUIVendorRepo
type RepoOption = func(r *OUIVendorRepo)

// WithSourceURL overrides the registry download location
func WithSourceURL(url string) RepoOption {
	return func(r *OUIVendorRepo) {
		r.sourceURL = url
	}
}

// WithHTTPClient overrides the client used to download the registry
func WithHTTPClient(client *http.Client) RepoOption {
	return func(r *OUIVendorRepo) {
		r.client = client
	}
}

// OUIVendorRepo implements VendorRepo with a static copy of the IEEE
// registry read by github.com/klauspost/oui
type OUIVendorRepo struct {
	ouiTxt    string
	sourceURL string
	client    *http.Client
	db        kloui.StaticDB
}

// NewOUIVendorRepo returns a repo backed by ouiTxt, downloading the
// registry first if the file does not exist yet
func NewOUIVendorRepo(ouiTxt string, options ...RepoOption) (*OUIVendorRepo, error) {
	repo := &OUIVendorRepo{
		ouiTxt:    ouiTxt,
		sourceURL: DefaultSourceURL,
		client:    &http.Client{Timeout: time.Minute},
	}

	for _, o := range options {
		o(repo)
	}

	if _, err := os.Stat(ouiTxt); errors.Is(err, os.ErrNotExist) {
		if err := repo.UpdateVendors(); err != nil {
			return nil, err
		}

		return repo, nil
	}

	if err := repo.loadDatabase(); err != nil {
		return nil, err
	}

	return repo, nil
}

// UpdateVendors downloads the registry and replaces the local copy
func (r *OUIVendorRepo) UpdateVendors() error {
	dir := filepath.Dir(r.ouiTxt)

	if err := os.MkdirAll(dir, 0751); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodGet, r.sourceURL, nil)

	if err != nil {
		return err
	}

	// the registry rejects requests without a browser-like user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; go-airscan)")

	resp, err := r.client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download vendor database: %s", resp.Status)
	}

	tmp, err := os.CreateTemp(dir, ".oui-*.txt")

	if err != nil {
		return err
	}

	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), r.ouiTxt); err != nil {
		return err
	}

	return r.loadDatabase()
}

// Query returns the manufacturer registered for the prefix of mac
func (r *OUIVendorRepo) Query(mac net.HardwareAddr) (*VendorResult, error) {
	result := &VendorResult{
		Name: unknownVendor,
	}

	// randomized and virtual BSSIDs set the locally administered bit and
	// are not registered
	if len(mac) > 0 && mac[0]&0x02 != 0 {
		result.Name = locallyAdministeredVendor
		return result, nil
	}

	if r.db == nil {
		return nil, ErrDatabaseNotLoaded
	}

	entry, err := r.db.Query(strings.ReplaceAll(mac.String(), ":", "-"))

	if errors.Is(err, kloui.ErrNotFound) {
		return result, nil
	}

	if err != nil {
		return nil, err
	}

	result.Name = entry.Manufacturer

	return result, nil
}

func (r *OUIVendorRepo) loadDatabase() error {
	db, err := kloui.OpenStaticFile(r.ouiTxt)

	if err != nil {
		return err
	}

	r.db = db

	return nil
}
