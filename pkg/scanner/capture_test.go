// SPDX-License-Identifier: GPL-3.0-or-later

package scanner_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	mock_privileged "github.com/robgonnella/go-airscan/mock/privileged"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/robgonnella/go-airscan/pkg/scanner"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Unix(1700000000, 0)
	}
}

func TestAirodumpCapture(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	secret := privileged.Secret("hunter2")

	t.Run("starts capture with namespaced prefix", func(st *testing.T) {
		dir := st.TempDir()
		runner := mock_privileged.NewMockRunner(ctrl)
		proc := mock_privileged.NewMockProcess(ctrl)

		capture := scanner.NewAirodumpCapture(
			runner,
			scanner.WithWorkDir(dir),
			scanner.WithClock(fixedClock()),
		)

		prefix := filepath.Join(dir, "airodump-ng-output-1700000000")

		runner.EXPECT().Start(
			[]string{
				"airodump-ng",
				"--write", prefix,
				"--output-format", "csv",
				"wlan0mon",
			},
			secret,
		).Return(proc, nil)

		proc.EXPECT().Pid().Return(42).AnyTimes()

		session, err := capture.Start("wlan0mon", secret)

		assert.NoError(st, err)
		assert.True(st, session.Running())
		assert.Equal(st, "airodump-ng-output-1700000000", session.Namespace)
		assert.Equal(st, prefix+"-01.csv", session.CSVPath())
	})

	t.Run("requests pcap output when enabled", func(st *testing.T) {
		dir := st.TempDir()
		runner := mock_privileged.NewMockRunner(ctrl)
		proc := mock_privileged.NewMockProcess(ctrl)

		capture := scanner.NewAirodumpCapture(
			runner,
			scanner.WithWorkDir(dir),
			scanner.WithClock(fixedClock()),
			scanner.WithPcapCapture(true),
		)

		runner.EXPECT().Start(
			[]string{
				"airodump-ng",
				"--write", filepath.Join(dir, "airodump-ng-output-1700000000"),
				"--output-format", "csv,pcap",
				"wlan0mon",
			},
			secret,
		).Return(proc, nil)

		proc.EXPECT().Pid().Return(42).AnyTimes()

		_, err := capture.Start("wlan0mon", secret)

		assert.NoError(st, err)
	})

	t.Run("never reuses a namespace", func(st *testing.T) {
		dir := st.TempDir()
		runner := mock_privileged.NewMockRunner(ctrl)
		proc := mock_privileged.NewMockProcess(ctrl)

		// leftovers from an earlier run with the same stamp
		err := os.WriteFile(
			filepath.Join(dir, "airodump-ng-output-1700000000-01.csv"),
			[]byte{},
			0644,
		)
		assert.NoError(st, err)

		capture := scanner.NewAirodumpCapture(
			runner,
			scanner.WithWorkDir(dir),
			scanner.WithClock(fixedClock()),
		)

		runner.EXPECT().Start(gomock.Any(), secret).Return(proc, nil).Times(2)
		proc.EXPECT().Pid().Return(42).AnyTimes()

		first, err := capture.Start("wlan0mon", secret)
		assert.NoError(st, err)

		second, err := capture.Start("wlan0mon", secret)
		assert.NoError(st, err)

		assert.Equal(st, "airodump-ng-output-1700000001", first.Namespace)
		assert.Equal(st, "airodump-ng-output-1700000002", second.Namespace)
	})

	t.Run("rejects empty interface but returns a session", func(st *testing.T) {
		runner := mock_privileged.NewMockRunner(ctrl)

		capture := scanner.NewAirodumpCapture(runner, scanner.WithWorkDir(st.TempDir()))

		session, err := capture.Start("", secret)

		assert.ErrorIs(st, err, scanner.ErrEmptyInterface)
		assert.NotNil(st, session)
		assert.False(st, session.Running())
	})

	t.Run("wraps start failures", func(st *testing.T) {
		runner := mock_privileged.NewMockRunner(ctrl)

		capture := scanner.NewAirodumpCapture(runner, scanner.WithWorkDir(st.TempDir()))

		notFound := &privileged.ProgramNotFoundError{Program: "airodump-ng"}

		runner.EXPECT().Start(gomock.Any(), secret).Return(nil, notFound)

		session, err := capture.Start("wlan0mon", secret)

		assert.ErrorIs(st, err, privileged.ErrProgramNotFound)
		assert.NotNil(st, session)
		assert.NoError(st, capture.Stop(session))
	})

	t.Run("reports no records before output exists", func(st *testing.T) {
		runner := mock_privileged.NewMockRunner(ctrl)

		capture := scanner.NewAirodumpCapture(runner, scanner.WithWorkDir(st.TempDir()))

		session, _ := capture.Start("", secret)

		records, err := capture.CurrentRecords(session)

		assert.NoError(st, err)
		assert.Empty(st, records)
	})

	t.Run("reads records from csv output", func(st *testing.T) {
		dir := st.TempDir()
		runner := mock_privileged.NewMockRunner(ctrl)
		proc := mock_privileged.NewMockProcess(ctrl)

		capture := scanner.NewAirodumpCapture(
			runner,
			scanner.WithWorkDir(dir),
			scanner.WithClock(fixedClock()),
		)

		runner.EXPECT().Start(gomock.Any(), secret).Return(proc, nil)
		proc.EXPECT().Pid().Return(42).AnyTimes()

		session, err := capture.Start("wlan0mon", secret)
		assert.NoError(st, err)

		data := airodumpHeader +
			apRow("AA:BB:CC:DD:EE:01", "6", "") +
			apRow("AA:BB:CC:DD:EE:02", "11", "CoffeeShop")

		err = os.WriteFile(session.CSVPath(), []byte(data), 0644)
		assert.NoError(st, err)

		records, err := capture.CurrentRecords(session)

		assert.NoError(st, err)
		assert.Len(st, records, 2)
		assert.Equal(st, "CoffeeShop", records[1].ESSID)
	})

	t.Run("includes pcap records when enabled", func(st *testing.T) {
		dir := st.TempDir()
		runner := mock_privileged.NewMockRunner(ctrl)
		proc := mock_privileged.NewMockProcess(ctrl)

		capture := scanner.NewAirodumpCapture(
			runner,
			scanner.WithWorkDir(dir),
			scanner.WithClock(fixedClock()),
			scanner.WithPcapCapture(true),
		)

		runner.EXPECT().Start(gomock.Any(), secret).Return(proc, nil)
		proc.EXPECT().Pid().Return(42).AnyTimes()

		session, err := capture.Start("wlan0mon", secret)
		assert.NoError(st, err)

		err = os.WriteFile(
			session.CSVPath(),
			[]byte(airodumpHeader+apRow("AA:BB:CC:DD:EE:01", "6", "")),
			0644,
		)
		assert.NoError(st, err)

		pcap := writeCapture(
			st,
			mgmtFrame(frameProbeResp, []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0x01}, "HomeNet", 6),
		)

		err = os.WriteFile(session.PcapPath(), pcap.Bytes(), 0644)
		assert.NoError(st, err)

		records, err := capture.CurrentRecords(session)

		assert.NoError(st, err)
		assert.Equal(st, []scanner.AccessPoint{
			{BSSID: "AA:BB:CC:DD:EE:01", ESSID: scanner.HiddenESSID, Channel: "6"},
			{BSSID: "AA:BB:CC:DD:EE:01", ESSID: "HomeNet", Channel: "6"},
		}, records)
	})

	t.Run("stops process and removes every artifact", func(st *testing.T) {
		dir := st.TempDir()
		runner := mock_privileged.NewMockRunner(ctrl)
		proc := mock_privileged.NewMockProcess(ctrl)

		capture := scanner.NewAirodumpCapture(
			runner,
			scanner.WithWorkDir(dir),
			scanner.WithClock(fixedClock()),
			scanner.WithStopGrace(time.Second),
		)

		runner.EXPECT().Start(gomock.Any(), secret).Return(proc, nil)
		proc.EXPECT().Pid().Return(42).AnyTimes()
		proc.EXPECT().Stop(time.Second).Return(nil)

		session, err := capture.Start("wlan0mon", secret)
		assert.NoError(st, err)

		for _, artifact := range session.Artifacts() {
			err := os.WriteFile(artifact, []byte("x"), 0644)
			assert.NoError(st, err)
		}

		// unrelated files are left alone
		keep := filepath.Join(dir, "notes.txt")
		err = os.WriteFile(keep, []byte("x"), 0644)
		assert.NoError(st, err)

		err = capture.Stop(session)

		assert.NoError(st, err)
		assert.False(st, session.Running())

		entries, err := os.ReadDir(dir)
		assert.NoError(st, err)
		assert.Len(st, entries, 1)
		assert.Equal(st, "notes.txt", entries[0].Name())
	})

	t.Run("removes artifacts even when process stop fails", func(st *testing.T) {
		dir := st.TempDir()
		runner := mock_privileged.NewMockRunner(ctrl)
		proc := mock_privileged.NewMockProcess(ctrl)

		capture := scanner.NewAirodumpCapture(
			runner,
			scanner.WithWorkDir(dir),
			scanner.WithClock(fixedClock()),
		)

		stopErr := errors.New("mock stop error")

		runner.EXPECT().Start(gomock.Any(), secret).Return(proc, nil)
		proc.EXPECT().Pid().Return(42).AnyTimes()
		proc.EXPECT().Stop(gomock.Any()).Return(stopErr)

		session, err := capture.Start("wlan0mon", secret)
		assert.NoError(st, err)

		err = os.WriteFile(session.CSVPath(), []byte("x"), 0644)
		assert.NoError(st, err)

		err = capture.Stop(session)

		assert.ErrorIs(st, err, stopErr)

		_, statErr := os.Stat(session.CSVPath())
		assert.ErrorIs(st, statErr, os.ErrNotExist)
	})

	t.Run("stop tolerates nil session", func(st *testing.T) {
		capture := scanner.NewAirodumpCapture(mock_privileged.NewMockRunner(ctrl))

		assert.NoError(st, capture.Stop(nil))
	})
}
