// SPDX-License-Identifier: GPL-3.0-or-later

package scanner_test

import (
	"context"
	"os"
	"testing"
	"time"

	mock_privileged "github.com/robgonnella/go-airscan/mock/privileged"
	"github.com/robgonnella/go-airscan/pkg/privileged"
	"github.com/robgonnella/go-airscan/pkg/scanner"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHiddenNetworkScanFromCaptureFiles(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	secret := privileged.Secret("hunter2")

	t.Run("reveals hidden network from rewritten csv", func(st *testing.T) {
		dir := st.TempDir()
		runner := mock_privileged.NewMockRunner(ctrl)
		proc := mock_privileged.NewMockProcess(ctrl)

		csvPath := ""

		writeCSV := func(rows ...string) {
			contents := "\n" + airodumpHeader
			for _, row := range rows {
				contents += row
			}
			contents += "\nStation MAC, First time seen, Last time seen, Power, # packets, BSSID, Probed ESSIDs\n"

			err := os.WriteFile(csvPath, []byte(contents), 0644)
			assert.NoError(st, err)
		}

		runner.EXPECT().Start(gomock.Any(), secret).DoAndReturn(
			func(argv []string, _ privileged.Secret) (privileged.Process, error) {
				// airodump-ng --write <prefix> ...
				csvPath = argv[2] + "-01.csv"

				writeCSV(
					apRow("AA:BB:CC:DD:EE:01", "6", ""),
					apRow("AA:BB:CC:DD:EE:02", "11", "CoffeeShop"),
				)

				return proc, nil
			},
		)
		proc.EXPECT().Pid().Return(42).AnyTimes()
		proc.EXPECT().Stop(gomock.Any()).Return(nil)

		capture := scanner.NewAirodumpCapture(
			runner,
			scanner.WithWorkDir(dir),
			scanner.WithClock(fixedClock()),
		)

		polls := []scanner.Poll{}

		hiddenScanner := scanner.NewHiddenNetworkScanner(
			"wlan0mon",
			secret,
			capture,
			scanner.WithDuration(time.Millisecond*30),
			scanner.WithPollInterval(time.Millisecond*10),
			scanner.WithPollNotifications(func(p *scanner.Poll) {
				polls = append(polls, *p)

				switch p.Number {
				case 1:
					writeCSV(
						apRow("AA:BB:CC:DD:EE:01", "6", "HomeNet"),
						apRow("AA:BB:CC:DD:EE:02", "11", "CoffeeShop"),
					)
				case 2:
					// the name disappears again once the client leaves
					writeCSV(
						apRow("AA:BB:CC:DD:EE:01", "6", "<length:  0>"),
						apRow("AA:BB:CC:DD:EE:02", "11", "CoffeeShop"),
					)
				}
			}),
		)

		records, err := hiddenScanner.Scan(context.Background())

		assert.NoError(st, err)
		assert.Equal(st, []scanner.AccessPoint{
			{BSSID: "AA:BB:CC:DD:EE:01", ESSID: "HomeNet", Channel: "6"},
			{BSSID: "AA:BB:CC:DD:EE:02", ESSID: "CoffeeShop", Channel: "11"},
		}, records)

		assert.Len(st, polls, 3)
		assert.Equal(st, 2, polls[0].Records)
		assert.Equal(st, 1, polls[0].Hidden)
		assert.Equal(st, 1, polls[1].Revealed)
		assert.Equal(st, 0, polls[1].Hidden)
		assert.Equal(st, 0, polls[2].Hidden)

		entries, err := os.ReadDir(dir)

		assert.NoError(st, err)
		assert.Empty(st, entries)
	})
}
