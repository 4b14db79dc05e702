// SPDX-License-Identifier: GPL-3.0-or-later

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnmicheck/gnmicheck/compare"
)

func TestRender(t *testing.T) {
	run := Run{
		Timestamp: time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC),
		GNMIPath:  "gnmi.txt",
		CLIPaths:  []string{"cli1.txt", "cli2.txt"},
		Result: compare.Result{
			AllMatch: false,
			Outcomes: []compare.Outcome{
				{Kind: compare.KindMatch, Key: "speed", GNMIValue: "1000000000", CLIValue: "1000000000"},
				{Kind: compare.KindDiscrepancy, Key: "mtu", GNMIValue: "9000", CLIValue: "1500"},
				{Kind: compare.KindMissingInCLI, Key: "uptime", GNMIValue: "1000"},
				{Kind: compare.KindMissingInGNMI, Key: "temperature", CLIValue: "43"},
			},
		},
	}

	want := strings.Join([]string{
		"----------------------------------------",
		"Timestamp: 2026-08-23 10:30:00",
		"gNMI file: gnmi.txt",
		"CLI files: cli1.txt, cli2.txt",
		"",
		"Comparison Results:",
		"MATCH: speed = 1000000000",
		"MISMATCH: mtu: gNMI='9000' CLI='1500'",
		"uptime: found in gNMI but missing in CLI",
		"temperature: found in CLI but not in gNMI",
		"",
		"Differences found between gNMI and CLI outputs.",
		"",
	}, "\n")

	assert.Equal(t, want, Render(run))
}

func TestRender_AllMatchSummary(t *testing.T) {
	run := Run{
		Timestamp: time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC),
		GNMIPath:  "gnmi.txt",
		CLIPaths:  []string{"cli.txt"},
		Result: compare.Result{
			AllMatch: true,
			Outcomes: []compare.Outcome{
				{Kind: compare.KindMatch, Key: "speed", GNMIValue: "1000000000", CLIValue: "1000000000"},
			},
		},
	}

	assert.True(t, strings.HasSuffix(Render(run), "All values match. No discrepancies found.\n"))
}

func TestWriter_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison_report.txt")
	w := NewWriter(path)

	run := Run{
		Timestamp: time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC),
		GNMIPath:  "gnmi.txt",
		CLIPaths:  []string{"cli.txt"},
		Result:    compare.Result{AllMatch: true},
	}

	block, err := w.Append(run)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, header), "new file starts with the fixed header")
	assert.Equal(t, header+block, content)

	// Second run appends, header stays single.
	block2, err := w.Append(run)
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, header+block+block2, string(data))
	assert.Equal(t, 1, strings.Count(string(data), "gNMI vs CLI Comparison Report"))

	// The lock is taken on the report file itself, no sidecar is left.
	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err))
}
