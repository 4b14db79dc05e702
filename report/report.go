// SPDX-License-Identifier: GPL-3.0-or-later

// Package report renders comparison outcomes into an append-only text
// artifact. The file is created with a fixed header on first use; each
// run appends one delimited block.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/gnmicheck/gnmicheck/compare"
)

const (
	header    = "gNMI vs CLI Comparison Report\n=============================\n\n"
	separator = "----------------------------------------"

	timeLayout = "2006-01-02 15:04:05"
)

// Run is the metadata and result of one comparison run.
type Run struct {
	Timestamp time.Time
	GNMIPath  string
	CLIPaths  []string
	Result    compare.Result
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

type Writer struct {
	path string
}

// Append renders run and appends it to the report file, creating the
// file with its header first when needed. The report file itself is
// held under an advisory lock for the duration of the append, so
// concurrent runs against a shared report do not interleave. It returns
// the rendered block.
func (w *Writer) Append(run Run) (string, error) {
	block := Render(run)

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("open report file: %w", err)
	}
	defer func() { _ = f.Close() }()

	locker := flock.New(w.path)
	if err := locker.Lock(); err != nil {
		return "", fmt.Errorf("lock report file: %w", err)
	}
	defer func() { _ = locker.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat report file: %w", err)
	}

	if fi.Size() == 0 {
		if _, err := f.WriteString(header); err != nil {
			return "", fmt.Errorf("write report header: %w", err)
		}
	}

	if _, err := f.WriteString(block); err != nil {
		return "", fmt.Errorf("write report block: %w", err)
	}

	return block, nil
}

// Render returns the report block for run: separator, run metadata, one
// line per outcome and the summary line.
func Render(run Run) string {
	var sb strings.Builder

	sb.WriteString(separator + "\n")
	sb.WriteString("Timestamp: " + run.Timestamp.Format(timeLayout) + "\n")
	sb.WriteString("gNMI file: " + run.GNMIPath + "\n")
	sb.WriteString("CLI files: " + strings.Join(run.CLIPaths, ", ") + "\n\n")
	sb.WriteString("Comparison Results:\n")

	for _, o := range run.Result.Outcomes {
		sb.WriteString(renderOutcome(o) + "\n")
	}

	sb.WriteString("\n")

	if run.Result.AllMatch {
		sb.WriteString("All values match. No discrepancies found.\n")
	} else {
		sb.WriteString("Differences found between gNMI and CLI outputs.\n")
	}

	return sb.String()
}

func renderOutcome(o compare.Outcome) string {
	switch o.Kind {
	case compare.KindMatch:
		return fmt.Sprintf("MATCH: %s = %s", o.Key, o.GNMIValue)
	case compare.KindDiscrepancy:
		return fmt.Sprintf("MISMATCH: %s: gNMI='%s' CLI='%s'", o.Key, o.GNMIValue, o.CLIValue)
	case compare.KindMissingInCLI:
		return fmt.Sprintf("%s: found in gNMI but missing in CLI", o.Key)
	case compare.KindMissingInGNMI:
		return fmt.Sprintf("%s: found in CLI but not in gNMI", o.Key)
	default:
		return ""
	}
}
