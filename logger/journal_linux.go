// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package logger

import "github.com/coreos/go-systemd/v22/journal"

// stderrIsJournal reports whether stderr is connected to the systemd
// journal; journal records need no own timestamp.
func stderrIsJournal() bool {
	ok, _ := journal.StderrIsJournalStream()
	return ok
}
