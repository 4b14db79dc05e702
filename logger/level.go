// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import "log/slog"

// levelNotice sits between info and warn, matching syslog's notice.
const levelNotice = slog.Level(2)

const noticeTerm = "\u001B[34m" + "NTC" + "\u001B[0m"

// Level controls the minimum level for every Logger in the process.
var Level = &level{lvl: &slog.LevelVar{}}

type level struct {
	lvl *slog.LevelVar
}

func (l *level) Enabled(level slog.Level) bool {
	return level >= l.lvl.Level()
}

func (l *level) Set(level slog.Level) {
	l.lvl.Set(level)
}
