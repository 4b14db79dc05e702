// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

var (
	isTerminal = isatty.IsTerminal(os.Stderr.Fd())
	isJournal  = stderrIsJournal()
)

var defaultLogger = New()

// New creates a new Logger writing to stderr. The handler is picked based
// on where stderr is connected (terminal, journald or plain stream).
func New() *Logger {
	return &Logger{sl: slog.New(withCallDepth(2, newHandler()))}
}

// Logger is a wrapper around slog.Logger. A nil *Logger is usable and
// falls back to the default logger, so embedding it is always safe.
type Logger struct {
	sl *slog.Logger
}

// With returns a Logger that includes the given attributes in each output.
func (l *Logger) With(args ...any) *Logger {
	if l.isFallback() {
		return &Logger{sl: defaultLogger.sl.With(args...)}
	}
	return &Logger{sl: l.sl.With(args...)}
}

func (l *Logger) Error(a ...any)   { l.log(slog.LevelError, fmt.Sprint(a...)) }
func (l *Logger) Warning(a ...any) { l.log(slog.LevelWarn, fmt.Sprint(a...)) }
func (l *Logger) Notice(a ...any)  { l.log(levelNotice, fmt.Sprint(a...)) }
func (l *Logger) Info(a ...any)    { l.log(slog.LevelInfo, fmt.Sprint(a...)) }
func (l *Logger) Debug(a ...any)   { l.log(slog.LevelDebug, fmt.Sprint(a...)) }

func (l *Logger) Errorf(format string, a ...any) {
	l.log(slog.LevelError, fmt.Sprintf(format, a...))
}

func (l *Logger) Warningf(format string, a ...any) {
	l.log(slog.LevelWarn, fmt.Sprintf(format, a...))
}

func (l *Logger) Noticef(format string, a ...any) {
	l.log(levelNotice, fmt.Sprintf(format, a...))
}

func (l *Logger) Infof(format string, a ...any) {
	l.log(slog.LevelInfo, fmt.Sprintf(format, a...))
}

func (l *Logger) Debugf(format string, a ...any) {
	l.log(slog.LevelDebug, fmt.Sprintf(format, a...))
}

func (l *Logger) log(level slog.Level, msg string) {
	if l.isFallback() {
		defaultLogger.sl.Log(context.Background(), level, msg)
		return
	}
	l.sl.Log(context.Background(), level, msg)
}

func (l *Logger) isFallback() bool {
	return l == nil || l.sl == nil
}
