// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/lmittmann/tint"
)

func newHandler() slog.Handler {
	if isTerminal {
		return tint.NewHandler(os.Stderr, &tint.Options{
			NoColor:     runtime.GOOS == "windows",
			AddSource:   true,
			Level:       Level.lvl,
			ReplaceAttr: replaceAttrTerminal,
		})
	}
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       Level.lvl,
		ReplaceAttr: replaceAttrText,
	})
}

func replaceAttrText(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		// journald stamps records itself
		if isJournal {
			return slog.Attr{}
		}
	case slog.LevelKey:
		lvl := a.Value.Any().(slog.Level)
		if lvl == levelNotice {
			return slog.String(a.Key, "notice")
		}
		return slog.String(a.Key, strings.ToLower(lvl.String()))
	}
	return a
}

func replaceAttrTerminal(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{}
	case slog.SourceKey:
		if !Level.Enabled(slog.LevelDebug) {
			return slog.Attr{}
		}
	case slog.LevelKey:
		if lvl := a.Value.Any().(slog.Level); lvl == levelNotice {
			return slog.String(a.Key, noticeTerm)
		}
	}
	return a
}

// sourceHandler rewrites the record's PC so AddSource points at the
// Logger caller instead of the wrapper methods.
type sourceHandler struct {
	depth int
	h     slog.Handler
}

func withCallDepth(depth int, h slog.Handler) slog.Handler {
	if v, ok := h.(*sourceHandler); ok {
		h = v.h
	}
	return &sourceHandler{depth: depth, h: h}
}

func (s *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.h.Enabled(ctx, level)
}

func (s *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return withCallDepth(s.depth, s.h.WithAttrs(attrs))
}

func (s *sourceHandler) WithGroup(name string) slog.Handler {
	return withCallDepth(s.depth, s.h.WithGroup(name))
}

func (s *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	var pcs [1]uintptr
	runtime.Callers(s.depth+2, pcs[:])
	r.PC = pcs[0]

	return s.h.Handle(ctx, r)
}
