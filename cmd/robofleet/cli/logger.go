// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/robofleet/robofleet/lib/config"
)

// NewCommandLogger creates a structured logger on stderr. With format
// "auto" it uses slog.TextHandler when stderr is a terminal and
// slog.JSONHandler when stderr is piped or redirected, so supervisors
// and CI get machine-parseable output.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger(slog.LevelInfo, config.FormatAuto).With(
//	    "command", "compose",
//	)
func NewCommandLogger(level slog.Level, format string) *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level, format)
}

func newLogger(w io.Writer, isTerminal bool, level slog.Level, format string) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}

	useText := format == config.FormatText || (format != config.FormatJSON && isTerminal)
	if useText {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}
