// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logx configures the application logger.
//
// The TUI owns stdout and stderr, so logs go to a file under the user's
// state directory instead. Network failures and malformed responses are
// logged as distinct events even though the user sees one generic message.
package logx

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultFileName is the log file created under the state directory.
const DefaultFileName = "trvlora.log"

// Init routes the global logger to the given file at the given level.
// An empty path resolves to ~/.trvlora/trvlora.log. An empty or unknown
// level means info. Returns a closer for the underlying file.
func Init(path string, level string) (func() error, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".trvlora", DefaultFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger().Level(lvl)
	return f.Close, nil
}

// InitDiscard silences the global logger. Used by tests.
func InitDiscard() {
	log.Logger = zerolog.Nop()
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info starts an info-level event.
func Info() *zerolog.Event {
	return log.Info()
}

// Warn starts a warn-level event.
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error starts an error-level event.
func Error() *zerolog.Event {
	return log.Error()
}
