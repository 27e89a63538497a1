// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the expense-vault client.
//
// *Logger exposes the whole zerolog API. Request and operation scoped loggers
// travel in the context and are read back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogFile is created next to the executable when no path is set.
const defaultLogFile = "expense-vault.log"

var setupOnce sync.Once

// Logger embeds zerolog.Logger so helpers can be added on top of it.
type Logger struct {
	zerolog.Logger
}

// setupGlobals enables every level and reports the caller as a function name
// under "func" instead of file:line.
func setupGlobals() {
	setupOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

func newLogger(out io.Writer, role string) *Logger {
	setupGlobals()

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger writes JSON entries to stdout. Used by the long-running report
// server.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger builds the CLI logger. The CLI owns stdout for tables and
// reports, so entries go to the JSON file at path. An empty path selects
// "expense-vault.log" next to the executable; stderr is used when the file
// cannot be opened.
func NewClientLogger(role, path string) *Logger {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), defaultLogFile)
	}

	var out io.Writer = os.Stderr
	if logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
		out = logFile
	}

	return newLogger(out, role)
}

// Nop discards everything. Tests use it.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a logger that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the HTTP
// middleware, or zerolog's default logger.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext never returns nil: without an attached logger zerolog hands
// back its default one.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithSession returns a child logger tagged with the session id and account,
// so every entry of one connection can be correlated.
func (l *Logger) WithSession(sessionID, account string) *Logger {
	return &Logger{l.With().
		Str("session_id", sessionID).
		Str("account", account).
		Logger()}
}
