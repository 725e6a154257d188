// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package logging builds the diagnostic logger shared by opx packages.
//
// Diagnostics always go to stderr (or the writer passed to New) so that
// stdout belongs to the delegated command alone.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel keeps ordinary runs silent.
const DefaultLevel = log.WarnLevel

// New returns a logger writing to w at the named level. Unknown or empty
// level names fall back to DefaultLevel.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  ParseLevel(level),
		Prefix: "opx",
	})
}

// ParseLevel maps a level name such as "debug" or "error" to a log.Level.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return DefaultLevel
	}
	return lvl
}

// Discard returns a logger that drops everything. Packages use it when the
// caller did not supply one.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
