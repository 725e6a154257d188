// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package envfile locates the .env file that applies to a directory.
//
// The nearest file wins: the search starts in the given directory and moves
// to each parent in turn, stopping at the first directory that contains a
// .env file. The contents of the file are never read.
package envfile

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"go.jetify.com/opx/internal/logging"
)

// Name is the file the locator looks for in every directory.
const Name = ".env"

// ErrNotFound is returned when no directory between the start directory and
// the filesystem root contains a .env file.
var ErrNotFound = errors.New("no .env file found")

// Locator walks up a directory hierarchy looking for a .env file.
// The zero value is ready to use.
type Locator struct {
	Logger *log.Logger

	// stat is os.Stat unless a test replaces it.
	stat func(name string) (os.FileInfo, error)
}

// Find returns the path of the nearest .env file at or above startDir.
func Find(startDir string) (string, error) {
	return (&Locator{}).Locate(startDir)
}

// Locate returns the path of the nearest .env file at or above startDir, or
// ErrNotFound once the filesystem root has been checked.
func (l *Locator) Locate(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrapf(err, "resolve start directory %q", startDir)
	}
	logger := l.logger()

	for {
		candidate := filepath.Join(dir, Name)
		found, err := l.fileExists(candidate)
		switch {
		case err != nil:
			// An unreadable directory does not end the search; an ancestor
			// may still hold the file.
			logger.Debug("skipping inaccessible candidate", "path", candidate, "err", err)
		case found:
			logger.Debug("found env file", "path", candidate)
			return candidate, nil
		default:
			logger.Debug("no env file", "dir", dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// fileExists reports whether path exists and is not a directory.
func (l *Locator) fileExists(path string) (bool, error) {
	stat := l.stat
	if stat == nil {
		stat = os.Stat
	}
	fileinfo, err := stat(path)
	if err == nil {
		return !fileinfo.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, errors.WithStack(err)
}

func (l *Locator) logger() *log.Logger {
	if l.Logger == nil {
		return logging.Discard()
	}
	return l.Logger
}
