// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package opxcli

import (
	"go.jetify.com/opx/pkg/oprun"
	"go.jetpack.io/pkg/envvar"
)

// config holds the settings opx reads from its own environment. Everything
// on the command line belongs to the delegated command.
type config struct {
	// opBin is the 1Password CLI to run: a name looked up on PATH or a path.
	opBin    string
	logLevel string
	// workingDir is where the .env search starts. Empty means os.Getwd.
	workingDir string
}

func configFromEnv() *config {
	level := envvar.Get("OPX_LOG_LEVEL", "warn")
	if envvar.Bool("OPX_DEBUG") {
		level = "debug"
	}
	return &config{
		opBin:    envvar.Get("OPX_OP_BIN", oprun.DefaultBin),
		logLevel: level,
	}
}
