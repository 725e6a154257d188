// Copyright 2023 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package opxcli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.jetify.com/opx/internal/build"
	"go.jetify.com/opx/internal/tux"
)

var verboseFlags = []string{"--verbose", "-v"}

// printVersion writes the bare version, or a table of build details when any
// of extra is --verbose or -v.
func printVersion(w io.Writer, extra []string) error {
	if !lo.Some(extra, verboseFlags) {
		_, err := fmt.Fprintln(w, build.Version)
		return errors.WithStack(err)
	}
	tux.FTable(w, [][]string{
		{"Version:", build.Version},
		{"Build Env:", build.BuildEnv()},
		{"Platform:", build.Platform()},
		{"Commit:", build.Commit},
		{"Commit Time:", build.CommitDate},
		{"Go Version:", runtime.Version()},
	})
	return nil
}
