// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package build

import (
	"os"
	"runtime"
	"strings"
)

// These variables are set by the build script.
var (
	IsDev      = Commit == "none"
	Version    = "0.1.0"
	Commit     = "none"
	CommitDate = "unknown"
)

func init() {
	buildEnv := strings.ToLower(os.Getenv("OPX_BUILD_ENV"))
	if buildEnv == "prod" {
		IsDev = false
	} else if buildEnv == "dev" {
		IsDev = true
	}
}

func BuildEnv() string {
	if IsDev {
		return "dev"
	}
	return "prod"
}

// Platform is the GOOS_GOARCH pair the binary was compiled for.
func Platform() string {
	return runtime.GOOS + "_" + runtime.GOARCH
}
