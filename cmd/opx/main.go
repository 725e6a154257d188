// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package main

import (
	"context"
	"os"

	"go.jetify.com/opx/pkg/opxcli"
)

func main() {
	os.Exit(opxcli.Execute(context.Background()))
}
