// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package opxcli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printUsage(&buf))

	expected := "opx - Thin wrapper around `op run`\n" +
		"\n" +
		"Usage:\n" +
		"  opx <command> [args...]\n" +
		"\n" +
		"Examples:\n" +
		"  opx bun run dev\n" +
		"  opx node server.js\n" +
		"  opx docker compose up\n" +
		"\n" +
		"opx automatically finds the nearest .env file and runs:\n" +
		"  op run --env-file=<path> -- <command> [args...]\n"
	assert.Equal(t, expected, buf.String())
}
