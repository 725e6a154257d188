// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package opxcli

import (
	"io"

	"github.com/MakeNowJust/heredoc"
	"go.jetify.com/opx/internal/tux"
)

var usageTmpl = heredoc.Doc(`
	{{ .Name | style "h1" }} - Thin wrapper around {{ .Wrapped | style "command" }}

	{{ "Usage:" | style "h2" }}
	  {{ .Name }} <command> [args...]

	{{ "Examples:" | style "h2" }}
	{{- range .Examples }}
	  {{ . | style "command" }}
	{{- end }}

	{{ .Name }} automatically finds the nearest .env file and runs:
	  {{ .Delegated | style "command" }}
`)

type usageData struct {
	Name      string
	Wrapped   string
	Delegated string
	Examples  []string
}

var usage = usageData{
	Name:      "opx",
	Wrapped:   "`op run`",
	Delegated: "op run --env-file=<path> -- <command> [args...]",
	Examples: []string{
		"opx bun run dev",
		"opx node server.js",
		"opx docker compose up",
	},
}

var baseStyle = tux.StyleSheet{
	Styles: map[string]tux.StyleRule{
		"h1": {
			Bold:       true,
			Foreground: "$purple",
		},
		"h2": {
			Bold: true,
		},
		"command": {
			Foreground: "$cyan",
		},
	},
	Tokens: map[string]string{
		"$purple": "#bd93f9",
		"$cyan":   "51",
	},
}

func printUsage(w io.Writer) error {
	t := tux.New()
	t.SetOut(w)
	t.SetStyleSheet(baseStyle)
	return t.PrintT(usageTmpl, usage)
}
