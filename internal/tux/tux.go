// Copyright 2022 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package tux

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

type Tux struct {
	outWriter  io.Writer
	styleSheet StyleSheet
}

func New() *Tux {
	return &Tux{outWriter: os.Stdout}
}

func (tux *Tux) SetOut(w io.Writer) {
	tux.outWriter = w
}

func (tux *Tux) SetStyleSheet(styleSheet StyleSheet) {
	tux.styleSheet = styleSheet
}

// PrintT renders text as a template against data. The "style" function
// colors a string only when the output writer is a terminal that supports it.
func (tux *Tux) PrintT(text string, data any) error {
	renderer := lipgloss.NewRenderer(tux.outWriter)
	templateFuncs := template.FuncMap{
		"style": StyleFunc(renderer, tux.styleSheet),
	}
	tpl, err := template.New("tpl").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(tpl.Execute(tux.outWriter, data))
}

// WriteError prints a single user-facing error line prefixed with "Error:".
func WriteError(w io.Writer, format string, a ...any) error {
	prefix := color.New(color.FgRed, color.Bold).Sprint("Error:")
	_, err := fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, a...))
	return errors.WithStack(err)
}

// WriteHint prints a follow-up line, typically remediation advice under an
// error.
func WriteHint(w io.Writer, format string, a ...any) error {
	hintPrintfFunc := color.New(color.FgHiCyan).SprintfFunc()
	_, err := io.WriteString(w, hintPrintfFunc(format, a...)+"\n")
	return errors.WithStack(err)
}
