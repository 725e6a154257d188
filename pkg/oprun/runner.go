// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package oprun hands a command to the 1Password CLI (`op run`) together with
// an env file, and reports the command's exit code as its own.
package oprun

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"go.jetify.com/opx/internal/logging"
	"go.jetify.com/opx/internal/tux"
)

const (
	// DefaultBin is the 1Password CLI executable name.
	DefaultBin = "op"
	// InstallURL is where users are sent when op cannot be found.
	InstallURL = "https://developer.1password.com/docs/cli/get-started/"
)

// Runner delegates one Request at a time to op. Zero-valued fields fall back
// to op on PATH, the process's own standard streams, and OSSystem.
type Runner struct {
	Bin    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	System System
	Logger *log.Logger
}

// Run executes `op run --env-file=<file> -- <command>` with the caller's
// standard streams and blocks until it exits. The returned value is the
// exit code opx should exit with: op's own code when it has one, 1 when op
// is missing, failed to start, or was killed by a signal.
func (r *Runner) Run(ctx context.Context, req Request) int {
	bin := r.bin()
	sys := r.system()
	logger := r.logger()

	path, err := sys.LookPath(bin)
	if err != nil {
		logger.Debug("op lookup failed", "bin", bin, "err", err)
		_ = tux.WriteError(r.stderr(), "1Password CLI (%s) is not installed.", bin)
		_ = tux.WriteHint(r.stderr(), "Install it from: %s", InstallURL)
		return 1
	}

	// #nosec G204 - arguments are passed as argv, never through a shell
	cmd := exec.CommandContext(ctx, path)
	cmd.Args = append([]string{bin}, req.Args()...)
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	logger.Debug("delegating", "path", path, "args", cmd.Args)

	code, err := exitCode(sys.Run(cmd))
	if err != nil {
		_ = tux.WriteError(r.stderr(), "failed to run %s: %v", bin, err)
	}
	logger.Debug("op exited", "code", code)
	return code
}

// exitCode maps the result of running op to opx's exit code. The returned
// error is non-nil only when op could not be run at all.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// Terminated by a signal; there is no code to forward.
		return 1, nil
	}
	return 1, err
}

func (r *Runner) bin() string {
	if r.Bin == "" {
		return DefaultBin
	}
	return r.Bin
}

func (r *Runner) system() System {
	if r.System == nil {
		return OSSystem{}
	}
	return r.System
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return logging.Discard()
	}
	return r.Logger
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin == nil {
		return os.Stdin
	}
	return r.Stdin
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}
