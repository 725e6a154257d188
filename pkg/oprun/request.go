// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package oprun

import (
	"github.com/pkg/errors"
)

// ErrEmptyCommand is returned by NewRequest when there is nothing to run.
var ErrEmptyCommand = errors.New("no command specified")

// Request is a single delegation: the env file handed to `op run` and the
// user's command line. It is not modified after construction.
type Request struct {
	envFile string
	command []string
}

func NewRequest(envFile string, command []string) (Request, error) {
	if len(command) == 0 {
		return Request{}, ErrEmptyCommand
	}
	return Request{
		envFile: envFile,
		command: append([]string(nil), command...),
	}, nil
}

func (r Request) EnvFile() string {
	return r.envFile
}

func (r Request) Command() []string {
	return append([]string(nil), r.command...)
}

// Args returns the arguments that follow the op binary name:
//
//	run --env-file=<path> -- <command> [args...]
//
// The env file path stays a single argument no matter what characters it
// contains; nothing is passed through a shell.
func (r Request) Args() []string {
	args := make([]string, 0, len(r.command)+3)
	args = append(args, "run", "--env-file="+r.envFile, "--")
	return append(args, r.command...)
}
