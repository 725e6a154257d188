// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package oprun

//go:generate mockgen -source=system.go -destination=mocks/mock_system.go -package=mocks System

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// System is the process environment a Runner works against: resolving an
// executable by name and running a prepared command to completion.
type System interface {
	LookPath(name string) (string, error)
	Run(cmd *exec.Cmd) error
}

// OSSystem implements System with os/exec.
type OSSystem struct{}

var _ System = OSSystem{}

func (OSSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run starts cmd and waits for it to exit. While the child runs, termination
// signals sent to this process are passed on to the child so that it, not
// opx, decides how to shut down. SIGINT is only swallowed: a terminal
// already delivers it to the child's process group, and forwarding it would
// interrupt the child twice.
func (OSSystem) Run(cmd *exec.Cmd) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	defer signal.Stop(sigs)

	if err := cmd.Start(); err != nil {
		return errors.WithStack(err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-sigs:
				if sig == os.Interrupt {
					continue
				}
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	return cmd.Wait()
}
