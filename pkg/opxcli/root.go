// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package opxcli

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.jetify.com/opx/internal/logging"
	"go.jetify.com/opx/internal/tux"
	"go.jetify.com/opx/pkg/envfile"
	"go.jetify.com/opx/pkg/oprun"
)

var helpFlags = []string{"--help", "-h"}

// exitError carries an exit code through cobra without a message; whatever
// needed saying has already been written.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func RootCmd(cfg *config) *cobra.Command {
	command := &cobra.Command{
		Use:   "opx <command> [args...]",
		Short: "Run a command through `op run` with the nearest .env file",
		Long: heredoc.Doc(`
			Run a command through the 1Password CLI using the nearest .env file.

			opx looks for a .env file in the current directory and each parent
			directory, then runs: op run --env-file=<path> -- <command> [args...]
		`),
		// Every argument, flags included, belongs to the delegated command.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmdFunc(cmd, args, cfg)
		},
		// we're manually showing usage
		SilenceUsage: true,
		// Execute prints errors itself
		SilenceErrors: true,
	}
	return command
}

func rootCmdFunc(cmd *cobra.Command, args []string, cfg *config) error {
	if len(args) == 0 {
		if err := printUsage(cmd.ErrOrStderr()); err != nil {
			return err
		}
		return &exitError{code: 1}
	}

	switch {
	case lo.Contains(helpFlags, args[0]):
		return printUsage(cmd.OutOrStdout())
	case args[0] == "--version":
		return printVersion(cmd.OutOrStdout(), args[1:])
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.logLevel)

	workingDir := cfg.workingDir
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.WithStack(err)
		}
		workingDir = wd
	}

	locator := &envfile.Locator{Logger: logger}
	envFile, err := locator.Locate(workingDir)
	if errors.Is(err, envfile.ErrNotFound) {
		_ = tux.WriteError(cmd.ErrOrStderr(), "No .env file found in current directory or any parent directory.")
		return &exitError{code: 1}
	} else if err != nil {
		return err
	}

	req, err := oprun.NewRequest(envFile, args)
	if err != nil {
		return err
	}

	runner := &oprun.Runner{
		Bin:    cfg.opBin,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: logger,
	}
	if code := runner.Run(cmd.Context(), req); code != 0 {
		return &exitError{code: code}
	}
	return nil
}

func Execute(ctx context.Context) int {
	return execute(ctx, RootCmd(configFromEnv()))
}

func execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	_ = tux.WriteError(cmd.ErrOrStderr(), "%s", err)
	return 1
}
