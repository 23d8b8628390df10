// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/luxfi/fleet/pkg/constants"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// Command is a single invocation of an external binary
type Command struct {
	Name string
	Args []string
	Dir  string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result holds the exit status and captured streams of a finished command
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Output returns stdout followed by stderr
func (r Result) Output() string {
	return string(r.Stdout) + string(r.Stderr)
}

// Runner executes external commands. The returned error is reserved for
// commands that could not be started at all or were stopped by ctx; a
// non-zero exit is reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// CommandError is returned by Check when a command exits non-zero
type CommandError struct {
	Command  Command
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%q exited with status %d", e.Command.String(), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (*CommandError) Is(target error) bool {
	return target == constants.ErrExternalCommand
}

// Check folds a start failure or non-zero exit into a single error
func Check(cmd Command, res Result, err error) error {
	if err != nil {
		return fmt.Errorf("%w: could not run %q: %w", constants.ErrExternalCommand, cmd.String(), err)
	}
	if res.ExitCode != 0 {
		return &CommandError{
			Command:  cmd,
			ExitCode: res.ExitCode,
			Stderr:   strings.TrimSpace(string(res.Stderr)),
		}
	}
	return nil
}

// ExecRunner runs commands with os/exec, teeing their output to the operator
type ExecRunner struct {
	log    luxlog.Logger
	stdout io.Writer
	stderr io.Writer
}

func NewExecRunner(log luxlog.Logger, stdout, stderr io.Writer) *ExecRunner {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &ExecRunner{log: log, stdout: stdout, stderr: stderr}
}

func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	var outBuf, errBuf bytes.Buffer
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // G204: arguments come from the workspace
	c.Dir = cmd.Dir
	c.Stdout = io.MultiWriter(&outBuf, r.stdout)
	c.Stderr = io.MultiWriter(&errBuf, r.stderr)

	r.log.Debug("running command", zap.String("cmd", cmd.String()), zap.String("dir", cmd.Dir))
	err := c.Run()
	res := Result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			r.log.Debug("command interrupted", zap.String("cmd", cmd.Name), zap.Error(ctxErr))
			return res, fmt.Errorf("%q interrupted: %w", cmd.String(), ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			r.log.Debug("command exited non-zero", zap.String("cmd", cmd.Name), zap.Int("exit-code", res.ExitCode))
			return res, nil
		}
		return res, err
	}
	return res, nil
}
