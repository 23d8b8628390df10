// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocks

import (
	"context"
	"strings"

	"github.com/luxfi/fleet/pkg/binutils"
)

// Runner is a scripted binutils.Runner. Commands not matching any script
// exit 0 with empty output.
type Runner struct {
	Calls   []binutils.Command
	scripts []script
	// OnRun, when set, is called before each command is answered
	OnRun func(binutils.Command)
}

type script struct {
	prefix string
	result binutils.Result
	err    error
}

// Script answers every command whose rendered form starts with prefix
func (r *Runner) Script(prefix string, result binutils.Result) *Runner {
	r.scripts = append(r.scripts, script{prefix: prefix, result: result})
	return r
}

// Fail makes commands starting with prefix fail to start with err
func (r *Runner) Fail(prefix string, err error) *Runner {
	r.scripts = append(r.scripts, script{prefix: prefix, err: err})
	return r
}

func (r *Runner) Run(_ context.Context, cmd binutils.Command) (binutils.Result, error) {
	r.Calls = append(r.Calls, cmd)
	if r.OnRun != nil {
		r.OnRun(cmd)
	}
	rendered := cmd.String()
	for _, s := range r.scripts {
		if strings.HasPrefix(rendered, s.prefix) {
			return s.result, s.err
		}
	}
	return binutils.Result{}, nil
}

// Steps renders each call as its binary and first two arguments, e.g.
// "solana program deploy"
func (r *Runner) Steps() []string {
	steps := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		parts := append([]string{c.Name}, c.Args...)
		if len(parts) > 3 {
			parts = parts[:3]
		}
		steps = append(steps, strings.Join(parts, " "))
	}
	return steps
}

// Count returns how many calls started with prefix
func (r *Runner) Count(prefix string) int {
	n := 0
	for _, c := range r.Calls {
		if strings.HasPrefix(c.String(), prefix) {
			n++
		}
	}
	return n
}

// Find returns the first call starting with prefix
func (r *Runner) Find(prefix string) (binutils.Command, bool) {
	for _, c := range r.Calls {
		if strings.HasPrefix(c.String(), prefix) {
			return c, true
		}
	}
	return binutils.Command{}, false
}
