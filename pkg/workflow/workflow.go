// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package workflow sequences the external commands that deploy or upgrade
// a program. Every step blocks until its command exits and the first
// failure aborts the remaining steps; nothing is retried or rolled back.
package workflow

import (
	"context"

	"github.com/luxfi/fleet/pkg/artifacts"
	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/probe"
	"github.com/luxfi/fleet/pkg/statemachine"
	"github.com/luxfi/fleet/pkg/ux"
	"github.com/luxfi/fleet/pkg/workspace"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// Archiver stores the build outputs of a finished workflow
type Archiver interface {
	Archive(src artifacts.ProgramPaths, dst artifacts.ArtifactPaths, rel artifacts.Release) error
}

// Deps are the collaborators shared by both workflows
type Deps struct {
	Runner   binutils.Runner
	Probe    probe.Prober
	Archiver Archiver
	Log      luxlog.Logger
}

type machine struct {
	ws   *workspace.Workspace
	deps Deps
	sm   *statemachine.Tracker
	// attempt is the state the running step enters on success
	attempt    statemachine.StateType
	failedStep statemachine.StateType
}

func newMachine(ws *workspace.Workspace, deps Deps) machine {
	if deps.Log == nil {
		deps.Log = luxlog.NewNoOpLogger()
	}
	return machine{ws: ws, deps: deps, sm: statemachine.NewTracker(deps.Log)}
}

// State returns the state the workflow is in
func (m *machine) State() statemachine.StateType {
	return m.sm.Current()
}

// History returns every state the workflow entered, in order
func (m *machine) History() []statemachine.StateType {
	return m.sm.History()
}

// FailedStep returns the step that was running when the workflow failed,
// or StateUnknown if it has not failed.
func (m *machine) FailedStep() statemachine.StateType {
	return m.failedStep
}

func (m *machine) fail(err error) error {
	m.failedStep = m.attempt
	if m.failedStep == statemachine.StateUnknown {
		m.failedStep = m.sm.Current()
	}
	m.sm.Transition(statemachine.StateFailed)
	m.deps.Log.Error("workflow failed",
		zap.String("program", m.ws.Program),
		zap.Stringer("step", m.failedStep),
		zap.Error(err))
	return err
}

func (m *machine) enter(next statemachine.StateType) {
	m.attempt = statemachine.StateUnknown
	m.sm.Transition(next)
}

// exec runs one step and enters next when its command succeeds
func (m *machine) exec(ctx context.Context, next statemachine.StateType, header string, cmd binutils.Command) error {
	m.attempt = next
	st := ux.NewStepTracker(ux.Logger)
	st.Start(header)
	res, err := m.deps.Runner.Run(ctx, cmd)
	if err := binutils.Check(cmd, res, err); err != nil {
		st.Failed(err.Error())
		return err
	}
	st.Complete()
	m.enter(next)
	return nil
}

// show prints the current program state. Its result only informs the operator.
func (m *machine) show(ctx context.Context) {
	if _, err := m.deps.Probe.ShowProgram(ctx, m.ws.ProgramKey, m.ws.Network); err != nil {
		m.deps.Log.Warn("could not show program state", zap.Error(err))
	}
}

func (m *machine) archive() error {
	m.attempt = statemachine.StateArtifactsCopied
	st := ux.NewStepTracker(ux.Logger)
	st.Start("Copying artifacts")
	if err := m.deps.Archiver.Archive(m.ws.ProgramPaths, m.ws.ArtifactPaths, m.ws.Release()); err != nil {
		st.Failed(err.Error())
		return err
	}
	st.Complete()
	m.enter(statemachine.StateArtifactsCopied)
	return nil
}
