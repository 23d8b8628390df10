// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workflow

import (
	"context"
	"fmt"

	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/keypair"
	"github.com/luxfi/fleet/pkg/statemachine"
	"github.com/luxfi/fleet/pkg/ux"
	"github.com/luxfi/fleet/pkg/workspace"
	"go.uber.org/zap"
)

type UpgradeOptions struct {
	// UpgradeAuthorityKeypair signs the switch to the new buffer
	UpgradeAuthorityKeypair string
	// TempDir holds the staging buffer keypair; empty means the system default
	TempDir string
}

// Validate fails with ErrMissingCredential when no upgrade authority keypair is set
func (o UpgradeOptions) Validate() error {
	if o.UpgradeAuthorityKeypair == "" {
		return constants.ErrMissingCredential
	}
	return nil
}

// Upgrade replaces the code of a deployed program through a staging buffer
type Upgrade struct {
	machine
	opts   UpgradeOptions
	buffer string
}

func NewUpgrade(ws *workspace.Workspace, deps Deps, opts UpgradeOptions) *Upgrade {
	return &Upgrade{machine: newMachine(ws, deps), opts: opts}
}

// BufferAddress is the staging buffer of the last run, empty before one was generated
func (u *Upgrade) BufferAddress() string {
	return u.buffer
}

func (u *Upgrade) checkPreconditions(ctx context.Context) error {
	ws := u.ws
	if ws.ArtifactPaths.Exists(ws.Fs) {
		return fmt.Errorf("%w (%s)", constants.ErrDuplicateVersion, ws.ArtifactPaths.Dir)
	}
	exists, err := u.deps.Probe.ShowProgram(ctx, ws.ProgramKey, ws.Network)
	if err != nil {
		return err
	}
	if !exists {
		return constants.ErrProgramNotDeployed
	}
	u.sm.Transition(statemachine.StatePreconditionsChecked)
	return nil
}

// Run stages the new binary in a fresh buffer and switches the program to
// it. Failures before the switch leave the live program untouched.
func (u *Upgrade) Run(ctx context.Context) error {
	ws := u.ws
	if err := u.opts.Validate(); err != nil {
		return u.fail(err)
	}
	ux.Logger.PrintToUser("Upgrading program %s with version %s on %s", ws.Program, ws.DeployVersion, ws.Network.Name)

	if err := u.checkPreconditions(ctx); err != nil {
		return u.fail(err)
	}

	bufferKeypair, err := keypair.Generate()
	if err != nil {
		return u.fail(err)
	}
	bufferFile, err := keypair.WriteTemp(ws.Fs, u.opts.TempDir, bufferKeypair)
	if err != nil {
		return u.fail(err)
	}
	defer func() {
		if err := bufferFile.Remove(); err != nil {
			u.deps.Log.Error("could not remove staging keypair", zap.String("path", bufferFile.Path), zap.Error(err))
		}
	}()
	u.buffer = bufferKeypair.PublicKey()
	ux.Logger.PrintToUser("Buffer Pubkey: %s", u.buffer)

	if err := u.exec(ctx, statemachine.StateBufferWritten, "Writing buffer", writeBufferCmd(ws, bufferFile.Path)); err != nil {
		return u.fail(fmt.Errorf("program unaffected, writing buffer failed: %w", err))
	}
	if err := u.exec(ctx, statemachine.StateBufferAuthoritySet, "Setting buffer authority", setBufferAuthorityCmd(ws, u.buffer)); err != nil {
		return u.fail(fmt.Errorf("program unaffected; close buffer %s with 'solana program close %s' to reclaim its rent: %w",
			u.buffer, u.buffer, err))
	}
	if err := u.exec(ctx, statemachine.StateSwitched, "Switching to new buffer (please connect your wallet)",
		deployFromBufferCmd(ws, u.buffer, u.opts.UpgradeAuthorityKeypair)); err != nil {
		return u.fail(fmt.Errorf("%w (program %s, buffer %s): %w", constants.ErrSwitchFailed, ws.ProgramKey, u.buffer, err))
	}
	u.show(ctx)

	if ws.HasAnchor {
		u.updateIDL(ctx)
	}

	if err := u.archive(); err != nil {
		return u.fail(fmt.Errorf("program %s now runs version %s but its artifacts were not archived to %s: %w",
			ws.ProgramKey, ws.DeployVersion, ws.ArtifactPaths.Dir, err))
	}

	u.sm.Transition(statemachine.StateDone)
	ux.Logger.GreenCheckmarkToUser("Deployment success!")
	return nil
}

// updateIDL stages the new interface description. Finalizing it with
// `anchor idl set-buffer` is left to the operator.
func (u *Upgrade) updateIDL(ctx context.Context) {
	ws := u.ws
	if err := u.exec(ctx, statemachine.StateIdlUpdated, "Uploading new IDL", idlWriteBufferCmd(ws)); err != nil {
		ux.Logger.PrintWarning("could not upload the new IDL, the program upgrade itself succeeded: %s", err)
		return
	}
	ux.Logger.PrintWarning("please manually run 'anchor idl set-buffer %s --buffer <BUFFER>'", ws.ProgramKey)
}
