// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workflow

import (
	"context"
	"fmt"

	"github.com/luxfi/fleet/pkg/statemachine"
	"github.com/luxfi/fleet/pkg/ux"
	"github.com/luxfi/fleet/pkg/workspace"
	"go.uber.org/zap"
)

// Deploy performs the first deployment of a program
type Deploy struct {
	machine
}

func NewDeploy(ws *workspace.Workspace, deps Deps) *Deploy {
	return &Deploy{machine: newMachine(ws, deps)}
}

// Run deploys the program unless it already exists on the network, in
// which case it stops in StateAlreadyDeployed and returns nil.
func (d *Deploy) Run(ctx context.Context) error {
	ws := d.ws
	ux.Logger.PrintToUser("Deploying program %s with version %s to %s", ws.Program, ws.DeployVersion, ws.Network.Name)
	ux.Logger.PrintToUser("Address: %s", ws.ProgramKey)

	d.sm.Transition(statemachine.StateAlreadyDeployedCheck)
	exists, err := d.deps.Probe.ShowProgram(ctx, ws.ProgramKey, ws.Network)
	if err != nil {
		return d.fail(err)
	}
	if exists {
		d.sm.Transition(statemachine.StateAlreadyDeployed)
		ux.Logger.PrintToUser("Program already deployed. Use 'fleet upgrade' if you want to upgrade the program.")
		return nil
	}

	if err := d.exec(ctx, statemachine.StateDeploying, "Deploying program", deployCmd(ws)); err != nil {
		return d.fail(err)
	}
	if err := d.exec(ctx, statemachine.StateAuthoritySet, "Setting upgrade authority", setUpgradeAuthorityCmd(ws)); err != nil {
		return d.fail(fmt.Errorf(
			"program %s is deployed but its upgrade authority is still the deployer key; run 'solana program set-upgrade-authority %s --new-upgrade-authority %s' manually: %w",
			ws.ProgramKey, ws.ProgramKey, ws.Network.UpgradeAuthority, err))
	}
	d.show(ctx)

	if ws.HasAnchor {
		if err := d.exec(ctx, statemachine.StateIdlInitialized, "Initializing IDL", idlInitCmd(ws)); err != nil {
			return d.fail(fmt.Errorf("program %s is deployed but its IDL was not initialized: %w", ws.ProgramKey, err))
		}
		if err := d.exec(ctx, statemachine.StateIdlAuthoritySet, "Setting IDL authority", idlSetAuthorityCmd(ws)); err != nil {
			return d.fail(fmt.Errorf("program %s is deployed but its IDL authority is still the deployer key: %w", ws.ProgramKey, err))
		}
	} else {
		d.deps.Log.Debug("no Anchor.toml, skipping IDL steps", zap.String("program", ws.Program))
	}

	if err := d.archive(); err != nil {
		return d.fail(fmt.Errorf("program %s is deployed but its artifacts were not archived to %s: %w",
			ws.ProgramKey, ws.ArtifactPaths.Dir, err))
	}

	d.sm.Transition(statemachine.StateDone)
	ux.Logger.GreenCheckmarkToUser("Deployment success!")
	return nil
}
