// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package programcmd

import (
	"context"

	"github.com/luxfi/fleet/cmd/flags"
	"github.com/luxfi/fleet/pkg/prompts"
	"github.com/luxfi/fleet/pkg/workflow"
	"github.com/luxfi/fleet/pkg/workspace"
	"github.com/spf13/cobra"
)

// fleet deploy
func newDeployCmd() *cobra.Command {
	opts := workspace.Options{}
	var yes bool
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploys a program",
		Long: `The deploy command publishes a program to a network for the first time.

It deploys target/deploy/<program>.so with the deployer keypair, hands the
upgrade authority over to the one configured for the network in Fleet.toml,
initializes the IDL when the workspace uses Anchor, and archives the build
under artifacts/<program>/<version>.

If the program already exists on the network nothing is changed; use
'fleet upgrade' instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deployProgram(cmd.Context(), opts, yes)
		},
	}
	flags.AddProgramFlags(cmd, &opts, true)
	flags.AddConfirmFlag(cmd, &yes)
	return cmd
}

func deployProgram(ctx context.Context, opts workspace.Options, yes bool) error {
	if err := loadWorkspace(); err != nil {
		return err
	}
	ws, err := app.NewWorkspace(opts)
	if err != nil {
		return err
	}
	if err := prompts.ConfirmNetwork(app.Prompt, ws.Network, "Deploy "+ws.Program, yes); err != nil {
		return err
	}
	return workflow.NewDeploy(ws, app.WorkflowDeps()).Run(ctx)
}
