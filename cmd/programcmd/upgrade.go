// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package programcmd

import (
	"context"

	"github.com/luxfi/fleet/cmd/flags"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/prompts"
	"github.com/luxfi/fleet/pkg/workflow"
	"github.com/luxfi/fleet/pkg/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const upgradeAuthorityKeypairFlag = "upgrade-authority-keypair"

// fleet upgrade
func newUpgradeCmd() *cobra.Command {
	opts := workspace.Options{}
	var yes bool
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrades a program",
		Long: `The upgrade command replaces the code of a deployed program.

The new binary is written to a fresh buffer with the deployer keypair, the
buffer authority is handed to the network's upgrade authority, and the
program is switched to the buffer with the upgrade authority keypair given
by --upgrade-authority-keypair or the UPGRADE_AUTHORITY_KEYPAIR environment
variable.

Versions that were already archived are refused; bump the version in the
program's Cargo.toml first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return upgradeProgram(cmd.Context(), opts, workflow.UpgradeOptions{
				UpgradeAuthorityKeypair: viper.GetString(constants.ConfigUpgradeAuthKey),
			}, yes)
		},
	}
	flags.AddProgramFlags(cmd, &opts, true)
	flags.AddConfirmFlag(cmd, &yes)
	cmd.Flags().String(upgradeAuthorityKeypairFlag, "", "keypair signing the switch to the new buffer")
	_ = viper.BindPFlag(constants.ConfigUpgradeAuthKey, cmd.Flags().Lookup(upgradeAuthorityKeypairFlag))
	_ = viper.BindEnv(constants.ConfigUpgradeAuthKey, constants.EnvUpgradeAuthorityKeypair)
	return cmd
}

func upgradeProgram(ctx context.Context, opts workspace.Options, upgradeOpts workflow.UpgradeOptions, yes bool) error {
	if err := upgradeOpts.Validate(); err != nil {
		return err
	}
	if err := loadWorkspace(); err != nil {
		return err
	}
	ws, err := app.NewWorkspace(opts)
	if err != nil {
		return err
	}
	if err := prompts.ConfirmNetwork(app.Prompt, ws.Network, "Upgrade "+ws.Program, yes); err != nil {
		return err
	}
	return workflow.NewUpgrade(ws, app.WorkflowDeps(), upgradeOpts).Run(ctx)
}
