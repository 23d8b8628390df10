// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package programcmd

import (
	"github.com/luxfi/fleet/cmd/flags"
	"github.com/luxfi/fleet/pkg/keypair"
	"github.com/luxfi/fleet/pkg/ux"
	"github.com/luxfi/fleet/pkg/workspace"
	"github.com/spf13/cobra"
)

// fleet show
func newShowCmd() *cobra.Command {
	opts := workspace.Options{}
	var programID string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Shows the on-chain state of a program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadWorkspace(); err != nil {
				return err
			}
			registry, err := app.Networks()
			if err != nil {
				return err
			}
			network, err := registry.Lookup(opts.Network)
			if err != nil {
				return err
			}
			if programID == "" {
				layout, err := app.Layout()
				if err != nil {
					return err
				}
				programID, err = keypair.ReadPublicKey(app.Fs, layout.ProgramPaths(opts.Program).ID)
				if err != nil {
					return err
				}
			}
			exists, err := app.Probe().ShowProgram(cmd.Context(), programID, network)
			if err != nil {
				return err
			}
			if exists {
				ux.Logger.GreenCheckmarkToUser("Program %s is deployed on %s", programID, network.Name)
			} else {
				ux.Logger.PrintToUser("Program %s is not deployed on %s", programID, network.Name)
			}
			return nil
		},
	}
	flags.AddProgramFlags(cmd, &opts, false)
	cmd.Flags().StringVar(&programID, "program-id", "", "program address (defaults to the address of target/deploy/<program>-keypair.json)")
	return cmd
}
