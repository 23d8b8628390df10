// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package workspacecmd

import (
	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/cobra"
)

// fleet build
func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Builds all programs (uses Anchor when available)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := workingDir()
			if err != nil {
				return err
			}
			if err := app.LoadWorkspace(dir); err != nil {
				return err
			}
			build := buildCommand()
			res, err := app.Runner.Run(cmd.Context(), build)
			return binutils.Check(build, res, err)
		},
	}
}

func buildCommand() binutils.Command {
	if app.HasAnchor() {
		ux.Logger.PrintToUser("%s", luxlog.Green.Wrap("Anchor found! Running 'anchor build -v'."))
		return binutils.Command{Name: constants.AnchorCmd, Args: []string{"build", "-v"}, Dir: app.GetRoot()}
	}
	ux.Logger.PrintToUser("%s", luxlog.Yellow.Wrap("Anchor.toml not found in workspace root. Running 'cargo build-bpf'."))
	return binutils.Command{Name: constants.CargoCmd, Args: []string{"build-bpf"}, Dir: app.GetRoot()}
}
