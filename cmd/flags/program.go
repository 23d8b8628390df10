// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	programFlag = "program"
	versionFlag = "version"
	networkFlag = "network"
)

// AddProgramFlags binds --program, --network and, when withVersion is set,
// --version to opts
func AddProgramFlags(cmd *cobra.Command, opts *workspace.Options, withVersion bool) {
	fs := pflag.NewFlagSet("program", pflag.ContinueOnError)
	fs.StringVarP(&opts.Program, programFlag, "p", "", "name of the program in target/deploy/<program>.so")
	fs.StringVarP(&opts.Network, networkFlag, "n", constants.DefaultNetwork, "network to deploy to")
	if withVersion {
		fs.StringVarP(&opts.Version, versionFlag, "v", "", "version to publish (defaults to the program's Cargo.toml version)")
	}
	cmd.Flags().AddFlagSet(fs)
	_ = cmd.MarkFlagRequired(programFlag)
}

// AddConfirmFlag binds --yes, which skips the mainnet confirmation prompt
func AddConfirmFlag(cmd *cobra.Command, yes *bool) {
	cmd.Flags().BoolVarP(yes, "yes", "y", false, "do not ask for confirmation before changing a mainnet program")
}
