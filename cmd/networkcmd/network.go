// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networkcmd

import (
	"os"

	"github.com/luxfi/fleet/pkg/application"
	"github.com/luxfi/fleet/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var (
	app *application.Fleet

	workingDir = os.Getwd
)

// NewCmd creates the network command suite
func NewCmd(injectedApp *application.Fleet) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Inspect deployment networks",
		Long: `The network command lists the networks programs can be deployed to.

Localnet, devnet, testnet and mainnet are built in. Custom networks are
declared in Fleet.toml:

  [networks.staging]
  url = "https://rpc.staging.example"
  upgrade_authority = "<pubkey>"`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	cmd.AddCommand(newListCmd())
	return cmd
}
