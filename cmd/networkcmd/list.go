// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networkcmd

import (
	"errors"

	"github.com/luxfi/fleet/pkg/config"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/networks"
	"github.com/luxfi/fleet/pkg/ux"
	"github.com/spf13/cobra"
)

// fleet network list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists built-in and configured networks",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return listNetworks()
		},
	}
}

func listNetworks() error {
	entries := map[string]config.NetworkEntry{}
	dir, err := workingDir()
	if err != nil {
		return err
	}
	switch err := app.LoadWorkspace(dir); {
	case err == nil:
		entries = app.Conf.Networks
	case errors.Is(err, constants.ErrConfigNotFound):
		ux.Logger.PrintToUser("No %s found, showing built-in networks only", constants.ConfigFileName)
	default:
		return err
	}
	registry, err := networks.NewRegistry(entries)
	if err != nil {
		return err
	}
	table := ux.DefaultTable(ux.Logger.Writer(), "Name", "Kind", "RPC URL", "Upgrade Authority")
	for _, n := range registry.List() {
		authority := n.UpgradeAuthority
		if authority == "" {
			authority = "-"
		}
		if err := table.Append([]string{n.Name, n.Kind.String(), n.RPCURL, authority}); err != nil {
			return err
		}
	}
	return table.Render()
}
