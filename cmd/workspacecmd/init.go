// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package workspacecmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/luxfi/fleet/pkg/config"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/ux"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var errNotCargoRoot = errors.New("Cargo.toml does not exist in the current working directory. Ensure that you are at the Cargo workspace root") //nolint:stylecheck

// fleet init
func newInitCmd() *cobra.Command {
	var (
		upgradeAuthority string
		force            bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initializes a new Fleet workspace",
		Long: `The init command writes a default Fleet.toml at the root of a Cargo
workspace, listing the built-in networks. Set upgrade_authority for every
network you deploy to before running 'fleet deploy'.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return initWorkspace(upgradeAuthority, force)
		},
	}
	cmd.Flags().StringVar(&upgradeAuthority, "upgrade-authority", "", "upgrade authority written for every built-in network")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing "+constants.ConfigFileName)
	return cmd
}

func initWorkspace(upgradeAuthority string, force bool) error {
	dir, err := workingDir()
	if err != nil {
		return err
	}
	if ok, _ := afero.Exists(app.Fs, filepath.Join(dir, constants.CargoManifestName)); !ok {
		return errNotCargoRoot
	}
	configPath := filepath.Join(dir, constants.ConfigFileName)
	if ok, _ := afero.Exists(app.Fs, configPath); ok && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite it", configPath)
	}
	if err := config.Write(app.Fs, dir, config.Default(upgradeAuthority)); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Wrote %s", configPath)
	if upgradeAuthority == "" {
		ux.Logger.PrintToUser("Set upgrade_authority for each network in %s before deploying", constants.ConfigFileName)
	}
	return nil
}
