// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package programcmd

import (
	"os"

	"github.com/luxfi/fleet/pkg/application"
	"github.com/spf13/cobra"
)

var (
	app *application.Fleet

	workingDir = os.Getwd
)

// NewCmds returns the deploy, upgrade and show commands
func NewCmds(injectedApp *application.Fleet) []*cobra.Command {
	app = injectedApp
	return []*cobra.Command{
		newDeployCmd(),
		newUpgradeCmd(),
		newShowCmd(),
	}
}

func loadWorkspace() error {
	dir, err := workingDir()
	if err != nil {
		return err
	}
	return app.LoadWorkspace(dir)
}
