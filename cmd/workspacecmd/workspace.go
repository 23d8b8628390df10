// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package workspacecmd

import (
	"os"

	"github.com/luxfi/fleet/pkg/application"
	"github.com/spf13/cobra"
)

var (
	app *application.Fleet

	workingDir = os.Getwd
)

// NewCmds returns the init and build commands
func NewCmds(injectedApp *application.Fleet) []*cobra.Command {
	app = injectedApp
	return []*cobra.Command{
		newInitCmd(),
		newBuildCmd(),
	}
}
