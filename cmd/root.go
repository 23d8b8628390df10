// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/fleet/cmd/networkcmd"
	"github.com/luxfi/fleet/cmd/programcmd"
	"github.com/luxfi/fleet/cmd/workspacecmd"
	"github.com/luxfi/fleet/pkg/application"
	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	app *application.Fleet

	Version   = "0.1.0"
	logLevel  string
	logger    luxlog.Logger = luxlog.NewNoOpLogger()
	setLevels               = func(luxlog.Level) {}
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "fleet",
		Long: `Fleet - deployment manager for on-chain programs.

Fleet deploys and upgrades programs built in a Cargo (optionally Anchor)
workspace and archives every published version under artifacts/.

COMMAND OVERVIEW:

  init        Write a default Fleet.toml at the Cargo workspace root
  build       Build all programs (anchor build, or cargo build-bpf)
  deploy      Deploy a program for the first time
  upgrade     Upgrade a deployed program through a staging buffer
  show        Show the on-chain state of a program
  network     List deployment networks

QUICK START:

  fleet init --upgrade-authority <pubkey>
  fleet build
  fleet deploy --program escrow --network devnet
  UPGRADE_AUTHORITY_KEYPAIR=~/authority.json fleet upgrade --program escrow`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level for the application")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	// add sub commands
	for _, c := range workspacecmd.NewCmds(app) {
		rootCmd.AddCommand(c)
	}
	for _, c := range programcmd.NewCmds(app) {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(networkcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	level, err := resolveLogLevel(cmd)
	if err != nil {
		return err
	}
	setLevels(level)
	app.Setup(logger, afero.NewOsFs(), binutils.NewExecRunner(logger, os.Stdout, os.Stderr))
	return nil
}

// resolveLogLevel gives --debug, --verbose and --quiet precedence over --log-level
func resolveLogLevel(cmd *cobra.Command) (luxlog.Level, error) {
	flags := cmd.Flags()
	name := logLevel
	switch {
	case flags.Changed("debug"):
		name = "debug"
	case flags.Changed("verbose"):
		name = "info"
	case flags.Changed("quiet"):
		name = "error"
	}
	level, err := luxlog.ToLevel(strings.ToUpper(name))
	if err != nil {
		return level, fmt.Errorf("invalid --log-level %q: %w", name, err)
	}
	return level, nil
}

func logDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), constants.BaseDirName, constants.LogDir)
	}
	return filepath.Join(home, constants.BaseDirName, constants.LogDir)
}

func setupLogging() (luxlog.Logger, func(), error) {
	config := luxlog.Config{}
	config.LogLevel, _ = luxlog.ToLevel("INFO")
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")
	config.Directory = logDir()
	if err := os.MkdirAll(config.Directory, constants.DefaultPerms755); err != nil {
		return nil, nil, fmt.Errorf("failed creating log directory: %w", err)
	}
	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	luxlog.RegisterInternalPackages("github.com/luxfi/fleet/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make(constants.LoggerName)
	if err != nil {
		factory.Close()
		return nil, nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	setLevels = func(level luxlog.Level) {
		factory.SetLogLevel(constants.LoggerName, level)
		factory.SetDisplayLevel(constants.LoggerName, level)
	}
	// create the user facing logger as a global var
	// User output goes to stdout, logs go to stderr
	ux.NewUserLog(log, os.Stdout)
	return log, func() { factory.Close() }, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	log, closeLogs, err := setupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
	logger = log
	rootCmd := NewRootCmd()
	ctx, cancel := binutils.InterruptContext(context.Background(), logger)
	err = rootCmd.ExecuteContext(ctx)
	cancel()
	closeLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
