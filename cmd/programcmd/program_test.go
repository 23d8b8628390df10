// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package programcmd

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/luxfi/fleet/internal/mocks"
	"github.com/luxfi/fleet/internal/testutils"
	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/keypair"
	"github.com/luxfi/fleet/pkg/prompts"
	promptmocks "github.com/luxfi/fleet/pkg/prompts/mocks"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const fleetToml = `deployer_keypair = "/keys/deployer.json"

[networks.devnet]
upgrade_authority = "AuthDevnet111"

[networks.mainnet]
upgrade_authority = "AuthMainnet111"
`

var notFound = binutils.Result{ExitCode: 1, Stderr: []byte("Error: Unable to find the account Prog111\n")}

func setupWorkspace(t *testing.T, runner *mocks.Runner) afero.Fs {
	t.Helper()
	require := require.New(t)
	injected, fs := testutils.SetupTestApp(t, runner)
	require.NoError(afero.WriteFile(fs, "/ws/Fleet.toml", []byte(fleetToml), 0o644))
	require.NoError(afero.WriteFile(fs, "/ws/programs/escrow/Cargo.toml",
		[]byte("[package]\nname = \"escrow\"\nversion = \"1.2.0\"\n"), 0o644))
	k, err := keypair.Generate()
	require.NoError(err)
	data, err := json.Marshal(k)
	require.NoError(err)
	require.NoError(afero.WriteFile(fs, "/ws/target/deploy/escrow-keypair.json", data, 0o600))
	require.NoError(afero.WriteFile(fs, "/ws/target/deploy/escrow.so", []byte("ELF"), 0o644))

	app = injected
	workingDir = testutils.WorkingDir
	t.Cleanup(func() { app = nil })
	return fs
}

func execute(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestDeployCmd(t *testing.T) {
	require := require.New(t)
	runner := (&mocks.Runner{}).Script("solana program show", notFound)
	fs := setupWorkspace(t, runner)

	require.NoError(execute(newDeployCmd(), "--program", "escrow"))
	require.Equal([]string{
		"solana program show",
		"solana program deploy",
		"solana program set-upgrade-authority",
		"solana program show",
	}, runner.Steps())
	exists, err := afero.Exists(fs, "/ws/artifacts/escrow/1.2.0/escrow.so")
	require.NoError(err)
	require.True(exists)
}

func TestDeployCmdUnknownNetwork(t *testing.T) {
	runner := &mocks.Runner{}
	setupWorkspace(t, runner)
	err := execute(newDeployCmd(), "-p", "escrow", "-n", "moonnet")
	require.ErrorIs(t, err, constants.ErrUnknownNetwork)
	require.Empty(t, runner.Calls)
}

func TestUpgradeCmdMissingCredential(t *testing.T) {
	t.Setenv(constants.EnvUpgradeAuthorityKeypair, "")
	runner := &mocks.Runner{}
	setupWorkspace(t, runner)

	err := execute(newUpgradeCmd(), "--program", "escrow")
	require.ErrorIs(t, err, constants.ErrMissingCredential)
	require.Empty(t, runner.Calls)
}

func TestUpgradeCmdFromEnv(t *testing.T) {
	require := require.New(t)
	t.Setenv(constants.EnvUpgradeAuthorityKeypair, "/keys/upgrade-authority.json")
	runner := &mocks.Runner{}
	setupWorkspace(t, runner)

	require.NoError(execute(newUpgradeCmd(), "--program", "escrow", "--version", "1.3.0"))
	switchCmd, ok := runner.Find("solana program deploy --buffer")
	require.True(ok)
	require.Contains(switchCmd.Args, "/keys/upgrade-authority.json")
}

func TestShowCmd(t *testing.T) {
	require := require.New(t)
	runner := &mocks.Runner{}
	setupWorkspace(t, runner)

	require.NoError(execute(newShowCmd(), "-p", "escrow", "--program-id", "Prog111"))
	require.Equal([]string{"solana program show"}, runner.Steps())
	show, _ := runner.Find("solana program show")
	require.Equal([]string{"program", "show", "Prog111", "--url", constants.DevnetRPC}, show.Args)
}

func TestDeployCmdMainnetRequiresConfirmation(t *testing.T) {
	require := require.New(t)
	t.Setenv(prompts.EnvNonInteractive, "1")
	runner := &mocks.Runner{}
	setupWorkspace(t, runner)
	prompter := &promptmocks.Prompter{}
	app.Prompt = prompter

	err := execute(newDeployCmd(), "-p", "escrow", "-n", "mainnet")
	require.ErrorIs(err, constants.ErrConfirmationRequired)
	require.Empty(runner.Calls)
	prompter.AssertNotCalled(t, "CaptureNoYes", mock.Anything)
}

func TestDeployCmdMainnetWithYes(t *testing.T) {
	require := require.New(t)
	t.Setenv(prompts.EnvNonInteractive, "1")
	runner := (&mocks.Runner{}).Script("solana program show", notFound)
	setupWorkspace(t, runner)
	prompter := &promptmocks.Prompter{}
	app.Prompt = prompter

	require.NoError(execute(newDeployCmd(), "-p", "escrow", "-n", "mainnet", "--yes"))
	deploy, ok := runner.Find("solana program deploy")
	require.True(ok)
	require.Contains(deploy.Args, constants.MainnetRPC)
	authority, ok := runner.Find("solana program set-upgrade-authority")
	require.True(ok)
	require.Contains(authority.Args, "AuthMainnet111")
	prompter.AssertNotCalled(t, "CaptureNoYes", mock.Anything)
}

func TestUpgradeCmdMainnetRequiresConfirmation(t *testing.T) {
	t.Setenv(prompts.EnvNonInteractive, "1")
	t.Setenv(constants.EnvUpgradeAuthorityKeypair, "/keys/upgrade-authority.json")
	runner := &mocks.Runner{}
	setupWorkspace(t, runner)

	err := execute(newUpgradeCmd(), "-p", "escrow", "-n", "mainnet", "-v", "1.3.0")
	require.ErrorIs(t, err, constants.ErrConfirmationRequired)
	require.Empty(t, runner.Calls)
}
