// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package workspacecmd

import (
	"io"
	"testing"

	"github.com/luxfi/fleet/internal/mocks"
	"github.com/luxfi/fleet/internal/testutils"
	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/config"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, runner *mocks.Runner) afero.Fs {
	t.Helper()
	injected, fs := testutils.SetupTestApp(t, runner)
	app = injected
	workingDir = testutils.WorkingDir
	return fs
}

func execute(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestInitRequiresCargoRoot(t *testing.T) {
	setup(t, &mocks.Runner{})
	require.ErrorIs(t, execute(newInitCmd()), errNotCargoRoot)
}

func TestInitWritesConfig(t *testing.T) {
	require := require.New(t)
	fs := setup(t, &mocks.Runner{})
	require.NoError(afero.WriteFile(fs, "/ws/Cargo.toml", []byte("[workspace]\n"), 0o644))

	require.NoError(execute(newInitCmd(), "--upgrade-authority", "Auth111"))
	cfg, err := config.Load(fs, "/ws")
	require.NoError(err)
	require.Equal("Auth111", cfg.Networks["devnet"].UpgradeAuthority)

	require.Error(execute(newInitCmd()))
	require.NoError(execute(newInitCmd(), "--force"))
}

func TestBuildUsesAnchorWhenPresent(t *testing.T) {
	require := require.New(t)
	runner := &mocks.Runner{}
	fs := setup(t, runner)
	require.NoError(config.Write(fs, "/ws", config.Default("")))
	require.NoError(afero.WriteFile(fs, "/ws/Anchor.toml", []byte("[features]\n"), 0o644))

	require.NoError(execute(newBuildCmd()))
	require.Equal([]binutils.Command{{Name: "anchor", Args: []string{"build", "-v"}, Dir: "/ws"}}, runner.Calls)
}

func TestBuildFallsBackToCargo(t *testing.T) {
	require := require.New(t)
	runner := (&mocks.Runner{}).Script("cargo build-bpf", binutils.Result{ExitCode: 101})
	fs := setup(t, runner)
	require.NoError(config.Write(fs, "/ws", config.Default("")))

	require.ErrorIs(execute(newBuildCmd()), constants.ErrExternalCommand)
	require.Equal(1, runner.Count("cargo build-bpf"))
}
