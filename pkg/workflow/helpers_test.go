// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workflow

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/luxfi/fleet/internal/mocks"
	"github.com/luxfi/fleet/pkg/artifacts"
	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/keypair"
	"github.com/luxfi/fleet/pkg/models"
	"github.com/luxfi/fleet/pkg/probe"
	"github.com/luxfi/fleet/pkg/ux"
	"github.com/luxfi/fleet/pkg/workspace"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
)

const (
	upgradeAuthorityKeypair = "/keys/upgrade-authority.json"
	tempDir                 = "/tmp"
)

var notFound = binutils.Result{ExitCode: 1, Stderr: []byte("Error: Unable to find the account\n")}

// newTestWorkspace builds an "escrow" workspace with build outputs present
func newTestWorkspace(withAnchor bool) *workspace.Workspace {
	ux.NewUserLog(luxlog.NewNoOpLogger(), io.Discard)
	fs := afero.NewMemMapFs()
	layout := artifacts.NewLayout("/ws", "/ws/artifacts", withAnchor)
	paths := layout.ProgramPaths("escrow")

	programKeypair, err := keypair.Generate()
	if err != nil {
		panic(err)
	}
	id, err := json.Marshal(programKeypair)
	if err != nil {
		panic(err)
	}
	must(afero.WriteFile(fs, paths.Bin, []byte("ELF"), 0o644))
	must(afero.WriteFile(fs, paths.ID, id, 0o600))
	must(afero.WriteFile(fs, paths.IDL, []byte(`{"name":"escrow"}`), 0o644))
	must(fs.MkdirAll(tempDir, 0o755))

	return &workspace.Workspace{
		Fs:            fs,
		Root:          "/ws",
		Program:       "escrow",
		DeployVersion: "1.2.0",
		Network: models.NetworkConfig{
			Name:             "devnet",
			Kind:             models.Devnet,
			RPCURL:           constants.DevnetRPC,
			UpgradeAuthority: "AuthDevnet111",
		},
		ProgramPaths:  paths,
		ArtifactPaths: layout.ArtifactPaths("escrow", "1.2.0"),
		DeployerPath:  "/keys/deployer.json",
		ProgramKey:    programKeypair.PublicKey(),
		HasAnchor:     withAnchor,
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func newDeps(ws *workspace.Workspace, runner *mocks.Runner) Deps {
	log := luxlog.NewNoOpLogger()
	return Deps{
		Runner:   runner,
		Probe:    probe.New(runner, log),
		Archiver: artifacts.NewArchiver(ws.Fs, log),
		Log:      log,
	}
}

type failingArchiver struct{}

func (failingArchiver) Archive(artifacts.ProgramPaths, artifacts.ArtifactPaths, artifacts.Release) error {
	return errors.Join(constants.ErrIO, errors.New("disk full"))
}

// bufferPathOf returns the --buffer argument of a write-buffer command
func bufferPathOf(cmd binutils.Command) string {
	return valueOf(cmd, "--buffer")
}

func valueOf(cmd binutils.Command, flag string) string {
	for i, arg := range cmd.Args {
		if arg == flag && i+1 < len(cmd.Args) {
			return cmd.Args[i+1]
		}
	}
	return ""
}
