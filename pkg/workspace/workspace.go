// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/luxfi/fleet/pkg/artifacts"
	"github.com/luxfi/fleet/pkg/config"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/keypair"
	"github.com/luxfi/fleet/pkg/models"
	"github.com/luxfi/fleet/pkg/networks"
	"github.com/luxfi/fleet/pkg/version"
	"github.com/spf13/afero"
)

// Options select what a single deploy or upgrade acts on
type Options struct {
	Program string
	// Version overrides the version declared in the program's Cargo.toml
	Version string
	Network string
}

// Workspace is the read-only context of one deploy or upgrade
type Workspace struct {
	Fs            afero.Fs
	Root          string
	Program       string
	DeployVersion version.Version
	Network       models.NetworkConfig
	ProgramPaths  artifacts.ProgramPaths
	ArtifactPaths artifacts.ArtifactPaths
	DeployerPath  string
	ProgramKey    string
	HasAnchor     bool
}

// New resolves version, network and paths for opts in the workspace at root
func New(fs afero.Fs, root string, cfg *config.Config, opts Options) (*Workspace, error) {
	if opts.Program == "" {
		return nil, fmt.Errorf("program name is required")
	}
	registry, err := networks.NewRegistry(cfg.Networks)
	if err != nil {
		return nil, err
	}
	network, err := registry.Resolve(opts.Network)
	if err != nil {
		return nil, err
	}
	v, err := version.Resolve(fs, opts.Version, version.ManifestPath(fs, root, opts.Program))
	if err != nil {
		return nil, err
	}
	deployer, err := cfg.DeployerPath(root)
	if err != nil {
		return nil, err
	}
	artifactRoot, err := cfg.ArtifactRoot(root)
	if err != nil {
		return nil, err
	}
	hasAnchor, _ := afero.Exists(fs, filepath.Join(root, constants.AnchorManifestName))
	layout := artifacts.NewLayout(root, artifactRoot, hasAnchor)
	programPaths := layout.ProgramPaths(opts.Program)

	programKey, err := keypair.ReadPublicKey(fs, programPaths.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read program keypair %s, run 'fleet build' first: %w",
			constants.ErrIO, programPaths.ID, err)
	}

	return &Workspace{
		Fs:            fs,
		Root:          root,
		Program:       opts.Program,
		DeployVersion: v,
		Network:       network,
		ProgramPaths:  programPaths,
		ArtifactPaths: layout.ArtifactPaths(opts.Program, v),
		DeployerPath:  deployer,
		ProgramKey:    programKey,
		HasAnchor:     hasAnchor,
	}, nil
}

// Release builds the provenance record for the current version
func (w *Workspace) Release() artifacts.Release {
	commit, dirty := artifacts.GitState(w.Root)
	return artifacts.Release{
		Program:   w.Program,
		Version:   w.DeployVersion.String(),
		Network:   w.Network.Name,
		ProgramID: w.ProgramKey,
		GitCommit: commit,
		GitDirty:  dirty,
	}
}
