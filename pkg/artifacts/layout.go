// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package artifacts

import (
	"path/filepath"

	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/version"
	"github.com/spf13/afero"
)

// ProgramPaths locate the latest local build output of a program
type ProgramPaths struct {
	Bin string
	ID  string
	IDL string
}

// ArtifactPaths locate the archived copy of one program version. IDL is
// empty for programs built without an interface description.
type ArtifactPaths struct {
	Dir string
	Bin string
	ID  string
	IDL string
}

func (p ArtifactPaths) files() []string {
	files := []string{p.Bin, p.ID}
	if p.IDL != "" {
		files = append(files, p.IDL)
	}
	return files
}

// Exists reports whether every archived file of the version is present
func (p ArtifactPaths) Exists(fs afero.Fs) bool {
	for _, f := range p.files() {
		if ok, err := afero.Exists(fs, f); err != nil || !ok {
			return false
		}
	}
	return true
}

// Layout computes build output and artifact paths for a workspace
type Layout struct {
	root         string
	artifactRoot string
	withIDL      bool
}

// NewLayout returns the layout of the workspace at root. withIDL is set
// for workspaces that produce interface descriptions (Anchor).
func NewLayout(root, artifactRoot string, withIDL bool) *Layout {
	return &Layout{root: root, artifactRoot: artifactRoot, withIDL: withIDL}
}

func (l *Layout) ProgramPaths(program string) ProgramPaths {
	deployDir := filepath.Join(l.root, constants.BuildOutputDir, constants.DeployOutputDir)
	return ProgramPaths{
		Bin: filepath.Join(deployDir, program+constants.ProgramBinSuffix),
		ID:  filepath.Join(deployDir, program+constants.ProgramKeypairSuffix),
		IDL: filepath.Join(l.root, constants.BuildOutputDir, constants.IDLOutputDir, program+constants.IDLSuffix),
	}
}

func (l *Layout) ArtifactPaths(program string, v version.Version) ArtifactPaths {
	dir := filepath.Join(l.artifactRoot, program, v.String())
	p := ArtifactPaths{
		Dir: dir,
		Bin: filepath.Join(dir, program+constants.ProgramBinSuffix),
		ID:  filepath.Join(dir, program+constants.ProgramKeypairSuffix),
	}
	if l.withIDL {
		p.IDL = filepath.Join(dir, program+constants.IDLSuffix)
	}
	return p
}
