// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/luxfi/fleet/pkg/binutils"
	"github.com/luxfi/fleet/pkg/constants"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Release is the provenance record stored next to archived artifacts
type Release struct {
	Program    string    `yaml:"program"`
	Version    string    `yaml:"version"`
	Network    string    `yaml:"network"`
	ProgramID  string    `yaml:"programId"`
	GitCommit  string    `yaml:"gitCommit,omitempty"`
	GitDirty   bool      `yaml:"gitDirty,omitempty"`
	ArchivedAt time.Time `yaml:"archivedAt"`
}

type Archiver struct {
	fs  afero.Fs
	log luxlog.Logger
	now func() time.Time
}

func NewArchiver(fs afero.Fs, log luxlog.Logger) *Archiver {
	return &Archiver{fs: fs, log: log, now: time.Now}
}

// Copy copies the build outputs into the version directory, overwriting
// existing files. A failure leaves already-copied files in place.
func (a *Archiver) Copy(src ProgramPaths, dst ArtifactPaths) error {
	if err := a.fs.MkdirAll(dst.Dir, constants.DefaultPerms755); err != nil {
		return fmt.Errorf("%w: could not create %s: %w", constants.ErrIO, dst.Dir, err)
	}
	pairs := [][2]string{{src.Bin, dst.Bin}, {src.ID, dst.ID}}
	if dst.IDL != "" {
		pairs = append(pairs, [2]string{src.IDL, dst.IDL})
	}
	for _, p := range pairs {
		var perm os.FileMode = constants.WriteReadReadPerms
		if p[1] == dst.ID {
			perm = constants.UserOnlyReadWrite
		}
		if err := binutils.CopyFile(a.fs, p[0], p[1], perm); err != nil {
			return fmt.Errorf("%w: could not copy %s to %s: %w", constants.ErrIO, p[0], p[1], err)
		}
		a.log.Debug("archived artifact", zap.String("src", p[0]), zap.String("dst", p[1]))
	}
	return nil
}

// Archive copies the artifacts and records rel as release.yaml
func (a *Archiver) Archive(src ProgramPaths, dst ArtifactPaths, rel Release) error {
	if err := a.Copy(src, dst); err != nil {
		return err
	}
	if rel.ArchivedAt.IsZero() {
		rel.ArchivedAt = a.now().UTC()
	}
	data, err := yaml.Marshal(rel)
	if err != nil {
		return err
	}
	path := filepath.Join(dst.Dir, constants.ProvenanceFileName)
	if err := afero.WriteFile(a.fs, path, data, constants.WriteReadReadPerms); err != nil {
		return fmt.Errorf("%w: could not write %s: %w", constants.ErrIO, path, err)
	}
	return nil
}

// ReadRelease loads the provenance record of an archived version
func ReadRelease(fs afero.Fs, dst ArtifactPaths) (*Release, error) {
	data, err := afero.ReadFile(fs, filepath.Join(dst.Dir, constants.ProvenanceFileName))
	if err != nil {
		return nil, err
	}
	rel := &Release{}
	if err := yaml.Unmarshal(data, rel); err != nil {
		return nil, err
	}
	return rel, nil
}
