// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package version

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/luxfi/fleet/pkg/constants"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"golang.org/x/mod/semver"
)

// Version is a semantic version without the leading "v", e.g. "1.2.0"
type Version string

func (v Version) String() string {
	return string(v)
}

// Compare returns -1, 0 or +1 following semver precedence
func (v Version) Compare(other Version) int {
	return semver.Compare("v"+string(v), "v"+string(other))
}

// Parse validates s as a semantic version. A leading "v" is accepted and dropped.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if trimmed == "" || !semver.IsValid("v"+trimmed) {
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidVersion, s)
	}
	return Version(trimmed), nil
}

type cargoManifest struct {
	Package *struct {
		Version any `toml:"version"`
	} `toml:"package"`
	Workspace *struct {
		Package *struct {
			Version string `toml:"version"`
		} `toml:"package"`
	} `toml:"workspace"`
}

// Resolve returns explicit when it is set, otherwise the version declared by
// the Cargo manifest at manifestPath.
func Resolve(fs afero.Fs, explicit string, manifestPath string) (Version, error) {
	if explicit != "" {
		return Parse(explicit)
	}
	manifest, err := readManifest(fs, manifestPath)
	if err != nil {
		return "", err
	}
	if manifest.Package == nil {
		return "", fmt.Errorf("%w: %s has no [package] table", constants.ErrManifestRead, manifestPath)
	}
	switch v := manifest.Package.Version.(type) {
	case string:
		return parseManifestVersion(v, manifestPath)
	case map[string]any:
		if inherit, _ := v["workspace"].(bool); inherit {
			return resolveWorkspaceVersion(fs, filepath.Dir(manifestPath))
		}
	}
	return "", fmt.Errorf("%w: %s does not declare a package version", constants.ErrManifestRead, manifestPath)
}

// resolveWorkspaceVersion walks up from dir looking for a manifest with
// [workspace.package].version, for crates declaring version.workspace = true.
func resolveWorkspaceVersion(fs afero.Fs, dir string) (Version, error) {
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no workspace manifest declares [workspace.package].version", constants.ErrManifestRead)
		}
		dir = parent
		path := filepath.Join(dir, constants.CargoManifestName)
		if ok, _ := afero.Exists(fs, path); !ok {
			continue
		}
		manifest, err := readManifest(fs, path)
		if err != nil {
			return "", err
		}
		if manifest.Workspace != nil && manifest.Workspace.Package != nil && manifest.Workspace.Package.Version != "" {
			return parseManifestVersion(manifest.Workspace.Package.Version, path)
		}
	}
}

func readManifest(fs afero.Fs, path string) (*cargoManifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrManifestRead, err)
	}
	var manifest cargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", constants.ErrManifestRead, path, err)
	}
	return &manifest, nil
}

func parseManifestVersion(s, path string) (Version, error) {
	v, err := Parse(s)
	if err != nil {
		return "", errors.Join(fmt.Errorf("%w: %s", constants.ErrManifestRead, path), err)
	}
	return v, nil
}

// ManifestPath returns the Cargo manifest of program under root. Anchor
// names build outputs with underscores while crate directories usually use
// dashes, so both spellings are tried.
func ManifestPath(fs afero.Fs, root, program string) string {
	path := filepath.Join(root, constants.ProgramsDir, program, constants.CargoManifestName)
	if ok, _ := afero.Exists(fs, path); ok {
		return path
	}
	dashed := filepath.Join(root, constants.ProgramsDir, strings.ReplaceAll(program, "_", "-"), constants.CargoManifestName)
	if ok, _ := afero.Exists(fs, dashed); ok {
		return dashed
	}
	return path
}
