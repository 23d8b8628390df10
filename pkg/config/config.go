// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/fleet/pkg/constants"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// NetworkEntry is one [networks.<name>] table of Fleet.toml. URL is required
// for custom networks and overrides the endpoint of a built-in one.
type NetworkEntry struct {
	URL              string `mapstructure:"url" toml:"url,omitempty"`
	UpgradeAuthority string `mapstructure:"upgrade_authority" toml:"upgrade_authority"`
}

// Config is the parsed Fleet.toml of a workspace
type Config struct {
	DeployerKeypair string                  `mapstructure:"deployer_keypair" toml:"deployer_keypair"`
	ArtifactsDir    string                  `mapstructure:"artifacts_dir" toml:"artifacts_dir"`
	Networks        map[string]NetworkEntry `mapstructure:"networks" toml:"networks"`
}

// Default returns the config written by 'fleet init'
func Default(upgradeAuthority string) *Config {
	return &Config{
		DeployerKeypair: constants.DefaultDeployerKeypair,
		ArtifactsDir:    constants.DefaultArtifactsDir,
		Networks: map[string]NetworkEntry{
			"localnet": {UpgradeAuthority: upgradeAuthority},
			"devnet":   {UpgradeAuthority: upgradeAuthority},
			"testnet":  {UpgradeAuthority: upgradeAuthority},
			"mainnet":  {UpgradeAuthority: upgradeAuthority},
		},
	}
}

// Discover walks up from dir to the first directory holding Fleet.toml
func Discover(fs afero.Fs, dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if ok, _ := afero.Exists(fs, filepath.Join(dir, constants.ConfigFileName)); ok {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", constants.ErrConfigNotFound
		}
		dir = parent
	}
}

// Load reads Fleet.toml from root. FLEET_DEPLOYER_KEYPAIR overrides the
// deployer keypair of the file. Network names may contain dots, so keys are
// split on "::" instead.
func Load(fs afero.Fs, root string) (*Config, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetFs(fs)
	v.SetConfigFile(filepath.Join(root, constants.ConfigFileName))
	v.SetConfigType(constants.ConfigFileType)
	v.SetDefault(constants.ConfigDeployerKeypair, constants.DefaultDeployerKeypair)
	v.SetDefault(constants.ConfigArtifactsDir, constants.DefaultArtifactsDir)
	if err := v.BindEnv(constants.ConfigDeployerKeypair, constants.EnvDeployerKeypair); err != nil {
		return nil, err
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed reading %s: %w", constants.ConfigFileName, err)
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", constants.ConfigFileName, err)
	}
	if cfg.Networks == nil {
		cfg.Networks = map[string]NetworkEntry{}
	}
	return cfg, nil
}

// Write stores cfg as Fleet.toml under root
func Write(fs afero.Fs, root string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, filepath.Join(root, constants.ConfigFileName), data, constants.WriteReadReadPerms)
}

// DeployerPath returns the deployer keypair path with ~ expanded and
// relative paths anchored at root
func (c *Config) DeployerPath(root string) (string, error) {
	return expandPath(c.DeployerKeypair, root)
}

// ArtifactRoot returns the absolute artifact root for a workspace at root
func (c *Config) ArtifactRoot(root string) (string, error) {
	dir := c.ArtifactsDir
	if dir == "" {
		dir = constants.DefaultArtifactsDir
	}
	return expandPath(dir, root)
}

func expandPath(path, root string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join(root, path), nil
}
