// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644
	UserOnlyReadWrite  = 0o600

	// Workspace layout
	ConfigFileName       = "Fleet.toml"
	ConfigFileType       = "toml"
	CargoManifestName    = "Cargo.toml"
	AnchorManifestName   = "Anchor.toml"
	ProgramsDir          = "programs"
	BuildOutputDir       = "target"
	DeployOutputDir      = "deploy"
	IDLOutputDir         = "idl"
	DefaultArtifactsDir  = "artifacts"
	ProgramBinSuffix     = ".so"
	ProgramKeypairSuffix = "-keypair.json"
	IDLSuffix            = ".json"
	ProvenanceFileName   = "release.yaml"

	DefaultDeployerKeypair = "~/.config/solana/id.json"

	// Config keys
	ConfigDeployerKeypair = "deployer_keypair"
	ConfigArtifactsDir    = "artifacts_dir"
	ConfigUpgradeAuthKey  = "upgrade_authority_keypair"

	// Environment
	EnvUpgradeAuthorityKeypair = "UPGRADE_AUTHORITY_KEYPAIR"
	EnvDeployerKeypair         = "FLEET_DEPLOYER_KEYPAIR"

	// External tools
	SolanaCmd = "solana"
	AnchorCmd = "anchor"
	CargoCmd  = "cargo"

	StagingKeypairPattern = "fleet-buffer-*.json"

	// Logging
	BaseDirName      = ".fleet"
	LogDir           = "logs"
	LoggerName       = "fleet"
	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0
)
