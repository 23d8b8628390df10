// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrManifestRead         = errors.New("could not read program manifest")
	ErrInvalidVersion       = errors.New("invalid semantic version")
	ErrUnknownNetwork       = errors.New("unknown network")
	ErrNoUpgradeAuthority   = errors.New("no upgrade authority configured for network")
	ErrConfigNotFound       = errors.New(ConfigFileName + " not found. Run 'fleet init' at the Cargo workspace root")
	ErrIO                   = errors.New("filesystem error")
	ErrProbe                = errors.New("could not query program state")
	ErrExternalCommand      = errors.New("external command failed")
	ErrDuplicateVersion     = errors.New("program artifacts already exist for this version. Make sure to bump your Cargo.toml")
	ErrMissingCredential    = errors.New("must set " + EnvUpgradeAuthorityKeypair + " environment variable")
	ErrProgramNotDeployed   = errors.New("program does not exist. Use 'fleet deploy' to deploy the program for the first time")
	ErrNotConfirmed         = errors.New("operation not confirmed by the operator")
	ErrConfirmationRequired = errors.New("confirmation required in non-interactive mode")
	ErrSwitchFailed         = errors.New("switching the program to the new buffer failed; verify the on-chain program manually")
)
