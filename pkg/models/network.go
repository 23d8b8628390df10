// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import "strings"

type NetworkKind int64

const (
	Custom NetworkKind = iota
	Localnet
	Devnet
	Testnet
	Mainnet
)

func (k NetworkKind) String() string {
	switch k {
	case Localnet:
		return "Localnet"
	case Devnet:
		return "Devnet"
	case Testnet:
		return "Testnet"
	case Mainnet:
		return "Mainnet"
	}
	return "Custom"
}

// NetworkConfig identifies one target cluster. It is immutable once resolved.
type NetworkConfig struct {
	Name             string
	Kind             NetworkKind
	RPCURL           string
	UpgradeAuthority string
}

// Cluster is the value handed to anchor's --provider.cluster. It is the same
// endpoint solana is given with --url, so an overridden built-in stays on it.
func (n NetworkConfig) Cluster() string {
	if n.RPCURL != "" || n.Kind == Custom {
		return n.RPCURL
	}
	return strings.ToLower(n.Kind.String())
}

func (n NetworkConfig) String() string {
	return n.Name
}
