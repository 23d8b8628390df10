// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// Built-in cluster endpoints
const (
	LocalnetRPC = "http://127.0.0.1:8899"
	DevnetRPC   = "https://api.devnet.solana.com"
	TestnetRPC  = "https://api.testnet.solana.com"
	MainnetRPC  = "https://api.mainnet-beta.solana.com"

	DefaultNetwork = "devnet"
)
