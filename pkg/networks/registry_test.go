// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networks

import (
	"testing"

	"github.com/luxfi/fleet/pkg/config"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestResolveBuiltin(t *testing.T) {
	require := require.New(t)
	r, err := NewRegistry(map[string]config.NetworkEntry{
		"devnet":  {UpgradeAuthority: "AuthDevnet111"},
		"mainnet": {UpgradeAuthority: "AuthMainnet111"},
	})
	require.NoError(err)

	n, err := r.Resolve("Devnet")
	require.NoError(err)
	require.Equal(models.NetworkConfig{
		Name:             "devnet",
		Kind:             models.Devnet,
		RPCURL:           constants.DevnetRPC,
		UpgradeAuthority: "AuthDevnet111",
	}, n)

	n, err = r.Resolve("mainnet-beta")
	require.NoError(err)
	require.Equal(constants.MainnetRPC, n.RPCURL)
}

func TestResolveCustom(t *testing.T) {
	require := require.New(t)
	r, err := NewRegistry(map[string]config.NetworkEntry{
		"staging": {URL: "https://rpc.staging.example", UpgradeAuthority: "AuthStaging111"},
	})
	require.NoError(err)

	n, err := r.Resolve("staging")
	require.NoError(err)
	require.Equal(models.Custom, n.Kind)
	require.Equal("https://rpc.staging.example", n.Cluster())
}

func TestBuiltinURLOverride(t *testing.T) {
	require := require.New(t)
	r, err := NewRegistry(map[string]config.NetworkEntry{
		"localnet": {URL: "http://127.0.0.1:18899", UpgradeAuthority: "Auth111"},
	})
	require.NoError(err)

	n, err := r.Resolve("localnet")
	require.NoError(err)
	require.Equal(models.Localnet, n.Kind)
	require.Equal("http://127.0.0.1:18899", n.RPCURL)
	require.Equal(n.RPCURL, n.Cluster())
}

func TestCustomWithoutURL(t *testing.T) {
	_, err := NewRegistry(map[string]config.NetworkEntry{"staging": {UpgradeAuthority: "Auth111"}})
	require.Error(t, err)
}

func TestResolveUnknown(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)
	_, err = r.Resolve("moonnet")
	require.ErrorIs(t, err, constants.ErrUnknownNetwork)
}

func TestResolveWithoutUpgradeAuthority(t *testing.T) {
	require := require.New(t)
	r, err := NewRegistry(nil)
	require.NoError(err)

	_, err = r.Resolve("testnet")
	require.ErrorIs(err, constants.ErrNoUpgradeAuthority)

	n, err := r.Lookup("testnet")
	require.NoError(err)
	require.Equal(constants.TestnetRPC, n.RPCURL)
}

func TestList(t *testing.T) {
	require := require.New(t)
	r, err := NewRegistry(map[string]config.NetworkEntry{
		"staging": {URL: "https://rpc.staging.example"},
	})
	require.NoError(err)
	require.Equal([]string{"devnet", "localnet", "mainnet", "staging", "testnet"}, r.Names())
	require.Len(r.List(), 5)
}
