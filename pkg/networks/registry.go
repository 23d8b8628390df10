// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package networks maps network names to cluster endpoints and the upgrade
// authority configured for each of them.
package networks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/luxfi/fleet/pkg/config"
	"github.com/luxfi/fleet/pkg/constants"
	"github.com/luxfi/fleet/pkg/models"
)

var builtins = map[string]models.NetworkConfig{
	"localnet": {Name: "localnet", Kind: models.Localnet, RPCURL: constants.LocalnetRPC},
	"devnet":   {Name: "devnet", Kind: models.Devnet, RPCURL: constants.DevnetRPC},
	"testnet":  {Name: "testnet", Kind: models.Testnet, RPCURL: constants.TestnetRPC},
	"mainnet":  {Name: "mainnet", Kind: models.Mainnet, RPCURL: constants.MainnetRPC},
}

var aliases = map[string]string{
	"local":        "localnet",
	"mainnet-beta": "mainnet",
}

type Registry struct {
	networks map[string]models.NetworkConfig
}

// NewRegistry merges Fleet.toml network entries over the built-in table.
// Entries naming a built-in network may override its URL; any other entry
// defines a custom network and must carry a URL.
func NewRegistry(entries map[string]config.NetworkEntry) (*Registry, error) {
	r := &Registry{networks: map[string]models.NetworkConfig{}}
	for name, n := range builtins {
		r.networks[name] = n
	}
	for rawName, entry := range entries {
		name := canonical(rawName)
		n, ok := r.networks[name]
		if !ok {
			if entry.URL == "" {
				return nil, fmt.Errorf("custom network %q must set url", rawName)
			}
			n = models.NetworkConfig{Name: name, Kind: models.Custom}
		}
		if entry.URL != "" {
			n.RPCURL = entry.URL
		}
		n.UpgradeAuthority = entry.UpgradeAuthority
		r.networks[name] = n
	}
	return r, nil
}

func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

// Lookup returns the network named name without requiring an upgrade authority
func (r *Registry) Lookup(name string) (models.NetworkConfig, error) {
	n, ok := r.networks[canonical(name)]
	if !ok {
		return models.NetworkConfig{}, fmt.Errorf("%w: %q (known: %s)", constants.ErrUnknownNetwork, name, strings.Join(r.Names(), ", "))
	}
	return n, nil
}

// Resolve returns the network named name, which must have an upgrade authority
func (r *Registry) Resolve(name string) (models.NetworkConfig, error) {
	n, err := r.Lookup(name)
	if err != nil {
		return n, err
	}
	if n.UpgradeAuthority == "" {
		return models.NetworkConfig{}, fmt.Errorf("%w %q: set upgrade_authority under [networks.%s] in %s",
			constants.ErrNoUpgradeAuthority, n.Name, n.Name, constants.ConfigFileName)
	}
	return n, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every network sorted by name
func (r *Registry) List() []models.NetworkConfig {
	names := r.Names()
	out := make([]models.NetworkConfig, 0, len(names))
	for _, name := range names {
		out = append(out, r.networks[name])
	}
	return out
}
