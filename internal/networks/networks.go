// Package networks holds the compiled-in registry of supported chains and the
// resolver that maps user input (canonical name, alias, or chain ID) onto it.
//
// The registry is read-only. Lookup indices are built once at package init and
// the table is validated at the same time, so a malformed entry fails the
// process at start-up rather than producing an ambiguous lookup later.
package networks

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// ProviderDomain is the hosted RPC provider domain appended to each subdomain.
	ProviderDomain = "g.alchemy.com"

	// LocalRPCURL is the loopback endpoint of the local development node.
	LocalRPCURL = "http://127.0.0.1:8545"
)

// Network describes a single chain known to stargate.
type Network struct {
	Name              string   // Canonical lowercase identifier (e.g., "arbitrum")
	Aliases           []string // Alternate lowercase identifiers (e.g., "arb")
	ChainID           uint64   // EIP-155 chain ID
	ProviderSubdomain string   // Hosted RPC subdomain; empty for the local network
	ExplorerURL       string   // Block explorer base URL; empty when none exists
}

// RequiresAPIKey reports whether the network is served by the hosted provider.
func (n Network) RequiresAPIKey() bool {
	return n.ProviderSubdomain != ""
}

// HasExplorer reports whether the network has a block explorer.
func (n Network) HasExplorer() bool {
	return n.ExplorerURL != ""
}

// RPCURL returns the JSON-RPC endpoint for the network.
//
// Provider-backed networks get https://{subdomain}.g.alchemy.com/v2/{apiKey}
// with apiKey inserted verbatim; an empty key yields an unauthenticated URL.
// The local network always returns LocalRPCURL and ignores apiKey.
func (n Network) RPCURL(apiKey string) string {
	if !n.RequiresAPIKey() {
		return LocalRPCURL
	}
	return fmt.Sprintf("https://%s.%s/v2/%s", n.ProviderSubdomain, ProviderDomain, apiKey)
}

// registry is the ordered table of supported networks. Order is the listing
// order and the tie-break order for lookups.
var registry = []Network{
	{
		Name:              "mainnet",
		Aliases:           []string{"eth", "ethereum"},
		ChainID:           1,
		ProviderSubdomain: "eth-mainnet",
		ExplorerURL:       "https://etherscan.io",
	},
	{
		Name:              "polygon",
		ChainID:           137,
		ProviderSubdomain: "polygon-mainnet",
		ExplorerURL:       "https://polygonscan.com",
	},
	{
		Name:              "optimism",
		Aliases:           []string{"op"},
		ChainID:           10,
		ProviderSubdomain: "opt-mainnet",
		ExplorerURL:       "https://optimistic.etherscan.io",
	},
	{
		Name:              "arbitrum",
		Aliases:           []string{"arb"},
		ChainID:           42161,
		ProviderSubdomain: "arb-mainnet",
		ExplorerURL:       "https://arbiscan.io",
	},
	{
		Name:              "base",
		ChainID:           8453,
		ProviderSubdomain: "base-mainnet",
		ExplorerURL:       "https://basescan.org",
	},
	{
		Name:              "bnb",
		Aliases:           []string{"bsc"},
		ChainID:           56,
		ProviderSubdomain: "bnb-mainnet",
		ExplorerURL:       "https://bscscan.com",
	},
	{
		Name:              "linea",
		ChainID:           59144,
		ProviderSubdomain: "linea-mainnet",
		ExplorerURL:       "https://lineascan.build",
	},
	{
		Name:              "ink",
		ChainID:           57073,
		ProviderSubdomain: "ink-mainnet",
		ExplorerURL:       "https://explorer.inkonchain.com",
	},
	{
		Name:    "anvil",
		Aliases: []string{"local"},
		ChainID: 31337,
	},
}

var registryIndex *index

func init() {
	idx, err := buildIndex(registry)
	if err != nil {
		panic(fmt.Sprintf("networks: invalid registry: %v", err))
	}
	registryIndex = idx
}

type index struct {
	byName    map[string]int
	byAlias   map[string]int
	byChainID map[uint64]int
	local     int
}

// buildIndex validates a registry table and returns its lookup indices.
//
// Validation rules:
//   - names and aliases are non-empty and lowercase
//   - no identifier is shared between any two names/aliases
//   - chain IDs are unique
//   - exactly one network has no provider subdomain
func buildIndex(table []Network) (*index, error) {
	idx := &index{
		byName:    make(map[string]int, len(table)),
		byAlias:   make(map[string]int),
		byChainID: make(map[uint64]int, len(table)),
		local:     -1,
	}
	seen := make(map[string]string)

	claim := func(id, owner string) error {
		if id == "" {
			return fmt.Errorf("network %q: empty identifier", owner)
		}
		if id != strings.ToLower(id) {
			return fmt.Errorf("network %q: identifier %q is not lowercase", owner, id)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("identifier %q used by both %q and %q", id, prev, owner)
		}
		seen[id] = owner
		return nil
	}

	for i, n := range table {
		if err := claim(n.Name, n.Name); err != nil {
			return nil, err
		}
		idx.byName[n.Name] = i

		for _, a := range n.Aliases {
			if err := claim(a, n.Name); err != nil {
				return nil, err
			}
			idx.byAlias[a] = i
		}

		if prev, ok := idx.byChainID[n.ChainID]; ok {
			return nil, fmt.Errorf("chain id %d used by both %q and %q", n.ChainID, table[prev].Name, n.Name)
		}
		idx.byChainID[n.ChainID] = i

		if !n.RequiresAPIKey() {
			if idx.local >= 0 {
				return nil, fmt.Errorf("networks %q and %q both lack a provider subdomain", table[idx.local].Name, n.Name)
			}
			idx.local = i
		}
	}

	if idx.local < 0 {
		return nil, fmt.Errorf("no local network defined")
	}
	return idx, nil
}

// All returns the registry in display order. The returned slice is a copy;
// the alias slices it references are shared and must not be modified.
func All() []Network {
	return slices.Clone(registry)
}

// Local returns the local development network (the only one without a provider).
func Local() Network {
	return registry[registryIndex.local]
}
