// internal/config/chain.go
package config

import "strings"

const (
	NetworkAeneid  = "aeneid"
	NetworkMainnet = "mainnet"
)

type NetworkPreset struct {
	ChainID     int64
	RPCURL      string
	ExplorerURL string
}

var presets = map[string]NetworkPreset{
	NetworkAeneid: {
		ChainID:     1315,
		RPCURL:      "https://aeneid.storyrpc.io",
		ExplorerURL: "https://aeneid.storyscan.io",
	},
	NetworkMainnet: {
		ChainID:     1514,
		RPCURL:      "https://mainnet.storyrpc.io",
		ExplorerURL: "https://storyscan.io",
	},
}

// PresetFor returns the preset of a network, falling back to Aeneid.
func PresetFor(network string) NetworkPreset {
	if p, ok := presets[strings.ToLower(network)]; ok {
		return p
	}
	return presets[NetworkAeneid]
}

func (c ChainConfig) ExplorerURL() string {
	return PresetFor(c.Network).ExplorerURL
}

func (a ContractAddresses) byName() map[string]string {
	return map[string]string{
		"IP_REGISTRY_ADAPTER": a.IPRegistryAdapter,
		"IP_ENFORCER":         a.IPEnforcer,
		"FRACTIONALIZER":      a.Fractionalizer,
		"MARKETPLACE":         a.Marketplace,
		"YIELD_VAULT":         a.YieldVault,
		"REVENUE_DISTRIBUTOR": a.RevenueDistributor,
		"IPDAO":               a.IPDAO,
	}
}
