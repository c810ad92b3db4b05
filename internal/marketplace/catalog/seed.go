package catalog

import (
	"time"

	"github.com/seismiclabs/marketplace/internal/common/uuid"
)

// Seed returns the default dataset used when no persisted catalog exists.
// Creation timestamps are set relative to now so the seed entries exercise
// the full recency range of the trending score.
func Seed(now time.Time) []Listing {
	day := 24 * time.Hour
	return []Listing{
		{
			ID:          uuid.NewString(),
			Name:        "Walnut Vault",
			Description: "Encrypted key-value storage utility and access control helpers.",
			Category:    "Tools",
			Author:      "Walnut Labs",
			Website:     "https://example.org/walnut",
			Tags:        []string{"storage", "utils", "privacy"},
			License:     "MIT",
			Fee:         FeeDescriptor{Type: FeeFree},
			Address:     "0x0000...walnut",
			Verified:    true,
			CreatedAt:   now.Add(-14 * day).UnixMilli(),
			Versions: []VersionEntry{
				{Version: "1.0.0", URL: "https://example.org/walnut/v1.0.0", Checksum: "sha256-abc"},
				{Version: "1.1.0", URL: "https://example.org/walnut/v1.1.0", Checksum: "sha256-def"},
			},
			Rating: RatingStats{Avg: 4.5, Count: 18},
		},
		{
			ID:          uuid.NewString(),
			Name:        "ShieldedSwap",
			Description: "AMM for Seismic with private balances and orders.",
			Category:    "DeFi",
			Author:      "Anon Collective",
			Website:     "https://example.org/shieldedswap",
			Tags:        []string{"dex", "amm", "defi"},
			License:     "Apache-2.0",
			Fee:         FeeDescriptor{Type: FeeRevShare, Amount: 0.15},
			Address:     "0x0000...swap",
			Verified:    false,
			CreatedAt:   now.Add(-6 * day).UnixMilli(),
			Versions: []VersionEntry{
				{Version: "0.9.0", URL: "https://example.org/shieldedswap/0.9.0", Checksum: "sha256-xyz"},
				{Version: "1.0.0", URL: "https://example.org/shieldedswap/1.0.0", Checksum: "sha256-qrs"},
			},
			Rating: RatingStats{Avg: 4.1, Count: 42},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Oblivion Oracle",
			Description: "Confidential price feeds with TEE attestations.",
			Category:    "Oracles",
			Author:      "Seis Oracles",
			Tags:        []string{"oracle", "feeds"},
			License:     "GPL-3.0",
			Fee:         FeeDescriptor{Type: FeeSubscription, Amount: 99},
			Address:     "0x0000...oracle",
			Verified:    true,
			CreatedAt:   now.Add(-2 * day).UnixMilli(),
			Versions: []VersionEntry{
				{Version: "1.0.0", URL: "https://example.org/oracle/1.0.0"},
				{Version: "1.1.1", URL: "https://example.org/oracle/1.1.1"},
				{Version: "1.2.0", URL: "https://example.org/oracle/1.2.0"},
			},
			Rating: RatingStats{Avg: 4.8, Count: 12},
		},
	}
}
