// Package biome provides embedded biome archetype tables and lookup.
package biome

import "embed"

// dataFS embeds the biome tables from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
