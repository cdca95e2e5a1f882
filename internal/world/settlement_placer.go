// Site scouting finds desirable, well-spaced hexes for settlements that
// exist before the placement selector runs (ruins, founding capitals,
// scripted spawns).
package world

import (
	"math/rand"
	"sort"

	"github.com/talgya/immersive-worldgen/internal/placement"
)

// SettlementSeed is a scouted site.
type SettlementSeed struct {
	Tile  placement.TileID
	Coord HexCoord
	Score float64 // Desirability score
}

// ScoutSites returns up to count of the most desirable settleable hexes,
// no two closer than minDist, best first.
func ScoutSites(m *Map, count, minDist int) []SettlementSeed {
	var candidates []SettlementSeed
	for _, hex := range m.Hexes {
		if hex.Index == 0 || !m.ValidForSettlement(placement.TileID(hex.Index)) {
			continue
		}
		if s := settlementScore(m, hex); s > 0 {
			candidates = append(candidates, SettlementSeed{
				Tile:  placement.TileID(hex.Index),
				Coord: hex.Coord,
				Score: s,
			})
		}
	}

	// Sort by score descending; index breaks ties so output is stable.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Tile < candidates[j].Tile
	})

	var seeds []SettlementSeed
	for _, c := range candidates {
		if len(seeds) >= count {
			break
		}
		if tooClose(c.Coord, seeds, minDist) {
			continue
		}
		seeds = append(seeds, c)
	}
	return seeds
}

// settlementScore evaluates how desirable a hex is for a settlement.
// Prefers: coast (trade), rivers (water+trade), fertile plains.
func settlementScore(m *Map, hex *Hex) float64 {
	score := 0.0

	switch hex.Terrain {
	case TerrainPlains:
		score += 3.0
	case TerrainCoast:
		score += 4.0 // Harbors are prime locations
	case TerrainRiver:
		score += 3.5 // Freshwater + trade arteries
	case TerrainForest:
		score += 1.5
	case TerrainDesert, TerrainSwamp, TerrainTundra:
		score += 0.5
	default:
		return 0
	}

	// Bonus for nearby terrain diversity.
	terrainTypes := make(map[Terrain]bool)
	for _, nc := range hex.Coord.Neighbors() {
		nh := m.Get(nc)
		if nh != nil && nh.Terrain != TerrainOcean {
			terrainTypes[nh.Terrain] = true
		}
	}
	score += float64(len(terrainTypes)) * 0.3

	// Bonus for water access.
	for _, nc := range hex.Coord.Neighbors() {
		nh := m.Get(nc)
		if nh == nil {
			continue
		}
		if nh.Rivers > 0 || nh.Terrain == TerrainCoast {
			score += 0.5
			break
		}
	}

	return score
}

func tooClose(coord HexCoord, existing []SettlementSeed, minDist int) bool {
	for _, s := range existing {
		if Distance(coord, s.Coord) < minDist {
			return true
		}
	}
	return false
}

// NamePoolSize is the number of distinct names GenerateNames can produce.
func NamePoolSize() int {
	return len(namePrefixes) * len(nameSuffixes)
}

// GenerateNames produces unique procedural settlement names by combining
// syllables, in random order. count is clamped to NamePoolSize.
func GenerateNames(rng *rand.Rand, count int) []string {
	count = min(count, NamePoolSize())

	used := make(map[string]bool)
	names := make([]string, 0, count)

	for len(names) < count {
		name := RandomName(rng)
		if !used[name] {
			used[name] = true
			names = append(names, name)
		}
	}

	return names
}

// RandomName returns one procedural name; it may repeat.
func RandomName(rng *rand.Rand) string {
	return namePrefixes[rng.Intn(len(namePrefixes))] + nameSuffixes[rng.Intn(len(nameSuffixes))]
}

var namePrefixes = []string{
	"Iron", "Green", "Ash", "Stone", "Mill", "Cross", "Black",
	"Silver", "Red", "White", "Dark", "Bright", "High", "Low",
	"Old", "New", "Far", "Deep", "Long", "Broad", "Gold", "Frost",
	"Storm", "Thorn", "Elm", "Oak", "Pine", "Copper", "River",
}

var nameSuffixes = []string{
	"haven", "ford", "hollow", "wick", "bridge", "gate", "keep",
	"stead", "wood", "field", "dale", "crest", "vale", "port",
	"town", "bury", "marsh", "well", "brook", "cliff", "moor",
	"ridge", "watch", "fall", "rest", "point", "reach", "helm",
}
