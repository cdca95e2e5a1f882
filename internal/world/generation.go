// World generation using layered simplex noise.
// Generates elevation, rainfall, and temperature maps, then derives terrain
// and traces rivers.
package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds world generation parameters.
type GenConfig struct {
	Radius      int     // Hex grid radius (40 → 4,921 hexes, 41 → 5,167)
	Seed        int64   // Random seed (0 = random)
	SeaLevel    float64 // Elevation threshold for ocean (0.0–1.0)
	MountainLvl float64 // Elevation threshold for mountains (0.0–1.0)

	// Climate scale applied to the normalized noise layers.
	MinTemperature float64 // °C at the coldest point
	MaxTemperature float64 // °C at the hottest point
	MaxRainfall    float64 // mm/year at the wettest point
}

// DefaultGenConfig returns a mid-sized planet (radius 4 exclusion zones).
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:         45,
		Seed:           0,
		SeaLevel:       0.25,
		MountainLvl:    0.72,
		MinTemperature: -40,
		MaxTemperature: 45,
		MaxRainfall:    2500,
	}
}

// SmallTestConfig returns a tiny world for rapid iteration.
func SmallTestConfig() GenConfig {
	cfg := DefaultGenConfig()
	cfg.Radius = 12
	cfg.Seed = 42
	cfg.SeaLevel = 0.30
	cfg.MountainLvl = 0.75
	return cfg
}

// Generate creates a complete world map with terrain, climate and rivers.
// Every call yields a fresh topology token.
func Generate(cfg GenConfig) *Map {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Three noise generators for independent layers.
	elevNoise := opensimplex.NewNormalized(seed)
	rainNoise := opensimplex.NewNormalized(seed + 1)
	tempNoise := opensimplex.NewNormalized(seed + 2)

	m := NewMap(cfg.Radius)
	radius := math.Max(float64(cfg.Radius), 1)

	for _, hex := range m.Hexes {
		q, r := hex.Coord.Q, hex.Coord.R

		// Hex axial → cartesian: x = q + r*0.5, y = r * sqrt(3)/2
		x := float64(q) + float64(r)*0.5
		y := float64(r) * math.Sqrt(3.0) / 2.0

		elev := octaveNoise(elevNoise, x, y, 4, 0.08, 0.5)
		rain := octaveNoise(rainNoise, x, y, 3, 0.06, 0.5)
		temp := octaveNoise(tempNoise, x, y, 3, 0.05, 0.5)

		// Continental shaping: reduce elevation near edges to create ocean border.
		distFromCenter := math.Sqrt(x*x+y*y) / radius
		edgeFalloff := 1.0 - math.Pow(distFromCenter, 3.5)
		if edgeFalloff < 0 {
			edgeFalloff = 0
		}
		elev *= edgeFalloff

		// Temperature decreases with elevation and distance from equator.
		temp = temp*0.6 + (1.0-math.Abs(y)/radius)*0.3 + (1.0-elev)*0.1

		hex.Terrain = deriveTerrain(elev, rain, temp, cfg)
		hex.Elevation = elev
		hex.Rainfall = clamp01(rain) * cfg.MaxRainfall
		hex.Temperature = cfg.MinTemperature + clamp01(temp)*(cfg.MaxTemperature-cfg.MinTemperature)
	}

	// Post-pass: mark coastal hexes (land hexes adjacent to ocean).
	markCoastalHexes(m)

	// Post-pass: place rivers flowing from high elevation to coast.
	placeRivers(m, seed)

	return m
}

// deriveTerrain determines terrain type from normalized environmental parameters.
func deriveTerrain(elev, rain, temp float64, cfg GenConfig) Terrain {
	if elev < cfg.SeaLevel {
		return TerrainOcean
	}
	if elev > cfg.MountainLvl {
		return TerrainMountain
	}
	if temp < 0.25 {
		return TerrainTundra
	}
	if rain < 0.25 && temp > 0.5 {
		return TerrainDesert
	}
	if rain > 0.7 && elev < 0.45 {
		return TerrainSwamp
	}
	if rain > 0.45 && elev > 0.45 {
		return TerrainForest
	}
	return TerrainPlains
}

// markCoastalHexes converts low plains and forest adjacent to ocean into coast.
func markCoastalHexes(m *Map) {
	var toMark []*Hex

	for _, hex := range m.Hexes {
		if hex.Terrain == TerrainOcean {
			continue
		}
		for _, neighbor := range hex.Coord.Neighbors() {
			nh := m.Get(neighbor)
			if nh != nil && nh.Terrain == TerrainOcean {
				toMark = append(toMark, hex)
				break
			}
		}
	}

	for _, hex := range toMark {
		if (hex.Terrain == TerrainPlains || hex.Terrain == TerrainForest) && hex.Elevation < 0.5 {
			hex.Terrain = TerrainCoast
		}
	}
}

// placeRivers traces paths from high elevation to the sea, counting a river
// segment on every hex a river crosses.
func placeRivers(m *Map, seed int64) {
	rng := rand.New(rand.NewSource(seed + 100))

	var sources []HexCoord
	for _, hex := range m.Hexes {
		if hex.Elevation > 0.65 && hex.Terrain != TerrainOcean {
			sources = append(sources, hex.Coord)
		}
	}

	// Only create a handful of rivers; not every mountain needs one.
	numRivers := len(sources) / 8
	numRivers = max(numRivers, 2)
	numRivers = min(numRivers, 10+m.Radius/4)

	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	if len(sources) > numRivers {
		sources = sources[:numRivers]
	}

	for _, start := range sources {
		traceRiver(m, start)
	}
}

// traceRiver follows the steepest descent from a source hex until reaching
// ocean or running out of downhill path.
func traceRiver(m *Map, start HexCoord) {
	current := start
	visited := make(map[HexCoord]bool)
	maxSteps := 4 * m.Radius

	for step := 0; step < maxSteps; step++ {
		visited[current] = true
		hex := m.Get(current)
		if hex == nil || hex.Terrain == TerrainOcean {
			break
		}

		hex.Rivers++
		if hex.Terrain != TerrainMountain && hex.Terrain != TerrainCoast {
			hex.Terrain = TerrainRiver
		}

		var bestNeighbor *HexCoord
		bestElev := hex.Elevation

		for _, nc := range current.Neighbors() {
			if visited[nc] {
				continue
			}
			nh := m.Get(nc)
			if nh == nil {
				continue
			}
			if nh.Elevation < bestElev {
				bestElev = nh.Elevation
				c := nc
				bestNeighbor = &c
			}
		}

		if bestNeighbor == nil {
			break // No downhill path; the river pools here.
		}
		current = *bestNeighbor
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// TerrainCounts returns a summary of terrain type distribution.
func TerrainCounts(m *Map) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, hex := range m.Hexes {
		counts[hex.Terrain]++
	}
	return counts
}

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainPlains:
		return "Plains"
	case TerrainForest:
		return "Forest"
	case TerrainMountain:
		return "Mountain"
	case TerrainCoast:
		return "Coast"
	case TerrainRiver:
		return "River"
	case TerrainDesert:
		return "Desert"
	case TerrainSwamp:
		return "Swamp"
	case TerrainTundra:
		return "Tundra"
	case TerrainOcean:
		return "Ocean"
	default:
		return "Unknown"
	}
}
