// Package world provides the hex planet the placement core runs on.
// Uses axial coordinates (q, r) for the hex grid; tiles are also addressed
// by a dense index assigned in spiral order from the centre.
package world

// HexCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Add returns h offset by d.
func (h HexCoord) Add(d HexCoord) HexCoord {
	return HexCoord{Q: h.Q + d.Q, R: h.R + d.R}
}

// Scale returns h multiplied by k.
func (h HexCoord) Scale(k int) HexCoord {
	return HexCoord{Q: h.Q * k, R: h.R * k}
}

// Terrain types for hex tiles.
type Terrain uint8

const (
	TerrainPlains   Terrain = iota // Open grassland
	TerrainForest                  // Wet uplands
	TerrainMountain                // Peaks; never settled
	TerrainCoast                   // Land touching the ocean
	TerrainRiver                   // Carries a river segment
	TerrainDesert                  // Hot and dry
	TerrainSwamp                   // Low and waterlogged
	TerrainTundra                  // Frozen ground
	TerrainOcean                   // Water; never settled
)

// Hex represents a single tile on the world map.
type Hex struct {
	Coord   HexCoord `json:"coord"`
	Index   int      `json:"index"`
	Terrain Terrain  `json:"terrain"`

	Elevation   float64 `json:"elevation"`   // 0.0 (sea floor) to 1.0 (peak)
	Rainfall    float64 `json:"rainfall"`    // mm per year
	Temperature float64 `json:"temperature"` // mean °C
	Rivers      int     `json:"rivers"`      // river segments crossing the hex
}

// HexNeighborDirections defines the six neighbor offsets in axial coordinates.
var HexNeighborDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range HexNeighborDirections {
		result[i] = h.Add(dir)
	}
	return result
}

// Ring returns the 6*k coordinates exactly k steps from h, walking
// counter-clockwise. Ring 0 is h itself.
func (h HexCoord) Ring(k int) []HexCoord {
	if k <= 0 {
		return []HexCoord{h}
	}
	out := make([]HexCoord, 0, 6*k)
	cur := h.Add(HexNeighborDirections[4].Scale(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			out = append(out, cur)
			cur = cur.Add(HexNeighborDirections[side])
		}
	}
	return out
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	return max(abs(a.Q-b.Q), abs(a.R-b.R), abs(a.S()-b.S()))
}

// TileCountForRadius is the number of hexes in a map of the given radius.
func TileCountForRadius(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*(radius+1) + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
