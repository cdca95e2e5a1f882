package world

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/immersive-worldgen/internal/placement"
)

// Map holds the complete hex grid. It implements placement.Topology.
type Map struct {
	Hexes  []*Hex `json:"-"` // Indexed by Hex.Index; Hexes[0] is the centre
	Radius int    `json:"radius"`

	index map[HexCoord]int
	token uuid.UUID
}

// NewMap lays out an empty map of the given radius. Hexes are indexed in
// spiral order: the centre is 0, then ring 1, ring 2, and so on.
// A hex grid of radius R contains hexes where max(|q|, |r|, |s|) <= R.
func NewMap(radius int) *Map {
	m := &Map{
		Hexes:  make([]*Hex, 0, TileCountForRadius(radius)),
		Radius: radius,
		index:  make(map[HexCoord]int, TileCountForRadius(radius)),
		token:  uuid.New(),
	}
	centre := HexCoord{}
	for k := 0; k <= radius; k++ {
		for _, c := range centre.Ring(k) {
			m.index[c] = len(m.Hexes)
			m.Hexes = append(m.Hexes, &Hex{Coord: c, Index: len(m.Hexes)})
		}
	}
	return m
}

// Get returns the hex at the given coordinate, or nil if out of bounds.
func (m *Map) Get(coord HexCoord) *Hex {
	i, ok := m.index[coord]
	if !ok {
		return nil
	}
	return m.Hexes[i]
}

// At returns the hex with the given index, or nil if out of range.
func (m *Map) At(id placement.TileID) *Hex {
	if id < 0 || int(id) >= len(m.Hexes) {
		return nil
	}
	return m.Hexes[id]
}

// IndexOf returns the tile index of coord.
func (m *Map) IndexOf(coord HexCoord) (placement.TileID, bool) {
	i, ok := m.index[coord]
	return placement.TileID(i), ok
}

// HexCount returns the total number of hexes in the map.
func (m *Map) HexCount() int {
	return len(m.Hexes)
}

// TileCount implements placement.Topology.
func (m *Map) TileCount() int {
	return len(m.Hexes)
}

// Tile implements placement.Topology.
func (m *Map) Tile(id placement.TileID) placement.Tile {
	h := m.Hexes[id]
	return placement.Tile{
		Temperature: h.Temperature,
		Rainfall:    h.Rainfall,
		Rivers:      h.Rivers,
	}
}

// Neighbors implements placement.Topology. Edge hexes have fewer than six.
func (m *Map) Neighbors(id placement.TileID) []placement.TileID {
	h := m.Hexes[id]
	out := make([]placement.TileID, 0, 6)
	for _, nc := range h.Coord.Neighbors() {
		if id, ok := m.IndexOf(nc); ok {
			out = append(out, id)
		}
	}
	return out
}

// Token implements placement.Topology. It changes whenever the map is
// regenerated.
func (m *Map) Token() any {
	return m.token
}

// Retoken marks the map as replaced, forcing placement caches to rebuild.
func (m *Map) Retoken() {
	m.token = uuid.New()
}

// ValidForSettlement is the static settlement predicate: dry land that is
// not a mountain peak.
func (m *Map) ValidForSettlement(id placement.TileID) bool {
	h := m.At(id)
	if h == nil {
		return false
	}
	return h.Terrain != TerrainOcean && h.Terrain != TerrainMountain
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(radius=%d, hexes=%d)", m.Radius, m.HexCount())
}
