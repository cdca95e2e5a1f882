// Package placement picks settlement tiles on a planet's tile graph.
//
// An EligibilityCache tracks the tiles that pass a static validity check and
// lie outside every exclusion zone. A Selector draws candidates from it
// without replacement and accepts them with a probability that falls off as
// the tile's climate leaves the requesting population's comfort band.
package placement

// TileID is a stable index into the tile grid. ID 0 is reserved and never
// placed on.
type TileID int

// Tile holds the read-only climate attributes of one grid cell.
type Tile struct {
	Temperature float64 // degrees, signed
	Rainfall    float64 // mm/year, non-negative
	Rivers      int     // river segments touching the tile
}

// HasRiver reports whether any river touches the tile.
func (t Tile) HasRiver() bool {
	return t.Rivers > 0
}

// Topology is the grid the core places on. Neighbors must be complete and
// symmetric. Token must return a comparable value that changes iff the grid
// has been replaced.
type Topology interface {
	TileCount() int
	Tile(id TileID) Tile
	Neighbors(id TileID) []TileID
	Token() any
}

// Validity is the static "can a settlement ever stand here" predicate.
// It is called once per tile per rebuild.
type Validity func(id TileID) bool

// Settlements enumerates tiles already occupied by settlements, including
// ones created outside the Selector. It is consulted only on rebuild.
type Settlements interface {
	ExistingSettlementTiles() []TileID
}

// Creature exposes the comfortable temperature band of a species.
type Creature interface {
	ComfortTempMin() float64
	ComfortTempMax() float64
}

// Population is whoever asks for a tile. Representative is a best-effort
// lookup; ok=false means the climate profile falls back to wide defaults.
type Population interface {
	IsPlayer() bool
	Representative() (c Creature, ok bool)
}

// Dice draws uniform integers in [0, n). Implementations used by a shared
// Selector must be safe for concurrent use.
type Dice interface {
	Intn(n int) int
}
