package placement

import (
	"math/rand"
	"sync"
)

// gridTopo is a w×h rectangle with 4-neighbour adjacency.
type gridTopo struct {
	w, h  int
	tiles []Tile
	token int
}

func newGrid(w, h int, tile Tile) *gridTopo {
	g := &gridTopo{w: w, h: h, tiles: make([]Tile, w*h), token: 1}
	for i := range g.tiles {
		g.tiles[i] = tile
	}
	return g
}

func (g *gridTopo) TileCount() int      { return g.w * g.h }
func (g *gridTopo) Tile(id TileID) Tile { return g.tiles[id] }
func (g *gridTopo) Token() any          { return g.token }
func (g *gridTopo) id(x, y int) TileID  { return TileID(y*g.w + x) }

func (g *gridTopo) xy(id TileID) (int, int) {
	return int(id) % g.w, int(id) / g.w
}

func (g *gridTopo) Neighbors(id TileID) []TileID {
	x, y := g.xy(id)
	var out []TileID
	if x > 0 {
		out = append(out, g.id(x-1, y))
	}
	if x < g.w-1 {
		out = append(out, g.id(x+1, y))
	}
	if y > 0 {
		out = append(out, g.id(x, y-1))
	}
	if y < g.h-1 {
		out = append(out, g.id(x, y+1))
	}
	return out
}

// hops is the graph distance on the grid.
func (g *gridTopo) hops(a, b TileID) int {
	ax, ay := g.xy(a)
	bx, by := g.xy(b)
	return abs(ax-bx) + abs(ay-by)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func allValid(TileID) bool { return true }

// fixedDice always rolls v, clamped to the range asked for.
type fixedDice struct {
	v     int
	calls int
}

func (d *fixedDice) Intn(n int) int {
	d.calls++
	if d.v >= n {
		return n - 1
	}
	return d.v
}

// lockedDice is a seeded generator safe for concurrent use.
type lockedDice struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedDice(seed int64) *lockedDice {
	return &lockedDice{rng: rand.New(rand.NewSource(seed))}
}

func (d *lockedDice) Intn(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(n)
}

type staticSettlements []TileID

func (s staticSettlements) ExistingSettlementTiles() []TileID { return s }

type creature struct{ min, max float64 }

func (c creature) ComfortTempMin() float64 { return c.min }
func (c creature) ComfortTempMax() float64 { return c.max }

type population struct {
	player bool
	race   *creature
}

func (p population) IsPlayer() bool { return p.player }

func (p population) Representative() (Creature, bool) {
	if p.race == nil {
		return nil, false
	}
	return *p.race, true
}

// recorder keeps every event it sees.
type recorder struct {
	refreshed []RefreshEvent
	placed    []PlacedEvent
	failed    []FailedEvent
}

func (r *recorder) Refreshed(e RefreshEvent) { r.refreshed = append(r.refreshed, e) }
func (r *recorder) Placed(e PlacedEvent)     { r.placed = append(r.placed, e) }
func (r *recorder) Failed(e FailedEvent)     { r.failed = append(r.failed, e) }
