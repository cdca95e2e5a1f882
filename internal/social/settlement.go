package social

import (
	"math/rand"
	"sync"

	"github.com/talgya/immersive-worldgen/internal/placement"
	"github.com/talgya/immersive-worldgen/internal/world"
)

// SettlementID is a unique identifier for a settlement.
type SettlementID = uint64

// Origin records how a settlement came to exist.
type Origin uint8

const (
	OriginPlaced  Origin = iota // Chosen by the placement selector
	OriginSpawned               // Created directly, outside the selector
)

// Settlement is a founded population centre on the grid.
type Settlement struct {
	ID        SettlementID     `json:"id"`
	Name      string           `json:"name"`
	FactionID FactionID        `json:"faction_id"`
	Tile      placement.TileID `json:"tile"`
	Origin    Origin           `json:"origin"`
}

// Registry holds every settlement in the world. It implements
// placement.Settlements and is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	settlements []*Settlement
	byTile      map[placement.TileID]*Settlement
	names       map[string]bool
	pool        []string // unused syllable names, handed out in order
	rng         *rand.Rand
	nextID      SettlementID
}

// NewRegistry creates an empty registry. seed drives name generation.
func NewRegistry(seed int64) *Registry {
	rng := rand.New(rand.NewSource(seed))
	return &Registry{
		byTile: make(map[placement.TileID]*Settlement),
		names:  make(map[string]bool),
		pool:   world.GenerateNames(rng, world.NamePoolSize()),
		rng:    rng,
		nextID: 1,
	}
}

// Found records a settlement placed by the selector.
func (r *Registry) Found(f *Faction, tile placement.TileID) *Settlement {
	return r.add(f, tile, OriginPlaced)
}

// Spawn records a settlement created outside the selector, e.g. a faction
// spawned mid-game. Selectors pick it up on their next rebuild.
func (r *Registry) Spawn(f *Faction, tile placement.TileID) *Settlement {
	return r.add(f, tile, OriginSpawned)
}

func (r *Registry) add(f *Faction, tile placement.TileID, origin Origin) *Settlement {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Settlement{
		ID:     r.nextID,
		Name:   r.uniqueName(),
		Tile:   tile,
		Origin: origin,
	}
	if f != nil {
		s.FactionID = f.ID
	}
	r.nextID++
	r.settlements = append(r.settlements, s)
	r.byTile[tile] = s
	return s
}

// uniqueName hands out the shuffled syllable pool, then numbers random
// names once it runs dry.
func (r *Registry) uniqueName() string {
	if len(r.pool) > 0 {
		name := r.pool[0]
		r.pool = r.pool[1:]
		r.names[name] = true
		return name
	}
	base := world.RandomName(r.rng)
	for n := 2; ; n++ {
		name := base + " " + romanize(n)
		if !r.names[name] {
			r.names[name] = true
			return name
		}
	}
}

// ExistingSettlementTiles implements placement.Settlements.
func (r *Registry) ExistingSettlementTiles() []placement.TileID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]placement.TileID, len(r.settlements))
	for i, s := range r.settlements {
		out[i] = s.Tile
	}
	return out
}

// At returns the settlement on tile, if any.
func (r *Registry) At(tile placement.TileID) (*Settlement, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byTile[tile]
	return s, ok
}

// All returns settlements in founding order.
func (r *Registry) All() []*Settlement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Settlement, len(r.settlements))
	copy(out, r.settlements)
	return out
}

// ByFaction returns the settlements of one faction in founding order.
func (r *Registry) ByFaction(id FactionID) []*Settlement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Settlement
	for _, s := range r.settlements {
		if s.FactionID == id {
			out = append(out, s)
		}
	}
	return out
}

// Counts returns settlements per faction.
func (r *Registry) Counts() map[FactionID]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[FactionID]int)
	for _, s := range r.settlements {
		out[s.FactionID]++
	}
	return out
}

func romanize(n int) string {
	numerals := []struct {
		v int
		s string
	}{
		{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	out := ""
	for _, num := range numerals {
		for n >= num.v {
			out += num.s
			n -= num.v
		}
	}
	return out
}
