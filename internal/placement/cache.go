package placement

import (
	"fmt"
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// Radius thresholds by total tile count. Small maps (dev quicktests, 5%
// planets) would otherwise run out of room after a handful of settlements.
const (
	smallMapTiles  = 5000
	mediumMapTiles = 20000
)

// ExclusionRadius returns the hop radius kept clear around every settlement
// on a grid of tileCount tiles.
func ExclusionRadius(tileCount int) int {
	switch {
	case tileCount < smallMapTiles:
		return 1
	case tileCount < mediumMapTiles:
		return 4
	default:
		return 9
	}
}

// EligibilityCache holds the tiles a new settlement may still be placed on.
// It is not safe for concurrent use; Selector serializes access to it.
type EligibilityCache struct {
	topo        Topology
	valid       Validity
	settlements Settlements

	members mapset.Set[TileID]
	radius  int
	token   any
	built   bool
}

// NewEligibilityCache returns an empty cache. It is built on the first
// EnsureFresh call. settlements may be nil.
func NewEligibilityCache(topo Topology, valid Validity, settlements Settlements) *EligibilityCache {
	return &EligibilityCache{
		topo:        topo,
		valid:       valid,
		settlements: settlements,
		members:     mapset.New[TileID](),
	}
}

// EnsureFresh rebuilds the cache if it was never built or token differs from
// the one seen at the last rebuild. It reports whether a rebuild happened.
// token must be comparable.
func (c *EligibilityCache) EnsureFresh(token any) (bool, error) {
	if c.built && c.token == token {
		return false, nil
	}
	if err := c.rebuild(); err != nil {
		c.built = false
		return false, fmt.Errorf("rebuild eligible tiles: %w", err)
	}
	c.token = token
	c.built = true
	return true, nil
}

func (c *EligibilityCache) rebuild() error {
	count := c.topo.TileCount()
	members := mapset.New[TileID]()
	for i := 1; i < count; i++ {
		id := TileID(i)
		if c.valid == nil || c.valid(id) {
			members.Put(id)
		}
	}
	c.members = members
	c.radius = ExclusionRadius(count)

	// Settlements may have been spawned outside the Selector (mid-game
	// faction spawns), so every existing one is reconciled here.
	if c.settlements == nil {
		return nil
	}
	for _, id := range c.settlements.ExistingSettlementTiles() {
		if err := c.Evict(id); err != nil {
			return err
		}
	}
	return nil
}

// Evict removes center and every tile within Radius hops of it. Tiles that
// are already absent are ignored.
func (c *EligibilityCache) Evict(center TileID) error {
	zone, err := c.zone(center, c.radius)
	if err != nil {
		return err
	}
	for _, id := range zone {
		c.members.Remove(id)
	}
	return nil
}

// Sample returns a random permutation of the current members. Each range
// over the sequence snapshots the set and reshuffles; pulling values does not
// change the cache. The sequence ends after every member has been yielded
// once or when the caller stops.
func (c *EligibilityCache) Sample(dice Dice) iter.Seq[TileID] {
	return func(yield func(TileID) bool) {
		pool := make([]TileID, 0, c.members.Size())
		c.members.Each(func(id TileID) {
			pool = append(pool, id)
		})
		for i := range pool {
			j := i + dice.Intn(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
			if !yield(pool[i]) {
				return
			}
		}
	}
}

// Has reports whether id is currently eligible.
func (c *EligibilityCache) Has(id TileID) bool {
	return c.members.Has(id)
}

// Len returns the number of eligible tiles.
func (c *EligibilityCache) Len() int {
	return c.members.Size()
}

// Radius returns the exclusion radius computed at the last rebuild.
func (c *EligibilityCache) Radius() int {
	return c.radius
}
