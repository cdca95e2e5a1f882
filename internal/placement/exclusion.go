package placement

import "github.com/zyedidia/generic/mapset"

// zone returns center plus every tile within radius hops of it, expanding
// one ring per step. A radius of zero or less yields only the center.
func (c *EligibilityCache) zone(center TileID, radius int) ([]TileID, error) {
	count := c.topo.TileCount()
	if center < 0 || int(center) >= count {
		return nil, &TopologyError{Tile: center, Count: count, Center: true}
	}

	visited := mapset.New[TileID]()
	visited.Put(center)
	zone := []TileID{center}
	ring := []TileID{center}

	for dist := 0; dist < radius; dist++ {
		var next []TileID
		for _, current := range ring {
			for _, n := range c.topo.Neighbors(current) {
				if n < 0 || int(n) >= count {
					return nil, &TopologyError{Tile: current, Neighbor: n, Count: count}
				}
				if visited.Has(n) {
					continue
				}
				visited.Put(n)
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			break
		}
		zone = append(zone, next...)
		ring = next
	}
	return zone, nil
}
