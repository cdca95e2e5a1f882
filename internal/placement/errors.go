package placement

import (
	"errors"
	"fmt"
)

var (
	// ErrCacheEmpty means no eligible tile remains after the cache was
	// refreshed. No candidates were drawn.
	ErrCacheEmpty = errors.New("placement: no eligible tiles")

	// ErrSelectionExhausted means eligible tiles exist but every drawn
	// candidate was rejected.
	ErrSelectionExhausted = errors.New("placement: all candidates rejected")

	// ErrTopologyInconsistency means the topology returned a neighbor, or
	// a settlement sits on a tile, outside the valid index range.
	ErrTopologyInconsistency = errors.New("placement: topology inconsistency")
)

// TopologyError reports the tile whose neighbor list is broken, or a zone
// center that is itself outside the topology.
type TopologyError struct {
	Tile     TileID
	Neighbor TileID
	Count    int
	Center   bool // Tile is out of range; Neighbor is unused
}

func (e *TopologyError) Error() string {
	if e.Center {
		return fmt.Sprintf("placement: center tile %d outside [0, %d)", e.Tile, e.Count)
	}
	return fmt.Sprintf("placement: tile %d has neighbor %d outside [0, %d)", e.Tile, e.Neighbor, e.Count)
}

func (e *TopologyError) Unwrap() error {
	return ErrTopologyInconsistency
}
