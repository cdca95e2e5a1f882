package placement

import (
	"fmt"
	"sync"
)

// DefaultMaxDraws caps candidates drawn per request so a near-exhausted
// cache cannot turn a request into a full scan.
const DefaultMaxDraws = 500

// Policy holds the tunables of a Selector.
type Policy struct {
	MaxDraws       int
	DefaultMinTemp float64
	DefaultMaxTemp float64
	MinRainfall    float64
}

// DefaultPolicy returns the stock placement tuning.
func DefaultPolicy() Policy {
	return Policy{
		MaxDraws:       DefaultMaxDraws,
		DefaultMinTemp: DefaultMinTemp,
		DefaultMaxTemp: DefaultMaxTemp,
		MinRainfall:    DefaultMinRainfall,
	}
}

// ProfileFor derives the climate window for pop. Player populations and
// populations without a resolvable representative creature get the wide
// defaults. Rainfall is the same for everyone.
func (p Policy) ProfileFor(pop Population) ClimateProfile {
	profile := ClimateProfile{
		MinTemp:     p.DefaultMinTemp,
		MaxTemp:     p.DefaultMaxTemp,
		MinRainfall: p.MinRainfall,
	}
	if pop == nil || pop.IsPlayer() {
		return profile
	}
	if c, ok := pop.Representative(); ok && c != nil {
		profile.MinTemp = c.ComfortTempMin()
		profile.MaxTemp = c.ComfortTempMax()
	}
	return profile
}

// Selector answers "next settlement tile" requests. It is safe for
// concurrent use; requests are serialized.
type Selector struct {
	mu       sync.Mutex
	topo     Topology
	cache    *EligibilityCache
	dice     Dice
	policy   Policy
	observer Observer
}

// NewSelector returns a Selector over topo. settlements may be nil. A
// non-positive MaxDraws in policy falls back to DefaultMaxDraws.
func NewSelector(topo Topology, valid Validity, settlements Settlements, dice Dice, policy Policy) *Selector {
	if policy.MaxDraws <= 0 {
		policy.MaxDraws = DefaultMaxDraws
	}
	return &Selector{
		topo:     topo,
		cache:    NewEligibilityCache(topo, valid, settlements),
		dice:     dice,
		policy:   policy,
		observer: nopObserver{},
	}
}

// SetObserver installs o as the event sink. A nil o disables events.
func (s *Selector) SetObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o == nil {
		o = nopObserver{}
	}
	s.observer = o
}

// SelectTile picks a tile for pop and removes its exclusion zone from the
// eligible set. extraValidator may be nil; tiles it rejects are skipped.
// On failure the returned TileID is 0 and the error wraps ErrCacheEmpty,
// ErrSelectionExhausted or ErrTopologyInconsistency.
func (s *Selector) SelectTile(pop Population, extraValidator func(TileID) bool) (TileID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(); err != nil {
		return 0, err
	}
	if s.cache.Len() == 0 {
		s.observer.Failed(FailedEvent{Population: pop, Err: ErrCacheEmpty})
		return 0, ErrCacheEmpty
	}

	profile := s.policy.ProfileFor(pop)
	rejections := make(map[Rejection]int)
	draws := 0

	for id := range s.cache.Sample(s.dice) {
		draws++

		r := RejectedByValidator
		if extraValidator == nil || extraValidator(id) {
			r = profile.judge(s.topo.Tile(id), s.dice)
		}
		if r != Accepted {
			rejections[r]++
			// Stop before the sequence draws another candidate.
			if draws == s.policy.MaxDraws {
				break
			}
			continue
		}

		if err := s.cache.Evict(id); err != nil {
			return 0, fmt.Errorf("evict around tile %d: %w", id, err)
		}
		s.observer.Placed(PlacedEvent{
			Population: pop,
			Tile:       id,
			Draws:      draws,
			Remaining:  s.cache.Len(),
		})
		return id, nil
	}

	s.observer.Failed(FailedEvent{
		Population: pop,
		Err:        ErrSelectionExhausted,
		Draws:      draws,
		Rejections: rejections,
	})
	return 0, ErrSelectionExhausted
}

// Refresh rebuilds the eligible set if the topology has changed since the
// last rebuild.
func (s *Selector) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh()
}

func (s *Selector) refresh() error {
	rebuilt, err := s.cache.EnsureFresh(s.topo.Token())
	if err != nil {
		return err
	}
	if rebuilt {
		s.observer.Refreshed(RefreshEvent{
			TileCount: s.topo.TileCount(),
			Radius:    s.cache.Radius(),
			Eligible:  s.cache.Len(),
		})
	}
	return nil
}

// Eligible reports whether id could currently be returned by SelectTile.
func (s *Selector) Eligible(id TileID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Has(id)
}

// Remaining returns the number of eligible tiles.
func (s *Selector) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

// Radius returns the exclusion radius in effect.
func (s *Selector) Radius() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Radius()
}
