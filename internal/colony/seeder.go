// Package colony drives settlement placement for a set of factions and
// records the winners.
package colony

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/talgya/immersive-worldgen/internal/placement"
	"github.com/talgya/immersive-worldgen/internal/social"
)

// Request asks for Count settlements for one faction. Validator, when set,
// is passed to the selector as the extra per-tile check.
type Request struct {
	Faction   *social.Faction
	Count     int
	Validator func(placement.TileID) bool
}

// Report summarises what one request achieved.
type Report struct {
	Faction   *social.Faction
	Founded   []*social.Settlement
	Exhausted int  // requests where every candidate was rejected
	OutOfRoom bool // the eligible set ran dry
}

// Seeder places settlements through a shared Selector.
type Seeder struct {
	selector *placement.Selector
	registry *social.Registry
}

// NewSeeder returns a Seeder that records winners in registry.
func NewSeeder(selector *placement.Selector, registry *social.Registry) *Seeder {
	return &Seeder{selector: selector, registry: registry}
}

// SeedAll runs every request concurrently. Requests share the selector, so
// tiles are still handed out one at a time. A topology error aborts all
// requests; placement failures are counted in the reports instead.
func (s *Seeder) SeedAll(ctx context.Context, reqs []Request) ([]Report, error) {
	reports := make([]Report, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			rep, err := s.Seed(ctx, req)
			reports[i] = rep
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

// Seed places settlements for a single request, stopping early once the
// map has no room left.
func (s *Seeder) Seed(ctx context.Context, req Request) (Report, error) {
	rep := Report{Faction: req.Faction}
	for n := 0; n < req.Count; n++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		tile, err := s.selector.SelectTile(req.Faction, req.Validator)
		switch {
		case err == nil:
			rep.Founded = append(rep.Founded, s.registry.Found(req.Faction, tile))
		case errors.Is(err, placement.ErrSelectionExhausted):
			rep.Exhausted++
			slog.Warn("settlement placement failed", "faction", req.Faction.String(), "attempt", n+1)
		case errors.Is(err, placement.ErrCacheEmpty):
			rep.OutOfRoom = true
			slog.Warn("no eligible tiles left", "faction", req.Faction.String())
			return rep, nil
		default:
			return rep, fmt.Errorf("place for %s: %w", req.Faction, err)
		}
	}
	return rep, nil
}
