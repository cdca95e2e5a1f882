// Command worldgen generates a planet and places every configured faction's
// settlements on it, favouring tiles whose climate suits each faction.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"

	"github.com/talgya/immersive-worldgen/internal/colony"
	"github.com/talgya/immersive-worldgen/internal/config"
	"github.com/talgya/immersive-worldgen/internal/entropy"
	"github.com/talgya/immersive-worldgen/internal/journal"
	"github.com/talgya/immersive-worldgen/internal/placement"
	"github.com/talgya/immersive-worldgen/internal/social"
	"github.com/talgya/immersive-worldgen/internal/world"
)

func main() {
	configPath := flag.String("config", "configs/worldgen.yaml", "path to the worldgen YAML file")
	verbose := flag.Bool("v", false, "log every accepted tile")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	// ── Journal ───────────────────────────────────────────────────────
	observers := placement.Observers{colony.LogObserver{Logger: logger}}
	if cfg.Journal.Path != "" {
		os.MkdirAll(filepath.Dir(cfg.Journal.Path), 0755)
		db, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			slog.Error("failed to open journal", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		observers = append(observers, db)
		slog.Info("journal opened", "path", cfg.Journal.Path)
	}

	// ── World Map ─────────────────────────────────────────────────────
	seed := cfg.World.Seed
	if seed == 0 {
		seed = entropy.CryptoSeed()
	}
	gen := cfg.Gen()
	gen.Seed = seed
	slog.Info("generating world map...", "radius", gen.Radius, "seed", seed)
	worldMap := world.Generate(gen)

	for t, c := range world.TerrainCounts(worldMap) {
		slog.Debug("terrain", "type", world.TerrainName(t), "count", c)
	}
	slog.Info("world ready",
		"hexes", humanize.Comma(int64(worldMap.HexCount())),
		"exclusion_radius", placement.ExclusionRadius(worldMap.TileCount()),
	)

	// Names and placement rolls draw from independent streams of the world
	// seed so a run with a fixed seed is reproducible.
	root := entropy.NewSource(seed)

	// ── Pre-existing settlements ─────────────────────────────────────
	registry := social.NewRegistry(root.Int63())
	for _, site := range world.ScoutSites(worldMap, cfg.World.PreexistingSites, cfg.World.PreexistingSpacing) {
		s := registry.Spawn(nil, site.Tile)
		slog.Info("ancient settlement", "name", s.Name, "tile", site.Tile,
			"hex", site.Coord, "score", site.Score)
	}

	// ── Placement ─────────────────────────────────────────────────────
	selector := placement.NewSelector(worldMap, worldMap.ValidForSettlement, registry,
		entropy.NewSource(root.Int63()), cfg.Policy())
	selector.SetObserver(observers)

	factions := cfg.BuildFactions()
	reqs := make([]colony.Request, len(factions))
	for i, f := range factions {
		reqs[i] = colony.Request{Faction: f, Count: cfg.Factions[i].Settlements}
		if cfg.Factions[i].RequireRiver {
			reqs[i].Validator = func(id placement.TileID) bool {
				return worldMap.Tile(id).HasRiver()
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reports, err := colony.NewSeeder(selector, registry).SeedAll(ctx, reqs)
	if err != nil {
		slog.Error("placement aborted", "error", err)
		os.Exit(1)
	}

	printSummary(worldMap, registry, reports, selector.Remaining())
}

func printSummary(m *world.Map, registry *social.Registry, reports []colony.Report, remaining int) {
	counts := registry.Counts()
	color.Bold.Println("\nSettlements")
	if n := counts[0]; n > 0 {
		color.Gray.Printf("  %d ancient settlements\n", n)
	}
	for _, rep := range reports {
		status := color.Green.Sprint("ok")
		switch {
		case rep.OutOfRoom:
			status = color.Red.Sprint("out of room")
		case rep.Exhausted > 0:
			status = color.Yellow.Sprintf("%d failed", rep.Exhausted)
		}
		color.Cyan.Printf("  %-22s", rep.Faction.Name)
		color.Printf(" %2d founded  %s\n", counts[rep.Faction.ID], status)
		for _, s := range registry.ByFaction(rep.Faction.ID) {
			h := m.At(s.Tile)
			color.Gray.Printf("      %-16s tile %-6d %6.1f°C %6.0fmm rivers=%d %s\n",
				s.Name, s.Tile, h.Temperature, h.Rainfall, h.Rivers, world.TerrainName(h.Terrain))
		}
	}
	color.Printf("\n%s eligible tiles remain\n", humanize.Comma(int64(remaining)))
}
