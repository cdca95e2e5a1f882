// Package config loads the worldgen YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/immersive-worldgen/internal/placement"
	"github.com/talgya/immersive-worldgen/internal/social"
	"github.com/talgya/immersive-worldgen/internal/world"
)

// Config is the whole worldgen file.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Placement PlacementConfig `yaml:"placement"`
	Journal   JournalConfig   `yaml:"journal"`
	Factions  []FactionConfig `yaml:"factions"`
}

// WorldConfig drives planet generation.
type WorldConfig struct {
	Radius         int     `yaml:"radius"`
	Seed           int64   `yaml:"seed"`
	SeaLevel       float64 `yaml:"sea_level"`
	MountainLevel  float64 `yaml:"mountain_level"`
	MinTemperature float64 `yaml:"min_temperature"`
	MaxTemperature float64 `yaml:"max_temperature"`
	MaxRainfall    float64 `yaml:"max_rainfall"`

	// Settlements spawned before placement starts, best sites first.
	PreexistingSites   int `yaml:"preexisting_sites"`
	PreexistingSpacing int `yaml:"preexisting_spacing"`
}

// PlacementConfig tunes the settlement selector. Its defaults are
// placement.DefaultPolicy; overriding them is opt-in.
type PlacementConfig struct {
	MaxDraws       int     `yaml:"max_draws"`
	MinRainfall    float64 `yaml:"min_rainfall"`
	DefaultMinTemp float64 `yaml:"default_min_temp"`
	DefaultMaxTemp float64 `yaml:"default_max_temp"`
}

// JournalConfig locates the placement event journal.
type JournalConfig struct {
	Path string `yaml:"path"` // empty disables the journal
}

// FactionConfig declares one faction and how many settlements it wants.
type FactionConfig struct {
	Name         string      `yaml:"name"`
	Player       bool        `yaml:"player"`
	Settlements  int         `yaml:"settlements"`
	RequireRiver bool        `yaml:"require_river"`
	Race         *RaceConfig `yaml:"race"`
}

// RaceConfig is the representative race of a faction.
type RaceConfig struct {
	Name       string  `yaml:"name"`
	ComfortMin float64 `yaml:"comfort_min"`
	ComfortMax float64 `yaml:"comfort_max"`
}

// Default returns the built-in configuration: a default planet, stock
// placement tuning and a single player faction.
func Default() Config {
	gen := world.DefaultGenConfig()
	policy := placement.DefaultPolicy()
	return Config{
		World: WorldConfig{
			Radius:             gen.Radius,
			Seed:               gen.Seed,
			SeaLevel:           gen.SeaLevel,
			MountainLevel:      gen.MountainLvl,
			MinTemperature:     gen.MinTemperature,
			MaxTemperature:     gen.MaxTemperature,
			MaxRainfall:        gen.MaxRainfall,
			PreexistingSites:   0,
			PreexistingSpacing: 8,
		},
		Placement: PlacementConfig{
			MaxDraws:       policy.MaxDraws,
			MinRainfall:    policy.MinRainfall,
			DefaultMinTemp: policy.DefaultMinTemp,
			DefaultMaxTemp: policy.DefaultMaxTemp,
		},
		Journal: JournalConfig{Path: "data/placement.db"},
		Factions: []FactionConfig{
			{Name: "Colony", Player: true, Settlements: 1},
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges the generator and selector rely on.
func (c Config) Validate() error {
	var errs []error
	w := c.World
	if w.Radius < 1 {
		errs = append(errs, fmt.Errorf("world.radius must be >= 1, got %d", w.Radius))
	}
	if w.SeaLevel < 0 || w.SeaLevel >= w.MountainLevel || w.MountainLevel > 1 {
		errs = append(errs, fmt.Errorf("need 0 <= world.sea_level < world.mountain_level <= 1, got %v/%v", w.SeaLevel, w.MountainLevel))
	}
	if w.MinTemperature >= w.MaxTemperature {
		errs = append(errs, fmt.Errorf("world.min_temperature must be below max_temperature"))
	}
	if w.MaxRainfall <= 0 {
		errs = append(errs, fmt.Errorf("world.max_rainfall must be positive"))
	}
	if w.PreexistingSites < 0 || w.PreexistingSpacing < 0 {
		errs = append(errs, fmt.Errorf("world.preexisting_* must not be negative"))
	}

	p := c.Placement
	if p.MaxDraws < 1 {
		errs = append(errs, fmt.Errorf("placement.max_draws must be >= 1, got %d", p.MaxDraws))
	}
	if p.MinRainfall < 0 {
		errs = append(errs, fmt.Errorf("placement.min_rainfall must not be negative"))
	}
	if p.DefaultMinTemp > p.DefaultMaxTemp {
		errs = append(errs, fmt.Errorf("placement.default_min_temp exceeds default_max_temp"))
	}

	names := make(map[string]bool)
	for i, f := range c.Factions {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("factions[%d].name is required", i))
		}
		if names[f.Name] {
			errs = append(errs, fmt.Errorf("factions[%d]: duplicate name %q", i, f.Name))
		}
		names[f.Name] = true
		if f.Settlements < 0 {
			errs = append(errs, fmt.Errorf("factions[%d].settlements must not be negative", i))
		}
		if f.Race != nil && f.Race.ComfortMin > f.Race.ComfortMax {
			errs = append(errs, fmt.Errorf("factions[%d].race comfort_min exceeds comfort_max", i))
		}
	}
	return errors.Join(errs...)
}

// Gen converts the world section into generator parameters.
func (c Config) Gen() world.GenConfig {
	return world.GenConfig{
		Radius:         c.World.Radius,
		Seed:           c.World.Seed,
		SeaLevel:       c.World.SeaLevel,
		MountainLvl:    c.World.MountainLevel,
		MinTemperature: c.World.MinTemperature,
		MaxTemperature: c.World.MaxTemperature,
		MaxRainfall:    c.World.MaxRainfall,
	}
}

// Policy converts the placement section into selector tuning.
func (c Config) Policy() placement.Policy {
	return placement.Policy{
		MaxDraws:       c.Placement.MaxDraws,
		MinRainfall:    c.Placement.MinRainfall,
		DefaultMinTemp: c.Placement.DefaultMinTemp,
		DefaultMaxTemp: c.Placement.DefaultMaxTemp,
	}
}

// BuildFactions creates one faction per entry, ids starting at 1 in file
// order.
func (c Config) BuildFactions() []*social.Faction {
	out := make([]*social.Faction, len(c.Factions))
	for i, fc := range c.Factions {
		var race *social.Race
		if fc.Race != nil {
			race = &social.Race{
				Name:       fc.Race.Name,
				ComfortMin: fc.Race.ComfortMin,
				ComfortMax: fc.Race.ComfortMax,
			}
		}
		out[i] = social.NewFaction(social.FactionID(i+1), fc.Name, fc.Player, race)
	}
	return out
}
