package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/talgya/immersive-worldgen/internal/placement"
)

const shippedConfig = "../../configs/worldgen.yaml"

func TestDefault_PolicyMatchesStockPlacement(t *testing.T) {
	if got, want := Default().Policy(), placement.DefaultPolicy(); got != want {
		t.Fatalf("default policy = %+v, want %+v", got, want)
	}
}

func TestLoad_ShippedConfig(t *testing.T) {
	cfg, err := Load(shippedConfig)
	if err != nil {
		t.Fatalf("load worldgen.yaml: %v", err)
	}
	if cfg.World.Radius != 45 || cfg.Placement.MaxDraws != 500 || cfg.Placement.MinRainfall != 700 {
		t.Fatalf("unexpected values: %+v", cfg)
	}

	factions := cfg.BuildFactions()
	if len(factions) != len(cfg.Factions) {
		t.Fatalf("built %d factions, want %d", len(factions), len(cfg.Factions))
	}
	byName := map[string]int{}
	for i, f := range factions {
		byName[f.Name] = i
		if int(f.ID) != i+1 {
			t.Fatalf("faction %q id = %d, want %d", f.Name, f.ID, i+1)
		}
	}
	if !factions[byName["New Arrivals"]].IsPlayer() {
		t.Fatalf("New Arrivals should be the player faction")
	}
	yeti, ok := factions[byName["Frostborn Clans"]].Representative()
	if !ok || yeti.ComfortTempMin() != -40 || yeti.ComfortTempMax() != 0 {
		t.Fatalf("Frostborn representative = %v, %v", yeti, ok)
	}
	if _, ok := factions[byName["Ashen Path"]].Representative(); ok {
		t.Fatalf("Ashen Path has no race and should fall back to defaults")
	}

	policy := cfg.Policy()
	if policy.DefaultMinTemp != -200 || policy.DefaultMaxTemp != 200 {
		t.Fatalf("policy = %+v", policy)
	}
	if gen := cfg.Gen(); gen.Seed != 1337 || gen.MountainLvl != 0.72 {
		t.Fatalf("gen = %+v", gen)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("world:\n  radius: 12\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Default()
	if cfg.World.Radius != 12 {
		t.Fatalf("radius = %d, want 12", cfg.World.Radius)
	}
	if cfg.Placement != def.Placement || cfg.World.SeaLevel != def.World.SeaLevel {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"radius", func(c *Config) { c.World.Radius = 0 }, "world.radius"},
		{"levels", func(c *Config) { c.World.SeaLevel = 0.9 }, "sea_level"},
		{"draws", func(c *Config) { c.Placement.MaxDraws = 0 }, "max_draws"},
		{"rain", func(c *Config) { c.Placement.MinRainfall = -1 }, "min_rainfall"},
		{"dup faction", func(c *Config) {
			c.Factions = append(c.Factions, c.Factions[0])
		}, "duplicate name"},
		{"race band", func(c *Config) {
			c.Factions = []FactionConfig{{Name: "x", Race: &RaceConfig{ComfortMin: 10, ComfortMax: 0}}}
		}, "comfort_min"},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: err = %v, want mention of %q", tc.name, err, tc.want)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestSchema_ValidatesShippedConfig(t *testing.T) {
	schema, err := jsonschema.Compile(filepath.Join("..", "..", "configs", "worldgen.schema.json"))
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}

	validate := func(doc string) error {
		t.Helper()
		var raw any
		if err := yaml.Unmarshal([]byte(doc), &raw); err != nil {
			t.Fatalf("yaml: %v", err)
		}
		// Round-trip through JSON so numbers match what the validator expects.
		b, err := json.Marshal(raw)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			t.Fatalf("json unmarshal: %v", err)
		}
		return schema.Validate(v)
	}

	shipped, err := os.ReadFile(shippedConfig)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := validate(string(shipped)); err != nil {
		t.Fatalf("shipped config fails schema: %v", err)
	}
	if err := validate("placement:\n  max_draws: 0\n"); err == nil {
		t.Fatalf("max_draws 0 should fail schema")
	}
	if err := validate("factions:\n  - player: true\n"); err == nil {
		t.Fatalf("faction without name should fail schema")
	}
	if err := validate("world:\n  radius: 10\n  colour: blue\n"); err == nil {
		t.Fatalf("unknown key should fail schema")
	}
}
