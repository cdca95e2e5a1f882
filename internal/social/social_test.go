package social

import (
	"strings"
	"sync"
	"testing"

	"github.com/talgya/immersive-worldgen/internal/placement"
	"github.com/talgya/immersive-worldgen/internal/world"
)

func TestFaction_RepresentativeChain(t *testing.T) {
	lizard := &Race{Name: "Lizardfolk", ComfortMin: 15, ComfortMax: 45}

	var nilFaction *Faction
	cases := []struct {
		name string
		f    *Faction
		ok   bool
	}{
		{"nil faction", nilFaction, false},
		{"no def", &Faction{Name: "a"}, false},
		{"no groups", &Faction{Def: &FactionDef{}}, false},
		{"empty options", &Faction{Def: &FactionDef{PawnGroups: []PawnGroup{{}}}}, false},
		{"kind without race", &Faction{Def: &FactionDef{PawnGroups: []PawnGroup{{Options: []PawnOption{{Kind: &PawnKind{}}}}}}}, false},
		{"resolvable", NewFaction(1, "Scales", false, lizard), true},
	}
	for _, tc := range cases {
		c, ok := tc.f.Representative()
		if ok != tc.ok {
			t.Fatalf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
		}
		if ok && (c.ComfortTempMin() != 15 || c.ComfortTempMax() != 45) {
			t.Fatalf("%s: band = [%v, %v]", tc.name, c.ComfortTempMin(), c.ComfortTempMax())
		}
	}
}

func TestFaction_ProfileViaPolicy(t *testing.T) {
	yeti := &Race{Name: "Yeti", ComfortMin: -40, ComfortMax: 0}
	policy := placement.DefaultPolicy()

	npc := NewFaction(1, "Frostborn", false, yeti)
	if p := policy.ProfileFor(npc); p.MinTemp != -40 || p.MaxTemp != 0 {
		t.Fatalf("npc profile = %+v", p)
	}
	player := NewFaction(2, "Colony", true, yeti)
	if p := policy.ProfileFor(player); p.MinTemp != -200 || p.MaxTemp != 200 {
		t.Fatalf("player profile = %+v, want wide defaults", p)
	}
	var none *Faction
	if p := policy.ProfileFor(none); p.MinTemp != -200 {
		t.Fatalf("nil faction profile = %+v", p)
	}
	if none.String() != "null" || npc.String() != "Frostborn" {
		t.Fatalf("unexpected faction names")
	}
}

func TestRegistry_FoundAndSpawn(t *testing.T) {
	r := NewRegistry(1)
	f := NewFaction(7, "Merchants", false, nil)

	a := r.Found(f, 10)
	b := r.Spawn(nil, 20)

	if a.ID == b.ID || a.Name == "" || a.Name == b.Name {
		t.Fatalf("settlements not distinct: %+v %+v", a, b)
	}
	if a.Origin != OriginPlaced || b.Origin != OriginSpawned {
		t.Fatalf("origins = %v, %v", a.Origin, b.Origin)
	}
	tiles := r.ExistingSettlementTiles()
	if len(tiles) != 2 || tiles[0] != 10 || tiles[1] != 20 {
		t.Fatalf("tiles = %v", tiles)
	}
	if s, ok := r.At(20); !ok || s != b {
		t.Fatalf("At(20) = %v, %v", s, ok)
	}
	if got := r.ByFaction(7); len(got) != 1 || got[0] != a {
		t.Fatalf("ByFaction = %v", got)
	}
	if counts := r.Counts(); len(counts) != 2 || counts[0] != 1 || counts[7] != 1 {
		t.Fatalf("Counts = %v", counts)
	}
}

func TestRegistry_NamesStayUniqueBeyondPool(t *testing.T) {
	r := NewRegistry(3)
	seen := make(map[string]bool)
	total := world.NamePoolSize() + 200
	numbered := 0
	for i := 0; i < total; i++ {
		s := r.Spawn(nil, placement.TileID(i))
		if seen[s.Name] {
			t.Fatalf("duplicate name %q at %d", s.Name, i)
		}
		seen[s.Name] = true
		if strings.Contains(s.Name, " ") {
			if i < world.NamePoolSize() {
				t.Fatalf("name %d %q numbered before the pool ran dry", i, s.Name)
			}
			numbered++
		}
	}
	if numbered != 200 {
		t.Fatalf("numbered %d names, want 200", numbered)
	}
}

func TestRegistry_SameSeedSameNames(t *testing.T) {
	a, b := NewRegistry(11), NewRegistry(11)
	for i := 0; i < 20; i++ {
		if x, y := a.Spawn(nil, placement.TileID(i)).Name, b.Spawn(nil, placement.TileID(i)).Name; x != y {
			t.Fatalf("settlement %d named %q and %q", i, x, y)
		}
	}
}

func TestRegistry_ConcurrentFound(t *testing.T) {
	r := NewRegistry(5)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				r.Found(nil, placement.TileID(w*100+i))
				r.ExistingSettlementTiles()
			}
		}(w)
	}
	wg.Wait()
	if len(r.All()) != 200 {
		t.Fatalf("registered %d, want 200", len(r.All()))
	}
}

func TestRomanize(t *testing.T) {
	cases := map[int]string{2: "II", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		if got := romanize(n); got != want {
			t.Fatalf("romanize(%d) = %q, want %q", n, got, want)
		}
	}
}
