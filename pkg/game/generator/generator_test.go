package generator

import (
	"errors"
	"math"
	"strings"
	"testing"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/access"
	"cavegen/pkg/game/region"
)

func TestValidateRejectsBadConfig(t *testing.T) {
	base := DefaultConfig()
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidSize},
		{"negative height", func(c *Config) { c.Height = -3 }, ErrInvalidSize},
		{"empty below range", func(c *Config) { c.EmptyPercent = -0.1 }, ErrEmptyPercent},
		{"empty above range", func(c *Config) { c.EmptyPercent = 45 }, ErrEmptyPercent},
		{"empty NaN", func(c *Config) { c.EmptyPercent = math.NaN() }, ErrEmptyPercent},
		{"obstacles above range", func(c *Config) { c.ObstaclePercent = 1.5 }, ErrObstaclePercent},
		{"negative smoothing", func(c *Config) { c.SmoothTimes = -1 }, ErrSmoothTimes},
		{"negative threshold", func(c *Config) { c.Threshold = -1 }, ErrThreshold},
		{"negative radius", func(c *Config) { c.CorridorRadius = -2 }, ErrCorridorRadius},
		{"bad variant", func(c *Config) { c.Variant = Variant(9) }, ErrUnknownVariant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			res, genErr := Generate(cfg)
			if res != nil || !errors.Is(genErr, tt.want) {
				t.Errorf("Generate() = %v, %v; want nil, %v", res, genErr, tt.want)
			}
		})
	}
	if err := base.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
		err  bool
	}{
		{"room", VariantRoom, false},
		{"", VariantRoom, false},
		{" MAP ", VariantMap, false},
		{"dungeon", VariantRoom, true},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("ParseVariant(%q) = %v, %v", tt.in, got, err)
		}
		if err != nil && !errors.Is(err, ErrUnknownVariant) {
			t.Errorf("ParseVariant(%q) error = %v, want ErrUnknownVariant", tt.in, err)
		}
	}
}

func TestEffectiveThresholdAndRadius(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.EffectiveThreshold(); got != 10 {
		t.Errorf("room threshold = %d, want 10", got)
	}
	cfg.Variant = VariantMap
	if got := cfg.EffectiveThreshold(); got != 50 {
		t.Errorf("map threshold = %d, want 50", got)
	}
	cfg.Threshold = 3
	if got := cfg.EffectiveThreshold(); got != 3 {
		t.Errorf("explicit threshold = %d, want 3", got)
	}
	if got := cfg.EffectiveRadius(); got != 2 {
		t.Errorf("default radius = %d, want 2", got)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapSeed = 2024
	cfg.ObstacleSeed = 7
	cfg.ObstaclePercent = 0.2

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !a.Equal(b) {
		t.Error("two runs with the same config differ")
	}
	if a.Grid.String() != b.Grid.String() {
		t.Error("grid text differs between runs")
	}

	cfg.ObstacleSeed = 8
	c, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	terrainA := a.Grid.Clone()
	terrainA.ClearObstacles()
	terrainC := c.Grid.Clone()
	terrainC.ClearObstacles()
	if !terrainA.Equal(terrainC) {
		t.Error("obstacle seed changed the terrain")
	}
}

func TestGenerateOpenRoomScenario(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, EmptyPercent: 0, SmoothTimes: 0, MapSeed: 5}
	res, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(res.Regions) != 1 {
		t.Fatalf("regions = %d, want 1", len(res.Regions))
	}
	if got := res.Regions[0].Size(); got != 64 {
		t.Errorf("region size = %d, want 64", got)
	}
	if len(res.Corridors) != 0 || res.Pruned != 0 {
		t.Errorf("corridors = %d, pruned = %d; want 0, 0", len(res.Corridors), res.Pruned)
	}
	res.Grid.ForEachCell(func(x, y int, cell world.Cell) {
		want := world.Floor
		if res.Grid.IsOnPerimeter(x, y) {
			want = world.Wall
		}
		if cell.State != want {
			t.Errorf("cell (%d,%d) = %v, want %v", x, y, cell.State, want)
		}
	})
	if !res.HasEntry || res.Entry != (world.Point{X: 1, Y: 1}) {
		t.Errorf("entry = %v (%v), want (1,1)", res.Entry, res.HasEntry)
	}
	if len(res.Obstacles) != 0 {
		t.Errorf("obstacles = %d, want 0", len(res.Obstacles))
	}
}

func TestGenerateEmptyResult(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmptyPercent = 1
	cfg.ObstaclePercent = 1

	res, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !res.IsEmpty() || res.HasEntry {
		t.Errorf("IsEmpty = %v, HasEntry = %v; want true, false", res.IsEmpty(), res.HasEntry)
	}
	if len(res.Obstacles) != 0 || res.Requested != 0 {
		t.Errorf("obstacles = %d requested = %d; want none", len(res.Obstacles), res.Requested)
	}
}

func TestGenerateKeepsConnectivityAtEveryPlacement(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		checks := 0
		floor := 0
		p := &Pipeline{OnAccept: func(grid *world.Grid, entry world.Point, placed int) {
			checks++
			if floor == 0 {
				floor = grid.Count(world.Floor)
			}
			if got := access.ReachableCount(grid, entry); got != floor-placed {
				t.Fatalf("seed %d: reachable = %d after %d placements, want %d", seed, got, placed, floor-placed)
			}
		}}

		cfg := DefaultConfig()
		cfg.MapSeed = seed
		cfg.ObstacleSeed = seed + 100
		cfg.ObstaclePercent = 0.5
		res, err := p.Generate(cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if checks != len(res.Obstacles) {
			t.Errorf("seed %d: %d hook calls for %d obstacles", seed, checks, len(res.Obstacles))
		}
		if res.Grid.Obstacle(res.Entry.X, res.Entry.Y) != world.None {
			t.Errorf("seed %d: obstacle on entry %v", seed, res.Entry)
		}
		if res.Requested != len(res.Obstacles)+res.Rejected {
			t.Errorf("seed %d: requested %d != placed %d + rejected %d", seed, res.Requested, len(res.Obstacles), res.Rejected)
		}
	}
}

func TestGeneratePrunesSmallRegions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = VariantMap
	cfg.SmoothTimes = 0
	cfg.ObstaclePercent = 0
	cfg.CorridorRadius = 1

	res, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, r := range res.Regions {
		if r.Size() < cfg.EffectiveThreshold() {
			t.Errorf("region of size %d survived threshold %d", r.Size(), cfg.EffectiveThreshold())
		}
	}
	// Corridors may merge surviving regions but never create new small ones
	// that are disconnected from every survivor.
	for _, tiles := range region.AllRegions(res.Grid, world.Floor) {
		touches := false
		for _, p := range tiles {
			for _, r := range res.Regions {
				for _, q := range r.Tiles {
					if p == q {
						touches = true
					}
				}
			}
			for _, c := range res.Corridors {
				for _, q := range c.Line {
					if p == q {
						touches = true
					}
				}
			}
			if touches {
				break
			}
		}
		if !touches {
			t.Errorf("floor region at %v is neither a survivor nor a corridor", tiles[0])
		}
	}
}

func TestReobstacleMatchesFullRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapSeed = 77
	cfg.ObstacleSeed = 1
	first, err := CellularAutomaton.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	again, err := CellularAutomaton.Reobstacle(first, 2, 0.25)
	if err != nil {
		t.Fatalf("Reobstacle: %v", err)
	}

	cfg.ObstacleSeed = 2
	cfg.ObstaclePercent = 0.25
	full, err := CellularAutomaton.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !again.Equal(full) {
		t.Error("Reobstacle differs from a full run with the same seeds")
	}
	if first.Grid.ObstacleCount() != len(first.Obstacles) {
		t.Error("Reobstacle modified the previous grid")
	}
	if _, err := CellularAutomaton.Reobstacle(first, 2, 2); !errors.Is(err, ErrObstaclePercent) {
		t.Errorf("Reobstacle(percent=2) error = %v, want ErrObstaclePercent", err)
	}
}

func TestTilesByCategoryCoversGrid(t *testing.T) {
	res, err := Generate(DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	tiles := res.TilesByCategory()
	if total := len(tiles.Wall) + len(tiles.Open) + len(tiles.Obstacle); total != res.Grid.Len() {
		t.Errorf("categories cover %d cells, want %d", total, res.Grid.Len())
	}
	if len(tiles.Obstacle) != len(res.Obstacles) {
		t.Errorf("obstacle tiles = %d, want %d", len(tiles.Obstacle), len(res.Obstacles))
	}
	if len(tiles.Open)+len(tiles.Obstacle) != len(res.FloorTiles) {
		t.Errorf("floor tiles = %d, want %d", len(tiles.Open)+len(tiles.Obstacle), len(res.FloorTiles))
	}
}

func TestGeneratorName(t *testing.T) {
	if got := DefaultGenerator.Name(); got != "Cellular Automaton" {
		t.Errorf("Name() = %q", got)
	}
}

func TestSummaryLabelsSeeds(t *testing.T) {
	res, err := Generate(Config{Width: 10, Height: 10, MapSeed: 3, ObstacleSeed: 17, ObstaclePercent: 0.1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := res.Summary()
	for _, want := range []string{"map_seed=3", "obstacle_seed=17"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, missing %q", got, want)
		}
	}
}
