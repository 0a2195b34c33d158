// Package generator runs the full cave pipeline: seed, smooth, prune, connect,
// and place obstacles.
package generator

import (
	"log"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/automaton"
	"cavegen/pkg/game/connector"
	"cavegen/pkg/game/obstacle"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(cfg Config) (*Result, error)
	Name() string
}

// Available generators
var (
	CellularAutomaton = &Pipeline{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = CellularAutomaton

// Generate runs the default generator
func Generate(cfg Config) (*Result, error) {
	return DefaultGenerator.Generate(cfg)
}

// Pipeline is the cellular automaton cave generator.
type Pipeline struct {
	// OnAccept, if set, is called after every accepted obstacle with the grid
	// being built, the entry tile, and the number placed so far.
	OnAccept func(grid *world.Grid, entry world.Point, placed int)
}

// Name returns the name of this generator
func (p *Pipeline) Name() string {
	return "Cellular Automaton"
}

// Generate validates cfg and builds a new grid from it. The same config always
// produces the same result.
func (p *Pipeline) Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := world.NewGrid(cfg.Width, cfg.Height)

	mapStream := rng.New(cfg.MapSeed)
	automaton.Seed(grid, mapStream, cfg.EmptyPercent)
	log.Printf("generator: seeded %dx%d map seed %d, %d floor", cfg.Width, cfg.Height, mapStream.Seed(), grid.Count(world.Floor))

	automaton.Smooth(grid, cfg.SmoothTimes)
	log.Printf("generator: smoothed %d passes, %d floor", cfg.SmoothTimes, grid.Count(world.Floor))

	regions, pruned := connector.Prune(grid, cfg.EffectiveThreshold())
	corridors := connector.ConnectRegions(grid, regions, cfg.EffectiveRadius())
	log.Printf("generator: %d regions kept, %d pruned, %d corridors", len(regions), pruned, len(corridors))

	res := &Result{
		Config:    cfg,
		Grid:      grid,
		Regions:   regions,
		Pruned:    pruned,
		Corridors: corridors,
		Clusters:  connector.Clusters(regions),
	}

	p.placeObstacles(res)
	return res, nil
}

// Reobstacle returns a copy of prev with its obstacles replaced by a fresh
// placement from obstacleSeed and percent. The terrain is not regenerated.
func (p *Pipeline) Reobstacle(prev *Result, obstacleSeed int64, percent float64) (*Result, error) {
	cfg := prev.Config
	cfg.ObstacleSeed = obstacleSeed
	cfg.ObstaclePercent = percent
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := prev.Grid.Clone()
	grid.ClearObstacles()

	res := &Result{
		Config:    cfg,
		Grid:      grid,
		Regions:   prev.Regions,
		Pruned:    prev.Pruned,
		Corridors: prev.Corridors,
		Clusters:  prev.Clusters,
	}

	p.placeObstacles(res)
	return res, nil
}

// placeObstacles fixes the entry and fills in the obstacle fields of res.
// Grids without floor keep HasEntry unset and get no obstacles.
func (p *Pipeline) placeObstacles(res *Result) {
	grid := res.Grid
	res.FloorTiles = grid.Tiles(world.Floor)
	if len(res.FloorTiles) == 0 {
		log.Printf("generator: no floor left, skipping obstacles")
		return
	}

	res.Entry = res.FloorTiles[0]
	res.HasEntry = true

	placer := &obstacle.Placer{}
	if p.OnAccept != nil {
		placer.OnAccept = func(_ world.Point, placed int) {
			p.OnAccept(grid, res.Entry, placed)
		}
	}

	target := obstacle.TargetCount(len(res.FloorTiles), res.Config.ObstaclePercent)
	obstacleStream := rng.New(res.Config.ObstacleSeed)
	cursor := obstacleStream.Shuffle(res.FloorTiles)
	out := placer.Place(grid, cursor, res.Entry, len(res.FloorTiles), target)

	res.Obstacles = out.Obstacles
	res.Requested = out.Requested
	res.Rejected = out.Rejected
	log.Printf("generator: obstacle seed %d placed %d of %d (%d rejected)",
		obstacleStream.Seed(), out.Placed, out.Requested, out.Rejected)
}
