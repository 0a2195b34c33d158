package generator

import (
	"fmt"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/connector"
	"cavegen/pkg/game/region"
)

// Result is the output of one generation run.
type Result struct {
	Config Config
	Grid   *world.Grid

	// Entry is the first floor tile in row-major order. Only valid when HasEntry is set.
	Entry    world.Point
	HasEntry bool

	// FloorTiles lists every Floor cell, covered or not, in row-major order.
	FloorTiles []world.Point
	// Obstacles lists accepted obstacles in placement order.
	Obstacles []world.Point

	Regions   []*region.Region
	Pruned    int
	Corridors []connector.Corridor
	Clusters  int

	Requested int
	Rejected  int
}

// Tiles groups grid positions by what occupies them.
type Tiles struct {
	Wall     []world.Point
	Open     []world.Point
	Obstacle []world.Point
}

// TilesByCategory splits the grid into walls, open floor, and covered floor, each row-major
func (r *Result) TilesByCategory() Tiles {
	var tiles Tiles
	r.Grid.ForEachCell(func(x, y int, cell world.Cell) {
		p := world.Point{X: x, Y: y}
		switch {
		case cell.State == world.Wall:
			tiles.Wall = append(tiles.Wall, p)
		case cell.Obstacle == world.Solid:
			tiles.Obstacle = append(tiles.Obstacle, p)
		default:
			tiles.Open = append(tiles.Open, p)
		}
	})
	return tiles
}

// IsEmpty reports whether the run produced no floor at all
func (r *Result) IsEmpty() bool {
	return len(r.FloorTiles) == 0
}

// Equal reports whether two results describe the same grid, entry, and obstacle sequence
func (r *Result) Equal(o *Result) bool {
	if r == nil || o == nil {
		return r == o
	}
	if !r.Grid.Equal(o.Grid) || r.HasEntry != o.HasEntry || r.Entry != o.Entry {
		return false
	}
	if len(r.Obstacles) != len(o.Obstacles) {
		return false
	}
	for i := range r.Obstacles {
		if r.Obstacles[i] != o.Obstacles[i] {
			return false
		}
	}
	return true
}

// Summary returns a one-line description for logs
func (r *Result) Summary() string {
	return fmt.Sprintf("%dx%d map_seed=%d obstacle_seed=%d floor=%d regions=%d pruned=%d corridors=%d clusters=%d placed=%d/%d",
		r.Grid.Width(), r.Grid.Height(), r.Config.MapSeed, r.Config.ObstacleSeed,
		len(r.FloorTiles), len(r.Regions), r.Pruned, len(r.Corridors), r.Clusters,
		len(r.Obstacles), r.Requested)
}
