// Package region extracts 4-connected regions of equal terrain from a grid.
package region

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"cavegen/pkg/engine/world"
)

// Region is a maximal 4-connected group of cells sharing one state.
// Connections are symmetric and never imply ownership.
type Region struct {
	Tiles     []world.Point
	EdgeTiles []world.Point
	State     world.State

	connected mapset.Set[*Region]
}

// New builds a region from its member tiles and derives its edge tiles from grid.
func New(tiles []world.Point, grid *world.Grid) *Region {
	state := world.Wall
	if len(tiles) > 0 {
		state = grid.State(tiles[0].X, tiles[0].Y)
	}
	return &Region{
		Tiles:     tiles,
		EdgeTiles: EdgeTiles(tiles, grid),
		State:     state,
		connected: mapset.New[*Region](),
	}
}

// Size returns the number of member tiles
func (r *Region) Size() int {
	return len(r.Tiles)
}

// IsConnected reports whether r has been connected to other
func (r *Region) IsConnected(other *Region) bool {
	return r.connected.Has(other)
}

// Connections returns the number of regions r is connected to
func (r *Region) Connections() int {
	return r.connected.Size()
}

// Neighbours calls fn for every region directly connected to r
func (r *Region) Neighbours(fn func(*Region)) {
	r.connected.Each(fn)
}

// Connect links a and b in both directions.
func Connect(a, b *Region) {
	if a == b {
		return
	}
	a.connected.Put(b)
	b.connected.Put(a)
}

// FloodFill returns every cell 4-connected to origin that shares its state,
// in breadth-first order starting with origin. Returns nil if origin is outside the grid.
func FloodFill(grid *world.Grid, origin world.Point) []world.Point {
	if !grid.Contains(origin) {
		return nil
	}
	visited := make([]bool, grid.Len())
	return flood(grid, origin, visited)
}

func flood(grid *world.Grid, origin world.Point, visited []bool) []world.Point {
	state := grid.State(origin.X, origin.Y)

	var tiles []world.Point
	q := queue.New[world.Point]()
	q.Enqueue(origin)
	visited[grid.Index(origin)] = true

	for !q.Empty() {
		p := q.Dequeue()
		tiles = append(tiles, p)

		for _, dir := range world.AllDirections() {
			n := p.Add(dir)
			if !grid.Contains(n) || grid.State(n.X, n.Y) != state {
				continue
			}
			idx := grid.Index(n)
			if visited[idx] {
				continue
			}
			visited[idx] = true
			q.Enqueue(n)
		}
	}

	return tiles
}

// AllRegions scans the grid in row-major order and returns the tiles of every
// region of the given state. Each cell appears in exactly one region.
func AllRegions(grid *world.Grid, state world.State) [][]world.Point {
	visited := make([]bool, grid.Len())
	var regions [][]world.Point

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := world.Point{X: x, Y: y}
			if visited[grid.Index(p)] || grid.State(x, y) != state {
				continue
			}
			regions = append(regions, flood(grid, p, visited))
		}
	}

	return regions
}

// EdgeTiles returns the members that have an in-bounds orthogonal neighbour of
// the opposite state, in member order.
func EdgeTiles(tiles []world.Point, grid *world.Grid) []world.Point {
	var edges []world.Point
	for _, p := range tiles {
		opposite := grid.State(p.X, p.Y).Opposite()
		for _, dir := range world.AllDirections() {
			n := p.Add(dir)
			if grid.Contains(n) && grid.State(n.X, n.Y) == opposite {
				edges = append(edges, p)
				break
			}
		}
	}
	return edges
}
