// Package automaton seeds a grid with random terrain and smooths it into caves.
package automaton

import (
	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/world"
)

// WallMajority is the neighbour count above which a cell turns into Wall.
const WallMajority = 4

// Seed fills the grid in row-major order. Border cells are always Wall and do
// not consume a roll. Interior cells become Wall when the roll is below
// emptyPercent (a probability in [0, 1]) and Floor otherwise.
func Seed(grid *world.Grid, stream *rng.Stream, emptyPercent float64) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.IsOnPerimeter(x, y) {
				grid.SetState(x, y, world.Wall)
				continue
			}

			if stream.NextUnit() < emptyPercent {
				grid.SetState(x, y, world.Wall)
			} else {
				grid.SetState(x, y, world.Floor)
			}
		}
	}
}

// Smooth runs passes rounds of the wall-majority rule. Every round reads from
// a snapshot of the previous round, so the update order does not matter.
func Smooth(grid *world.Grid, passes int) {
	for i := 0; i < passes; i++ {
		Step(grid)
	}
}

// Step applies a single smoothing round and returns the number of cells that changed.
func Step(grid *world.Grid) int {
	previous := grid.Clone()
	changed := 0

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			next := world.Floor
			if previous.CountWallNeighbours(x, y) > WallMajority {
				next = world.Wall
			}

			if previous.State(x, y) != next {
				changed++
			}
			grid.SetState(x, y, next)
		}
	}

	return changed
}
