// Package access checks that every open floor tile can be reached from an entry tile.
package access

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"cavegen/pkg/engine/world"
)

// Reachable returns every open floor tile reachable from entry by orthogonal
// moves, entry included. Returns an empty set if entry is not open floor.
func Reachable(grid *world.Grid, entry world.Point) mapset.Set[world.Point] {
	visited := mapset.New[world.Point]()
	if !grid.IsOpen(entry.X, entry.Y) {
		return visited
	}

	q := queue.New[world.Point]()
	q.Enqueue(entry)
	visited.Put(entry)

	for !q.Empty() {
		p := q.Dequeue()
		for _, dir := range world.AllDirections() {
			n := p.Add(dir)
			if visited.Has(n) || !grid.IsOpen(n.X, n.Y) {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}

	return visited
}

// ReachableCount returns the number of open floor tiles reachable from entry
func ReachableCount(grid *world.Grid, entry world.Point) int {
	return Reachable(grid, entry).Size()
}

// FullyAccessible reports whether every uncovered floor tile is reachable from entry.
func FullyAccessible(grid *world.Grid, entry world.Point, floorCount, solidCount int) bool {
	return ReachableCount(grid, entry) == floorCount-solidCount
}

// StillAccessibleIfBlocked reports whether the grid stays fully accessible
// after candidate is covered. The grid is restored before returning.
func StillAccessibleIfBlocked(grid *world.Grid, entry, candidate world.Point, floorCount, solidCount int) bool {
	if !grid.SetObstacle(candidate.X, candidate.Y, world.Solid) {
		return false
	}
	ok := FullyAccessible(grid, entry, floorCount, solidCount+1)
	grid.SetObstacle(candidate.X, candidate.Y, world.None)
	return ok
}
