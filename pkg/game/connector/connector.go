// Package connector removes undersized floor regions and links the survivors
// with carved corridors.
package connector

import (
	"math"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/region"
)

// Pruning thresholds and the default corridor brush.
const (
	RoomThreshold = 10
	MapThreshold  = 50
	DefaultRadius = 2
)

// Corridor records one carved connection between two regions.
type Corridor struct {
	A        *region.Region
	B        *region.Region
	From     world.Point
	To       world.Point
	Distance float64
	Line     []world.Point
}

// Prune turns every floor region smaller than threshold into Wall and returns
// the surviving regions in discovery order, plus the number pruned.
func Prune(grid *world.Grid, threshold int) ([]*region.Region, int) {
	var kept [][]world.Point
	pruned := 0

	for _, tiles := range region.AllRegions(grid, world.Floor) {
		if len(tiles) < threshold {
			for _, p := range tiles {
				grid.SetState(p.X, p.Y, world.Wall)
			}
			pruned++
			continue
		}
		kept = append(kept, tiles)
	}

	// Edge tiles are derived after all pruning so they see the final walls.
	survivors := make([]*region.Region, 0, len(kept))
	for _, tiles := range kept {
		survivors = append(survivors, region.New(tiles, grid))
	}
	return survivors, pruned
}

// ConnectRegions walks the regions in order and links each one to its nearest
// not-yet-connected region, measured between edge tiles. Ties keep the first
// pair found. Every link carves a corridor of the given radius.
// A single pass does not guarantee that all regions end up joined.
func ConnectRegions(grid *world.Grid, regions []*region.Region, radius int) []Corridor {
	var corridors []Corridor

	for _, a := range regions {
		var (
			best     *region.Region
			from, to world.Point
			bestDist int
		)

		for _, b := range regions {
			if a == b || a.IsConnected(b) {
				continue
			}
			for _, ta := range a.EdgeTiles {
				for _, tb := range b.EdgeTiles {
					d := ta.DistanceSquared(tb)
					if best != nil && d >= bestDist {
						continue
					}
					best, from, to, bestDist = b, ta, tb, d
				}
			}
		}

		if best == nil {
			continue
		}

		region.Connect(a, best)
		line := Carve(grid, from, to, radius)
		corridors = append(corridors, Corridor{
			A:        a,
			B:        best,
			From:     from,
			To:       to,
			Distance: math.Sqrt(float64(bestDist)),
			Line:     line,
		})
	}

	return corridors
}

// Carve rasterises the line between from and to and paints a Floor disk of the
// given radius at every point on it. Returns the rasterised line.
func Carve(grid *world.Grid, from, to world.Point, radius int) []world.Point {
	line := world.Line(from, to)
	for _, p := range line {
		grid.PaintDisk(p, radius, world.Floor)
	}
	return line
}

// Clusters returns how many groups the connected relation splits regions into.
func Clusters(regions []*region.Region) int {
	seen := mapset.New[*region.Region]()
	clusters := 0

	for _, start := range regions {
		if seen.Has(start) {
			continue
		}
		clusters++

		q := queue.New[*region.Region]()
		q.Enqueue(start)
		seen.Put(start)
		for !q.Empty() {
			r := q.Dequeue()
			r.Neighbours(func(n *region.Region) {
				if !seen.Has(n) {
					seen.Put(n)
					q.Enqueue(n)
				}
			})
		}
	}

	return clusters
}
