// Package obstacle places solid obstacles on floor tiles without cutting any
// floor tile off from the entry.
package obstacle

import (
	"math"

	"cavegen/pkg/engine/rng"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/access"
)

// Outcome summarises one placement run.
type Outcome struct {
	Requested int
	Placed    int
	Rejected  int
	Obstacles []world.Point // in acceptance order
}

// Placer draws candidate tiles and keeps each one only if the floor stays fully accessible.
type Placer struct {
	// OnAccept, if set, is called after every accepted placement with the
	// tile and the number of obstacles placed so far.
	OnAccept func(p world.Point, placed int)
}

// TargetCount returns floor(floorCount * percent), capped at floorCount.
func TargetCount(floorCount int, percent float64) int {
	if floorCount <= 0 || percent <= 0 {
		return 0
	}
	target := int(math.Floor(float64(floorCount) * percent))
	if target > floorCount {
		target = floorCount
	}
	return target
}

// Place performs exactly target draws from cursor. The entry tile and tiles
// already covered are rejected without a search. Any other tile is covered
// and then kept only if every uncovered floor tile is still reachable from entry.
// The cursor must not be empty when target > 0.
func (pl *Placer) Place(grid *world.Grid, cursor *rng.Cursor, entry world.Point, floorCount, target int) Outcome {
	out := Outcome{Requested: target}
	solid := grid.ObstacleCount()

	for i := 0; i < target; i++ {
		p := cursor.Draw()

		if p == entry || grid.Obstacle(p.X, p.Y) == world.Solid {
			out.Rejected++
			continue
		}

		if !access.StillAccessibleIfBlocked(grid, entry, p, floorCount, solid) {
			out.Rejected++
			continue
		}

		grid.SetObstacle(p.X, p.Y, world.Solid)
		solid++
		out.Placed++
		out.Obstacles = append(out.Obstacles, p)
		if pl.OnAccept != nil {
			pl.OnAccept(p, out.Placed)
		}
	}

	return out
}

// Place runs a Placer without hooks.
func Place(grid *world.Grid, cursor *rng.Cursor, entry world.Point, floorCount, target int) Outcome {
	return (&Placer{}).Place(grid, cursor, entry, floorCount, target)
}
