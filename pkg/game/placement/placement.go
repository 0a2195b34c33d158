// Package placement turns a generation result into an ordered list of tile
// placement commands and maps grid points into world space.
package placement

import (
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/generator"
)

// Kind is what a placement command puts down.
type Kind int

// Later kinds draw on top of earlier ones at the same point.
const (
	KindFloor Kind = iota
	KindWall
	KindWallEdge
	KindObstacle
	KindEntry
)

// EdgeWallNeighbours is the wall-neighbour count below which a wall is drawn as a cave wall.
const EdgeWallNeighbours = 7

// String returns the message key for the kind's legend entry
func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "LEGEND_FLOOR"
	case KindWall:
		return "LEGEND_WALL"
	case KindWallEdge:
		return "LEGEND_WALL_EDGE"
	case KindObstacle:
		return "LEGEND_OBSTACLE"
	case KindEntry:
		return "LEGEND_ENTRY"
	default:
		return "UNKNOWN"
	}
}

// AllKinds returns every kind in drawing order
func AllKinds() []Kind {
	return []Kind{KindFloor, KindWall, KindWallEdge, KindObstacle, KindEntry}
}

// Command places one tile of the given kind at a grid point.
type Command struct {
	Kind  Kind
	Point world.Point
}

// Commands lists the placements for res in row-major order. Every floor cell
// gets a Floor command; obstacles and the entry follow it as extra commands at
// the same point. Walls with fewer than EdgeWallNeighbours wall neighbours are WallEdge.
func Commands(res *generator.Result) []Command {
	grid := res.Grid
	cmds := make([]Command, 0, grid.Len()+len(res.Obstacles)+1)

	grid.ForEachCell(func(x, y int, cell world.Cell) {
		p := world.Point{X: x, Y: y}

		if cell.State == world.Wall {
			kind := KindWall
			if grid.CountWallNeighbours(x, y) < EdgeWallNeighbours {
				kind = KindWallEdge
			}
			cmds = append(cmds, Command{Kind: kind, Point: p})
			return
		}

		cmds = append(cmds, Command{Kind: KindFloor, Point: p})
		if cell.Obstacle == world.Solid {
			cmds = append(cmds, Command{Kind: KindObstacle, Point: p})
		}
		if res.HasEntry && p == res.Entry {
			cmds = append(cmds, Command{Kind: KindEntry, Point: p})
		}
	})

	return cmds
}

// CountByKind tallies commands per kind
func CountByKind(cmds []Command) map[Kind]int {
	counts := make(map[Kind]int, len(AllKinds()))
	for _, c := range cmds {
		counts[c.Kind]++
	}
	return counts
}

// Surface returns the topmost kind at every cell of a width x height grid,
// indexed [y][x]. Commands outside the grid are ignored.
func Surface(cmds []Command, width, height int) [][]Kind {
	surface := make([][]Kind, height)
	set := make([][]bool, height)
	for y := range surface {
		surface[y] = make([]Kind, width)
		set[y] = make([]bool, width)
	}
	for _, c := range cmds {
		x, y := c.Point.X, c.Point.Y
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		if !set[y][x] || c.Kind > surface[y][x] {
			surface[y][x] = c.Kind
			set[y][x] = true
		}
	}
	return surface
}
