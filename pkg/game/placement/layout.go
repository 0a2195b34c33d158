package placement

import "cavegen/pkg/engine/world"

// ObstacleLift is the height at which obstacles sit above the floor plane.
const ObstacleLift = 0.5

// Vec3 is a world-space position.
type Vec3 struct {
	X, Y, Z float64
}

// Layout maps grid points onto a plane centred on the origin.
type Layout struct {
	TileSize float64
	// OutlinePercent shrinks each tile to leave a visible gap, in [0, 1).
	OutlinePercent float64
}

// DefaultLayout returns unit tiles without an outline
func DefaultLayout() Layout {
	return Layout{TileSize: 1}
}

// Position returns the world-space centre of p on a width x height grid.
// Obstacles are lifted by ObstacleLift; everything else sits at 0.
func (l Layout) Position(p world.Point, width, height int, kind Kind) Vec3 {
	elevation := 0.0
	if kind == KindObstacle {
		elevation = ObstacleLift
	}
	return Vec3{
		X: (-float64(width)/2 + 0.5 + float64(p.X)) * l.TileSize,
		Y: elevation,
		Z: (-float64(height)/2 + 0.5 + float64(p.Y)) * l.TileSize,
	}
}

// Scale returns the edge length of a drawn tile
func (l Layout) Scale() float64 {
	return (1 - l.OutlinePercent) * l.TileSize
}
