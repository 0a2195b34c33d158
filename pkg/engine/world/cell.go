// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based generator.
package world

// State is the terrain of a single cell.
type State uint8

const (
	Wall State = iota
	Floor
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	default:
		return "Unknown"
	}
}

// Opposite returns the other terrain state
func (s State) Opposite() State {
	if s == Floor {
		return Wall
	}
	return Floor
}

// Obstacle marks a floor cell as blocked by a placed object.
type Obstacle uint8

const (
	None Obstacle = iota
	Solid
)

// String returns the string representation of an obstacle flag
func (o Obstacle) String() string {
	if o == Solid {
		return "Solid"
	}
	return "None"
}

// Cell represents a single cell/tile in the grid.
// Obstacle may only be Solid while State is Floor.
type Cell struct {
	State    State
	Obstacle Obstacle
}

// IsOpen returns true if the cell is walkable floor without an obstacle
func (c Cell) IsOpen() bool {
	return c.State == Floor && c.Obstacle == None
}

// Point is an integer grid coordinate.
type Point struct {
	X int
	Y int
}

// Add returns the point offset by the direction's delta
func (p Point) Add(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Less orders points by X, then Y.
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// DistanceSquared returns the squared Euclidean distance between two points
func (p Point) DistanceSquared(o Point) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}
