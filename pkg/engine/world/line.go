package world

import (
	"slices"
	"strconv"
)

// Line returns the grid cells on the Bresenham line between from and to,
// both endpoints included. Line(a, b) and Line(b, a) cover the same cells;
// the second is the first reversed.
func Line(from, to Point) []Point {
	if to.Less(from) {
		line := bresenham(to, from)
		slices.Reverse(line)
		return line
	}
	return bresenham(from, to)
}

// bresenham steps along the longer axis and accumulates the shorter one.
func bresenham(from, to Point) []Point {
	x, y := from.X, from.Y
	dx := to.X - from.X
	dy := to.Y - from.Y

	inverted := false
	step := sign(dx)
	gradientStep := sign(dy)
	longest := abs(dx)
	shortest := abs(dy)

	if longest < shortest {
		inverted = true
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	line := make([]Point, 0, longest+1)
	acc := longest / 2
	for i := 0; i <= longest; i++ {
		line = append(line, Point{X: x, Y: y})

		if inverted {
			y += step
		} else {
			x += step
		}

		acc += shortest
		if acc >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			acc -= longest
		}
	}
	return line
}

// Disk returns every point within radius of center (dx²+dy² <= r²), row-major.
// The result is not clipped to any grid.
func Disk(center Point, radius int) []Point {
	if radius < 0 {
		return nil
	}
	var points []Point
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				points = append(points, Point{X: center.X + dx, Y: center.Y + dy})
			}
		}
	}
	return points
}

// PaintDisk sets every in-bounds cell of the disk around center to s.
// Returns the number of cells whose state changed.
func (g *Grid) PaintDisk(center Point, radius int, s State) int {
	changed := 0
	for _, p := range Disk(center, radius) {
		if !g.Contains(p) {
			continue
		}
		if g.State(p.X, p.Y) != s {
			changed++
		}
		g.SetState(p.X, p.Y, s)
	}
	return changed
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func pointString(p Point) string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// String returns the point as "(x,y)"
func (p Point) String() string {
	return pointString(p)
}
