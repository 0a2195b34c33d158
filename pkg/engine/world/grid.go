package world

import (
	"strings"
)

// Grid is a fixed-size terrain map stored as one row-major buffer.
// Cells are addressed by (x, y) with 0 <= x < width and 0 <= y < height.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions. Every cell starts as Wall.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]Cell, width*height)
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells in the grid
func (g *Grid) Len() int {
	return len(g.cells)
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back into a point
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// Index converts a point into its row-major index. The point must be inside the grid.
func (g *Grid) Index(p Point) int {
	return g.index(p.X, p.Y)
}

// IsInside checks if an x/y position is within grid bounds
func (g *Grid) IsInside(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains checks if a point is within grid bounds
func (g *Grid) Contains(p Point) bool {
	return g.IsInside(p.X, p.Y)
}

// IsPlayablePosition checks if a position is inside the grid and not on the perimeter
func (g *Grid) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsInside(x, y) && !g.IsPlayablePosition(x, y)
}

// Cell returns the cell at the given position and whether it was in bounds
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.IsInside(x, y) {
		return Cell{}, false
	}
	return g.cells[g.index(x, y)], true
}

// State returns the terrain at the given position. Positions outside the grid read as Wall.
func (g *Grid) State(x, y int) State {
	if !g.IsInside(x, y) {
		return Wall
	}
	return g.cells[g.index(x, y)].State
}

// SetState sets the terrain at the given position. Turning a cell into Wall
// clears any obstacle on it. Returns false if out of bounds.
func (g *Grid) SetState(x, y int, s State) bool {
	if !g.IsInside(x, y) {
		return false
	}
	c := &g.cells[g.index(x, y)]
	c.State = s
	if s == Wall {
		c.Obstacle = None
	}
	return true
}

// Obstacle returns the obstacle flag at the given position
func (g *Grid) Obstacle(x, y int) Obstacle {
	if !g.IsInside(x, y) {
		return None
	}
	return g.cells[g.index(x, y)].Obstacle
}

// SetObstacle sets the obstacle flag at the given position.
// Returns false if out of bounds or if a Solid obstacle is put on a Wall.
func (g *Grid) SetObstacle(x, y int, o Obstacle) bool {
	if !g.IsInside(x, y) {
		return false
	}
	c := &g.cells[g.index(x, y)]
	if o == Solid && c.State != Floor {
		return false
	}
	c.Obstacle = o
	return true
}

// IsOpen returns true if the position is in bounds, Floor, and free of obstacles
func (g *Grid) IsOpen(x, y int) bool {
	if !g.IsInside(x, y) {
		return false
	}
	return g.cells[g.index(x, y)].IsOpen()
}

// CountWallNeighbours counts Wall cells among the 8 surrounding positions.
// Positions outside the grid count as Wall.
func (g *Grid) CountWallNeighbours(x, y int) int {
	count := 0
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.State(nx, ny) == Wall {
				count++
			}
		}
	}
	return count
}

// Fill sets every cell to the given state and clears all obstacles
func (g *Grid) Fill(s State) {
	for i := range g.cells {
		g.cells[i] = Cell{State: s}
	}
}

// ClearObstacles removes every obstacle from the grid
func (g *Grid) ClearObstacles() {
	for i := range g.cells {
		g.cells[i].Obstacle = None
	}
}

// ForEachCell iterates over all cells in row-major order, calling the provided function for each
func (g *Grid) ForEachCell(fn func(x, y int, cell Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[g.index(x, y)])
		}
	}
}

// Tiles returns every position holding the given state, in row-major order
func (g *Grid) Tiles(s State) []Point {
	var tiles []Point
	g.ForEachCell(func(x, y int, cell Cell) {
		if cell.State == s {
			tiles = append(tiles, Point{X: x, Y: y})
		}
	})
	return tiles
}

// Count returns the number of cells holding the given state
func (g *Grid) Count(s State) int {
	n := 0
	for _, c := range g.cells {
		if c.State == s {
			n++
		}
	}
	return n
}

// ObstacleCount returns the number of cells carrying a Solid obstacle
func (g *Grid) ObstacleCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Obstacle == Solid {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells, width: g.width, height: g.height}
}

// Equal reports whether both grids have the same dimensions and cell contents
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}

	for i, c := range g.cells {
		if c.Obstacle == Solid && c.State != Floor {
			p := g.Coordinate(i)
			return "Obstacle on a wall at " + pointString(p)
		}
	}

	return ""
}

// String renders the grid one row per line: '#' wall, '.' floor, 'o' obstacle.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[g.index(x, y)]
			switch {
			case c.Obstacle == Solid:
				sb.WriteByte('o')
			case c.State == Floor:
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid builds a grid from the String format. Rows must share one width.
// It returns nil when the text is empty or ragged.
func ParseGrid(text string) *Grid {
	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	width := len(rows[0])
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '.':
				g.SetState(x, y, Floor)
			case 'o':
				g.SetState(x, y, Floor)
				g.SetObstacle(x, y, Solid)
			}
		}
	}
	return g
}
