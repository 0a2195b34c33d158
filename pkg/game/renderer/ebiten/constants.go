package ebiten

import "image/color"

// Color palette for the viewer
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorWall       = color.RGBA{15, 15, 26, 255}    // Darker than the background
	colorWallEdge   = color.RGBA{60, 60, 80, 255}    // Cave wall
	colorFloor      = color.RGBA{100, 100, 120, 255} // Medium gray
	colorObstacle   = color.RGBA{255, 200, 100, 255} // Orange
	colorEntry      = color.RGBA{0, 255, 0, 255}     // Bright green
)

// Tile size constraints
const (
	minTileSize     = 2
	maxTileSize     = 48
	defaultTileSize = 12
	statusHeight    = 36 // Two debug-print lines under the map
)
