package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cavegen/pkg/game/messages"
	"cavegen/pkg/game/placement"
)

// Draw renders the map and the status lines (Ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	for _, cmd := range v.cmds {
		x, y, side, col := v.tileRect(cmd)
		vector.DrawFilledRect(screen, x, y, side, side, col, false)
	}

	statusY := v.height*v.tileSize + 2
	ebitenutil.DebugPrintAt(screen, v.session.Status, 4, statusY)
	ebitenutil.DebugPrintAt(screen, messages.Get("WINDOW_HELP"), 4, statusY+16)
}

// tileRect returns the top-left corner, edge length and colour of a command's tile.
// The layout places the tile centre; its scale sets the edge before the kind inset.
func (v *Viewer) tileRect(cmd placement.Command) (x, y, side float32, col color.Color) {
	size := float32(v.tileSize)
	unit := float32(v.layout.TileSize)
	p := v.layout.Position(cmd.Point, v.width, v.height, cmd.Kind)

	cx := (float32(p.X)/unit + float32(v.width)/2) * size
	cy := (float32(p.Z)/unit + float32(v.height)/2) * size

	col, inset := tileStyle(cmd.Kind, size)
	side = float32(v.layout.Scale())/unit*size - 2*inset
	return cx - side/2, cy - side/2, side, col
}

// tileStyle returns the colour and inset for a placement kind.
// Obstacles and the entry are drawn smaller so the floor shows around them.
func tileStyle(k placement.Kind, size float32) (color.Color, float32) {
	switch k {
	case placement.KindFloor:
		return colorFloor, 0
	case placement.KindWallEdge:
		return colorWallEdge, 0
	case placement.KindObstacle:
		return colorObstacle, size / 6
	case placement.KindEntry:
		return colorEntry, size / 4
	default:
		return colorWall, 0
	}
}
