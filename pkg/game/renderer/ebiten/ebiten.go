// Package ebiten shows a generated map in a window and regenerates it on key presses.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cavegen/pkg/game/messages"
	"cavegen/pkg/game/placement"
	"cavegen/pkg/game/renderer"
)

// Viewer is an ebiten.Game that draws the placement commands of a session's map.
type Viewer struct {
	session  *renderer.Session
	tileSize int
	layout   placement.Layout

	cmds   []placement.Command
	width  int
	height int

	windowOpenedLogged bool
}

// New creates a viewer for session. tileSize is clamped to a usable pixel size.
func New(session *renderer.Session, tileSize int) *Viewer {
	if tileSize <= 0 {
		tileSize = defaultTileSize
	}
	if tileSize < minTileSize {
		tileSize = minTileSize
	}
	if tileSize > maxTileSize {
		tileSize = maxTileSize
	}
	v := &Viewer{session: session, tileSize: tileSize, layout: placement.DefaultLayout()}
	v.refresh()
	return v
}

// SetLayout sets the tile layout. Its outline shrinks every drawn tile.
func (v *Viewer) SetLayout(l placement.Layout) {
	if l.TileSize <= 0 {
		l.TileSize = 1
	}
	v.layout = l
}

// Reset drops the commands of the previous map
func (v *Viewer) Reset() {
	v.cmds = v.cmds[:0]
	v.width = 0
	v.height = 0
}

// Place records one command for the next Draw
func (v *Viewer) Place(cmd placement.Command) {
	v.cmds = append(v.cmds, cmd)
	if cmd.Point.X+1 > v.width {
		v.width = cmd.Point.X + 1
	}
	if cmd.Point.Y+1 > v.height {
		v.height = cmd.Point.Y + 1
	}
}

// refresh feeds the session's current map into the viewer
func (v *Viewer) refresh() {
	renderer.Feed(v, v.session.Result)
}

// screenSize returns the window size needed for the current map
func (v *Viewer) screenSize() (int, int) {
	return v.width * v.tileSize, v.height*v.tileSize + statusHeight
}

// Run opens the window and blocks until it is closed or the quit key is pressed
func (v *Viewer) Run() error {
	w, h := v.screenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(messages.Get("APP_TITLE"))

	err := ebiten.RunGame(v)
	if err == ebiten.Termination {
		return nil
	}
	return err
}
