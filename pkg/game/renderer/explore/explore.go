// Package explore is an interactive terminal map explorer built on tcell.
// Arrow keys pan, r/R and o/O step the map and obstacle seeds, q quits.
package explore

import (
	"log"

	"github.com/gdamore/tcell/v2"

	engineinput "cavegen/pkg/engine/input"
	"cavegen/pkg/game/messages"
	"cavegen/pkg/game/placement"
	"cavegen/pkg/game/renderer"
)

// PanStep is how many cells one pan key press moves the view.
const PanStep = 4

// statusLines are reserved at the bottom of the screen.
const statusLines = 2

// Explorer shows a scrollable view of a session's map.
type Explorer struct {
	screen  tcell.Screen
	session *renderer.Session

	cmds    []placement.Command
	surface [][]placement.Kind
	mapW    int
	mapH    int

	offsetX int
	offsetY int
	viewW   int
	viewH   int
}

// New creates an explorer drawing to screen. A nil screen is allowed for
// headless use; nothing is drawn then.
func New(screen tcell.Screen, session *renderer.Session) *Explorer {
	e := &Explorer{screen: screen, session: session}
	if screen != nil {
		w, h := screen.Size()
		e.resize(w, h)
	}
	e.refresh()
	return e
}

// Open initialises a terminal screen and returns an explorer on it
func Open(session *renderer.Session) (*Explorer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return New(screen, session), nil
}

// Close restores the terminal
func (e *Explorer) Close() {
	if e.screen != nil {
		e.screen.Fini()
	}
}

// Reset drops the commands of the previous map
func (e *Explorer) Reset() {
	e.cmds = e.cmds[:0]
	e.mapW = 0
	e.mapH = 0
}

// Place records one command
func (e *Explorer) Place(cmd placement.Command) {
	e.cmds = append(e.cmds, cmd)
	if cmd.Point.X+1 > e.mapW {
		e.mapW = cmd.Point.X + 1
	}
	if cmd.Point.Y+1 > e.mapH {
		e.mapH = cmd.Point.Y + 1
	}
}

// refresh rebuilds the visible surface from the session's current map
func (e *Explorer) refresh() {
	renderer.Feed(e, e.session.Result)
	e.surface = placement.Surface(e.cmds, e.mapW, e.mapH)
	e.clampOffset()
}

// Run draws and handles events until the user quits
func (e *Explorer) Run() error {
	for {
		e.draw()
		ev := e.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !e.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent processes a tcell event and returns false if the explorer should exit
func (e *Explorer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		code := keyCode(ev.Key(), ev.Rune())
		if code == "" {
			return true
		}
		return !e.Apply(engineinput.Resolve(engineinput.DeviceTerminal, code))
	case *tcell.EventResize:
		w, h := ev.Size()
		e.resize(w, h)
		if e.screen != nil {
			e.screen.Sync()
		}
	}
	return true
}

// Apply performs an action and reports whether the explorer should quit
func (e *Explorer) Apply(action engineinput.Action) bool {
	switch action {
	case engineinput.ActionPanNorth:
		e.pan(0, -PanStep)
		return false
	case engineinput.ActionPanSouth:
		e.pan(0, PanStep)
		return false
	case engineinput.ActionPanWest:
		e.pan(-PanStep, 0)
		return false
	case engineinput.ActionPanEast:
		e.pan(PanStep, 0)
		return false
	}

	quit, changed, err := e.session.Apply(action)
	if err != nil {
		log.Printf("explore: %v", err)
	}
	if changed {
		e.refresh()
	}
	return quit
}

// keyCode converts a tcell key into a binding code, or "" when unbound
func keyCode(key tcell.Key, r rune) string {
	switch key {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyRune:
		return string(r)
	}
	return ""
}

func (e *Explorer) resize(w, h int) {
	e.viewW = w
	e.viewH = h - statusLines
	if e.viewH < 1 {
		e.viewH = 1
	}
	e.clampOffset()
}

func (e *Explorer) pan(dx, dy int) {
	e.offsetX += dx
	e.offsetY += dy
	e.clampOffset()
}

// clampOffset keeps the view inside the map
func (e *Explorer) clampOffset() {
	maxX := e.mapW - e.viewW
	maxY := e.mapH - e.viewH
	e.offsetX = clamp(e.offsetX, 0, max(0, maxX))
	e.offsetY = clamp(e.offsetY, 0, max(0, maxY))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Offset returns the map cell shown in the top-left corner
func (e *Explorer) Offset() (x, y int) {
	return e.offsetX, e.offsetY
}

// draw renders the visible part of the map and the status lines
func (e *Explorer) draw() {
	if e.screen == nil {
		return
	}
	e.screen.Clear()

	for vy := 0; vy < e.viewH; vy++ {
		my := e.offsetY + vy
		if my >= e.mapH {
			break
		}
		for vx := 0; vx < e.viewW; vx++ {
			mx := e.offsetX + vx
			if mx >= e.mapW {
				break
			}
			ch, style := cellStyle(e.surface[my][mx])
			e.screen.SetContent(vx, vy, ch, nil, style)
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	e.drawText(0, e.viewH, e.session.Status, statusStyle)
	e.drawText(0, e.viewH+1, messages.Get("STATUS_HELP"), statusStyle.Bold(true))

	e.screen.Show()
}

func (e *Explorer) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= e.viewW {
			return
		}
		e.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// cellStyle returns the rune and style for a placement kind
func cellStyle(k placement.Kind) (rune, tcell.Style) {
	switch k {
	case placement.KindFloor:
		return '·', tcell.StyleDefault.Foreground(tcell.ColorGray)
	case placement.KindWallEdge:
		return '▒', tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case placement.KindObstacle:
		return '■', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case placement.KindEntry:
		return '@', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	default:
		return ' ', tcell.StyleDefault
	}
}
