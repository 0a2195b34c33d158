package renderer

import (
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/placement"
)

// Consumer receives placement commands. Reset discards everything placed before.
type Consumer interface {
	Reset()
	Place(cmd placement.Command)
}

// Renderer defines the interface for output backends that show a finished map.
// Implementations include the coloured TUI, plain text, and headless.
type Renderer interface {
	Consumer

	// Init prepares the renderer (colours, terminal size, etc.)
	Init()

	// Flush shows everything placed since the last Reset
	Flush() error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Feed resets c and sends it every placement command of res, in order.
func Feed(c Consumer, res *generator.Result) {
	c.Reset()
	for _, cmd := range placement.Commands(res) {
		c.Place(cmd)
	}
}

// Render feeds res to the current renderer and flushes it
func Render(res *generator.Result) error {
	if Current == nil {
		return nil
	}
	Feed(Current, res)
	return Current.Flush()
}
