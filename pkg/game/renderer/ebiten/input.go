package ebiten

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "cavegen/pkg/engine/input"
)

// keyCodes maps physical keys to binding codes. Letters become upper case with Shift.
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyR, "r"},
	{ebiten.KeyO, "o"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyEqual, "="},
	{ebiten.KeyNumpadAdd, "numpad_add"},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadSubtract, "numpad_subtract"},
}

// keyCode applies the Shift modifier to single-letter codes
func keyCode(code string, shift bool) string {
	if shift && len(code) == 1 {
		return strings.ToUpper(code)
	}
	return code
}

// Update handles input (Ebiten interface)
func (v *Viewer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !v.windowOpenedLogged {
		v.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Viewer window opened (%dx%d)", w, h)
	}

	intent := v.checkInput()
	if intent.Action == engineinput.ActionNone || engineinput.IsPan(intent.Action) {
		return nil
	}

	quit, changed, err := v.session.Apply(intent.Action)
	if err != nil {
		log.Printf("viewer: %v", err)
	}
	if quit {
		return ebiten.Termination
	}
	if changed {
		v.refresh()
	}
	return nil
}

// checkInput returns the intent of the first key pressed this frame
func (v *Viewer) checkInput() engineinput.Intent {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, kc := range keyCodes {
		if !inpututil.IsKeyJustPressed(kc.key) {
			continue
		}
		return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   keyCode(kc.code, shift),
		}))
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the logical screen size (Ebiten interface)
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.screenSize()
}
