// Package input maps device key codes to viewer actions in layers:
// raw device event, debounced event, binding lookup, intent.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent of the person at the viewer.
type Action int

const (
	ActionNone Action = iota

	// Panning
	ActionPanNorth
	ActionPanSouth
	ActionPanWest
	ActionPanEast

	// Regeneration
	ActionNextMapSeed
	ActionPrevMapSeed
	ActionNextObstacleSeed
	ActionPrevObstacleSeed
	ActionMoreObstacles
	ActionFewerObstacles

	// Meta
	ActionDump
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-agnostic identifier (e.g. "r", "R", "arrow_up", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Both tcell and ebiten already report discrete key presses, so this is a
// thin copy of the raw event.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action. Codes are case sensitive.
var bindings = map[string]Action{
	// Panning (arrows, Vim)
	"arrow_up":    ActionPanNorth,
	"k":           ActionPanNorth,
	"arrow_down":  ActionPanSouth,
	"j":           ActionPanSouth,
	"arrow_left":  ActionPanWest,
	"h":           ActionPanWest,
	"arrow_right": ActionPanEast,
	"l":           ActionPanEast,

	// Seeds: lower case steps forward, upper case steps back
	"r": ActionNextMapSeed,
	"R": ActionPrevMapSeed,
	"o": ActionNextObstacleSeed,
	"O": ActionPrevObstacleSeed,

	// Obstacle density
	"+":               ActionMoreObstacles,
	"=":               ActionMoreObstacles,
	"numpad_add":      ActionMoreObstacles,
	"-":               ActionFewerObstacles,
	"numpad_subtract": ActionFewerObstacles,

	// Dump
	"d": ActionDump,
	"D": ActionDump,

	// Quit
	"q":      ActionQuit,
	"Q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Resolve runs a raw code through every layer and returns its action.
func Resolve(device Device, code string) Action {
	raw := RawInput{Device: device, Code: code, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw)).Action
}

// ActionName returns the message key naming an action.
func ActionName(a Action) string {
	switch a {
	case ActionPanNorth:
		return "ACTION_PAN_NORTH"
	case ActionPanSouth:
		return "ACTION_PAN_SOUTH"
	case ActionPanWest:
		return "ACTION_PAN_WEST"
	case ActionPanEast:
		return "ACTION_PAN_EAST"
	case ActionNextMapSeed:
		return "ACTION_NEXT_MAP_SEED"
	case ActionPrevMapSeed:
		return "ACTION_PREV_MAP_SEED"
	case ActionNextObstacleSeed:
		return "ACTION_NEXT_OBSTACLE_SEED"
	case ActionPrevObstacleSeed:
		return "ACTION_PREV_OBSTACLE_SEED"
	case ActionMoreObstacles:
		return "ACTION_MORE_OBSTACLES"
	case ActionFewerObstacles:
		return "ACTION_FEWER_OBSTACLES"
	case ActionDump:
		return "ACTION_DUMP"
	case ActionQuit:
		return "ACTION_QUIT"
	default:
		return "ACTION_UNKNOWN"
	}
}

// IsPan reports whether a is one of the panning actions
func IsPan(a Action) bool {
	return a >= ActionPanNorth && a <= ActionPanEast
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text does not reshuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
