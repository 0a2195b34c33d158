// Package preset defines the named room configurations the CLI can start from.
// A built-in list is always available; more can be loaded from a TOML file.
package preset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/placement"
)

var (
	// ErrUnknownKey is returned when a preset file contains a key no Room field uses.
	ErrUnknownKey = errors.New("preset: unknown key")
	// ErrNoRooms is returned when a preset file defines no rooms.
	ErrNoRooms = errors.New("preset: no rooms defined")
	// ErrNotFound is returned by ByName and ByIndex.
	ErrNotFound = errors.New("preset: not found")
)

// Room is one named configuration.
type Room struct {
	Name            string  `toml:"name"`
	Width           int     `toml:"width"`
	Height          int     `toml:"height"`
	EmptyPercent    float64 `toml:"empty_percent"`
	SmoothTimes     int     `toml:"smooth_times"`
	MapSeed         int64   `toml:"map_seed"`
	ObstacleSeed    int64   `toml:"obstacle_seed"`
	ObstaclePercent float64 `toml:"obstacle_percent"`
	Variant         string  `toml:"variant"`
	Threshold       int     `toml:"threshold"`
	CorridorRadius  int     `toml:"corridor_radius"`
	TileSize        float64 `toml:"tile_size"`
	OutlinePercent  float64 `toml:"outline_percent"`
}

// Config converts the room into a validated generator configuration
func (r Room) Config() (generator.Config, error) {
	variant, err := generator.ParseVariant(r.Variant)
	if err != nil {
		return generator.Config{}, fmt.Errorf("room %q: %w", r.Name, err)
	}
	cfg := generator.Config{
		Width:           r.Width,
		Height:          r.Height,
		EmptyPercent:    r.EmptyPercent,
		SmoothTimes:     r.SmoothTimes,
		MapSeed:         r.MapSeed,
		ObstacleSeed:    r.ObstacleSeed,
		ObstaclePercent: r.ObstaclePercent,
		Variant:         variant,
		Threshold:       r.Threshold,
		CorridorRadius:  r.CorridorRadius,
	}
	if err := cfg.Validate(); err != nil {
		return generator.Config{}, fmt.Errorf("room %q: %w", r.Name, err)
	}
	return cfg, nil
}

// Layout returns the placement layout of the room. A zero tile size means 1.
func (r Room) Layout() placement.Layout {
	l := placement.Layout{TileSize: r.TileSize, OutlinePercent: r.OutlinePercent}
	if l.TileSize <= 0 {
		l.TileSize = 1
	}
	return l
}

// Builtin is the list used when no preset file is given.
var Builtin = []Room{
	{
		Name: "room", Width: 48, Height: 32,
		EmptyPercent: 0.45, SmoothTimes: 5, MapSeed: 1, ObstacleSeed: 1,
		ObstaclePercent: 0.1, Variant: "room", TileSize: 1,
	},
	{
		Name: "closet", Width: 16, Height: 12,
		EmptyPercent: 0.35, SmoothTimes: 3, MapSeed: 3, ObstacleSeed: 5,
		ObstaclePercent: 0.15, Variant: "room", TileSize: 1,
	},
	{
		Name: "hall", Width: 80, Height: 24,
		EmptyPercent: 0.42, SmoothTimes: 4, MapSeed: 12, ObstacleSeed: 7,
		ObstaclePercent: 0.08, Variant: "room", TileSize: 1, OutlinePercent: 0.05,
	},
	{
		Name: "cavern", Width: 64, Height: 48,
		EmptyPercent: 0.45, SmoothTimes: 5, MapSeed: 7, ObstacleSeed: 11,
		ObstaclePercent: 0.1, Variant: "map", TileSize: 1, OutlinePercent: 0.05,
	},
	{
		Name: "warren", Width: 120, Height: 80,
		EmptyPercent: 0.48, SmoothTimes: 5, MapSeed: 42, ObstacleSeed: 42,
		ObstaclePercent: 0.05, Variant: "map", CorridorRadius: 1, TileSize: 1,
	},
}

// file is the document shape of a preset file
type file struct {
	Rooms []Room `toml:"room"`
}

// Parse decodes preset rooms from TOML text
func Parse(data string) ([]Room, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if len(f.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	for i := range f.Rooms {
		if f.Rooms[i].Name == "" {
			f.Rooms[i].Name = fmt.Sprintf("room-%d", i)
		}
	}
	return f.Rooms, nil
}

// Load reads preset rooms from a TOML file
func Load(path string) ([]Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rooms, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rooms, nil
}

// ByName returns the first room with the given name, ignoring case
func ByName(rooms []Room, name string) (Room, error) {
	for _, r := range rooms {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return Room{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// ByIndex returns the room at index i
func ByIndex(rooms []Room, i int) (Room, error) {
	if i < 0 || i >= len(rooms) {
		return Room{}, fmt.Errorf("%w: index %d of %d", ErrNotFound, i, len(rooms))
	}
	return rooms[i], nil
}
