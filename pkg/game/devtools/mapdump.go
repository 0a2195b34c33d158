// Package devtools provides developer tools for inspecting generated maps.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/messages"
	"cavegen/pkg/game/placement"
)

// DefaultDumpFilename is used when no dump path is given.
const DefaultDumpFilename = "map.txt"

// ErrNoGrid is returned when a dump is requested for a result without a grid.
var ErrNoGrid = errors.New("devtools: no grid")

// cellSymbol returns the single-character symbol for a cell, entry overlay included.
func cellSymbol(res *generator.Result, x, y int) byte {
	if res.HasEntry && res.Entry.X == x && res.Entry.Y == y {
		return '@'
	}
	c, _ := res.Grid.Cell(x, y)
	switch {
	case c.Obstacle == world.Solid:
		return 'o'
	case c.State == world.Floor:
		return '.'
	default:
		return '#'
	}
}

// writeMapGrid writes the grid one row per line.
func writeMapGrid(w io.Writer, res *generator.Result) {
	row := make([]byte, res.Grid.Width()+1)
	row[len(row)-1] = '\n'
	for y := 0; y < res.Grid.Height(); y++ {
		for x := 0; x < res.Grid.Width(); x++ {
			row[x] = cellSymbol(res, x, y)
		}
		w.Write(row)
	}
}

// dynamicGet looks up legend keys chosen at runtime
var dynamicGet = messages.Get

// WriteDump writes a full debug dump: metadata, legend, map, regions,
// corridors, and the obstacle list. Sections use "key: value" lines.
func WriteDump(w io.Writer, res *generator.Result) error {
	if res == nil || res.Grid == nil {
		return ErrNoGrid
	}

	cfg := res.Config
	ew := &errWriter{w: w}

	// --- Metadata ---
	ew.println("=== MAP DUMP ===")
	ew.println("")
	ew.println("--- Metadata ---")
	ew.printf("width: %d\n", res.Grid.Width())
	ew.printf("height: %d\n", res.Grid.Height())
	ew.printf("coordinate_system: x,y (0-based, x=column, y=row)\n")
	ew.printf("variant: %s\n", cfg.Variant)
	ew.printf("map_seed: %d\n", cfg.MapSeed)
	ew.printf("obstacle_seed: %d\n", cfg.ObstacleSeed)
	ew.printf("empty_percent: %v\n", cfg.EmptyPercent)
	ew.printf("smooth_times: %d\n", cfg.SmoothTimes)
	ew.printf("obstacle_percent: %v\n", cfg.ObstaclePercent)
	ew.printf("threshold: %d\n", cfg.EffectiveThreshold())
	ew.printf("corridor_radius: %d\n", cfg.EffectiveRadius())
	if res.HasEntry {
		ew.printf("entry: %d,%d\n", res.Entry.X, res.Entry.Y)
	} else {
		ew.printf("entry: none\n")
	}
	ew.printf("floor_tiles: %d\n", len(res.FloorTiles))
	ew.printf("obstacles_requested: %d\n", res.Requested)
	ew.printf("obstacles_placed: %d\n", len(res.Obstacles))
	ew.printf("obstacles_rejected: %d\n", res.Rejected)
	if msg := res.Grid.Validate(); msg != "" {
		ew.printf("grid_valid: no (%s)\n", msg)
	} else {
		ew.println("grid_valid: yes")
	}
	ew.println("")

	// --- Legend ---
	ew.println("--- Legend (cell symbols) ---")
	ew.println(". = floor  # = wall  o = obstacle  @ = entry")
	counts := placement.CountByKind(placement.Commands(res))
	for _, k := range placement.AllKinds() {
		ew.printf("  %s: %d\n", dynamicGet(k.String()), counts[k])
	}
	ew.println("")

	// --- Map ---
	ew.println("--- Map ---")
	if ew.err == nil {
		writeMapGrid(ew, res)
	}
	ew.println("")

	// --- Regions ---
	ew.printf("Regions (kept: %d, pruned: %d, clusters: %d):\n", len(res.Regions), res.Pruned, res.Clusters)
	for i, r := range res.Regions {
		first := r.Tiles[0]
		ew.printf("  index: %d size: %d edge_tiles: %d connections: %d first: %d,%d\n",
			i, r.Size(), len(r.EdgeTiles), r.Connections(), first.X, first.Y)
	}
	ew.println("")

	// --- Corridors ---
	ew.println("Corridors:")
	if len(res.Corridors) == 0 {
		ew.println("  (none)")
	}
	for _, c := range res.Corridors {
		ew.printf("  from: %d,%d to: %d,%d distance: %.2f line_length: %d\n",
			c.From.X, c.From.Y, c.To.X, c.To.Y, c.Distance, len(c.Line))
	}
	ew.println("")

	// --- Obstacles ---
	ew.println("Obstacles (placement order):")
	if len(res.Obstacles) == 0 {
		ew.println("  (none)")
	}
	for i, p := range res.Obstacles {
		ew.printf("  order: %d x: %d y: %d\n", i, p.X, p.Y)
	}
	ew.println("")

	ew.println("=== END MAP DUMP ===")
	return ew.err
}

// DumpToFile writes WriteDump output to path (DefaultDumpFilename when empty)
// and returns the absolute path written.
func DumpToFile(res *generator.Result, path string) (string, error) {
	if res == nil || res.Grid == nil {
		return "", ErrNoGrid
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, res); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func (ew *errWriter) printf(format string, args ...any) {
	fmt.Fprintf(ew, format, args...)
}

func (ew *errWriter) println(s string) {
	fmt.Fprintln(ew, s)
}
