package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cavegen/pkg/game/devtools"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/messages"
	"cavegen/pkg/game/placement"
	"cavegen/pkg/game/preset"
	"cavegen/pkg/game/renderer"
	"cavegen/pkg/game/renderer/ebiten"
	"cavegen/pkg/game/renderer/explore"
	"cavegen/pkg/game/renderer/tui"
)

const (
	logDir      = "logs"
	logFileName = "cavegen.log"
	maxLogSize  = 10 * 1024 * 1024
)

// Exit codes
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

// options holds the parsed command line
type options struct {
	width           int
	height          int
	emptyPercent    float64
	smoothTimes     int
	mapSeed         int64
	obstacleSeed    int64
	obstaclePercent float64
	variant         string
	threshold       int
	radius          int

	presetName  string
	presetsPath string
	listPresets bool

	render   string
	dumpPath string
	htmlPath string
	tileSize int
	outline  float64
	debug    bool
}

// newFlagSet binds every flag to o. Defaults come from generator.DefaultConfig.
func newFlagSet(o *options, stderr io.Writer) *flag.FlagSet {
	def := generator.DefaultConfig()
	fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&o.width, "width", def.Width, "grid width in cells")
	fs.IntVar(&o.height, "height", def.Height, "grid height in cells")
	fs.Float64Var(&o.emptyPercent, "empty", def.EmptyPercent, "chance in [0,1] that an interior cell starts as wall")
	fs.IntVar(&o.smoothTimes, "smooth", def.SmoothTimes, "number of smoothing passes")
	fs.Int64Var(&o.mapSeed, "seed", def.MapSeed, "map seed")
	fs.Int64Var(&o.obstacleSeed, "obstacle-seed", def.ObstacleSeed, "obstacle seed")
	fs.Float64Var(&o.obstaclePercent, "obstacles", def.ObstaclePercent, "fraction in [0,1] of floor targeted for obstacles")
	fs.StringVar(&o.variant, "variant", def.Variant.String(), "room or map")
	fs.IntVar(&o.threshold, "threshold", 0, "minimum region size kept (0 uses the variant default)")
	fs.IntVar(&o.radius, "radius", 0, "corridor brush radius (0 uses the default)")

	fs.StringVar(&o.presetName, "preset", "", "start from a named preset (or its index)")
	fs.StringVar(&o.presetsPath, "presets", "", "TOML file with [[room]] presets")
	fs.BoolVar(&o.listPresets, "list-presets", false, "list presets and exit")

	fs.StringVar(&o.render, "render", "tui", "output: tui, plain, explore, window or none")
	fs.StringVar(&o.dumpPath, "dump", "", "write a text dump of the map to this file")
	fs.StringVar(&o.htmlPath, "html", "", "write an HTML snapshot of the map to this file")
	fs.IntVar(&o.tileSize, "tile-size", 0, "window tile size in pixels")
	fs.Float64Var(&o.outline, "outline", 0, "gap between window tiles in [0,1)")
	fs.BoolVar(&o.debug, "debug", false, "write debug logs to "+filepath.Join(logDir, logFileName))
	return fs
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code
func run(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet(&o, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}

	logFile := setupLogging(o.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	rooms, err := loadRooms(o.presetsPath)
	if err != nil {
		fmt.Fprintln(stderr, messages.Get("CONFIG_ERROR", err))
		return exitConfig
	}

	if o.listPresets {
		for _, r := range rooms {
			fmt.Fprintln(stdout, messages.Get("PRESET_LIST_ENTRY",
				r.Name, r.Width, r.Height, r.Variant, r.EmptyPercent, r.SmoothTimes, r.ObstaclePercent))
		}
		return exitOK
	}

	cfg, layout, err := resolveConfig(fs, &o, rooms)
	if err != nil {
		fmt.Fprintln(stderr, messages.Get("CONFIG_ERROR", err))
		return exitConfig
	}

	gen := generator.DefaultGenerator
	log.Printf("cavegen: %s generator, %dx%d, render=%s", gen.Name(), cfg.Width, cfg.Height, o.render)

	switch o.render {
	case "explore", "window":
		return runInteractive(gen, cfg, layout, &o, stderr)
	}

	start := time.Now()
	res, err := gen.Generate(cfg)
	if err != nil {
		fmt.Fprintln(stderr, messages.Get("CONFIG_ERROR", err))
		return exitConfig
	}
	log.Printf("cavegen: generated in %v", time.Since(start))

	if code := writeFiles(res, &o, stderr); code != exitOK {
		return code
	}

	switch o.render {
	case "tui":
		renderer.SetRenderer(tui.New(stdout))
	case "plain":
		renderer.SetRenderer(tui.NewPlain(stdout))
	case "none":
		renderer.SetRenderer(renderer.NewHeadless())
		fmt.Fprintln(stdout, devtools.Summary(res))
	default:
		fmt.Fprintln(stderr, messages.Get("CONFIG_ERROR", fmt.Sprintf("unknown render mode %q", o.render)))
		return exitConfig
	}
	renderer.Init()
	if err := renderer.Render(res); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	return exitOK
}

// runInteractive opens the tcell explorer or the ebiten window on a session
func runInteractive(gen generator.GridGenerator, cfg generator.Config, layout placement.Layout, o *options, stderr io.Writer) int {
	dumpPath := o.dumpPath
	if dumpPath == "" {
		dumpPath = devtools.DefaultDumpFilename
	}
	session, err := renderer.NewSession(gen, cfg, dumpPath)
	if err != nil {
		fmt.Fprintln(stderr, messages.Get("CONFIG_ERROR", err))
		return exitConfig
	}

	if o.render == "window" {
		v := ebiten.New(session, o.tileSize)
		v.SetLayout(layout)
		err = v.Run()
	} else {
		var e *explore.Explorer
		e, err = explore.Open(session)
		if err == nil {
			err = e.Run()
			e.Close()
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	return writeFiles(session.Result, o, stderr)
}

// writeFiles writes the optional text dump and HTML snapshot of res
func writeFiles(res *generator.Result, o *options, stderr io.Writer) int {
	if o.dumpPath != "" {
		path, err := devtools.DumpToFile(res, o.dumpPath)
		if err != nil {
			fmt.Fprintln(stderr, messages.Get("DUMP_FAILED", err))
			return exitFailed
		}
		fmt.Fprintln(stderr, messages.Get("DUMP_WRITTEN", path))
	}
	if o.htmlPath != "" {
		path, err := devtools.SaveSnapshotHTML(res, o.htmlPath)
		if err != nil {
			fmt.Fprintln(stderr, messages.Get("DUMP_FAILED", err))
			return exitFailed
		}
		fmt.Fprintln(stderr, messages.Get("DUMP_WRITTEN", path))
	}
	return exitOK
}

// loadRooms returns the presets from path, or the built-in list when path is empty
func loadRooms(path string) ([]preset.Room, error) {
	if path == "" {
		return preset.Builtin, nil
	}
	return preset.Load(path)
}

// resolveConfig builds the run configuration. A preset supplies the base values
// and flags that were set explicitly override them.
func resolveConfig(fs *flag.FlagSet, o *options, rooms []preset.Room) (generator.Config, placement.Layout, error) {
	cfg := generator.DefaultConfig()
	layout := placement.DefaultLayout()

	if o.presetName != "" {
		room, err := preset.ByName(rooms, o.presetName)
		if err != nil {
			idx, convErr := strconv.Atoi(o.presetName)
			if convErr != nil {
				return cfg, layout, errors.New(messages.Get("PRESET_UNKNOWN", o.presetName))
			}
			if room, err = preset.ByIndex(rooms, idx); err != nil {
				return cfg, layout, err
			}
		}
		if cfg, err = room.Config(); err != nil {
			return cfg, layout, err
		}
		layout = room.Layout()
	}

	var variantErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = o.width
		case "height":
			cfg.Height = o.height
		case "empty":
			cfg.EmptyPercent = o.emptyPercent
		case "smooth":
			cfg.SmoothTimes = o.smoothTimes
		case "seed":
			cfg.MapSeed = o.mapSeed
		case "obstacle-seed":
			cfg.ObstacleSeed = o.obstacleSeed
		case "obstacles":
			cfg.ObstaclePercent = o.obstaclePercent
		case "variant":
			cfg.Variant, variantErr = generator.ParseVariant(o.variant)
		case "threshold":
			cfg.Threshold = o.threshold
		case "radius":
			cfg.CorridorRadius = o.radius
		case "outline":
			layout.OutlinePercent = o.outline
		}
	})
	if variantErr != nil {
		return cfg, layout, variantErr
	}
	if layout.OutlinePercent < 0 || layout.OutlinePercent >= 1 {
		return cfg, layout, fmt.Errorf("outline must be in [0,1), got %v", layout.OutlinePercent)
	}
	return cfg, layout, cfg.Validate()
}

// setupLogging sends log output to logs/cavegen.log when debug is set and
// discards it otherwise. A log file over maxLogSize is rotated first.
// The returned file is nil when logging is disabled or the file could not be opened.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("cavegen-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
