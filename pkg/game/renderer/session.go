package renderer

import (
	"log"
	"math"

	"cavegen/pkg/engine/input"
	"cavegen/pkg/game/devtools"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/messages"
)

// ObstacleStep is how much one density key press changes ObstaclePercent.
const ObstacleStep = 0.05

// reobstacler regenerates only the obstacles of an existing result.
type reobstacler interface {
	Reobstacle(prev *generator.Result, obstacleSeed int64, percent float64) (*generator.Result, error)
}

// Session holds the map shown by an interactive viewer and applies the
// regeneration actions to it. Panning is left to the viewer.
type Session struct {
	Generator generator.GridGenerator
	Result    *generator.Result
	DumpPath  string
	Status    string
}

// NewSession generates the first map for cfg
func NewSession(gen generator.GridGenerator, cfg generator.Config, dumpPath string) (*Session, error) {
	res, err := gen.Generate(cfg)
	if err != nil {
		return nil, err
	}
	s := &Session{Generator: gen, Result: res, DumpPath: dumpPath}
	s.Status = devtools.Summary(res)
	return s, nil
}

// Config returns the configuration of the map currently shown
func (s *Session) Config() generator.Config {
	return s.Result.Config
}

// Apply performs a non-pan action. It reports whether the viewer should quit
// and whether the map changed.
func (s *Session) Apply(action input.Action) (quit, changed bool, err error) {
	cfg := s.Config()

	switch action {
	case input.ActionQuit:
		return true, false, nil
	case input.ActionNextMapSeed:
		cfg.MapSeed++
		return false, true, s.regenerate(cfg)
	case input.ActionPrevMapSeed:
		cfg.MapSeed--
		return false, true, s.regenerate(cfg)
	case input.ActionNextObstacleSeed:
		return false, true, s.reobstacle(cfg.ObstacleSeed+1, cfg.ObstaclePercent)
	case input.ActionPrevObstacleSeed:
		return false, true, s.reobstacle(cfg.ObstacleSeed-1, cfg.ObstaclePercent)
	case input.ActionMoreObstacles:
		return false, true, s.reobstacle(cfg.ObstacleSeed, clampUnit(cfg.ObstaclePercent+ObstacleStep))
	case input.ActionFewerObstacles:
		return false, true, s.reobstacle(cfg.ObstacleSeed, clampUnit(cfg.ObstaclePercent-ObstacleStep))
	case input.ActionDump:
		path, err := devtools.DumpToFile(s.Result, s.DumpPath)
		if err != nil {
			s.Status = messages.Get("DUMP_FAILED", err)
			return false, false, err
		}
		s.Status = messages.Get("DUMP_WRITTEN", path)
		return false, false, nil
	}

	return false, false, nil
}

func (s *Session) regenerate(cfg generator.Config) error {
	res, err := s.Generator.Generate(cfg)
	if err != nil {
		s.Status = messages.Get("CONFIG_ERROR", err)
		return err
	}
	s.Result = res
	s.Status = devtools.Summary(res)
	log.Printf("session: %s", res.Summary())
	return nil
}

func (s *Session) reobstacle(seed int64, percent float64) error {
	r, ok := s.Generator.(reobstacler)
	if !ok {
		cfg := s.Config()
		cfg.ObstacleSeed = seed
		cfg.ObstaclePercent = percent
		return s.regenerate(cfg)
	}

	res, err := r.Reobstacle(s.Result, seed, percent)
	if err != nil {
		s.Status = messages.Get("CONFIG_ERROR", err)
		return err
	}
	s.Result = res
	s.Status = devtools.Summary(res)
	log.Printf("session: %s", res.Summary())
	return nil
}

// clampUnit limits v to [0, 1] and rounds away float drift from repeated steps
func clampUnit(v float64) float64 {
	v = math.Round(v*100) / 100
	return math.Max(0, math.Min(1, v))
}
