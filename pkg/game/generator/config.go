package generator

import (
	"fmt"
	"math"
	"strings"

	"cavegen/pkg/game/connector"
)

// Variant selects the pruning threshold used when no explicit one is set.
type Variant int

const (
	// VariantRoom generates a single room and keeps small pockets.
	VariantRoom Variant = iota
	// VariantMap generates a full cave map and drops regions under 50 tiles.
	VariantMap
)

// String returns the variant name used in flags and preset files
func (v Variant) String() string {
	switch v {
	case VariantRoom:
		return "room"
	case VariantMap:
		return "map"
	default:
		return "unknown"
	}
}

// DefaultThreshold returns the pruning threshold for the variant
func (v Variant) DefaultThreshold() int {
	if v == VariantMap {
		return connector.MapThreshold
	}
	return connector.RoomThreshold
}

// ParseVariant converts a name into a Variant. An empty name means VariantRoom.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "room":
		return VariantRoom, nil
	case "map":
		return VariantMap, nil
	default:
		return VariantRoom, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// Config holds every input of a generation run.
type Config struct {
	Width  int
	Height int

	// EmptyPercent is the probability in [0, 1] that an interior cell is seeded as Wall.
	EmptyPercent float64
	SmoothTimes  int

	MapSeed      int64
	ObstacleSeed int64

	// ObstaclePercent is the fraction of floor tiles targeted for obstacles.
	ObstaclePercent float64

	Variant Variant
	// Threshold overrides the variant's pruning threshold when positive.
	Threshold int
	// CorridorRadius is the carve brush radius; 0 means connector.DefaultRadius.
	CorridorRadius int
}

// DefaultConfig returns a medium-sized single room
func DefaultConfig() Config {
	return Config{
		Width:           48,
		Height:          32,
		EmptyPercent:    0.45,
		SmoothTimes:     5,
		MapSeed:         1,
		ObstacleSeed:    1,
		ObstaclePercent: 0.1,
		Variant:         VariantRoom,
	}
}

// Validate checks every field and returns the first problem found
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if !inUnitRange(c.EmptyPercent) {
		return fmt.Errorf("%w: got %v", ErrEmptyPercent, c.EmptyPercent)
	}
	if !inUnitRange(c.ObstaclePercent) {
		return fmt.Errorf("%w: got %v", ErrObstaclePercent, c.ObstaclePercent)
	}
	if c.SmoothTimes < 0 {
		return fmt.Errorf("%w: got %d", ErrSmoothTimes, c.SmoothTimes)
	}
	if c.Variant != VariantRoom && c.Variant != VariantMap {
		return fmt.Errorf("%w: %d", ErrUnknownVariant, int(c.Variant))
	}
	if c.Threshold < 0 {
		return fmt.Errorf("%w: got %d", ErrThreshold, c.Threshold)
	}
	if c.CorridorRadius < 0 {
		return fmt.Errorf("%w: got %d", ErrCorridorRadius, c.CorridorRadius)
	}
	return nil
}

// EffectiveThreshold returns Threshold, or the variant default when it is 0
func (c Config) EffectiveThreshold() int {
	if c.Threshold > 0 {
		return c.Threshold
	}
	return c.Variant.DefaultThreshold()
}

// EffectiveRadius returns CorridorRadius, or connector.DefaultRadius when it is 0
func (c Config) EffectiveRadius() int {
	if c.CorridorRadius > 0 {
		return c.CorridorRadius
	}
	return connector.DefaultRadius
}

func inUnitRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
