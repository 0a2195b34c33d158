package generator

import "errors"

// Configuration errors. Validate wraps them with the offending value.
var (
	ErrInvalidSize     = errors.New("generator: width and height must be positive")
	ErrEmptyPercent    = errors.New("generator: empty percent must be within [0, 1]")
	ErrObstaclePercent = errors.New("generator: obstacle percent must be within [0, 1]")
	ErrSmoothTimes     = errors.New("generator: smooth times must not be negative")
	ErrThreshold       = errors.New("generator: region threshold must not be negative")
	ErrCorridorRadius  = errors.New("generator: corridor radius must not be negative")
	ErrUnknownVariant  = errors.New("generator: unknown variant")
)
