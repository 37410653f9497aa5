package generation

import "errors"

// Generation failures. Each one abandons the whole level build; callers
// retry with another seed or relaxed settings.
var (
	ErrInvalidDimensions    = errors.New("invalid grid dimensions")
	ErrInvalidProbability   = errors.New("wall probability must be within [0, 1]")
	ErrInvalidIterations    = errors.New("smoothing iterations must not be negative")
	ErrInvalidTileSize      = errors.New("tile size must be positive")
	ErrInvalidSeparation    = errors.New("minimum separation must be positive")
	ErrEmptyRegion          = errors.New("region has no tiles to connect")
	ErrCorridorCarveTimeout = errors.New("corridor carve exceeded its step budget")
	ErrPlacementInfeasible  = errors.New("no valid placement site within attempt budget")
)
