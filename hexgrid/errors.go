package hexgrid

import "errors"

var (
	// ErrInvalidRadius indicates a region radius below 1.
	ErrInvalidRadius = errors.New("hexgrid: radius must be at least 1")
	// ErrOutsideRegion indicates a coordinate farther than Radius from the origin.
	ErrOutsideRegion = errors.New("hexgrid: coordinate outside region")
	// ErrNoWalkableCell indicates every in-region cell is a wall.
	ErrNoWalkableCell = errors.New("hexgrid: region has no walkable cell")
)
