package life

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive size.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned by direct cell access outside [0, n).
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidRule is returned when a rule string cannot be parsed.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrUnknownPattern is returned when a named pattern does not exist.
	ErrUnknownPattern = errors.New("unknown pattern")
)
