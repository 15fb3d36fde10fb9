package ecoview

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode indicates the input bytes could not be decoded as a raster image.
	ErrDecode = errors.New("ecoview: image decode failed")

	// ErrEmptyImage indicates a decoded image with zero width or height.
	ErrEmptyImage = errors.New("ecoview: image has no pixels")

	// ErrInvalidCoordinates indicates a start or target outside the grid.
	ErrInvalidCoordinates = errors.New("ecoview: coordinates outside grid")

	// ErrDimensionMismatch indicates grids of different shapes were combined.
	ErrDimensionMismatch = errors.New("ecoview: grid dimensions do not match")
)

// CoordinateError reports which endpoint fell outside the grid.
type CoordinateError struct {
	Role   string // "start" or "target"
	Coord  Coordinate
	Height int
	Width  int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s %s outside grid [0,%d)x[0,%d)", e.Role, e.Coord, e.Height, e.Width)
}

// Is lets errors.Is match ErrInvalidCoordinates.
func (e *CoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinates
}

func validateCoordinate(role string, c Coordinate, height, width int) error {
	if c.Row < 0 || c.Row >= height || c.Col < 0 || c.Col >= width {
		return &CoordinateError{Role: role, Coord: c, Height: height, Width: width}
	}
	return nil
}

func decodeError(err error) error {
	return fmt.Errorf("%w: %v", ErrDecode, err)
}
