package collections

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is the root of every validation error returned by this module.
	// Use errors.Is to test for it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNilValue is returned when a nil element or payload is passed where a value is required.
	ErrNilValue = fmt.Errorf("%w: nil value", ErrInvalidArgument)

	// ErrNilLess is returned when a heap is constructed without an ordering function.
	ErrNilLess = fmt.Errorf("%w: nil less function", ErrInvalidArgument)
)

// ErrDimensionMismatch indicates a coordinate vector whose length does not match
// the configured number of dimensions.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrInvalidDimension indicates an invalid configured dimension count.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d (must be 2 or greater)", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return ErrInvalidArgument }

// ErrInvalidRange indicates a query box whose lower bound exceeds its upper bound.
type ErrInvalidRange struct {
	Dimension int
	Lo        float64
	Hi        float64
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range in dimension %d: %g > %g", e.Dimension, e.Lo, e.Hi)
}

func (e *ErrInvalidRange) Unwrap() error { return ErrInvalidArgument }

// ErrInvalidCoordinate indicates a NaN coordinate, or an infinite one where only
// finite values are accepted.
type ErrInvalidCoordinate struct {
	Dimension int
	Value     float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate in dimension %d: %g", e.Dimension, e.Value)
}

func (e *ErrInvalidCoordinate) Unwrap() error { return ErrInvalidArgument }

// CheckDimension returns an *ErrDimensionMismatch if len(coords) != expected.
func CheckDimension(coords []float64, expected int) error {
	if len(coords) != expected {
		return &ErrDimensionMismatch{Expected: expected, Actual: len(coords)}
	}
	return nil
}

// CheckCoordinates validates a stored point: the length must match expected and
// every coordinate must be finite.
func CheckCoordinates(coords []float64, expected int) error {
	if err := CheckDimension(coords, expected); err != nil {
		return err
	}
	for d, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return &ErrInvalidCoordinate{Dimension: d, Value: c}
		}
	}
	return nil
}

// CheckQuery validates query coordinates: the length must match expected and no
// coordinate may be NaN. Infinities are allowed, e.g. for unbounded boxes.
func CheckQuery(coords []float64, expected int) error {
	if err := CheckDimension(coords, expected); err != nil {
		return err
	}
	for d, c := range coords {
		if math.IsNaN(c) {
			return &ErrInvalidCoordinate{Dimension: d, Value: c}
		}
	}
	return nil
}
