package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bidigrid/bidi"
)

// Sentinel errors for grid construction and reshaping.
var (
	// ErrDimensionMismatch indicates construction from non-rectangular row
	// data, a buffer whose length disagrees with width×height, a row or
	// column argument of the wrong length, or a reshape whose requested
	// area differs from the current element count.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNegativeSize indicates a negative width or height argument.
	ErrNegativeSize = errors.New("grid: width and height must be non-negative")
)

// boundsError wraps bidi.ErrOutOfBounds with the offending coordinate.
func boundsError(x, y, w, h int) error {
	return fmt.Errorf("%w: (%d,%d) not in %dx%d", bidi.ErrOutOfBounds, x, y, w, h)
}

// dimError wraps ErrDimensionMismatch with context.
func dimError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDimensionMismatch, fmt.Sprintf(format, args...))
}
