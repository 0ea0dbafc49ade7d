// SPDX-License-Identifier: MIT
// Package: unarray/grid
//
// errors.go — sentinel errors for the grid package.
// Check with errors.Is; methods wrap them with denseErrorf for context.
// Errors returned by a cell generator are passed through unchanged.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
