// SPDX-License-Identifier: MIT
// Package: unarray/grid
//
// dense.go — Dense[T], a rows×cols array stored as one finished array.

package grid

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/unarray/buffer"
	"github.com/katalvlaran/unarray/build"
)

// Dense is a row-major grid of T values.
// r is rows, c is columns, and data holds r*c cells in row-major order.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, len == r*c
}

// validateShape rejects non-positive dimensions and shapes whose cell count
// rows*cols does not fit in an int.
func validateShape(rows, cols int) error {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	// Reject shapes whose flat length would overflow
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%dx%d cells overflow int: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// New builds an rows×cols grid with cell (r, c) = gen(r, c), generated in
// row-major order.
// Stage 1 (Validate): ensure rows and cols > 0 and rows*cols fits in an int.
// Stage 2 (Build): drive build.Build over rows*cols flat indices.
// Stage 3 (Finalize): wrap the finished array in a Dense.
// Complexity: O(rows*cols) time and memory.
func New[T any](rows, cols int, gen func(r, c int) T, opts ...buffer.Option[T]) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	// Generate cells in row-major order
	data := build.Build(rows*cols, func(i int) T {
		return gen(i/cols, i%cols)
	}, opts...)

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// NewResult is New for cell generators that may fail. The first error is
// returned unchanged and the cells built before it are torn down.
// Stage 1 (Validate): same shape checks as New.
// Stage 2 (Build): drive build.BuildResult over rows*cols flat indices.
// Stage 3 (Finalize): return the generator's error as is, or the new Dense.
// Complexity: O(rows*cols) time and memory.
func NewResult[T any](rows, cols int, gen func(r, c int) (T, error), opts ...buffer.Option[T]) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	// Generate cells in row-major order, stopping at the first error
	data, err := build.BuildResult(rows*cols, func(i int) (T, error) {
		return gen(i/cols, i%cols)
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the grid.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the grid.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row and column indices
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the cell at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Stage 3 (Finalize): return value or wrapped error.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Stage 3 (Finalize): return error or nil.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Row returns a view of row r; writes through it change the grid.
// Stage 1 (Validate): check 0 ≤ r < rows.
// Stage 2 (Execute): slice the row out of the flat storage.
// Stage 3 (Finalize): cap the view at Cols(), so appending to it never
// spills into row r+1.
// Complexity: O(1).
func (m *Dense[T]) Row(r int) ([]T, error) {
	// Validate row index
	if r < 0 || r >= m.r {
		return nil, denseErrorf("Row", r, 0, ErrIndexOutOfBounds)
	}
	// Offset of the first cell in row r
	lo := r * m.c

	return m.data[lo : lo+m.c : lo+m.c], nil
}

// Clone returns a shallow copy: new backing storage holding the same cell
// values.
// Stage 1 (Execute): copy cells into a new finished array via build.Map.
// Stage 2 (Finalize): wrap it with the same shape.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() *Dense[T] {
	// Copy every cell into fresh storage
	data := build.Map(m.data, func(v T) T { return v })

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")       // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
