// Package grid provides fixed-shape, row-major two-dimensional arrays whose
// cells are produced by a generator through package build.
//
// A Dense[T] is created once, with every cell initialized, and never changes
// shape. If the cell generator fails or panics, the cells built so far are
// torn down by the buffer policy and no grid is returned.
package grid
