// SPDX-License-Identifier: MIT
// Package: unarray/build
//
// build.go — index-driven constructors in three modes.

package build

import "github.com/katalvlaran/unarray/buffer"

// absent is the abort reason of the optional mode; it carries nothing.
type absent struct{}

// Build returns [gen(0), gen(1), …, gen(n-1)].
// Panics if n < 0. A panic in gen tears down the elements built so far and
// then propagates.
// Complexity: O(n) time and memory plus n calls to gen.
func Build[T any](n int, gen func(i int) T, opts ...buffer.Option[T]) []T {
	out, _, _ := drive(n, func(i int) (T, absent, bool) {
		return gen(i), absent{}, true
	}, opts)

	return out
}

// BuildOption is Build for generators that may decline. The first index for
// which gen returns false ends the build: the elements built so far are
// torn down and BuildOption returns (nil, false).
// Panics if n < 0.
func BuildOption[T any](n int, gen func(i int) (T, bool), opts ...buffer.Option[T]) ([]T, bool) {
	out, _, aborted := drive(n, func(i int) (T, absent, bool) {
		v, ok := gen(i)
		return v, absent{}, ok
	}, opts)
	if aborted {
		return nil, false
	}

	return out, true
}

// BuildResult is Build for generators that may fail. The first non-nil
// error ends the build: the elements built so far are torn down and the
// error is returned as is, without wrapping, so callers can compare it
// directly or with errors.Is/As. The value returned next to an error is
// ignored.
// Panics if n < 0.
func BuildResult[T any](n int, gen func(i int) (T, error), opts ...buffer.Option[T]) ([]T, error) {
	out, err, aborted := drive(n, func(i int) (T, error, bool) {
		v, err := gen(i)
		return v, err, err == nil
	}, opts)
	if aborted {
		return nil, err
	}

	return out, nil
}
