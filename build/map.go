// SPDX-License-Identifier: MIT
// Package: unarray/build
//
// map.go — element-wise transforms of an existing slice into a new array.

package build

import "github.com/katalvlaran/unarray/buffer"

// Map returns [f(src[0]), …, f(src[len(src)-1])] as a new array.
func Map[S, T any](src []S, f func(S) T, opts ...buffer.Option[T]) []T {
	return Build(len(src), func(i int) T { return f(src[i]) }, opts...)
}

// MapOption maps src in order and stops at the first element for which f
// returns false, tearing down what was built and returning (nil, false).
func MapOption[S, T any](src []S, f func(S) (T, bool), opts ...buffer.Option[T]) ([]T, bool) {
	return BuildOption(len(src), func(i int) (T, bool) { return f(src[i]) }, opts...)
}

// MapResult maps src in order and stops at the first error, tearing down
// what was built and returning f's error unchanged.
//
//	nums, err := build.MapResult([]string{"1", "2"}, strconv.Atoi)
func MapResult[S, T any](src []S, f func(S) (T, error), opts ...buffer.Option[T]) ([]T, error) {
	return BuildResult(len(src), func(i int) (T, error) { return f(src[i]) }, opts...)
}
