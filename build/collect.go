// SPDX-License-Identifier: MIT
// Package: unarray/build
//
// collect.go — gathering exactly n values from an iterator.

package build

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/unarray/buffer"
)

// Collect gathers the values of seq into an array of exactly n elements.
// If seq yields fewer than n values, or more, Collect returns (nil, false):
// the buffered values are torn down and, on overflow, the one surplus value
// pulled to detect it is destroyed with the same policy afterwards. seq is
// never advanced past the surplus value.
// Panics if n < 0.
func Collect[T any](n int, seq iter.Seq[T], opts ...buffer.Option[T]) ([]T, bool) {
	if n < 0 {
		panic(fmt.Sprintf("build: negative length %d", n))
	}

	buf := buffer.New(n, opts...)
	defer buf.Release()

	var (
		surplus  T
		overflow bool
	)
	for v := range seq {
		if buf.Full() {
			surplus, overflow = v, true
			break
		}
		mustNot(buf.Push(v))
	}

	if overflow || !buf.Full() {
		if overflow {
			// runs after the prefix even if the policy panics on it
			defer buf.Discard(surplus)
		}
		mustNot(buf.Teardown())
		return nil, false
	}

	out, err := buf.Finish()
	mustNot(err)

	return out, true
}
