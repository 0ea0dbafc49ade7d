// SPDX-License-Identifier: MIT
// Package: unarray/build
//
// drive.go — the one construction loop shared by every entry point.
//
// Entry points differ only in how they classify a generator call: a value to
// store, or an abort reason of type A. drive owns the buffer for the whole
// call and is the only place that pushes, finishes or tears down.

package build

import (
	"fmt"

	"github.com/katalvlaran/unarray/buffer"
)

// drive fills a buffer of n slots by calling next for indices 0..n-1.
// next classifies one generator call: ok with a value to store, or !ok with
// the reason the build must stop.
// On the first abort it tears the buffer down and returns the reason with
// aborted == true. If next panics, the deferred Release tears down instead.
func drive[T, A any](n int, next func(int) (T, A, bool), opts []buffer.Option[T]) (out []T, reason A, aborted bool) {
	if n < 0 {
		panic(fmt.Sprintf("build: negative length %d", n))
	}

	buf := buffer.New(n, opts...)
	defer buf.Release()

	for !buf.Full() {
		v, why, ok := next(buf.Len())
		if !ok {
			mustNot(buf.Teardown())
			return nil, why, true
		}
		mustNot(buf.Push(v))
	}

	out, err := buf.Finish()
	mustNot(err)

	return out, reason, false
}

// mustNot panics on err. drive only calls buffer methods in states where
// they cannot fail, so an error here is a bug in this package.
func mustNot(err error) {
	if err != nil {
		panic(fmt.Sprintf("build: broken buffer invariant: %v", err))
	}
}
