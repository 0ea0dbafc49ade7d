// SPDX-License-Identifier: MIT
// Package: unarray/buffer
//
// errors.go — sentinel errors for the buffer package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch on them with errors.Is.
//   • Methods attach context with %w via bufferErrorf, never by rewording
//     the sentinel itself.
//   • Misuse of a Buffer returns an error. Panics are reserved for
//     programmer errors: negative lengths and nil option functions.

package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned by Push when every slot already holds a value.
	ErrFull = errors.New("buffer: all slots written")

	// ErrIncomplete is returned by Finish while some slots are still empty.
	// The buffer stays open; the caller may keep pushing or tear it down.
	ErrIncomplete = errors.New("buffer: not every slot is written")

	// ErrClosed is returned by Push, Finish and Teardown once the buffer has
	// been finished or torn down.
	ErrClosed = errors.New("buffer: buffer already finalized")

	// ErrUninitialized is returned by MarkInitialized when a slot is empty.
	ErrUninitialized = errors.New("buffer: uninitialized slot")
)

// bufferErrorf prefixes err with the method name and a formatted detail,
// preserving err for errors.Is.
func bufferErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
