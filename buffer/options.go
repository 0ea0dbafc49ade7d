// SPDX-License-Identifier: MIT
// Package: unarray/buffer
//
// options.go — functional options for Buffer.
//
// Contract:
//   • Options are functional (type Option[T] func(*config[T])).
//   • Option constructors panic on nil functions; a nil hook is a
//     programmer error, not a runtime condition.
//   • newConfig applies options in order (later overrides earlier).

package buffer

// Releaser is implemented by element types that own something beyond their
// memory (a pooled object, a file, a lease). The default teardown policy calls
// Release once for every live value a torn-down buffer held.
type Releaser interface {
	Release()
}

// Option customizes a Buffer before its first slot is written.
// Complexity: applying k options costs O(k).
type Option[T any] func(*config[T])

// config holds the teardown policy and lifecycle hooks of one Buffer.
// It is copied by value into the buffer and never shared.
type config[T any] struct {
	destroy    func(index int, v T) // teardown policy for a live slot
	onWrite    func(index int, v T) // after a successful Push
	onFinish   func(n int)          // after Finish hands the values out
	onTeardown func(live int)       // before the live prefix is destroyed
}

// newConfig returns deterministic defaults with opts applied in order.
func newConfig[T any](opts ...Option[T]) config[T] {
	cfg := config[T]{
		destroy:    releaseValue[T],
		onWrite:    func(int, T) {},
		onFinish:   func(int) {},
		onTeardown: func(int) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// The helpers below treat nil functions as defaults, so a zero config (the
// config of a zero Buffer) behaves like newConfig with no options.

func (c *config[T]) destroyValue(index int, v T) {
	if c.destroy == nil {
		releaseValue(index, v)
		return
	}
	c.destroy(index, v)
}

func (c *config[T]) wrote(index int, v T) {
	if c.onWrite != nil {
		c.onWrite(index, v)
	}
}

func (c *config[T]) finished(n int) {
	if c.onFinish != nil {
		c.onFinish(n)
	}
}

func (c *config[T]) tearingDown(live int) {
	if c.onTeardown != nil {
		c.onTeardown(live)
	}
}

// releaseValue is the default teardown policy.
func releaseValue[T any](_ int, v T) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
}

// WithTeardown replaces the default teardown policy. fn is called once per
// live slot, in ascending index order, after the slot has been cleared.
// Panics on nil.
func WithTeardown[T any](fn func(index int, v T)) Option[T] {
	if fn == nil {
		panic("buffer: WithTeardown(nil)")
	}
	return func(c *config[T]) {
		c.destroy = fn
	}
}

// WithOnWrite registers a hook called after each successful Push with the
// index that was written. Panics on nil.
func WithOnWrite[T any](fn func(index int, v T)) Option[T] {
	if fn == nil {
		panic("buffer: WithOnWrite(nil)")
	}
	return func(c *config[T]) {
		c.onWrite = fn
	}
}

// WithOnFinish registers a hook called when Finish converts the buffer into
// a finished array of n values. Panics on nil.
func WithOnFinish[T any](fn func(n int)) Option[T] {
	if fn == nil {
		panic("buffer: WithOnFinish(nil)")
	}
	return func(c *config[T]) {
		c.onFinish = fn
	}
}

// WithOnTeardown registers a hook called when teardown starts, with the
// number of live slots about to be destroyed. Panics on nil.
func WithOnTeardown[T any](fn func(live int)) Option[T] {
	if fn == nil {
		panic("buffer: WithOnTeardown(nil)")
	}
	return func(c *config[T]) {
		c.onTeardown = fn
	}
}
