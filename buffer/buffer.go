// SPDX-License-Identifier: MIT
// Package: unarray/buffer
//
// buffer.go — the tracked partial buffer.
//
// Invariant: slots[0:count) hold live values written by Push; slots[count:size)
// hold the zero value and are never handed out. count only grows by one per
// Push, and a buffer reaches at most one terminal state.

package buffer

import "fmt"

// state is the lifecycle position of a Buffer.
type state uint8

const (
	stateOpen     state = iota // accepting Push
	stateFinished              // values handed out by Finish
	stateTornDown              // live prefix destroyed
)

// String renders the state for error context.
func (s state) String() string {
	switch s {
	case stateOpen:
		return "open"
	case stateFinished:
		return "finished"
	case stateTornDown:
		return "torn down"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Buffer is fixed-capacity storage for size values of type T together with
// the number of leading slots that currently hold live values.
//
// The zero Buffer is an open buffer of capacity 0 with the default teardown
// policy; New is the usual way to get one.
type Buffer[T any] struct {
	slots []T       // backing storage, len == size until a terminal state
	size  int       // capacity fixed at New
	count int       // live prefix length, 0 ≤ count ≤ size
	state state     // lifecycle position
	cfg   config[T] // teardown policy and hooks
}

// New returns an empty buffer with room for n values.
// Panics if n < 0, mirroring make.
// Complexity: O(n) time and memory for the zeroed backing slice.
func New[T any](n int, opts ...Option[T]) *Buffer[T] {
	if n < 0 {
		panic(fmt.Sprintf("buffer: New(%d): negative length", n))
	}

	return &Buffer[T]{
		slots: make([]T, n),
		size:  n,
		cfg:   newConfig(opts...),
	}
}

// Len returns the number of live values the buffer still owns.
// It drops to 0 once the buffer is finished or torn down.
func (b *Buffer[T]) Len() int { return b.count }

// Cap returns the fixed capacity chosen at New.
func (b *Buffer[T]) Cap() int { return b.size }

// Full reports whether every slot holds a live value.
func (b *Buffer[T]) Full() bool { return b.state == stateOpen && b.count == b.size }

// Closed reports whether the buffer reached a terminal state.
func (b *Buffer[T]) Closed() bool { return b.state != stateOpen }

// Push stores v in the next free slot and advances the live count.
// Returns ErrClosed on a finished or torn-down buffer and ErrFull when no
// free slot is left; in both cases v is not retained.
// Complexity: O(1).
func (b *Buffer[T]) Push(v T) error {
	if b.state != stateOpen {
		return bufferErrorf("Push", ErrClosed, "%s", b.state)
	}
	if b.count == b.size {
		return bufferErrorf("Push", ErrFull, "cap %d", b.size)
	}

	idx := b.count
	b.slots[idx] = v
	b.count++
	b.cfg.wrote(idx, v)

	return nil
}

// Finish transfers ownership of all values to the caller as a slice with
// len == cap == Cap(). No value is destroyed. Returns ErrIncomplete, leaving
// the buffer open, while empty slots remain, and ErrClosed on a terminal
// buffer.
// Complexity: O(1).
func (b *Buffer[T]) Finish() ([]T, error) {
	if b.state != stateOpen {
		return nil, bufferErrorf("Finish", ErrClosed, "%s", b.state)
	}
	if b.count != b.size {
		return nil, bufferErrorf("Finish", ErrIncomplete, "%d of %d", b.count, b.size)
	}

	out := b.slots[:b.size:b.size]
	b.slots = nil
	b.count = 0
	b.state = stateFinished
	b.cfg.finished(b.size)

	return out, nil
}

// Teardown destroys the live values in ascending index order and closes
// the buffer. Returns ErrClosed, destroying nothing, on a terminal buffer.
// Complexity: O(count) plus the cost of the teardown policy.
func (b *Buffer[T]) Teardown() error {
	if b.state != stateOpen {
		return bufferErrorf("Teardown", ErrClosed, "%s", b.state)
	}
	b.teardown()

	return nil
}

// Release tears the buffer down unless it is already finished or torn down.
// Call it with defer right after New:
//
//	buf := buffer.New[T](n)
//	defer buf.Release()
//
// It also runs while a panic unwinds and never recovers it.
func (b *Buffer[T]) Release() {
	if b.state == stateOpen {
		b.teardown()
	}
}

// Discard runs the teardown policy on a value the buffer was offered but
// never stored, such as a surplus element pulled to detect overflow. The
// policy sees index Cap(). Discard works in every state and does not touch
// the live slots.
func (b *Buffer[T]) Discard(v T) {
	b.cfg.destroyValue(b.size, v)
}

// teardown closes the buffer first, so a panicking policy cannot lead to a
// second teardown, then destroys slots[0:live). If the policy panics on slot
// k, the deferred loop still destroys k+1..live-1 while the panic unwinds.
func (b *Buffer[T]) teardown() {
	live, slots := b.count, b.slots
	b.state = stateTornDown
	b.count = 0
	b.slots = nil

	next := 0
	destroyNext := func() {
		var zero T
		i := next
		next++
		v := slots[i]
		slots[i] = zero
		b.cfg.destroyValue(i, v)
	}
	defer func() {
		for next < live {
			destroyNext()
		}
	}()

	b.cfg.tearingDown(live)
	for next < live {
		destroyNext()
	}
}
