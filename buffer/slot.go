// SPDX-License-Identifier: MIT
// Package: unarray/buffer
//
// slot.go — manual slot arrays.
//
// Uninit and MarkInitialized are the low-level counterpart of Buffer: the
// caller writes slots in any order and converts once every slot is set.
// The conversion is checked, so an empty slot can never leak into the result.

package buffer

// Slot is one storage position that is either empty or holds one value.
// The zero Slot is empty.
type Slot[T any] struct {
	value T
	set   bool
}

// Write stores v, replacing any previous value, and returns a pointer to the
// stored value for in-place initialization.
func (s *Slot[T]) Write(v T) *T {
	s.value = v
	s.set = true

	return &s.value
}

// IsSet reports whether the slot holds a value.
func (s *Slot[T]) IsSet() bool { return s.set }

// Uninit returns n empty slots.
// Panics if n < 0, mirroring make.
func Uninit[T any](n int) []Slot[T] {
	if n < 0 {
		panic("buffer: Uninit: negative length")
	}

	return make([]Slot[T], n)
}

// MarkInitialized converts fully written slots into a finished array with
// len == cap == len(slots). It returns ErrUninitialized naming the first
// empty slot otherwise, and does not modify slots in either case.
// Complexity: O(n).
func MarkInitialized[T any](slots []Slot[T]) ([]T, error) {
	for i := range slots {
		if !slots[i].set {
			return nil, bufferErrorf("MarkInitialized", ErrUninitialized, "slot %d of %d", i, len(slots))
		}
	}

	out := make([]T, len(slots))
	for i := range slots {
		out[i] = slots[i].value
	}

	return out, nil
}
