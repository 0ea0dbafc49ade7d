// SPDX-License-Identifier: MIT
// Package buffer_test contains shared fixtures for buffer tests.

package buffer_test

// ledger records, in order, the ids of handles that were released.
type ledger struct {
	released []int
}

// handle is an element type that owns something: Release must run exactly
// once per handle that made it into a buffer.
type handle struct {
	id  int
	log *ledger
}

// Release implements buffer.Releaser.
func (h handle) Release() {
	h.log.released = append(h.log.released, h.id)
}

// handles returns n handles with ids 0..n-1 sharing one ledger.
func handles(n int) ([]handle, *ledger) {
	log := &ledger{}
	out := make([]handle, n)
	for i := range out {
		out[i] = handle{id: i, log: log}
	}

	return out, log
}
