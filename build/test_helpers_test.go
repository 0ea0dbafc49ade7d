// SPDX-License-Identifier: MIT
// Package build_test contains shared fixtures for builder tests.
//
// Purpose:
//   • Count generator calls per index.
//   • Record which elements were released, and how often.

package build_test

import "errors"

// errBadIndex is a caller-owned error used to check verbatim propagation.
var errBadIndex = errors.New("bad index 2")

// ledger tracks the lifetime of every element a generator produced.
type ledger struct {
	calls    []int       // indices passed to the generator, in call order
	built    []int       // ids of constructed elements
	released map[int]int // id -> number of Release calls
	order    []int       // ids in release order
}

func newLedger() *ledger {
	return &ledger{released: make(map[int]int)}
}

// elem is an owning element: it must be released exactly once unless it
// ends up in a finished array.
type elem struct {
	id  int
	log *ledger
}

// Release implements buffer.Releaser.
func (e elem) Release() {
	e.log.released[e.id]++
	e.log.order = append(e.log.order, e.id)
}

// produce constructs the element for index i and records the call.
func (l *ledger) produce(i int) elem {
	l.calls = append(l.calls, i)
	l.built = append(l.built, i)
	return elem{id: i, log: l}
}

// call records a generator call that produced no element.
func (l *ledger) call(i int) {
	l.calls = append(l.calls, i)
}

// releasedOnce reports whether every built element was released exactly once.
func (l *ledger) releasedOnce() bool {
	if len(l.released) != len(l.built) {
		return false
	}
	for _, id := range l.built {
		if l.released[id] != 1 {
			return false
		}
	}
	return true
}

// ids extracts element ids in array order.
func ids(es []elem) []int {
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = e.id
	}
	return out
}
