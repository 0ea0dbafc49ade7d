// Package buffer provides a tracked partial buffer: fixed-capacity storage for
// n elements paired with a count of how many leading slots hold live values.
//
// What
//
//   - New allocates an empty Buffer of capacity n (count = 0).
//   - Push writes the next free slot and advances the count by exactly one.
//   - Finish hands the n values out as an ordinary []T once every slot is set.
//   - Teardown destroys the live prefix [0,count) in ascending order.
//   - Release is the safety net: deferred right after New, it tears the buffer
//     down unless Finish or Teardown already ran.
//
// Lifecycle
//
//	open ──Push*──▶ open ──Finish──▶ finished
//	  │                 │
//	  └──Teardown/Release──▶ torn down
//
// A buffer reaches at most one terminal state. Once terminal, Push, Finish
// and Teardown return ErrClosed and Release does nothing, so teardown can
// never run twice for the same buffer.
//
// Destroying a value
//
//	Go has no destructors. Destroying a live slot means zeroing it and running
//	the buffer's teardown policy for the value it held. The default policy calls
//	Release on values implementing Releaser and ignores everything else;
//	WithTeardown installs a custom policy.
//
// Panics
//
//	Release is written to run from a deferred call while a panic unwinds. It
//	never recovers: the panic reaches the caller unchanged after the live
//	slots have been destroyed.
//
// Manual slots
//
//	Uninit and MarkInitialized keep the lower-level shape available: allocate
//	n empty Slots, write each one in any order, then convert. MarkInitialized
//	checks every slot and reports the first unset one with ErrUninitialized.
//
// Concurrency
//
//	A Buffer is owned by a single goroutine for its whole life and is not safe
//	for concurrent use.
package buffer
