// Package build constructs fixed-size arrays element by element from a
// generator, on top of the tracked partial buffer in package buffer.
//
// What
//
//   - Build:       infallible generator, always returns n values.
//   - BuildOption: generator may decline with false; the whole build is absent.
//   - BuildResult: generator may fail with an error; the first error is
//     returned exactly as the generator produced it.
//   - Map, MapOption, MapResult: the same three modes over an existing slice.
//   - Collect: gathers exactly n values from an iter.Seq.
//
// Guarantees
//
//   - The generator is called once per index, in ascending order, starting
//     at 0. After the first abort no further index is requested.
//   - A failed build returns no elements. Every element produced before the
//     abort is torn down exactly once, by the buffer's teardown policy
//     (Release on buffer.Releaser values by default, or buffer.WithTeardown).
//   - A panicking generator is not recovered. The deferred buffer guard tears
//     down the elements built so far, then the panic continues unchanged.
//   - n == 0 succeeds at once with an empty, non-nil slice; the generator is
//     never called.
//
// Example
//
//	squares := build.Build(5, func(i int) int { return i * i })
//	// [0 1 4 9 16]
//
//	conns, err := build.BuildResult(4, func(i int) (*Conn, error) {
//	    return dial(addrs[i])
//	})
//	// on error: connections 0..k-1 were released, err is dial's error
//
// Complexity
//
//	O(n) generator calls and O(n) memory for the result.
//
// Concurrency
//
//	Construction is sequential and synchronous. To produce elements in
//	parallel, compute them elsewhere and hand them to Build or Map.
package build
