// Package unarray builds fixed-size arrays one element at a time without
// ever exposing a half-built array, and without leaking or double-releasing
// elements when a build is abandoned.
//
// What is inside
//
//	buffer/ — Buffer[T]: fixed capacity, a live-prefix count, Push, Finish,
//	          Teardown, and the deferred Release guard. Also manual Slots
//	          (Uninit / MarkInitialized).
//	build/  — Build, BuildOption, BuildResult: generator-driven construction
//	          in three modes, plus Map*, and Collect for iter.Seq.
//	grid/   — Dense[T]: fixed-shape 2-D arrays built through build.
//
// Failure model
//
//   - Absent (BuildOption): the generator declines; the result is (nil, false).
//   - Error (BuildResult): the generator's first error comes back unchanged.
//   - Panic: never recovered; the elements built so far are released first.
//
// In every failure case each element built before the failure is torn down
// exactly once, and the caller gets no elements.
//
// Quick example:
//
//	squares := build.Build(5, func(i int) int { return i * i }) // [0 1 4 9 16]
//
//	go get github.com/katalvlaran/unarray
package unarray
