package build_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/unarray/buffer"
	"github.com/katalvlaran/unarray/build"
)

// ExampleBuild builds an array of squares from the index alone.
func ExampleBuild() {
	fmt.Println(build.Build(5, func(i int) int { return i * i }))
	// Output:
	// [0 1 4 9 16]
}

// ExampleBuildOption stops at the first index the generator declines.
func ExampleBuildOption() {
	out, ok := build.BuildOption(5, func(i int) (int, bool) { return i, i < 3 },
		buffer.WithTeardown(func(i int, v int) { fmt.Println("teardown", v) }),
	)
	fmt.Println(out, ok)
	// Output:
	// teardown 0
	// teardown 1
	// teardown 2
	// [] false
}

// ExampleBuildResult returns the generator's own error.
func ExampleBuildResult() {
	errBad := errors.New("bad index 2")
	_, err := build.BuildResult(4, func(i int) (int, error) {
		if i == 2 {
			return 0, errBad
		}
		return i, nil
	})
	fmt.Println(err, errors.Is(err, errBad))
	// Output:
	// bad index 2 true
}

// ExampleMapResult parses every string or none.
func ExampleMapResult() {
	nums, err := build.MapResult([]string{"123", "234"}, strconv.Atoi)
	fmt.Println(nums, err)

	_, err = build.MapResult([]string{"123", "uh oh"}, strconv.Atoi)
	fmt.Println(err != nil)
	// Output:
	// [123 234] <nil>
	// true
}
