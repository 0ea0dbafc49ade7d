package build_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/unarray/build"
	"github.com/stretchr/testify/require"
)

// TestMap doubles every element in source order.
func TestMap(t *testing.T) {
	require.Equal(t, []int{2, 4, 6}, build.Map([]int{1, 2, 3}, func(i int) int { return i * 2 }))
	require.Empty(t, build.Map(nil, func(i int) int { return i }))
}

// TestMapOption parses booleans and declines on anything else.
func TestMapOption(t *testing.T) {
	parse := func(s string) (bool, bool) {
		switch s {
		case "true":
			return true, true
		case "false":
			return false, true
		default:
			return false, false
		}
	}

	out, ok := build.MapOption([]string{"true", "false", "true"}, parse)
	require.True(t, ok)
	require.Equal(t, []bool{true, false, true}, out)

	out, ok = build.MapOption([]string{"true", "maybe", "false"}, parse)
	require.False(t, ok)
	require.Nil(t, out)
}

// TestMapResult uses strconv.Atoi directly and keeps its *NumError.
func TestMapResult(t *testing.T) {
	out, err := build.MapResult([]string{"123", "234", "345"}, strconv.Atoi)
	require.NoError(t, err)
	require.Equal(t, []int{123, 234, 345}, out)

	out, err = build.MapResult([]string{"123", "uh oh"}, strconv.Atoi)
	require.Nil(t, out)
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	require.Equal(t, "uh oh", numErr.Num)
}

// TestMapResultTearsDownMappedPrefix releases the elements mapped before the failure.
func TestMapResultTearsDownMappedPrefix(t *testing.T) {
	log := newLedger()
	_, err := build.MapResult([]int{0, 1, 2, 3}, func(i int) (elem, error) {
		if i == 2 {
			return elem{}, errBadIndex
		}
		return log.produce(i), nil
	})
	require.ErrorIs(t, err, errBadIndex)
	require.Equal(t, []int{0, 1}, log.built)
	require.True(t, log.releasedOnce())
}
