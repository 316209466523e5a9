package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestCanonicalizeEmpty(t *testing.T) {
	frames := Canonicalize([]int{}, Capacity)
	require.Len(t, frames, 1)
	assert.Empty(t, frames[0])

	frames = Canonicalize[int](nil, Capacity)
	require.Len(t, frames, 1)
}

func TestCanonicalizeShapes(t *testing.T) {
	for _, tc := range []struct {
		n      int
		shapes []int
	}{
		{n: 1, shapes: []int{1}},
		{n: 9, shapes: []int{9}},
		{n: 10, shapes: []int{10}},
		{n: 11, shapes: []int{10, 1}},
		{n: 34, shapes: []int{10, 10, 10, 4}},
		{n: 57, shapes: []int{10, 10, 10, 10, 10, 7}},
	} {
		frames := Canonicalize(seq(tc.n), Capacity)
		got := make([]int, len(frames))
		for i, f := range frames {
			got[i] = len(f)
		}
		assert.Equal(t, tc.shapes, got, "n=%d", tc.n)
	}
}

func TestCanonicalizePreservesOrderAndCount(t *testing.T) {
	for n := range 120 {
		items := seq(n)
		flat := Flatten(Canonicalize(items, Capacity))
		if n == 0 {
			assert.Empty(t, flat)
			continue
		}
		assert.Equal(t, items, flat, "n=%d", n)
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	// uneven input frames, as if sticks were appended to a tail
	uneven := [][]int{{0, 1, 2}, {3, 4, 5, 6, 7, 8, 9, 10, 11}, {}, {12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22}}

	once := Canonicalize(Flatten(uneven), Capacity)
	twice := Canonicalize(Flatten(once), Capacity)
	assert.Equal(t, once, twice)
	assert.Equal(t, [][]int{seq(10), {10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, {20, 21, 22}}, once)
}

func TestCanonicalizeDoesNotAlias(t *testing.T) {
	items := seq(12)
	frames := Canonicalize(items, Capacity)
	frames[0][0] = 99
	assert.Equal(t, 0, items[0])
}

func TestFrameBounds(t *testing.T) {
	start, end, ok := frameBounds(34, 3)
	require.True(t, ok)
	assert.Equal(t, 30, start)
	assert.Equal(t, 34, end)

	_, _, ok = frameBounds(34, 4)
	assert.False(t, ok)
	_, _, ok = frameBounds(34, -1)
	assert.False(t, ok)
	_, _, ok = frameBounds(0, 0)
	assert.False(t, ok)
}
