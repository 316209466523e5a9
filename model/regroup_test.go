package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func built(t *testing.T, n int) *State {
	t.Helper()
	s := NewState()
	s.Build(n)
	require.NoError(t, s.Validate())
	return s
}

func frameShape[T any](frames [][]T) []int {
	out := make([]int, len(frames))
	for i, f := range frames {
		out[i] = len(f)
	}
	return out
}

func TestComposeOnesBundlesFullFrame(t *testing.T) {
	s := built(t, 0)
	s.ones = nil
	for range 13 {
		s.ones = append(s.ones, Unit{ID: s.alloc.Unit()})
	}
	require.True(t, s.FullOnesFrame(0))
	require.False(t, s.FullOnesFrame(1))

	_, nextStick, _ := s.alloc.Peek()
	change, ok := s.ComposeOnes(0)
	require.True(t, ok)

	assert.Equal(t, TransitionComposeOnes, change.Transition)
	assert.Equal(t, nextStick, change.Stick)
	assert.Equal(t, []UnitID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, change.Moved)
	assert.Equal(t, Summary{Tens: 1, Ones: 3}, s.Summary())
	assert.Equal(t, []UnitID{11, 12, 13}, unitIDs(s.LooseUnits()))
	require.NoError(t, s.Validate())
}

func TestComposeOnesKeepsOtherIDs(t *testing.T) {
	s := built(t, 134)
	for len(s.tens) > 0 {
		s.DecomposeTen(s.tens[0].ID)
	}
	require.Equal(t, Summary{Hundreds: 1, Ones: 34}, s.Summary())

	hundreds := s.Hundreds()
	sticksBefore := s.LooseSticks()

	change, ok := s.ComposeOnes(1)
	require.True(t, ok)

	assert.Equal(t, Summary{Hundreds: 1, Tens: 1, Ones: 24}, s.Summary())
	assert.Equal(t, hundreds, s.Hundreds())
	assert.Empty(t, sticksBefore)
	assert.Equal(t, change.Stick, s.LooseSticks()[0].ID)
	require.NoError(t, s.Validate())
}

func TestComposeOnesRejectsPartialFrame(t *testing.T) {
	s := built(t, 34)
	before := s.Clone()

	_, ok := s.ComposeOnes(0)
	assert.False(t, ok)
	_, ok = s.ComposeOnes(5)
	assert.False(t, ok)
	_, ok = s.ComposeOnes(-1)
	assert.False(t, ok)
	assert.Equal(t, before, s)
}

func TestDecomposeTen(t *testing.T) {
	s := built(t, 34)
	target := s.tens[1]

	change, ok := s.DecomposeTen(target.ID)
	require.True(t, ok)

	assert.Equal(t, target.UnitIDs(), change.Moved)
	assert.Equal(t, Summary{Tens: 2, Ones: 14}, s.Summary())
	assert.Equal(t, []int{10, 4}, frameShape(s.OnesFrames()))
	assert.Equal(t, change.Moved, unitIDs(s.OnesFrames()[0]))
	_, _, found := s.FindStick(target.ID)
	assert.False(t, found)
	require.NoError(t, s.Validate())
}

func TestDecomposeTenRejectsStickInsideHundred(t *testing.T) {
	s := built(t, 100)
	inside := s.hundreds[0].Sticks[3].ID
	before := s.Clone()

	_, ok := s.DecomposeTen(inside)
	assert.False(t, ok)
	_, ok = s.DecomposeTen(StickID(999))
	assert.False(t, ok)
	assert.Equal(t, before, s)
}

func TestComposeTens(t *testing.T) {
	s := built(t, 0)
	for range 4 {
		s.Build(s.Value() + 30)
	}
	require.Equal(t, Summary{Hundreds: 1, Tens: 2}, s.Summary())

	// decompose the hundred to get 12 loose sticks packed 10 + 2
	s.DecomposeHundred(s.hundreds[0].ID)
	require.Equal(t, []int{10, 2}, frameShape(s.TensFrames()))
	slots := stickIDs(s.tens[:Capacity])

	change, ok := s.ComposeTens(0)
	require.True(t, ok)

	h := s.Hundreds()
	require.Len(t, h, 1)
	assert.Equal(t, change.Hundred, h[0].ID)
	assert.Equal(t, slots, stickIDs(h[0].Sticks[:]))
	assert.Equal(t, slots, change.Sticks)
	assert.Equal(t, h[0].UnitIDs(), change.Moved)
	assert.Equal(t, []int{2}, frameShape(s.TensFrames()))
	require.NoError(t, s.Validate())

	_, ok = s.ComposeTens(0)
	assert.False(t, ok)
}

func TestDecompose579Hundreds(t *testing.T) {
	s := built(t, 579)
	for len(s.hundreds) > 0 {
		_, ok := s.DecomposeHundred(s.hundreds[0].ID)
		require.True(t, ok)
		require.NoError(t, s.Validate())
	}

	assert.Equal(t, Summary{Tens: 57, Ones: 9}, s.Summary())
	assert.Equal(t, []int{10, 10, 10, 10, 10, 7}, frameShape(s.TensFrames()))
	assert.Equal(t, 579, s.Value())
}

func TestDecomposeHundredAppendsToTail(t *testing.T) {
	s := built(t, 234)
	tail := s.LooseSticks()
	h := s.hundreds[1]

	_, ok := s.DecomposeHundred(h.ID)
	require.True(t, ok)

	sticks := s.LooseSticks()
	require.Len(t, sticks, 13)
	assert.Equal(t, tail, sticks[:3])
	assert.Equal(t, h.Sticks[:], sticks[3:])

	_, ok = s.DecomposeHundred(h.ID)
	assert.False(t, ok)
}

func TestRoundTripDecomposeCompose(t *testing.T) {
	s := built(t, 47)
	ids := sortedIDs(s)
	sum := s.Summary()
	ones := unitIDs(s.LooseUnits())
	stick := s.tens[2]

	_, ok := s.DecomposeTen(stick.ID)
	require.True(t, ok)
	assert.Equal(t, []int{10, 7}, frameShape(s.OnesFrames()))
	_, ok = s.ComposeOnes(0)
	require.True(t, ok)

	assert.Equal(t, ids, sortedIDs(s))
	assert.Equal(t, sum, s.Summary())
	assert.Equal(t, ones, unitIDs(s.LooseUnits()))
	sticks := s.LooseSticks()
	assert.Equal(t, stick.UnitIDs(), sticks[len(sticks)-1].UnitIDs())
	require.NoError(t, s.Validate())
}

func TestDecomposeTenKeepsEveryFrameWhole(t *testing.T) {
	s := built(t, 99)
	for len(s.tens) > 0 {
		st := s.tens[len(s.tens)-1]
		_, ok := s.DecomposeTen(st.ID)
		require.True(t, ok)
		require.NoError(t, s.Validate())

		// each decomposed stick is a whole frame ahead of the nine loose ones
		frames := s.OnesFrames()
		assert.Equal(t, st.UnitIDs(), unitIDs(frames[len(frames)-2]))
		assert.Len(t, frames[len(frames)-1], 9)
	}
	assert.Equal(t, Summary{Ones: 99}, s.Summary())
}

func TestRoundTripHundred(t *testing.T) {
	s := built(t, 300)
	ids := sortedIDs(s)

	_, ok := s.DecomposeHundred(s.hundreds[0].ID)
	require.True(t, ok)
	_, ok = s.ComposeTens(0)
	require.True(t, ok)

	assert.Equal(t, ids, sortedIDs(s))
	assert.Equal(t, Summary{Hundreds: 3}, s.Summary())
	require.NoError(t, s.Validate())
}

func TestCloneIsIndependent(t *testing.T) {
	s := built(t, 111)
	c := s.Clone()

	_, ok := c.DecomposeHundred(c.hundreds[0].ID)
	require.True(t, ok)

	assert.Equal(t, Summary{Hundreds: 1, Tens: 1, Ones: 1}, s.Summary())
	assert.Equal(t, Summary{Tens: 11, Ones: 1}, c.Summary())
	assert.Equal(t, sortedIDs(s), sortedIDs(c))
}
