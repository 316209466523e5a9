package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitIDs(units []Unit) []UnitID {
	ids := make([]UnitID, len(units))
	for i, u := range units {
		ids[i] = u.ID
	}
	return ids
}

func sortedIDs(s *State) []UnitID {
	ids := unitIDs(s.Units())
	slices.Sort(ids)
	return ids
}

func TestBuildSummaryForEveryValue(t *testing.T) {
	s := NewState()
	for n := 0; n <= MaxValue; n++ {
		s.Build(n)
		require.Equal(t, SummaryOf(n), s.Summary(), "n=%d", n)
		require.Equal(t, n, s.Value())
		require.NoError(t, s.Validate(), "n=%d", n)
	}
}

func TestBuildFromScratchEveryValue(t *testing.T) {
	for n := 0; n <= MaxValue; n += 37 {
		s := NewState()
		res := s.Build(n)
		assert.Equal(t, n, res.Value)
		assert.Len(t, res.Created, n)
		assert.Empty(t, res.Destroyed)
		require.NoError(t, s.Validate())
	}
}

func TestBuild34(t *testing.T) {
	s := NewState()
	s.Build(34)

	assert.Equal(t, Summary{Hundreds: 0, Tens: 3, Ones: 4}, s.Summary())

	tens := s.TensFrames()
	require.Len(t, tens, 1)
	assert.Len(t, tens[0], 3)

	ones := s.OnesFrames()
	require.Len(t, ones, 1)
	assert.Len(t, ones[0], 4)
}

func TestBuildZeroKeepsEmptyFrames(t *testing.T) {
	s := NewState()
	s.Build(0)

	require.Len(t, s.OnesFrames(), 1)
	require.Len(t, s.TensFrames(), 1)
	assert.Empty(t, s.OnesFrames()[0])
	assert.Empty(t, s.TensFrames()[0])
	assert.Empty(t, s.Hundreds())
}

func TestBuildClamps(t *testing.T) {
	s := NewState()
	assert.Equal(t, MaxValue, s.Build(5000).Value)
	assert.Equal(t, MaxValue, s.Value())

	assert.Equal(t, 0, s.Build(-3).Value)
	assert.Equal(t, 0, s.Value())
}

func TestBuildGrowKeepsIDsAndAllocatesAscending(t *testing.T) {
	s := NewState()
	s.Build(12)
	before := sortedIDs(s)

	res := s.Build(15)
	after := sortedIDs(s)

	assert.Equal(t, before, after[:12])
	assert.Equal(t, []UnitID{13, 14, 15}, res.Created)
	assert.Equal(t, res.Created, after[12:])
}

func TestBuildShrinkDestroysHighestIDs(t *testing.T) {
	s := NewState()
	s.Build(25)

	res := s.Build(21)
	assert.Equal(t, []UnitID{22, 23, 24, 25}, res.Destroyed)
	assert.Equal(t, []UnitID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}, sortedIDs(s))

	// destroyed ids never come back
	res = s.Build(23)
	assert.Equal(t, []UnitID{26, 27}, res.Created)
}

func TestBuildPartitionsPositionally(t *testing.T) {
	s := NewState()
	s.Build(123)

	h := s.Hundreds()
	require.Len(t, h, 1)
	ids := h[0].UnitIDs()
	for i, id := range ids {
		assert.Equal(t, UnitID(i+1), id)
	}

	sticks := s.LooseSticks()
	require.Len(t, sticks, 2)
	assert.Equal(t, UnitID(101), sticks[0].Units[0].ID)
	assert.Equal(t, UnitID(111), sticks[1].Units[0].ID)

	assert.Equal(t, []UnitID{121, 122, 123}, unitIDs(s.LooseUnits()))
}

func TestBuildRebuildsContainersWithFreshIDs(t *testing.T) {
	s := NewState()
	s.Build(20)
	first := s.LooseSticks()

	s.Build(20)
	second := s.LooseSticks()

	require.Len(t, second, 2)
	assert.Greater(t, second[0].ID, first[1].ID)
	assert.Equal(t, first[0].Units, second[0].Units)
}

func TestParseValue(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"42", 42},
		{" 7 ", 7},
		{"1000", MaxValue},
		{"-5", 0},
		{"12abc", 0},
	} {
		assert.Equal(t, tc.want, ParseValue(tc.in), "input %q", tc.in)
	}
}
