package model

import (
	"strconv"
	"strings"
)

// BuildResult reports what a rebuild did to the unit population
type BuildResult struct {
	Value     int
	Created   []UnitID
	Destroyed []UnitID
}

// Clamp bounds n to [0, MaxValue]
func Clamp(n int) int {
	return max(0, min(MaxValue, n))
}

// ParseValue reads a target from user text; anything non-numeric counts as 0
func ParseValue(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return Clamp(n)
}

// Build replaces the whole structure with the canonical arrangement of target
// Surviving units keep their ids; sticks and hundreds are always rebuilt fresh
func (s *State) Build(target int) BuildResult {
	target = Clamp(target)
	res := BuildResult{Value: target}

	pool := s.Units()
	sortUnits(pool)

	switch {
	case len(pool) < target:
		for len(pool) < target {
			u := Unit{ID: s.alloc.Unit()}
			pool = append(pool, u)
			res.Created = append(res.Created, u.ID)
		}
	case len(pool) > target:
		// highest ids go first
		for _, u := range pool[target:] {
			res.Destroyed = append(res.Destroyed, u.ID)
		}
		pool = pool[:target]
	}

	sum := SummaryOf(target)
	idx := 0
	take := func() []Unit {
		chunk := pool[idx : idx+Capacity]
		idx += Capacity
		return chunk
	}

	s.hundreds = make([]HundredBlock, 0, sum.Hundreds)
	for range sum.Hundreds {
		sticks := make([]TenStick, 0, Capacity)
		for range Capacity {
			sticks = append(sticks, newStick(s.alloc.Stick(), take()))
		}
		s.hundreds = append(s.hundreds, newHundred(s.alloc.Hundred(), sticks))
	}

	s.tens = make([]TenStick, 0, sum.Tens)
	for range sum.Tens {
		s.tens = append(s.tens, newStick(s.alloc.Stick(), take()))
	}

	s.ones = append(make([]Unit, 0, sum.Ones), pool[idx:]...)
	return res
}
