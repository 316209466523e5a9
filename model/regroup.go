package model

import "slices"

// Transition names one of the four regrouping moves
type Transition uint8

const (
	TransitionNone Transition = iota
	TransitionComposeOnes
	TransitionDecomposeTen
	TransitionComposeTens
	TransitionDecomposeHundred
)

func (t Transition) String() string {
	switch t {
	case TransitionComposeOnes:
		return "compose-ones"
	case TransitionDecomposeTen:
		return "decompose-ten"
	case TransitionComposeTens:
		return "compose-tens"
	case TransitionDecomposeHundred:
		return "decompose-hundred"
	default:
		return "none"
	}
}

// IsCompose reports whether the transition bundles children into a new container
func (t Transition) IsCompose() bool {
	return t == TransitionComposeOnes || t == TransitionComposeTens
}

// Change describes a completed mutation
type Change struct {
	Transition Transition

	// Moved lists the units entering a new container, in destination slot order
	Moved []UnitID

	// Stick is the stick created (compose ones) or destroyed (decompose ten)
	Stick StickID
	// Hundred is the block created (compose tens) or destroyed (decompose hundred)
	Hundred HundredID
	// Sticks are the sticks that changed owner (compose tens, decompose hundred)
	Sticks []StickID
}

// ComposeOnes bundles the full ones-frame at index into a new stick at the tens tail
func (s *State) ComposeOnes(index int) (Change, bool) {
	start, end, ok := frameBounds(len(s.ones), index)
	if !ok || end-start != Capacity {
		return Change{}, false
	}

	units := slices.Clone(s.ones[start:end])
	s.ones = slices.Delete(s.ones, start, end)

	st := newStick(s.alloc.Stick(), units)
	s.tens = append(s.tens, st)

	return Change{
		Transition: TransitionComposeOnes,
		Moved:      st.UnitIDs(),
		Stick:      st.ID,
	}, true
}

// DecomposeTen breaks a loose stick into a full ones-frame placed before the partial tail
// The frame stays whole, so composing it again rebuilds the same stick
func (s *State) DecomposeTen(id StickID) (Change, bool) {
	i := slices.IndexFunc(s.tens, func(st TenStick) bool { return st.ID == id })
	if i < 0 {
		return Change{}, false
	}

	st := s.tens[i]
	s.tens = slices.Delete(s.tens, i, i+1)

	units := slices.Clone(st.Units[:])
	sortUnits(units)
	at := len(s.ones) - len(s.ones)%Capacity
	s.ones = slices.Insert(s.ones, at, units...)

	moved := make([]UnitID, len(units))
	for j, u := range units {
		moved[j] = u.ID
	}
	return Change{
		Transition: TransitionDecomposeTen,
		Moved:      moved,
		Stick:      st.ID,
	}, true
}

// ComposeTens bundles the full tens-frame at index into a new hundred-block
func (s *State) ComposeTens(index int) (Change, bool) {
	start, end, ok := frameBounds(len(s.tens), index)
	if !ok || end-start != Capacity {
		return Change{}, false
	}

	sticks := slices.Clone(s.tens[start:end])
	s.tens = slices.Delete(s.tens, start, end)

	h := newHundred(s.alloc.Hundred(), sticks)
	s.hundreds = append(s.hundreds, h)

	return Change{
		Transition: TransitionComposeTens,
		Moved:      h.UnitIDs(),
		Hundred:    h.ID,
		Sticks:     stickIDs(sticks),
	}, true
}

// DecomposeHundred returns a block's sticks to the tens tail
func (s *State) DecomposeHundred(id HundredID) (Change, bool) {
	i, ok := s.FindHundred(id)
	if !ok {
		return Change{}, false
	}

	h := s.hundreds[i]
	s.hundreds = slices.Delete(s.hundreds, i, i+1)

	moved := make([]UnitID, 0, Capacity*Capacity)
	for _, st := range h.Sticks {
		sortUnits(st.Units[:])
		s.tens = append(s.tens, st)
		for _, u := range st.Units {
			moved = append(moved, u.ID)
		}
	}

	return Change{
		Transition: TransitionDecomposeHundred,
		Moved:      moved,
		Hundred:    h.ID,
		Sticks:     stickIDs(h.Sticks[:]),
	}, true
}

func stickIDs(sticks []TenStick) []StickID {
	ids := make([]StickID, len(sticks))
	for i, st := range sticks {
		ids[i] = st.ID
	}
	return ids
}
