package model

import (
	"errors"
	"fmt"
	"slices"
)

// MaxValue is the largest number the manipulative represents
const MaxValue = 999

// Summary is the place-value readout of a state
type Summary struct {
	Hundreds int
	Tens     int
	Ones     int
}

// Value returns the number the summary represents
func (s Summary) Value() int {
	return s.Hundreds*100 + s.Tens*10 + s.Ones
}

func (s Summary) String() string {
	return fmt.Sprintf("%d hundreds, %d tens, %d ones", s.Hundreds, s.Tens, s.Ones)
}

// SummaryOf returns the canonical readout for n
func SummaryOf(n int) Summary {
	return Summary{Hundreds: n / 100, Tens: (n % 100) / 10, Ones: n % 10}
}

// State is the structural model: loose units, loose sticks and hundred-blocks
// Frames are never stored; OnesFrames and TensFrames derive them on demand
type State struct {
	alloc    Allocator
	ones     []Unit
	tens     []TenStick
	hundreds []HundredBlock
}

// NewState returns an empty state representing zero
func NewState() *State {
	return &State{alloc: NewAllocator()}
}

// Clone returns a deep copy; entities are values so slice copies suffice
func (s *State) Clone() *State {
	return &State{
		alloc:    s.alloc,
		ones:     slices.Clone(s.ones),
		tens:     slices.Clone(s.tens),
		hundreds: slices.Clone(s.hundreds),
	}
}

// OnesFrames returns loose units packed into frames of ten
func (s *State) OnesFrames() [][]Unit {
	return Canonicalize(s.ones, Capacity)
}

// TensFrames returns loose sticks packed into frames of ten
func (s *State) TensFrames() [][]TenStick {
	return Canonicalize(s.tens, Capacity)
}

// Hundreds returns hundred-blocks in creation order
func (s *State) Hundreds() []HundredBlock {
	return slices.Clone(s.hundreds)
}

// LooseUnits returns units not bundled in any stick
func (s *State) LooseUnits() []Unit {
	return slices.Clone(s.ones)
}

// LooseSticks returns sticks not bundled in any hundred
func (s *State) LooseSticks() []TenStick {
	return slices.Clone(s.tens)
}

// Summary counts hundreds, loose sticks and loose units
func (s *State) Summary() Summary {
	return Summary{Hundreds: len(s.hundreds), Tens: len(s.tens), Ones: len(s.ones)}
}

// Value returns the number the state represents
func (s *State) Value() int {
	return s.Summary().Value()
}

// Units returns every allocated unit: loose units, then sticks, then hundreds
func (s *State) Units() []Unit {
	out := make([]Unit, 0, s.Value())
	out = append(out, s.ones...)
	for _, st := range s.tens {
		out = append(out, st.Units[:]...)
	}
	for _, h := range s.hundreds {
		for _, st := range h.Sticks {
			out = append(out, st.Units[:]...)
		}
	}
	return out
}

// FindStick locates a loose stick by id
// Sticks inside hundred-blocks are not found
func (s *State) FindStick(id StickID) (frame, slot int, ok bool) {
	for i, st := range s.tens {
		if st.ID == id {
			return i / Capacity, i % Capacity, true
		}
	}
	return 0, 0, false
}

// FindHundred returns the position of a hundred-block in creation order
func (s *State) FindHundred(id HundredID) (int, bool) {
	for i, h := range s.hundreds {
		if h.ID == id {
			return i, true
		}
	}
	return 0, false
}

// FullOnesFrame reports whether ones-frame index holds exactly ten units
func (s *State) FullOnesFrame(index int) bool {
	start, end, ok := frameBounds(len(s.ones), index)
	return ok && end-start == Capacity
}

// FullTensFrame reports whether tens-frame index holds exactly ten sticks
func (s *State) FullTensFrame(index int) bool {
	start, end, ok := frameBounds(len(s.tens), index)
	return ok && end-start == Capacity
}

// ErrInvariant is wrapped by every Validate failure
var ErrInvariant = errors.New("invariant violated")

// Validate checks the canonical-state invariants
func (s *State) Validate() error {
	if err := validateFrames("ones", s.OnesFrames()); err != nil {
		return err
	}
	if err := validateFrames("tens", s.TensFrames()); err != nil {
		return err
	}

	nextUnit, nextStick, nextHundred := s.alloc.Peek()
	seen := make(map[UnitID]struct{}, s.Value())
	for _, u := range s.Units() {
		if _, dup := seen[u.ID]; dup {
			return fmt.Errorf("%w: unit %d owned twice", ErrInvariant, u.ID)
		}
		if u.ID == 0 || u.ID >= nextUnit {
			return fmt.Errorf("%w: unit %d outside allocated range", ErrInvariant, u.ID)
		}
		seen[u.ID] = struct{}{}
	}
	if len(seen) != s.Value() {
		return fmt.Errorf("%w: %d units for value %d", ErrInvariant, len(seen), s.Value())
	}

	sticks := slices.Clone(s.tens)
	for _, h := range s.hundreds {
		if h.ID == 0 || h.ID >= nextHundred {
			return fmt.Errorf("%w: hundred %d outside allocated range", ErrInvariant, h.ID)
		}
		sticks = append(sticks, h.Sticks[:]...)
	}
	for _, st := range sticks {
		if st.ID == 0 || st.ID >= nextStick {
			return fmt.Errorf("%w: stick %d outside allocated range", ErrInvariant, st.ID)
		}
		if !slices.IsSortedFunc(st.Units[:], func(a, b Unit) int { return int(a.ID) - int(b.ID) }) {
			return fmt.Errorf("%w: stick %d units out of order", ErrInvariant, st.ID)
		}
	}
	return nil
}

func validateFrames[T any](side string, frames [][]T) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: %s side has no frame", ErrInvariant, side)
	}
	for i, f := range frames {
		last := i == len(frames)-1
		if !last && len(f) != Capacity {
			return fmt.Errorf("%w: %s frame %d holds %d", ErrInvariant, side, i, len(f))
		}
		if len(f) > Capacity {
			return fmt.Errorf("%w: %s frame %d overfull", ErrInvariant, side, i)
		}
	}
	return nil
}
