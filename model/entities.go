package model

import (
	"cmp"
	"slices"
)

// Unit is a single cube
type Unit struct {
	ID UnitID
}

// TenStick bundles exactly ten units, ordered by ascending id at creation
type TenStick struct {
	ID    StickID
	Units [Capacity]Unit
}

// HundredBlock bundles exactly ten sticks in the order they were composed
type HundredBlock struct {
	ID     HundredID
	Sticks [Capacity]TenStick
}

// UnitIDs returns the ids of the stick's units in slot order
func (s TenStick) UnitIDs() []UnitID {
	ids := make([]UnitID, Capacity)
	for i, u := range s.Units {
		ids[i] = u.ID
	}
	return ids
}

// UnitIDs returns the ids of the block's units, stick by stick
func (h HundredBlock) UnitIDs() []UnitID {
	ids := make([]UnitID, 0, Capacity*Capacity)
	for _, s := range h.Sticks {
		for _, u := range s.Units {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

// newStick bundles units into a stick with units sorted by id
// Caller guarantees len(units) == Capacity
func newStick(id StickID, units []Unit) TenStick {
	sorted := slices.Clone(units)
	sortUnits(sorted)

	st := TenStick{ID: id}
	copy(st.Units[:], sorted)
	return st
}

// newHundred bundles sticks into a block keeping their slot order
// Caller guarantees len(sticks) == Capacity
func newHundred(id HundredID, sticks []TenStick) HundredBlock {
	h := HundredBlock{ID: id}
	copy(h.Sticks[:], sticks)
	return h
}

func sortUnits(units []Unit) {
	slices.SortFunc(units, func(a, b Unit) int { return cmp.Compare(a.ID, b.ID) })
}
