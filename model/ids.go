package model

// UnitID identifies a single unit cube for its whole lifetime
type UnitID uint32

// StickID identifies a ten-stick
type StickID uint32

// HundredID identifies a hundred-block
type HundredID uint32

// Allocator issues identifiers per entity kind
// Counters only move forward so a destroyed id is never handed out again
type Allocator struct {
	nextUnit    UnitID
	nextStick   StickID
	nextHundred HundredID
}

// NewAllocator creates an allocator whose first id of every kind is 1
func NewAllocator() Allocator {
	return Allocator{nextUnit: 1, nextStick: 1, nextHundred: 1}
}

// Unit returns a fresh unit id
func (a *Allocator) Unit() UnitID {
	id := a.nextUnit
	a.nextUnit++
	return id
}

// Stick returns a fresh stick id
func (a *Allocator) Stick() StickID {
	id := a.nextStick
	a.nextStick++
	return id
}

// Hundred returns a fresh hundred id
func (a *Allocator) Hundred() HundredID {
	id := a.nextHundred
	a.nextHundred++
	return id
}

// Peek returns the ids the next allocations would return, without consuming them
func (a *Allocator) Peek() (UnitID, StickID, HundredID) {
	return a.nextUnit, a.nextStick, a.nextHundred
}
