// Package layout places the place-value structure on a terminal grid and maps
// screen cells back to transition targets
package layout

import (
	"github.com/lixenwraith/base-ten/core"
	"github.com/lixenwraith/base-ten/engine"
	"github.com/lixenwraith/base-ten/model"
	"github.com/lixenwraith/base-ten/vmath"
)

// Box geometry in cells
const (
	MarginX = 2
	GapX    = 2
	GapY    = 1

	// BlockWidth holds ten stick columns inside a border
	BlockWidth  = model.Capacity + 2
	BlockHeight = model.Capacity + 2

	// TensFrameWidth spaces ten stick columns two cells apart
	TensFrameWidth  = 2*model.Capacity + 1
	TensFrameHeight = model.Capacity + 2

	// OnesFrameWidth lays ten units out as two rows of five
	OnesFrameWidth  = 2*OnesPerRow + 1
	OnesFrameHeight = model.Capacity/OnesPerRow + 2
	OnesPerRow      = 5
)

// Region labels
const (
	LabelHundreds = "Hundreds"
	LabelTens     = "Tens"
	LabelOnes     = "Ones"
)

// Label is a region caption
type Label struct {
	Text string
	X, Y int
}

// FrameBox is a tens-frame or ones-frame outline
type FrameBox struct {
	core.Area
	Index int
	Count int
	Full  bool
	// Slots are the cell positions of the frame's ten slots in order
	Slots [model.Capacity]vmath.Point
}

// StickBox is a loose ten-stick column inside a tens-frame
type StickBox struct {
	core.Area
	ID    model.StickID
	Frame int
	Slot  int
}

// BlockBox is a hundred-block outline
type BlockBox struct {
	core.Area
	ID    model.HundredID
	Index int
}

// Arrangement is one state placed on the grid, in content coordinates
type Arrangement struct {
	Width  int
	Height int

	Labels     []Label
	Blocks     []BlockBox
	TensFrames []FrameBox
	Sticks     []StickBox
	OnesFrames []FrameBox

	Units map[model.UnitID]vmath.Point
}

// Layout arranges states for a given content width
type Layout struct {
	width int
}

// New creates a layout for a content area width cells wide
func New(width int) *Layout {
	l := &Layout{}
	l.SetWidth(width)
	return l
}

// SetWidth updates the wrapping width; narrow widths still fit one box per row
func (l *Layout) SetWidth(width int) {
	l.width = max(width, 0)
}

// Width returns the wrapping width
func (l *Layout) Width() int {
	return l.width
}

// Locate implements engine.Locator
func (l *Layout) Locate(s *model.State) map[model.UnitID]vmath.Point {
	return l.Arrange(s).Units
}

// Reserve implements engine.Locator
func (l *Layout) Reserve(s, other *model.State) map[model.UnitID]vmath.Point {
	return l.ArrangeReserved(s, other).Units
}

// perRow returns how many boxes of width w fit side by side
func (l *Layout) perRow(w int) int {
	return max(1, (l.width-MarginX+GapX)/(w+GapX))
}

// place returns the top-left of the i-th box in a wrapped row starting at top
func (l *Layout) place(i, w, h, top int) core.Area {
	n := l.perRow(w)
	return core.Area{
		X:      MarginX + (i%n)*(w+GapX),
		Y:      top + (i/n)*(h+GapY),
		Width:  w,
		Height: h,
	}
}

// regionHeight is the label row plus wrapped rows of boxes
func (l *Layout) regionHeight(count, w, h int) int {
	if count == 0 {
		return 1
	}
	rows := (count + l.perRow(w) - 1) / l.perRow(w)
	return 1 + rows*h + (rows-1)*GapY
}

// regionHeights returns the hundreds, tens and ones region heights of s
func (l *Layout) regionHeights(s *model.State) [3]int {
	return [3]int{
		l.regionHeight(len(s.Hundreds()), BlockWidth, BlockHeight),
		l.regionHeight(len(s.TensFrames()), TensFrameWidth, TensFrameHeight),
		l.regionHeight(len(s.OnesFrames()), OnesFrameWidth, OnesFrameHeight),
	}
}

// Arrange places hundreds, then tens, then ones, top to bottom
func (l *Layout) Arrange(s *model.State) Arrangement {
	return l.arrange(s, [3]int{})
}

// ArrangeReserved places s with every region at least as tall as in other
// A nil other arranges s on its own
func (l *Layout) ArrangeReserved(s, other *model.State) Arrangement {
	if other == nil {
		return l.Arrange(s)
	}
	return l.arrange(s, l.regionHeights(other))
}

func (l *Layout) arrange(s *model.State, floor [3]int) Arrangement {
	a := Arrangement{
		Width: l.width,
		Units: make(map[model.UnitID]vmath.Point, s.Value()),
	}
	y := 0

	hundreds := s.Hundreds()
	a.Labels = append(a.Labels, Label{Text: LabelHundreds, X: MarginX, Y: y})
	for i, blk := range hundreds {
		area := l.place(i, BlockWidth, BlockHeight, y+1)
		a.Blocks = append(a.Blocks, BlockBox{Area: area, ID: blk.ID, Index: i})
		for j, st := range blk.Sticks {
			for k, u := range st.Units {
				a.Units[u.ID] = vmath.Pt(area.X+1+j, area.Y+1+k)
			}
		}
	}
	y += max(l.regionHeight(len(hundreds), BlockWidth, BlockHeight), floor[0]) + GapY

	tens := s.TensFrames()
	a.Labels = append(a.Labels, Label{Text: LabelTens, X: MarginX, Y: y})
	for i, frame := range tens {
		area := l.place(i, TensFrameWidth, TensFrameHeight, y+1)
		box := FrameBox{Area: area, Index: i, Count: len(frame), Full: len(frame) == model.Capacity}
		for slot := range box.Slots {
			box.Slots[slot] = vmath.Pt(area.X+1+2*slot, area.Y+1)
		}
		a.TensFrames = append(a.TensFrames, box)

		for slot, st := range frame {
			col := area.X + 1 + 2*slot
			a.Sticks = append(a.Sticks, StickBox{
				Area:  core.Area{X: col, Y: area.Y + 1, Width: 1, Height: model.Capacity},
				ID:    st.ID,
				Frame: i,
				Slot:  slot,
			})
			for k, u := range st.Units {
				a.Units[u.ID] = vmath.Pt(col, area.Y+1+k)
			}
		}
	}
	y += max(l.regionHeight(len(tens), TensFrameWidth, TensFrameHeight), floor[1]) + GapY

	ones := s.OnesFrames()
	a.Labels = append(a.Labels, Label{Text: LabelOnes, X: MarginX, Y: y})
	for i, frame := range ones {
		area := l.place(i, OnesFrameWidth, OnesFrameHeight, y+1)
		box := FrameBox{Area: area, Index: i, Count: len(frame), Full: len(frame) == model.Capacity}
		for slot := range box.Slots {
			box.Slots[slot] = vmath.Pt(area.X+1+2*(slot%OnesPerRow), area.Y+1+slot/OnesPerRow)
		}
		a.OnesFrames = append(a.OnesFrames, box)

		for slot, u := range frame {
			a.Units[u.ID] = box.Slots[slot]
		}
	}
	y += max(l.regionHeight(len(ones), OnesFrameWidth, OnesFrameHeight), floor[2])

	a.Height = y
	return a
}

// HitTest returns the targets under a content cell, innermost first
// Sticks inside hundred-blocks are part of the block and never targets of their own
func (a Arrangement) HitTest(x, y int) []engine.Request {
	var hits []engine.Request
	for _, st := range a.Sticks {
		if st.Contains(x, y) {
			hits = append(hits, engine.DecomposeStick(st.ID))
		}
	}
	for _, f := range a.TensFrames {
		if f.Contains(x, y) {
			hits = append(hits, engine.ComposeTensFrame(f.Index))
		}
	}
	for _, b := range a.Blocks {
		if b.Contains(x, y) {
			hits = append(hits, engine.DecomposeBlock(b.ID))
		}
	}
	for _, f := range a.OnesFrames {
		if f.Contains(x, y) {
			hits = append(hits, engine.ComposeOnesFrame(f.Index))
		}
	}
	return hits
}
