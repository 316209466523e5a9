package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/base-ten/constants"
	"github.com/lixenwraith/base-ten/core"
	"github.com/lixenwraith/base-ten/engine"
	"github.com/lixenwraith/base-ten/layout"
	"github.com/lixenwraith/base-ten/model"
)

const (
	// HeaderRows holds status, help and number field plus a spacer
	HeaderRows = 4
	// FooterRows holds the key help line
	FooterRows = 1
)

// HUD is the non-structural state shown around the scene
type HUD struct {
	Mode   engine.Mode
	Locked bool
	Input  string
	Muted  bool
}

// TerminalRenderer draws scenes and the HUD onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	layout *layout.Layout
	width  int
	height int

	scroll int
	// last is the arrangement drawn most recently, used for hit testing
	last layout.Arrangement
}

// NewTerminalRenderer creates a renderer sharing the engine's layout
func NewTerminalRenderer(screen tcell.Screen, lay *layout.Layout) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, layout: lay}
	r.UpdateDimensions(screen.Size())
	return r
}

// UpdateDimensions updates the renderer dimensions and the layout's wrapping width
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.width = width
	r.height = height
	r.layout.SetWidth(width)
	r.clampScroll()
}

// viewport is the scrolling content area in screen cells
func (r *TerminalRenderer) viewport() core.Area {
	return core.Area{X: 0, Y: HeaderRows, Width: r.width, Height: max(0, r.height-HeaderRows-FooterRows)}
}

// Scroll moves the content by delta rows, clamped to the content height
func (r *TerminalRenderer) Scroll(delta int) {
	r.scroll += delta
	r.clampScroll()
}

// ScrollPage scrolls by one viewport height in the direction of sign
func (r *TerminalRenderer) ScrollPage(sign int) {
	r.Scroll(sign * max(1, r.viewport().Height-1))
}

// ScrollOffset returns the current scroll in rows
func (r *TerminalRenderer) ScrollOffset() int {
	return r.scroll
}

func (r *TerminalRenderer) clampScroll() {
	limit := max(0, r.last.Height-r.viewport().Height)
	r.scroll = min(max(r.scroll, 0), limit)
}

// HitTest maps a screen cell to click targets in the last drawn frame
func (r *TerminalRenderer) HitTest(x, y int) []engine.Request {
	if !r.viewport().Contains(x, y) {
		return nil
	}
	return r.last.HitTest(x, y-HeaderRows+r.scroll)
}

// Arrangement returns the last drawn arrangement
func (r *TerminalRenderer) Arrangement() layout.Arrangement {
	return r.last
}

// RenderFrame draws one frame and shows it
func (r *TerminalRenderer) RenderFrame(scene engine.Scene, hud HUD) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.Fill(' ', defaultStyle)

	r.last = r.layout.ArrangeReserved(scene.State, scene.Reserve)
	r.clampScroll()

	r.drawScene(scene, hud, defaultStyle)
	r.drawStatusBar(scene.State.Summary(), hud, defaultStyle)
	r.drawKeyHelp(defaultStyle)

	r.screen.Show()
}

// toScreen converts content coordinates; ok is false outside the viewport
func (r *TerminalRenderer) toScreen(x, y int) (int, int, bool) {
	sy := y + HeaderRows - r.scroll
	return x, sy, r.viewport().Contains(x, sy)
}

func (r *TerminalRenderer) put(x, y int, ch rune, style tcell.Style) {
	if sx, sy, ok := r.toScreen(x, y); ok {
		r.screen.SetContent(sx, sy, ch, nil, style)
	}
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) drawBox(a core.Area, style tcell.Style) {
	right, bottom := a.Right()-1, a.Bottom()-1
	for x := a.X + 1; x < right; x++ {
		r.put(x, a.Y, '─', style)
		r.put(x, bottom, '─', style)
	}
	for y := a.Y + 1; y < bottom; y++ {
		r.put(a.X, y, '│', style)
		r.put(right, y, '│', style)
	}
	r.put(a.X, a.Y, '┌', style)
	r.put(right, a.Y, '┐', style)
	r.put(a.X, bottom, '└', style)
	r.put(right, bottom, '┘', style)
}

func (r *TerminalRenderer) drawScene(scene engine.Scene, hud HUD, defaultStyle tcell.Style) {
	a := r.last
	s := scene.State

	labelStyle := defaultStyle.Foreground(RgbDim)
	for _, l := range a.Labels {
		for i, ch := range l.Text {
			r.put(l.X+i, l.Y, ch, labelStyle)
		}
	}

	// Containers
	blockStyle := defaultStyle.Foreground(RgbBlock)
	if hud.Mode == engine.ModeDecompose {
		blockStyle = defaultStyle.Foreground(RgbBlockHot)
	}
	for _, b := range a.Blocks {
		r.drawBox(b.Area, blockStyle)
	}

	emptyStyle := defaultStyle.Foreground(RgbDim)
	for _, f := range a.TensFrames {
		r.drawBox(f.Area, r.frameStyle(f, hud.Mode, defaultStyle))
		for slot := f.Count; slot < model.Capacity; slot++ {
			x, y := f.Slots[slot].Cell()
			for k := range model.Capacity {
				r.put(x, y+k, constants.GlyphStickSlot, emptyStyle)
			}
		}
	}
	for _, f := range a.OnesFrames {
		r.drawBox(f.Area, r.frameStyle(f, hud.Mode, defaultStyle))
		for slot := f.Count; slot < model.Capacity; slot++ {
			x, y := f.Slots[slot].Cell()
			r.put(x, y, constants.GlyphEmptySlot, emptyStyle)
		}
	}

	// Ghost slots sit under everything that moves
	ghostStyle := defaultStyle.Foreground(RgbGhost)
	for _, g := range scene.Ghosts {
		x, y := g.Cell()
		r.put(x, y, constants.GlyphGhostSlot, ghostStyle)
	}

	// Resting units
	r.drawUnits(s, a, scene.Sprites, defaultStyle)

	// Moving units
	flyStyle := defaultStyle.Foreground(RgbFlying)
	flipStyle := defaultStyle.Foreground(RgbFlip)
	for _, sp := range scene.Sprites {
		x, y := sp.Pos.Cell()
		style := flipStyle
		if sp.Kind == engine.MotionFly {
			style = flyStyle
		}
		r.put(x, y, constants.GlyphCube, style)
	}
}

func (r *TerminalRenderer) frameStyle(f layout.FrameBox, mode engine.Mode, defaultStyle tcell.Style) tcell.Style {
	if f.Full && mode == engine.ModeCompose {
		return defaultStyle.Foreground(RgbFrameFull)
	}
	return defaultStyle.Foreground(RgbFrame)
}

func (r *TerminalRenderer) drawUnits(s *model.State, a layout.Arrangement, sprites map[model.UnitID]engine.Sprite, defaultStyle tcell.Style) {
	draw := func(ids []model.UnitID, style tcell.Style) {
		for _, id := range ids {
			if _, moving := sprites[id]; moving {
				continue
			}
			if p, ok := a.Units[id]; ok {
				x, y := p.Cell()
				r.put(x, y, constants.GlyphCube, style)
			}
		}
	}

	hundredStyle := defaultStyle.Foreground(RgbHundred)
	for _, blk := range s.Hundreds() {
		draw(blk.UnitIDs(), hundredStyle)
	}
	tenStyle := defaultStyle.Foreground(RgbTen)
	for _, st := range s.LooseSticks() {
		draw(st.UnitIDs(), tenStyle)
	}
	oneStyle := defaultStyle.Foreground(RgbOne)
	for _, u := range s.LooseUnits() {
		draw([]model.UnitID{u.ID}, oneStyle)
	}
}

func (r *TerminalRenderer) drawStatusBar(sum model.Summary, hud HUD, defaultStyle tcell.Style) {
	// Mode indicator
	modeText, modeBg, help := constants.ModeTextCompose, RgbModeComposeBg, constants.HelpCompose
	if hud.Mode == engine.ModeDecompose {
		modeText, modeBg, help = constants.ModeTextDecompose, RgbModeDecomposeBg, constants.HelpDecompose
	}
	x := r.text(0, 0, modeText, defaultStyle.Foreground(RgbStatusText).Background(modeBg))

	// Readout
	x = r.text(x+1, 0, fmt.Sprintf("%s = %d", sum, sum.Value()), defaultStyle)

	// Right side: lock badge, mute
	right := ""
	if hud.Muted {
		right = " muted "
	}
	if hud.Locked {
		lx := r.width - len(constants.LockBadgeText) - len(right)
		if lx > x {
			r.text(lx, 0, constants.LockBadgeText, defaultStyle.Foreground(tcell.ColorWhite).Background(RgbLockBg))
		}
	}
	if right != "" && r.width-len(right) > x {
		r.text(r.width-len(right), 0, right, defaultStyle.Foreground(RgbDim))
	}

	// Help line
	helpStyle := defaultStyle.Foreground(RgbDim)
	if hud.Locked {
		helpStyle = helpStyle.Dim(true)
	}
	r.text(0, 1, help, helpStyle)

	// Number field
	x = r.text(0, 2, "Number: ", defaultStyle)
	field := fmt.Sprintf("%-*s", constants.InputMaxDigits, hud.Input)
	x = r.text(x, 2, field, defaultStyle.Background(RgbInputBg))
	r.text(x+1, 2, "Enter to build", defaultStyle.Foreground(RgbDim))
}

func (r *TerminalRenderer) drawKeyHelp(defaultStyle tcell.Style) {
	if r.height < 1 {
		return
	}
	r.text(0, r.height-1, constants.KeyHelp, defaultStyle.Foreground(RgbDim))
}
