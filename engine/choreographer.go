package engine

import (
	"cmp"
	"slices"
	"time"

	"github.com/lixenwraith/base-ten/model"
	"github.com/lixenwraith/base-ten/vmath"
)

// Locator maps every unit of a state to its on-screen position
// The presentation layer implements it; entities carry no visual handle
type Locator interface {
	// Locate places s on its own
	Locate(s *model.State) map[model.UnitID]vmath.Point
	// Reserve places s while keeping room for every container of other
	Reserve(s, other *model.State) map[model.UnitID]vmath.Point
}

// MotionKind distinguishes the two motion primitives
type MotionKind uint8

const (
	// MotionFly carries a unit into a slot of a newly created container
	MotionFly MotionKind = iota
	// MotionFlip slides a unit whose slot moved during repacking
	MotionFlip
)

// Motion is a single unit's path within a phase
type Motion struct {
	Unit     model.UnitID
	From, To vmath.Point
}

// Sprite is a unit drawn away from its layout slot this frame
type Sprite struct {
	Unit model.UnitID
	Kind MotionKind
	Pos  vmath.Point
}

// Scene is what the presentation layer draws for one frame
type Scene struct {
	// State is the structure to draw: pre-mutation during fly, post-mutation otherwise
	State      *model.State
	// Reserve is the structure whose containers keep their room; set only during fly
	Reserve    *model.State
	Phase      Phase
	Transition model.Transition

	// Sprites override layout positions for units in motion
	Sprites map[model.UnitID]Sprite
	// Ghosts are the destination slots of flying units
	Ghosts []vmath.Point
}

// Step reports phase boundaries crossed by a Begin or Advance call
type Step struct {
	// Committed is set when fly finished and the post-mutation structure took over
	Committed bool
	// Finished is set when flip and settle finished and input may unlock
	Finished bool
}

// Choreographer sequences fly-to-slot and flip for one transition at a time
type Choreographer struct {
	locator Locator
	timing  Timing
	easing  vmath.Easing
	phase   phaseMachine

	before     *model.State
	after      *model.State
	transition model.Transition
	moved      map[model.UnitID]struct{}

	// shown is where each unit of after sits when the structure is committed
	shown    map[model.UnitID]vmath.Point
	afterPos map[model.UnitID]vmath.Point
	fly      []Motion
	yield    []Motion
	flip     []Motion
}

// NewChoreographer creates an idle choreographer
func NewChoreographer(locator Locator, timing Timing) *Choreographer {
	return &Choreographer{
		locator: locator,
		timing:  timing,
		easing:  vmath.Ease.Func(),
	}
}

// Phase returns the current phase
func (c *Choreographer) Phase() Phase {
	return c.phase.current
}

// Busy reports whether a transition is in flight
func (c *Choreographer) Busy() bool {
	return c.phase.current != PhaseIdle
}

// Begin captures positions on both sides of a mutation and starts the first phase
// before must not be mutated until the returned or a later Step reports Committed
func (c *Choreographer) Begin(before, after *model.State, change model.Change, now time.Time) Step {
	if c.Busy() {
		panic("engine: choreographer already running " + c.transition.String())
	}

	c.before = before
	c.after = after
	c.transition = change.Transition
	c.afterPos = c.locator.Locate(after)

	// During fly both structures share one geometry with room for either
	flyPos := c.locator.Reserve(before, after)
	landPos := c.locator.Reserve(after, before)

	c.moved = make(map[model.UnitID]struct{}, len(change.Moved))
	c.fly = c.fly[:0]
	claimed := make(map[[2]int]struct{}, len(change.Moved))
	for _, id := range change.Moved {
		c.moved[id] = struct{}{}
		from, okFrom := flyPos[id]
		to, okTo := landPos[id]
		if !okFrom || !okTo {
			continue
		}
		c.fly = append(c.fly, Motion{Unit: id, From: from, To: to})
		x, y := to.Cell()
		claimed[[2]int{x, y}] = struct{}{}
	}

	c.yield = c.yield[:0]
	if len(c.fly) == 0 {
		// nothing flies, so the reserved geometry is never drawn
		c.shown = c.locator.Locate(before)
		c.startFlip(now)
		step := c.Advance(now)
		step.Committed = true
		return step
	}

	// Units resting on a destination slot make room while the others fly
	c.shown = make(map[model.UnitID]vmath.Point, len(landPos))
	for id, p := range flyPos {
		c.shown[id] = p
		if _, flown := c.moved[id]; flown {
			continue
		}
		x, y := p.Cell()
		if _, hit := claimed[[2]int{x, y}]; !hit {
			continue
		}
		if to, ok := landPos[id]; ok {
			c.yield = append(c.yield, Motion{Unit: id, From: p, To: to})
		}
	}
	slices.SortFunc(c.yield, func(a, b Motion) int { return cmp.Compare(a.Unit, b.Unit) })
	for _, m := range c.fly {
		c.shown[m.Unit] = m.To
	}
	for _, m := range c.yield {
		c.shown[m.Unit] = m.To
	}

	c.phase.enter(PhaseFly, now)
	return c.Advance(now)
}

// startFlip slides every unit from where it was shown to its committed slot
// Units that flew or made room only move here when releasing the reserved room shifted them
func (c *Choreographer) startFlip(at time.Time) {
	c.flip = c.flip[:0]
	for id, to := range c.afterPos {
		from, ok := c.shown[id]
		if !ok || from.Near(to, c.timing.Epsilon) {
			continue
		}
		c.flip = append(c.flip, Motion{Unit: id, From: from, To: to})
	}
	slices.SortFunc(c.flip, func(a, b Motion) int { return cmp.Compare(a.Unit, b.Unit) })

	c.phase.enter(PhaseFlip, at)
}

// flipTotal is the flip slide plus settle; nothing to slide means nothing to wait for
func (c *Choreographer) flipTotal() time.Duration {
	if len(c.flip) == 0 {
		return 0
	}
	return c.timing.Flip + c.timing.Settle
}

// Advance crosses every phase boundary that lies at or before now
func (c *Choreographer) Advance(now time.Time) Step {
	var step Step

	if c.phase.current == PhaseFly && c.phase.elapsed(now) >= c.timing.Fly {
		// chain from the scheduled end, not from now, so late frames do not stretch flip
		c.startFlip(c.phase.since.Add(c.timing.Fly))
		step.Committed = true
	}

	if c.phase.current == PhaseFlip && c.phase.elapsed(now) >= c.flipTotal() {
		c.phase.enter(PhaseIdle, now)
		c.reset()
		step.Finished = true
	}

	return step
}

func (c *Choreographer) reset() {
	c.before, c.after = nil, nil
	c.shown, c.afterPos = nil, nil
	c.moved = nil
	c.fly = c.fly[:0]
	c.yield = c.yield[:0]
	c.flip = c.flip[:0]
	c.transition = model.TransitionNone
}

// FlyMotions returns the current fly set; empty once idle
func (c *Choreographer) FlyMotions() []Motion {
	return slices.Clone(c.fly)
}

// YieldMotions returns the units making room during fly
func (c *Choreographer) YieldMotions() []Motion {
	return slices.Clone(c.yield)
}

// FlipMotions returns the current flip set; empty until fly completes
func (c *Choreographer) FlipMotions() []Motion {
	if c.phase.current != PhaseFlip {
		return nil
	}
	return slices.Clone(c.flip)
}

// Scene interpolates every moving unit at now
// Idle scenes carry no state; the engine fills in its committed model
func (c *Choreographer) Scene(now time.Time) Scene {
	switch c.phase.current {
	case PhaseFly:
		t := c.easing(progress(c.phase.elapsed(now), c.timing.Fly))
		sc := Scene{
			State:      c.before,
			Reserve:    c.after,
			Phase:      PhaseFly,
			Transition: c.transition,
			Sprites:    make(map[model.UnitID]Sprite, len(c.fly)+len(c.yield)),
			Ghosts:     make([]vmath.Point, 0, len(c.fly)),
		}
		for _, m := range c.fly {
			sc.Sprites[m.Unit] = Sprite{Unit: m.Unit, Kind: MotionFly, Pos: vmath.LerpPoint(m.From, m.To, t)}
			sc.Ghosts = append(sc.Ghosts, m.To)
		}
		for _, m := range c.yield {
			sc.Sprites[m.Unit] = Sprite{Unit: m.Unit, Kind: MotionFlip, Pos: vmath.LerpPoint(m.From, m.To, t)}
		}
		return sc

	case PhaseFlip:
		t := c.easing(progress(c.phase.elapsed(now), c.timing.Flip))
		sc := Scene{
			State:      c.after,
			Phase:      PhaseFlip,
			Transition: c.transition,
			Sprites:    make(map[model.UnitID]Sprite, len(c.flip)),
		}
		for _, m := range c.flip {
			sc.Sprites[m.Unit] = Sprite{Unit: m.Unit, Kind: MotionFlip, Pos: vmath.LerpPoint(m.From, m.To, t)}
		}
		return sc
	}

	return Scene{Phase: PhaseIdle}
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(elapsed) / float64(total))
}
