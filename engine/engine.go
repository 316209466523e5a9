package engine

import (
	"log/slog"

	"github.com/lixenwraith/base-ten/model"
)

// Engine owns the model, the interaction mode and the transition lock
// All methods run on one goroutine; the lock serialises transitions, not threads
type Engine struct {
	state   *model.State
	pending *model.State
	mode    Mode
	locked  bool
	active  Request
	current model.Transition

	chor   *Choreographer
	clock  TimeProvider
	router *EventRouter
	log    *slog.Logger
}

// New creates an engine representing zero in compose mode
// A nil clock uses the monotonic clock; a nil logger discards
func New(locator Locator, clock TimeProvider, timing Timing, logger *slog.Logger) *Engine {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		state:  model.NewState(),
		mode:   ModeCompose,
		chor:   NewChoreographer(locator, timing),
		clock:  clock,
		router: NewEventRouter(),
		log:    logger.With("component", "engine"),
	}
	e.state.Build(0)
	return e
}

// Register subscribes a handler to engine events
func (e *Engine) Register(handler EventHandler) {
	e.router.Register(handler)
}

// Subscribe registers fn for every event type
func (e *Engine) Subscribe(fn func(Event)) {
	e.router.Register(HandlerFunc{Types: allEventTypes, Fn: fn})
}

// ===== READ API =====

// OnesFrames returns the committed ones side packed into frames
func (e *Engine) OnesFrames() [][]model.Unit { return e.state.OnesFrames() }

// TensFrames returns the committed tens side packed into frames
func (e *Engine) TensFrames() [][]model.TenStick { return e.state.TensFrames() }

// Hundreds returns the committed hundred-blocks
func (e *Engine) Hundreds() []model.HundredBlock { return e.state.Hundreds() }

// Summary returns the committed readout
func (e *Engine) Summary() model.Summary { return e.state.Summary() }

// Value returns the committed number
func (e *Engine) Value() int { return e.state.Value() }

// State returns a copy of the committed model
func (e *Engine) State() *model.State { return e.state.Clone() }

// Mode returns the interaction mode
func (e *Engine) Mode() Mode { return e.mode }

// Locked reports whether a transition is in flight
func (e *Engine) Locked() bool { return e.locked }

// Phase returns the choreographer phase
func (e *Engine) Phase() Phase { return e.chor.Phase() }

// Scene returns what to draw now
func (e *Engine) Scene() Scene {
	if !e.locked {
		return Scene{State: e.state, Phase: PhaseIdle}
	}
	sc := e.chor.Scene(e.clock.Now())
	if sc.State == nil {
		sc.State = e.state
	}
	return sc
}

// ===== CONTROLS =====

// SetMode switches interaction mode; dropped while locked
func (e *Engine) SetMode(m Mode) bool {
	if e.locked {
		e.reject(Request{}, RejectLocked)
		return false
	}
	if m == e.mode {
		return true
	}
	e.mode = m
	e.log.Debug("mode changed", "mode", m.String())
	e.publish(Event{Type: EventModeChanged, Mode: m, Summary: e.state.Summary()})
	return true
}

// ToggleMode flips between compose and decompose
func (e *Engine) ToggleMode() bool {
	return e.SetMode(e.mode.Toggle())
}

// BuildNumber rebuilds the structure for n, clamped to [0, 999], without animation
func (e *Engine) BuildNumber(n int) bool {
	if e.locked {
		e.reject(Request{}, RejectLocked)
		return false
	}
	res := e.state.Build(n)
	e.log.Info("built", "value", res.Value, "created", len(res.Created), "destroyed", len(res.Destroyed))
	e.publish(Event{Type: EventBuilt, Mode: e.mode, Summary: e.state.Summary()})
	return true
}

// BuildInput parses user text (non-numeric counts as 0) and builds it
func (e *Engine) BuildInput(text string) bool {
	return e.BuildNumber(model.ParseValue(text))
}

// ===== TRANSITIONS =====

// ComposeOnes bundles ones-frame index into a ten-stick
func (e *Engine) ComposeOnes(index int) bool { return e.Request(ComposeOnesFrame(index)) }

// ComposeTens bundles tens-frame index into a hundred-block
func (e *Engine) ComposeTens(index int) bool { return e.Request(ComposeTensFrame(index)) }

// DecomposeTen breaks a loose ten-stick into units
func (e *Engine) DecomposeTen(id model.StickID) bool { return e.Request(DecomposeStick(id)) }

// DecomposeHundred breaks a hundred-block into ten-sticks
func (e *Engine) DecomposeHundred(id model.HundredID) bool { return e.Request(DecomposeBlock(id)) }

// Click fires the first target valid in the current mode
// targets is the hit-test stack for one screen point, innermost first
func (e *Engine) Click(targets ...Request) bool {
	if e.locked {
		e.reject(Request{}, RejectLocked)
		return false
	}
	for _, t := range targets {
		if t.Mode() == e.mode {
			return e.Request(t)
		}
	}
	if len(targets) > 0 {
		e.reject(targets[0], RejectMode)
	}
	return false
}

// Request runs one transition: gate, mutate a copy, then animate the delta
func (e *Engine) Request(r Request) bool {
	if e.locked {
		e.reject(r, RejectLocked)
		return false
	}
	if r.Mode() != e.mode {
		e.reject(r, RejectMode)
		return false
	}

	next := e.state.Clone()
	change, ok := r.apply(next)
	if !ok {
		e.reject(r, RejectPrecondition)
		return false
	}

	e.locked = true
	e.active = r
	e.current = change.Transition
	e.pending = next
	e.log.Debug("transition started", "request", r.String(), "moved", len(change.Moved))
	e.publish(Event{Type: EventTransitionStarted, Transition: change.Transition, Request: r, Mode: e.mode, Summary: e.state.Summary()})

	e.handle(e.chor.Begin(e.state, next, change, e.clock.Now()))
	return true
}

// Tick advances the running transition to the clock's now
func (e *Engine) Tick() {
	if !e.locked {
		return
	}
	e.handle(e.chor.Advance(e.clock.Now()))
}

func (e *Engine) handle(step Step) {
	tr := e.current
	if step.Committed {
		e.state = e.pending
		e.pending = nil
		e.publish(Event{Type: EventTransitionCommitted, Transition: tr, Request: e.active, Mode: e.mode, Summary: e.state.Summary()})
	}
	if step.Finished {
		r := e.active
		e.locked = false
		e.active = Request{}
		e.current = model.TransitionNone
		e.log.Debug("transition completed", "request", r.String(), "summary", e.state.Summary().String())
		e.publish(Event{Type: EventTransitionCompleted, Transition: tr, Request: r, Mode: e.mode, Summary: e.state.Summary()})
	}
}

func (e *Engine) reject(r Request, reason RejectReason) {
	e.log.Debug("request dropped", "request", r.String(), "reason", reason.String())
	e.publish(Event{Type: EventRejected, Request: r, Reason: reason, Mode: e.mode, Summary: e.state.Summary()})
}

func (e *Engine) publish(ev Event) {
	e.router.Dispatch(ev)
}
