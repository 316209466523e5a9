package engine

import (
	"fmt"
	"time"
)

// Phase is the choreographer's position in a transition
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseFly
	PhaseFlip
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFly:
		return "fly"
	case PhaseFlip:
		return "flip"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// phaseEdges lists legal moves; fly is optional, flip never is
var phaseEdges = map[Phase][]Phase{
	PhaseIdle: {PhaseFly, PhaseFlip},
	PhaseFly:  {PhaseFlip},
	PhaseFlip: {PhaseIdle},
}

// phaseMachine tracks the current phase and when it was entered
type phaseMachine struct {
	current Phase
	since   time.Time
}

// enter moves to next; an illegal edge is a programming error
func (m *phaseMachine) enter(next Phase, now time.Time) {
	for _, p := range phaseEdges[m.current] {
		if p == next {
			m.current = next
			m.since = now
			return
		}
	}
	panic(fmt.Sprintf("engine: illegal phase edge %s -> %s", m.current, next))
}

// elapsed returns time spent in the current phase
func (m *phaseMachine) elapsed(now time.Time) time.Duration {
	return now.Sub(m.since)
}
