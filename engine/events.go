package engine

import "github.com/lixenwraith/base-ten/model"

// EventType classifies engine notifications
type EventType int

const (
	// EventBuilt follows every accepted BuildNumber
	EventBuilt EventType = iota

	// EventModeChanged follows a successful SetMode
	EventModeChanged

	// EventTransitionStarted fires once the lock is taken and fly (or flip) began
	EventTransitionStarted

	// EventTransitionCommitted fires when the post-mutation structure takes over
	EventTransitionCommitted

	// EventTransitionCompleted fires when flip settled and the lock was released
	EventTransitionCompleted

	// EventRejected reports a dropped request; the reason is in RejectReason
	EventRejected
)

var allEventTypes = []EventType{
	EventBuilt,
	EventModeChanged,
	EventTransitionStarted,
	EventTransitionCommitted,
	EventTransitionCompleted,
	EventRejected,
}

func (t EventType) String() string {
	switch t {
	case EventBuilt:
		return "built"
	case EventModeChanged:
		return "mode-changed"
	case EventTransitionStarted:
		return "transition-started"
	case EventTransitionCommitted:
		return "transition-committed"
	case EventTransitionCompleted:
		return "transition-completed"
	case EventRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// RejectReason says why a request was dropped
type RejectReason uint8

const (
	RejectNone RejectReason = iota
	RejectLocked
	RejectMode
	RejectPrecondition
)

func (r RejectReason) String() string {
	switch r {
	case RejectLocked:
		return "locked"
	case RejectMode:
		return "mode"
	case RejectPrecondition:
		return "precondition"
	default:
		return "none"
	}
}

// Event is published synchronously to registered handlers
type Event struct {
	Type       EventType
	Transition model.Transition
	Request    Request
	Reason     RejectReason
	Mode       Mode
	Summary    model.Summary
}
