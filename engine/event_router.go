package engine

// EventHandler receives routed engine events
type EventHandler interface {
	// HandleEvent is called synchronously on the engine's goroutine
	HandleEvent(event Event)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function to an EventHandler for the listed types
type HandlerFunc struct {
	Types []EventType
	Fn    func(Event)
}

func (h HandlerFunc) HandleEvent(event Event) { h.Fn(event) }
func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// EventRouter fans events out to handlers in registration order
type EventRouter struct {
	handlers map[EventType][]EventHandler
}

// NewEventRouter creates an empty router
func NewEventRouter() *EventRouter {
	return &EventRouter{handlers: make(map[EventType][]EventHandler)}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch delivers one event
func (r *EventRouter) Dispatch(event Event) {
	for _, h := range r.handlers[event.Type] {
		h.HandleEvent(event)
	}
}

// HasHandlers reports whether any handler is registered for t
func (r *EventRouter) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}
