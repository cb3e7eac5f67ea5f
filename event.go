package sdm

// EventCallback is invoked once when an Event fires. It receives the
// virtual time at which the event executes, and may re-schedule follow-up
// events or processes through the Scheduler.
type EventCallback func(now float32)

// Event is a one-shot action scheduled to run at a specific virtual time.
// Unlike a Process, an Event has no duration: it executes its callback and
// is done.
type Event struct {
	name string
	id   EventID
	exec EventCallback
}

// NewEvent creates a named Event with the given callback. A nil callback
// is valid and executes as a no-op, useful for marker events.
func NewEvent(name string, exec EventCallback) *Event {
	return &Event{name: name, id: nextEventID(), exec: exec}
}

// ID returns the event's stable identifier.
func (e *Event) ID() EventID { return e.id }

// Name returns the event's human-readable name.
func (e *Event) Name() string { return e.name }

// Execute runs the event's callback exactly once, if set.
func (e *Event) Execute(now float32) {
	if e.exec != nil {
		e.exec(now)
	}
}
