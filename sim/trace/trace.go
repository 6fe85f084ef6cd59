package trace

// EventLog collects scheduler events in emission order during a run.
// Append order is the report order; the log never reorders or dedupes.
type EventLog struct {
	events []Event
}

// NewEventLog creates an EventLog ready for recording.
func NewEventLog() *EventLog {
	return &EventLog{events: make([]Event, 0)}
}

// Append adds an event to the end of the log.
func (l *EventLog) Append(e Event) {
	l.events = append(l.events, e)
}

// Events returns the recorded events in append order.
// The returned slice is the log's backing storage; callers must not mutate it.
func (l *EventLog) Events() []Event {
	return l.events
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Lines renders every event into its report line, in append order.
func (l *EventLog) Lines() []string {
	lines := make([]string, 0, len(l.events))
	for _, e := range l.events {
		lines = append(lines, e.Line())
	}
	return lines
}
