// Package trace provides the ordered event trace a simulation run produces.
// This package has no dependencies on sim/: it stores pure data types and
// renders them into the report's event lines.
package trace

import "fmt"

// EventKind identifies the kind of a scheduler event.
type EventKind string

const (
	// EventArrived records a process becoming ready at its arrival tick.
	EventArrived EventKind = "arrived"
	// EventSelected records a process being dispatched onto the CPU.
	EventSelected EventKind = "selected"
	// EventFinished records a process completing its final unit of work.
	// The tick label is the tick *after* the last executed unit.
	EventFinished EventKind = "finished"
	// EventIdle records a tick in which no process occupied the CPU.
	EventIdle EventKind = "idle"
)

// Event captures a single scheduler event.
// Process is empty for idle events. Burst carries the remaining service
// time at dispatch and is meaningful only for EventSelected.
type Event struct {
	Tick    int64
	Kind    EventKind
	Process string
	Burst   int64
}

// Line renders the event in the report's event-line format. Tick and burst
// fields are right-justified in a minimum 3-character width, no zero padding.
func (e Event) Line() string {
	switch e.Kind {
	case EventArrived:
		return fmt.Sprintf("Time %3d : %s arrived", e.Tick, e.Process)
	case EventSelected:
		return fmt.Sprintf("Time %3d : %s selected (burst %3d)", e.Tick, e.Process, e.Burst)
	case EventFinished:
		return fmt.Sprintf("Time %3d : %s finished", e.Tick, e.Process)
	case EventIdle:
		return fmt.Sprintf("Time %3d : Idle", e.Tick)
	default:
		return fmt.Sprintf("Time %3d : %s %s", e.Tick, e.Process, e.Kind)
	}
}
