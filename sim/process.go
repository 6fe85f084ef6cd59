package sim

import "fmt"

// ProcessState tracks where a process is in its lifecycle.
type ProcessState string

const (
	// StateNotArrived means the process has not yet arrived.
	StateNotArrived ProcessState = "not_arrived"
	// StateReady means the process has arrived and is runnable.
	StateReady ProcessState = "ready"
	// StateRunning means the process currently owns the CPU.
	StateRunning ProcessState = "running"
	// StateFinished means the process has no remaining work.
	StateFinished ProcessState = "finished"
)

// Process is the engine's mutable per-process record. It is built from a
// ProcessSpec and carries the static inputs (Name, Arrival, Burst) plus the
// bookkeeping the run fills in (Remaining, StartTime, FinishTime).
type Process struct {
	Name    string
	Arrival int64
	Burst   int64

	Remaining  int64
	State      ProcessState
	Started    bool  // set once, at first dispatch
	StartTime  int64 // tick of first dispatch, valid only when Started
	FinishTime int64 // tick after the final executed unit, valid only when finished
}

// NewProcess builds a fresh Process from its spec with the full burst remaining.
func NewProcess(spec ProcessSpec) *Process {
	return &Process{
		Name:      spec.Name,
		Arrival:   spec.Arrival,
		Burst:     spec.Burst,
		Remaining: spec.Burst,
		State:     StateNotArrived,
	}
}

// Finished returns true once the process has completed all of its work.
func (p *Process) Finished() bool {
	return p.State == StateFinished
}

// Turnaround returns finish time minus arrival time.
// Meaningful only for finished processes.
func (p *Process) Turnaround() int64 {
	return p.FinishTime - p.Arrival
}

// WaitTime returns the ticks spent ready but not running, i.e. turnaround
// minus burst. Meaningful only for finished processes.
func (p *Process) WaitTime() int64 {
	return p.Turnaround() - p.Burst
}

// ResponseTime returns the ticks from arrival to first dispatch.
// Meaningful only once the process has started.
func (p *Process) ResponseTime() int64 {
	return p.StartTime - p.Arrival
}

func (p *Process) String() string {
	return fmt.Sprintf("%s(arrival=%d burst=%d remaining=%d state=%s)",
		p.Name, p.Arrival, p.Burst, p.Remaining, p.State)
}
