package sim

import "fmt"

// SchedulingPolicy decides which process owns the CPU at each tick.
// Implementations keep their own ready structures; the simulator feeds them
// arrivals through Admit and consults Select once per tick.
type SchedulingPolicy interface {
	// Admit makes a newly arrived process eligible for selection.
	Admit(p *Process)

	// Select returns the process that should run for the tick starting at
	// now. current is the process that ran the previous tick, or nil when
	// the CPU is free. dispatched reports a fresh dispatch that must emit
	// a selection event; round-robin can re-dispatch the running process
	// with a reset quantum, so pointer identity with current is not enough
	// to tell a handover from a continuation.
	Select(current *Process, now int64) (next *Process, dispatched bool)

	// Ran tells the policy that p consumed one tick of CPU.
	Ran(p *Process)
}

// NewPolicy creates the SchedulingPolicy for the given algorithm.
// quantum is used only by round-robin. Panics on unrecognized names;
// callers validate scenarios before building policies.
func NewPolicy(algorithm Algorithm, quantum int64) SchedulingPolicy {
	if !IsValidAlgorithm(string(algorithm)) {
		panic(fmt.Sprintf("unknown algorithm %q", algorithm))
	}
	switch algorithm {
	case AlgorithmFCFS, AlgorithmFIFO:
		return newFCFSPolicy()
	case AlgorithmSJF:
		return newSRTFPolicy()
	case AlgorithmRR:
		return newRRPolicy(quantum)
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", algorithm))
	}
}
