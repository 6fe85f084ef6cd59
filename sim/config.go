package sim

import "fmt"

// Algorithm identifies a scheduling discipline.
type Algorithm string

const (
	// AlgorithmFCFS runs each process to completion in arrival order.
	AlgorithmFCFS Algorithm = "fcfs"
	// AlgorithmFIFO is an accepted alias for AlgorithmFCFS.
	AlgorithmFIFO Algorithm = "fifo"
	// AlgorithmSJF is preemptive shortest-job-first: at every tick the
	// process with the least remaining time owns the CPU.
	AlgorithmSJF Algorithm = "sjf"
	// AlgorithmRR time-slices the ready queue with a fixed quantum.
	AlgorithmRR Algorithm = "rr"
)

// ValidAlgorithms maps accepted algorithm names.
var ValidAlgorithms = map[Algorithm]bool{
	AlgorithmFCFS: true,
	AlgorithmFIFO: true,
	AlgorithmSJF:  true,
	AlgorithmRR:   true,
}

// IsValidAlgorithm returns true if the given name is a recognized algorithm.
func IsValidAlgorithm(name string) bool {
	return ValidAlgorithms[Algorithm(name)]
}

// DisplayName returns the report banner line for the algorithm.
func (a Algorithm) DisplayName() string {
	switch a {
	case AlgorithmFCFS, AlgorithmFIFO:
		return "Using First In First Out"
	case AlgorithmSJF:
		return "Using preemptive Shortest Job First"
	case AlgorithmRR:
		return "Using Round Robin"
	default:
		return fmt.Sprintf("Using %s", string(a))
	}
}

// ProcessSpec describes one process of a scenario: its name, the tick it
// arrives, and the total service time it needs.
type ProcessSpec struct {
	Name    string `yaml:"name"`
	Arrival int64  `yaml:"arrival"`
	Burst   int64  `yaml:"burst"`
}

// Scenario is a complete simulation input: the horizon, the algorithm, the
// time quantum (round-robin only), and the process list in input order.
//
// ProcessCount is the declared count from the input; the engine trusts the
// actual Processes slice, and loaders warn when the two disagree. Quantum is
// a pointer so an absent quantum is distinguishable from quantum 0.
type Scenario struct {
	ProcessCount int           `yaml:"processcount"`
	RunFor       int64         `yaml:"runfor"`
	Use          Algorithm     `yaml:"use"`
	Quantum      *int64        `yaml:"quantum,omitempty"`
	Processes    []ProcessSpec `yaml:"processes"`
}

// QuantumValue returns the quantum, or 0 when none was given.
func (s *Scenario) QuantumValue() int64 {
	if s.Quantum == nil {
		return 0
	}
	return *s.Quantum
}

// Validate checks the scenario against the input contract. Error messages
// and their precedence follow the contract: a round-robin scenario without a
// quantum is reported before an unrecognized algorithm name.
func (s *Scenario) Validate() error {
	if s.Use == AlgorithmRR && s.Quantum == nil {
		return fmt.Errorf("Missing quantum parameter when use is 'rr'")
	}
	if !IsValidAlgorithm(string(s.Use)) {
		return fmt.Errorf("Unknown scheduling algorithm '%s'", s.Use)
	}
	return nil
}
