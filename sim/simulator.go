// sim/simulator.go
package sim

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/obseryx/ChatGPT-Scheduler/sim/trace"
)

// Simulator is the core object that holds simulation time, the process set,
// and the tick loop. Each tick runs three phases in order: arrivals become
// ready, the policy picks the tick's runner, and the runner consumes one
// tick of work (or the CPU idles). A run is single-threaded and
// deterministic: the same scenario always yields the same event trace.
type Simulator struct {
	Clock  int64
	RunFor int64

	algorithm Algorithm
	policy    SchedulingPolicy
	// processes holds every process sorted by arrival tick, input order
	// preserved for ties. pending indexes the next one yet to arrive.
	processes []*Process
	byName    map[string]*Process
	pending   int
	current   *Process
	log       *trace.EventLog
}

// NewSimulator builds a runnable simulator from a scenario. Process specs
// are copied into fresh records; a run never mutates the scenario. The
// scenario must have passed Validate, since NewPolicy panics on algorithms
// it does not know.
func NewSimulator(sc *Scenario) *Simulator {
	procs := make([]*Process, 0, len(sc.Processes))
	for _, spec := range sc.Processes {
		procs = append(procs, NewProcess(spec))
	}
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Arrival < procs[j].Arrival
	})
	byName := make(map[string]*Process, len(procs))
	for _, p := range procs {
		byName[p.Name] = p
	}
	return &Simulator{
		RunFor:    sc.RunFor,
		algorithm: sc.Use,
		policy:    NewPolicy(sc.Use, sc.QuantumValue()),
		processes: procs,
		byName:    byName,
		log:       trace.NewEventLog(),
	}
}

// Run executes the scenario horizon tick by tick and returns the event log.
func (sim *Simulator) Run() *trace.EventLog {
	logrus.Infof("[tick %07d] Starting %s run: %d processes, horizon %d",
		sim.Clock, sim.algorithm, len(sim.processes), sim.RunFor)
	for t := int64(0); t < sim.RunFor; t++ {
		sim.Clock = t
		sim.admitArrivals(t)
		sim.selectRunner(t)
		sim.executeTick(t)
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
	return sim.log
}

// admitArrivals moves every process whose arrival tick is now into the
// policy's ready structures, logging arrivals in input order.
func (sim *Simulator) admitArrivals(now int64) {
	for sim.pending < len(sim.processes) && sim.processes[sim.pending].Arrival == now {
		p := sim.processes[sim.pending]
		p.State = StateReady
		sim.policy.Admit(p)
		sim.log.Append(trace.Event{Tick: now, Kind: trace.EventArrived, Process: p.Name})
		logrus.Infof("[tick %07d] %s arrived (burst %d)", now, p.Name, p.Burst)
		sim.pending++
	}
}

// selectRunner asks the policy for this tick's runner. Every fresh dispatch
// logs a selection event, including a round-robin re-dispatch of the same
// process after its quantum expires.
func (sim *Simulator) selectRunner(now int64) {
	next, dispatched := sim.policy.Select(sim.current, now)
	if !dispatched {
		sim.current = next
		return
	}
	if sim.current != nil && sim.current != next && !sim.current.Finished() {
		sim.current.State = StateReady
	}
	if !next.Started {
		next.Started = true
		next.StartTime = now
	}
	next.State = StateRunning
	sim.current = next
	sim.log.Append(trace.Event{Tick: now, Kind: trace.EventSelected, Process: next.Name, Burst: next.Remaining})
	logrus.Infof("[tick %07d] %s selected (remaining %d)", now, next.Name, next.Remaining)
}

// executeTick burns one unit of the runner's work. A process whose work hits
// zero finishes at the next tick boundary, which is how the finish event gets
// a label one past its last executed tick. Without a runner the tick is idle.
func (sim *Simulator) executeTick(now int64) {
	if sim.current == nil {
		sim.log.Append(trace.Event{Tick: now, Kind: trace.EventIdle})
		logrus.Debugf("[tick %07d] Idle", now)
		return
	}
	sim.current.Remaining--
	sim.policy.Ran(sim.current)
	if sim.current.Remaining <= 0 {
		sim.current.FinishTime = now + 1
		sim.current.State = StateFinished
		sim.log.Append(trace.Event{Tick: now + 1, Kind: trace.EventFinished, Process: sim.current.Name})
		logrus.Infof("[tick %07d] %s finished", now+1, sim.current.Name)
		sim.current = nil
	}
}

// Trace returns the event log collected so far.
func (sim *Simulator) Trace() *trace.EventLog {
	return sim.log
}

// Processes returns the simulator's process records, sorted by arrival.
func (sim *Simulator) Processes() []*Process {
	return sim.processes
}

// Lookup returns the process record with the given name, or nil.
func (sim *Simulator) Lookup(name string) *Process {
	return sim.byName[name]
}
