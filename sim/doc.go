// Package sim provides the discrete-time CPU scheduling engine.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - process.go: Process lifecycle (not arrived → ready → running → finished)
//   - policy.go: The SchedulingPolicy interface the algorithms implement
//   - simulator.go: The tick loop: arrivals, then selection, then execution
//
// # Architecture
//
// The sim package holds the engine and its policies; supporting concerns
// live in sub-packages:
//   - sim/scenario/: Input loading (text and YAML scenario forms)
//   - sim/trace/: Ordered event log and report line rendering
//
// A run flows Scenario → Simulator → trace.EventLog → report lines. The
// simulator owns process state and event emission; policies only decide who
// runs next, which keeps every algorithm's trace bit-for-bit reproducible.
//
// # Key Interfaces
//
// The one extension point is SchedulingPolicy: Admit makes an arrived
// process eligible, Select names the tick's runner, Ran accounts a consumed
// tick. First-come first-served and round-robin keep FIFO queues; shortest
// job first keeps a red-black tree keyed by remaining time.
package sim
