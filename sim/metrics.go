// Tracks run-wide and per-process scheduling metrics.

package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/obseryx/ChatGPT-Scheduler/sim/trace"
)

// ProcessMetrics carries the per-process numbers the final report prints.
// Wait, Turnaround and Response are meaningful only when Finished is true.
type ProcessMetrics struct {
	Name       string
	Finished   bool
	Wait       int64
	Turnaround int64
	Response   int64
}

// Metrics aggregates statistics about a completed run.
// The report prints per-process lines; this aggregate exists for operators
// comparing algorithms across runs via the log.
type Metrics struct {
	TotalProcesses  int
	FinishedCount   int
	UnfinishedCount int

	TotalWait       int64
	TotalTurnaround int64
	TotalResponse   int64

	MeanWait       float64
	MeanTurnaround float64
	MeanResponse   float64
	P95Wait        float64

	BusyTicks   int64
	IdleTicks   int64
	Utilization float64 // busy ticks over the horizon, [0, 1]
}

// CollectProcessMetrics computes per-process metrics in the scenario's input
// order, looking each record up by name on the finished simulator. A process
// the run never completed yields a record with Finished false.
func CollectProcessMetrics(sc *Scenario, s *Simulator) []ProcessMetrics {
	out := make([]ProcessMetrics, 0, len(sc.Processes))
	for _, spec := range sc.Processes {
		p := s.Lookup(spec.Name)
		if p == nil || !p.Finished() {
			out = append(out, ProcessMetrics{Name: spec.Name})
			continue
		}
		out = append(out, ProcessMetrics{
			Name:       p.Name,
			Finished:   true,
			Wait:       p.WaitTime(),
			Turnaround: p.Turnaround(),
			Response:   p.ResponseTime(),
		})
	}
	return out
}

// NewMetrics aggregates per-process metrics. Totals, means and percentiles
// cover finished processes only.
func NewMetrics(procs []ProcessMetrics) *Metrics {
	m := &Metrics{TotalProcesses: len(procs)}
	waits := make([]int64, 0, len(procs))
	turnarounds := make([]int64, 0, len(procs))
	responses := make([]int64, 0, len(procs))
	for _, pm := range procs {
		if !pm.Finished {
			m.UnfinishedCount++
			continue
		}
		m.FinishedCount++
		m.TotalWait += pm.Wait
		m.TotalTurnaround += pm.Turnaround
		m.TotalResponse += pm.Response
		waits = append(waits, pm.Wait)
		turnarounds = append(turnarounds, pm.Turnaround)
		responses = append(responses, pm.Response)
	}
	m.MeanWait = CalculateMean(waits)
	m.MeanTurnaround = CalculateMean(turnarounds)
	m.MeanResponse = CalculateMean(responses)
	m.P95Wait = CalculatePercentile(waits, 95)
	return m
}

// AttachTrace fills the tick-accounting fields from a trace summary over a
// horizon of runFor ticks.
func (m *Metrics) AttachTrace(ts *trace.TraceSummary, runFor int64) {
	if ts == nil {
		return
	}
	m.IdleTicks = int64(ts.IdleTicks)
	m.BusyTicks = runFor - m.IdleTicks
	if runFor > 0 {
		m.Utilization = float64(m.BusyTicks) / float64(runFor)
	}
}

// LogSummary emits the aggregate metrics through the structured logger.
func (m *Metrics) LogSummary() {
	logrus.Infof("processes: %d finished, %d unfinished", m.FinishedCount, m.UnfinishedCount)
	logrus.Infof("cpu: %d busy ticks, %d idle ticks, utilization %.2f",
		m.BusyTicks, m.IdleTicks, m.Utilization)
	if m.FinishedCount == 0 {
		return
	}
	logrus.Infof("mean wait %.2f, mean turnaround %.2f, mean response %.2f, p95 wait %.2f",
		m.MeanWait, m.MeanTurnaround, m.MeanResponse, m.P95Wait)
}
