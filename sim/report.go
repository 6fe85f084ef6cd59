package sim

import (
	"bufio"
	"fmt"
	"io"

	"github.com/obseryx/ChatGPT-Scheduler/sim/trace"
)

// BuildReport assembles the full output of a completed run: the header, the
// event lines, the end-of-run marker, and the per-process metric lines in
// input order. Lines carry no trailing newline; WriteLines adds them.
//
// The header count reflects the processes actually listed in the scenario,
// not the declared processcount.
func BuildReport(sc *Scenario, log *trace.EventLog, metrics []ProcessMetrics) []string {
	lines := make([]string, 0, log.Len()+len(metrics)+7)
	lines = append(lines, fmt.Sprintf("%d processes", len(sc.Processes)))
	lines = append(lines, sc.Use.DisplayName())
	if sc.Use == AlgorithmRR {
		lines = append(lines, fmt.Sprintf("Quantum %d", sc.QuantumValue()))
	}
	lines = append(lines, "")
	lines = append(lines, log.Lines()...)
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Finished at time %d", sc.RunFor))
	lines = append(lines, "")
	for _, m := range metrics {
		if !m.Finished {
			lines = append(lines, fmt.Sprintf("%s did not finish", m.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s wait %d turnaround %d response %d",
			m.Name, m.Wait, m.Turnaround, m.Response))
	}
	return lines
}

// WriteLines writes report lines to w, one per line.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("writing report line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return nil
}

// RunReport validates a scenario, runs it to the horizon, and assembles the
// report plus the aggregate metrics. This is the one-call entry point the
// CLI and most tests use.
func RunReport(sc *Scenario) ([]string, *Metrics, error) {
	if err := sc.Validate(); err != nil {
		return nil, nil, err
	}
	s := NewSimulator(sc)
	log := s.Run()
	pm := CollectProcessMetrics(sc, s)
	m := NewMetrics(pm)
	m.AttachTrace(trace.Summarize(log), sc.RunFor)
	return BuildReport(sc, log, pm), m, nil
}
