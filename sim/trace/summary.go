package trace

// TraceSummary aggregates statistics from an EventLog.
type TraceSummary struct {
	TotalEvents     int
	ArrivalCount    int
	SelectionCount  int
	FinishCount     int
	IdleTicks       int
	DispatchesByPID map[string]int // process name → number of selected events
}

// Summarize computes aggregate statistics from an EventLog.
// Safe for nil or empty logs (returns zero-value fields).
func Summarize(l *EventLog) *TraceSummary {
	summary := &TraceSummary{
		DispatchesByPID: make(map[string]int),
	}
	if l == nil {
		return summary
	}

	summary.TotalEvents = l.Len()
	for _, e := range l.Events() {
		switch e.Kind {
		case EventArrived:
			summary.ArrivalCount++
		case EventSelected:
			summary.SelectionCount++
			summary.DispatchesByPID[e.Process]++
		case EventFinished:
			summary.FinishCount++
		case EventIdle:
			summary.IdleTicks++
		}
	}

	return summary
}
