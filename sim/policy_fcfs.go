package sim

// fcfsPolicy runs each process to completion in arrival order. Arrivals
// never preempt; the CPU changes hands only when it is free.
type fcfsPolicy struct {
	ready *ReadyQueue
}

func newFCFSPolicy() *fcfsPolicy {
	return &fcfsPolicy{ready: NewReadyQueue()}
}

func (f *fcfsPolicy) Admit(p *Process) {
	f.ready.Enqueue(p)
}

func (f *fcfsPolicy) Select(current *Process, _ int64) (*Process, bool) {
	if current != nil {
		return current, false
	}
	next, ok := f.ready.Dequeue()
	if !ok {
		return nil, false
	}
	return next, true
}

func (f *fcfsPolicy) Ran(_ *Process) {}
