package sim

// rrPolicy time-slices the ready queue with a fixed quantum. A process that
// exhausts its slice goes to the tail of the queue; when the queue is
// otherwise empty it is re-dispatched immediately, with a fresh selection
// event either way. A finish hands the successor a full slice.
type rrPolicy struct {
	ready   *ReadyQueue
	quantum int64
	used    int64 // ticks consumed from the running process's slice
}

func newRRPolicy(quantum int64) *rrPolicy {
	return &rrPolicy{ready: NewReadyQueue(), quantum: quantum}
}

func (r *rrPolicy) Admit(p *Process) {
	r.ready.Enqueue(p)
}

func (r *rrPolicy) Select(current *Process, _ int64) (*Process, bool) {
	if current != nil {
		if r.used < r.quantum {
			return current, false
		}
		r.ready.Enqueue(current)
	}
	next, ok := r.ready.Dequeue()
	if !ok {
		return nil, false
	}
	r.used = 0
	return next, true
}

func (r *rrPolicy) Ran(_ *Process) {
	r.used++
}
