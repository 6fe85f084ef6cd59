// Implements the ReadyQueue, which holds runnable processes in FIFO order.
// Processes are enqueued on arrival.

package sim

import (
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// ReadyQueue is the FIFO of runnable processes. First-come first-served
// consumes it strictly in arrival order; round-robin additionally requeues a
// displaced process at the tail on quantum expiry.
type ReadyQueue struct {
	queue *linkedlistqueue.Queue
}

// NewReadyQueue creates an empty ready queue.
func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{queue: linkedlistqueue.New()}
}

// Enqueue adds a process to the back of the queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: p must not be nil")
	}
	rq.queue.Enqueue(p)
}

// Dequeue removes and returns the process at the front of the queue.
// The second return is false when the queue is empty.
func (rq *ReadyQueue) Dequeue() (*Process, bool) {
	v, ok := rq.queue.Dequeue()
	if !ok {
		return nil, false
	}
	return v.(*Process), true
}

// Peek returns the front process without removing it, or nil when empty.
func (rq *ReadyQueue) Peek() *Process {
	v, ok := rq.queue.Peek()
	if !ok {
		return nil
	}
	return v.(*Process)
}

// Len returns the number of queued processes.
func (rq *ReadyQueue) Len() int {
	return rq.queue.Size()
}

// Empty returns true when no process is queued.
func (rq *ReadyQueue) Empty() bool {
	return rq.queue.Empty()
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	values := rq.queue.Values()
	for i, v := range values {
		sb.WriteString(v.(*Process).Name)
		if i < len(values)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
