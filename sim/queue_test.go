package sim

import (
	"testing"
)

func TestReadyQueue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with processes [A, B, C]
	rq := NewReadyQueue()
	for _, name := range []string{"A", "B", "C"} {
		rq.Enqueue(NewProcess(ProcessSpec{Name: name, Burst: 1}))
	}

	// WHEN all processes are dequeued
	got := make([]string, 0, 3)
	for !rq.Empty() {
		p, ok := rq.Dequeue()
		if !ok {
			t.Fatal("Dequeue reported empty on a non-empty queue")
		}
		got = append(got, p.Name)
	}

	// THEN they come out in enqueue order
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestReadyQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with processes [A, B]
	rq := NewReadyQueue()
	pA := NewProcess(ProcessSpec{Name: "A", Burst: 1})
	rq.Enqueue(pA)
	rq.Enqueue(NewProcess(ProcessSpec{Name: "B", Burst: 1}))

	// WHEN Peek() is called
	got := rq.Peek()

	// THEN it returns the front element without removing it
	if got != pA {
		t.Errorf("Peek: got %v, want A", got)
	}
	if rq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", rq.Len())
	}
}

func TestReadyQueue_Empty_Behavior(t *testing.T) {
	// GIVEN an empty queue
	rq := NewReadyQueue()

	// THEN Peek returns nil and Dequeue reports not-ok
	if got := rq.Peek(); got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
	if p, ok := rq.Dequeue(); ok || p != nil {
		t.Errorf("Dequeue on empty queue: got (%v, %v), want (nil, false)", p, ok)
	}
	if !rq.Empty() || rq.Len() != 0 {
		t.Errorf("empty queue reports Len=%d Empty=%v", rq.Len(), rq.Empty())
	}
}

func TestReadyQueue_RequeueGoesToTail(t *testing.T) {
	// GIVEN a queue with [A, B] where A is dequeued and requeued
	rq := NewReadyQueue()
	pA := NewProcess(ProcessSpec{Name: "A", Burst: 2})
	pB := NewProcess(ProcessSpec{Name: "B", Burst: 2})
	rq.Enqueue(pA)
	rq.Enqueue(pB)

	front, _ := rq.Dequeue()
	rq.Enqueue(front)

	// THEN the order is [B, A]
	first, _ := rq.Dequeue()
	second, _ := rq.Dequeue()
	if first != pB || second != pA {
		t.Errorf("requeue order: got [%s %s], want [B A]", first.Name, second.Name)
	}
}

func TestReadyQueue_String(t *testing.T) {
	rq := NewReadyQueue()
	if got := rq.String(); got != "[]" {
		t.Errorf("empty String: got %q, want %q", got, "[]")
	}
	rq.Enqueue(NewProcess(ProcessSpec{Name: "P1", Burst: 1}))
	rq.Enqueue(NewProcess(ProcessSpec{Name: "P2", Burst: 1}))
	if got := rq.String(); got != "[P1 P2]" {
		t.Errorf("String: got %q, want %q", got, "[P1 P2]")
	}
}

func TestReadyQueue_EnqueueNil_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Enqueue(nil): expected panic, got nil")
		}
	}()
	NewReadyQueue().Enqueue(nil)
}
