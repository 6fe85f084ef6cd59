package sim

import (
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// srtfPolicy is preemptive shortest-job-first, i.e. shortest remaining time
// first. The ready set is a red-black tree ordered by remaining time with
// arrival tick and name as tie-breakers, so the eligible minimum comes out
// in O(log n) per tick. The running process stays out of the tree; each tick
// it is compared against the tree minimum and preempted when the minimum
// beats it.
type srtfPolicy struct {
	tree *redblacktree.Tree // srtfKey -> *Process, running process excluded
	seq  int64              // admission counter, keeps duplicate keys distinct
}

func newSRTFPolicy() *srtfPolicy {
	return &srtfPolicy{tree: redblacktree.NewWith(compareSRTFKeys)}
}

func (s *srtfPolicy) Admit(p *Process) {
	if p.Remaining <= 0 {
		return
	}
	s.seq++
	s.tree.Put(srtfKey{remaining: p.Remaining, arrival: p.Arrival, name: p.Name, seq: s.seq}, p)
}

func (s *srtfPolicy) Select(current *Process, _ int64) (*Process, bool) {
	node := s.tree.Left()
	if node == nil {
		if current != nil {
			return current, false
		}
		return nil, false
	}
	if current != nil && !beats(node.Key.(srtfKey), current) {
		return current, false
	}
	next := node.Value.(*Process)
	s.tree.Remove(node.Key)
	if current != nil {
		s.Admit(current)
	}
	return next, true
}

func (s *srtfPolicy) Ran(_ *Process) {}

// beats reports whether the tree minimum should take the CPU from cur.
// A tie on the full (remaining, arrival, name) key leaves cur running.
func beats(k srtfKey, cur *Process) bool {
	switch {
	case k.remaining != cur.Remaining:
		return k.remaining < cur.Remaining
	case k.arrival != cur.Arrival:
		return k.arrival < cur.Arrival
	default:
		return k.name < cur.Name
	}
}

// srtfKey orders the ready tree.
type srtfKey struct {
	remaining int64
	arrival   int64
	name      string
	seq       int64
}

func compareSRTFKeys(a, b any) int {
	ka, kb := a.(srtfKey), b.(srtfKey)
	switch {
	case ka.remaining < kb.remaining:
		return -1
	case ka.remaining > kb.remaining:
		return 1
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.name != kb.name:
		return strings.Compare(ka.name, kb.name)
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}
