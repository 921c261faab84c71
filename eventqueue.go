package fortune2d

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// eventQueue is the sweep's priority queue, ordered by (y ascending, x ascending),
// backed by github.com/emirpasic/gods' red-black tree. The insertion sequence
// is folded into the key itself, so two events with identical (y, x) are still distinct
// keys ordered by arrival — giving the required insertion-order tie-break as a side
// effect of key uniqueness, and giving push/pop/remove all O(log n) instead of the
// linear scan a plain slice-based priority queue would need for targeted removal.
type eventQueue struct {
	tree    *rbt.Tree
	nextSeq uint64
}

// eventKey is the tree key: (y, x, seq) compared lexicographically in that order.
type eventKey struct {
	y, x float64
	seq  uint64
}

func eventKeyComparator(a, b interface{}) int {
	ka := a.(eventKey)
	kb := b.(eventKey)
	switch {
	case ka.y < kb.y:
		return -1
	case ka.y > kb.y:
		return 1
	case ka.x < kb.x:
		return -1
	case ka.x > kb.x:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// newEventQueue returns an empty event queue.
func newEventQueue() *eventQueue {
	return &eventQueue{tree: rbt.NewWith(eventKeyComparator)}
}

// isEmpty reports whether the queue has no pending events.
func (q *eventQueue) isEmpty() bool {
	return q.tree.Empty()
}

// push inserts ev into the queue and returns the key needed to remove it later (circle
// events need this so a superseded arc can cancel its own pending event).
func (q *eventQueue) push(ev *event) eventKey {
	ev.seq = q.nextSeq
	q.nextSeq++
	key := eventKey{y: ev.point.y, x: ev.point.x, seq: ev.seq}
	q.tree.Put(key, ev)
	return key
}

// popMin removes and returns the event with the smallest (y, x, seq) key.
func (q *eventQueue) popMin() *event {
	node := q.tree.Left()
	if node == nil {
		return nil
	}
	q.tree.Remove(node.Key)
	return node.Value.(*event)
}

// remove cancels the event previously returned by push with key.
func (q *eventQueue) remove(key eventKey) {
	q.tree.Remove(key)
}
