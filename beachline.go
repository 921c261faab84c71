package fortune2d

import (
	"math"

	"github.com/nnikolov/fortune2d/numeric"
)

// arc is one parabolic arc of the beachline: a node of the hand-written red-black tree
// below and, via prev/next, a node of the doubly-linked list that gives O(1) access to
// beachline neighbours without re-walking the tree.
//
// The beachline's tree is intentionally hand-rolled CLRS rather than built on top of
// github.com/emirpasic/gods' red-black tree (used elsewhere in this package for the
// event queue): an arc's ordering key is not a static value but the x-bounds it
// currently occupies on the sweep line, recomputed from its neighbours' foci on every
// comparison, which a library keyed on a single comparable value cannot express.
type arc struct {
	isBlack             bool
	left, right, parent *arc

	focus Point
	prev, next *arc

	// cell is the Voronoi cell this arc's site owns; leftHalfEdge/rightHalfEdge are
	// the two half-edges currently bounding that cell on either side of this arc.
	cell                         *Cell
	leftHalfEdge, rightHalfEdge  *HalfEdge

	// pendingCircleKey is set while this arc has a scheduled circle event, so that a
	// later structural change can cancel it via eventQueue.remove.
	pendingCircleKey eventKey
	hasPendingCircle bool
}

// bounds returns the (left, right) x-bounds this arc currently occupies on the sweep
// line sitting at directrixY, derived from the breakpoints with its neighbours.
func (a *arc) bounds(directrixY float64) (left, right float64) {
	left = math.Inf(-1)
	right = math.Inf(1)

	p := parabola{focus: a.focus, directrixY: directrixY}

	if a.prev != nil {
		lp := parabola{focus: a.prev.focus, directrixY: directrixY}
		if x, ok := lp.intersectionX(p); ok {
			left = x
		}
	}
	if a.next != nil {
		rp := parabola{focus: a.next.focus, directrixY: directrixY}
		if x, ok := p.intersectionX(rp); ok {
			right = x
		}
	}
	return left, right
}

// beachline is the ordered sequence of arcs forming the sweep-line frontier, stored as
// a red-black tree (for O(log n) locate-by-x) threaded with a doubly-linked list (for
// O(1) neighbour access).
type beachline struct {
	sweepY   float64
	sentinel *arc
	root     *arc
	epsilon  float64
}

func newBeachline(epsilon float64) *beachline {
	sentinel := &arc{isBlack: true}
	return &beachline{sentinel: sentinel, root: sentinel, epsilon: epsilon}
}

func (bl *beachline) isEmpty() bool {
	return bl.root == bl.sentinel
}

func (bl *beachline) updateSweeplineY(y float64) {
	bl.sweepY = y
}

func (bl *beachline) minimum() *arc {
	if bl.root == bl.sentinel {
		return nil
	}
	x := bl.root
	for x.left != bl.sentinel {
		x = x.left
	}
	return x
}

func (bl *beachline) maximum() *arc {
	if bl.root == bl.sentinel {
		return nil
	}
	x := bl.root
	for x.right != bl.sentinel {
		x = x.right
	}
	return x
}

func (bl *beachline) transplant(u, v *arc) {
	switch {
	case u.parent == bl.sentinel:
		bl.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (bl *beachline) leftRotate(x *arc) {
	y := x.right
	x.right = y.left
	if y.left != bl.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == bl.sentinel:
		bl.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (bl *beachline) rightRotate(x *arc) {
	y := x.left
	x.left = y.right
	if y.right != bl.sentinel {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == bl.sentinel:
		bl.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

func (bl *beachline) insertFixup(z *arc) {
	for !z.parent.isBlack {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if !y.isBlack {
				z.parent.isBlack = true
				y.isBlack = true
				z.parent.parent.isBlack = false
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					bl.leftRotate(z)
				}
				z.parent.isBlack = true
				z.parent.parent.isBlack = false
				bl.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if !y.isBlack {
				z.parent.isBlack = true
				y.isBlack = true
				z.parent.parent.isBlack = false
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					bl.rightRotate(z)
				}
				z.parent.isBlack = true
				z.parent.parent.isBlack = false
				bl.leftRotate(z.parent.parent)
			}
		}
	}
	bl.root.isBlack = true
}

// deleteFixup follows the clean CLRS presentation of RB-DELETE-FIXUP.
func (bl *beachline) deleteFixup(x *arc) {
	for x != bl.root && x.isBlack {
		if x == x.parent.left {
			w := x.parent.right
			if !w.isBlack {
				w.isBlack = true
				x.parent.isBlack = false
				bl.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.isBlack && w.right.isBlack {
				w.isBlack = false
				x = x.parent
			} else {
				if w.right.isBlack {
					w.left.isBlack = true
					w.isBlack = false
					bl.rightRotate(w)
					w = x.parent.right
				}
				w.isBlack = x.parent.isBlack
				x.parent.isBlack = true
				w.right.isBlack = true
				bl.leftRotate(x.parent)
				x = bl.root
			}
		} else {
			w := x.parent.left
			if !w.isBlack {
				w.isBlack = true
				x.parent.isBlack = false
				bl.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.isBlack && w.left.isBlack {
				w.isBlack = false
				x = x.parent
			} else {
				if w.left.isBlack {
					w.right.isBlack = true
					w.isBlack = false
					bl.leftRotate(w)
					w = x.parent.left
				}
				w.isBlack = x.parent.isBlack
				x.parent.isBlack = true
				w.left.isBlack = true
				bl.rightRotate(x.parent)
				x = bl.root
			}
		}
	}
	x.isBlack = true
}

func (bl *beachline) deleteNode(z *arc) {
	y := z
	yOriginalColor := y.isBlack
	var x *arc

	switch {
	case z.left == bl.sentinel:
		x = z.right
		bl.transplant(z, z.right)
	case z.right == bl.sentinel:
		x = z.left
		bl.transplant(z, z.left)
	default:
		y = z.right
		for y.left != bl.sentinel {
			y = y.left
		}
		yOriginalColor = y.isBlack
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			bl.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		bl.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.isBlack = z.isBlack
	}

	if yOriginalColor {
		bl.deleteFixup(x)
	}
}

func (bl *beachline) addAsLeftChild(x, y *arc) {
	y.left = x
	x.parent = y
	x.left = bl.sentinel
	x.right = bl.sentinel
	x.isBlack = false
	bl.insertFixup(x)
}

func (bl *beachline) addAsRightChild(x, y *arc) {
	y.right = x
	x.parent = y
	x.left = bl.sentinel
	x.right = bl.sentinel
	x.isBlack = false
	bl.insertFixup(x)
}

// insertRootArc inserts the very first arc into an empty beachline.
func (bl *beachline) insertRootArc(focus Point) *arc {
	root := &arc{focus: focus, left: bl.sentinel, right: bl.sentinel, parent: bl.sentinel, isBlack: true}
	bl.root = root
	return root
}

// insertSuccessor splices s into the beachline's linked-list order directly after p,
// and into the tree at the appropriate leaf position.
func (bl *beachline) insertSuccessor(p, s *arc) {
	s.prev = p
	s.next = p.next
	p.next = s
	if s.next != nil {
		s.next.prev = s
	}

	if p.right == bl.sentinel {
		bl.addAsRightChild(s, p)
	} else {
		r := p.right
		for r.left != bl.sentinel {
			r = r.left
		}
		bl.addAsLeftChild(s, r)
	}
}

// insertArcForPoint inserts a new arc for site p below the current beachline, handling
// the edge case where p lands exactly on an existing breakpoint. isEdgeCase reports
// whether that happened; when false, the arc that previously occupied p's x position
// was split into three (left copy, new arc, right copy).
func (bl *beachline) insertArcForPoint(p Point) (newArc *arc, isEdgeCase bool) {
	mid := &arc{focus: p}
	x := bl.root

	for {
		left, right := x.bounds(bl.sweepY)

		switch {
		case p.x < left:
			x = x.left
		case p.x > right:
			x = x.right
		case numeric.FloatEquals(p.x, left, bl.epsilon):
			bl.insertSuccessor(x.prev, mid)
			return mid, true
		case numeric.FloatEquals(p.x, right, bl.epsilon):
			bl.insertSuccessor(x, mid)
			return mid, true
		default:
			bl.insertSuccessor(x, mid)
			right := &arc{focus: x.focus}
			bl.insertSuccessor(mid, right)
			return mid, false
		}
	}
}

// handleCollinearInsert handles the degenerate "first row" case: a second (or later)
// site sharing the very first site's y coordinate, for which no ordinary breakpoint
// exists yet because every existing arc is a vertical line, not a parabola. The new arc
// is always appended after the rightmost existing arc.
func (bl *beachline) handleCollinearInsert(p Point) *arc {
	newArc := &arc{focus: p}
	current := bl.root
	for current.next != nil {
		current = current.next
	}
	bl.insertSuccessor(current, newArc)
	return newArc
}

// deleteArc removes arc from both the linked-list order and the tree.
func (bl *beachline) deleteArc(a *arc) {
	prev := a.prev
	next := a.next
	if prev != nil {
		prev.next = next
	}
	if next != nil {
		next.prev = prev
	}
	bl.deleteNode(a)
}
