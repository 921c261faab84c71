package fortune2d

import (
	"github.com/google/btree"
)

// HalfEdge is one directed edge of the diagram's doubly-connected edge list. Twin,
// Next, Prev and IncidentCell form reference cycles with other HalfEdges and Cells;
// Go's garbage collector reclaims these cycles once a Diagram is no longer reachable,
// so — unlike the weakref-based implementation this package's logic is grounded on —
// these are ordinary pointers, not weak references into an external arena.
type HalfEdge struct {
	Origin, Destination Point
	hasOrigin           bool
	hasDestination      bool

	Twin         *HalfEdge
	Next, Prev   *HalfEdge
	IncidentCell *Cell
}

// ToSegment returns he as a Segment, and false if either endpoint hasn't been set yet.
func (he *HalfEdge) ToSegment() (Segment, bool) {
	if !he.hasOrigin || !he.hasDestination {
		return Segment{}, false
	}
	return Segment{A: he.Origin, B: he.Destination}, true
}

func (he *HalfEdge) setOrigin(p Point) {
	he.Origin = p
	he.hasOrigin = true
}

func (he *HalfEdge) setDestination(p Point) {
	he.Destination = p
	he.hasDestination = true
}

// Cell is a single Voronoi cell: the site that owns it, and one half-edge on its
// boundary (outerComponent) from which the whole boundary can be walked via Next/Prev.
type Cell struct {
	Site           Point
	outerComponent *HalfEdge
}

// OuterComponent returns one half-edge on the boundary of c, or nil if the cell has no
// boundary yet (this can only happen transiently, mid-sweep).
func (c *Cell) OuterComponent() *HalfEdge {
	return c.outerComponent
}

// HullVerticesCCW returns the vertices of c's boundary, counter-clockwise, starting
// from outerComponent.Origin.
func (c *Cell) HullVerticesCCW() []Point {
	var vertices []Point
	if c.outerComponent == nil {
		return vertices
	}
	he := c.outerComponent
	for {
		if he.hasOrigin {
			vertices = append(vertices, he.Origin)
		}
		he = he.Next
		if he == nil || he == c.outerComponent {
			break
		}
	}
	return vertices
}

// Neighbours returns every cell sharing a boundary edge with c.
func (c *Cell) Neighbours() []*Cell {
	var neighbours []*Cell
	if c.outerComponent == nil {
		return neighbours
	}
	he := c.outerComponent
	for {
		if he.Twin != nil && he.Twin.IncidentCell != nil {
			neighbours = append(neighbours, he.Twin.IncidentCell)
		}
		he = he.Next
		if he == nil || he == c.outerComponent {
			break
		}
	}
	return neighbours
}

// vertexLess orders points by (y, x), matching the event queue's ordering so iteration
// over the vertex set and over processed circle events agree.
func vertexLess(a, b Point) bool {
	if a.y != b.y {
		return a.y < b.y
	}
	return a.x < b.x
}

// Diagram is the complete Voronoi diagram produced by Compute: every cell, and the set
// of interior vertices created by circle events.
type Diagram struct {
	cells    []*Cell
	vertices *btree.BTreeG[Point]
}

// NewDiagram returns an empty Diagram, ready to be passed to Compute.
func NewDiagram() *Diagram {
	return &Diagram{
		vertices: btree.NewG[Point](32, vertexLess),
	}
}

// Cells returns every cell of the diagram, one per distinct input site.
func (d *Diagram) Cells() []*Cell {
	return d.cells
}

// Vertices returns the interior Voronoi vertices, ordered by (y, x). Vertices are
// accumulated in a github.com/google/btree BTreeG rather than a plain slice: a
// four-cocircular-site event inserts the same vertex for multiple arcs, and ReplaceOrInsert silently
// dedupes the exact coordinate match rather than requiring Diagram to post-process a
// slice for duplicates on every call.
func (d *Diagram) Vertices() []Point {
	vertices := make([]Point, 0, d.vertices.Len())
	d.vertices.Ascend(func(p Point) bool {
		vertices = append(vertices, p)
		return true
	})
	return vertices
}

func (d *Diagram) addVertex(p Point) {
	d.vertices.ReplaceOrInsert(p)
}

// createCell creates a new, empty cell for a's site and attaches it to a.
func (d *Diagram) createCell(a *arc) {
	cell := &Cell{Site: a.focus}
	d.cells = append(d.cells, cell)
	a.cell = cell
}

// createHalfEdge creates a new half-edge belonging to cell, setting it as the cell's
// outerComponent if it doesn't have one yet.
func (d *Diagram) createHalfEdge(cell *Cell) *HalfEdge {
	he := &HalfEdge{IncidentCell: cell}
	if cell.outerComponent == nil {
		cell.outerComponent = he
	}
	return he
}

// Clear releases every cell and vertex, leaving d ready for reuse by another Compute call.
func (d *Diagram) Clear() {
	d.cells = nil
	d.vertices = btree.NewG[Point](32, vertexLess)
}
