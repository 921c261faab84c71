package fortune2d

import (
	"math"

	"github.com/nnikolov/fortune2d/numeric"
)

// RectangleEdge identifies one of the four sides of a Rectangle.
type RectangleEdge uint8

const (
	EdgeTop RectangleEdge = iota
	EdgeRight
	EdgeLeft
	EdgeBottom
)

// Rectangle is an axis-aligned rectangle used both as the clip region callers supply
// to Compute and as the internal, padded container that bounds unbounded edges during
// the sweep. Y grows downward, matching the diagram's coordinate convention: TL() and
// TR() have the smaller y, BL() and BR() the larger.
type Rectangle struct {
	x, y          float64
	width, height float64
}

// NewRectangle constructs a Rectangle from its top-left corner and dimensions.
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{x: x, y: y, width: width, height: height}
}

// TL returns the top-left corner.
func (r Rectangle) TL() Point { return Point{x: r.x, y: r.y} }

// TR returns the top-right corner.
func (r Rectangle) TR() Point { return Point{x: r.x + r.width, y: r.y} }

// BL returns the bottom-left corner.
func (r Rectangle) BL() Point { return Point{x: r.x, y: r.y + r.height} }

// BR returns the bottom-right corner.
func (r Rectangle) BR() Point { return Point{x: r.x + r.width, y: r.y + r.height} }

// Width returns the width of r.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the height of r.
func (r Rectangle) Height() float64 { return r.height }

// expandToContainPoint grows r in place, by at least padding, so that p lies on or
// within its boundary. Mirrors the original source's asymmetric grow-in-each-direction
// logic rather than recomputing a bounding box from scratch, so repeated calls only ever
// grow the rectangle.
func (r *Rectangle) expandToContainPoint(p Point, padding float64) {
	tl := r.TL()
	if p.x <= tl.x {
		r.width += numeric.Abs(r.x - p.x + padding)
		r.x = p.x - padding
	}
	if p.y <= tl.y {
		r.height += numeric.Abs(r.y - p.y + padding)
		r.y = p.y - padding
	}
	if p.x >= tl.x+r.width {
		r.width = p.x - r.x + padding
	}
	if p.y >= tl.y+r.height {
		r.height = p.y - r.y + padding
	}
}

// containerFromClip returns an oversized Rectangle derived from clip, padded on every
// side, used as the container that bounds otherwise-unbounded Voronoi edges before the
// final clip to clip itself.
func containerFromClip(clip Rectangle, padding float64) Rectangle {
	return Rectangle{
		x:      clip.x - padding,
		y:      clip.y - padding,
		width:  clip.width + 2*padding,
		height: clip.height + 2*padding,
	}
}

// containsPoint reports whether p lies on or within r's boundary.
func (r Rectangle) containsPoint(p Point) bool {
	tl, tr, br := r.TL(), r.TR(), r.BR()
	return p.x >= tl.x && p.x <= tr.x && p.y >= tl.y && p.y <= br.y
}

// edge returns the line segment forming the given side of r, oriented so that
// traversing TOP, LEFT, BOTTOM, RIGHT in this method's direction walks the boundary
// counter-clockwise when y grows downward.
func (r Rectangle) edge(e RectangleEdge) Segment {
	switch e {
	case EdgeTop:
		return Segment{A: r.TR(), B: r.TL()}
	case EdgeRight:
		return Segment{A: r.BR(), B: r.TR()}
	case EdgeBottom:
		return Segment{A: r.BL(), B: r.BR()}
	default: // EdgeLeft
		return Segment{A: r.TL(), B: r.BL()}
	}
}

// edges returns the four sides of r.
func (r Rectangle) edges() [4]Segment {
	return [4]Segment{r.edge(EdgeTop), r.edge(EdgeLeft), r.edge(EdgeRight), r.edge(EdgeBottom)}
}

// segmentContainsPoint reports whether p lies on segment s, handling the vertical
// special case the way a Voronoi edge (which is frequently vertical) requires.
func segmentContainsPoint(s Segment, p Point, epsilon float64) bool {
	if numeric.Abs(s.B.x-s.A.x) < epsilon {
		return numeric.Abs(p.x-s.A.x) < epsilon &&
			p.y >= math.Min(s.A.y, s.B.y) && p.y <= math.Max(s.A.y, s.B.y)
	}
	k := (s.B.y - s.A.y) / (s.B.x - s.A.x)
	c := s.A.y - k*s.A.x
	return numeric.Abs(p.y-(p.x*k+c)) < epsilon &&
		p.x >= math.Min(s.A.x, s.B.x)-epsilon && p.x <= math.Max(s.A.x, s.B.x)+epsilon
}

// intersectionWithRay returns the point at which the ray from origin in direction
// first leaves r, and which edge it leaves through. direction must be non-zero.
func (r Rectangle) intersectionWithRay(origin Point, direction Vector2D) (Point, RectangleEdge) {
	var point Point
	var edge RectangleEdge
	t := math.Inf(1)

	switch {
	case direction.dx > 0:
		right := r.edge(EdgeRight)
		t = (right.A.x - origin.x) / direction.dx
		point = origin.Translate(direction.Scale(t))
		edge = EdgeRight
	case direction.dx < 0:
		left := r.edge(EdgeLeft)
		t = (left.A.x - origin.x) / direction.dx
		point = origin.Translate(direction.Scale(t))
		edge = EdgeLeft
	}

	switch {
	case direction.dy > 0:
		bottom := r.edge(EdgeBottom)
		newT := (bottom.A.y - origin.y) / direction.dy
		if newT < t {
			point = origin.Translate(direction.Scale(newT))
			edge = EdgeBottom
		}
	case direction.dy < 0:
		top := r.edge(EdgeTop)
		newT := (top.A.y - origin.y) / direction.dy
		if newT < t {
			point = origin.Translate(direction.Scale(newT))
			edge = EdgeTop
		}
	}

	return point, edge
}

// nextCCW returns the edge that follows e when walking the rectangle boundary
// counter-clockwise, along with the corner shared by e and that next edge.
func (r Rectangle) nextCCW(e RectangleEdge) (RectangleEdge, Point) {
	switch e {
	case EdgeLeft:
		return EdgeBottom, r.BL()
	case EdgeBottom:
		return EdgeRight, r.BR()
	case EdgeRight:
		return EdgeTop, r.TR()
	default: // EdgeTop
		return EdgeLeft, r.TL()
	}
}

// sideForPoint returns the edge of r that p lies on, if any.
func (r Rectangle) sideForPoint(p Point, epsilon float64) (RectangleEdge, bool) {
	for _, e := range [...]RectangleEdge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft} {
		if segmentContainsPoint(r.edge(e), p, epsilon) {
			return e, true
		}
	}
	return 0, false
}

// ccwTraverse walks the rectangle boundary counter-clockwise from start up to (but not
// including) end, collecting the corners crossed.
func (r Rectangle) ccwTraverse(start, end RectangleEdge) []Point {
	var points []Point
	edge := start
	for edge != end {
		next, corner := r.nextCCW(edge)
		edge = next
		points = append(points, corner)
	}
	return points
}

// ccwPolylineBetween returns the rectangle corners a cell boundary must pass through,
// counter-clockwise, to connect start to end along r's boundary. Both points must lie
// on r's boundary. Returns nil if either point is not on the boundary.
func (r Rectangle) ccwPolylineBetween(start, end Point, epsilon float64) []Point {
	startEdge, ok := r.sideForPoint(start, epsilon)
	if !ok {
		return nil
	}
	endEdge, ok := r.sideForPoint(end, epsilon)
	if !ok {
		return nil
	}

	if startEdge == endEdge {
		segment := r.edge(startEdge)
		if segment.A.DistanceToPoint(start) < segment.A.DistanceToPoint(end) {
			return nil
		}
		next, corner := r.nextCCW(startEdge)
		points := []Point{corner}
		return append(points, r.ccwTraverse(next, startEdge)...)
	}
	return r.ccwTraverse(startEdge, endEdge)
}

// toClipRect reduces r to the (left, right, top, bottom) form the Liang-Barsky
// clipper needs.
func (r Rectangle) toClipRect() (left, right, top, bottom float64) {
	return r.TL().x, r.TR().x, r.TR().y, r.BR().y
}
