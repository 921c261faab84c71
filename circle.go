package fortune2d

import "math"

// Circle is a circle in the plane, used here as the circumscribed circle of three
// beachline sites: a candidate Voronoi vertex together with its distance to the
// sites that define it.
type Circle struct {
	Center Point
	Radius float64
}

// circleFromThreePoints returns the circle passing through p1, p2 and p3, along with
// ok=false if the three points are collinear (no finite circumscribed circle exists).
//
// See https://www.xarg.org/2018/02/create-a-circle-out-of-three-points/ for the
// determinant derivation.
func circleFromThreePoints(p1, p2, p3 Point) (Circle, bool) {
	x1, y1 := p1.x, p1.y
	x2, y2 := p2.x, p2.y
	x3, y3 := p3.x, p3.y

	a := x1*(y2-y3) - y1*(x2-x3) + x2*y3 - x3*y2
	if a == 0 {
		return Circle{}, false
	}

	b := (x1*x1+y1*y1)*(y3-y2) +
		(x2*x2+y2*y2)*(y1-y3) +
		(x3*x3+y3*y3)*(y2-y1)

	c := (x1*x1+y1*y1)*(x2-x3) +
		(x2*x2+y2*y2)*(x3-x1) +
		(x3*x3+y3*y3)*(x1-x2)

	center := Point{x: -b / (2 * a), y: -c / (2 * a)}
	radius := math.Hypot(center.x-x1, center.y-y1)

	return Circle{Center: center, Radius: radius}, true
}

// bottomPoint returns the point on c with the maximum y coordinate, i.e. the point the
// sweep line touches last — this is the y at which the corresponding circle event fires.
func (c Circle) bottomPoint() Point {
	return Point{x: c.Center.x, y: c.Center.y + c.Radius}
}
