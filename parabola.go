package fortune2d

import "math"

// parabola is the locus of points equidistant from focus and the horizontal directrix
// line y = directrixY. Each beachline arc is, at any instant, one such parabola with
// the sweep line as its directrix.
type parabola struct {
	focus      Point
	directrixY float64
}

// standardForm returns the (a, b, c) coefficients of the parabola in ax^2+bx+c form,
// derived from its vertex. The vertex-derived form is used throughout rather than an
// alternative focus/directrix expansion found in some references, since it is the only
// one of the two that stays numerically consistent with resolve and intersectionX below.
func (p parabola) standardForm() (a, b, c float64) {
	vx := (p.focus.y + p.directrixY) / 2
	vy := (p.focus.y - p.directrixY) / 2

	a = 1 / (4 * vy)
	b = (-1 * p.focus.x) / (2 * vy)
	c = (p.focus.x*p.focus.x)/(4*vy) + vx
	return a, b, c
}

// resolve returns the parabola's y value at the given x.
func (p parabola) resolve(x float64) float64 {
	a, b, c := p.standardForm()
	return a*(x*x) + b*x + c
}

// intersectionX returns the x coordinate at which p and other intersect — the
// breakpoint between the two corresponding beachline arcs — and false if the two
// parabolas (as currently positioned on the sweep line) do not intersect.
func (p parabola) intersectionX(other parabola) (float64, bool) {
	focusLeft := p.focus
	focusRight := other.focus
	directrix := p.directrixY

	// Two foci at the same y: their parabolas are mirror images of each other and
	// meet exactly halfway between them regardless of directrix position.
	if focusLeft.y == focusRight.y {
		return (focusLeft.x + focusRight.x) / 2, true
	}

	// A focus sitting on the directrix degenerates to a vertical line through its x.
	if focusLeft.y == directrix {
		return focusLeft.x, true
	}
	if focusRight.y == directrix {
		return focusRight.x, true
	}

	a1, b1, c1 := p.standardForm()
	a2, b2, c2 := other.standardForm()

	a := a1 - a2
	b := b1 - b2
	c := c1 - c2

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	x1 := (-b + sqrtDisc) / (2 * a)
	x2 := (-b - sqrtDisc) / (2 * a)

	var x float64
	if focusLeft.y < focusRight.y {
		x = math.Min(x1, x2)
	} else {
		x = math.Max(x1, x2)
	}

	if math.IsNaN(x) {
		return 0, false
	}
	return x, true
}
