package fortune2d

// clipEdge enumerates the four sides tested by the Liang-Barsky clipper, in the
// order the original clipping parameters p/q are derived for each side.
type clipEdge uint8

const (
	clipLeft clipEdge = iota
	clipRight
	clipTop
	clipBottom
)

// Segment is an ordered pair of points, used both as the DCEL's edge representation
// on output and as the input/output type of the Liang-Barsky clipper.
type Segment struct {
	A Point
	B Point
}

// clipResult reports which endpoints of a segment were moved by liangBarskyClip,
// and the resulting (possibly shortened) segment.
type clipResult struct {
	originClipped      bool
	destinationClipped bool
	segment            Segment
	ok                 bool
}

// liangBarskyClip clips seg against the axis-aligned rectangle [left,right]x[top,bottom]
// (top < bottom, since diagram y grows downward). ok is false when the segment lies
// entirely outside the rectangle, in which case the other fields are zero values.
func liangBarskyClip(seg Segment, left, right, top, bottom float64) clipResult {
	t0, t1 := 0.0, 1.0
	dx := seg.B.x - seg.A.x
	dy := seg.B.y - seg.A.y

	var originClipped, destinationClipped bool

	for _, edge := range [...]clipEdge{clipLeft, clipRight, clipTop, clipBottom} {
		var p, q float64
		switch edge {
		case clipLeft:
			p = -dx
			q = -(left - seg.A.x)
		case clipRight:
			p = dx
			q = right - seg.A.x
		case clipTop:
			p = -dy
			q = -(top - seg.A.y)
		case clipBottom:
			p = dy
			q = bottom - seg.A.y
		}

		if p == 0 && q < 0 {
			return clipResult{}
		}

		if p != 0 {
			r := q / p
			switch {
			case p < 0:
				if r > t1 {
					return clipResult{}
				}
				if r > t0 {
					originClipped = true
					t0 = r
				}
			case p > 0:
				if r < t0 {
					return clipResult{}
				}
				if r < t1 {
					destinationClipped = true
					t1 = r
				}
			}
		}
	}

	return clipResult{
		originClipped:      originClipped,
		destinationClipped: destinationClipped,
		segment: Segment{
			A: Point{x: seg.A.x + t0*dx, y: seg.A.y + t0*dy},
			B: Point{x: seg.A.x + t1*dx, y: seg.A.y + t1*dy},
		},
		ok: true,
	}
}
