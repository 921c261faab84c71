package fortune2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleFromThreePoints(t *testing.T) {
	tests := map[string]struct {
		p1, p2, p3 Point
		wantCenter Point
		wantRadius float64
		wantOk     bool
	}{
		"equilateral triangle": {
			p1:         NewPoint(0, 0),
			p2:         NewPoint(2, 0),
			p3:         NewPoint(1, math.Sqrt(3)),
			wantCenter: NewPoint(1, math.Sqrt(3)/3),
			wantRadius: 2.0 / math.Sqrt(3),
			wantOk:     true,
		},
		"right triangle": {
			p1:         NewPoint(0, 0),
			p2:         NewPoint(4, 0),
			p3:         NewPoint(0, 4),
			wantCenter: NewPoint(2, 2),
			wantRadius: math.Sqrt(8),
			wantOk:     true,
		},
		"collinear points": {
			p1:     NewPoint(0, 0),
			p2:     NewPoint(1, 1),
			p3:     NewPoint(2, 2),
			wantOk: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			circle, ok := circleFromThreePoints(tc.p1, tc.p2, tc.p3)
			assert.Equal(t, tc.wantOk, ok)
			if !tc.wantOk {
				return
			}
			assert.InDelta(t, tc.wantCenter.X(), circle.Center.X(), 1e-9)
			assert.InDelta(t, tc.wantCenter.Y(), circle.Center.Y(), 1e-9)
			assert.InDelta(t, tc.wantRadius, circle.Radius, 1e-9)
		})
	}
}

func TestCircle_BottomPoint(t *testing.T) {
	c := Circle{Center: NewPoint(3, 4), Radius: 5}
	bp := c.bottomPoint()
	assert.Equal(t, 3.0, bp.X())
	assert.Equal(t, 9.0, bp.Y())
}
