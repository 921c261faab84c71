package fortune2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiangBarskyClip(t *testing.T) {
	tests := map[string]struct {
		seg                Segment
		left, right, top, bottom float64
		wantOk             bool
		wantOrigin         bool
		wantDestination    bool
		wantSegment        Segment
	}{
		"fully inside": {
			seg:    Segment{A: NewPoint(2, 2), B: NewPoint(8, 8)},
			left:   0, right: 10, top: 0, bottom: 10,
			wantOk:      true,
			wantSegment: Segment{A: NewPoint(2, 2), B: NewPoint(8, 8)},
		},
		"fully outside": {
			seg:    Segment{A: NewPoint(-5, -5), B: NewPoint(-1, -1)},
			left:   0, right: 10, top: 0, bottom: 10,
			wantOk: false,
		},
		"origin clipped": {
			seg:    Segment{A: NewPoint(-5, 5), B: NewPoint(5, 5)},
			left:   0, right: 10, top: 0, bottom: 10,
			wantOk:          true,
			wantOrigin:      true,
			wantDestination: false,
			wantSegment:     Segment{A: NewPoint(0, 5), B: NewPoint(5, 5)},
		},
		"destination clipped": {
			seg:    Segment{A: NewPoint(5, 5), B: NewPoint(15, 5)},
			left:   0, right: 10, top: 0, bottom: 10,
			wantOk:          true,
			wantOrigin:      false,
			wantDestination: true,
			wantSegment:     Segment{A: NewPoint(5, 5), B: NewPoint(10, 5)},
		},
		"both ends clipped": {
			seg:    Segment{A: NewPoint(-5, 5), B: NewPoint(15, 5)},
			left:   0, right: 10, top: 0, bottom: 10,
			wantOk:          true,
			wantOrigin:      true,
			wantDestination: true,
			wantSegment:     Segment{A: NewPoint(0, 5), B: NewPoint(10, 5)},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res := liangBarskyClip(tc.seg, tc.left, tc.right, tc.top, tc.bottom)
			assert.Equal(t, tc.wantOk, res.ok)
			if !tc.wantOk {
				return
			}
			assert.Equal(t, tc.wantOrigin, res.originClipped)
			assert.Equal(t, tc.wantDestination, res.destinationClipped)
			assert.InDelta(t, tc.wantSegment.A.X(), res.segment.A.X(), 1e-9)
			assert.InDelta(t, tc.wantSegment.A.Y(), res.segment.A.Y(), 1e-9)
			assert.InDelta(t, tc.wantSegment.B.X(), res.segment.B.X(), 1e-9)
			assert.InDelta(t, tc.wantSegment.B.Y(), res.segment.B.Y(), 1e-9)
		})
	}
}
