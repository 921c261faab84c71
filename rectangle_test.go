package fortune2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangle_Corners(t *testing.T) {
	r := NewRectangle(0, 0, 10, 20)
	assert.Equal(t, NewPoint(0, 0), r.TL())
	assert.Equal(t, NewPoint(10, 0), r.TR())
	assert.Equal(t, NewPoint(0, 20), r.BL())
	assert.Equal(t, NewPoint(10, 20), r.BR())
	assert.Equal(t, 10.0, r.Width())
	assert.Equal(t, 20.0, r.Height())
}

func TestRectangle_ContainsPoint(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	assert.True(t, r.containsPoint(NewPoint(5, 5)))
	assert.True(t, r.containsPoint(NewPoint(0, 0)))
	assert.True(t, r.containsPoint(NewPoint(10, 10)))
	assert.False(t, r.containsPoint(NewPoint(-1, 5)))
	assert.False(t, r.containsPoint(NewPoint(5, 11)))
}

func TestRectangle_ExpandToContainPoint(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	r.expandToContainPoint(NewPoint(-5, -5), 2)
	assert.True(t, r.containsPoint(NewPoint(-5, -5)))
	r.expandToContainPoint(NewPoint(20, 20), 2)
	assert.True(t, r.containsPoint(NewPoint(20, 20)))
}

func TestContainerFromClip(t *testing.T) {
	clip := NewRectangle(0, 0, 10, 10)
	container := containerFromClip(clip, 5)
	assert.Equal(t, NewPoint(-5, -5), container.TL())
	assert.Equal(t, NewPoint(15, 15), container.BR())
}

func TestRectangle_Edges(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	edges := r.edges()
	assert.Len(t, edges, 4)
	top := r.edge(EdgeTop)
	assert.Equal(t, r.TR(), top.A)
	assert.Equal(t, r.TL(), top.B)
}

func TestRectangle_IntersectionWithRay(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	origin := NewPoint(5, 5)

	point, edge := r.intersectionWithRay(origin, NewVector2D(1, 0))
	assert.Equal(t, EdgeRight, edge)
	assert.InDelta(t, 10, point.X(), 1e-9)
	assert.InDelta(t, 5, point.Y(), 1e-9)

	point, edge = r.intersectionWithRay(origin, NewVector2D(0, -1))
	assert.Equal(t, EdgeTop, edge)
	assert.InDelta(t, 0, point.Y(), 1e-9)
}

func TestRectangle_SideForPoint(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	edge, ok := r.sideForPoint(NewPoint(0, 5), DefaultEpsilon)
	assert.True(t, ok)
	assert.Equal(t, EdgeLeft, edge)

	_, ok = r.sideForPoint(NewPoint(5, 5), DefaultEpsilon)
	assert.False(t, ok)
}

func TestRectangle_NextCCW(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	edge, corner := r.nextCCW(EdgeTop)
	assert.Equal(t, EdgeLeft, edge)
	assert.Equal(t, r.TL(), corner)
}

func TestRectangle_CcwPolylineBetween_SameEdge(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	// Two points on the top edge, with start already CCW-before end: no detour needed.
	points := r.ccwPolylineBetween(NewPoint(8, 0), NewPoint(2, 0), DefaultEpsilon)
	assert.Nil(t, points)
}

func TestRectangle_CcwPolylineBetween_AcrossCorner(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	points := r.ccwPolylineBetween(NewPoint(10, 5), NewPoint(5, 0), DefaultEpsilon)
	assert.Equal(t, []Point{r.TR()}, points)
}

func TestRectangle_ToClipRect(t *testing.T) {
	r := NewRectangle(1, 2, 3, 4)
	left, right, top, bottom := r.toClipRect()
	assert.Equal(t, 1.0, left)
	assert.Equal(t, 4.0, right)
	assert.Equal(t, 2.0, top)
	assert.Equal(t, 6.0, bottom)
}
