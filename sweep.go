package fortune2d

import (
	"github.com/nnikolov/fortune2d/options"
)

// sweep holds the mutable state of one Compute call.
type sweep struct {
	queue     *eventQueue
	beachline *beachline
	diagram   *Diagram

	clipper   Rectangle
	container Rectangle

	sweepLineY    float64
	firstSiteY    float64
	haveFirstSite bool

	currentStep int
	epsilon     float64
	padding     float64
}

// Compute builds the Voronoi diagram for sites, clipped to clip, writing cells and
// vertices into diagram. It returns true if the sweep ran to completion (the event
// queue drained), false if it stopped early because maxSteps was reached first — a
// negative maxSteps means "no limit". sites is treated as an unordered set: exact
// coordinate duplicates are collapsed, and any site outside clip is dropped before the
// sweep starts. An epsilon option that is zero or negative is replaced by DefaultEpsilon.
func Compute(sites []Point, diagram *Diagram, clip Rectangle, maxSteps int, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)
	epsilon := geoOpts.Epsilon
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}

	s := &sweep{
		queue:     newEventQueue(),
		beachline: newBeachline(epsilon),
		diagram:   diagram,
		clipper:   clip,
		epsilon:   epsilon,
		padding:   DefaultContainerPadding,
	}

	seen := make(map[Point]bool, len(sites))
	count := 0
	for _, site := range sites {
		if !clip.containsPoint(site) {
			continue
		}
		if seen[site] {
			continue
		}
		seen[site] = true
		count++
		s.queue.push(&event{point: site, kind: EventSite})
	}

	if count == 0 {
		return true
	}

	for !s.queue.isEmpty() && s.currentStep != maxSteps {
		s.step()
	}

	if s.queue.isEmpty() {
		s.terminate()
		return true
	}
	return false
}

func (s *sweep) step() {
	ev := s.queue.popMin()
	if ev == nil {
		return
	}
	s.currentStep++
	if ev.kind == EventSite {
		s.processSiteEvent(ev)
	} else {
		s.processCircleEvent(ev)
	}
}

func (s *sweep) processSiteEvent(ev *event) {
	s.sweepLineY = ev.point.y
	s.beachline.updateSweeplineY(s.sweepLineY)

	if s.beachline.isEmpty() {
		root := s.beachline.insertRootArc(ev.point)
		s.firstSiteY = ev.point.y
		s.haveFirstSite = true
		s.container = containerFromClip(s.clipper, s.padding)
		s.container.expandToContainPoint(ev.point, s.padding)
		s.diagram.createCell(root)
		return
	}

	if s.haveFirstSite && s.firstSiteY == s.sweepLineY {
		s.container.expandToContainPoint(ev.point, s.padding)
		a := s.beachline.handleCollinearInsert(ev.point)
		s.diagram.createCell(a)

		prev := a.prev
		anchor := Point{x: (prev.focus.x + a.focus.x) / 2, y: collinearAnchorY}
		prev.rightHalfEdge = s.diagram.createHalfEdge(prev.cell)
		prev.rightHalfEdge.setDestination(anchor)
		a.leftHalfEdge = s.diagram.createHalfEdge(a.cell)
		a.leftHalfEdge.setOrigin(anchor)
		makeTwins(prev.rightHalfEdge, a.leftHalfEdge)
		return
	}

	newArc, isEdgeCase := s.beachline.insertArcForPoint(ev.point)
	s.container.expandToContainPoint(ev.point, s.padding)
	s.diagram.createCell(newArc)

	s.removeCircleEvent(newArc.prev)
	s.createCircleEvent(newArc.prev)
	s.createCircleEvent(newArc.next)

	prevArc := newArc.prev
	nextArc := newArc.next

	if isEdgeCase {
		circle, ok := circleFromThreePoints(prevArc.focus, newArc.focus, nextArc.focus)
		if !ok {
			return
		}
		vertex := circle.Center

		prevArc.rightHalfEdge.setOrigin(vertex)
		nextArc.leftHalfEdge.setDestination(vertex)

		lhe := s.diagram.createHalfEdge(newArc.cell)
		newArc.leftHalfEdge = lhe
		lhe.setOrigin(vertex)

		lTwin := s.diagram.createHalfEdge(prevArc.cell)
		lTwin.setDestination(vertex)
		makeTwins(lhe, lTwin)

		rhe := s.diagram.createHalfEdge(newArc.cell)
		newArc.rightHalfEdge = rhe
		rhe.setDestination(vertex)

		rTwin := s.diagram.createHalfEdge(nextArc.cell)
		rTwin.setOrigin(vertex)
		makeTwins(rhe, rTwin)

		connect(prevArc.rightHalfEdge, lhe)
		connect(rhe, nextArc.leftHalfEdge)

		prevArc.rightHalfEdge = lTwin
		nextArc.leftHalfEdge = rTwin
	} else {
		nextArc.cell = prevArc.cell
		nextArc.rightHalfEdge = prevArc.rightHalfEdge

		prevArc.rightHalfEdge = s.diagram.createHalfEdge(prevArc.cell)
		newArc.leftHalfEdge = s.diagram.createHalfEdge(newArc.cell)
		makeTwins(prevArc.rightHalfEdge, newArc.leftHalfEdge)

		newArc.rightHalfEdge = newArc.leftHalfEdge
		nextArc.leftHalfEdge = prevArc.rightHalfEdge
	}
}

func (s *sweep) processCircleEvent(ev *event) {
	a := ev.arc
	left := a.prev
	right := a.next
	center := ev.circle.Center

	s.sweepLineY = ev.point.y
	s.beachline.updateSweeplineY(s.sweepLineY)

	s.beachline.deleteArc(a)
	s.removeCircleEvent(a)
	s.removeCircleEvent(left)
	s.removeCircleEvent(right)

	s.createVertex(center, a)
	s.createCircleEvent(left)
	s.createCircleEvent(right)
}

func (s *sweep) createVertex(vertex Point, removedArc *arc) {
	s.container.expandToContainPoint(vertex, s.padding)
	prevArc := removedArc.prev
	nextArc := removedArc.next

	removedArc.leftHalfEdge.setDestination(vertex)
	removedArc.rightHalfEdge.setOrigin(vertex)

	if prevArc != nil {
		prevArc.rightHalfEdge.setOrigin(vertex)
		prevArc.rightHalfEdge.Twin.setDestination(vertex)
	}
	if nextArc != nil {
		nextArc.leftHalfEdge.setDestination(vertex)
		nextArc.leftHalfEdge.Twin.setOrigin(vertex)
	}
	if prevArc != nil && nextArc != nil {
		connect(prevArc.rightHalfEdge.Twin, nextArc.leftHalfEdge.Twin)
	}
	if prevArc != nil {
		prevRhe := s.diagram.createHalfEdge(prevArc.cell)
		prevRhe.setDestination(vertex)
		connect(prevRhe, prevArc.rightHalfEdge)
		prevArc.rightHalfEdge = prevRhe
	}
	if nextArc != nil {
		nextLhe := s.diagram.createHalfEdge(nextArc.cell)
		nextLhe.setOrigin(vertex)
		connect(nextArc.leftHalfEdge, nextLhe)
		nextArc.leftHalfEdge = nextLhe
	}
	if prevArc != nil && nextArc != nil {
		makeTwins(prevArc.rightHalfEdge, nextArc.leftHalfEdge)
	}

	s.diagram.addVertex(vertex)
}

func (s *sweep) createCircleEvent(a *arc) {
	if a == nil {
		return
	}
	circle, ok := s.checkCircleEvent(a.prev, a, a.next)
	if !ok {
		return
	}
	ev := &event{point: circle.bottomPoint(), kind: EventCircle, arc: a, circle: circle}
	a.pendingCircleKey = s.queue.push(ev)
	a.hasPendingCircle = true
}

func (s *sweep) removeCircleEvent(a *arc) {
	if a == nil || !a.hasPendingCircle {
		return
	}
	s.queue.remove(a.pendingCircleKey)
	a.hasPendingCircle = false
}

func (s *sweep) checkCircleEvent(left, mid, right *arc) (Circle, bool) {
	if left == nil || right == nil {
		return Circle{}, false
	}
	p0, p1, p2 := left.focus, mid.focus, right.focus
	circle, ok := circleFromThreePoints(p0, p1, p2)
	if !ok {
		return Circle{}, false
	}
	determinant := (p1.x*p2.y + p0.x*p1.y + p0.y*p2.x) - (p0.y*p1.x + p1.y*p2.x + p0.x*p2.y)
	eventY := circle.Center.y + circle.Radius
	if eventY >= s.sweepLineY && determinant > 0 {
		return circle, true
	}
	return Circle{}, false
}

func (s *sweep) terminate() {
	for a := s.beachline.minimum(); a != nil; a = a.next {
		s.boundIncompleteArc(a)
	}

	minArc := s.beachline.minimum()
	maxArc := s.beachline.maximum()

	if minArc != nil && maxArc != nil && minArc.cell == maxArc.cell {
		prev := maxArc.prev
		nextArc := minArc.next
		if prev != nil && nextArc != nil {
			maxArc.leftHalfEdge.setDestination(s.getBoxIntersection(prev.focus, maxArc.focus))
			minArc.rightHalfEdge.setOrigin(s.getBoxIntersection(minArc.focus, nextArc.focus))
			start := minArc.rightHalfEdge.Origin
			end := maxArc.leftHalfEdge.Destination
			head, tail := s.halfEdgesChain(maxArc.cell, s.container, end, start)
			connect(maxArc.leftHalfEdge, head)
			connect(tail, minArc.rightHalfEdge)
		}
	}

	for _, cell := range s.diagram.cells {
		if cell.outerComponent == nil || cell.outerComponent.Prev == nil || cell.outerComponent.Next == nil {
			s.completeIncompleteCell(cell)
		}
		s.clipCell(cell, s.clipper)
	}
}

func (s *sweep) completeIncompleteCell(cell *Cell) {
	if cell.outerComponent == nil {
		return
	}
	first := cell.outerComponent
	last := cell.outerComponent
	for first.Prev != nil {
		first = first.Prev
	}
	for last.Next != nil {
		last = last.Next
	}

	left, right, top, bottom := s.container.toClipRect()
	if seg, ok := last.ToSegment(); ok {
		if res := liangBarskyClip(seg, left, right, top, bottom); res.ok {
			last.setDestination(res.segment.B)
		}
	}
	if seg, ok := first.ToSegment(); ok {
		if res := liangBarskyClip(seg, left, right, top, bottom); res.ok {
			first.setOrigin(res.segment.A)
		}
	}

	start := last.Destination
	end := first.Origin
	head, tail := s.halfEdgesChain(cell, s.container, start, end)
	connect(last, head)
	connect(tail, first)
}

func (s *sweep) boundIncompleteArc(a *arc) {
	var startPoint, endPoint Point
	var haveStart, haveEnd bool

	if a.prev != nil {
		startPoint = s.getBoxIntersection(a.prev.focus, a.focus)
		a.prev.rightHalfEdge.setOrigin(startPoint)
		haveStart = true
	}
	if a.next != nil {
		endPoint = s.getBoxIntersection(a.focus, a.next.focus)
		a.next.leftHalfEdge.setDestination(endPoint)
		haveEnd = true
	}
	if haveStart && haveEnd {
		head, tail := s.halfEdgesChain(a.cell, s.container, startPoint, endPoint)
		connect(a.leftHalfEdge, head)
		connect(tail, a.rightHalfEdge)
	}
}

func (s *sweep) clipCell(cell *Cell, clipRect Rectangle) {
	if cell.outerComponent == nil {
		corners := [4]Point{clipRect.TL(), clipRect.BL(), clipRect.BR(), clipRect.TR()}
		hes := [4]*HalfEdge{}
		for i, corner := range corners {
			he := s.diagram.createHalfEdge(cell)
			he.setOrigin(corners[(i+3)%4])
			he.setDestination(corner)
			hes[i] = he
		}
		for i := range hes {
			connect(hes[i], hes[(i+1)%4])
		}
		cell.outerComponent = hes[0]
		return
	}

	type clippedEdge struct {
		he                           *HalfEdge
		originClipped, destClipped   bool
	}

	left, right, top, bottom := clipRect.toClipRect()
	var edges []clippedEdge
	firstOut := -1

	for he := cell.outerComponent; ; {
		if seg, ok := he.ToSegment(); ok {
			res := liangBarskyClip(seg, left, right, top, bottom)
			if res.ok && (res.originClipped || res.destinationClipped) {
				if res.destinationClipped {
					if firstOut < 0 {
						firstOut = len(edges)
					}
					he.setDestination(res.segment.B)
				}
				if res.originClipped {
					he.setOrigin(res.segment.A)
				}
				edges = append(edges, clippedEdge{he, res.originClipped, res.destinationClipped})
			}
		}
		he = he.Next
		if he == nil || he == cell.outerComponent {
			break
		}
	}

	if len(edges) == 0 {
		return
	}

	for i := firstOut; i < len(edges)+firstOut; {
		curIdx := i % len(edges)
		nextIdx := (i + 1) % len(edges)
		head, tail := s.halfEdgesChain(cell, s.clipper, edges[curIdx].he.Destination, edges[nextIdx].he.Origin)
		connect(edges[curIdx].he, head)
		connect(tail, edges[nextIdx].he)
		if edges[nextIdx].destClipped {
			i++
		} else {
			i += 2
		}
	}
}

func (s *sweep) halfEdgesChain(cell *Cell, rect Rectangle, start, end Point) (*HalfEdge, *HalfEdge) {
	points := rect.ccwPolylineBetween(start, end, s.epsilon)
	head := s.diagram.createHalfEdge(cell)
	head.setOrigin(start)
	he := head
	for _, point := range points {
		he.setDestination(point)
		newHe := s.diagram.createHalfEdge(cell)
		newHe.setOrigin(point)
		connect(he, newHe)
		he = newHe
	}
	he.setDestination(end)
	return head, he
}

func (s *sweep) getBoxIntersection(p1, p2 Point) Point {
	mid := Point{x: (p1.x + p2.x) / 2, y: (p1.y + p2.y) / 2}
	direction := VectorTo(p1, p2).Normal()
	point, _ := s.container.intersectionWithRay(mid, direction)
	return point
}

func makeTwins(a, b *HalfEdge) {
	a.Twin = b
	b.Twin = a
}

func connect(prev, next *HalfEdge) {
	prev.Next = next
	next.Prev = prev
}
