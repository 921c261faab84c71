package fortune2d

// EventKind distinguishes the two kinds of event the sweep processes.
type EventKind uint8

const (
	// EventSite marks the sweep line reaching a site's y coordinate.
	EventSite EventKind = iota
	// EventCircle marks the sweep line reaching the bottom of a circle
	// circumscribing three consecutive beachline arcs, at which point the
	// middle arc is about to be squeezed out of the beachline.
	EventCircle
)

// event is a single entry in the event queue: either a site becoming active, or a
// candidate vanishing-arc event scheduled by createCircleEvent.
type event struct {
	point Point
	kind  EventKind

	// arc and circle are set for circle events only: arc is the beachline arc
	// predicted to vanish, circle is the circumscribed circle whose bottom point
	// triggers the event.
	arc    *arc
	circle Circle

	// seq is the insertion sequence, used to break (y, x) ties in FIFO order and,
	// together with (y, x), to give the event queue a unique key.
	seq uint64
}
