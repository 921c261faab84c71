// Package fortune2d computes planar Voronoi diagrams with Fortune's sweep-line
// algorithm, producing a doubly-connected edge list clipped to a caller-supplied
// axis-aligned rectangle.
//
// # Coordinate System
//
// Unlike most of the 2D tools this package is descended from, y grows downward here,
// matching the original source's sweep-line convention: the sweep line advances from
// smaller y to larger y, "above" the line means smaller y, and a circle's bottomPoint
// (its maximum-y point) is the point at which its circle event fires.
//
// # Core Types
//
//   - [Point]: a site or diagram vertex.
//   - [Rectangle]: the clip region and, internally, the padded container that bounds
//     otherwise-unbounded edges during the sweep.
//   - [Diagram]: the output — a set of [Cell] values, each with a boundary of
//     [HalfEdge] values, plus the set of interior vertices created by circle events.
//
// # Usage
//
//	diagram := fortune2d.NewDiagram()
//	done := fortune2d.Compute(sites, diagram, clip, -1)
//
// # Precision Control with Epsilon
//
// Breakpoint coincidence and boundary-membership checks use an epsilon tolerance,
// overridable via [options.WithEpsilon], to absorb floating-point error around
// degenerate configurations such as cocircular quads.
package fortune2d

// DefaultEpsilon is the tolerance used for floating-point comparisons (breakpoint
// coincidence, boundary membership) when the caller does not override it
// with options.WithEpsilon.
const DefaultEpsilon = 1e-10

// DefaultContainerPadding is the margin added on every side of the caller's clip
// rectangle to build the internal container that bounds unbounded Voronoi edges before
// the final clip to the caller's rectangle.
const DefaultContainerPadding = 20.0

// collinearAnchorY is the synthetic y used to anchor the shared edge between two arcs
// created from sites sharing the very first sweep y (the "first row" degenerate case,
// where no ordinary breakpoint intersection exists yet). The termination pass always
// reroutes these edges through the container, so the exact value only needs to sit
// comfortably above any real site.
const collinearAnchorY = -1e6

func init() {
	logDebugf("debug logging enabled")
}
