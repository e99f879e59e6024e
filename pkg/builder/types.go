// Package builder supplies a reference implementation of voronoi.OutputBuilder,
// assembling the notifications a sweep sends into a doubly connected edge
// list: cells, twinned half-edges, and vertices.
package builder

import "github.com/vorolib/voronoi/pkg/voronoi"

// Vertex is a computed diagram vertex.
type Vertex struct {
	X, Y float64
}

// NoVertex marks a half-edge endpoint that never resolved to a finite
// point — the bisector it bounds is a ray or a full line.
var NoVertex *Vertex

// Halfedge is one directed side of a bisector between two sites. Twin is
// the opposite direction of the same bisector; Cell is the region this
// half-edge bounds. Both endpoints are carried directly rather than
// computed lazily from the edge's two adjacent cells.
type Halfedge struct {
	Start, End *Vertex
	Twin       *Halfedge
	Cell       *Cell
	Next       *Halfedge

	angle float64
}

// Cell is one site's region, described by its bounding half-edges once
// Build has ordered them counterclockwise around the site. Site is a full
// *voronoi.SiteEvent, not a bare point, so segment-site cells stay
// distinguishable from point-site ones.
type Cell struct {
	Site      *voronoi.SiteEvent
	Halfedges []*Halfedge
}

// Diagram is the finished output: every cell, every bisector (stored as one
// of its two twin half-edges; the other is reached through Twin), and every
// finite vertex produced during the sweep.
type Diagram struct {
	Cells    []*Cell
	Edges    []*Halfedge
	Vertices []*Vertex
}
