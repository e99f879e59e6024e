package builder

import (
	"math"
	"sort"

	"github.com/vorolib/voronoi/pkg/voronoi"
)

// Builder implements voronoi.OutputBuilder, turning the call sequence a
// sweep makes into a Diagram. The zero value is not usable; construct one
// with New.
type Builder struct {
	cells   map[*voronoi.SiteEvent]*Cell
	diagram *Diagram
}

// New returns a Builder ready to be passed to (*voronoi.Voronoi).Construct.
func New() *Builder {
	return &Builder{
		cells:   make(map[*voronoi.SiteEvent]*Cell),
		diagram: &Diagram{},
	}
}

func (b *Builder) Reserve(n int) {
	b.diagram.Cells = make([]*Cell, 0, n)
	b.diagram.Edges = make([]*Halfedge, 0, 2*n)
}

func (b *Builder) cellFor(site *voronoi.SiteEvent) *Cell {
	if c, ok := b.cells[site]; ok {
		return c
	}
	c := &Cell{Site: site}
	b.cells[site] = c
	b.diagram.Cells = append(b.diagram.Cells, c)
	return c
}

// ProcessSingleSite handles the degenerate one-site diagram: a single cell
// with no bounding half-edges at all.
func (b *Builder) ProcessSingleSite(site *voronoi.SiteEvent) {
	b.cellFor(site)
}

func (b *Builder) InsertNewEdge(splitBy, newSite *voronoi.SiteEvent) (voronoi.EdgeHandle, voronoi.EdgeHandle) {
	cellSplit := b.cellFor(splitBy)
	cellNew := b.cellFor(newSite)

	heSplit := &Halfedge{Cell: cellSplit}
	heNew := &Halfedge{Cell: cellNew}
	heSplit.Twin = heNew
	heNew.Twin = heSplit

	cellSplit.Halfedges = append(cellSplit.Halfedges, heSplit)
	cellNew.Halfedges = append(cellNew.Halfedges, heNew)
	b.diagram.Edges = append(b.diagram.Edges, heSplit)

	return heSplit, heNew
}

func (b *Builder) InsertNewEdgeFromCircle(left, right *voronoi.SiteEvent, at *voronoi.CircleEvent, prevEdge, nextEdge voronoi.EdgeHandle) voronoi.EdgeHandle {
	v := &Vertex{X: at.X, Y: at.Y}
	b.diagram.Vertices = append(b.diagram.Vertices, v)

	terminate(prevEdge, v)
	terminate(nextEdge, v)

	cellLeft := b.cellFor(left)
	cellRight := b.cellFor(right)

	heLeft := &Halfedge{Cell: cellLeft, Start: v}
	heRight := &Halfedge{Cell: cellRight, End: v}
	heLeft.Twin = heRight
	heRight.Twin = heLeft

	cellLeft.Halfedges = append(cellLeft.Halfedges, heLeft)
	cellRight.Halfedges = append(cellRight.Halfedges, heRight)
	b.diagram.Edges = append(b.diagram.Edges, heLeft)

	return heLeft
}

// terminate sets the far endpoint of an edge handle and its twin to v, once
// the sweep has resolved where that bisector actually ends.
func terminate(edge voronoi.EdgeHandle, v *Vertex) {
	he, ok := edge.(*Halfedge)
	if !ok || he == nil {
		return
	}
	he.End = v
	he.Twin.Start = v
}

// Build finalizes every cell's half-edges into counterclockwise order
// around its site, the way a DCEL's face traversal expects, by sorting on
// the angle from the site to each half-edge's start point.
func (b *Builder) Build() {
	for _, c := range b.diagram.Cells {
		for _, he := range c.Halfedges {
			he.angle = halfedgeAngle(c, he)
		}
		sort.Slice(c.Halfedges, func(i, j int) bool {
			return c.Halfedges[i].angle < c.Halfedges[j].angle
		})
		for i, he := range c.Halfedges {
			he.Next = c.Halfedges[(i+1)%len(c.Halfedges)]
		}
	}
}

func halfedgeAngle(c *Cell, he *Halfedge) float64 {
	p := he.Start
	if p == nil {
		p = he.End
	}
	if p == nil {
		return 0
	}
	return math.Atan2(p.Y-float64(c.Site.Point0.Y), p.X-float64(c.Site.Point0.X))
}

// Diagram returns the assembled result. Only meaningful after Construct has
// called Build.
func (b *Builder) Diagram() *Diagram {
	return b.diagram
}
