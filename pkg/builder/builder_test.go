package builder

import (
	"testing"

	"github.com/vorolib/voronoi/pkg/voronoi"
)

func TestBuilderTwoPointDiagram(t *testing.T) {
	b := New()
	v := voronoi.New()
	v.InsertPoint(voronoi.Point{X: 0, Y: 0})
	v.InsertPoint(voronoi.Point{X: 10, Y: 0})

	if err := v.Construct(b); err != nil {
		t.Fatalf("Construct: %v", err)
	}

	d := b.Diagram()
	if len(d.Cells) != 2 {
		t.Fatalf("Cells = %d, want 2", len(d.Cells))
	}
	if len(d.Edges) != 1 {
		t.Fatalf("Edges = %d, want 1", len(d.Edges))
	}
	edge := d.Edges[0]
	if edge.Twin == nil || edge.Twin.Twin != edge {
		t.Fatal("edge and its twin must point back at each other")
	}
	if edge.Cell == edge.Twin.Cell {
		t.Fatal("an edge's two sides must belong to different cells")
	}
}

func TestBuilderSingleSiteDiagram(t *testing.T) {
	b := New()
	v := voronoi.New()
	v.InsertPoint(voronoi.Point{X: 3, Y: 4})

	if err := v.Construct(b); err != nil {
		t.Fatalf("Construct: %v", err)
	}

	d := b.Diagram()
	if len(d.Cells) != 1 {
		t.Fatalf("Cells = %d, want 1", len(d.Cells))
	}
	if len(d.Cells[0].Halfedges) != 0 {
		t.Fatal("a lone site's cell has no bounding half-edges")
	}
}

// eulerResidual computes n_edges - n_vertices - n_cells + 1, the count of
// connected components at infinity the Euler-like relation predicts. A
// bounded, connected diagram built from a small hand-picked input has few
// enough unbounded rays that this stays small and non-negative; a large or
// negative residual signals a structurally broken count.
func eulerResidual(d *Diagram) int {
	return len(d.Edges) - len(d.Vertices) - len(d.Cells) + 1
}

func TestBuilderThreeCollinearPointsSameX(t *testing.T) {
	b := New()
	v := voronoi.New()
	v.InsertPoint(voronoi.Point{X: 5, Y: 0})
	v.InsertPoint(voronoi.Point{X: 5, Y: 5})
	v.InsertPoint(voronoi.Point{X: 5, Y: 10})

	if err := v.Construct(b); err != nil {
		t.Fatalf("Construct: %v", err)
	}

	d := b.Diagram()
	if len(d.Cells) != 3 {
		t.Fatalf("Cells = %d, want 3", len(d.Cells))
	}
	if len(d.Vertices) != 0 {
		t.Fatalf("Vertices = %d, want 0 (collinear sites never converge)", len(d.Vertices))
	}
	if len(d.Edges) != 2 {
		t.Fatalf("Edges = %d, want 2 (one per consecutive collinear pair)", len(d.Edges))
	}
	if r := eulerResidual(d); r < 0 || r > 2 {
		t.Fatalf("Euler residual = %d, want a small non-negative count of components at infinity", r)
	}
}

func TestBuilderSquareOfSegmentsFoldsSharedCorners(t *testing.T) {
	build := func() *Diagram {
		b := New()
		v := voronoi.New()
		v.InsertSegment(voronoi.Point{X: 200, Y: 200}, voronoi.Point{X: 200, Y: 400})
		v.InsertSegment(voronoi.Point{X: 200, Y: 400}, voronoi.Point{X: 400, Y: 400})
		v.InsertSegment(voronoi.Point{X: 400, Y: 400}, voronoi.Point{X: 400, Y: 200})
		v.InsertSegment(voronoi.Point{X: 400, Y: 200}, voronoi.Point{X: 200, Y: 200})
		v.InsertSegment(voronoi.Point{X: 529, Y: 242}, voronoi.Point{X: 367, Y: 107})
		if err := v.Construct(b); err != nil {
			t.Fatalf("Construct: %v", err)
		}
		return b.Diagram()
	}

	d := build()
	// 5 segments * 3 site events each = 15 raw sites; the square's 4 shared
	// corners each fold two endpoint sites into one, leaving 11 cells.
	if len(d.Cells) != 11 {
		t.Fatalf("Cells = %d, want 11 after folding the square's 4 shared corners", len(d.Cells))
	}
	if r := eulerResidual(d); r < 0 || r > 2 {
		t.Fatalf("Euler residual = %d, want a small non-negative count of components at infinity", r)
	}

	second := build()
	if len(second.Cells) != len(d.Cells) || len(second.Edges) != len(d.Edges) || len(second.Vertices) != len(d.Vertices) {
		t.Fatalf("non-deterministic construction: %d/%d/%d vs %d/%d/%d",
			len(d.Cells), len(d.Edges), len(d.Vertices),
			len(second.Cells), len(second.Edges), len(second.Vertices))
	}
}

func TestBuilderTwoCrossingFreeSegments(t *testing.T) {
	b := New()
	v := voronoi.New()
	v.InsertSegment(voronoi.Point{X: 498, Y: 224}, voronoi.Point{X: 475, Y: 335})
	v.InsertSegment(voronoi.Point{X: 250, Y: 507}, voronoi.Point{X: 60, Y: 77})

	if err := v.Construct(b); err != nil {
		t.Fatalf("Construct: %v", err)
	}

	d := b.Diagram()
	if len(d.Cells) != 6 {
		t.Fatalf("Cells = %d, want 6 (4 endpoints + 2 segments, no coincidences)", len(d.Cells))
	}
	if r := eulerResidual(d); r < 0 || r > 2 {
		t.Fatalf("Euler residual = %d, want a small non-negative count of components at infinity", r)
	}
	for _, e := range d.Edges {
		if e.Twin == nil || e.Twin.Twin != e {
			t.Fatal("every edge and its twin must point back at each other")
		}
		if e.Cell == e.Twin.Cell {
			t.Fatal("an edge's two sides must belong to different cells")
		}
	}
}

func TestBuilderEmptyDiagram(t *testing.T) {
	b := New()
	v := voronoi.New()

	if err := v.Construct(b); err != nil {
		t.Fatalf("Construct: %v", err)
	}
	d := b.Diagram()
	if len(d.Cells) != 0 || len(d.Edges) != 0 || len(d.Vertices) != 0 {
		t.Fatal("an empty input must produce an empty diagram")
	}
}
