package voronoi

import (
	"go.uber.org/zap"

	"github.com/vorolib/voronoi/pkg/logger"
)

// Voronoi sweeps a set of point and segment sites into a planar Voronoi
// diagram, reporting the result through an OutputBuilder. Build one with
// New, add sites with InsertPoint/InsertSegment, then call Construct once.
type Voronoi struct {
	log          *logger.Logger
	ulpTolerance uint64

	sites   *siteQueue
	circles *circleQueue
	bridges *endpointBridge
	beach   *beachTree

	sweepX float64
}

// New builds a Voronoi engine ready to accept sites.
func New(opts ...Option) *Voronoi {
	v := &Voronoi{
		ulpTolerance: defaultULPTolerance,
		sites:        newSiteQueue(),
		circles:      newCircleQueue(),
		bridges:      newEndpointBridge(),
		beach:        newBeachTree(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// InsertPoint adds a single-point site.
func (v *Voronoi) InsertPoint(p Point) {
	v.sites.addPoint(p)
}

// InsertSegment adds a segment site between two distinct points. Segments
// must not intersect each other or any point site except at shared
// endpoints; Construct does not validate this.
func (v *Voronoi) InsertSegment(a, b Point) {
	if pointEqual(a, b) {
		panic(&FatalError{Kind: ErrInvariantViolation, Msg: "segment endpoints must be distinct"})
	}
	v.sites.addSegment(a, b)
}

// Construct runs the sweep to completion, driving output through builder,
// and returns a *FatalError if an internal invariant does not hold. This is
// the only panic/recover boundary in the package: a failed construction
// never hands back a partially built diagram.
func (v *Voronoi) Construct(output OutputBuilder) (err error) {
	defer recoverFatal(&err)

	v.sites.init()
	output.Reserve(len(v.sites.sites))

	if len(v.sites.sites) == 0 {
		output.Build()
		return nil
	}

	if len(v.sites.sites) == 1 {
		output.ProcessSingleSite(v.sites.sites[0])
		output.Build()
		return nil
	}

	v.initBeachLine(output)

	for !v.sites.empty() || !v.circles.empty() {
		if v.circles.empty() {
			v.processSiteEventRun(output)
		} else if v.sites.empty() {
			v.processCircleEvent(output)
		} else {
			site := v.sites.peek()
			circle := v.circles.top()
			if siteBeforeCircle(site, circle, v.ulpTolerance) {
				v.processSiteEventRun(output)
			} else {
				v.processCircleEvent(output)
			}
		}
	}

	output.Build()
	return nil
}

func (v *Voronoi) debug(msg string, fields ...zap.Field) {
	if v.log != nil {
		v.log.Debug(msg, fields...)
	}
}

// processSiteEventRun consumes one site, plus, when that site is a segment,
// any further segment sites sharing its Point0, each through
// processSiteEvent.
func (v *Voronoi) processSiteEventRun(output OutputBuilder) {
	from := v.sites.cursor
	last := v.sites.runEnd(from)
	for v.sites.cursor < last {
		s := v.sites.advance()
		v.sweepX = s.x0()
		v.processSiteEvent(s, output)
	}
}

// processSiteEvent locates where s belongs on the beach line via the lower
// bound of the single-site key (s,s), then handles the three positional
// cases: past the last transition, before the first, or splitting one in
// the middle. initBeachLine guarantees the beach line already holds at
// least one node by the time the construction loop reaches here.
func (v *Voronoi) processSiteEvent(s *SiteEvent, output OutputBuilder) {
	v.debug("site event", zap.Int("initial_index", s.InitialIndex), zap.String("category", s.Category.String()))

	for _, bridgeNode := range v.bridges.drain(s.Point0) {
		v.beach.remove(bridgeNode)
	}

	if v.beach.empty() {
		panic(&FatalError{Kind: ErrInvariantViolation, Msg: "beach line empty after initialization"})
	}

	query := &arc{left: s, right: s}
	rightIt := v.beach.lowerBound(query, v.nodeLess)

	switch {
	case rightIt == nil:
		v.insertAtEnd(s, output)
	case rightIt == v.beach.first():
		v.insertAtBegin(s, rightIt, output)
	default:
		v.insertInMiddle(s, rightIt, output)
	}
}

func (v *Voronoi) insertAtEnd(s *SiteEvent, output OutputBuilder) {
	last := v.beach.last()
	arcSite := last.arc.right

	newHandle := v.insertNewArc(arcSite, arcSite, s, nil, output)
	v.activateCircle(last.arc.left, last.arc.right, s, newHandle)
}

// insertAtBegin splits the beach line's first arc with the new site s. The
// new (arcSite, s) transition is inserted before rightIt as a fresh node,
// but the circle candidate for the resulting (s, rightIt.left, rightIt.right)
// triple is registered on rightIt itself — the original, unmodified node —
// not on the freshly created one, matching insertInMiddle's convention of
// always attaching a candidate to the node whose key's left site is the
// middle, collapsing arc of that candidate's triple.
func (v *Voronoi) insertAtBegin(s *SiteEvent, rightIt *bnode, output OutputBuilder) {
	arcSite := rightIt.arc.left
	rightSite := rightIt.arc.right

	v.insertNewArc(arcSite, arcSite, s, rightIt, output)
	if s.IsSegment() {
		s.Invert()
	}
	v.activateCircle(s, arcSite, rightSite, rightIt)
}

func (v *Voronoi) insertInMiddle(s *SiteEvent, rightIt *bnode, output OutputBuilder) {
	deactivateCircle(rightIt.arc.circle)
	rightIt.arc.circle = nil

	arc2 := rightIt.arc.left
	site3 := rightIt.arc.right

	prevNode := rightIt.previous
	arc1 := prevNode.arc.right
	site1 := prevNode.arc.left

	newHandle := v.insertNewArc(arc1, arc2, s, rightIt, output)
	v.activateCircle(site1, arc1, s, newHandle)

	if s.IsSegment() {
		s.Invert()
	}
	v.activateCircle(s, arc2, site3, rightIt)
}

// initBeachLine seeds the beach line before the main dispatch loop runs.
// Construct only calls this once at least two sites are present. The first
// sorted site anchors a maximal run of sites sharing its x coordinate that
// are themselves vertical (trivially true for a point site, true for a
// segment site only when the segment's own endpoints share an x); a run of
// exactly one site falls through to the ordinary two-site split, a longer
// run is degenerate and gets threaded directly.
func (v *Voronoi) initBeachLine(output OutputBuilder) {
	if v.sites.empty() {
		return
	}

	first := v.sites.sites[0]
	skip := 0
	for v.sites.cursor < len(v.sites.sites) {
		s := v.sites.sites[v.sites.cursor]
		if s.x0() != first.x0() {
			break
		}
		if s.IsSegment() && !s.IsVertical() {
			break
		}
		v.sites.cursor++
		skip++
	}

	if skip == 1 {
		v.initBeachLineDefault(output)
	} else {
		v.initBeachLineCollinear(v.sites.sites[:skip], output)
	}
}

// initBeachLineDefault handles the common case: the first sorted site's
// sole arc is split by the second exactly as any later site would split an
// existing arc, via the same insertNewArc the main loop uses.
func (v *Voronoi) initBeachLineDefault(output OutputBuilder) {
	first := v.sites.sites[v.sites.cursor-1]
	second := v.sites.advance()
	v.sweepX = second.x0()
	v.insertNewArc(first, first, second, nil, output)
}

// initBeachLineCollinear threads a maximal leading run of same-x (and, for
// any segment among them, self-vertical) sites directly onto the beach
// line: consecutive arcs meeting at zero sweep distance have no breakpoint
// geometry to split, so each pair gets one node keyed (first, second)
// rather than going through insertNewArc's two-key split. Only the first of
// the twin edge handles InsertNewEdge returns is kept on the node; the
// second is the same bisector's other direction and is not separately
// tracked here.
func (v *Voronoi) initBeachLineCollinear(run []*SiteEvent, output OutputBuilder) {
	v.sweepX = run[0].x0()
	for i := 0; i+1 < len(run); i++ {
		first, second := run[i], run[i+1]
		edgeA, _ := output.InsertNewEdge(first, second)
		v.beach.insertBefore(nil, &arc{left: first, right: second, edge: edgeA})
	}
}

// insertNewArc splits the transition ending at position into (arc1, s) and
// (s, arc2), wiring a fresh bisector between arc2 and s, and — if s is
// itself an open segment — plants a temporary bridge placeholder for its
// far endpoint. Returns the node holding the left key.
func (v *Voronoi) insertNewArc(arc1, arc2, s *SiteEvent, position *bnode, output OutputBuilder) *bnode {
	leftKey := &arc{left: arc1, right: s}
	rightKey := &arc{left: s, right: arc2}

	if s.IsSegment() {
		rightKey.left.Invert()
	}

	edgeA, edgeB := output.InsertNewEdge(arc2, s)
	rightKey.edge = edgeA
	leftKey.edge = edgeB

	rightNode := v.beach.insertBefore(position, rightKey)
	leftNode := v.beach.insertBefore(rightNode, leftKey)

	if s.IsSegment() {
		// Land the bridge between leftKey and rightKey: it stands in for
		// S's own arc, which sits between the two transitions bounding it.
		bridge := &arc{left: s, right: s.invertedCopy()}
		bridgeNode := v.beach.insertBefore(rightNode, bridge)
		v.bridges.push(s.Point1, bridgeNode)
	}

	return leftNode
}

// activateCircle registers a candidate circle event for the arc triple
// (s1, s2, s3) — s2 is the middle, collapsing arc — attaching it to node so
// a later transition can find and deactivate it if the triple stops being
// adjacent before the sweep reaches it.
func (v *Voronoi) activateCircle(s1, s2, s3 *SiteEvent, node *bnode) {
	c, ok := circleFormation(s1, s2, s3)
	if !ok {
		return
	}
	c.node = node
	node.arc.circle = c
	v.circles.push(c)
}

// processCircleEvent pops the queue's front event, and if it is still
// active, collapses the arc it names. A circle event is
// attached to the beach-line node whose key's left site is the collapsing
// arc; that node's previous sibling is the transition bounding the
// collapsing arc from the other side. Collapsing merges those two
// transitions into one — the previous node is kept and rewritten, the
// node the circle was attached to is removed.
func (v *Voronoi) processCircleEvent(output OutputBuilder) {
	c := v.circles.pop()
	if c == nil || !c.Active {
		return
	}
	v.sweepX = c.LowerX

	right := c.node
	left := right.previous
	if left == nil {
		panic(&FatalError{Kind: ErrInvariantViolation, Msg: "circle event fired on a boundary arc"})
	}
	nextAfterRight := right.next

	deactivateCircle(left.arc.circle)
	left.arc.circle = nil
	if nextAfterRight != nil {
		deactivateCircle(nextAfterRight.arc.circle)
		nextAfterRight.arc.circle = nil
	}

	beforeMiddle := left.arc.left
	afterMiddle := right.arc.right

	edge := output.InsertNewEdgeFromCircle(beforeMiddle, afterMiddle, c, left.arc.edge, right.arc.edge)

	left.arc.right = afterMiddle
	left.arc.edge = edge

	v.beach.remove(right)

	if left.previous != nil {
		v.activateCircle(left.previous.arc.left, beforeMiddle, afterMiddle, left)
	}
	if left.next != nil {
		v.activateCircle(beforeMiddle, afterMiddle, left.next.arc.right, left.next)
	}
}
