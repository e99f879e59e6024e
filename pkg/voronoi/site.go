package voronoi

// SourceCategory tags where a SiteEvent came from. Order matters: it is the
// tiebreak siteLess falls back to when two sites share a point and no other
// predicate separates them.
type SourceCategory int8

const (
	SinglePoint SourceCategory = iota
	SegmentStartPoint
	SegmentEndPoint
	InitialSegment
	ReverseSegment
)

func (c SourceCategory) String() string {
	switch c {
	case SinglePoint:
		return "single-point"
	case SegmentStartPoint:
		return "segment-start"
	case SegmentEndPoint:
		return "segment-end"
	case InitialSegment:
		return "initial-segment"
	case ReverseSegment:
		return "reverse-segment"
	default:
		return "unknown"
	}
}

// SiteEvent is one entry of the site queue: either a plain point (Point0 ==
// Point1) or a segment (Point0 != Point1, oriented Point0 -> Point1). Only
// the two INITIAL_SEGMENT/REVERSE_SEGMENT categories ever carry
// Point0 != Point1; SEGMENT_START_POINT and SEGMENT_END_POINT are the
// segment's endpoints processed as ordinary points, tagged for provenance so
// the output builder can stitch a segment's three site events back together
// via InitialIndex.
//
// SiteEvent is always handled by pointer: beach-line keys alias the same
// SiteEvent the site queue owns, so flipping inverse on one propagates to
// every key that references it.
type SiteEvent struct {
	Point0, Point1 Point
	Category       SourceCategory

	// InitialIndex groups a segment's three site events (start, end,
	// segment) together; SortedIndex is the position siteQueue.init assigns
	// after sorting.
	InitialIndex int
	SortedIndex  int

	inverse bool
}

// NewPointSite builds a SINGLE_POINT site.
func NewPointSite(p Point, initialIndex int) *SiteEvent {
	return &SiteEvent{Point0: p, Point1: p, Category: SinglePoint, InitialIndex: initialIndex}
}

// IsSegment reports whether s carries an actual open segment rather than a
// point (including a segment's own endpoints, which are point sites).
func (s *SiteEvent) IsSegment() bool {
	return !pointEqual(s.Point0, s.Point1)
}

// IsVertical reports whether a segment site's endpoints share an x
// coordinate. Only meaningful when IsSegment is true.
func (s *SiteEvent) IsVertical() bool {
	return s.Point0.X == s.Point1.X
}

// IsInverse reports the mutable direction flag toggled by Invert.
func (s *SiteEvent) IsInverse() bool {
	return s.inverse
}

// Invert swaps a segment site's endpoints and flips the inverse flag in
// place. Panics if s is not a segment; callers must guard with IsSegment.
func (s *SiteEvent) Invert() {
	if !s.IsSegment() {
		panic(&FatalError{Kind: ErrInvariantViolation, Msg: "invert called on a point site"})
	}
	s.Point0, s.Point1 = s.Point1, s.Point0
	s.inverse = !s.inverse
}

// invertedCopy returns a fresh SiteEvent with endpoints swapped and inverse
// toggled relative to s, sharing s's indices but no pointer identity with
// it. Used only for the endpoint-bridge placeholder in insertNewArc.
func (s *SiteEvent) invertedCopy() *SiteEvent {
	cp := *s
	cp.Point0, cp.Point1 = cp.Point1, cp.Point0
	cp.inverse = !cp.inverse
	return &cp
}

// x0/y0/x1/y1 read as float64 for use in the numeric kernel's fast path.
func (s *SiteEvent) x0() float64 { return float64(s.Point0.X) }
func (s *SiteEvent) y0() float64 { return float64(s.Point0.Y) }
func (s *SiteEvent) x1() float64 { return float64(s.Point1.X) }
func (s *SiteEvent) y1() float64 { return float64(s.Point1.Y) }
