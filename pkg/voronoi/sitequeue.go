package voronoi

import "sort"

// siteQueue holds every site event, sorted for the sweep, with a cursor
// tracking how far the construction loop has consumed it. Segments
// contribute three site events each — start point, end point, and the
// segment itself — which addSegment assigns a shared InitialIndex before
// sorting.
type siteQueue struct {
	sites  []*SiteEvent
	cursor int
}

func newSiteQueue() *siteQueue {
	return &siteQueue{}
}

func (q *siteQueue) addPoint(p Point) *SiteEvent {
	s := NewPointSite(p, len(q.sites))
	q.sites = append(q.sites, s)
	return s
}

// addSegment appends the three site events a segment contributes: its start
// point, its end point, and the open segment itself, oriented so Point0 is
// lexicographically smaller than Point1 (InitialSegment when the caller's
// order already matched that, ReverseSegment when it had to be swapped).
func (q *siteQueue) addSegment(p0, p1 Point) (*SiteEvent, *SiteEvent, *SiteEvent) {
	idx := len(q.sites)

	start, end := p0, p1
	category := InitialSegment
	if pointLess(p1, p0) {
		start, end = p1, p0
		category = ReverseSegment
	}

	startSite := &SiteEvent{Point0: start, Point1: start, Category: SegmentStartPoint, InitialIndex: idx}
	endSite := &SiteEvent{Point0: end, Point1: end, Category: SegmentEndPoint, InitialIndex: idx}
	segSite := &SiteEvent{Point0: start, Point1: end, Category: category, InitialIndex: idx}

	q.sites = append(q.sites, startSite, endSite, segSite)
	return startSite, endSite, segSite
}

// init sorts the accumulated sites by event order, folds duplicates (equal
// Point0 and Point1, whatever their Category) into a single site, keeping the
// first in sort order, and reassigns SortedIndex over the survivors. Two
// segments that share an endpoint each contribute a SegmentStartPoint or
// SegmentEndPoint site whose Point0 is just that shared corner
// (Point0 == Point1), so a corner touched by several segments produces
// several point sites at the same location, adjacent after sorting; without
// folding them, the corner would get one beach-line arc and one cell per
// incident segment instead of one arc and cell for the corner itself.
func (q *siteQueue) init() {
	sort.SliceStable(q.sites, func(i, j int) bool {
		return siteLess(q.sites[i], q.sites[j])
	})

	deduped := q.sites[:0]
	for i, s := range q.sites {
		if i > 0 {
			prev := deduped[len(deduped)-1]
			if pointEqual(prev.Point0, s.Point0) && pointEqual(prev.Point1, s.Point1) {
				continue
			}
		}
		deduped = append(deduped, s)
	}
	q.sites = deduped

	for i, s := range q.sites {
		s.SortedIndex = i
	}
	q.cursor = 0
}

func (q *siteQueue) empty() bool {
	return q.cursor >= len(q.sites)
}

func (q *siteQueue) peek() *SiteEvent {
	if q.empty() {
		return nil
	}
	return q.sites[q.cursor]
}

func (q *siteQueue) advance() *SiteEvent {
	s := q.peek()
	q.cursor++
	return s
}

// runEnd returns the index just past the end of the atomic dispatch run
// starting at from. A non-segment site is always a run of one: only a
// segment site's own event pulls in further segment sites sharing its
// Point0 (other segments starting at the same point), so a plain point never
// gets silently merged with whatever else happens to sit at its coordinates.
func (q *siteQueue) runEnd(from int) int {
	if !q.sites[from].IsSegment() {
		return from + 1
	}
	last := from + 1
	for last < len(q.sites) && pointEqual(q.sites[last].Point0, q.sites[from].Point0) && q.sites[last].IsSegment() {
		last++
	}
	return last
}
