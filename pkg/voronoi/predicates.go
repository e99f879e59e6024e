package voronoi

import (
	"math"
	"math/big"
)

// siteLess orders two site events for the sweep: x0 first, then y0, then
// SourceCategory as a final tiebreak when both coincide (see DESIGN.md for
// why category, not orientation, breaks the tie).
func siteLess(a, b *SiteEvent) bool {
	if a.x0() != b.x0() {
		return a.x0() < b.x0()
	}
	if a.y0() != b.y0() {
		return a.y0() < b.y0()
	}
	return a.Category < b.Category
}

// siteBeforeCircle reports whether a site event must be dispatched before a
// circle event's lower point is reached, tolerant to ulpTolerance ULPs so
// near-coincident sweep positions do not thrash.
func siteBeforeCircle(s *SiteEvent, c *CircleEvent, ulpTolerance uint64) bool {
	if ulpEqual(s.x0(), c.LowerX, ulpTolerance) {
		return false
	}
	return s.x0() < c.LowerX
}

// breakpointY finds the y-coordinate where the two arcs bounding a
// transition meet on a beach line whose directrix (sweepline) is the
// vertical line x = sweepX — this sweeps left to right, so the beach line
// is ordered top to bottom by y, and a transition's position is a y value,
// not an x one. It dispatches on the site kinds involved: point/point is a
// parabola-parabola intersection, point/segment is a parabola with the
// segment's supporting line as its far directrix, and segment/segment is
// linear (the two arcs' equidistant-from-directrix loci are each already a
// straight line against a vertical sweep, so their intersection needs no
// quadratic at all).
func breakpointY(left, right *SiteEvent, sweepX float64) float64 {
	switch {
	case !left.IsSegment() && !right.IsSegment():
		return pointPointBreakpointY(left, right, sweepX)
	case left.IsSegment() && right.IsSegment():
		return segmentSegmentBreakpointY(left, right, sweepX)
	case !left.IsSegment():
		return pointSegmentBreakpointY(left, right, sweepX, true)
	default:
		return pointSegmentBreakpointY(right, left, sweepX, false)
	}
}

// breakpointErrorBound is the relative slack the float64 fast path is
// trusted within, mirroring crossErrorBound in numeric.go. A discriminant
// landing inside this band of zero means the two breakpoint candidates
// (or the breakpoint and a degenerate root) are close enough that a plain
// float64 sqrt can flip which one comes out ahead of the other; that case
// escalates to a higher-precision recomputation instead.
const breakpointErrorBound = 1e-9

// breakpointPrecisionBits is the mantissa width used by the escalation
// tier. There is no exact rational form for a breakpoint (it is the root
// of a quadratic whose coefficients already involve one), so unlike
// exactCrossSign's big.Int arithmetic, "exact" here means high-precision
// big.Float rather than infinite precision — see DESIGN.md.
const breakpointPrecisionBits = 200

func newBigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(breakpointPrecisionBits).SetFloat64(v)
}

func pointPointBreakpointY(left, right *SiteEvent, sweepX float64) float64 {
	rfocx, rfocy := right.x0(), right.y0()
	lfocx, lfocy := left.x0(), left.y0()

	pbx2 := rfocx - sweepX
	plbx2 := lfocx - sweepX

	if pbx2 == 0 && plbx2 == 0 {
		return (lfocy + rfocy) / 2
	}
	if pbx2 == 0 {
		return rfocy
	}
	if plbx2 == 0 {
		return lfocy
	}

	hl := lfocy - rfocy
	aby2 := 1/pbx2 - 1/plbx2
	b := hl / plbx2
	if aby2 == 0 {
		return (rfocy + lfocy) / 2
	}

	c := hl*hl/(-2*plbx2) - lfocx + plbx2/2 + rfocx - pbx2/2
	disc := b*b - 2*aby2*c
	bound := breakpointErrorBound * (b*b + math.Abs(2*aby2*c) + 1)
	if disc < bound {
		return pointPointBreakpointYPrecise(lfocx, lfocy, rfocx, rfocy, sweepX)
	}
	return (-b+math.Sqrt(disc))/aby2 + rfocy
}

// pointPointBreakpointYPrecise recomputes pointPointBreakpointY's formula
// with a wide big.Float mantissa instead of float64, for the near-tangent
// configurations where the fast path's sqrt argument is close enough to
// zero (or to going negative) that rounding in the subtraction feeding it
// can move the result by more than a ULP or two.
func pointPointBreakpointYPrecise(lfocx, lfocy, rfocx, rfocy, sweepX float64) float64 {
	lfocxB, lfocyB := newBigFloat(lfocx), newBigFloat(lfocy)
	rfocxB, rfocyB := newBigFloat(rfocx), newBigFloat(rfocy)
	sweepXB := newBigFloat(sweepX)

	pbx2 := new(big.Float).Sub(rfocxB, sweepXB)
	plbx2 := new(big.Float).Sub(lfocxB, sweepXB)
	hl := new(big.Float).Sub(lfocyB, rfocyB)

	one := newBigFloat(1)
	invPbx2 := new(big.Float).Quo(one, pbx2)
	invPlbx2 := new(big.Float).Quo(one, plbx2)
	aby2 := new(big.Float).Sub(invPbx2, invPlbx2)

	b := new(big.Float).Quo(hl, plbx2)

	hl2 := new(big.Float).Mul(hl, hl)
	c := new(big.Float).Quo(hl2, new(big.Float).Mul(newBigFloat(-2), plbx2))
	c.Sub(c, lfocxB)
	c.Add(c, new(big.Float).Quo(plbx2, newBigFloat(2)))
	c.Add(c, rfocxB)
	c.Sub(c, new(big.Float).Quo(pbx2, newBigFloat(2)))

	disc := new(big.Float).Sub(new(big.Float).Mul(b, b), new(big.Float).Mul(newBigFloat(2), new(big.Float).Mul(aby2, c)))
	if disc.Sign() < 0 {
		disc.SetFloat64(0)
	}
	sq := new(big.Float).Sqrt(disc)

	y := new(big.Float).Add(new(big.Float).Neg(b), sq)
	y.Quo(y, aby2)
	y.Add(y, rfocyB)

	result, _ := y.Float64()
	return result
}

// siteLine returns the coefficients of the unit-normal line equation
// a*x + b*y + c = 0 through a segment site's two endpoints, oriented by the
// site's inverse flag so a point on the swept-away side gives a positive
// signed distance.
func siteLine(s *SiteEvent) (a, b, c float64) {
	dx := s.x1() - s.x0()
	dy := s.y1() - s.y0()
	length := math.Hypot(dx, dy)
	a = dy / length
	b = -dx / length
	if s.IsInverse() {
		a, b = -a, -b
	}
	c = -(a*s.x0() + b*s.y0())
	return a, b, c
}

// pointSegmentBreakpointY solves for the y at which a point focus's
// distance to the sweep directrix and a line site's distance to the
// directrix are both equal to their respective distance to (x, y):
//
//	(x - px)^2 + (y - py)^2 = (sweepX - x)^2          [focus/directrix]
//	a*x + b*y + c           = sweepX - x              [line/directrix]
//
// Substituting the second equation's x into the first yields a quadratic in
// y; pointIsLeft selects which of its two roots corresponds to the
// transition where the point site sits above the segment site on the beach
// line, mirroring how the point/point case picks +sqrt for one focus
// ordering and -sqrt for the other.
func pointSegmentBreakpointY(point, seg *SiteEvent, sweepX float64, pointIsLeft bool) float64 {
	px, py := point.x0(), point.y0()

	if sweepX == px {
		return py
	}

	a, b, c := siteLine(seg)
	ap1 := a + 1
	if ap1 == 0 {
		return py
	}

	k := 2 * (sweepX - px)

	qa := ap1
	qb := -(2*ap1*py + k*b)
	qc := -(ap1*(sweepX*sweepX-px*px-py*py) - k*sweepX + k*c)

	disc := qb*qb - 4*qa*qc
	bound := breakpointErrorBound * (qb*qb + math.Abs(4*qa*qc) + 1)
	if disc < bound {
		return pointSegmentBreakpointYPrecise(qa, qb, qc, pointIsLeft)
	}
	sq := math.Sqrt(disc)
	if pointIsLeft {
		return (-qb + sq) / (2 * qa)
	}
	return (-qb - sq) / (2 * qa)
}

// pointSegmentBreakpointYPrecise recomputes the quadratic root formula in
// high-precision big.Float for near-tangent point/segment configurations,
// the same escalation pointPointBreakpointYPrecise performs for the
// point/point case.
func pointSegmentBreakpointYPrecise(qa, qb, qc float64, pointIsLeft bool) float64 {
	qaB, qbB, qcB := newBigFloat(qa), newBigFloat(qb), newBigFloat(qc)

	disc := new(big.Float).Sub(new(big.Float).Mul(qbB, qbB), new(big.Float).Mul(newBigFloat(4), new(big.Float).Mul(qaB, qcB)))
	if disc.Sign() < 0 {
		disc.SetFloat64(0)
	}
	sq := new(big.Float).Sqrt(disc)

	numer := new(big.Float).Neg(qbB)
	if pointIsLeft {
		numer.Add(numer, sq)
	} else {
		numer.Sub(numer, sq)
	}
	y := new(big.Float).Quo(numer, new(big.Float).Mul(newBigFloat(2), qaB))

	result, _ := y.Float64()
	return result
}

// segmentSegmentBreakpointY intersects the two lines "distance to my
// directrix equals distance to my line" produces for each segment site —
// each linear in (x, y) against a fixed sweepX — and solves the resulting
// 2x2 linear system for y directly.
func segmentSegmentBreakpointY(left, right *SiteEvent, sweepX float64) float64 {
	a1, b1, c1 := siteLine(left)
	a2, b2, c2 := siteLine(right)

	denom := (a2+1)*b1 - (a1+1)*b2
	numer := (a1+1)*(c2-sweepX) - (a2+1)*(c1-sweepX)
	bound := breakpointErrorBound * (math.Abs((a2+1)*b1) + math.Abs((a1+1)*b2) + 1)
	if math.Abs(denom) < bound {
		if denom == 0 {
			return (left.y0() + right.y0()) / 2
		}
		return segmentSegmentBreakpointYPrecise(a1, b1, c1, a2, b2, c2, sweepX, left.y0(), right.y0())
	}
	return numer / denom
}

// segmentSegmentBreakpointYPrecise recomputes the 2x2 linear solve in
// high-precision big.Float when the two segments' lines are nearly
// parallel to each other from the directrix's perspective: denom is small
// but nonzero, so a plain float64 division amplifies whatever rounding
// crept into computing denom in the first place. leftY0/rightY0 back the
// same midpoint fallback the fast path uses if it turns out, at full
// precision, that the lines really are parallel.
func segmentSegmentBreakpointYPrecise(a1, b1, c1, a2, b2, c2, sweepX, leftY0, rightY0 float64) float64 {
	a1B, b1B, c1B := newBigFloat(a1), newBigFloat(b1), newBigFloat(c1)
	a2B, b2B, c2B := newBigFloat(a2), newBigFloat(b2), newBigFloat(c2)
	sweepXB := newBigFloat(sweepX)
	one := newBigFloat(1)

	a1p1 := new(big.Float).Add(a1B, one)
	a2p1 := new(big.Float).Add(a2B, one)

	denom := new(big.Float).Sub(new(big.Float).Mul(a2p1, b1B), new(big.Float).Mul(a1p1, b2B))
	if denom.Sign() == 0 {
		return (leftY0 + rightY0) / 2
	}

	numer := new(big.Float).Sub(
		new(big.Float).Mul(a1p1, new(big.Float).Sub(c2B, sweepXB)),
		new(big.Float).Mul(a2p1, new(big.Float).Sub(c1B, sweepXB)),
	)

	y := new(big.Float).Quo(numer, denom)
	result, _ := y.Float64()
	return result
}

// nodeLess is node_comparison: the beach-line ordered-dictionary comparator.
// Two keys are ordered by the y-coordinate of the transition they
// represent, evaluated at the sweep's current directrix. A tie is broken by
// the SortedIndex of each key's right site — the site that defined that
// transition, so a newer transition always yields to an older one at equal
// y — and only if that also ties (both keys share the same right site, as
// when a query key is compared against itself) does insertion sequence
// step in purely to keep the tree a strict weak order.
func (v *Voronoi) nodeLess(a, b *arc) bool {
	ya := breakpointY(a.left, a.right, v.sweepX)
	yb := breakpointY(b.left, b.right, v.sweepX)
	if ya != yb {
		return ya < yb
	}
	if a.right.SortedIndex != b.right.SortedIndex {
		return a.right.SortedIndex < b.right.SortedIndex
	}
	return a.seq < b.seq
}

// circleFormation computes the circle event a triple of adjacent beach-line
// arcs would generate, reporting whether the sweep will actually reach it
// as a vertex. Three point sites (PPP) go through the exact fast/exact
// integer path unchanged; any triple involving a segment site (PPS, PSS,
// SSS) is resolved with a floating-point circumcircle over each segment's
// point-on-the-fly stand-in, refined once by projecting that stand-in onto
// the segment's supporting line at the first estimate's center — an
// approximation of the closed-form PPS/PSS/SSS discriminants, not a
// reproduction of them (see DESIGN.md).
func circleFormation(s1, s2, s3 *SiteEvent) (*CircleEvent, bool) {
	if !s1.IsSegment() && !s2.IsSegment() && !s3.IsSegment() {
		return circleFormationPPP(s1, s2, s3)
	}
	return circleFormationWithSegments(s1, s2, s3)
}

func circleFormationPPP(s1, s2, s3 *SiteEvent) (*CircleEvent, bool) {
	p1 := Point{s1.Point0.X, s1.Point0.Y}
	p2 := Point{s2.Point0.X, s2.Point0.Y}
	p3 := Point{s3.Point0.X, s3.Point0.Y}

	if crossSign(p1, p2, p3) >= 0 {
		return nil, false
	}

	x1, y1 := float64(p1.X), float64(p1.Y)
	x2, y2 := float64(p2.X), float64(p2.Y)
	x3, y3 := float64(p3.X), float64(p3.Y)

	d := 2 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if d == 0 {
		return nil, false
	}

	sq1 := x1*x1 + y1*y1
	sq2 := x2*x2 + y2*y2
	sq3 := x3*x3 + y3*y3

	ux := (sq1*(y2-y3) + sq2*(y3-y1) + sq3*(y1-y2)) / d
	uy := (sq1*(x3-x2) + sq2*(x1-x3) + sq3*(x2-x1)) / d

	radius := math.Hypot(ux-x1, uy-y1)

	return &CircleEvent{
		X:      ux,
		Y:      uy,
		LowerX: ux + radius,
		Active: true,
	}, true
}

// fpoint is a plain float64 2D point, used only by the segment-aware circle
// formation below: once a segment site's stand-in point has been projected
// onto its supporting line, the result is no longer an exact input
// coordinate, so the int32-based Point/crossSign fast/exact path no longer
// applies.
type fpoint struct{ x, y float64 }

func effectivePoint(s *SiteEvent) fpoint {
	return fpoint{s.x0(), s.y0()}
}

// projectIfSegment moves a segment site's stand-in point to the point on
// its supporting line closest to ref (the foot of the perpendicular from
// ref), leaving point sites untouched.
func projectIfSegment(s *SiteEvent, ref fpoint) fpoint {
	if !s.IsSegment() {
		return effectivePoint(s)
	}
	a, b, c := siteLine(s)
	d := a*ref.x + b*ref.y + c
	return fpoint{ref.x - a*d, ref.y - b*d}
}

func floatCrossSign(a, b, c fpoint) int {
	v := (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func circumcircleF(p1, p2, p3 fpoint) (fpoint, float64, bool) {
	d := 2 * (p1.x*(p2.y-p3.y) + p2.x*(p3.y-p1.y) + p3.x*(p1.y-p2.y))
	if d == 0 {
		return fpoint{}, 0, false
	}

	sq1 := p1.x*p1.x + p1.y*p1.y
	sq2 := p2.x*p2.x + p2.y*p2.y
	sq3 := p3.x*p3.x + p3.y*p3.y

	ux := (sq1*(p2.y-p3.y) + sq2*(p3.y-p1.y) + sq3*(p1.y-p2.y)) / d
	uy := (sq1*(p3.x-p2.x) + sq2*(p1.x-p3.x) + sq3*(p2.x-p1.x)) / d
	center := fpoint{ux, uy}
	return center, math.Hypot(ux-p1.x, uy-p1.y), true
}

func circleFormationWithSegments(s1, s2, s3 *SiteEvent) (*CircleEvent, bool) {
	p1, p2, p3 := effectivePoint(s1), effectivePoint(s2), effectivePoint(s3)
	if floatCrossSign(p1, p2, p3) >= 0 {
		return nil, false
	}

	center, _, ok := circumcircleF(p1, p2, p3)
	if !ok {
		return nil, false
	}

	p1 = projectIfSegment(s1, center)
	p2 = projectIfSegment(s2, center)
	p3 = projectIfSegment(s3, center)

	if floatCrossSign(p1, p2, p3) >= 0 {
		return nil, false
	}

	center, radius, ok := circumcircleF(p1, p2, p3)
	if !ok {
		return nil, false
	}

	return &CircleEvent{
		X:      center.x,
		Y:      center.y,
		LowerX: center.x + radius,
		Active: true,
	}, true
}
