package voronoi

import (
	"math"
	"math/big"
)

// crossErrorBound is a conservative relative error bound for the float64
// cross-product fast path. It is not a tight Shewchuk-style bound, only
// wide enough that anything it lets through is safe to trust.
const crossErrorBound = 1e-9

// crossSign returns the sign of (b-a) x (c-a): positive when c is left of
// the directed line a->b, negative when right, zero when collinear. The
// float64 fast path is checked against crossErrorBound and only escalates
// to exact big.Int arithmetic when the terms are close enough to cancel.
func crossSign(a, b, c Point) int {
	ax, ay := float64(b.X-a.X), float64(b.Y-a.Y)
	bx, by := float64(c.X-a.X), float64(c.Y-a.Y)
	t1 := ax * by
	t2 := ay * bx
	d := t1 - t2
	bound := crossErrorBound * (absf(t1) + absf(t2))
	if absf(d) > bound {
		return sign(d)
	}
	return exactCrossSign(a, b, c)
}

func exactCrossSign(a, b, c Point) int {
	ax := big.NewInt(int64(b.X) - int64(a.X))
	ay := big.NewInt(int64(b.Y) - int64(a.Y))
	bx := big.NewInt(int64(c.X) - int64(a.X))
	by := big.NewInt(int64(c.Y) - int64(a.Y))
	t1 := new(big.Int).Mul(ax, by)
	t2 := new(big.Int).Mul(ay, bx)
	return t1.Sub(t1, t2).Sign()
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

// toOrderedBits maps a float64's IEEE-754 bit pattern to a uint64 that
// preserves numeric order, so two mapped values can be subtracted to get an
// ULP distance.
func toOrderedBits(f float64) uint64 {
	if f == 0 {
		f = 0 // normalize -0 to +0 so they map to the same ordered value
	}
	bits := math.Float64bits(f)
	const signBit = uint64(1) << 63
	if bits&signBit != 0 {
		return ^bits
	}
	return bits | signBit
}

// ulpEqual reports whether a and b differ by at most maxULPs units in the
// last place.
func ulpEqual(a, b float64, maxULPs uint64) bool {
	ai, bi := toOrderedBits(a), toOrderedBits(b)
	var diff uint64
	if ai > bi {
		diff = ai - bi
	} else {
		diff = bi - ai
	}
	return diff <= maxULPs
}
