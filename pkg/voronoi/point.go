package voronoi

// Point is an integer input coordinate: a single-point site, or one endpoint
// of a segment site. Coordinates are int32; the numeric kernel reads them as
// float64 for its fast paths, and the orientation test escalates to exact
// big.Int arithmetic when that fast path cannot be trusted.
type Point struct {
	X, Y int32
}

// pointLess is a lexicographic, x-major order over points.
func pointLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func pointEqual(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}
