package voronoi

import "testing"

func TestCrossSignOrientation(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c    Point
		wantPositive bool
		wantZero   bool
	}{
		{"left turn", Point{0, 0}, Point{10, 0}, Point{10, 10}, true, false},
		{"right turn", Point{0, 0}, Point{10, 0}, Point{10, -10}, false, false},
		{"collinear", Point{0, 0}, Point{10, 0}, Point{20, 0}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := crossSign(tt.a, tt.b, tt.c)
			switch {
			case tt.wantZero:
				if got != 0 {
					t.Fatalf("crossSign = %d, want 0", got)
				}
			case tt.wantPositive:
				if got <= 0 {
					t.Fatalf("crossSign = %d, want > 0", got)
				}
			default:
				if got >= 0 {
					t.Fatalf("crossSign = %d, want < 0", got)
				}
			}
		})
	}
}

func TestCrossSignFastPathAgreesWithExact(t *testing.T) {
	pts := []Point{{-1000, 500}, {2000, -300}, {17, 999}}
	fast := crossSign(pts[0], pts[1], pts[2])
	exact := exactCrossSign(pts[0], pts[1], pts[2])
	if fast != exact {
		t.Fatalf("fast path = %d, exact = %d", fast, exact)
	}
}

func TestUlpEqual(t *testing.T) {
	if !ulpEqual(1.0, 1.0, 0) {
		t.Fatal("a value must be ulp-equal to itself")
	}
	if ulpEqual(1.0, 2.0, 1000) {
		t.Fatal("1.0 and 2.0 should not be ulp-equal at a tolerance of 1000")
	}
	next := 1.0000000000000002 // one ULP above 1.0
	if !ulpEqual(1.0, next, 4) {
		t.Fatal("adjacent floats should be ulp-equal within a small tolerance")
	}
}

func TestUlpEqualAcrossZero(t *testing.T) {
	if !ulpEqual(0.0, -0.0, 0) {
		t.Fatal("positive and negative zero must compare ulp-equal")
	}
}
