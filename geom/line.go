package geom

import (
	"fmt"
	"math"
)

// Line is the segment from A to B. Operations named over "lines" treat
// it as the infinite line through A and B, where only the direction
// matters; operations named over "segments" treat it as bounded, where
// both endpoint positions matter. A zero-length line (A == B) is
// degenerate and rejected by every construction that consumes one.
type Line struct {
	A, B Point
}

// IsDegenerate returns true if the endpoints coincide within tol.
func (l Line) IsDegenerate(tol float64) bool {
	return l.A.Distance(l.B) <= tolerance(tol)
}

// Dir returns the direction vector B-A, not normalized.
func (l Line) Dir() Point {
	return l.B.Sub(l.A)
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.A.Distance(l.B)
}

// Midpoint returns the point halfway between A and B.
func (l Line) Midpoint() Point {
	return l.A.Interpolate(l.B, 0.5)
}

// ContainsPoint returns true if P lies on the segment within tol. P
// must be collinear with the segment, and its projection must fall
// between both endpoints. The projection is checked with dot-product
// sign tests so that no division happens for a pure containment test.
// A degenerate segment contains only its own coincident endpoints.
func (l Line) ContainsPoint(p Point, tol float64) bool {
	tol = tolerance(tol)
	if l.IsDegenerate(tol) {
		return p.Distance(l.A) <= tol
	}
	d := l.Dir()
	if tol < math.Abs(d.PerpDot(p.Sub(l.A))) {
		return false
	}
	if p.Sub(l.A).Dot(d) < -tol {
		return false
	}
	if p.Sub(l.B).Dot(d) > tol {
		return false
	}
	return true
}

// param returns the projection parameter of P along AB, with t=0 at A
// and t=1 at B. The ratio is taken over the dominant axis to avoid
// dividing by a near-zero component; P is assumed collinear.
func (l Line) param(p Point) float64 {
	d := l.Dir()
	if math.Abs(d.Y) < math.Abs(d.X) {
		return (p.X - l.A.X) / d.X
	}
	return (p.Y - l.A.Y) / d.Y
}

func (l Line) String() string {
	return fmt.Sprintf("%v--%v", l.A, l.B)
}
