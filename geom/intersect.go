package geom

import "math"

// IntersectLines returns the intersection of l1 and l2 treated as
// infinite lines. The second return is false when the lines are
// parallel or near-parallel within tol.
func IntersectLines(l1, l2 Line, tol float64) (Point, bool) {
	tol = tolerance(tol)
	r := l1.Dir()
	s := l2.Dir()
	rxs := r.PerpDot(s)
	if math.Abs(rxs) < tol {
		// parallel
		return Point{}, false
	}
	t := l2.A.Sub(l1.A).PerpDot(s) / rxs
	return l1.A.Add(r.Mul(t)), true
}

// IntersectSegments returns the intersection of s1 and s2 treated as
// bounded segments: the infinite-line intersection must lie on both.
func IntersectSegments(s1, s2 Line, tol float64) (Point, bool) {
	p, ok := IntersectLines(s1, s2, tol)
	if !ok {
		return Point{}, false
	}
	if !s1.ContainsPoint(p, tol) || !s2.ContainsPoint(p, tol) {
		return Point{}, false
	}
	return p, true
}

// IntersectLineCircle returns the 0, 1 or 2 intersections of the
// infinite line through l with the circle. Substituting the line
// parametrization p0+t*d into |p|^2 = r^2 gives a quadratic in t; a
// discriminant within tol of zero counts as a single tangent point.
func IntersectLineCircle(l Line, c Circle, tol float64) []Point {
	tol = tolerance(tol)
	d := l.Dir()
	p0 := l.A.Sub(c.Center)
	A := d.Dot(d)
	B := 2.0 * p0.Dot(d)
	C := p0.Dot(p0) - c.Radius*c.Radius
	if A <= tol {
		// degenerate line
		return nil
	}

	discriminant := B*B - 4.0*A*C
	if discriminant < -tol {
		return nil
	} else if discriminant <= tol {
		t := -B / (2.0 * A)
		return []Point{l.A.Add(d.Mul(t))}
	}

	t0, t1 := solveQuadratic(A, B, C)
	return []Point{l.A.Add(d.Mul(t0)), l.A.Add(d.Mul(t1))}
}

// IntersectSegmentCircle returns the intersections of the bounded
// segment with the circle.
func IntersectSegmentCircle(s Line, c Circle, tol float64) []Point {
	var on []Point
	for _, p := range IntersectLineCircle(s, c, tol) {
		if s.ContainsPoint(p, tol) {
			on = append(on, p)
		}
	}
	return on
}

// IntersectCircles returns the 0, 1 or 2 intersections of two circles.
// Coincident circles have no discrete intersections and return none.
// Tangent circles return a single point.
func IntersectCircles(c1, c2 Circle, tol float64) []Point {
	tol = tolerance(tol)
	r0, r1 := c1.Radius, c2.Radius
	d := c1.Center.Distance(c2.Center)
	if d <= tol && math.Abs(r0-r1) <= tol {
		// coincident
		return nil
	}
	if r0+r1+tol < d {
		// too far apart
		return nil
	}
	if d < math.Abs(r0-r1)-tol {
		// one inside the other
		return nil
	}
	if d <= tol {
		return nil
	}

	a := (r0*r0 - r1*r1 + d*d) / (2.0 * d)
	h := math.Sqrt(math.Max(0.0, r0*r0-a*a))
	u := c2.Center.Sub(c1.Center).Div(d)
	m := c1.Center.Add(u.Mul(a))
	if h <= tol {
		// tangent
		return []Point{m}
	}
	off := u.Rot90CCW().Mul(h)
	return []Point{m.Add(off), m.Sub(off)}
}
