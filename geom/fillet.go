package geom

import "math"

// Fillet is a tangent-arc solution: the tangent points on both input
// elements, the arc center, and the arc itself.
type Fillet struct {
	T1, T2 Point
	Center Point
	Arc    Arc
}

// awayDir returns the unit direction of l pointing away from I, chosen
// as whichever endpoint is farther from I. This stays robust when the
// input "line" is a short segment carrying direction only.
func awayDir(l Line, i Point) Point {
	far := l.B
	if i.Distance(l.B) < i.Distance(l.A) {
		far = l.A
	}
	return far.Sub(i).Norm(1.0)
}

// FilletLines constructs the tangent arc of the given radius between
// two infinite lines. The tangent points lie at distance
// radius*tan(theta/2) from the intersection along each line's
// away-direction, and the center at radius/sin(theta/2) along the
// bisector. Parallel and collinear configurations fail with
// ErrLinesDoNotIntersect.
func FilletLines(l1, l2 Line, radius, tol float64) (Fillet, error) {
	tol = tolerance(tol)
	if radius <= 0.0 {
		return Fillet{}, ErrInvalidRadius
	}
	i, ok := IntersectLines(l1, l2, tol)
	if !ok {
		return Fillet{}, ErrLinesDoNotIntersect
	}

	u1 := awayDir(l1, i)
	u2 := awayDir(l2, i)
	theta := math.Acos(clamp(u1.Dot(u2), -1.0, 1.0))
	if theta < tol || math.Pi-theta < tol {
		// collinear
		return Fillet{}, ErrLinesDoNotIntersect
	}

	half := theta / 2.0
	t := radius * math.Tan(half)
	t1 := i.Add(u1.Mul(t))
	t2 := i.Add(u2.Mul(t))
	center := i.Add(u1.Add(u2).Norm(radius / math.Sin(half)))
	return Fillet{t1, t2, center, ArcBetween(center, radius, t1, t2)}, nil
}

// FilletLineCircle returns all tangent arcs of the given radius
// between an infinite line and a circle. The configuration is
// inherently multi-valued (either side of the line, external or
// internal tangency); the caller selects among the candidates, eg. by
// proximity to a pick point.
func FilletLineCircle(l Line, c Circle, radius, tol float64) ([]Fillet, error) {
	tol = tolerance(tol)
	if radius <= 0.0 {
		return nil, ErrInvalidRadius
	}
	d := l.Dir()
	if d.Length() <= tol {
		return nil, ErrDegenerateLine
	}
	n := d.Norm(1.0).Rot90CCW()

	var solutions []Fillet
	for _, side := range []float64{1.0, -1.0} {
		offset := Line{l.A.Add(n.Mul(side * radius)), l.B.Add(n.Mul(side * radius))}
		for _, external := range []bool{true, false} {
			rc := c.Radius + radius
			if !external {
				rc = math.Abs(c.Radius - radius)
				if rc <= tol {
					continue
				}
			}
			for _, center := range IntersectLineCircle(offset, Circle{c.Center, rc}, tol) {
				if center.Distance(c.Center) <= tol {
					continue
				}
				t1 := projectOntoLine(l, center)
				t2 := circleTangentPoint(c, center, radius, external)
				solutions = appendFillet(solutions, Fillet{t1, t2, center, ArcBetween(center, radius, t1, t2)}, tol)
			}
		}
	}
	return solutions, nil
}

// FilletCircles returns all tangent arcs of the given radius between
// two circles, from every combination of external and internal
// tangency on each side.
func FilletCircles(c1, c2 Circle, radius, tol float64) ([]Fillet, error) {
	tol = tolerance(tol)
	if radius <= 0.0 {
		return nil, ErrInvalidRadius
	}

	var solutions []Fillet
	for _, ext1 := range []bool{true, false} {
		r1 := centerCircleRadius(c1, radius, ext1)
		if r1 <= tol {
			continue
		}
		for _, ext2 := range []bool{true, false} {
			r2 := centerCircleRadius(c2, radius, ext2)
			if r2 <= tol {
				continue
			}
			for _, center := range IntersectCircles(Circle{c1.Center, r1}, Circle{c2.Center, r2}, tol) {
				if center.Distance(c1.Center) <= tol || center.Distance(c2.Center) <= tol {
					continue
				}
				t1 := circleTangentPoint(c1, center, radius, ext1)
				t2 := circleTangentPoint(c2, center, radius, ext2)
				solutions = appendFillet(solutions, Fillet{t1, t2, center, ArcBetween(center, radius, t1, t2)}, tol)
			}
		}
	}
	return solutions, nil
}

// FilletSegments constructs the fillet between two segments and trims
// each one to its tangent point. Whichever endpoint of a segment is
// nearer its pick point survives; the opposite endpoint is replaced by
// the tangent point.
func FilletSegments(s1, s2 Line, pick1, pick2 Point, radius, tol float64) (Line, Line, Arc, error) {
	f, err := FilletLines(s1, s2, radius, tol)
	if err != nil {
		return Line{}, Line{}, Arc{}, err
	}
	return keepNearEnd(s1, pick1, f.T1), keepNearEnd(s2, pick2, f.T2), f.Arc, nil
}

func keepNearEnd(s Line, pick, tangent Point) Line {
	if pick.Distance(s.A) <= pick.Distance(s.B) {
		return Line{s.A, tangent}
	}
	return Line{tangent, s.B}
}

// projectOntoLine returns the foot of the perpendicular from P onto
// the infinite line through l.
func projectOntoLine(l Line, p Point) Point {
	d := l.Dir()
	t := p.Sub(l.A).Dot(d) / d.Dot(d)
	return l.A.Add(d.Mul(t))
}

// centerCircleRadius returns the radius of the circle that fillet
// centers lie on for tangency with c: grown by the fillet radius for
// external tangency, shrunk for internal.
func centerCircleRadius(c Circle, radius float64, external bool) float64 {
	if external {
		return c.Radius + radius
	}
	return math.Abs(c.Radius - radius)
}

// circleTangentPoint returns the point where the fillet circle around
// center touches c. The tangent point lies on the line through both
// centers; when the fillet circle encloses c (internal tangency with a
// larger fillet radius) it sits on the far side of c's center.
func circleTangentPoint(c Circle, center Point, radius float64, external bool) Point {
	u := center.Sub(c.Center).Norm(1.0)
	if !external && c.Radius < radius {
		u = u.Neg()
	}
	return c.Center.Add(u.Mul(c.Radius))
}

// appendFillet adds f unless an equivalent candidate is present.
// Tangent configurations produce the same center from both quadratic
// roots.
func appendFillet(fs []Fillet, f Fillet, tol float64) []Fillet {
	for _, g := range fs {
		if g.Center.Distance(f.Center) <= tol && g.T1.Distance(f.T1) <= tol && g.T2.Distance(f.T2) <= tol {
			return fs
		}
	}
	return append(fs, f)
}
