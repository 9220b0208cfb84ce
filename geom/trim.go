package geom

import "gonum.org/v1/gonum/floats"

// End selects which endpoint of a Line an operation modifies.
type End int

const (
	EndA End = iota
	EndB
)

func (e End) String() string {
	switch e {
	case EndA:
		return "A"
	case EndB:
		return "B"
	}
	return "invalid"
}

// endpoint returns the selected endpoint. An invalid selector is a
// programmer error and panics.
func (l Line) endpoint(end End) Point {
	switch end {
	case EndA:
		return l.A
	case EndB:
		return l.B
	}
	panic("geom: invalid end selector")
}

// otherEnd returns the endpoint opposite the selected one.
func (l Line) otherEnd(end End) Point {
	switch end {
	case EndA:
		return l.B
	case EndB:
		return l.A
	}
	panic("geom: invalid end selector")
}

// MoveEnd returns l with the selected endpoint replaced by p.
func MoveEnd(l Line, end End, p Point) Line {
	switch end {
	case EndA:
		return Line{p, l.B}
	case EndB:
		return Line{l.A, p}
	}
	panic("geom: invalid end selector")
}

// Boundary is an element a trim or extend operation computes its
// target intersection against: a Line, a Circle, or an Arc.
type Boundary interface {
	boundary()
}

func (Line) boundary()   {}
func (Circle) boundary() {}
func (Arc) boundary()    {}

// boundaryIntersections returns the candidate intersections of the
// infinite line through l with the boundary. This is the single
// dispatch point over boundary variants: only the Arc variant applies
// the angular sweep filter, everything downstream is shared.
// ErrNoIntersection reports no intersections at all, ErrNotOnElement
// that every intersection fell outside the arc's sweep.
func boundaryIntersections(b Boundary, l Line, tol float64) ([]Point, error) {
	switch b := b.(type) {
	case Line:
		p, ok := IntersectLines(l, b, tol)
		if !ok {
			return nil, ErrNoIntersection
		}
		return []Point{p}, nil
	case Circle:
		ps := IntersectLineCircle(l, b, tol)
		if len(ps) == 0 {
			return nil, ErrNoIntersection
		}
		return ps, nil
	case Arc:
		ps := IntersectLineCircle(l, b.Circle(), tol)
		if len(ps) == 0 {
			return nil, ErrNoIntersection
		}
		on := ps[:0]
		for _, p := range ps {
			if b.ContainsAngle(b.Center.AngleTo(p), tol) {
				on = append(on, p)
			}
		}
		if len(on) == 0 {
			return nil, ErrNotOnElement
		}
		return on, nil
	}
	panic("geom: unknown boundary variant")
}

// ExtendLineToIntersection replaces the selected endpoint of l with
// its infinite-line intersection with the cutter, regardless of where
// that intersection lies. Fails only when the lines are parallel.
func ExtendLineToIntersection(l, cutter Line, end End, tol float64) (Line, error) {
	p, ok := IntersectLines(l, cutter, tol)
	if !ok {
		return Line{}, ErrNoIntersection
	}
	return MoveEnd(l, end, p), nil
}

// TrimLineByCut is the infinite-mode trim: identical to
// ExtendLineToIntersection, the endpoint snaps to the cut wherever it
// is.
func TrimLineByCut(l, cutter Line, end End, tol float64) (Line, error) {
	return ExtendLineToIntersection(l, cutter, end, tol)
}

// TrimLineToBoundary shortens the selected endpoint of l to its
// intersection with the boundary line. The intersection must lie on
// the segment (ErrNoIntersection otherwise) and both the trimmed-off
// amount and the remaining segment must exceed tol
// (ErrTooCloseToEndpoint).
func TrimLineToBoundary(l, boundary Line, end End, tol float64) (Line, error) {
	return TrimToBoundary(l, boundary, end, tol)
}

// TrimToBoundary is TrimLineToBoundary generalized over boundary
// variants; circle and arc boundaries may contribute several candidate
// cuts, of which the one nearest the moving endpoint wins.
func TrimToBoundary(l Line, b Boundary, end End, tol float64) (Line, error) {
	tol = tolerance(tol)
	ps, err := boundaryIntersections(b, l, tol)
	if err != nil {
		return Line{}, err
	}

	moved := l.endpoint(end)
	var best Point
	found, tooClose := false, false
	for _, p := range ps {
		if !l.ContainsPoint(p, tol) {
			continue
		}
		if p.Distance(moved) <= tol || p.Distance(l.otherEnd(end)) <= tol {
			tooClose = true
			continue
		}
		if !found || p.Distance(moved) < best.Distance(moved) {
			best, found = p, true
		}
	}
	if !found {
		if tooClose {
			return Line{}, ErrTooCloseToEndpoint
		}
		return Line{}, ErrNoIntersection
	}
	return MoveEnd(l, end, best), nil
}

// ExtendLineToBoundary lengthens the selected endpoint of l to its
// intersection with the boundary line. The intersection must lie ahead
// of the endpoint, in the direction away from the segment's other end;
// a hit behind the segment fails with ErrWrongDirection.
func ExtendLineToBoundary(l, boundary Line, end End, tol float64) (Line, error) {
	return ExtendToBoundary(l, boundary, end, tol)
}

// ExtendToBoundary is ExtendLineToBoundary generalized over boundary
// variants; among candidates ahead of the endpoint the nearest wins,
// giving the shortest extension.
func ExtendToBoundary(l Line, b Boundary, end End, tol float64) (Line, error) {
	tol = tolerance(tol)
	ps, err := boundaryIntersections(b, l, tol)
	if err != nil {
		return Line{}, err
	}

	moved := l.endpoint(end)
	other := l.otherEnd(end)
	dir := moved.Sub(other)
	var best Point
	found := false
	for _, p := range ps {
		if dir.Dot(p.Sub(moved)) <= 0.0 {
			continue
		}
		if other.Distance(p) <= other.Distance(moved) {
			continue
		}
		if !found || p.Distance(moved) < best.Distance(moved) {
			best, found = p, true
		}
	}
	if !found {
		return Line{}, ErrWrongDirection
	}
	return MoveEnd(l, end, best), nil
}

// ExtendSegmentToCircle extends the selected endpoint to the nearest
// circle intersection ahead of it.
func ExtendSegmentToCircle(l Line, c Circle, end End, tol float64) (Line, error) {
	return ExtendToBoundary(l, c, end, tol)
}

// ExtendSegmentToArc extends the selected endpoint to the nearest
// intersection that lies within the arc's sweep and ahead of the
// endpoint. Intersections with the full circle that miss the arc fail
// with ErrNotOnElement rather than snapping to the wrong point.
func ExtendSegmentToArc(l Line, a Arc, end End, tol float64) (Line, error) {
	return ExtendToBoundary(l, a, end, tol)
}

// TrimSegmentByArc shortens the selected endpoint to the nearest
// on-segment intersection within the arc's sweep.
func TrimSegmentByArc(l Line, a Arc, end End, tol float64) (Line, error) {
	return TrimToBoundary(l, a, end, tol)
}

// BreakLineAtPoints splits the segment at every given point that lies
// on it, returning the consecutive pieces from A to B. Points off the
// segment are ignored; pieces shorter than tol are dropped, so a break
// point coincident with an endpoint produces no zero-length sliver.
// With no points on the segment, or a degenerate segment, the original
// line is returned as a single-element slice.
func BreakLineAtPoints(l Line, points []Point, tol float64) []Line {
	tol = tolerance(tol)
	if l.IsDegenerate(tol) {
		// nothing to break
		return []Line{l}
	}
	var on []Point
	var params []float64
	for _, p := range points {
		if l.ContainsPoint(p, tol) {
			on = append(on, p)
			params = append(params, l.param(p))
		}
	}
	if len(on) == 0 {
		return []Line{l}
	}

	inds := make([]int, len(params))
	floats.Argsort(params, inds)

	pieces := make([]Line, 0, len(on)+1)
	prev := l.A
	for _, i := range inds {
		p := on[i]
		if tol < prev.Distance(p) {
			pieces = append(pieces, Line{prev, p})
			prev = p
		}
	}
	if tol < prev.Distance(l.B) {
		pieces = append(pieces, Line{prev, l.B})
	}
	if len(pieces) == 0 {
		// every break point within tol of both endpoints
		return []Line{l}
	}
	return pieces
}
