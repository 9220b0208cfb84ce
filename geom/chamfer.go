package geom

// ChamferLines constructs the straight bevel between two lines: step
// back the given distance from their intersection along each line's
// away-direction and connect the two points. Parallel lines fail with
// ErrLinesDoNotIntersect, a non-positive distance with
// ErrInvalidRadius.
func ChamferLines(l1, l2 Line, distance, tol float64) (Line, error) {
	tol = tolerance(tol)
	if distance <= 0.0 {
		return Line{}, ErrInvalidRadius
	}
	i, ok := IntersectLines(l1, l2, tol)
	if !ok {
		return Line{}, ErrLinesDoNotIntersect
	}
	p1 := i.Add(awayDir(l1, i).Mul(distance))
	p2 := i.Add(awayDir(l2, i).Mul(distance))
	return Line{p1, p2}, nil
}
