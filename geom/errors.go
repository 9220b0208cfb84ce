package geom

import "errors"

// Failure values shared by the modify operations. These are expected
// geometric outcomes, not exceptional conditions; callers branch with
// errors.Is.
var (
	// ErrNoIntersection reports parallel lines or an intersection
	// falling outside the bounded element.
	ErrNoIntersection = errors.New("geom: no intersection")

	// ErrWrongDirection reports an extension target lying behind the
	// element instead of ahead of it.
	ErrWrongDirection = errors.New("geom: intersection lies behind the element")

	// ErrTooCloseToEndpoint reports a trim or extend whose result would
	// be within tolerance of the existing endpoint.
	ErrTooCloseToEndpoint = errors.New("geom: result too close to endpoint")

	// ErrInvalidRadius reports a non-positive radius or chamfer
	// distance.
	ErrInvalidRadius = errors.New("geom: radius must be positive")

	// ErrNotOnElement reports a break point or arc-filtered
	// intersection that does not lie on the element.
	ErrNotOnElement = errors.New("geom: point not on element")

	// ErrLinesDoNotIntersect reports a fillet or chamfer between
	// parallel or collinear lines.
	ErrLinesDoNotIntersect = errors.New("geom: lines do not intersect")

	// ErrDegenerateLine reports a zero-length input line.
	ErrDegenerateLine = errors.New("geom: degenerate zero-length line")
)
