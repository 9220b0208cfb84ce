package geom

import "fmt"

// Circle is the full circle around Center with the given radius.
// Radius must be positive.
type Circle struct {
	Center Point
	Radius float64
}

// ContainsPoint returns true if P lies on the circle within tol.
func (c Circle) ContainsPoint(p Point, tol float64) bool {
	tol = tolerance(tol)
	d := c.Center.Distance(p)
	return -tol <= d-c.Radius && d-c.Radius <= tol
}

// PointAt returns the point on the circle at angle theta.
func (c Circle) PointAt(theta float64) Point {
	return c.Center.Add(Point{c.Radius, 0.0}.Rot(theta, Point{}))
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%v r=%g)", c.Center, c.Radius)
}
