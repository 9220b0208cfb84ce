package geom

import (
	"fmt"
	"math"
)

// Arc is the circular arc around Center from angle Start to angle End
// (radians), swept counter-clockwise when CCW is true and clockwise
// otherwise. Radius must be positive. Start and End need not be
// normalized into [0,2PI); containment normalizes consistently.
//
// Arcs constructed from two boundary points always take the shorter
// sweep and record the matching CCW. Containment honors the stored
// direction, so the same convention applies everywhere an arc is built
// or filtered against.
type Arc struct {
	Center     Point
	Radius     float64
	Start, End float64
	CCW        bool
}

// ArcBetween constructs the arc around center through P0 and P1,
// taking the shorter of the two sweeps. P0 and P1 are assumed to lie
// on the circle; only their angles are used.
func ArcBetween(center Point, radius float64, p0, p1 Point) Arc {
	theta0 := center.AngleTo(p0)
	theta1 := center.AngleTo(p1)
	ccw := angleNorm(theta1-theta0) <= math.Pi
	return Arc{center, radius, theta0, theta1, ccw}
}

// Circle returns the full circle the arc lies on.
func (a Arc) Circle() Circle {
	return Circle{a.Center, a.Radius}
}

// Sweep returns the swept angle in [0,2PI), measured along the stored
// direction.
func (a Arc) Sweep() float64 {
	if a.CCW {
		return angleNorm(a.End - a.Start)
	}
	return angleNorm(a.Start - a.End)
}

// StartPoint returns the point on the arc at the start angle.
func (a Arc) StartPoint() Point {
	return a.Circle().PointAt(a.Start)
}

// EndPoint returns the point on the arc at the end angle.
func (a Arc) EndPoint() Point {
	return a.Circle().PointAt(a.End)
}

// ContainsAngle returns true if theta falls within the arc's sweep,
// endpoints included within tol. The offset from the start angle is
// normalized along the stored direction, so arcs crossing the 0/2PI
// seam behave the same as any other.
func (a Arc) ContainsAngle(theta, tol float64) bool {
	tol = tolerance(tol)
	var d float64
	if a.CCW {
		d = angleNorm(theta - a.Start)
	} else {
		d = angleNorm(a.Start - theta)
	}
	if d <= a.Sweep()+tol {
		return true
	}
	// just before the start angle
	return 2.0*math.Pi-d <= tol
}

// ContainsPoint returns true if P lies on the arc within tol, ie. on
// the circle and within the angular sweep.
func (a Arc) ContainsPoint(p Point, tol float64) bool {
	if !a.Circle().ContainsPoint(p, tol) {
		return false
	}
	return a.ContainsAngle(a.Center.AngleTo(p), tol)
}

func (a Arc) String() string {
	dir := "cw"
	if a.CCW {
		dir = "ccw"
	}
	return fmt.Sprintf("arc(%v r=%g %g--%g %s)", a.Center, a.Radius, a.Start, a.End, dir)
}
