// Package geom implements the 2D geometry kernel for the CAD modify
// tools: line/arc/circle primitives and the intersection, fillet,
// chamfer, trim and extend constructions built on top of them.
//
// All types are immutable values and every operation is a pure
// function; calls are safe from any number of goroutines. Geometric
// degeneracies (parallel lines, non-intersecting circles, out-of-range
// trims) are reported through return values, never panics.
//
// Every operation takes an explicit tolerance; passing a value <= 0
// selects DefaultTolerance. Tolerances are absolute distances in
// drawing units, so callers working at different scales tune them
// explicitly.
package geom

import "math"

// Epsilon is the tolerance backing the internal scalar helpers.
const Epsilon = 1e-10

// DefaultTolerance is used by every operation when the caller passes a
// tolerance <= 0.
const DefaultTolerance = 1e-9

func tolerance(tol float64) float64 {
	if tol <= 0.0 {
		return DefaultTolerance
	}
	return tol
}

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// angleNorm returns the angle theta in the range [0,2PI).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	} else if hi < f {
		return hi
	}
	return f
}

// Numerically stable quadratic formula, lowest root is returned first
// see https://math.stackexchange.com/a/2007723
func solveQuadratic(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			if c == 0.0 {
				// all terms disappear, all x satisfy the solution
				return 0.0, math.NaN()
			}
			// linear term disappears, no solutions
			return math.NaN(), math.NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, math.NaN()
	}

	if c == 0.0 {
		// no constant term, one solution at zero and one from solving linearly
		return 0.0, -b / a
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// Citardauq formula avoids catastrophic cancellation when b and the
	// radical are nearly equal.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}
