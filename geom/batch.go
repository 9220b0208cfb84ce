package geom

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LineResult is the per-element outcome of a batch trim or extend.
type LineResult struct {
	Line Line
	Err  error
}

// LinePair is one corner for a batch fillet.
type LinePair struct {
	L1, L2 Line
}

// FilletResult is the per-element outcome of a batch fillet.
type FilletResult struct {
	Fillet Fillet
	Err    error
}

// parallelMap runs f over every index with a bounded worker pool,
// writing results by index so order is preserved. Element failures are
// data in the result slice, not errors of the batch.
func parallelMap(n int, f func(i int)) {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			f(i)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error
}

// TrimLines trims every line against the candidate cutters, trying
// both ends of each line against every cutter and keeping the result
// that trims off the least: the closest cut wins. A line no cutter
// intersects reports ErrNoIntersection in its slot.
func TrimLines(lines []Line, cutters []Boundary, tol float64) []LineResult {
	results := make([]LineResult, len(lines))
	parallelMap(len(lines), func(i int) {
		results[i] = trimAgainstAll(lines[i], cutters, tol)
	})
	return results
}

// ExtendLines extends every line against the candidate boundaries,
// trying both ends against every boundary and keeping the shortest
// extension.
func ExtendLines(lines []Line, boundaries []Boundary, tol float64) []LineResult {
	results := make([]LineResult, len(lines))
	parallelMap(len(lines), func(i int) {
		results[i] = extendAgainstAll(lines[i], boundaries, tol)
	})
	return results
}

// FilletLinePairs fillets every pair with the same radius.
func FilletLinePairs(pairs []LinePair, radius, tol float64) []FilletResult {
	results := make([]FilletResult, len(pairs))
	parallelMap(len(pairs), func(i int) {
		f, err := FilletLines(pairs[i].L1, pairs[i].L2, radius, tol)
		results[i] = FilletResult{f, err}
	})
	return results
}

func trimAgainstAll(l Line, cutters []Boundary, tol float64) LineResult {
	best := LineResult{Err: ErrNoIntersection}
	bestDelta := math.Inf(1)
	for _, b := range cutters {
		for _, end := range []End{EndA, EndB} {
			res, err := TrimToBoundary(l, b, end, tol)
			if err != nil {
				continue
			}
			if delta := l.Length() - res.Length(); delta < bestDelta {
				best, bestDelta = LineResult{Line: res}, delta
			}
		}
	}
	return best
}

func extendAgainstAll(l Line, boundaries []Boundary, tol float64) LineResult {
	best := LineResult{Err: ErrNoIntersection}
	bestDelta := math.Inf(1)
	for _, b := range boundaries {
		for _, end := range []End{EndA, EndB} {
			res, err := ExtendToBoundary(l, b, end, tol)
			if err != nil {
				continue
			}
			if delta := res.Length() - l.Length(); delta < bestDelta {
				best, bestDelta = LineResult{Line: res}, delta
			}
		}
	}
	return best
}
