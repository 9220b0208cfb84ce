package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestMoveEnd(t *testing.T) {
	l := Line{Point{0.0, 0.0}, Point{10.0, 0.0}}
	test.T(t, MoveEnd(l, EndA, Point{1.0, 1.0}), Line{Point{1.0, 1.0}, Point{10.0, 0.0}})
	test.T(t, MoveEnd(l, EndB, Point{1.0, 1.0}), Line{Point{0.0, 0.0}, Point{1.0, 1.0}})
}

func TestInvalidEndPanics(t *testing.T) {
	defer func() {
		test.That(t, recover() != nil)
	}()
	MoveEnd(Line{}, End(7), Point{})
}

func TestExtendLineToIntersection(t *testing.T) {
	l := Line{Point{0.0, 0.0}, Point{2.0, 0.0}}
	cutter := Line{Point{5.0, -1.0}, Point{5.0, 1.0}}

	// infinite mode snaps the endpoint wherever the intersection is
	res, err := ExtendLineToIntersection(l, cutter, EndB, 0.0)
	test.Error(t, err)
	test.T(t, res, Line{Point{0.0, 0.0}, Point{5.0, 0.0}})

	// even backwards through the segment
	res, err = ExtendLineToIntersection(l, cutter, EndA, 0.0)
	test.Error(t, err)
	test.T(t, res, Line{Point{5.0, 0.0}, Point{2.0, 0.0}})

	_, err = ExtendLineToIntersection(l, Line{Point{0.0, 1.0}, Point{2.0, 1.0}}, EndB, 0.0)
	test.T(t, err, ErrNoIntersection)

	res, err = TrimLineByCut(Line{Point{0.0, 0.0}, Point{10.0, 0.0}}, cutter, EndB, 0.0)
	test.Error(t, err)
	test.T(t, res, Line{Point{0.0, 0.0}, Point{5.0, 0.0}})
}

func TestTrimLineToBoundary(t *testing.T) {
	l := Line{Point{0.0, 0.0}, Point{10.0, 0.0}}
	var tts = []struct {
		boundary Line
		end      End
		res      Line
		err      error
	}{
		{Line{Point{4.0, -5.0}, Point{4.0, 5.0}}, EndB, Line{Point{0.0, 0.0}, Point{4.0, 0.0}}, nil},
		{Line{Point{4.0, -5.0}, Point{4.0, 5.0}}, EndA, Line{Point{4.0, 0.0}, Point{10.0, 0.0}}, nil},
		// parallel
		{Line{Point{0.0, 1.0}, Point{10.0, 1.0}}, EndB, Line{}, ErrNoIntersection},
		// intersection beyond the segment is not a trim
		{Line{Point{15.0, -5.0}, Point{15.0, 5.0}}, EndB, Line{}, ErrNoIntersection},
		// cut within tolerance of the moving endpoint is a no-op
		{Line{Point{10.0, -5.0}, Point{10.0, 5.0}}, EndB, Line{}, ErrTooCloseToEndpoint},
		// cut at the opposite endpoint would leave nothing
		{Line{Point{0.0, -5.0}, Point{0.0, 5.0}}, EndB, Line{}, ErrTooCloseToEndpoint},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			res, err := TrimLineToBoundary(l, tt.boundary, tt.end, 0.0)
			test.T(t, err, tt.err)
			if err == nil {
				test.T(t, res, tt.res)
				test.That(t, DefaultTolerance < res.Length())
			}
		})
	}
}

func TestExtendLineToBoundary(t *testing.T) {
	l := Line{Point{0.0, 0.0}, Point{2.0, 0.0}}
	var tts = []struct {
		boundary Line
		end      End
		res      Line
		err      error
	}{
		{Line{Point{5.0, -1.0}, Point{5.0, 1.0}}, EndB, Line{Point{0.0, 0.0}, Point{5.0, 0.0}}, nil},
		{Line{Point{-3.0, -1.0}, Point{-3.0, 1.0}}, EndA, Line{Point{-3.0, 0.0}, Point{2.0, 0.0}}, nil},
		// boundary behind the chosen end
		{Line{Point{5.0, -1.0}, Point{5.0, 1.0}}, EndA, Line{}, ErrWrongDirection},
		{Line{Point{-3.0, -1.0}, Point{-3.0, 1.0}}, EndB, Line{}, ErrWrongDirection},
		// boundary crossing inside the segment would shorten it
		{Line{Point{1.0, -1.0}, Point{1.0, 1.0}}, EndB, Line{}, ErrWrongDirection},
		{Line{Point{0.0, 1.0}, Point{2.0, 1.0}}, EndB, Line{}, ErrNoIntersection},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			res, err := ExtendLineToBoundary(l, tt.boundary, tt.end, 0.0)
			test.T(t, err, tt.err)
			if err == nil {
				test.T(t, res, tt.res)
				// an extension never shortens
				test.That(t, l.Length() <= res.Length())
			}
		})
	}
}

func TestExtendSegmentToCircle(t *testing.T) {
	l := Line{Point{0.0, 0.0}, Point{1.0, 0.0}}
	c := Circle{Point{3.0, 0.0}, 1.0}

	// two candidates ahead, nearest wins
	res, err := ExtendSegmentToCircle(l, c, EndB, 0.0)
	test.Error(t, err)
	test.T(t, res, Line{Point{0.0, 0.0}, Point{2.0, 0.0}})

	_, err = ExtendSegmentToCircle(l, c, EndA, 0.0)
	test.T(t, err, ErrWrongDirection)

	_, err = ExtendSegmentToCircle(l, Circle{Point{0.0, 5.0}, 1.0}, EndB, 0.0)
	test.T(t, err, ErrNoIntersection)
}

func TestExtendSegmentToArc(t *testing.T) {
	l := Line{Point{0.0, 0.0}, Point{1.0, 0.0}}
	circle := Circle{Point{3.0, 0.0}, 1.0}
	// the full circle crosses the line at (2,0) and (4,0)

	// arc spanning the far crossing only
	far := Arc{circle.Center, circle.Radius, -0.5 * math.Pi, 0.5 * math.Pi, true}
	res, err := ExtendSegmentToArc(l, far, EndB, 0.0)
	test.Error(t, err)
	test.T(t, res, Line{Point{0.0, 0.0}, Point{4.0, 0.0}})

	// same angles swept the other way cover the near crossing instead
	near := Arc{circle.Center, circle.Radius, -0.5 * math.Pi, 0.5 * math.Pi, false}
	res, err = ExtendSegmentToArc(l, near, EndB, 0.0)
	test.Error(t, err)
	test.T(t, res, Line{Point{0.0, 0.0}, Point{2.0, 0.0}})

	// arc spanning neither crossing: on the circle but not the arc
	off := Arc{circle.Center, circle.Radius, 0.25 * math.Pi, 0.75 * math.Pi, true}
	_, err = ExtendSegmentToArc(l, off, EndB, 0.0)
	test.T(t, err, ErrNotOnElement)
}

func TestTrimSegmentByArc(t *testing.T) {
	l := Line{Point{0.0, 0.0}, Point{6.0, 0.0}}
	arc := Arc{Point{3.0, 0.0}, 1.0, -0.25 * math.Pi, 1.25 * math.Pi, true}

	// both crossings on the segment, closest to the moving end wins
	res, err := TrimSegmentByArc(l, arc, EndB, 0.0)
	test.Error(t, err)
	test.T(t, res, Line{Point{0.0, 0.0}, Point{4.0, 0.0}})

	res, err = TrimSegmentByArc(l, arc, EndA, 0.0)
	test.Error(t, err)
	test.T(t, res, Line{Point{2.0, 0.0}, Point{6.0, 0.0}})

	// crossings within the sweep but beyond the segment
	short := Line{Point{0.0, 0.0}, Point{1.0, 0.0}}
	_, err = TrimSegmentByArc(short, arc, EndB, 0.0)
	test.T(t, err, ErrNoIntersection)
}

func TestBreakLineAtPoints(t *testing.T) {
	l := Line{Point{0.0, 0.0}, Point{10.0, 0.0}}
	var tts = []struct {
		points []Point
		pieces []Line
	}{
		// unsorted break points come back ordered along the segment
		{[]Point{{7.0, 0.0}, {2.0, 0.0}}, []Line{
			{Point{0.0, 0.0}, Point{2.0, 0.0}},
			{Point{2.0, 0.0}, Point{7.0, 0.0}},
			{Point{7.0, 0.0}, Point{10.0, 0.0}},
		}},
		// off-segment points are ignored
		{[]Point{{5.0, 0.0}, {20.0, 0.0}, {5.0, 1.0}}, []Line{
			{Point{0.0, 0.0}, Point{5.0, 0.0}},
			{Point{5.0, 0.0}, Point{10.0, 0.0}},
		}},
		// a break point at an endpoint produces no sliver
		{[]Point{{0.0, 0.0}, {5.0, 0.0}}, []Line{
			{Point{0.0, 0.0}, Point{5.0, 0.0}},
			{Point{5.0, 0.0}, Point{10.0, 0.0}},
		}},
		// nothing on the segment: the original comes back whole
		{[]Point{{20.0, 0.0}, {5.0, 3.0}}, []Line{{Point{0.0, 0.0}, Point{10.0, 0.0}}}},
		{nil, []Line{{Point{0.0, 0.0}, Point{10.0, 0.0}}}},
		// only endpoint breaks: still the whole segment
		{[]Point{{0.0, 0.0}, {10.0, 0.0}}, []Line{{Point{0.0, 0.0}, Point{10.0, 0.0}}}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			pieces := BreakLineAtPoints(l, tt.points, 0.0)
			test.T(t, len(pieces), len(tt.pieces))
			for j := range pieces {
				test.T(t, pieces[j], tt.pieces[j])
			}
		})
	}
}

func TestBreakLineDegenerate(t *testing.T) {
	// a zero-length line cannot be broken, whatever points come in
	l := Line{Point{1.0, 1.0}, Point{1.0, 1.0}}
	pieces := BreakLineAtPoints(l, []Point{{50.0, -3.0}, {-7.0, 2.0}, {1.0, 1.0}}, 0.0)
	test.T(t, len(pieces), 1)
	test.T(t, pieces[0], l)
}

func TestBreakLineChains(t *testing.T) {
	// pieces chain A to B and their lengths sum to the original
	l := Line{Point{1.0, 2.0}, Point{7.0, 10.0}}
	points := []Point{
		l.A.Interpolate(l.B, 0.3),
		l.A.Interpolate(l.B, 0.8),
		l.A.Interpolate(l.B, 0.5),
	}
	pieces := BreakLineAtPoints(l, points, 0.0)
	test.T(t, len(pieces), 4)
	test.That(t, pieces[0].A.Equals(l.A))
	test.That(t, pieces[len(pieces)-1].B.Equals(l.B))
	total := 0.0
	for j, piece := range pieces {
		if 0 < j {
			test.That(t, piece.A.Equals(pieces[j-1].B))
		}
		total += piece.Length()
	}
	test.That(t, scalar.EqualWithinAbs(total, l.Length(), 1e-9))
}
