package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAngleNorm(t *testing.T) {
	var tts = []struct {
		theta, norm float64
	}{
		{0.0, 0.0},
		{1.0, 1.0},
		{2.0 * math.Pi, 0.0},
		{-0.5 * math.Pi, 1.5 * math.Pi},
		{5.0 * math.Pi, math.Pi},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.Float(t, angleNorm(tt.theta), tt.norm)
		})
	}
}

func TestSolveQuadratic(t *testing.T) {
	var tts = []struct {
		a, b, c float64
		x1, x2  float64
	}{
		{1.0, 0.0, -1.0, -1.0, 1.0},
		{1.0, -2.0, 1.0, 1.0, math.NaN()},
		{1.0, 0.0, 1.0, math.NaN(), math.NaN()},
		{0.0, 2.0, -4.0, 2.0, math.NaN()},
		{0.0, 0.0, 1.0, math.NaN(), math.NaN()},
		{1.0, -3.0, 0.0, 0.0, 3.0},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			x1, x2 := solveQuadratic(tt.a, tt.b, tt.c)
			test.Float(t, x1, tt.x1)
			test.Float(t, x2, tt.x2)
		})
	}
}

func TestToleranceDefault(t *testing.T) {
	test.Float(t, tolerance(0.0), DefaultTolerance)
	test.Float(t, tolerance(-1.0), DefaultTolerance)
	test.Float(t, tolerance(1e-6), 1e-6)
}
