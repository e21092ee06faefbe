package interp

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewLen3Validation(t *testing.T) {
	if _, err := NewLen3(0, 1, []float64{1, 2}); !errors.Is(err, ErrBadSampleCount) {
		t.Errorf("2 samples: err = %v, want ErrBadSampleCount", err)
	}
	if _, err := NewLen3(0, 1, []float64{1, 2, 3, 4}); !errors.Is(err, ErrBadSampleCount) {
		t.Errorf("4 samples: err = %v, want ErrBadSampleCount", err)
	}
	if _, err := NewLen3(2, 2, []float64{1, 2, 3}); !errors.Is(err, ErrDegenerateRange) {
		t.Errorf("x1 == x3: err = %v, want ErrDegenerateRange", err)
	}
	if _, err := NewLen3(0, 1, []float64{1, 2, 3}); err != nil {
		t.Errorf("valid table: err = %v", err)
	}
}

func TestInterpolateNExactAtSamples(t *testing.T) {
	y := []float64{0.884226, 0.877366, 0.870531}
	l, err := NewLen3(7, 9, y)
	if err != nil {
		t.Fatal(err)
	}
	for i, n := range []float64{-1, 0, 1} {
		if got := l.InterpolateN(n); !scalar.EqualWithinAbs(got, y[i], 1e-12) {
			t.Errorf("InterpolateN(%v) = %v, want %v", n, got, y[i])
		}
	}
}

// Meeus example 3.a: Mars' distance tabulated for 1992 November 7, 8, 9,
// interpolated at 4h21m ET on the 8th.
func TestInterpolateX(t *testing.T) {
	l, err := NewLen3(7, 9, []float64{0.884226, 0.877366, 0.870531})
	if err != nil {
		t.Fatal(err)
	}
	// n = 4h21m / 24h = 0.18125 past the middle sample.
	got := l.InterpolateX(8 + 4.35/24)
	if !scalar.EqualWithinAbs(got, 0.876125, 1e-6) {
		t.Errorf("InterpolateX = %.6f, want 0.876125", got)
	}
}

func TestInterpolateQuadraticExact(t *testing.T) {
	// Samples drawn from y = 2x² - 3x + 1 must be reproduced exactly
	// everywhere, since Bessel's formula is exact through second order.
	f := func(x float64) float64 { return 2*x*x - 3*x + 1 }
	l, err := NewLen3(-1, 3, []float64{f(-1), f(1), f(3)})
	if err != nil {
		t.Fatal(err)
	}
	for x := -1.0; x <= 3; x += 0.125 {
		if got := l.InterpolateX(x); !scalar.EqualWithinAbs(got, f(x), 1e-12) {
			t.Errorf("InterpolateX(%v) = %v, want %v", x, got, f(x))
		}
	}
}
