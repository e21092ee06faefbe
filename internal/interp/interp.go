// Package interp implements three-point interpolation over equally spaced
// samples (Meeus ch. 3), used to refine body positions at arbitrary
// fractions of a day.
package interp

import "errors"

// Errors returned by NewLen3.
var (
	ErrBadSampleCount  = errors.New("interpolation table needs exactly 3 samples")
	ErrDegenerateRange = errors.New("interpolation range must have x3 != x1")
)

// Len3 interpolates over three equally spaced samples at x1, (x1+x3)/2,
// and x3, using Bessel's central-difference formula. The differences are
// precomputed at construction.
type Len3 struct {
	x1, x3  float64
	y       [3]float64
	a, b, c float64
	abSum   float64
}

// NewLen3 builds an interpolation table from the two outer abscissae and
// three equally spaced sample values.
func NewLen3(x1, x3 float64, y []float64) (*Len3, error) {
	if len(y) != 3 {
		return nil, ErrBadSampleCount
	}
	if x3 == x1 {
		return nil, ErrDegenerateRange
	}
	l := &Len3{x1: x1, x3: x3}
	copy(l.y[:], y)
	l.a = l.y[1] - l.y[0]
	l.b = l.y[2] - l.y[1]
	l.c = l.b - l.a
	l.abSum = l.a + l.b
	return l, nil
}

// InterpolateN evaluates the table at the unitless interpolating factor n,
// where n = -1, 0, +1 land on the three samples (Meeus 3.3).
func (l *Len3) InterpolateN(n float64) float64 {
	return l.y[1] + n*0.5*(l.abSum+n*l.c)
}

// InterpolateX evaluates the table at an abscissa x by converting it to
// the interpolating factor n = (2x - (x1+x3)) / (x3-x1).
func (l *Len3) InterpolateX(x float64) float64 {
	return l.InterpolateN((2*x - (l.x1 + l.x3)) / (l.x3 - l.x1))
}
