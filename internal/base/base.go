// Package base provides the small numeric helpers shared by the almanac math.
package base

import (
	"errors"
	"math"
)

// ErrEmptyCoefficients is returned by Horner when given no coefficients.
var ErrEmptyCoefficients = errors.New("polynomial needs at least one coefficient")

// J2000 is the Julian Day of the J2000.0 epoch (2000 January 1.5 TD).
const J2000 = 2451545.0

// SecondsPerDay is the number of SI seconds in a day.
const SecondsPerDay = 86400.0

// PMod returns x mod y, mapped into [0, y).
// The result is only meaningful for positive y.
func PMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r < 0 {
		r += y
	}
	return r
}

// Modf splits v into integer and fractional parts, both carrying the
// sign of v, such that int + frac == v.
func Modf(v float64) (int float64, frac float64) {
	return math.Modf(v)
}

// Horner evaluates a polynomial at x using Horner's scheme.
// coeffs[0] is the constant term.
func Horner(x float64, coeffs ...float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrEmptyCoefficients
	}
	y := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y, nil
}

// MustHorner is Horner for the fixed coefficient lists baked into this
// module, where an empty list cannot occur.
func MustHorner(x float64, coeffs ...float64) float64 {
	y, err := Horner(x, coeffs...)
	if err != nil {
		panic(err)
	}
	return y
}

// Round rounds v to the given number of decimal digits.
func Round(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(v*scale) / scale
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// SecToRad converts arcseconds to radians.
func SecToRad(sec float64) float64 {
	return sec * math.Pi / (180 * 3600)
}

// TimeSecToRad converts seconds of time to radians (86400 s = 2π).
func TimeSecToRad(sec float64) float64 {
	return sec * 2 * math.Pi / SecondsPerDay
}

// RadToTimeSec converts radians to seconds of time.
func RadToTimeSec(rad float64) float64 {
	return rad * SecondsPerDay / (2 * math.Pi)
}
