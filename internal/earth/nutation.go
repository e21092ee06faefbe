// Package earth implements Earth-orientation corrections: nutation,
// obliquity of the ecliptic, and sidereal time.
package earth

import (
	"math"

	"github.com/litescript/ls-almanac/internal/base"
	"github.com/litescript/ls-almanac/internal/julian"
)

// nutationTerm is one row of the IAU 1980 nutation series. Multipliers
// apply to the five fundamental arguments D, M, M′, F, Ω; amplitudes are
// in units of 0.0001″, with a secular term per Julian century.
type nutationTerm struct {
	d, m, mp, f, om float64
	psi, psiT       float64 // sin coefficient for Δψ
	eps, epsT       float64 // cos coefficient for Δε
}

// IAU 1980 nutation series, Meeus table 22.A. Terms below 0.0003″ are
// neglected. Rows are in the published largest-first order; summation runs
// the table backwards so the small terms accumulate first.
var nutationTable = []nutationTerm{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{-2, 0, 0, 2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 0, 2, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 0, 1, 0, 0, 712, 0.1, -7, 0},
	{-2, 1, 0, 2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 0, 2, 1, -386, -0.4, 200, 0},
	{0, 0, 1, 2, 2, -301, 0, 129, -0.1},
	{-2, -1, 0, 2, 2, 217, -0.5, -95, 0.3},
	{-2, 0, 1, 0, 0, -158, 0, 0, 0},
	{-2, 0, 0, 2, 1, 129, 0.1, -70, 0},
	{0, 0, -1, 2, 2, 123, 0, -53, 0},
	{2, 0, 0, 0, 0, 63, 0, 0, 0},
	{0, 0, 1, 0, 1, 63, 0.1, -33, 0},
	{2, 0, -1, 2, 2, -59, 0, 26, 0},
	{0, 0, -1, 0, 1, -58, -0.1, 32, 0},
	{0, 0, 1, 2, 1, -51, 0, 27, 0},
	{-2, 0, 2, 0, 0, 48, 0, 0, 0},
	{0, 0, -2, 2, 1, 46, 0, -24, 0},
	{2, 0, 0, 2, 2, -38, 0, 16, 0},
	{0, 0, 2, 2, 2, -31, 0, 13, 0},
	{0, 0, 2, 0, 0, 29, 0, 0, 0},
	{-2, 0, 1, 2, 2, 29, 0, -12, 0},
	{0, 0, 0, 2, 0, 26, 0, 0, 0},
	{-2, 0, 0, 2, 0, -22, 0, 0, 0},
	{0, 0, -1, 2, 1, 21, 0, -10, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0, 0},
	{2, 0, -1, 0, 1, 16, 0, -8, 0},
	{-2, 2, 0, 2, 2, -16, 0.1, 7, 0},
	{0, 1, 0, 0, 1, -15, 0, 9, 0},
	{-2, 0, 1, 0, 1, -13, 0, 7, 0},
	{0, -1, 0, 0, 1, -12, 0, 6, 0},
	{0, 0, 2, -2, 0, 11, 0, 0, 0},
	{2, 0, -1, 2, 1, -10, 0, 5, 0},
	{2, 0, 1, 2, 2, -8, 0, 3, 0},
	{0, 1, 0, 2, 2, 7, 0, -3, 0},
	{-2, 1, 1, 0, 0, -7, 0, 0, 0},
	{0, -1, 0, 2, 2, -7, 0, 3, 0},
	{2, 0, 0, 2, 1, -7, 0, 3, 0},
	{2, 0, 1, 0, 0, 6, 0, 0, 0},
	{-2, 0, 2, 2, 2, 6, 0, -3, 0},
	{-2, 0, 1, 2, 1, 6, 0, -3, 0},
	{2, 0, -2, 0, 1, -6, 0, 3, 0},
	{2, 0, 0, 0, 1, -6, 0, 3, 0},
	{0, -1, 1, 0, 0, 5, 0, 0, 0},
	{-2, -1, 0, 2, 1, -5, 0, 3, 0},
	{-2, 0, 0, 0, 1, -5, 0, 3, 0},
	{0, 0, 2, 2, 1, -5, 0, 3, 0},
	{-2, 0, 2, 0, 1, 4, 0, 0, 0},
	{-2, 1, 0, 2, 1, 4, 0, 0, 0},
	{0, 0, 1, -2, 0, 4, 0, 0, 0},
	{-1, 0, 1, 0, 0, -4, 0, 0, 0},
	{-2, 1, 0, 0, 0, -4, 0, 0, 0},
	{1, 0, 0, 0, 0, -4, 0, 0, 0},
	{0, 0, 1, 2, 0, 3, 0, 0, 0},
	{0, 0, -2, 2, 2, -3, 0, 0, 0},
	{-1, -1, 1, 0, 0, -3, 0, 0, 0},
	{0, 1, 1, 0, 0, -3, 0, 0, 0},
	{0, -1, 1, 2, 2, -3, 0, 0, 0},
	{2, -1, -1, 2, 2, -3, 0, 0, 0},
	{0, 0, 3, 2, 2, -3, 0, 0, 0},
	{2, -1, 0, 2, 2, -3, 0, 0, 0},
}

// Nutation returns the nutation in longitude (Δψ) and obliquity (Δε) in
// radians for a moment, from the IAU 1980 series.
func Nutation(m julian.Moment) (deltaPsi, deltaEps float64) {
	T := m.EphemerisCentury()

	// Fundamental arguments, Meeus 22.1, in degrees.
	d := base.MustHorner(T, 297.85036, 445267.111480, -0.0019142, 1/189474.0)
	ms := base.MustHorner(T, 357.52772, 35999.050340, -0.0001603, -1/300000.0)
	mp := base.MustHorner(T, 134.96298, 477198.867398, 0.0086972, 1/56250.0)
	f := base.MustHorner(T, 93.27191, 483202.017538, -0.0036825, 1/327270.0)
	om := base.MustHorner(T, 125.04452, -1934.136261, 0.0020708, 1/450000.0)

	d = base.DegToRad(d)
	ms = base.DegToRad(ms)
	mp = base.DegToRad(mp)
	f = base.DegToRad(f)
	om = base.DegToRad(om)

	// Sum smallest terms first to limit accumulation error.
	var psi, eps float64
	for i := len(nutationTable) - 1; i >= 0; i-- {
		t := nutationTable[i]
		arg := t.d*d + t.m*ms + t.mp*mp + t.f*f + t.om*om
		psi += (t.psi + t.psiT*T) * math.Sin(arg)
		eps += (t.eps + t.epsT*T) * math.Cos(arg)
	}

	// Amplitudes are in 0.0001″.
	return base.SecToRad(psi * 1e-4), base.SecToRad(eps * 1e-4)
}

// NutationInRA returns the nutation in right ascension (the equation of the
// equinoxes) in radians.
func NutationInRA(m julian.Moment) float64 {
	deltaPsi, _ := Nutation(m)
	return deltaPsi * math.Cos(TrueObliquity(m))
}
