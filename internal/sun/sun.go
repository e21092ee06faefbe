// Package sun computes the apparent and topocentric position of the Sun
// and its rise, transit, and set times, from the low-accuracy solar theory
// of Meeus ch. 25 (good to about 0.01°).
package sun

import (
	"math"

	"github.com/litescript/ls-almanac/internal/base"
	"github.com/litescript/ls-almanac/internal/coord"
	"github.com/litescript/ls-almanac/internal/earth"
	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/rise"
)

// solarParallaxSec is the solar parallax at 1 AU, arcseconds.
const solarParallaxSec = 8.794

// meanAnomaly returns the Sun's mean anomaly M in radians (Meeus 25.3).
func meanAnomaly(T float64) float64 {
	return base.DegToRad(base.MustHorner(T, 357.52911, 35999.05029, -0.0001537))
}

// apparentLongitude returns the Sun's apparent ecliptic longitude in
// radians, plus the longitude of the ascending node Ω used by the
// obliquity correction.
func apparentLongitude(T float64) (lng, omega float64) {
	// Geometric mean longitude, Meeus 25.2.
	l0 := base.MustHorner(T, 280.46646, 36000.76983, 0.0003032)

	// Equation of center.
	m := meanAnomaly(T)
	c := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(m) +
		(0.019993-0.000101*T)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)

	// Aberration and the Ω-dependent part of nutation.
	omega = base.DegToRad(125.04 - 1934.136*T)
	lng = base.DegToRad(l0+c-0.00569-0.00478*math.Sin(omega))
	return base.PMod(lng, 2*math.Pi), omega
}

// RadiusVector returns the Sun-Earth distance in AU (Meeus 25.5).
func RadiusVector(m julian.Moment) float64 {
	T := m.EphemerisCentury()
	ma := meanAnomaly(T)
	c := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(ma) +
		(0.019993-0.000101*T)*math.Sin(2*ma) +
		0.000289*math.Sin(3*ma)
	nu := ma + base.DegToRad(c)
	e := base.MustHorner(T, 0.016708634, -0.000042037, -0.0000001267)
	return 1.000001018 * (1 - e*e) / (1 + e*math.Cos(nu))
}

// Parallax returns the Sun's equatorial horizontal parallax in radians for
// a moment.
func Parallax(m julian.Moment) float64 {
	return base.SecToRad(solarParallaxSec) / RadiusVector(m)
}

// ApparentEquatorial returns the Sun's apparent geocentric equatorial
// position. The obliquity carries the 0.00256° cos Ω perturbation that
// pairs with the apparent longitude (Meeus 25.8).
func ApparentEquatorial(m julian.Moment) coord.Equatorial {
	T := m.EphemerisCentury()
	lng, omega := apparentLongitude(T)
	eps := earth.MeanObliquityLaskar(m) + base.DegToRad(0.00256*math.Cos(omega))
	return coord.EclToEq(coord.Ecliptic{Lng: lng}, eps)
}

// Topocentric returns the Sun's topocentric equatorial position for an
// observer, using the simplified parallax correction appropriate for the
// Sun's small parallax.
func Topocentric(m julian.Moment, obs coord.Observer) coord.Equatorial {
	eq := ApparentEquatorial(m)
	rhoSin, rhoCos := coord.ParallaxConstants(obs.Lat, obs.Height)
	sidereal := base.TimeSecToRad(earth.ApparentSiderealTimeGreenwich(m))
	return coord.TopocentricParallaxSimplified(eq, Parallax(m), rhoSin, rhoCos,
		obs.Lng, sidereal)
}

// TopocentricPosition returns the Sun's topocentric equatorial and
// horizontal coordinates. With refraction enabled the altitude is raised
// by the Saemundsson correction to its apparent value.
func TopocentricPosition(m julian.Moment, obs coord.Observer, refraction bool) (coord.Equatorial, coord.Horizontal) {
	eq := Topocentric(m, obs)
	sidereal := base.TimeSecToRad(earth.ApparentSiderealTimeGreenwich(m))
	hz := coord.EqToHz(eq, obs, sidereal)
	if refraction {
		hz.Alt += coord.RefractionSaemundsson(hz.Alt)
	}
	return eq, hz
}

// ApproxTransit returns the approximate meridian transit of the Sun on
// the UT day containing the moment, in seconds of day.
func ApproxTransit(m julian.Moment, obs coord.Observer) rise.Event {
	return ApproxTimes(m, obs).Transit
}

// ApproxTimes returns the approximate rise, transit, and set of the Sun on
// the UT day containing the moment.
func ApproxTimes(m julian.Moment, obs coord.Observer) rise.Times {
	day := m.StartOfDay()
	th0 := earth.ApparentSiderealTime0UT(day)
	return rise.ApproxTimes(obs, rise.Stdh0Solar, th0, ApparentEquatorial(day))
}

// Times returns the rise, transit, and set of the Sun on the UT day
// containing the moment, refined by three-point interpolation.
func Times(m julian.Moment, obs coord.Observer) (rise.Times, error) {
	day := m.StartOfDay()
	th0 := earth.ApparentSiderealTime0UT(day)
	eq3 := [3]coord.Equatorial{
		ApparentEquatorial(day.AddDays(-1)),
		ApparentEquatorial(day),
		ApparentEquatorial(day.AddDays(1)),
	}
	return rise.RefineTimes(obs, day.DeltaT(), rise.Stdh0Solar, th0, eq3)
}
