// Package moon computes the geocentric, apparent, and topocentric position
// of the Moon and its rise, transit, and set times, from the truncated
// ELP-2000/82 series of Meeus ch. 47 (about 10″ in longitude, 4″ in
// latitude).
package moon

import (
	"errors"
	"math"

	"github.com/litescript/ls-almanac/internal/base"
	"github.com/litescript/ls-almanac/internal/coord"
	"github.com/litescript/ls-almanac/internal/earth"
	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/rise"
)

// ErrSeriesMultiplier reports a periodic-series row whose solar-anomaly
// multiplier is outside {-2..2}. The tables are compile-time constants, so
// this can only mean a corrupted table; the summation panics with it.
var ErrSeriesMultiplier = errors.New("lunar series M multiplier outside {-2..2}")

// args holds the fundamental arguments for one moment, in radians, plus
// the eccentricity factor E.
type args struct {
	lp, d, m, mp, f float64
	a1, a2, a3      float64
	e               float64
}

func fundamental(T float64) args {
	deg := func(v float64) float64 { return base.DegToRad(base.PMod(v, 360)) }
	return args{
		// Meeus 47.1 .. 47.5.
		lp: deg(base.MustHorner(T, 218.3164477, 481267.88123421, -0.0015786,
			1/538841.0, -1/65194000.0)),
		d: deg(base.MustHorner(T, 297.8501921, 445267.1114034, -0.0018819,
			1/545868.0, -1/113065000.0)),
		m: deg(base.MustHorner(T, 357.5291092, 35999.0502909, -0.0001536,
			1/24490000.0)),
		mp: deg(base.MustHorner(T, 134.9633964, 477198.8675055, 0.0087414,
			1/69699.0, -1/14712000.0)),
		f: deg(base.MustHorner(T, 93.2720950, 483202.0175233, -0.0036539,
			-1/3526000.0, 1/863310000.0)),
		a1: deg(119.75 + 131.849*T),
		a2: deg(53.09 + 479264.290*T),
		a3: deg(313.45 + 481266.484*T),
		// Meeus 47.6: eccentricity of the Earth's orbit decays with T.
		e: 1 - 0.002516*T - 0.0000074*T*T,
	}
}

// eFactor returns the amplitude multiplier for a term's solar mean-anomaly
// coefficient: 1, E, or E² for |m| of 0, 1, 2.
func eFactor(mCoef int, e float64) float64 {
	switch mCoef {
	case 0:
		return 1
	case 1, -1:
		return e
	case 2, -2:
		return e * e
	default:
		panic(ErrSeriesMultiplier)
	}
}

// Position returns the Moon's geocentric ecliptic longitude and latitude
// in radians and its distance in kilometers.
func Position(mo julian.Moment) (lng, lat, distKm float64) {
	T := mo.EphemerisCentury()
	a := fundamental(T)

	var sumL, sumR float64
	for _, t := range lngTable {
		arg := float64(t.d)*a.d + float64(t.m)*a.m +
			float64(t.mp)*a.mp + float64(t.f)*a.f
		e := eFactor(t.m, a.e)
		sinArg, cosArg := math.Sincos(arg)
		sumL += t.sinCoef * e * sinArg
		sumR += t.cosCoef * e * cosArg
	}
	// Additive terms: Venus (A1), Jupiter (A2), and flattening (L' - F).
	sumL += 3958*math.Sin(a.a1) +
		1962*math.Sin(a.lp-a.f) +
		318*math.Sin(a.a2)

	var sumB float64
	for _, t := range latTable {
		arg := float64(t.d)*a.d + float64(t.m)*a.m +
			float64(t.mp)*a.mp + float64(t.f)*a.f
		sumB += t.sinCoef * eFactor(t.m, a.e) * math.Sin(arg)
	}
	sumB += -2235*math.Sin(a.lp) +
		382*math.Sin(a.a3) +
		175*math.Sin(a.a1-a.f) +
		175*math.Sin(a.a1+a.f) +
		127*math.Sin(a.lp-a.mp) -
		115*math.Sin(a.lp+a.mp)

	lng = base.PMod(a.lp+base.DegToRad(sumL*1e-6), 2*math.Pi)
	lat = base.DegToRad(sumB * 1e-6)
	distKm = 385000.56 + sumR*1e-3
	return lng, lat, distKm
}

// Parallax returns the Moon's equatorial horizontal parallax in radians
// for a distance in kilometers.
func Parallax(distKm float64) float64 {
	return math.Asin(coord.EarthEquatorialRadiusKm / distKm)
}

// ApparentEquatorial returns the Moon's apparent geocentric equatorial
// position (nutation applied) and its distance in kilometers.
func ApparentEquatorial(mo julian.Moment) (coord.Equatorial, float64) {
	lng, lat, distKm := Position(mo)
	deltaPsi, _ := earth.Nutation(mo)
	eps := earth.TrueObliquity(mo)
	eq := coord.EclToEq(coord.Ecliptic{Lat: lat, Lng: lng + deltaPsi}, eps)
	return eq, distKm
}

// Topocentric returns the Moon's topocentric equatorial position for an
// observer, with the rigorous parallax correction, plus the parallactic
// angle q in radians.
func Topocentric(mo julian.Moment, obs coord.Observer) (eq coord.Equatorial, q float64) {
	geo, distKm := ApparentEquatorial(mo)
	rhoSin, rhoCos := coord.ParallaxConstants(obs.Lat, obs.Height)
	sidereal := base.TimeSecToRad(earth.ApparentSiderealTimeGreenwich(mo))
	eq = coord.TopocentricParallax(geo, Parallax(distKm), rhoSin, rhoCos,
		obs.Lng, sidereal)
	q = coord.ParallacticAngle(coord.HourAngle(eq.RA, obs.Lng, sidereal),
		obs.Lat, eq.Dec)
	return eq, q
}

// TopocentricPosition returns the Moon's topocentric equatorial and
// horizontal coordinates. With refraction enabled the altitude is raised
// by the Saemundsson correction to its apparent value.
func TopocentricPosition(mo julian.Moment, obs coord.Observer, refraction bool) (coord.Equatorial, coord.Horizontal) {
	eq, _ := Topocentric(mo, obs)
	sidereal := base.TimeSecToRad(earth.ApparentSiderealTimeGreenwich(mo))
	hz := coord.EqToHz(eq, obs, sidereal)
	if refraction {
		hz.Alt += coord.RefractionSaemundsson(hz.Alt)
	}
	return eq, hz
}

// stdh0 returns the Moon's standard altitude for the day, from the
// parallax at 0h.
func stdh0(day julian.Moment) float64 {
	_, _, distKm := Position(day)
	return rise.Stdh0Lunar(Parallax(distKm))
}

// ApproxTransit returns the approximate meridian transit of the Moon on
// the UT day containing the moment, in seconds of day.
func ApproxTransit(mo julian.Moment, obs coord.Observer) rise.Event {
	return ApproxTimes(mo, obs).Transit
}

// ApproxTimes returns the approximate rise, transit, and set of the Moon
// on the UT day containing the moment.
func ApproxTimes(mo julian.Moment, obs coord.Observer) rise.Times {
	day := mo.StartOfDay()
	th0 := earth.ApparentSiderealTime0UT(day)
	eq, _ := ApparentEquatorial(day)
	return rise.ApproxTimes(obs, stdh0(day), th0, eq)
}

// Times returns the rise, transit, and set of the Moon on the UT day
// containing the moment, refined by three-point interpolation. The Moon
// moves ~13°/day, so the refinement matters much more than for the Sun.
func Times(mo julian.Moment, obs coord.Observer) (rise.Times, error) {
	day := mo.StartOfDay()
	th0 := earth.ApparentSiderealTime0UT(day)
	var eq3 [3]coord.Equatorial
	for i, d := range []float64{-1, 0, 1} {
		eq3[i], _ = ApparentEquatorial(day.AddDays(d))
	}
	return rise.RefineTimes(obs, day.DeltaT(), stdh0(day), th0, eq3)
}
