package coord

import (
	"math"

	"github.com/litescript/ls-almanac/internal/base"
)

// EarthEquatorialRadiusKm is the IAU 1976 equatorial radius of the Earth.
const EarthEquatorialRadiusKm = 6378.14

// earthAxisRatio is b/a for the flattening 1/298.257.
const earthAxisRatio = 0.99664719

// ParallaxConstants returns ρ sin φ′ and ρ cos φ′ for a geodetic latitude
// (radians) and height above the ellipsoid (meters), reducing to the
// geocentric latitude φ′ (Meeus ch. 11).
func ParallaxConstants(lat, heightM float64) (rhoSin, rhoCos float64) {
	u := math.Atan(earthAxisRatio * math.Tan(lat))
	hScale := heightM / (EarthEquatorialRadiusKm * 1000)
	rhoSin = earthAxisRatio*math.Sin(u) + hScale*math.Sin(lat)
	rhoCos = math.Cos(u) + hScale*math.Cos(lat)
	return rhoSin, rhoCos
}

// TopocentricParallax shifts a geocentric equatorial position to the
// observer's topocentric position using the rigorous correction
// (Meeus 40.2, 40.3), appropriate for the Moon and other near bodies.
// parallax is the body's equatorial horizontal parallax in radians;
// siderealRad is Greenwich apparent sidereal time in radians.
func TopocentricParallax(eq Equatorial, parallax, rhoSin, rhoCos, lng, siderealRad float64) Equatorial {
	h := HourAngle(eq.RA, lng, siderealRad)
	sinPi := math.Sin(parallax)
	sinH, cosH := math.Sincos(h)
	sinDec, cosDec := math.Sincos(eq.Dec)

	denom := cosDec - rhoCos*sinPi*cosH
	deltaRA := math.Atan2(-rhoCos*sinPi*sinH, denom)
	dec := math.Atan2((sinDec-rhoSin*sinPi)*math.Cos(deltaRA), denom)

	return Equatorial{
		RA:  base.PMod(eq.RA+deltaRA, 2*math.Pi),
		Dec: dec,
	}
}

// TopocentricParallaxSimplified shifts a geocentric equatorial position to
// the topocentric one with the linearized correction (Meeus 40.4, 40.5),
// valid when the parallax is small (Sun, planets).
func TopocentricParallaxSimplified(eq Equatorial, parallax, rhoSin, rhoCos, lng, siderealRad float64) Equatorial {
	h := HourAngle(eq.RA, lng, siderealRad)
	sinH, cosH := math.Sincos(h)
	sinDec, cosDec := math.Sincos(eq.Dec)

	deltaRA := -parallax * rhoCos * sinH / cosDec
	deltaDec := -parallax * (rhoSin*cosDec - rhoCos*cosH*sinDec)

	return Equatorial{
		RA:  base.PMod(eq.RA+deltaRA, 2*math.Pi),
		Dec: eq.Dec + deltaDec,
	}
}
