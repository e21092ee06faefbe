// Package coord provides celestial coordinate types and the transforms
// between ecliptic, equatorial, and horizontal frames, plus parallax and
// atmospheric refraction corrections.
//
// All angles are radians. Observer longitude follows the astronomical
// convention, positive westward from Greenwich; the geographic constructors
// accept the usual east-positive sign and negate it.
package coord

import (
	"errors"
	"math"

	"github.com/litescript/ls-almanac/internal/base"
)

// ErrInvalidCoordinate is returned when a coordinate component is NaN.
var ErrInvalidCoordinate = errors.New("coordinate component is NaN")

// Ecliptic is a position on the ecliptic sphere: latitude β and longitude λ
// in radians, with an optional height (kilometers for body distances).
type Ecliptic struct {
	Lat    float64
	Lng    float64
	Height float64
}

// NewEcliptic validates and builds an ecliptic coordinate.
func NewEcliptic(lat, lng float64) (Ecliptic, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return Ecliptic{}, ErrInvalidCoordinate
	}
	return Ecliptic{Lat: lat, Lng: lng}, nil
}

// Equatorial is a position on the celestial equator frame: right ascension α
// in [0, 2π) and declination δ, in radians.
type Equatorial struct {
	RA  float64
	Dec float64
}

// NewEquatorial validates and builds an equatorial coordinate.
func NewEquatorial(ra, dec float64) (Equatorial, error) {
	if math.IsNaN(ra) || math.IsNaN(dec) {
		return Equatorial{}, ErrInvalidCoordinate
	}
	return Equatorial{RA: ra, Dec: dec}, nil
}

// Horizontal is an observer-relative position: azimuth measured westward
// from south (Meeus convention) and altitude above the horizon, radians.
type Horizontal struct {
	Az  float64
	Alt float64
}

// NewHorizontal validates and builds a horizontal coordinate.
func NewHorizontal(az, alt float64) (Horizontal, error) {
	if math.IsNaN(az) || math.IsNaN(alt) {
		return Horizontal{}, ErrInvalidCoordinate
	}
	return Horizontal{Az: az, Alt: alt}, nil
}

// Observer is a ground site. Lat is geodetic latitude, Lng is longitude
// positive westward, both radians. Height is meters above the ellipsoid.
type Observer struct {
	Lat    float64
	Lng    float64
	Height float64
}

// NewObserverGeographic builds an Observer from the geographic convention:
// degrees, longitude positive eastward.
func NewObserverGeographic(latDeg, lonDegEast, heightM float64) Observer {
	return Observer{
		Lat:    base.DegToRad(latDeg),
		Lng:    base.DegToRad(-lonDegEast),
		Height: heightM,
	}
}

// LonDegEast returns the observer longitude back in the geographic
// east-positive degree convention.
func (o Observer) LonDegEast() float64 {
	return -base.RadToDeg(o.Lng)
}

// LatDeg returns the observer latitude in degrees.
func (o Observer) LatDeg() float64 {
	return base.RadToDeg(o.Lat)
}

// EclToEq transforms ecliptic to equatorial coordinates for a given
// obliquity of the ecliptic (Meeus 13.3, 13.4).
func EclToEq(ecl Ecliptic, obliquity float64) Equatorial {
	sinEps, cosEps := math.Sincos(obliquity)
	sinLng, cosLng := math.Sincos(ecl.Lng)
	ra := math.Atan2(sinLng*cosEps-math.Tan(ecl.Lat)*sinEps, cosLng)
	dec := math.Asin(math.Sin(ecl.Lat)*cosEps + math.Cos(ecl.Lat)*sinEps*sinLng)
	return Equatorial{RA: base.PMod(ra, 2*math.Pi), Dec: dec}
}

// EqToEcl transforms equatorial to ecliptic coordinates for a given
// obliquity of the ecliptic (Meeus 13.1, 13.2).
func EqToEcl(eq Equatorial, obliquity float64) Ecliptic {
	sinEps, cosEps := math.Sincos(obliquity)
	sinRA, cosRA := math.Sincos(eq.RA)
	lng := math.Atan2(sinRA*cosEps+math.Tan(eq.Dec)*sinEps, cosRA)
	lat := math.Asin(math.Sin(eq.Dec)*cosEps - math.Cos(eq.Dec)*sinEps*sinRA)
	return Ecliptic{Lat: lat, Lng: base.PMod(lng, 2*math.Pi)}
}

// EqToHz transforms equatorial to horizontal coordinates for an observer
// and a Greenwich apparent sidereal time given in radians (Meeus 13.5,
// 13.6). Azimuth is westward from south.
func EqToHz(eq Equatorial, obs Observer, siderealRad float64) Horizontal {
	h := HourAngle(eq.RA, obs.Lng, siderealRad)
	sinH, cosH := math.Sincos(h)
	sinLat, cosLat := math.Sincos(obs.Lat)
	az := math.Atan2(sinH, cosH*sinLat-math.Tan(eq.Dec)*cosLat)
	alt := math.Asin(sinLat*math.Sin(eq.Dec) + cosLat*math.Cos(eq.Dec)*cosH)
	return Horizontal{Az: base.PMod(az, 2*math.Pi), Alt: alt}
}

// HourAngle returns the local hour angle H = θ − L − α in radians,
// normalized into [0, 2π).
func HourAngle(ra, lng, siderealRad float64) float64 {
	return base.PMod(siderealRad-lng-ra, 2*math.Pi)
}

// ParallacticAngle returns the angle q between the celestial meridian and
// the vertical circle through a body (Meeus 14.1). H is the local hour
// angle, lat the observer latitude, dec the body declination.
func ParallacticAngle(h, lat, dec float64) float64 {
	sinH, cosH := math.Sincos(h)
	return math.Atan2(sinH, math.Tan(lat)*math.Cos(dec)-math.Sin(dec)*cosH)
}
