// Package rise computes rise, transit, and set instants for celestial
// bodies (Meeus ch. 15).
//
// Times are seconds of day in [0, 86400) on the UT day of interest, with
// an integer day offset for events that spill onto the neighboring
// calendar day. The circumpolar case, where a body never crosses its
// standard altitude, is a result variant, not an error.
package rise

import (
	"math"

	"github.com/litescript/ls-almanac/internal/base"
	"github.com/litescript/ls-almanac/internal/coord"
	"github.com/litescript/ls-almanac/internal/interp"
)

// Standard altitudes: the geometric altitude of a body's center at the
// instant conventionally called rise or set.
var (
	// Stdh0Stellar applies to stars and planets: -34' of refraction.
	Stdh0Stellar = base.DegToRad(-0.5667)

	// Stdh0Solar applies to the Sun: refraction plus semidiameter, -50'.
	Stdh0Solar = base.DegToRad(-0.8333)

	// meanRefraction is the adopted refraction at the horizon, 34'.
	meanRefraction = base.DegToRad(0.5667)
)

// Stdh0Lunar returns the Moon's standard altitude for a given horizontal
// parallax (radians): 0.7275 π − 34'.
func Stdh0Lunar(parallax float64) float64 {
	return 0.7275*parallax - meanRefraction
}

// Status classifies the day's event geometry.
type Status int

const (
	// StatusCrosses means the body crosses the standard altitude: rise,
	// transit, and set all occur.
	StatusCrosses Status = iota

	// StatusAboveHorizon means the body stays above the standard altitude
	// all day (circumpolar). Only the transit is meaningful.
	StatusAboveHorizon

	// StatusBelowHorizon means the body stays below the standard altitude
	// all day. Only the transit is meaningful.
	StatusBelowHorizon
)

// Event is an instant within the day of interest: seconds of day in
// [0, 86400) plus the day offset (-1, 0, or +1) it actually falls on.
type Event struct {
	Sec       float64
	DayOffset int
}

// Times holds a day's transit, rise, and set. Rise and Set are only valid
// when Status is StatusCrosses.
type Times struct {
	Status  Status
	Transit Event
	Rise    Event
	Set     Event
}

// reduce maps a raw seconds value onto [0, 86400) with its day offset.
func reduce(sec float64) Event {
	day := math.Floor(sec / base.SecondsPerDay)
	return Event{
		Sec:       sec - day*base.SecondsPerDay,
		DayOffset: int(day),
	}
}

// cosH0 evaluates the circumpolar test quantity for a standard altitude,
// observer latitude, and declination (Meeus 15.1).
func cosH0(h0, lat, dec float64) float64 {
	return (math.Sin(h0) - math.Sin(lat)*math.Sin(dec)) /
		(math.Cos(lat) * math.Cos(dec))
}

// ApproxTimes computes the approximate transit, rise, and set of a body
// from its apparent geocentric position at 0h on the day of interest.
// h0 is the standard altitude, th0 the Greenwich apparent sidereal time at
// 0h UT in seconds of time.
func ApproxTimes(obs coord.Observer, h0, th0 float64, eq coord.Equatorial) Times {
	// Transit: when the local hour angle vanishes (Meeus 15.2).
	transitRaw := base.RadToTimeSec(eq.RA+obs.Lng) - th0

	c := cosH0(h0, obs.Lat, eq.Dec)
	switch {
	case c > 1:
		return Times{Status: StatusBelowHorizon, Transit: reduce(transitRaw)}
	case c < -1:
		return Times{Status: StatusAboveHorizon, Transit: reduce(transitRaw)}
	}

	// Half the day arc, in seconds of time. A grazing geometry (c = ±1)
	// collapses rise and set onto the transit.
	halfArc := base.RadToTimeSec(math.Acos(c))

	return Times{
		Status:  StatusCrosses,
		Transit: reduce(transitRaw),
		Rise:    reduce(transitRaw - halfArc),
		Set:     reduce(transitRaw + halfArc),
	}
}

// RefineTimes refines ApproxTimes with three-point interpolation of the body's
// position across the day. eq3 holds apparent geocentric positions at 0h
// on the previous, current, and next day; deltaT shifts the interpolation
// argument from UT to ephemeris time. Each instant receives a single
// correction pass, matching the precision of the underlying series.
func RefineTimes(obs coord.Observer, deltaT, h0, th0 float64, eq3 [3]coord.Equatorial) (Times, error) {
	raTab, err := interp.NewLen3(-base.SecondsPerDay, base.SecondsPerDay,
		unwrapRA(eq3))
	if err != nil {
		return Times{}, err
	}
	decTab, err := interp.NewLen3(-base.SecondsPerDay, base.SecondsPerDay,
		[]float64{eq3[0].Dec, eq3[1].Dec, eq3[2].Dec})
	if err != nil {
		return Times{}, err
	}

	approx := ApproxTimes(obs, h0, th0, eq3[1])

	refineTransit := func(ev Event) Event {
		sec := float64(ev.DayOffset)*base.SecondsPerDay + ev.Sec
		ra := raTab.InterpolateX(sec + deltaT)
		h := hourAngleAt(th0, sec, obs.Lng, ra)
		return reduce(sec - base.RadToTimeSec(h))
	}

	refineCross := func(ev Event) Event {
		sec := float64(ev.DayOffset)*base.SecondsPerDay + ev.Sec
		ra := raTab.InterpolateX(sec + deltaT)
		dec := decTab.InterpolateX(sec + deltaT)
		h := hourAngleAt(th0, sec, obs.Lng, ra)

		sinLat, cosLat := math.Sincos(obs.Lat)
		sinDec, cosDec := math.Sincos(dec)
		alt := math.Asin(sinLat*sinDec + cosLat*cosDec*math.Cos(h))

		// Altitude residual converted to a time correction (Meeus ch. 15).
		dDays := (alt - h0) / (2 * math.Pi * cosDec * cosLat * math.Sin(h))
		return reduce(sec + dDays*base.SecondsPerDay)
	}

	out := Times{Status: approx.Status, Transit: refineTransit(approx.Transit)}
	if approx.Status == StatusCrosses {
		out.Rise = refineCross(approx.Rise)
		out.Set = refineCross(approx.Set)
	}
	return out, nil
}

// hourAngleAt returns the local hour angle in (-π, π] at a given second of
// the day, advancing the 0h sidereal time at the sidereal rate.
func hourAngleAt(th0, sec, lng, ra float64) float64 {
	sidereal := th0 + sec*1.00273790935
	h := base.PMod(base.TimeSecToRad(sidereal)-lng-ra, 2*math.Pi)
	if h > math.Pi {
		h -= 2 * math.Pi
	}
	return h
}

// unwrapRA lifts the three right ascensions onto a continuous branch so
// the interpolation table is not broken by the 0/2π seam.
func unwrapRA(eq3 [3]coord.Equatorial) []float64 {
	y := []float64{eq3[0].RA, eq3[1].RA, eq3[2].RA}
	for i := 1; i < 3; i++ {
		for y[i] < y[i-1]-math.Pi {
			y[i] += 2 * math.Pi
		}
		for y[i] > y[i-1]+math.Pi {
			y[i] -= 2 * math.Pi
		}
	}
	return y
}
