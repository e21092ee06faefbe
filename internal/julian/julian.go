// Package julian implements Julian Day arithmetic and calendar conversion.
//
// A Julian Day is a continuous count of days from a fixed epoch, used as the
// uniform time axis for all almanac math. Conversions follow chapter 7 of
// Meeus, "Astronomical Algorithms": the Gregorian calendar applies to
// instants on or after 1582 October 15, the Julian calendar before.
package julian

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/base"
)

// gregorianReform is the first instant of the Gregorian calendar.
var gregorianReform = time.Date(1582, 10, 15, 0, 0, 0, 0, time.UTC)

// CalendarGregorianToJD converts a proleptic Gregorian calendar date to a
// Julian Day. The day may carry a fraction. Valid back to JD 0.
func CalendarGregorianToJD(y, m int, d float64) float64 {
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		d + b - 1524.5
}

// CalendarJulianToJD converts a proleptic Julian calendar date to a
// Julian Day. The day may carry a fraction. Valid back to JD 0.
func CalendarJulianToJD(y, m int, d float64) float64 {
	if m <= 2 {
		y--
		m += 12
	}
	return math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		d - 1524.5
}

// TimeToJD converts a time.Time to a Julian Day, choosing the calendar by
// the Gregorian reform instant.
func TimeToJD(t time.Time) float64 {
	t = t.UTC()
	d := float64(t.Day()) +
		(float64(t.Hour())+
			float64(t.Minute())/60+
			(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600)/24
	if t.Before(gregorianReform) {
		return CalendarJulianToJD(t.Year(), int(t.Month()), d)
	}
	return CalendarGregorianToJD(t.Year(), int(t.Month()), d)
}

// JDToCalendar converts a Julian Day to a calendar date. The returned day
// carries the time of day as a fraction. The Gregorian calendar is used for
// JD at or after 2299161 (1582 October 15), the Julian calendar before.
func JDToCalendar(jd float64) (year, month int, day float64) {
	z, f := math.Modf(jd + 0.5)
	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = b - d - math.Floor(30.6001*e) + f
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}
	return year, month, day
}

// LeapYearGregorian reports whether a Gregorian calendar year is a leap year.
func LeapYearGregorian(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// J2000Century returns the Julian centuries elapsed since J2000.0 for a
// Julian Day, in either the UT or ephemeris time scale.
func J2000Century(jd float64) float64 {
	return (jd - base.J2000) / 36525
}

// JDToJDE converts a UT Julian Day to an ephemeris Julian Day using the
// estimated ΔT for that day.
func JDToJDE(jd float64) float64 {
	return jd + DeltaT(jd)/base.SecondsPerDay
}

// JDEToJD converts an ephemeris Julian Day back to a UT Julian Day.
// ΔT is estimated from the ephemeris day itself, which is accurate to far
// better than ΔT's own uncertainty.
func JDEToJD(jde float64) float64 {
	return jde - DeltaT(jde)/base.SecondsPerDay
}
