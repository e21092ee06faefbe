package julian

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/base"
)

// Moment pairs a UT Julian Day with its ephemeris counterpart.
//
// Construction fixes the invariant jde == jd + deltaT/86400. A Moment is
// immutable; derived instants are new values. Callers may retain and reuse
// a Moment, which saves recomputing the ΔT estimate.
type Moment struct {
	jd     float64 // UT Julian Day
	deltaT float64 // seconds, ephemeris minus UT
	jde    float64 // ephemeris Julian Day
}

// NewMoment builds a Moment from a UT Julian Day, estimating ΔT.
func NewMoment(jd float64) Moment {
	return NewMomentDeltaT(jd, DeltaT(jd))
}

// NewMomentDeltaT builds a Moment from a UT Julian Day and an explicit ΔT
// in seconds, for callers with a measured value.
func NewMomentDeltaT(jd, deltaT float64) Moment {
	return Moment{
		jd:     jd,
		deltaT: deltaT,
		jde:    jd + deltaT/base.SecondsPerDay,
	}
}

// MomentFromTime builds a Moment from a wall-clock instant.
func MomentFromTime(t time.Time) Moment {
	return NewMoment(TimeToJD(t))
}

// JD returns the UT Julian Day.
func (m Moment) JD() float64 { return m.jd }

// DeltaT returns ΔT in seconds.
func (m Moment) DeltaT() float64 { return m.deltaT }

// JDE returns the ephemeris Julian Day.
func (m Moment) JDE() float64 { return m.jde }

// Century returns Julian centuries from J2000.0 in the UT scale.
func (m Moment) Century() float64 { return J2000Century(m.jd) }

// EphemerisCentury returns Julian centuries from J2000.0 in the ephemeris
// scale, the argument of the periodic series in this module.
func (m Moment) EphemerisCentury() float64 { return J2000Century(m.jde) }

// StartOfDay returns a new Moment at UT midnight of the same day,
// preserving ΔT.
func (m Moment) StartOfDay() Moment {
	return NewMomentDeltaT(math.Floor(m.jde-0.5)+0.5, m.deltaT)
}

// AddDays returns a new Moment offset by a number of days, preserving ΔT.
func (m Moment) AddDays(d float64) Moment {
	return NewMomentDeltaT(m.jd+d, m.deltaT)
}

// Time converts the Moment back to a wall-clock instant in UTC.
func (m Moment) Time() time.Time {
	y, mo, d := JDToCalendar(m.jd)
	day, frac := math.Modf(d)
	sec := frac * base.SecondsPerDay
	return time.Date(y, time.Month(mo), int(day), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(sec * float64(time.Second)))
}
