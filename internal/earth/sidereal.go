package earth

import (
	"math"

	"github.com/litescript/ls-almanac/internal/base"
	"github.com/litescript/ls-almanac/internal/julian"
)

// siderealRate is the ratio of mean sidereal to solar time.
const siderealRate = 1.00273790935

// iau82 are the coefficients of the IAU 1982 GMST polynomial at 0h UT,
// in seconds of time (24110.54841s = 6h41m50.54841s).
var iau82 = []float64{24110.54841, 8640184.812866, 0.093104, -0.0000062}

// MeanSiderealTimeGreenwich returns Greenwich mean sidereal time for a
// moment, in seconds of time in [0, 86400).
func MeanSiderealTimeGreenwich(m julian.Moment) float64 {
	jd0 := math.Floor(m.JD()-0.5) + 0.5 // 0h UT of the same day
	dayFrac := m.JD() - jd0
	T := julian.J2000Century(jd0)
	s := base.MustHorner(T, iau82...) + dayFrac*base.SecondsPerDay*siderealRate
	return base.PMod(s, base.SecondsPerDay)
}

// ApparentSiderealTimeGreenwich returns Greenwich apparent sidereal time
// for a moment, in seconds of time in [0, 86400): the mean value corrected
// by the equation of the equinoxes.
func ApparentSiderealTimeGreenwich(m julian.Moment) float64 {
	s := MeanSiderealTimeGreenwich(m) + base.RadToTimeSec(NutationInRA(m))
	return base.PMod(s, base.SecondsPerDay)
}

// ApparentSiderealTime0UT returns Greenwich apparent sidereal time at 0h UT
// of the moment's day, the reference value the rise/set solver needs.
func ApparentSiderealTime0UT(m julian.Moment) float64 {
	return ApparentSiderealTimeGreenwich(m.StartOfDay())
}

// ApparentSiderealTimeLocal returns local apparent sidereal time in seconds
// of time in [0, 86400). Longitude is in radians, positive westward per the
// astronomical convention.
func ApparentSiderealTimeLocal(m julian.Moment, lng float64) float64 {
	s := ApparentSiderealTimeGreenwich(m) - base.RadToTimeSec(lng)
	return base.PMod(s, base.SecondsPerDay)
}
