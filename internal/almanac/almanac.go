// Package almanac assembles the per-day and per-instant sun/moon data the
// UI and headless modes display. It is a thin orchestration layer over the
// position and rise/set packages; everything here is in display-friendly
// degrees, with azimuth measured eastward from north.
package almanac

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/base"
	"github.com/litescript/ls-almanac/internal/coord"
	"github.com/litescript/ls-almanac/internal/earth"
	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/moon"
	"github.com/litescript/ls-almanac/internal/rise"
	"github.com/litescript/ls-almanac/internal/sun"
)

// EventTime is a rise/transit/set instant. Valid is false when the event
// does not occur on the day (circumpolar geometry).
type EventTime struct {
	Valid bool
	Time  time.Time
}

// BodyEvents holds one body's events for a civil day.
type BodyEvents struct {
	Status  rise.Status
	Rise    EventTime
	Transit EventTime
	Set     EventTime
}

// Day is the almanac for one UT day at one site.
type Day struct {
	Date        time.Time // 0h UT of the day
	Sun         BodyEvents
	Moon        BodyEvents
	SiderealSec float64 // Greenwich apparent sidereal time at 0h UT
}

// Snapshot is the instantaneous state of both bodies.
type Snapshot struct {
	Time time.Time

	SunAzDeg, SunAltDeg  float64
	SunRADeg, SunDecDeg  float64
	SunDistanceAU        float64

	MoonAzDeg, MoonAltDeg   float64
	MoonRADeg, MoonDecDeg   float64
	MoonDistanceKm          float64
	MoonParallacticAngleDeg float64
}

// ComputeDay builds the almanac for the UT day containing date.
func ComputeDay(date time.Time, obs coord.Observer) (Day, error) {
	m := julian.MomentFromTime(date.UTC())
	day := m.StartOfDay()
	midnight := day.Time()

	sunTimes, err := sun.Times(day, obs)
	if err != nil {
		return Day{}, err
	}
	moonTimes, err := moon.Times(day, obs)
	if err != nil {
		return Day{}, err
	}

	return Day{
		Date:        midnight,
		Sun:         toBodyEvents(sunTimes, midnight),
		Moon:        toBodyEvents(moonTimes, midnight),
		SiderealSec: earth.ApparentSiderealTime0UT(day),
	}, nil
}

// ComputeNow builds an instantaneous snapshot, optionally with the
// refraction correction applied to altitudes.
func ComputeNow(at time.Time, obs coord.Observer, refraction bool) Snapshot {
	m := julian.MomentFromTime(at.UTC())

	sunEq, sunHz := sun.TopocentricPosition(m, obs, refraction)
	moonEq, moonHz := moon.TopocentricPosition(m, obs, refraction)
	_, q := moon.Topocentric(m, obs)
	_, _, moonDist := moon.Position(m)

	return Snapshot{
		Time: at,

		SunAzDeg:      azFromNorthDeg(sunHz.Az),
		SunAltDeg:     base.RadToDeg(sunHz.Alt),
		SunRADeg:      base.RadToDeg(sunEq.RA),
		SunDecDeg:     base.RadToDeg(sunEq.Dec),
		SunDistanceAU: sun.RadiusVector(m),

		MoonAzDeg:               azFromNorthDeg(moonHz.Az),
		MoonAltDeg:              base.RadToDeg(moonHz.Alt),
		MoonRADeg:               base.RadToDeg(moonEq.RA),
		MoonDecDeg:              base.RadToDeg(moonEq.Dec),
		MoonDistanceKm:          moonDist,
		MoonParallacticAngleDeg: base.RadToDeg(q),
	}
}

// toBodyEvents converts solver output to wall-clock instants relative to
// the day's UT midnight.
func toBodyEvents(t rise.Times, midnight time.Time) BodyEvents {
	at := func(ev rise.Event) EventTime {
		return EventTime{
			Valid: true,
			Time: midnight.AddDate(0, 0, ev.DayOffset).
				Add(time.Duration(ev.Sec * float64(time.Second))),
		}
	}

	out := BodyEvents{Status: t.Status, Transit: at(t.Transit)}
	if t.Status == rise.StatusCrosses {
		out.Rise = at(t.Rise)
		out.Set = at(t.Set)
	}
	return out
}

// azFromNorthDeg converts a Meeus-convention azimuth (westward from
// south) to the compass convention (eastward from north), degrees.
func azFromNorthDeg(az float64) float64 {
	return base.PMod(base.RadToDeg(az)+180, 360)
}

// AzimuthCardinal names a compass azimuth (degrees from north).
func AzimuthCardinal(azDeg float64) string {
	names := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	i := int(math.Floor(base.PMod(azDeg+22.5, 360)/45)) % len(names)
	return names[i]
}
