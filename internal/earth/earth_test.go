package earth

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/litescript/ls-almanac/internal/base"
	"github.com/litescript/ls-almanac/internal/julian"
)

// Meeus example 22.a: 1987 April 10, 0h TD.
func exampleMoment() julian.Moment {
	// Use ΔT = 0 so jde equals the book's dynamical-time argument.
	return julian.NewMomentDeltaT(2446895.5, 0)
}

func TestNutation(t *testing.T) {
	m := exampleMoment()
	deltaPsi, deltaEps := Nutation(m)

	// Book values: Δψ = -3.788″, Δε = +9.443″.
	if !scalar.EqualWithinAbs(base.RadToDeg(deltaPsi)*3600, -3.788, 0.01) {
		t.Errorf("Δψ = %.4f″, want -3.788″", base.RadToDeg(deltaPsi)*3600)
	}
	if !scalar.EqualWithinAbs(base.RadToDeg(deltaEps)*3600, 9.443, 0.01) {
		t.Errorf("Δε = %.4f″, want 9.443″", base.RadToDeg(deltaEps)*3600)
	}
}

func TestMeanObliquity(t *testing.T) {
	m := exampleMoment()

	// Book value: ε0 = 23°26′27.407″.
	got := base.RadToDeg(MeanObliquity(m))
	if !scalar.EqualWithinAbs(got, 23.440946, 1e-5) {
		t.Errorf("MeanObliquity = %.6f°, want 23.440946°", got)
	}

	// Laskar agrees with the IAU polynomial to well under an arcsecond
	// near the present era.
	diff := math.Abs(MeanObliquity(m) - MeanObliquityLaskar(m))
	if diff > base.SecToRad(0.1) {
		t.Errorf("IAU and Laskar obliquity differ by %.4f″", base.RadToDeg(diff)*3600)
	}
}

func TestTrueObliquity(t *testing.T) {
	m := exampleMoment()

	// Book value: ε = 23°26′36.850″ = 23.443569°.
	got := base.RadToDeg(TrueObliquity(m))
	if !scalar.EqualWithinAbs(got, 23.443569, 1e-4) {
		t.Errorf("TrueObliquity = %.6f°, want 23.443569°", got)
	}
}

func TestMeanSiderealTimeGreenwich(t *testing.T) {
	// Meeus example 12.b: 1987 April 10, 19h21m00s UT.
	// θ0 = 8h34m57.0896s = 30897.0896 s of time.
	m := julian.NewMomentDeltaT(2446896.30625, 0)
	got := MeanSiderealTimeGreenwich(m)
	if !scalar.EqualWithinAbs(got, 30897.0896, 0.01) {
		t.Errorf("mean sidereal = %.4f s, want 30897.0896 s", got)
	}

	// Example 12.a: 1987 April 10, 0h UT; θ0 = 13h10m46.3668s.
	m = julian.NewMomentDeltaT(2446895.5, 0)
	got = MeanSiderealTimeGreenwich(m)
	if !scalar.EqualWithinAbs(got, 47446.3668, 0.01) {
		t.Errorf("mean sidereal at 0h = %.4f s, want 47446.3668 s", got)
	}
}

func TestApparentSiderealTimeGreenwich(t *testing.T) {
	// Meeus example 12.a: apparent θ = 13h10m46.1351s at 1987 April 10, 0h UT.
	m := julian.NewMomentDeltaT(2446895.5, 0)
	got := ApparentSiderealTimeGreenwich(m)
	if !scalar.EqualWithinAbs(got, 47446.1351, 0.02) {
		t.Errorf("apparent sidereal = %.4f s, want 47446.1351 s", got)
	}
}

func TestApparentSiderealTime0UT(t *testing.T) {
	// Any moment during the day reduces to the same 0h UT value.
	day := julian.MomentFromTime(time.Date(1988, 3, 20, 0, 0, 0, 0, time.UTC))
	later := day.AddDays(0.66)
	if got, want := ApparentSiderealTime0UT(later), ApparentSiderealTimeGreenwich(day.StartOfDay()); !scalar.EqualWithinAbs(got, want, 1e-6) {
		t.Errorf("0UT sidereal = %v, want %v", got, want)
	}
}

func TestApparentSiderealTimeLocal(t *testing.T) {
	m := julian.NewMomentDeltaT(2446895.5, 0)
	// A site 90° west lags Greenwich by 6 sidereal hours of hour angle,
	// i.e. 21600 seconds of time.
	lng := base.DegToRad(90)
	local := ApparentSiderealTimeLocal(m, lng)
	greenwich := ApparentSiderealTimeGreenwich(m)
	diff := base.PMod(greenwich-local, base.SecondsPerDay)
	if !scalar.EqualWithinAbs(diff, 21600, 1e-6) {
		t.Errorf("local sidereal offset = %v s, want 21600 s", diff)
	}
}

func TestSiderealRange(t *testing.T) {
	for d := 0.0; d < 400; d += 13.7 {
		m := julian.NewMomentDeltaT(2451545.0+d, 0)
		for _, s := range []float64{
			MeanSiderealTimeGreenwich(m),
			ApparentSiderealTimeGreenwich(m),
			ApparentSiderealTimeLocal(m, base.DegToRad(151.2)),
		} {
			if s < 0 || s >= base.SecondsPerDay {
				t.Fatalf("sidereal time %v outside [0, 86400)", s)
			}
		}
	}
}

func TestNutationPurity(t *testing.T) {
	m := exampleMoment()
	p1, e1 := Nutation(m)
	p2, e2 := Nutation(m)
	if p1 != p2 || e1 != e2 {
		t.Error("Nutation is not deterministic for identical inputs")
	}
}
