package sun

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/litescript/ls-almanac/internal/base"
	"github.com/litescript/ls-almanac/internal/coord"
	"github.com/litescript/ls-almanac/internal/julian"
	"github.com/litescript/ls-almanac/internal/rise"
)

// Meeus example 25.a: 1992 October 13, 0h TD (JDE 2448908.5).
func TestApparentEquatorial(t *testing.T) {
	m := julian.NewMomentDeltaT(2448908.5, 0)
	eq := ApparentEquatorial(m)

	// Book: apparent α = 13h13m31.4s = 198.38083°, δ = -7°47'06" = -7.78500°.
	if got := base.RadToDeg(eq.RA); !scalar.EqualWithinAbs(got, 198.38083, 0.01) {
		t.Errorf("RA = %.5f°, want 198.38083°", got)
	}
	if got := base.RadToDeg(eq.Dec); !scalar.EqualWithinAbs(got, -7.78500, 0.01) {
		t.Errorf("Dec = %.5f°, want -7.78500°", got)
	}
}

func TestRadiusVector(t *testing.T) {
	// Book: R = 0.99766 AU on 1992 October 13.
	m := julian.NewMomentDeltaT(2448908.5, 0)
	if got := RadiusVector(m); !scalar.EqualWithinAbs(got, 0.99766, 1e-4) {
		t.Errorf("R = %.5f AU, want 0.99766 AU", got)
	}

	// Perihelion in early January, aphelion in early July.
	jan := julian.MomentFromTime(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	jul := julian.MomentFromTime(time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC))
	if RadiusVector(jan) >= RadiusVector(jul) {
		t.Error("January distance not smaller than July distance")
	}
}

func TestParallax(t *testing.T) {
	m := julian.NewMomentDeltaT(2451545.0, 0)
	p := Parallax(m)
	// Always within a few percent of 8.794".
	if sec := base.RadToDeg(p) * 3600; sec < 8.5 || sec > 9.1 {
		t.Errorf("solar parallax = %.3f\", want near 8.794\"", sec)
	}
}

func TestSeasonalDeclination(t *testing.T) {
	tests := []struct {
		name    string
		t       time.Time
		wantDec float64
		tol     float64
	}{
		{"march equinox", time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC), 0, 0.3},
		{"june solstice", time.Date(2024, 6, 20, 21, 0, 0, 0, time.UTC), 23.44, 0.1},
		{"september equinox", time.Date(2024, 9, 22, 12, 44, 0, 0, time.UTC), 0, 0.3},
		{"december solstice", time.Date(2024, 12, 21, 9, 20, 0, 0, time.UTC), -23.44, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq := ApparentEquatorial(julian.MomentFromTime(tt.t))
			if got := base.RadToDeg(eq.Dec); math.Abs(got-tt.wantDec) > tt.tol {
				t.Errorf("Dec = %.3f°, want %v ± %v°", got, tt.wantDec, tt.tol)
			}
		})
	}
}

func TestTopocentricShiftIsSmall(t *testing.T) {
	m := julian.NewMoment(2451545.0)
	obs := coord.NewObserverGeographic(48.85, 2.35, 35)
	geo := ApparentEquatorial(m)
	topo := Topocentric(m, obs)

	// The Sun's parallax never moves it more than ~9".
	if d := math.Abs(topo.Dec - geo.Dec); d > base.SecToRad(10) {
		t.Errorf("Dec parallax shift %.2f\" too large", base.RadToDeg(d)*3600)
	}
}

func TestTopocentricPositionRefraction(t *testing.T) {
	// Refraction can only raise the apparent altitude.
	m := julian.MomentFromTime(time.Date(2024, 6, 21, 6, 0, 0, 0, time.UTC))
	obs := coord.NewObserverGeographic(48.85, 2.35, 35)
	_, plain := TopocentricPosition(m, obs, false)
	_, refracted := TopocentricPosition(m, obs, true)
	if refracted.Alt <= plain.Alt {
		t.Errorf("refracted alt %v not above airless alt %v", refracted.Alt, plain.Alt)
	}
}

// Civil almanac regression: Paris (48.85°N, 2.35°E), 2024 June 21.
// Published sunrise 03:47 UTC, sunset 19:58 UTC.
func TestTimesParisSolstice(t *testing.T) {
	m := julian.MomentFromTime(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC))
	obs := coord.NewObserverGeographic(48.85, 2.35, 35)

	approx := ApproxTimes(m, obs)
	if approx.Status != rise.StatusCrosses {
		t.Fatalf("approx status = %v, want StatusCrosses", approx.Status)
	}

	refined, err := Times(m, obs)
	if err != nil {
		t.Fatal(err)
	}
	if refined.Status != rise.StatusCrosses {
		t.Fatalf("refined status = %v, want StatusCrosses", refined.Status)
	}

	wantRise := 3*3600 + 47*60.0
	wantSet := 19*3600 + 58*60.0
	for _, tc := range []struct {
		name    string
		ev      rise.Event
		wantSec float64
	}{
		{"approx rise", approx.Rise, wantRise},
		{"approx set", approx.Set, wantSet},
		{"refined rise", refined.Rise, wantRise},
		{"refined set", refined.Set, wantSet},
	} {
		if tc.ev.DayOffset != 0 {
			t.Errorf("%s day offset = %d, want 0", tc.name, tc.ev.DayOffset)
		}
		if math.Abs(tc.ev.Sec-tc.wantSec) > 60 {
			t.Errorf("%s = %s, want %s ± 1m", tc.name,
				fmtSec(tc.ev.Sec), fmtSec(tc.wantSec))
		}
	}
}

func TestTimesPolarDay(t *testing.T) {
	// Longyearbyen (78.22°N) at midsummer: the Sun never sets.
	m := julian.MomentFromTime(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC))
	obs := coord.NewObserverGeographic(78.22, 15.65, 0)
	got, err := Times(m, obs)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != rise.StatusAboveHorizon {
		t.Errorf("status = %v, want StatusAboveHorizon", got.Status)
	}
}

func TestApproxTransitMatchesTimes(t *testing.T) {
	obs := coord.NewObserverGeographic(48.85, 2.35, 35)
	day := julian.MomentFromTime(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC))

	approx := ApproxTransit(day, obs)
	if got := ApproxTimes(day, obs).Transit; approx != got {
		t.Errorf("ApproxTransit = %+v, ApproxTimes.Transit = %+v", approx, got)
	}

	refined, err := Times(day, obs)
	if err != nil {
		t.Fatal(err)
	}
	// The Sun's RA moves ~4 min/day near the solstice, so evaluating it at
	// the transit instead of 0h shifts the result by a couple of minutes.
	if diff := math.Abs(approx.Sec - refined.Transit.Sec); diff > 300 {
		t.Errorf("approx and refined transit differ by %v s", diff)
	}
}

func TestPurity(t *testing.T) {
	m := julian.NewMoment(2460000.5)
	a := ApparentEquatorial(m)
	b := ApparentEquatorial(m)
	if a != b {
		t.Error("ApparentEquatorial not bit-identical across calls")
	}
}

func fmtSec(s float64) string {
	h := int(s) / 3600
	mi := (int(s) % 3600) / 60
	sec := int(s) % 60
	return time.Date(0, 1, 1, h, mi, sec, 0, time.UTC).Format("15:04:05")
}
