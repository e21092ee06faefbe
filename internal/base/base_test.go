package base

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPMod(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"positive in range", 3, 10, 3},
		{"positive wraps", 13, 10, 3},
		{"negative wraps up", -3, 10, 7},
		{"large negative", -23, 10, 7},
		{"zero", 0, 10, 0},
		{"angle wrap", 3 * math.Pi, 2 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PMod(tt.x, tt.y)
			if !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
				t.Errorf("PMod(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPModRange(t *testing.T) {
	// The result must land in [0, y) for any x.
	for x := -1000.0; x <= 1000.0; x += 7.3 {
		got := PMod(x, 360)
		if got < 0 || got >= 360 {
			t.Fatalf("PMod(%v, 360) = %v, outside [0, 360)", x, got)
		}
	}
}

func TestModf(t *testing.T) {
	tests := []struct {
		v, wantInt, wantFrac float64
	}{
		{3.25, 3, 0.25},
		{-3.25, -3, -0.25},
		{0.5, 0, 0.5},
		{-0.5, 0, -0.5},
	}
	for _, tt := range tests {
		i, f := Modf(tt.v)
		if i != tt.wantInt || !scalar.EqualWithinAbs(f, tt.wantFrac, 1e-12) {
			t.Errorf("Modf(%v) = (%v, %v), want (%v, %v)", tt.v, i, f, tt.wantInt, tt.wantFrac)
		}
		if !scalar.EqualWithinAbs(i+f, tt.v, 1e-12) {
			t.Errorf("Modf(%v): parts do not sum back", tt.v)
		}
	}
}

func TestHorner(t *testing.T) {
	// 2 + 3x + x^2 at x = 2 is 12.
	got, err := Horner(2, 2, 3, 1)
	if err != nil {
		t.Fatalf("Horner returned error: %v", err)
	}
	if !scalar.EqualWithinAbs(got, 12, 1e-12) {
		t.Errorf("Horner = %v, want 12", got)
	}

	// Constant polynomial.
	got, err = Horner(123.4, 7)
	if err != nil {
		t.Fatalf("Horner returned error: %v", err)
	}
	if got != 7 {
		t.Errorf("Horner constant = %v, want 7", got)
	}

	// No coefficients is an error.
	if _, err = Horner(1); !errors.Is(err, ErrEmptyCoefficients) {
		t.Errorf("Horner with no coefficients: err = %v, want ErrEmptyCoefficients", err)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v      float64
		digits int
		want   float64
	}{
		{1.23456, 4, 1.2346},
		{1.23454, 4, 1.2345},
		{-1.23456, 4, -1.2346},
		{2.5, 0, 3},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.digits); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.v, tt.digits, got, tt.want)
		}
	}
}

func TestAngleConversions(t *testing.T) {
	if !scalar.EqualWithinAbs(DegToRad(180), math.Pi, 1e-15) {
		t.Error("DegToRad(180) != pi")
	}
	if !scalar.EqualWithinAbs(RadToDeg(math.Pi/2), 90, 1e-12) {
		t.Error("RadToDeg(pi/2) != 90")
	}
	if !scalar.EqualWithinAbs(SecToRad(3600), DegToRad(1), 1e-15) {
		t.Error("SecToRad(3600) != 1 degree")
	}
	if !scalar.EqualWithinAbs(TimeSecToRad(86400), 2*math.Pi, 1e-12) {
		t.Error("TimeSecToRad(86400) != 2 pi")
	}
	if !scalar.EqualWithinAbs(RadToTimeSec(TimeSecToRad(4321)), 4321, 1e-9) {
		t.Error("RadToTimeSec does not invert TimeSecToRad")
	}
}
