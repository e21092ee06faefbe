package coord

import (
	"math"

	"github.com/litescript/ls-almanac/internal/base"
)

// RefractionBennett returns the atmospheric refraction in radians for an
// apparent altitude (radians). Subtracting it from the apparent altitude
// gives the true (airless) altitude. Accurate to about 0.07′ (Meeus 16.3).
// Negative altitudes are clamped to the horizon, where the formula is
// still finite.
func RefractionBennett(apparentAlt float64) float64 {
	if apparentAlt < 0 {
		apparentAlt = 0
	}
	hDeg := base.RadToDeg(apparentAlt)
	rMin := 1 / math.Tan(base.DegToRad(hDeg+7.31/(hDeg+4.4)))
	return base.DegToRad(rMin / 60)
}

// RefractionBennett2 is RefractionBennett with Bennett's empirical
// correction term, accurate to about 0.015′.
func RefractionBennett2(apparentAlt float64) float64 {
	if apparentAlt < 0 {
		apparentAlt = 0
	}
	hDeg := base.RadToDeg(apparentAlt)
	rMin := 1 / math.Tan(base.DegToRad(hDeg+7.31/(hDeg+4.4)))
	rMin -= 0.06 * math.Sin(base.DegToRad(14.7*rMin+13))
	return base.DegToRad(rMin / 60)
}

// RefractionSaemundsson returns the refraction in radians for a true
// altitude (radians). Adding it to the true altitude gives the apparent
// altitude; consistent with RefractionBennett to within 4″ (Meeus 16.4).
func RefractionSaemundsson(trueAlt float64) float64 {
	if trueAlt < 0 {
		trueAlt = 0
	}
	hDeg := base.RadToDeg(trueAlt)
	rMin := 1.02 / math.Tan(base.DegToRad(hDeg+10.3/(hDeg+5.11)))
	return base.DegToRad(rMin / 60)
}
