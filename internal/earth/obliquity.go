package earth

import (
	"github.com/litescript/ls-almanac/internal/base"
	"github.com/litescript/ls-almanac/internal/julian"
)

// MeanObliquity returns the mean obliquity of the ecliptic in radians from
// the IAU polynomial (Meeus 22.2). Accurate to about 1″ over ±2000 years
// from J2000.
func MeanObliquity(m julian.Moment) float64 {
	// Coefficients in arcseconds; 84381.448″ = 23°26′21.448″.
	sec := base.MustHorner(m.EphemerisCentury(),
		84381.448, -46.8150, -0.00059, 0.001813)
	return base.SecToRad(sec)
}

// MeanObliquityLaskar returns the mean obliquity of the ecliptic in radians
// from the Laskar 1986 polynomial (Meeus 22.3), accurate to 0.01″ over
// ±1000 years and usable over ±10000 years.
func MeanObliquityLaskar(m julian.Moment) float64 {
	u := m.EphemerisCentury() / 100
	sec := base.MustHorner(u,
		84381.448, -4680.93, -1.55, 1999.25, -51.38, -249.67,
		-39.05, 7.12, 27.87, 5.79, 2.45)
	return base.SecToRad(sec)
}

// TrueObliquity returns the true obliquity of the ecliptic in radians:
// the Laskar mean value plus the nutation in obliquity.
func TrueObliquity(m julian.Moment) float64 {
	_, deltaEps := Nutation(m)
	return MeanObliquityLaskar(m) + deltaEps
}
