package almanac

import (
	"fmt"
	"io"

	"github.com/litescript/ls-almanac/internal/config"
	"github.com/litescript/ls-almanac/internal/rise"
)

// WriteSummary prints a plain-text almanac for one day, for headless use.
func WriteSummary(w io.Writer, site config.Site, day Day, snap Snapshot) {
	fmt.Fprintf(w, "%s  %.4f° %.4f° %.0f m\n",
		site.Name, site.Latitude, site.Longitude, site.ElevationM)
	fmt.Fprintf(w, "%s UT  sidereal %s\n",
		day.Date.Format("2006-01-02"), clock(day.SiderealSec))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-6s %-10s %-10s %-10s %s\n",
		"body", "rise", "transit", "set", "status")
	writeBodyRow(w, "sun", day.Sun)
	writeBodyRow(w, "moon", day.Moon)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "now %s UT\n", snap.Time.UTC().Format("15:04:05"))
	fmt.Fprintf(w, "%-6s az %6.1f° %-2s alt %+6.1f°  %.4f AU\n",
		"sun", snap.SunAzDeg, AzimuthCardinal(snap.SunAzDeg),
		snap.SunAltDeg, snap.SunDistanceAU)
	fmt.Fprintf(w, "%-6s az %6.1f° %-2s alt %+6.1f°  %.0f km\n",
		"moon", snap.MoonAzDeg, AzimuthCardinal(snap.MoonAzDeg),
		snap.MoonAltDeg, snap.MoonDistanceKm)
}

func writeBodyRow(w io.Writer, name string, ev BodyEvents) {
	status := ""
	switch ev.Status {
	case rise.StatusAboveHorizon:
		status = "up all day"
	case rise.StatusBelowHorizon:
		status = "down all day"
	}
	fmt.Fprintf(w, "%-6s %-10s %-10s %-10s %s\n",
		name, eventClock(ev.Rise), eventClock(ev.Transit), eventClock(ev.Set), status)
}

func eventClock(ev EventTime) string {
	if !ev.Valid {
		return "--:--:--"
	}
	return ev.Time.UTC().Format("15:04:05")
}

func clock(sec float64) string {
	s := int(sec)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}
