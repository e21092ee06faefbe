// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Moon: full ch. 47 series, topocentric parallax, moonrise/moonset
// 0.1.0 - Initial release: sun almanac, sidereal clock, TUI dashboard, site file
