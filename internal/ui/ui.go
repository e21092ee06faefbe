// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/config"
	"github.com/litescript/ls-almanac/internal/rise"
	"github.com/litescript/ls-almanac/internal/version"
)

// TickMsg triggers the periodic snapshot refresh.
type TickMsg time.Time

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	siteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	upStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the root Bubble Tea model: one almanac dashboard.
type Model struct {
	cfg     *config.Config
	siteIdx int
	refresh time.Duration

	date       time.Time // UT midnight of the displayed day
	refraction bool

	width  int
	height int

	day    almanac.Day
	dayErr error
	snap   almanac.Snapshot
}

// New creates the dashboard model positioned on the given date and site.
func New(cfg *config.Config, siteName string, date time.Time, refresh time.Duration) Model {
	idx := 0
	for i, s := range cfg.Sites {
		if s.Name == siteName {
			idx = i
			break
		}
	}
	m := Model{
		cfg:        cfg,
		siteIdx:    idx,
		refresh:    refresh,
		date:       midnightUTC(date),
		refraction: true,
	}
	return m.recompute()
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (m Model) site() config.Site {
	return m.cfg.Sites[m.siteIdx]
}

// recompute rebuilds the day almanac and the instantaneous snapshot.
func (m Model) recompute() Model {
	obs := m.site().Observer()
	m.day, m.dayErr = almanac.ComputeDay(m.date, obs)
	m.snap = almanac.ComputeNow(time.Now(), obs, m.refraction)
	return m
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.refresh)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		obs := m.site().Observer()
		m.snap = almanac.ComputeNow(time.Now(), obs, m.refraction)
		return m, tickCmd(m.refresh)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.date = m.date.AddDate(0, 0, -1)
			return m.recompute(), nil
		case "right", "l":
			m.date = m.date.AddDate(0, 0, 1)
			return m.recompute(), nil
		case "t":
			m.date = midnightUTC(time.Now())
			return m.recompute(), nil
		case "s":
			m.siteIdx = (m.siteIdx + 1) % len(m.cfg.Sites)
			return m.recompute(), nil
		case "r":
			m.refraction = !m.refraction
			return m.recompute(), nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	site := m.site()
	b.WriteString(titleStyle.Render("ls-almanac "+version.Version) + "  ")
	b.WriteString(siteStyle.Render(fmt.Sprintf("%s (%.4f°, %.4f°, %.0f m)",
		site.Name, site.Latitude, site.Longitude, site.ElevationM)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(m.date.Format("Monday, 2006-01-02")+" UT") +
		"  " + labelStyle.Render("sidereal "+fmtClock(m.day.SiderealSec)))
	b.WriteString("\n\n")

	if m.dayErr != nil {
		b.WriteString(errorStyle.Render("almanac error: "+m.dayErr.Error()) + "\n")
	} else {
		sunPanel := panelStyle.Render(m.renderBody("Sun", m.day.Sun,
			m.snap.SunAzDeg, m.snap.SunAltDeg,
			fmt.Sprintf("%.4f AU", m.snap.SunDistanceAU)))
		moonPanel := panelStyle.Render(m.renderBody("Moon", m.day.Moon,
			m.snap.MoonAzDeg, m.snap.MoonAltDeg,
			fmt.Sprintf("%.0f km", m.snap.MoonDistanceKm)))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sunPanel, " ", moonPanel))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"←/→ day · t today · s site · r refraction · q quit"))
	return b.String()
}

// renderBody lays out one body's event times and live position.
func (m Model) renderBody(name string, ev almanac.BodyEvents, azDeg, altDeg float64, dist string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(name) + "\n")

	switch ev.Status {
	case rise.StatusAboveHorizon:
		b.WriteString(upStyle.Render("circumpolar: up all day") + "\n")
	case rise.StatusBelowHorizon:
		b.WriteString(downStyle.Render("below horizon all day") + "\n")
	}

	row := func(label string, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", label)))
		b.WriteString(valueStyle.Render(value) + "\n")
	}
	row("rise", fmtEvent(ev.Rise))
	row("transit", fmtEvent(ev.Transit))
	row("set", fmtEvent(ev.Set))

	altStyle := downStyle
	if altDeg > 0 {
		altStyle = upStyle
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", "now")))
	b.WriteString(altStyle.Render(fmt.Sprintf("az %5.1f° %-2s alt %+5.1f°",
		azDeg, almanac.AzimuthCardinal(azDeg), altDeg)) + "\n")
	row("dist", dist)
	return b.String()
}

// fmtEvent formats an event instant as UT, or a dash when it does not
// occur.
func fmtEvent(ev almanac.EventTime) string {
	if !ev.Valid {
		return "—"
	}
	return ev.Time.UTC().Format("15:04:05")
}

// fmtClock formats seconds of day as hh:mm:ss.
func fmtClock(sec float64) string {
	s := int(sec)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}
