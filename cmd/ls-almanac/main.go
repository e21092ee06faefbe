// Command ls-almanac is a terminal almanac for sun and moon events.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/config"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/ui"
	"github.com/litescript/ls-almanac/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	noRefraction  bool
)

const (
	defaultRefresh = 30 * time.Second
	minRefresh     = 1 * time.Second
	maxRefresh     = 10 * time.Minute
)

func main() {
	cfgPath := flag.String("config", "", "Site config file (YAML); defaults to built-in sites")
	siteName := flag.String("site", "", "Site name from the config (default: config's default site)")
	dateStr := flag.String("date", "", "Civil date to display, YYYY-MM-DD UT (default: today)")
	lat := flag.Float64("lat", 0, "Ad-hoc site latitude in degrees (north positive)")
	lon := flag.Float64("lon", 0, "Ad-hoc site longitude in degrees (east positive)")
	elev := flag.Float64("elev", 0, "Ad-hoc site elevation in metres")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat summary at interval (e.g., 60s)")
	flag.BoolVar(&noRefraction, "no-refraction", false, "Disable atmospheric refraction in live positions")
	flag.Parse()

	if *showVersion {
		fmt.Println("ls-almanac " + version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// An explicit -lat/-lon pair overrides the config entirely.
	if flagPassed("lat") || flagPassed("lon") {
		cfg.Sites = []config.Site{{
			Name:       "ad-hoc",
			Latitude:   *lat,
			Longitude:  *lon,
			ElevationM: *elev,
		}}
		cfg.DefaultSite = "ad-hoc"
	}

	name := cfg.DefaultSite
	if *siteName != "" {
		name = *siteName
	}
	site, err := cfg.Site(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (available: %v)\n", err, cfg.SiteNames())
		os.Exit(1)
	}

	date := time.Now().UTC()
	if *dateStr != "" {
		date, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad -date %q: %v\n", *dateStr, err)
			os.Exit(1)
		}
	}

	refresh := time.Duration(cfg.RefreshSeconds) * time.Second
	if refresh < minRefresh {
		refresh = defaultRefresh
	} else if refresh > maxRefresh {
		refresh = maxRefresh
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Headless mode: no TUI. Also fall back when stdout is not a terminal.
	headless := summaryMode || watchInterval != 0 ||
		!term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		runHeadless(ctx, site, date, logger)
		return
	}

	logger.Debug("Starting TUI for site %s", site.Name)
	model := ui.New(cfg, site.Name, date, refresh)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func flagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

// runHeadless prints the day summary once, or repeatedly in watch mode.
func runHeadless(ctx context.Context, site config.Site, date time.Time, logger *logging.Logger) {
	outputOnce := func() error {
		obs := site.Observer()
		day, err := almanac.ComputeDay(date, obs)
		if err != nil {
			return err
		}
		snap := almanac.ComputeNow(time.Now(), obs, !noRefraction)
		almanac.WriteSummary(os.Stdout, site, day, snap)
		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch loop shutting down")
			return
		case <-ticker.C:
			fmt.Println()
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
