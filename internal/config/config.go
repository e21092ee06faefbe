// Package config loads the observer site file.
//
// The file is YAML, listing named sites with the usual geographic sign
// conventions (latitude north-positive, longitude east-positive, both in
// degrees):
//
//	default_site: paris
//	refresh_seconds: 30
//	sites:
//	  - name: paris
//	    latitude: 48.85
//	    longitude: 2.35
//	    elevation_m: 35
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-almanac/internal/coord"
)

// Errors surfaced by Load and Config lookups.
var (
	ErrNoSites      = errors.New("config has no sites")
	ErrUnknownSite  = errors.New("unknown site name")
	ErrBadLatitude  = errors.New("latitude outside [-90, 90]")
	ErrBadLongitude = errors.New("longitude outside [-180, 180]")
)

// Site is a named observer location in geographic conventions.
type Site struct {
	Name       string  `yaml:"name"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	ElevationM float64 `yaml:"elevation_m"`
}

// Observer converts the site to the astronomical-convention observer used
// by the computation packages.
func (s Site) Observer() coord.Observer {
	return coord.NewObserverGeographic(s.Latitude, s.Longitude, s.ElevationM)
}

// Config is the site file contents.
type Config struct {
	DefaultSite    string `yaml:"default_site"`
	RefreshSeconds int    `yaml:"refresh_seconds"`
	Sites          []Site `yaml:"sites"`
}

// Default returns the built-in configuration used when no site file
// exists.
func Default() *Config {
	return &Config{
		DefaultSite:    "greenwich",
		RefreshSeconds: 30,
		Sites: []Site{
			{Name: "greenwich", Latitude: 51.4769, Longitude: -0.0005, ElevationM: 46},
			{Name: "paris", Latitude: 48.8533, Longitude: 2.3489, ElevationM: 35},
			{Name: "new-york", Latitude: 40.7128, Longitude: -74.0060, ElevationM: 10},
		},
	}
}

// Load reads and validates a site file. A missing file at an empty path is
// not an error: the built-in defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.RefreshSeconds <= 0 {
		cfg.RefreshSeconds = Default().RefreshSeconds
	}
	if cfg.DefaultSite == "" {
		cfg.DefaultSite = cfg.Sites[0].Name
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Sites) == 0 {
		return ErrNoSites
	}
	for _, s := range c.Sites {
		if s.Latitude < -90 || s.Latitude > 90 {
			return fmt.Errorf("site %q: %w", s.Name, ErrBadLatitude)
		}
		if s.Longitude < -180 || s.Longitude > 180 {
			return fmt.Errorf("site %q: %w", s.Name, ErrBadLongitude)
		}
	}
	if c.DefaultSite != "" {
		if _, err := c.Site(c.DefaultSite); err != nil {
			return err
		}
	}
	return nil
}

// Site looks up a site by name.
func (c *Config) Site(name string) (Site, error) {
	for _, s := range c.Sites {
		if s.Name == name {
			return s, nil
		}
	}
	return Site{}, fmt.Errorf("%w: %q", ErrUnknownSite, name)
}

// SiteNames returns the configured site names in file order.
func (c *Config) SiteNames() []string {
	names := make([]string, len(c.Sites))
	for i, s := range c.Sites {
		names[i] = s.Name
	}
	return names
}
